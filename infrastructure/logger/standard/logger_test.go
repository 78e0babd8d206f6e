package standard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewStandardLogger(t *testing.T) {
	logger := NewStandardLogger()

	if logger == nil {
		t.Fatal("NewStandardLogger returned nil")
	}

	if logger.entry == nil {
		t.Error("logrus entry not initialized")
	}
}

func TestStandardLogger_LogMethods(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStandardLoggerWithOutput(&buf, logrus.DebugLevel)

	t.Run("Debug", func(t *testing.T) {
		logger.Debug("test debug", nil)
		logger.Debug("test debug with fields", map[string]interface{}{
			"key": "value",
			"num": 42,
		})
	})

	t.Run("Info", func(t *testing.T) {
		logger.Info("test info", map[string]interface{}{
			"path": "/users/1",
		})
	})

	t.Run("Warn", func(t *testing.T) {
		logger.Warn("test warn", map[string]interface{}{
			"error": "something wrong",
		})
	})

	t.Run("Error", func(t *testing.T) {
		logger.Error("test error", map[string]interface{}{
			"code": 500,
		})
	})

	out := buf.String()
	for _, want := range []string{"test debug", "num=42", "path=/users/1", "level=warning", "code=500", "component=upwind24"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStandardLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStandardLoggerWithOutput(&buf, logrus.WarnLevel)

	logger.Debug("hidden debug", nil)
	logger.Info("hidden info", nil)
	logger.Warn("visible warn", nil)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below warn level were written:\n%s", out)
	}
	if !strings.Contains(out, "visible warn") {
		t.Errorf("warn message missing:\n%s", out)
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("debug") != logrus.DebugLevel {
		t.Error("ParseLevel(debug) should be DebugLevel")
	}
	if ParseLevel("nonsense") != logrus.InfoLevel {
		t.Error("ParseLevel should fall back to InfoLevel")
	}
}

func TestQuietLogger(t *testing.T) {
	logger := NewQuietLogger()

	logger.Debug("nothing", nil)
	logger.Info("nothing", map[string]interface{}{"k": "v"})
	logger.Warn("nothing", nil)
	logger.Error("nothing", nil)
}
