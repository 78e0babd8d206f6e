// ABOUTME: Standard logger implementation backed by sirupsen/logrus
// ABOUTME: Provides structured logging with level support and a silent variant

package standard

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// StandardLogger implements the Logger interface using logrus
type StandardLogger struct {
	entry *logrus.Entry
}

// NewStandardLogger creates a logger writing text to stderr at info level
func NewStandardLogger() *StandardLogger {
	return NewStandardLoggerWithOutput(os.Stderr, logrus.InfoLevel)
}

// NewStandardLoggerWithOutput creates a logger writing to w at the given level
func NewStandardLoggerWithOutput(w io.Writer, level logrus.Level) *StandardLogger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return NewStandardLoggerFromLogrus(log)
}

// NewStandardLoggerFromLogrus wraps an existing logrus logger
func NewStandardLoggerFromLogrus(log *logrus.Logger) *StandardLogger {
	return &StandardLogger{
		entry: logrus.NewEntry(log).WithField("component", "upwind24"),
	}
}

// ParseLevel converts a level name, falling back to info
func ParseLevel(name string) logrus.Level {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// Debug logs a debug message
func (l *StandardLogger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *StandardLogger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Info(msg)
}

// Warn logs a warning message
func (l *StandardLogger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Warn(msg)
}

// Error logs an error message
func (l *StandardLogger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Error(msg)
}

// QuietLogger discards all output
type QuietLogger struct{}

// NewQuietLogger creates a logger that discards all output
func NewQuietLogger() *QuietLogger {
	return &QuietLogger{}
}

func (q *QuietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *QuietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *QuietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *QuietLogger) Error(msg string, fields map[string]interface{}) {}
