package config

import (
	"os"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Credentials: CredentialsConfig{ClientID: "abc", SecretID: "xyz"},
		API:         APIConfig{Endpoint: "http://dev-api.upwind24.com", Version: "v1.0"},
		HTTP:        HTTPConfig{Timeout: 30, ConnectTimeout: 5},
		Cache:       CacheConfig{Type: CacheTypeNone, TTL: 60},
	}
}

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name             string
		envVars          map[string]string
		expectedEndpoint string
		expectedVersion  string
		expectedTimeout  int
	}{
		{
			name:             "defaults when nothing set",
			envVars:          map[string]string{},
			expectedEndpoint: "http://dev-api.upwind24.com",
			expectedVersion:  "v1.0",
			expectedTimeout:  30,
		},
		{
			name:             "uses UPWIND24_ENDPOINT when set",
			envVars:          map[string]string{"UPWIND24_ENDPOINT": "https://api.upwind24.com"},
			expectedEndpoint: "https://api.upwind24.com",
			expectedVersion:  "v1.0",
			expectedTimeout:  30,
		},
		{
			name:             "uses UPWIND24_VERSION and UPWIND24_TIMEOUT when set",
			envVars:          map[string]string{"UPWIND24_VERSION": "v2.0", "UPWIND24_TIMEOUT": "12"},
			expectedEndpoint: "http://dev-api.upwind24.com",
			expectedVersion:  "v2.0",
			expectedTimeout:  12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("LoadFromEnv() error = %v", err)
			}

			if cfg.API.Endpoint != tt.expectedEndpoint {
				t.Errorf("Endpoint = %v, want %v", cfg.API.Endpoint, tt.expectedEndpoint)
			}
			if cfg.API.Version != tt.expectedVersion {
				t.Errorf("Version = %v, want %v", cfg.API.Version, tt.expectedVersion)
			}
			if cfg.HTTP.Timeout != tt.expectedTimeout {
				t.Errorf("Timeout = %v, want %v", cfg.HTTP.Timeout, tt.expectedTimeout)
			}
		})
	}
}

func TestLoadFromEnv_AllVariables(t *testing.T) {
	os.Clearenv()
	os.Setenv("UPWIND24_CLIENT_ID", "abc")
	os.Setenv("UPWIND24_SECRET_ID", "xyz")
	os.Setenv("UPWIND24_CONNECT_TIMEOUT", "2")
	os.Setenv("UPWIND24_RATE_LIMIT", "2.5")
	os.Setenv("UPWIND24_MAX_RETRIES", "3")
	os.Setenv("UPWIND24_CACHE_TYPE", "redis")
	os.Setenv("UPWIND24_CACHE_TTL", "120")
	os.Setenv("REDIS_ADDRESS", "cache:6379")
	os.Setenv("REDIS_DB", "4")
	os.Setenv("UPWIND24_LOG_LEVEL", "debug")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Credentials.ClientID != "abc" || cfg.Credentials.SecretID != "xyz" {
		t.Errorf("Credentials = %+v", cfg.Credentials)
	}
	if cfg.HTTP.ConnectTimeoutDuration() != 2*time.Second {
		t.Errorf("ConnectTimeout = %v, want 2s", cfg.HTTP.ConnectTimeoutDuration())
	}
	if cfg.HTTP.RateLimit != 2.5 {
		t.Errorf("RateLimit = %v, want 2.5", cfg.HTTP.RateLimit)
	}
	if cfg.HTTP.MaxRetries != 3 {
		t.Errorf("MaxRetries = %v, want 3", cfg.HTTP.MaxRetries)
	}
	if cfg.Cache.Type != CacheTypeRedis || cfg.Cache.TTLDuration() != 2*time.Minute {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Cache.Redis.Address != "cache:6379" || cfg.Cache.Redis.DB != 4 {
		t.Errorf("Redis = %+v", cfg.Cache.Redis)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %v, want debug", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadFromEnv_InvalidNumbersFallBack(t *testing.T) {
	os.Clearenv()
	os.Setenv("UPWIND24_TIMEOUT", "not-a-number")
	os.Setenv("UPWIND24_RATE_LIMIT", "fast")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.HTTP.Timeout != 30 {
		t.Errorf("Timeout = %v, want %v (default)", cfg.HTTP.Timeout, 30)
	}
	if cfg.HTTP.RateLimit != 0 {
		t.Errorf("RateLimit = %v, want 0 (default)", cfg.HTTP.RateLimit)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"valid config", func(c *Config) {}, ""},
		{"memory cache", func(c *Config) { c.Cache.Type = CacheTypeMemory }, ""},
		{"empty client id", func(c *Config) { c.Credentials.ClientID = "" }, "client id cannot be empty"},
		{"empty secret id", func(c *Config) { c.Credentials.SecretID = "" }, "secret id cannot be empty"},
		{"empty endpoint", func(c *Config) { c.API.Endpoint = "" }, "endpoint cannot be empty"},
		{"zero timeout", func(c *Config) { c.HTTP.Timeout = 0 }, "timeout must be at least 1 second"},
		{"zero connect timeout", func(c *Config) { c.HTTP.ConnectTimeout = 0 }, "connect timeout must be at least 1 second"},
		{"negative rate limit", func(c *Config) { c.HTTP.RateLimit = -1 }, "rate limit cannot be negative"},
		{"negative retries", func(c *Config) { c.HTTP.MaxRetries = -1 }, "max retries cannot be negative"},
		{"invalid cache type", func(c *Config) { c.Cache.Type = "invalid" }, "cache type must be 'none', 'memory' or 'redis'"},
		{"cache without ttl", func(c *Config) { c.Cache.Type = CacheTypeMemory; c.Cache.TTL = 0 }, "cache ttl must be at least 1 second"},
		{
			"redis type with empty address",
			func(c *Config) { c.Cache.Type = CacheTypeRedis; c.Cache.Redis.Address = "" },
			"redis address cannot be empty when using redis cache",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.errMsg == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || err.Error() != tt.errMsg {
				t.Errorf("Validate() error = %v, want %v", err, tt.errMsg)
			}
		})
	}
}
