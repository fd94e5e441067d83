package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

// unsetEnv clears keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV", "development")
	unsetEnv(t, "DATABASE_DRIVER", "DATABASE_URL", "LOG_FORMAT", "REDIS_URL", "STORAGE_MAX_UPLOAD_SIZE", "JWT_SECRET", "BCRYPT_COST", "SERVER_PORT", "WORKER_INTERVAL")

	cfg := Load()

	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("expected postgres driver, got %q", cfg.Database.Driver)
	}
	if cfg.Storage.MaxUploadSize != 10<<20 {
		t.Errorf("expected 10 MiB upload limit, got %d", cfg.Storage.MaxUploadSize)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("expected text log format in development, got %q", cfg.Log.Format)
	}
	if cfg.Redis.URL != "" {
		t.Errorf("expected the rule lease to be disabled by default, got %q", cfg.Redis.URL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "file:ledger.db")
	t.Setenv("WORKER_INTERVAL", "15m")
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := Load()

	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("expected sqlite driver, got %q", cfg.Database.Driver)
	}
	if cfg.Worker.Interval != 15*time.Minute {
		t.Errorf("expected 15m interval, got %s", cfg.Worker.Interval)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected invalid port to fall back to 8080, got %d", cfg.Server.Port)
	}
	if cfg.RateLimit.Enabled {
		t.Error("expected rate limiting to be disabled")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:     ServerConfig{Port: 8080, Environment: "development"},
			Database:   DatabaseConfig{Driver: DriverSQLite, URL: "file::memory:"},
			JWT:        JWTConfig{Secret: "secret", AccessTokenExpiry: time.Hour},
			Storage:    StorageConfig{Dir: "/tmp/uploads", MaxUploadSize: 1024},
			Worker:     WorkerConfig{Interval: time.Minute, LeaseTTL: time.Minute},
			Log:        LogConfig{Level: "info", Format: "json"},
			BcryptCost: 10,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Database.Driver = "mysql" },
			wantErr: "DATABASE_DRIVER",
		},
		{
			name: "default secret in production",
			mutate: func(c *Config) {
				c.Server.Environment = "production"
				c.JWT.Secret = defaultJWTSecret
			},
			wantErr: "JWT_SECRET must be changed",
		},
		{
			name: "lease without ttl",
			mutate: func(c *Config) {
				c.Redis.URL = "redis://localhost:6379/0"
				c.Worker.LeaseTTL = 0
			},
			wantErr: "WORKER_LEASE_TTL",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: "LOG_FORMAT",
		},
		{
			name:    "bcrypt cost too low",
			mutate:  func(c *Config) { c.BcryptCost = 2 },
			wantErr: "BCRYPT_COST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
