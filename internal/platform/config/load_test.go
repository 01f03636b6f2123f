package config_test

import (
	"slices"
	"testing"
	"time"

	"github.com/fluxcrew/lifecycle/internal/platform/config"
)

const configDir = "../../../configs"

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Client.Retry.MaxAttempts != 3 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Client.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Client.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Client.CircuitBreaker.MaxFailures)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		env   []string
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "simple key",
			env:  []string{"APP_SERVER_PORT=9090"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Server.Port != 9090 {
					t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
				}
			},
		},
		{
			name: "underscore inside field name",
			env:  []string{"APP_SERVER_READ_TIMEOUT=15s"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Server.ReadTimeout != 15*time.Second {
					t.Errorf("Server.ReadTimeout = %v, want 15s", cfg.Server.ReadTimeout)
				}
			},
		},
		{
			name: "deeply nested key",
			env:  []string{"APP_CLIENT_RETRY_MAX_ATTEMPTS=7"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Client.Retry.MaxAttempts != 7 {
					t.Errorf("Client.Retry.MaxAttempts = %d, want 7", cfg.Client.Retry.MaxAttempts)
				}
			},
		},
		{
			name: "comma-separated list",
			env:  []string{"APP_EVENTS_ALLOWED_ORIGINS=chat.example.com, *.fluxcrew.dev,"},
			check: func(t *testing.T, cfg *config.Config) {
				want := []string{"chat.example.com", "*.fluxcrew.dev"}
				if !slices.Equal(cfg.Events.AllowedOrigins, want) {
					t.Errorf("Events.AllowedOrigins = %v, want %v", cfg.Events.AllowedOrigins, want)
				}
			},
		},
		{
			name: "unrelated variables ignored",
			env:  []string{"HOME=/root", "SERVER_PORT=1"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Server.Port != 8080 {
					t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.Load("local", config.WithConfigDir(configDir), config.WithEnviron(tt.env))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_StoreAndLifecycleDefaults(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Lifecycle.DecayPercent != 10 {
		t.Errorf("Lifecycle.DecayPercent = %d, want 10", cfg.Lifecycle.DecayPercent)
	}
	if cfg.Lifecycle.LeaderboardPageSize != 10 {
		t.Errorf("Lifecycle.LeaderboardPageSize = %d, want 10", cfg.Lifecycle.LeaderboardPageSize)
	}
	if cfg.Events.SendBuffer != 16 {
		t.Errorf("Events.SendBuffer = %d, want 16 (default)", cfg.Events.SendBuffer)
	}
	if cfg.Store.OpTimeout != 5*time.Second {
		t.Errorf("Store.OpTimeout = %v, want 5s", cfg.Store.OpTimeout)
	}
}

func TestLoad_EnvOverrideStorePath(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("local", config.WithConfigDir(configDir), config.WithEnviron([]string{
		"APP_STORE_DRIVER=sqlite",
		"APP_STORE_SQLITE_PATH=/tmp/other.db",
	}))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Store.Driver != "sqlite" || cfg.Store.SQLitePath != "/tmp/other.db" {
		t.Errorf("Store = %+v, want sqlite at /tmp/other.db", cfg.Store)
	}
}

func TestLoad_TestProfileUsesMemoryStore(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("test")
	if err != nil {
		t.Fatalf("Load(\"test\") error: %v", err)
	}

	if cfg.Store.Driver != "memory" {
		t.Errorf("Store.Driver = %q, want \"memory\"", cfg.Store.Driver)
	}
	if cfg.Lifecycle.RestoreTimers {
		t.Error("Lifecycle.RestoreTimers = true, want false for test")
	}
}

func TestValidate_Sections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"invalid port", func(c *config.Config) { c.Server.Port = 0 }},
		{"invalid log level", func(c *config.Config) { c.Log.Level = "verbose" }},
		{"unknown store driver", func(c *config.Config) { c.Store.Driver = "postgres" }},
		{"sqlite without path", func(c *config.Config) { c.Store.Driver = "sqlite"; c.Store.SQLitePath = "" }},
		{"zero op timeout", func(c *config.Config) { c.Store.OpTimeout = 0 }},
		{"decay above 100", func(c *config.Config) { c.Lifecycle.DecayPercent = 101 }},
		{"zero page size", func(c *config.Config) { c.Lifecycle.LeaderboardPageSize = 0 }},
		{"zero send buffer", func(c *config.Config) { c.Events.SendBuffer = 0 }},
		{"remote without base url", func(c *config.Config) { c.Store.Driver = "remote"; c.Client.BaseURL = "" }},
		{"rate limit without burst", func(c *config.Config) {
			c.Store.Driver = "remote"
			c.Client.RateLimit = config.RateLimitConfig{RequestsPerSecond: 5}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validBaseConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() returned nil, want error")
			}
		})
	}
}

func TestValidate_ClientIgnoredForLocalStores(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Client.BaseURL = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil for memory store", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:8081",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
		Store: config.StoreConfig{
			Driver:     "memory",
			SQLitePath: "lifecycle.db",
			OpTimeout:  5 * time.Second,
		},
		Lifecycle: config.LifecycleConfig{
			DecayPercent:        10,
			MinDecayedValue:     1,
			LeaderboardPageSize: 10,
		},
		Events: config.EventsConfig{
			SendBuffer:   16,
			PingInterval: 30 * time.Second,
		},
	}
}
