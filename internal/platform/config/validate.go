package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	var clientErr error
	if c.Store.Driver == "remote" {
		clientErr = c.Client.validate()
	}

	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		clientErr,
		c.Telemetry.validate(),
		c.Store.validate(),
		c.Lifecycle.validate(),
		c.Events.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

// validate checks the client section. Only the remote store uses it.
func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1, got %d", cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	var errs []error

	switch s.Driver {
	case "memory", "remote":
	case "sqlite":
		if s.SQLitePath == "" {
			errs = append(errs, errors.New("store.sqlite_path must not be empty when driver is sqlite"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.driver must be one of: memory, sqlite, remote; got %q", s.Driver))
	}
	if s.OpTimeout <= 0 {
		errs = append(errs, errors.New("store.op_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LifecycleConfig) validate() error {
	var errs []error

	if l.DecayPercent < 0 || l.DecayPercent > 100 {
		errs = append(errs, fmt.Errorf("lifecycle.decay_percent must be between 0 and 100, got %d", l.DecayPercent))
	}
	if l.MinDecayedValue < 0 {
		errs = append(errs, fmt.Errorf("lifecycle.min_decayed_value must not be negative, got %d", l.MinDecayedValue))
	}
	if l.LeaderboardPageSize < 1 {
		errs = append(errs, fmt.Errorf("lifecycle.leaderboard_page_size must be >= 1, got %d", l.LeaderboardPageSize))
	}

	return errors.Join(errs...)
}

func (e *EventsConfig) validate() error {
	var errs []error

	if e.SendBuffer < 1 {
		errs = append(errs, fmt.Errorf("events.send_buffer must be >= 1, got %d", e.SendBuffer))
	}
	if e.PingInterval <= 0 {
		errs = append(errs, errors.New("events.ping_interval must be positive"))
	}

	return errors.Join(errs...)
}
