package ports

import (
	"context"
	"errors"
)

// ErrDegraded marks a health result where the component still serves
// requests at reduced capacity. Readiness stays up for degraded components.
var ErrDegraded = errors.New("degraded")

// HealthChecker is implemented by any component that can report its health.
// Examples: downstream API clients, database connections, cache connections.
type HealthChecker interface {
	// Name returns a human-readable identifier for this component
	// (e.g., "document-api", "database", "redis").
	Name() string

	// HealthCheck returns nil if healthy, an error wrapping ErrDegraded if
	// impaired, or any other error if failing. Implementations respect ctx.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry manages registration and execution of health checkers.
// Used by the readiness endpoint handler to determine service readiness.
type HealthRegistry interface {
	// Register adds a HealthChecker to the registry.
	Register(checker HealthChecker)

	// CheckAll executes all registered health checks and returns results
	// keyed by checker name. Nil values indicate healthy components.
	CheckAll(ctx context.Context) map[string]error
}
