package docapi

import "context"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name the underlying
// [httpclient.Client] uses for tracing and metrics.
func (c *Client) Name() string {
	return "document-api"
}

// HealthCheck reports the document API's availability from the circuit
// breaker; no network call is made. A half-open breaker wraps
// ports.ErrDegraded and an open one is failing.
//
// Unlike the embedded stores, the remote store is the only copy of
// lifecycle state, so readiness follows it.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}
