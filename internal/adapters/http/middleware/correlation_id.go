package middleware

import (
	"context"
	"net/http"

	"github.com/fluxcrew/lifecycle/internal/platform/httpclient"
)

const (
	headerCorrelationID = "X-Correlation-ID"

	// maxIncomingIDLen bounds client supplied request and correlation ids;
	// they end up in every log line and in outbound document API calls.
	maxIncomingIDLen = 128
)

type correlationIDKey struct{}

// WithCorrelationID stores id in ctx for logging and, through
// httpclient.WithCorrelationID, for the remote document store's outbound
// X-Correlation-ID header.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey{}, id)
	return httpclient.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext returns the correlation ID, or "" when none is set.
func CorrelationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// CorrelationID reuses a well-formed incoming X-Correlation-ID or falls back
// to the request ID. Must run after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerCorrelationID)
			if !validIncomingID(id) {
				id = RequestIDFromContext(r.Context())
			}
			ctx := WithCorrelationID(r.Context(), id)
			w.Header().Set(headerCorrelationID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validIncomingID accepts non-empty printable ASCII without spaces.
// It guards both X-Request-ID and X-Correlation-ID.
func validIncomingID(id string) bool {
	if id == "" || len(id) > maxIncomingIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
