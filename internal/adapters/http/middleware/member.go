package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/fluxcrew/lifecycle/internal/platform/httpclient"
)

// HeaderMemberID carries the id of the chat member issuing a command. The
// gateway in front of this service authenticates the member; the header is
// trusted as given.
const HeaderMemberID = "X-Member-ID"

type memberKey struct{}

// WithMember returns a new context carrying the calling member id. Outbound
// document API calls made with it carry the same X-Member-ID.
func WithMember(ctx context.Context, member string) context.Context {
	ctx = httpclient.WithMember(ctx, member)
	return context.WithValue(ctx, memberKey{}, member)
}

// MemberFromContext extracts the calling member id from the context.
// Returns an empty string if the request carried none.
func MemberFromContext(ctx context.Context) string {
	if m, ok := ctx.Value(memberKey{}).(string); ok {
		return m
	}
	return ""
}

// Member returns middleware that reads X-Member-ID into the request context.
// Requests without the header pass through; handlers that mutate state
// reject them.
//
// Register after CorrelationID and before Logging so the request logger is
// enriched with the member.
func Member() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := strings.TrimSpace(r.Header.Get(HeaderMemberID))
			if m == "" {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithMember(r.Context(), m)))
		})
	}
}
