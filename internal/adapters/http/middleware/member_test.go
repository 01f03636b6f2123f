package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fluxcrew/lifecycle/internal/adapters/http/middleware"
)

func TestMember(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "header present", header: "U123", want: "U123"},
		{name: "header trimmed", header: "  U123 ", want: "U123"},
		{name: "header missing", header: "", want: ""},
		{name: "header blank", header: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			handler := middleware.Member()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = middleware.MemberFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
			if tt.header != "" {
				req.Header.Set(middleware.HeaderMemberID, tt.header)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if got != tt.want {
				t.Errorf("MemberFromContext() = %q, want %q", got, tt.want)
			}
		})
	}
}
