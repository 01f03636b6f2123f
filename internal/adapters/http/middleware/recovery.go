package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"

	"github.com/fluxcrew/lifecycle/internal/adapters/http/dto"
)

// HeaderErrorID carries the id under which a recovered panic was logged, so
// a caller's report can be matched to the stack trace.
const HeaderErrorID = "X-Error-ID"

// Recovery returns middleware that recovers from panics in downstream
// handlers. The panic is logged with its stack trace, the calling member and
// a short error id; the client gets an RFC 9457 500 response carrying the
// same id in X-Error-ID. If the response headers were already written, only
// the log entry is emitted.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				errorID := uuid.NewString()[:8]
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("error_id", errorID),
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("member", MemberFromContext(r.Context())),
				)

				if !rw.headerWritten {
					rw.Header().Set(HeaderErrorID, errorID)
					dto.WriteProblem(rw, r, http.StatusInternalServerError, "internal error "+errorID)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
