package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fluxcrew/lifecycle/internal/adapters/http/dto"
	"github.com/fluxcrew/lifecycle/internal/adapters/http/middleware"
	"github.com/fluxcrew/lifecycle/internal/domain"
)

// callerID returns the member issuing the request. Requests that mutate
// state must identify their caller, since every permission check keys off it.
func callerID(r *http.Request) (string, error) {
	m := middleware.MemberFromContext(r.Context())
	if m == "" {
		return "", fmt.Errorf("missing %s header: %w", middleware.HeaderMemberID, domain.ErrForbidden)
	}
	return m, nil
}

// pageParam parses the optional 0-based ?page= query parameter.
func pageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 0, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return 0, domain.NewValidationError("page", "must be a non-negative integer")
	}
	return page, nil
}

// pathParams extracts the named chi URL params in order.
func pathParams(r *http.Request, names ...string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = chi.URLParam(r, n)
	}
	return out
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
