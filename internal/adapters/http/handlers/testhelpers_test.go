package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fluxcrew/lifecycle/internal/adapters/http/middleware"
	"github.com/fluxcrew/lifecycle/internal/domain/project"
	"github.com/fluxcrew/lifecycle/internal/domain/task"
)

const (
	testGuild  = "g1"
	testMember = "U1"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// newRequest builds a request from testMember with the given chi params.
func newRequest(method, target string, body io.Reader, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req = req.WithContext(middleware.WithMember(req.Context(), testMember))
	return withChiParams(req, params)
}

func validTask() task.Task {
	return task.Task{
		ID:        "t-1",
		Name:      "Weed",
		Project:   "Garden",
		StartTime: testTime,
		DueTime:   testTime.Add(48 * time.Hour),
		Assigned:  []string{testMember},
		Value:     20,
	}
}

func validProject() project.Project {
	return project.Project{
		ID:      "p-1",
		Name:    "Garden",
		Owner:   testMember,
		Members: []string{testMember},
		Tasks:   []task.Task{validTask()},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
