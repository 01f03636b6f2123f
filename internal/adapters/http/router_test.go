package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/fluxcrew/lifecycle/internal/adapters/http"
	"github.com/fluxcrew/lifecycle/internal/adapters/http/handlers"
	"github.com/fluxcrew/lifecycle/internal/adapters/http/middleware"
	"github.com/fluxcrew/lifecycle/internal/domain/project"
	"github.com/fluxcrew/lifecycle/internal/ports"
	"github.com/fluxcrew/lifecycle/mocks"
)

type testServices struct {
	lifecycle *mocks.MockLifecycleService
	points    *mocks.MockPointsService
	reminders *mocks.MockReminderService
	registry  *mocks.MockHealthRegistry
}

func newHandlers(t *testing.T) (adapthttp.Handlers, testServices) {
	t.Helper()
	s := testServices{
		lifecycle: mocks.NewMockLifecycleService(t),
		points:    mocks.NewMockPointsService(t),
		reminders: mocks.NewMockReminderService(t),
		registry:  mocks.NewMockHealthRegistry(t),
	}
	return adapthttp.Handlers{
		Lifecycle: handlers.NewLifecycleHandler(s.lifecycle),
		Points:    handlers.NewPointsHandler(s.points),
		Reminders: handlers.NewReminderHandler(s.reminders),
		Health:    handlers.NewHealthHandler(s.registry),
		Events: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := r.Context().Deadline(); ok {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		}),
	}, s
}

func newTestRouter(t *testing.T) (http.Handler, testServices) {
	t.Helper()
	h, s := newHandlers(t)
	return adapthttp.NewRouter(h, time.Second, middleware.Member()), s
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	const g = "/api/v1/guilds/{guild}"
	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/v1/events"},
		{http.MethodGet, g + "/projects"},
		{http.MethodPost, g + "/projects"},
		{http.MethodGet, g + "/projects/{project}"},
		{http.MethodDelete, g + "/projects/{project}"},
		{http.MethodPost, g + "/projects/{project}/members"},
		{http.MethodPut, g + "/projects/{project}/channel"},
		{http.MethodPut, g + "/category"},
		{http.MethodPost, g + "/projects/{project}/tasks"},
		{http.MethodPost, g + "/projects/{project}/tasks/{task}/assign"},
		{http.MethodPost, g + "/projects/{project}/tasks/{task}/complete"},
		{http.MethodPost, g + "/projects/{project}/tasks/{task}/revoke"},
		{http.MethodPatch, g + "/projects/{project}/tasks/{task}/value"},
		{http.MethodGet, g + "/points/leaderboard"},
		{http.MethodGet, g + "/points/{member}"},
		{http.MethodGet, g + "/points/{member}/history"},
		{http.MethodGet, "/api/v1/reminders"},
		{http.MethodPost, "/api/v1/reminders"},
		{http.MethodDelete, "/api/v1/reminders/{id}"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	h, s := newHandlers(t)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(h, 0, testMW)

	s.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationCreateProject(t *testing.T) {
	t.Parallel()

	router, s := newTestRouter(t)

	s.lifecycle.EXPECT().CreateProject(mock.Anything, "g7", "U1", ports.NewProject{Name: "Garden"}).
		Return(&project.Project{ID: "p1", Name: "Garden", Owner: "U1", Members: []string{"U1"}}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/guilds/g7/projects",
		strings.NewReader(`{"name":"Garden"}`))
	req.Header.Set(middleware.HeaderMemberID, "U1")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
}

func TestRouter_IntegrationListProjects(t *testing.T) {
	t.Parallel()

	router, s := newTestRouter(t)

	s.lifecycle.EXPECT().ListProjects(mock.Anything, "g7").Return([]project.Project{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/guilds/g7/projects", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_EventsBypassTimeout(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events?guild=g7", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d (events stream ran under a request deadline)", rec.Code, http.StatusNoContent)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/guilds/g7/projects", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
