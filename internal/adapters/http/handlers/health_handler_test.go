package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/fluxcrew/lifecycle/internal/adapters/http/dto"
	"github.com/fluxcrew/lifecycle/internal/adapters/http/handlers"
	"github.com/fluxcrew/lifecycle/internal/ports"
	"github.com/fluxcrew/lifecycle/mocks"
)

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	h.Liveness(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]string](t, rec)
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want %q", resp["status"], "ok")
	}
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	degraded := fmt.Errorf("document-api: %w (circuit breaker half-open)", ports.ErrDegraded)

	tests := []struct {
		name       string
		results    map[string]error
		wantCode   int
		wantStatus string
		wantChecks []dto.HealthCheckResponse
	}{
		{
			name:       "no checkers",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: []dto.HealthCheckResponse{},
		},
		{
			name:       "all healthy",
			results:    map[string]error{"scheduler": nil, "sqlite": nil},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: []dto.HealthCheckResponse{
				{Name: "scheduler", Status: "ok"},
				{Name: "sqlite", Status: "ok"},
			},
		},
		{
			name:       "degraded stays ready",
			results:    map[string]error{"document-api": degraded, "scheduler": nil},
			wantCode:   http.StatusOK,
			wantStatus: "degraded",
			wantChecks: []dto.HealthCheckResponse{
				{Name: "document-api", Status: "degraded", Error: degraded.Error()},
				{Name: "scheduler", Status: "ok"},
			},
		},
		{
			name: "failing wins over degraded",
			results: map[string]error{
				"sqlite":       errors.New("database is locked"),
				"document-api": degraded,
				"scheduler":    nil,
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
			wantChecks: []dto.HealthCheckResponse{
				{Name: "document-api", Status: "degraded", Error: degraded.Error()},
				{Name: "scheduler", Status: "ok"},
				{Name: "sqlite", Status: "failing", Error: "database is locked"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)

			h := handlers.NewHealthHandler(registry)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
			h.Readiness(rec, req)

			requireStatus(t, rec, tt.wantCode)

			resp := decodeJSON[dto.ReadinessResponse](t, rec)
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			if len(resp.Checks) != len(tt.wantChecks) {
				t.Fatalf("len(checks) = %d, want %d", len(resp.Checks), len(tt.wantChecks))
			}
			for i, want := range tt.wantChecks {
				if resp.Checks[i] != want {
					t.Errorf("checks[%d] = %+v, want %+v", i, resp.Checks[i], want)
				}
			}
		})
	}
}
