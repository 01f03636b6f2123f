// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fluxcrew/lifecycle/internal/adapters/http/handlers"
	"github.com/fluxcrew/lifecycle/internal/adapters/http/middleware"
)

// Handlers bundles the inbound handlers mounted by NewRouter. Events may be
// nil, in which case the websocket endpoint is not registered.
type Handlers struct {
	Lifecycle *handlers.LifecycleHandler
	Points    *handlers.PointsHandler
	Reminders *handlers.ReminderHandler
	Health    *handlers.HealthHandler
	Events    http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. requestTimeout, when
// positive, bounds every request/response route; the websocket stream is
// long-lived and is mounted outside it.
func NewRouter(h Handlers, requestTimeout time.Duration, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		if h.Events != nil {
			r.Method(http.MethodGet, "/events", h.Events)
		}

		r.Group(func(r chi.Router) {
			if requestTimeout > 0 {
				r.Use(middleware.Timeout(requestTimeout))
			}

			r.Route("/guilds/{guild}", func(r chi.Router) {
				r.Get("/projects", h.Lifecycle.ListProjects)
				r.Post("/projects", h.Lifecycle.CreateProject)
				r.Get("/projects/{project}", h.Lifecycle.GetProject)
				r.Delete("/projects/{project}", h.Lifecycle.DeleteProject)
				r.Post("/projects/{project}/members", h.Lifecycle.AddProjectMembers)
				r.Put("/projects/{project}/channel", h.Lifecycle.UpdateProjectChannel)
				r.Put("/category", h.Lifecycle.SetProjectCategory)

				// Task transitions.
				r.Post("/projects/{project}/tasks", h.Lifecycle.CreateTask)
				r.Post("/projects/{project}/tasks/{task}/assign", h.Lifecycle.AssignTask)
				r.Post("/projects/{project}/tasks/{task}/complete", h.Lifecycle.CompleteTask)
				r.Post("/projects/{project}/tasks/{task}/revoke", h.Lifecycle.RevokeTask)
				r.Patch("/projects/{project}/tasks/{task}/value", h.Lifecycle.AdjustTaskValue)

				// Points ledger.
				r.Get("/points/leaderboard", h.Points.Leaderboard)
				r.Get("/points/{member}", h.Points.Balance)
				r.Get("/points/{member}/history", h.Points.History)
			})

			r.Get("/reminders", h.Reminders.ListReminders)
			r.Post("/reminders", h.Reminders.CreateReminder)
			r.Delete("/reminders/{id}", h.Reminders.CancelReminder)
		})
	})

	return r
}
