package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fluxcrew/lifecycle/internal/adapters/http/dto"
	"github.com/fluxcrew/lifecycle/internal/ports"
)

// ReminderHandler handles HTTP requests for the caller's own reminders.
type ReminderHandler struct {
	svc ports.ReminderService
	now func() time.Time
}

// NewReminderHandler creates a new ReminderHandler with the given service port.
func NewReminderHandler(svc ports.ReminderService) *ReminderHandler {
	return &ReminderHandler{svc: svc, now: time.Now}
}

// CreateReminder handles POST /api/v1/reminders.
func (h *ReminderHandler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	caller, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateReminderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateReminder(r.Context(), caller, req.Message, req.FireAt(h.now()))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToReminderResponse(created))
}

// ListReminders handles GET /api/v1/reminders.
func (h *ReminderHandler) ListReminders(w http.ResponseWriter, r *http.Request) {
	caller, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	reminders, err := h.svc.ListReminders(r.Context(), caller)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToReminderListResponse(reminders))
}

// CancelReminder handles DELETE /api/v1/reminders/{id}.
func (h *ReminderHandler) CancelReminder(w http.ResponseWriter, r *http.Request) {
	caller, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.CancelReminder(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
