package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fluxcrew/lifecycle/internal/adapters/http/dto"
	"github.com/fluxcrew/lifecycle/internal/domain"
	"github.com/fluxcrew/lifecycle/internal/ports"
)

// PointsHandler handles read-only HTTP requests against the points ledger.
type PointsHandler struct {
	svc ports.PointsService
}

// NewPointsHandler creates a new PointsHandler with the given service port.
func NewPointsHandler(svc ports.PointsService) *PointsHandler {
	return &PointsHandler{svc: svc}
}

// Leaderboard handles GET /points/leaderboard?page=N.
func (h *PointsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	board, err := h.svc.Leaderboard(r.Context(), chi.URLParam(r, "guild"), page)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToLeaderboardResponse(board))
}

// Balance handles GET /points/{member}.
func (h *PointsHandler) Balance(w http.ResponseWriter, r *http.Request) {
	p := pathParams(r, "guild", "member")

	total, err := h.svc.Balance(r.Context(), p[0], p[1])
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{Member: p[1], Points: total})
}

// History handles GET /points/{member}/history?task=NAME.
func (h *PointsHandler) History(w http.ResponseWriter, r *http.Request) {
	taskName := strings.TrimSpace(r.URL.Query().Get("task"))
	if taskName == "" {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("task", domain.MsgRequired))
		return
	}
	p := pathParams(r, "guild", "member")

	entries, err := h.svc.History(r.Context(), p[0], p[1], taskName)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToHistoryResponse(p[1], entries))
}
