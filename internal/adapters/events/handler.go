package events

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	ws "github.com/coder/websocket"

	"github.com/fluxcrew/lifecycle/internal/adapters/http/dto"
	"github.com/fluxcrew/lifecycle/internal/adapters/http/middleware"
	"github.com/fluxcrew/lifecycle/internal/domain"
)

// Handler upgrades GET /api/v1/events?guild={guild} to a websocket and runs
// it as a hub client. The member from X-Member-ID, when present, also
// receives its own reminders.
type Handler struct {
	hub            *Hub
	originPatterns []string
	logger         *slog.Logger
}

// NewHandler creates a Handler. originPatterns lists the browser origins
// allowed to connect; an empty list allows same-origin requests only.
func NewHandler(hub *Hub, originPatterns []string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{hub: hub, originPatterns: originPatterns, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	guild := strings.TrimSpace(r.URL.Query().Get("guild"))
	member := middleware.MemberFromContext(r.Context())
	if guild == "" && member == "" {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("guild", domain.MsgRequired))
		return
	}

	// The server's write timeout would otherwise cut the long-lived
	// connection after the first interval.
	rc := http.NewResponseController(w)
	_ = rc.SetWriteDeadline(time.Time{})
	_ = rc.SetReadDeadline(time.Time{})

	conn, err := ws.Accept(w, r, &ws.AcceptOptions{OriginPatterns: h.originPatterns})
	if err != nil {
		h.logger.WarnContext(r.Context(), "websocket accept failed", slog.Any("error", err))
		return
	}

	h.logger.InfoContext(r.Context(), "event subscriber connected",
		slog.String("guild", guild),
		slog.String("member", member),
	)
	NewClient(h.hub, conn, guild, member).Run(r.Context())
	h.logger.InfoContext(r.Context(), "event subscriber disconnected", slog.String("guild", guild))
}
