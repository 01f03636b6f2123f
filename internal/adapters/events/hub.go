// Package events is the realtime notification adapter. It implements
// ports.EventPublisher by broadcasting every domain event as JSON to the
// websocket clients subscribed to the event's guild.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fluxcrew/lifecycle/internal/domain/event"
	"github.com/fluxcrew/lifecycle/internal/ports"
)

var _ ports.EventPublisher = (*Hub)(nil)

const (
	defaultSendBuffer   = 16
	defaultPingInterval = 30 * time.Second
)

// Message is the wire form of a domain event.
type Message struct {
	Type       string         `json:"type"`
	Guild      string         `json:"guild,omitempty"`
	Project    string         `json:"project,omitempty"`
	ProjectID  string         `json:"project_id,omitempty"`
	Task       string         `json:"task,omitempty"`
	TaskID     string         `json:"task_id,omitempty"`
	Members    []string       `json:"members,omitempty"`
	Value      int            `json:"value,omitempty"`
	Awards     map[string]int `json:"awards,omitempty"`
	Progress   string         `json:"progress,omitempty"`
	Message    string         `json:"message,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// NewMessage converts a domain event to its wire form.
func NewMessage(e event.Event) Message {
	return Message{
		Type:       string(e.Kind),
		Guild:      e.Guild,
		Project:    e.Project,
		ProjectID:  e.ProjectID,
		Task:       e.Task,
		TaskID:     e.TaskID,
		Members:    e.Members,
		Value:      e.Value,
		Awards:     e.Awards,
		Progress:   e.Progress,
		Message:    e.Message,
		OccurredAt: e.OccurredAt,
	}
}

// Option configures a Hub.
type Option func(*Hub)

// WithSendBuffer sets the per-client queue length. Messages for a client
// whose queue is full are dropped.
func WithSendBuffer(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.sendBuffer = n
		}
	}
}

// WithPingInterval sets how often idle clients are pinged.
func WithPingInterval(d time.Duration) Option {
	return func(h *Hub) {
		if d > 0 {
			h.pingInterval = d
		}
	}
}

// Hub maintains the set of active websocket clients and broadcasts events.
type Hub struct {
	mu           sync.RWMutex
	clients      map[*Client]struct{}
	closed       bool
	sendBuffer   int
	pingInterval time.Duration
	logger       *slog.Logger
}

// NewHub creates a Hub. A nil logger discards output.
func NewHub(logger *slog.Logger, opts ...Option) *Hub {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &Hub{
		clients:      make(map[*Client]struct{}),
		sendBuffer:   defaultSendBuffer,
		pingInterval: defaultPingInterval,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register adds a client to the hub. Registering on a closed hub closes the
// client immediately.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		c.stop()
		close(c.send)
		return
	}
	h.clients[c] = struct{}{}
}

// Unregister removes a client from the hub and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Publish broadcasts e to every client subscribed to its guild, and for
// guildless events (reminders) to clients of the addressed members.
// Publish never blocks on a slow client.
func (h *Hub) Publish(_ context.Context, e event.Event) error {
	data, err := json.Marshal(NewMessage(e))
	if err != nil {
		return fmt.Errorf("marshaling %s event: %w", e.Kind, err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		if !c.wants(e) {
			continue
		}
		select {
		case c.send <- data:
		default:
			h.logger.Warn("dropping event for slow client",
				slog.String("kind", string(e.Kind)),
				slog.String("guild", c.guild),
			)
		}
	}
	return nil
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client and rejects new ones. Hijacked websocket
// connections are not drained by http.Server.Shutdown, so the process calls
// Close on the way out.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		c.stop()
	}
}
