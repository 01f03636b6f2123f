package events

import (
	"context"
	"slices"
	"time"

	ws "github.com/coder/websocket"

	"github.com/fluxcrew/lifecycle/internal/domain/event"
)

// Client represents a single websocket subscription. A client sees the
// events of one guild plus the reminders addressed to its member.
type Client struct {
	hub    *Hub
	conn   *ws.Conn
	send   chan []byte
	guild  string
	member string
	cancel context.CancelFunc
}

// NewClient creates a Client tied to the given hub and connection.
func NewClient(hub *Hub, conn *ws.Conn, guild, member string) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, hub.sendBuffer),
		guild:  guild,
		member: member,
		cancel: func() {},
	}
}

// Run registers the client, starts the write pump, and runs the read pump.
// It blocks until the connection is closed, then unregisters.
func (c *Client) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.cancel = cancel

	c.hub.Register(c)
	defer c.hub.Unregister(c)

	go c.writePump(ctx)
	c.readPump(ctx)
}

func (c *Client) wants(e event.Event) bool {
	if e.Guild != "" {
		return e.Guild == c.guild
	}
	return c.member != "" && slices.Contains(e.Members, c.member)
}

func (c *Client) stop() {
	c.cancel()
}

// readPump reads and discards all incoming messages. It returns on error
// (connection close), which triggers cleanup.
func (c *Client) readPump(ctx context.Context) {
	for {
		if _, _, err := c.conn.Read(ctx); err != nil {
			return
		}
	}
}

// writePump drains the send channel and writes messages to the websocket.
// It also sends periodic pings to detect stale connections.
func (c *Client) writePump(ctx context.Context) {
	ticker := time.NewTicker(c.hub.pingInterval)
	defer ticker.Stop()
	defer c.cancel()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.conn.Write(ctx, ws.MessageText, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.Ping(ctx); err != nil {
				return
			}
		case <-ctx.Done():
			_ = c.conn.Close(ws.StatusGoingAway, "server shutting down")
			return
		}
	}
}
