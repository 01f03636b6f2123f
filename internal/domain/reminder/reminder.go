// Package reminder defines a member's self-addressed reminder.
package reminder

import (
	"strings"
	"time"

	"github.com/fluxcrew/lifecycle/internal/domain"
)

// maxMessageLen bounds the stored reminder text.
const maxMessageLen = 2000

// Reminder is delivered to Author once FireAt passes.
type Reminder struct {
	ID        string
	Author    string
	Message   string
	FireAt    time.Time
	CreatedAt time.Time
}

// Validate checks business rules for the Reminder entity.
func (r *Reminder) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Author) == "" {
		fields["author"] = domain.MsgRequired
	}
	switch msg := strings.TrimSpace(r.Message); {
	case msg == "":
		fields["message"] = domain.MsgRequired
	case len(msg) > maxMessageLen:
		fields["message"] = "must be at most 2000 characters"
	}
	if r.FireAt.IsZero() {
		fields["at"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Text renders the delivery message.
func (r *Reminder) Text() string {
	return "You asked me to remind you about: " + r.Message
}
