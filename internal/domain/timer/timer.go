// Package timer defines the durable record behind every deferred callback so
// pending timers survive a process restart.
package timer

import (
	"strings"
	"time"

	"github.com/fluxcrew/lifecycle/internal/domain"
)

// Kind selects the handler that runs when a record fires.
type Kind string

const (
	KindTaskDue  Kind = "task_due"
	KindReminder Kind = "reminder"
)

// Payload keys.
const (
	PayloadProjectID  = "project_id"
	PayloadTaskID     = "task_id"
	PayloadReminderID = "reminder_id"
)

// Record is a persisted {fire_at, event_kind, payload} triple. ID is unique
// in the timers collection; task-due records reuse the task id so they can
// be cancelled without a lookup.
type Record struct {
	ID      string
	Guild   string
	Kind    Kind
	FireAt  time.Time
	Payload map[string]string
}

// Validate checks that the record can be armed.
func (r *Record) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.ID) == "" {
		fields["id"] = domain.MsgRequired
	}
	if r.Kind == "" {
		fields["kind"] = domain.MsgRequired
	}
	if r.FireAt.IsZero() {
		fields["fire_at"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Delay is how long until the record fires, clamped at zero.
func (r *Record) Delay(now time.Time) time.Duration {
	return max(r.FireAt.Sub(now), 0)
}

// NewTaskDue builds the due-expiry record for a task.
func NewTaskDue(guild, projectID, taskID string, due time.Time) Record {
	return Record{
		ID:     taskID,
		Guild:  guild,
		Kind:   KindTaskDue,
		FireAt: due,
		Payload: map[string]string{
			PayloadProjectID: projectID,
			PayloadTaskID:    taskID,
		},
	}
}

// NewReminder builds the delivery record for a reminder.
func NewReminder(reminderID string, at time.Time) Record {
	return Record{
		ID:      reminderID,
		Kind:    KindReminder,
		FireAt:  at,
		Payload: map[string]string{PayloadReminderID: reminderID},
	}
}
