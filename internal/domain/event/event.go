// Package event defines the domain events emitted by the lifecycle engine
// for notification collaborators. Each event carries the identifiers and
// values needed to render a message without querying engine state.
package event

import "time"

// Kind names a domain event.
type Kind string

const (
	ProjectCreated     Kind = "project_created"
	ProjectMemberAdded Kind = "project_member_added"
	ProjectDeleted     Kind = "project_deleted"
	TaskCreated        Kind = "task_created"
	TaskMemberUpdated  Kind = "task_member_updated"
	TaskCompleted      Kind = "task_completed"
	TaskRevoked        Kind = "task_revoked"
	TaskDue            Kind = "task_due"
	ReminderDue        Kind = "reminder_due"
)

// Event is a single notification. Members lists the members the event is
// about: members added for membership events, the assigned set for task
// transitions, the author for reminders. Awards maps member to the points
// credited (positive) or refunded (negative) by a completion or revocation.
type Event struct {
	Kind       Kind
	Guild      string
	Project    string
	ProjectID  string
	Task       string
	TaskID     string
	Members    []string
	Value      int
	Awards     map[string]int
	Progress   string
	Message    string
	OccurredAt time.Time
}
