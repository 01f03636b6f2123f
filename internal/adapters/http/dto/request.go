package dto

import (
	"strings"
	"time"

	"github.com/fluxcrew/lifecycle/internal/domain"
	"github.com/fluxcrew/lifecycle/internal/domain/task"
	"github.com/fluxcrew/lifecycle/internal/ports"
)

const (
	msgRequired     = domain.MsgRequired
	msgMustNotEmpty = "must not be empty"
	msgOneOfDue     = "exactly one of due and due_in is required"
)

// CreateProjectRequest represents the JSON body for creating a new project.
// Member, Channel and Message are optional.
type CreateProjectRequest struct {
	Name    string `json:"name"`
	Member  string `json:"member,omitempty"`
	Channel string `json:"channel,omitempty"`
	Message string `json:"message,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateProjectRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return domain.NewValidationError("name", msgRequired)
	}
	return nil
}

// ToNewProject converts the request into the service input.
func (r *CreateProjectRequest) ToNewProject() ports.NewProject {
	return ports.NewProject{
		Name:    r.Name,
		Member:  strings.TrimSpace(r.Member),
		Channel: r.Channel,
		Message: r.Message,
	}
}

// MembersRequest carries a list of member ids for project membership and
// task assignment.
type MembersRequest struct {
	Members []string `json:"members"`
}

// Validate rejects blank member ids. An empty list is valid; the task
// assignment endpoint treats it as "assign the caller".
func (r *MembersRequest) Validate() error {
	for _, m := range r.Members {
		if strings.TrimSpace(m) == "" {
			return domain.NewValidationError("members", msgMustNotEmpty)
		}
	}
	return nil
}

// ChannelRequest represents the JSON body for updating a project channel.
type ChannelRequest struct {
	Channel string `json:"channel"`
}

// Validate checks that required fields are present.
func (r *ChannelRequest) Validate() error {
	if strings.TrimSpace(r.Channel) == "" {
		return domain.NewValidationError("channel", msgRequired)
	}
	return nil
}

// CategoryRequest represents the JSON body for setting the project category.
type CategoryRequest struct {
	Category string `json:"category"`
}

// Validate checks that required fields are present.
func (r *CategoryRequest) Validate() error {
	if strings.TrimSpace(r.Category) == "" {
		return domain.NewValidationError("category", msgRequired)
	}
	return nil
}

// CreateTaskRequest represents the JSON body for creating a task. The due
// time is given either as an absolute RFC 3339 timestamp or as a relative
// duration such as "1w2d".
type CreateTaskRequest struct {
	Name  string     `json:"name"`
	Value int        `json:"value"`
	Due   *time.Time `json:"due,omitempty"`
	DueIn string     `json:"due_in,omitempty"`
}

// Validate checks required fields and that exactly one due form is given.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if r.Value < 0 {
		fields["value"] = "must not be negative"
	}
	if (r.Due == nil) == (r.DueIn == "") {
		fields["due"] = msgOneOfDue
	} else if r.DueIn != "" {
		if _, err := task.ParseDuration(r.DueIn); err != nil {
			fields["due_in"] = "must look like 1w2d3h4m5s"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// DueTime resolves the requested due time relative to now. Call after
// Validate.
func (r *CreateTaskRequest) DueTime(now time.Time) time.Time {
	if r.Due != nil {
		return *r.Due
	}
	d, _ := task.ParseDuration(r.DueIn)
	return now.Add(d)
}

// AdjustValueRequest represents the JSON body for changing a task's value.
type AdjustValueRequest struct {
	Delta int `json:"delta"`
}

// Validate rejects a zero delta.
func (r *AdjustValueRequest) Validate() error {
	if r.Delta == 0 {
		return domain.NewValidationError("delta", "must not be zero")
	}
	return nil
}

// CreateReminderRequest represents the JSON body for scheduling a reminder.
// As with tasks, the time is absolute (At) or relative (In).
type CreateReminderRequest struct {
	Message string     `json:"message"`
	At      *time.Time `json:"at,omitempty"`
	In      string     `json:"in,omitempty"`
}

// Validate checks required fields and that exactly one time form is given.
func (r *CreateReminderRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Message) == "" {
		fields["message"] = msgRequired
	}
	if (r.At == nil) == (r.In == "") {
		fields["at"] = "exactly one of at and in is required"
	} else if r.In != "" {
		if _, err := task.ParseDuration(r.In); err != nil {
			fields["in"] = "must look like 1w2d3h4m5s"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// FireAt resolves the requested reminder time relative to now. Call after
// Validate.
func (r *CreateReminderRequest) FireAt(now time.Time) time.Time {
	if r.At != nil {
		return *r.At
	}
	d, _ := task.ParseDuration(r.In)
	return now.Add(d)
}
