package ports

import (
	"context"
	"time"

	"github.com/fluxcrew/lifecycle/internal/domain/points"
	"github.com/fluxcrew/lifecycle/internal/domain/project"
	"github.com/fluxcrew/lifecycle/internal/domain/reminder"
	"github.com/fluxcrew/lifecycle/internal/domain/task"
)

// LifecycleService defines the service port for project and task state
// transitions within one guild. Implemented by the application layer; called
// by inbound adapters (handlers).
//
// Every mutating operation takes the caller's member id. Permission checks
// run before any state is touched and fail with domain.ErrForbidden.
// Lookups that miss fail with domain.ErrNotFound and change nothing.
type LifecycleService interface {
	// CreateProject creates an empty project owned by caller, recording the
	// external channel and status message it was given.
	// Returns domain.ErrConflict if the name is taken in the guild.
	CreateProject(ctx context.Context, guild, caller string, in NewProject) (*project.Project, error)

	// ListProjects returns the guild's projects in creation order.
	ListProjects(ctx context.Context, guild string) ([]project.Project, error)

	// GetProject returns a single project with its tasks.
	GetProject(ctx context.Context, guild, name string) (*project.Project, error)

	// DeleteProject removes a project and disarms the due timers of its
	// tasks. Owner only.
	DeleteProject(ctx context.Context, guild, caller, name string) error

	// AddProjectMembers unions members into the project and returns the ones
	// that were newly added. Owner only.
	AddProjectMembers(ctx context.Context, guild, caller, name string, members []string) ([]string, error)

	// UpdateProjectChannel records the external channel the project is
	// displayed in. Owner only.
	UpdateProjectChannel(ctx context.Context, guild, caller, name, channel string) (*project.Project, error)

	// SetProjectCategory records the channel category new project channels
	// are created under.
	SetProjectCategory(ctx context.Context, guild, category string) error

	// ProjectProgress reports completion of the named project.
	ProjectProgress(ctx context.Context, guild, name string) (*Progress, error)

	// CreateTask adds a pending task, assigns the creator and arms its due
	// timer. Owner only.
	// Returns domain.ErrConflict if the name is taken in the project.
	CreateTask(ctx context.Context, guild, caller string, in NewTask) (*task.Task, error)

	// AssignTask unions members into the task's assigned set and returns the
	// ones that were newly added. Owner only.
	AssignTask(ctx context.Context, guild, caller, projectName, taskName string, members []string) ([]string, error)

	// CompleteTask marks the task completed and awards every assigned member
	// the bonus-adjusted value. Owner or assignee.
	// Returns domain.ErrConflict if the task is already completed.
	CompleteTask(ctx context.Context, guild, caller, projectName, taskName string) (*Transition, error)

	// RevokeTask reverts a completed task to pending and refunds exactly
	// what was awarded. Owner or assignee.
	// Returns domain.ErrConflict if the task is not completed.
	RevokeTask(ctx context.Context, guild, caller, projectName, taskName string) (*Transition, error)

	// AdjustTaskValue adds delta to the task's value. Owner only.
	// Returns domain.ErrValidation if the value would go negative.
	AdjustTaskValue(ctx context.Context, guild, caller, projectName, taskName string, delta int) (*task.Task, error)
}

// PointsService defines the read side of the points ledger.
type PointsService interface {
	// Balance returns member's point total in guild; zero if the member has
	// never been awarded.
	Balance(ctx context.Context, guild, member string) (int, error)

	// Leaderboard returns one 0-based page of the guild's ranking.
	Leaderboard(ctx context.Context, guild string, page int) (*points.Page, error)

	// History returns the ledger entries for member on the named task,
	// oldest first.
	History(ctx context.Context, guild, member, taskName string) ([]points.Entry, error)
}

// ReminderService defines the service port for self-addressed reminders.
type ReminderService interface {
	// CreateReminder schedules message for delivery to author at the given
	// time. A time in the past fires immediately.
	CreateReminder(ctx context.Context, author, message string, at time.Time) (*reminder.Reminder, error)

	// ListReminders returns author's pending reminders ordered by fire time.
	ListReminders(ctx context.Context, author string) ([]reminder.Reminder, error)

	// CancelReminder removes a pending reminder. Only the author may cancel.
	CancelReminder(ctx context.Context, author, id string) error
}

// NewProject carries the input of LifecycleService.CreateProject. Member
// joins the owner as an initial member; empty means the owner alone.
type NewProject struct {
	Name    string
	Member  string
	Channel string
	Message string
}

// NewTask carries the input of LifecycleService.CreateTask.
type NewTask struct {
	Project string
	Name    string
	Value   int
	Due     time.Time
}

// Progress is a project's completion summary. HasTasks is false, and Percent
// meaningless, when the project has no tasks.
type Progress struct {
	Project  string
	Percent  int
	HasTasks bool
	Bar      string
}

// Transition reports the outcome of a complete or revoke: the task after the
// change, the points credited (positive) or refunded (negative) per member,
// and the project's new progress.
type Transition struct {
	Task     task.Task
	Awards   map[string]int
	Progress Progress
}
