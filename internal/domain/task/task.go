package task

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/fluxcrew/lifecycle/internal/domain"
)

// Task is a unit of work inside a project. It carries a point value that is
// paid out to every assigned member on completion.
//
// ID is the durable identity. Index is the task's position in its project's
// task list; it is recomputed whenever the owning community is loaded and is
// never persisted.
type Task struct {
	ID        string
	Name      string
	Project   string
	StartTime time.Time
	DueTime   time.Time
	Completed bool
	Assigned  []string
	Value     int
	Index     int
}

// Validate checks business rules for the Task entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(t.Project) == "" {
		fields["project"] = domain.MsgRequired
	}
	if t.Value < 0 {
		fields["value"] = fmt.Sprintf("must be >= 0, got %d", t.Value)
	}
	if t.DueTime.IsZero() {
		fields["due"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Status reports the task's lifecycle state.
func (t *Task) Status() Status {
	if t.Completed {
		return StatusCompleted
	}
	return StatusPending
}

// IsAssigned reports whether member is in the assigned set.
func (t *Task) IsAssigned(member string) bool {
	return slices.Contains(t.Assigned, member)
}

// Assign unions members into the assigned set and returns only the members
// that were not already present, in argument order. Duplicates and empty ids
// are ignored.
func (t *Task) Assign(members ...string) []string {
	var added []string
	for _, m := range members {
		if m == "" || t.IsAssigned(m) {
			continue
		}
		t.Assigned = append(t.Assigned, m)
		added = append(added, m)
	}
	return added
}

// Decay shrinks the task value to percent of its current value, rounded half
// to even, but never below floor.
func (t *Task) Decay(percent, floor int) {
	decayed := int(math.RoundToEven(float64(t.Value) * float64(percent) / 100))
	t.Value = max(floor, decayed)
}

// AdjustValue adds delta to the task value. The result must stay >= 0.
func (t *Task) AdjustValue(delta int) error {
	next := t.Value + delta
	if next < 0 {
		return domain.NewValidationError("value", fmt.Sprintf("must be >= 0, got %d", next))
	}
	t.Value = next
	return nil
}

// Clone returns a deep copy so callers can mutate without aliasing the
// assigned slice.
func (t Task) Clone() Task {
	t.Assigned = slices.Clone(t.Assigned)
	return t
}
