package project

import (
	"slices"
	"strings"

	"github.com/fluxcrew/lifecycle/internal/domain"
	"github.com/fluxcrew/lifecycle/internal/domain/task"
)

// Project represents a named collection of tasks owned by one member.
// Channel and Message reference the external display resources of the
// chat platform; they are opaque to the lifecycle engine.
type Project struct {
	ID      string
	Name    string
	Owner   string
	Members []string
	Channel string
	Message string
	Tasks   []task.Task
	Index   int
}

// Validate checks business rules for the Project entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Project) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.Owner) == "" {
		fields["owner"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// IsOwner reports whether member owns the project.
func (p *Project) IsOwner(member string) bool {
	return member != "" && p.Owner == member
}

// HasMember reports whether member is in the member set.
func (p *Project) HasMember(member string) bool {
	return slices.Contains(p.Members, member)
}

// AddMembers unions members into the member set and returns the ones that
// were newly added.
func (p *Project) AddMembers(members ...string) []string {
	var added []string
	for _, m := range members {
		if m == "" || p.HasMember(m) {
			continue
		}
		p.Members = append(p.Members, m)
		added = append(added, m)
	}
	return added
}

// CanWorkOn reports whether member may complete or revoke t: the project
// owner or any member assigned to the task.
func (p *Project) CanWorkOn(member string, t *task.Task) bool {
	return p.IsOwner(member) || t.IsAssigned(member)
}

// FindTask returns a pointer into Tasks for the task named name, or nil.
// Names are case-sensitive.
func (p *Project) FindTask(name string) *task.Task {
	for i := range p.Tasks {
		if p.Tasks[i].Name == name {
			return &p.Tasks[i]
		}
	}
	return nil
}

// TaskByID returns a pointer into Tasks for the task with the given id, or nil.
func (p *Project) TaskByID(id string) *task.Task {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return &p.Tasks[i]
		}
	}
	return nil
}

// AddTask appends t with Index set to its position. Returns
// domain.ErrConflict if a task with the same name exists.
func (p *Project) AddTask(t task.Task) (*task.Task, error) {
	if p.FindTask(t.Name) != nil {
		return nil, domain.ErrConflict
	}
	t.Project = p.Name
	t.Index = len(p.Tasks)
	p.Tasks = append(p.Tasks, t)
	return &p.Tasks[t.Index], nil
}

// Clone returns a deep copy of the project including its tasks.
func (p Project) Clone() Project {
	p.Members = slices.Clone(p.Members)
	tasks := make([]task.Task, len(p.Tasks))
	for i := range p.Tasks {
		tasks[i] = p.Tasks[i].Clone()
	}
	p.Tasks = tasks
	return p
}
