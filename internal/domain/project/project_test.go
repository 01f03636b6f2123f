package project

import (
	"errors"
	"testing"

	"github.com/fluxcrew/lifecycle/internal/domain"
	"github.com/fluxcrew/lifecycle/internal/domain/task"
)

func withTasks(completed ...bool) Project {
	p := Project{ID: "p-1", Name: "Website", Owner: "owner"}
	for i, c := range completed {
		p.Tasks = append(p.Tasks, task.Task{Name: string(rune('A' + i)), Completed: c})
	}
	return p
}

func TestProject_Validate(t *testing.T) {
	t.Parallel()

	p := Project{Name: "Website", Owner: "u1"}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	p = Project{}
	err := p.Validate()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *ValidationError", err)
	}
	for _, field := range []string{"name", "owner"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
		}
	}
}

func TestProject_AddMembers(t *testing.T) {
	t.Parallel()

	p := Project{Members: []string{"u1"}}
	added := p.AddMembers("u1", "u2", "u2", "")

	if len(added) != 1 || added[0] != "u2" {
		t.Errorf("AddMembers() = %v, want [u2]", added)
	}
	if len(p.Members) != 2 {
		t.Errorf("Members = %v, want [u1 u2]", p.Members)
	}
}

func TestProject_CanWorkOn(t *testing.T) {
	t.Parallel()

	p := Project{Owner: "owner"}
	tk := task.Task{Assigned: []string{"worker"}}

	tests := []struct {
		member string
		want   bool
	}{
		{"owner", true},
		{"worker", true},
		{"stranger", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := p.CanWorkOn(tt.member, &tk); got != tt.want {
			t.Errorf("CanWorkOn(%q) = %v, want %v", tt.member, got, tt.want)
		}
	}
}

func TestProject_AddTask(t *testing.T) {
	t.Parallel()

	p := withTasks(false)
	added, err := p.AddTask(task.Task{Name: "B"})
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if added.Index != 1 {
		t.Errorf("Index = %d, want 1", added.Index)
	}
	if added.Project != "Website" {
		t.Errorf("Project = %q, want %q", added.Project, "Website")
	}

	if _, err := p.AddTask(task.Task{Name: "A"}); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("AddTask(duplicate) error = %v, want ErrConflict", err)
	}
	if len(p.Tasks) != 2 {
		t.Errorf("len(Tasks) = %d, want 2", len(p.Tasks))
	}
}

func TestProject_ProgressPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		completed []bool
		want      int
		wantOK    bool
	}{
		{"no tasks", nil, 0, false},
		{"none done", []bool{false, false}, 0, true},
		{"half done", []bool{true, false}, 50, true},
		{"one of three", []bool{true, false, false}, 33, true},
		{"two of three", []bool{true, true, false}, 67, true},
		{"all done", []bool{true, true}, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := withTasks(tt.completed...)
			got, ok := p.ProgressPercent()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ProgressPercent() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestProject_ProgressBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		completed []bool
		want      string
	}{
		{"no tasks", nil, NoTasksMessage},
		{"empty", []bool{false}, "Project Progress: |----------------------| 0.0% Complete"},
		{"half", []bool{true, false}, "Project Progress: |███████████-----------| 50.0% Complete"},
		{"full", []bool{true}, "Project Progress: |██████████████████████| 100.0% Complete"},
		{"third", []bool{true, false, false}, "Project Progress: |███████---------------| 33.3% Complete"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := withTasks(tt.completed...)
			if got := p.ProgressBar(); got != tt.want {
				t.Errorf("ProgressBar() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProject_CloneDoesNotAlias(t *testing.T) {
	t.Parallel()

	p := withTasks(false)
	p.Members = []string{"u1"}
	cp := p.Clone()
	cp.Members[0] = "x"
	cp.Tasks[0].Completed = true

	if p.Members[0] != "u1" || p.Tasks[0].Completed {
		t.Error("Clone() shares state with the original")
	}
}
