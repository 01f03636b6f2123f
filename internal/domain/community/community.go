// Package community holds the per-guild aggregate: the ordered project list,
// member point totals, and the channel category used for project channels.
package community

import (
	"fmt"

	"github.com/fluxcrew/lifecycle/internal/domain"
	"github.com/fluxcrew/lifecycle/internal/domain/project"
)

// Community is one chat server's persisted lifecycle state.
type Community struct {
	GuildID         string
	Projects        []project.Project
	Points          map[string]int
	ProjectCategory string
}

// New returns an empty community for guild.
func New(guild string) *Community {
	return &Community{GuildID: guild, Points: make(map[string]int)}
}

// FindProject returns a pointer into Projects for the named project, or nil.
func (c *Community) FindProject(name string) *project.Project {
	for i := range c.Projects {
		if c.Projects[i].Name == name {
			return &c.Projects[i]
		}
	}
	return nil
}

// ProjectByID returns a pointer into Projects for the project with id, or nil.
func (c *Community) ProjectByID(id string) *project.Project {
	for i := range c.Projects {
		if c.Projects[i].ID == id {
			return &c.Projects[i]
		}
	}
	return nil
}

// AddProject appends p with Index set to its position.
// Returns domain.ErrConflict when the name is taken.
func (c *Community) AddProject(p project.Project) (*project.Project, error) {
	if c.FindProject(p.Name) != nil {
		return nil, fmt.Errorf("project %q: %w", p.Name, domain.ErrConflict)
	}
	p.Index = len(c.Projects)
	c.Projects = append(c.Projects, p)
	return &c.Projects[p.Index], nil
}

// RemoveProject deletes the named project and renumbers every project after
// it. Returns domain.ErrNotFound when no such project exists.
func (c *Community) RemoveProject(name string) (project.Project, error) {
	for i := range c.Projects {
		if c.Projects[i].Name != name {
			continue
		}
		removed := c.Projects[i]
		c.Projects = append(c.Projects[:i], c.Projects[i+1:]...)
		c.reindex()
		return removed, nil
	}
	return project.Project{}, fmt.Errorf("project %q: %w", name, domain.ErrNotFound)
}

// AddPoints adjusts member's total by delta and returns the new total.
// A missing member starts at zero.
func (c *Community) AddPoints(member string, delta int) int {
	if c.Points == nil {
		c.Points = make(map[string]int)
	}
	c.Points[member] += delta
	return c.Points[member]
}

// Normalize repairs and checks the aggregate after it is loaded from storage.
// Missing project and task ids are filled from newID and every Index is
// recomputed from position. Duplicate project names, duplicate task names
// within a project, or duplicate ids cannot be repaired safely and are
// reported as domain.ErrInvariant.
func (c *Community) Normalize(newID func() string) (healed bool, err error) {
	if c.Points == nil {
		c.Points = make(map[string]int)
	}

	names := make(map[string]struct{}, len(c.Projects))
	ids := make(map[string]struct{})
	for i := range c.Projects {
		p := &c.Projects[i]
		if _, dup := names[p.Name]; dup {
			return healed, fmt.Errorf("guild %s: duplicate project name %q: %w", c.GuildID, p.Name, domain.ErrInvariant)
		}
		names[p.Name] = struct{}{}

		if p.ID == "" {
			p.ID = newID()
			healed = true
		}
		if _, dup := ids[p.ID]; dup {
			return healed, fmt.Errorf("guild %s: duplicate id %q: %w", c.GuildID, p.ID, domain.ErrInvariant)
		}
		ids[p.ID] = struct{}{}

		taskNames := make(map[string]struct{}, len(p.Tasks))
		for j := range p.Tasks {
			t := &p.Tasks[j]
			if _, dup := taskNames[t.Name]; dup {
				return healed, fmt.Errorf("project %q: duplicate task name %q: %w", p.Name, t.Name, domain.ErrInvariant)
			}
			taskNames[t.Name] = struct{}{}

			if t.ID == "" {
				t.ID = newID()
				healed = true
			}
			if _, dup := ids[t.ID]; dup {
				return healed, fmt.Errorf("project %q: duplicate id %q: %w", p.Name, t.ID, domain.ErrInvariant)
			}
			ids[t.ID] = struct{}{}

			if t.Project != p.Name {
				t.Project = p.Name
				healed = true
			}
		}
	}

	c.reindex()
	return healed, nil
}

func (c *Community) reindex() {
	for i := range c.Projects {
		c.Projects[i].Index = i
		for j := range c.Projects[i].Tasks {
			c.Projects[i].Tasks[j].Index = j
		}
	}
}
