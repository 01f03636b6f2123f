package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fluxcrew/lifecycle/internal/app/uow"
	"github.com/fluxcrew/lifecycle/internal/domain"
	"github.com/fluxcrew/lifecycle/internal/domain/community"
	"github.com/fluxcrew/lifecycle/internal/domain/project"
	"github.com/fluxcrew/lifecycle/internal/domain/task"
	"github.com/fluxcrew/lifecycle/internal/ports"
)

// ProjectStore loads and saves a guild's community document and applies the
// project and task mutations to the loaded aggregate. Mutations change the
// in-memory community only; callers persist it with Save or StageSave once
// every related write is staged.
//
// Callers that mutate a community hold lock(guild) from Load until the save
// commits; read-only callers use Read, which takes the same lock.
type ProjectStore struct {
	docs   ports.DocumentStore
	locks  *keyedLocks
	newID  func() string
	logger *slog.Logger
}

// NewProjectStore creates a ProjectStore backed by docs.
func NewProjectStore(docs ports.DocumentStore, logger *slog.Logger) *ProjectStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ProjectStore{
		docs:   docs,
		locks:  newKeyedLocks(),
		newID:  uuid.NewString,
		logger: logger,
	}
}

// lock blocks until no other caller is working on guild's community and
// returns the matching unlock.
func (s *ProjectStore) lock(guild string) func() {
	return s.locks.lock(guild)
}

// Read loads the guild's community for a caller that does not mutate it. A
// healed document is saved before Read returns, so generated ids stay the
// same on the next read.
func (s *ProjectStore) Read(ctx context.Context, guild string) (*community.Community, error) {
	unlock := s.lock(guild)
	defer unlock()

	c, healed, err := s.load(ctx, guild)
	if err != nil {
		return nil, err
	}
	if healed {
		if err := s.Save(ctx, c); err != nil {
			s.logger.ErrorContext(ctx, "failed to save healed community document",
				slog.String("operation", "Read"),
				slog.String("guild", guild),
				slog.Any("error", err),
			)
			return nil, err
		}
	}
	return c, nil
}

// Load returns the guild's community, creating an empty one in memory when
// none is stored yet. The loaded aggregate is normalized: missing ids are
// generated and positions recomputed. Structural damage that cannot be
// healed is returned as domain.ErrInvariant. The caller must hold
// lock(guild) and save the community, which also persists any heal.
func (s *ProjectStore) Load(ctx context.Context, guild string) (*community.Community, error) {
	c, _, err := s.load(ctx, guild)
	return c, err
}

func (s *ProjectStore) load(ctx context.Context, guild string) (*community.Community, bool, error) {
	raw, err := s.docs.Find(ctx, collectionGuilds, guild)
	if errors.Is(err, domain.ErrNotFound) {
		return community.New(guild), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("loading guild %s: %w", guild, err)
	}

	c, err := decodeCommunity(raw)
	if err != nil {
		return nil, false, fmt.Errorf("guild %s: %w: %w", guild, domain.ErrInvariant, err)
	}
	if c.GuildID == "" {
		c.GuildID = guild
	}

	healed, err := c.Normalize(s.newID)
	if err != nil {
		s.logger.ErrorContext(ctx, "community document failed integrity check",
			slog.String("operation", "Load"),
			slog.String("guild", guild),
			slog.Any("error", err),
		)
		return nil, false, err
	}
	if healed {
		s.logger.WarnContext(ctx, "healed community document",
			slog.String("guild", guild),
		)
	}
	return c, healed, nil
}

// Save writes the community document, inserting it on first save.
func (s *ProjectStore) Save(ctx context.Context, c *community.Community) error {
	raw, err := encodeCommunity(c)
	if err != nil {
		return err
	}

	err = s.docs.Update(ctx, collectionGuilds, c.GuildID, raw)
	if errors.Is(err, domain.ErrNotFound) {
		err = s.docs.Insert(ctx, collectionGuilds, c.GuildID, raw)
	}
	if err != nil {
		return fmt.Errorf("saving guild %s: %w", c.GuildID, err)
	}
	return nil
}

// StageSave queues Save as the next write of u. The community save is the
// last write of every operation, so it carries no rollback.
func (s *ProjectStore) StageSave(u *uow.Unit, c *community.Community) error {
	return u.Stage(guildKey(c.GuildID), c, uow.Func{
		Desc: "save guild " + c.GuildID,
		Do:   func(ctx context.Context) error { return s.Save(ctx, c) },
	})
}

// CreateProject adds an empty project owned by owner. The owner is its first
// member, followed by member when that is someone else. channel and message
// reference the project's external discussion channel and pinned progress
// message. Returns domain.ErrConflict when the name is taken.
func (s *ProjectStore) CreateProject(c *community.Community, name, owner, member, channel, message string) (*project.Project, error) {
	p := project.Project{
		ID:      s.newID(),
		Name:    name,
		Owner:   owner,
		Channel: channel,
		Message: message,
	}
	p.AddMembers(owner, member)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return c.AddProject(p)
}

// DeleteProject removes the named project and renumbers the rest.
func (s *ProjectStore) DeleteProject(c *community.Community, name string) (project.Project, error) {
	return c.RemoveProject(name)
}

// FindProject returns the named project.
// Returns domain.ErrNotFound when it does not exist.
func (s *ProjectStore) FindProject(c *community.Community, name string) (*project.Project, error) {
	p := c.FindProject(name)
	if p == nil {
		return nil, fmt.Errorf("project %q: %w", name, domain.ErrNotFound)
	}
	return p, nil
}

// FindTask returns the named project and the named task inside it.
// Returns domain.ErrNotFound when either is missing.
func (s *ProjectStore) FindTask(c *community.Community, projectName, taskName string) (*project.Project, *task.Task, error) {
	p, err := s.FindProject(c, projectName)
	if err != nil {
		return nil, nil, err
	}
	t := p.FindTask(taskName)
	if t == nil {
		return nil, nil, fmt.Errorf("task %q in project %q: %w", taskName, projectName, domain.ErrNotFound)
	}
	return p, t, nil
}

// CreateTask appends a pending task to p.
// Returns domain.ErrConflict when the name is taken in the project.
func (s *ProjectStore) CreateTask(p *project.Project, name string, value int, start, due time.Time) (*task.Task, error) {
	t := task.Task{
		ID:        s.newID(),
		Name:      name,
		Project:   p.Name,
		StartTime: start,
		DueTime:   due,
		Value:     value,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	created, err := p.AddTask(t)
	if err != nil {
		return nil, fmt.Errorf("task %q in project %q: %w", name, p.Name, err)
	}
	return created, nil
}

// UpdateTaskMembers unions members into t's assigned set and returns the
// ones that were newly added.
func (s *ProjectStore) UpdateTaskMembers(t *task.Task, members []string) []string {
	return t.Assign(members...)
}

// UpdateTaskStatus sets t's completion flag. It reports false, and leaves the
// task untouched, when the status already matches.
func (s *ProjectStore) UpdateTaskStatus(t *task.Task, completed bool) bool {
	if t.Completed == completed {
		return false
	}
	t.Completed = completed
	return true
}

// ProjectProgressPercent returns the rounded share of completed tasks. ok is
// false when the project has no tasks.
func (s *ProjectStore) ProjectProgressPercent(p *project.Project) (percent int, ok bool) {
	return p.ProgressPercent()
}

func guildKey(guild string) string {
	return "guild:" + guild
}
