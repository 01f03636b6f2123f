// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	"github.com/fluxcrew/lifecycle/internal/app/uow"
	"github.com/fluxcrew/lifecycle/internal/domain"
	"github.com/fluxcrew/lifecycle/internal/domain/community"
	"github.com/fluxcrew/lifecycle/internal/domain/event"
	"github.com/fluxcrew/lifecycle/internal/domain/project"
	"github.com/fluxcrew/lifecycle/internal/domain/task"
	"github.com/fluxcrew/lifecycle/internal/domain/timer"
	"github.com/fluxcrew/lifecycle/internal/platform/telemetry"
	"github.com/fluxcrew/lifecycle/internal/ports"
)

// Compile-time check that LifecycleController implements ports.LifecycleService.
var _ ports.LifecycleService = (*LifecycleController)(nil)

// LifecycleConfig tunes the due-expiry decay rule.
type LifecycleConfig struct {
	// DecayPercent is the share of its value an overdue task keeps.
	DecayPercent int
	// MinDecayedValue is the floor an overdue task's value never drops below.
	MinDecayedValue int
}

// DefaultLifecycleConfig keeps a tenth of the value with a floor of 1.
func DefaultLifecycleConfig() LifecycleConfig {
	return LifecycleConfig{DecayPercent: 10, MinDecayedValue: 1}
}

// LifecycleController implements ports.LifecycleService. Every mutation runs
// under the guild lock as load, mutate in memory, stage writes, commit,
// publish. The community save is always the last staged write, so a failed
// ledger or timer write leaves the stored community untouched.
type LifecycleController struct {
	store   *ProjectStore
	ledger  *PointsLedger
	timers  *TimerService
	events  ports.EventPublisher
	cfg     LifecycleConfig
	metrics *telemetry.Metrics
	now     func() time.Time
	logger  *slog.Logger
}

// NewLifecycleController wires the controller and registers its due-expiry
// handler on timers. metrics may be nil.
func NewLifecycleController(
	store *ProjectStore,
	ledger *PointsLedger,
	timers *TimerService,
	events ports.EventPublisher,
	cfg LifecycleConfig,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *LifecycleController {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &LifecycleController{
		store:   store,
		ledger:  ledger,
		timers:  timers,
		events:  events,
		cfg:     cfg,
		metrics: metrics,
		now:     time.Now,
		logger:  logger,
	}
	timers.Handle(timer.KindTaskDue, c.onTaskDue)
	return c
}

// CreateProject creates an empty project owned by caller.
func (c *LifecycleController) CreateProject(ctx context.Context, guild, caller string, in ports.NewProject) (*project.Project, error) {
	c.logger.InfoContext(ctx, "creating project",
		slog.String("guild", guild),
		slog.String("project", in.Name),
	)

	unlock := c.store.lock(guild)
	defer unlock()

	com, err := c.store.Load(ctx, guild)
	if err != nil {
		return nil, c.fail(ctx, "CreateProject", guild, err)
	}
	p, err := c.store.CreateProject(com, in.Name, caller, in.Member, in.Channel, in.Message)
	if err != nil {
		return nil, err
	}
	created := p.Clone()

	if err := c.commit(ctx, com, nil); err != nil {
		return nil, c.fail(ctx, "CreateProject", guild, err)
	}

	c.publish(ctx, event.Event{
		Kind:      event.ProjectCreated,
		Guild:     guild,
		Project:   created.Name,
		ProjectID: created.ID,
		Members:   slices.Clone(created.Members),
	})
	return &created, nil
}

// ListProjects returns the guild's projects in creation order.
func (c *LifecycleController) ListProjects(ctx context.Context, guild string) ([]project.Project, error) {
	com, err := c.store.Read(ctx, guild)
	if err != nil {
		return nil, c.fail(ctx, "ListProjects", guild, err)
	}
	out := make([]project.Project, len(com.Projects))
	for i := range com.Projects {
		out[i] = com.Projects[i].Clone()
	}
	return out, nil
}

// GetProject returns a single project with its tasks.
func (c *LifecycleController) GetProject(ctx context.Context, guild, name string) (*project.Project, error) {
	com, err := c.store.Read(ctx, guild)
	if err != nil {
		return nil, c.fail(ctx, "GetProject", guild, err)
	}
	p, err := c.store.FindProject(com, name)
	if err != nil {
		return nil, err
	}
	out := p.Clone()
	return &out, nil
}

// DeleteProject removes a project and disarms the due timers of its pending
// tasks.
func (c *LifecycleController) DeleteProject(ctx context.Context, guild, caller, name string) error {
	c.logger.InfoContext(ctx, "deleting project",
		slog.String("guild", guild),
		slog.String("project", name),
	)

	unlock := c.store.lock(guild)
	defer unlock()

	com, err := c.store.Load(ctx, guild)
	if err != nil {
		return c.fail(ctx, "DeleteProject", guild, err)
	}
	p, err := c.store.FindProject(com, name)
	if err != nil {
		return err
	}
	if !p.IsOwner(caller) {
		return forbidden(caller, "delete project", name)
	}

	removed, err := c.store.DeleteProject(com, name)
	if err != nil {
		return err
	}

	err = c.commit(ctx, com, func(u *uow.Unit) error {
		for i := range removed.Tasks {
			t := &removed.Tasks[i]
			if t.Completed {
				continue
			}
			if err := c.timers.StageDisarm(u, timer.NewTaskDue(guild, removed.ID, t.ID, t.DueTime)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.fail(ctx, "DeleteProject", guild, err)
	}

	c.publish(ctx, event.Event{
		Kind:      event.ProjectDeleted,
		Guild:     guild,
		Project:   removed.Name,
		ProjectID: removed.ID,
		Members:   removed.Members,
	})
	return nil
}

// AddProjectMembers unions members into the project.
func (c *LifecycleController) AddProjectMembers(ctx context.Context, guild, caller, name string, members []string) ([]string, error) {
	unlock := c.store.lock(guild)
	defer unlock()

	com, err := c.store.Load(ctx, guild)
	if err != nil {
		return nil, c.fail(ctx, "AddProjectMembers", guild, err)
	}
	p, err := c.store.FindProject(com, name)
	if err != nil {
		return nil, err
	}
	if !p.IsOwner(caller) {
		return nil, forbidden(caller, "add members to project", name)
	}

	added := p.AddMembers(members...)
	if len(added) == 0 {
		return nil, nil
	}
	if err := c.commit(ctx, com, nil); err != nil {
		return nil, c.fail(ctx, "AddProjectMembers", guild, err)
	}

	c.publish(ctx, event.Event{
		Kind:      event.ProjectMemberAdded,
		Guild:     guild,
		Project:   p.Name,
		ProjectID: p.ID,
		Members:   added,
	})
	return added, nil
}

// UpdateProjectChannel records the external channel the project is shown in.
func (c *LifecycleController) UpdateProjectChannel(ctx context.Context, guild, caller, name, channel string) (*project.Project, error) {
	unlock := c.store.lock(guild)
	defer unlock()

	com, err := c.store.Load(ctx, guild)
	if err != nil {
		return nil, c.fail(ctx, "UpdateProjectChannel", guild, err)
	}
	p, err := c.store.FindProject(com, name)
	if err != nil {
		return nil, err
	}
	if !p.IsOwner(caller) {
		return nil, forbidden(caller, "update channel of project", name)
	}

	p.Channel = channel
	out := p.Clone()
	if err := c.commit(ctx, com, nil); err != nil {
		return nil, c.fail(ctx, "UpdateProjectChannel", guild, err)
	}
	return &out, nil
}

// SetProjectCategory records the category project channels are created in.
func (c *LifecycleController) SetProjectCategory(ctx context.Context, guild, category string) error {
	unlock := c.store.lock(guild)
	defer unlock()

	com, err := c.store.Load(ctx, guild)
	if err != nil {
		return c.fail(ctx, "SetProjectCategory", guild, err)
	}
	com.ProjectCategory = category
	if err := c.commit(ctx, com, nil); err != nil {
		return c.fail(ctx, "SetProjectCategory", guild, err)
	}
	return nil
}

// ProjectProgress reports completion of the named project.
func (c *LifecycleController) ProjectProgress(ctx context.Context, guild, name string) (*ports.Progress, error) {
	com, err := c.store.Read(ctx, guild)
	if err != nil {
		return nil, c.fail(ctx, "ProjectProgress", guild, err)
	}
	p, err := c.store.FindProject(com, name)
	if err != nil {
		return nil, err
	}
	progress := c.progress(p)
	return &progress, nil
}

// CreateTask adds a pending task assigned to its creator and arms its due
// timer. A due time in the past arms a timer that fires immediately.
func (c *LifecycleController) CreateTask(ctx context.Context, guild, caller string, in ports.NewTask) (*task.Task, error) {
	c.logger.InfoContext(ctx, "creating task",
		slog.String("guild", guild),
		slog.String("project", in.Project),
		slog.String("task", in.Name),
	)

	unlock := c.store.lock(guild)
	defer unlock()

	com, err := c.store.Load(ctx, guild)
	if err != nil {
		return nil, c.fail(ctx, "CreateTask", guild, err)
	}
	p, err := c.store.FindProject(com, in.Project)
	if err != nil {
		return nil, err
	}
	if !p.IsOwner(caller) {
		return nil, forbidden(caller, "create tasks in project", p.Name)
	}

	t, err := c.store.CreateTask(p, in.Name, in.Value, c.now(), in.Due)
	if err != nil {
		return nil, err
	}
	c.store.UpdateTaskMembers(t, []string{caller})
	created := t.Clone()

	err = c.commit(ctx, com, func(u *uow.Unit) error {
		return c.timers.StageArm(u, timer.NewTaskDue(guild, p.ID, created.ID, created.DueTime))
	})
	if err != nil {
		return nil, c.fail(ctx, "CreateTask", guild, err)
	}

	c.publish(ctx, event.Event{
		Kind:      event.TaskCreated,
		Guild:     guild,
		Project:   p.Name,
		ProjectID: p.ID,
		Task:      created.Name,
		TaskID:    created.ID,
		Members:   created.Assigned,
		Value:     created.Value,
		Progress:  p.ProgressBar(),
	})
	return &created, nil
}

// AssignTask unions members into the task's assigned set. An empty member
// list assigns the caller.
func (c *LifecycleController) AssignTask(ctx context.Context, guild, caller, projectName, taskName string, members []string) ([]string, error) {
	unlock := c.store.lock(guild)
	defer unlock()

	com, err := c.store.Load(ctx, guild)
	if err != nil {
		return nil, c.fail(ctx, "AssignTask", guild, err)
	}
	p, t, err := c.store.FindTask(com, projectName, taskName)
	if err != nil {
		return nil, err
	}
	if !p.IsOwner(caller) {
		return nil, forbidden(caller, "assign members in project", p.Name)
	}

	if len(members) == 0 {
		members = []string{caller}
	}
	added := c.store.UpdateTaskMembers(t, members)
	if len(added) == 0 {
		return nil, nil
	}
	if err := c.commit(ctx, com, nil); err != nil {
		return nil, c.fail(ctx, "AssignTask", guild, err)
	}

	c.publish(ctx, event.Event{
		Kind:      event.TaskMemberUpdated,
		Guild:     guild,
		Project:   p.Name,
		ProjectID: p.ID,
		Task:      t.Name,
		TaskID:    t.ID,
		Members:   added,
	})
	return added, nil
}

// CompleteTask marks a pending task completed, awards every assigned member
// the bonus-adjusted value and disarms the due timer.
func (c *LifecycleController) CompleteTask(ctx context.Context, guild, caller, projectName, taskName string) (*ports.Transition, error) {
	c.logger.InfoContext(ctx, "completing task",
		slog.String("guild", guild),
		slog.String("project", projectName),
		slog.String("task", taskName),
		slog.String("member", caller),
	)

	unlock := c.store.lock(guild)
	defer unlock()

	com, err := c.store.Load(ctx, guild)
	if err != nil {
		return nil, c.fail(ctx, "CompleteTask", guild, err)
	}
	p, t, err := c.store.FindTask(com, projectName, taskName)
	if err != nil {
		return nil, err
	}
	if !p.CanWorkOn(caller, t) {
		return nil, forbidden(caller, "complete task", t.Name)
	}
	if !c.store.UpdateTaskStatus(t, true) {
		return nil, fmt.Errorf("task %q is already completed: %w", t.Name, domain.ErrConflict)
	}

	amount := c.ledger.CalculateBonus(t.StartTime, t.DueTime, t.Value)
	var awards map[string]int
	err = c.commit(ctx, com, func(u *uow.Unit) error {
		var err error
		if awards, err = c.ledger.AwardAll(u, com, t, t.Assigned, amount); err != nil {
			return err
		}
		return c.timers.StageDisarm(u, timer.NewTaskDue(guild, p.ID, t.ID, t.DueTime))
	})
	if err != nil {
		return nil, c.fail(ctx, "CompleteTask", guild, err)
	}

	out := c.transition(p, t, awards)
	c.recordTransition(ctx, "completed", awards)
	c.publish(ctx, c.transitionEvent(event.TaskCompleted, guild, p, out))
	return out, nil
}

// RevokeTask reverts a completed task to pending and refunds what its
// assigned members are still credited for it. The due timer is re-armed when
// the due time is still ahead.
func (c *LifecycleController) RevokeTask(ctx context.Context, guild, caller, projectName, taskName string) (*ports.Transition, error) {
	c.logger.InfoContext(ctx, "revoking task",
		slog.String("guild", guild),
		slog.String("project", projectName),
		slog.String("task", taskName),
		slog.String("member", caller),
	)

	unlock := c.store.lock(guild)
	defer unlock()

	com, err := c.store.Load(ctx, guild)
	if err != nil {
		return nil, c.fail(ctx, "RevokeTask", guild, err)
	}
	p, t, err := c.store.FindTask(com, projectName, taskName)
	if err != nil {
		return nil, err
	}
	if !p.CanWorkOn(caller, t) {
		return nil, forbidden(caller, "revoke task", t.Name)
	}
	if !c.store.UpdateTaskStatus(t, false) {
		return nil, fmt.Errorf("task %q is not completed: %w", t.Name, domain.ErrConflict)
	}

	var refunds map[string]int
	err = c.commit(ctx, com, func(u *uow.Unit) error {
		var err error
		if refunds, err = c.ledger.ReverseTask(ctx, u, com, t); err != nil {
			return err
		}
		if t.DueTime.After(c.now()) {
			return c.timers.StageArm(u, timer.NewTaskDue(guild, p.ID, t.ID, t.DueTime))
		}
		return nil
	})
	if err != nil {
		return nil, c.fail(ctx, "RevokeTask", guild, err)
	}

	out := c.transition(p, t, refunds)
	c.recordTransition(ctx, "revoked", refunds)
	c.publish(ctx, c.transitionEvent(event.TaskRevoked, guild, p, out))
	return out, nil
}

// AdjustTaskValue adds delta to the task's value.
func (c *LifecycleController) AdjustTaskValue(ctx context.Context, guild, caller, projectName, taskName string, delta int) (*task.Task, error) {
	unlock := c.store.lock(guild)
	defer unlock()

	com, err := c.store.Load(ctx, guild)
	if err != nil {
		return nil, c.fail(ctx, "AdjustTaskValue", guild, err)
	}
	p, t, err := c.store.FindTask(com, projectName, taskName)
	if err != nil {
		return nil, err
	}
	if !p.IsOwner(caller) {
		return nil, forbidden(caller, "change value of task", t.Name)
	}
	if err := t.AdjustValue(delta); err != nil {
		return nil, err
	}

	out := t.Clone()
	if err := c.commit(ctx, com, nil); err != nil {
		return nil, c.fail(ctx, "AdjustTaskValue", guild, err)
	}
	return &out, nil
}

// ExpireTask applies due-expiry decay to a task that is still pending. A
// task that was completed or deleted in the meantime is left alone.
func (c *LifecycleController) ExpireTask(ctx context.Context, guild, projectID, taskID string) error {
	unlock := c.store.lock(guild)
	defer unlock()

	com, err := c.store.Load(ctx, guild)
	if err != nil {
		return c.fail(ctx, "ExpireTask", guild, err)
	}
	p := com.ProjectByID(projectID)
	if p == nil {
		c.logger.InfoContext(ctx, "due task's project is gone",
			slog.String("guild", guild),
			slog.String("project_id", projectID),
		)
		return nil
	}
	t := p.TaskByID(taskID)
	if t == nil || t.Completed {
		return nil
	}

	t.Decay(c.cfg.DecayPercent, c.cfg.MinDecayedValue)
	if err := c.commit(ctx, com, nil); err != nil {
		return c.fail(ctx, "ExpireTask", guild, err)
	}

	c.recordTransition(ctx, "decayed", nil)
	c.publish(ctx, event.Event{
		Kind:      event.TaskDue,
		Guild:     guild,
		Project:   p.Name,
		ProjectID: p.ID,
		Task:      t.Name,
		TaskID:    t.ID,
		Members:   t.Assigned,
		Value:     t.Value,
	})
	return nil
}

func (c *LifecycleController) onTaskDue(ctx context.Context, rec timer.Record) error {
	return c.ExpireTask(ctx, rec.Guild, rec.Payload[timer.PayloadProjectID], rec.Payload[timer.PayloadTaskID])
}

// commit stages the writes added by stage, then the community save, and
// commits them in that order.
func (c *LifecycleController) commit(ctx context.Context, com *community.Community, stage func(u *uow.Unit) error) error {
	u := uow.New(ctx)
	if stage != nil {
		if err := stage(u); err != nil {
			return err
		}
	}
	if err := c.store.StageSave(u, com); err != nil {
		return err
	}
	return u.Commit(ctx)
}

func (c *LifecycleController) progress(p *project.Project) ports.Progress {
	percent, ok := c.store.ProjectProgressPercent(p)
	return ports.Progress{
		Project:  p.Name,
		Percent:  percent,
		HasTasks: ok,
		Bar:      p.ProgressBar(),
	}
}

func (c *LifecycleController) transition(p *project.Project, t *task.Task, awards map[string]int) *ports.Transition {
	if awards == nil {
		awards = map[string]int{}
	}
	return &ports.Transition{
		Task:     t.Clone(),
		Awards:   awards,
		Progress: c.progress(p),
	}
}

func (c *LifecycleController) transitionEvent(kind event.Kind, guild string, p *project.Project, tr *ports.Transition) event.Event {
	return event.Event{
		Kind:      kind,
		Guild:     guild,
		Project:   p.Name,
		ProjectID: p.ID,
		Task:      tr.Task.Name,
		TaskID:    tr.Task.ID,
		Members:   tr.Task.Assigned,
		Value:     tr.Task.Value,
		Awards:    tr.Awards,
		Progress:  tr.Progress.Bar,
	}
}

// publish delivers events concurrently. Failures are logged; the state they
// describe is already committed.
func (c *LifecycleController) publish(ctx context.Context, events ...event.Event) {
	if c.events == nil {
		return
	}

	var g errgroup.Group
	for _, e := range events {
		if e.OccurredAt.IsZero() {
			e.OccurredAt = c.now()
		}
		g.Go(func() error {
			if err := c.events.Publish(ctx, e); err != nil {
				c.logger.ErrorContext(ctx, "failed to publish event",
					slog.String("operation", "publish"),
					slog.String("event", string(e.Kind)),
					slog.String("guild", e.Guild),
					slog.Any("error", err),
				)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (c *LifecycleController) recordTransition(ctx context.Context, transition string, awards map[string]int) {
	if c.metrics == nil {
		return
	}
	c.metrics.TaskTransitions.Add(ctx, 1, metric.WithAttributes(telemetry.AttrTransition.String(transition)))
	for _, amount := range awards {
		c.metrics.PointsAwarded.Add(ctx, int64(amount))
	}
}

func (c *LifecycleController) fail(ctx context.Context, operation, guild string, err error) error {
	c.logger.ErrorContext(ctx, "lifecycle operation failed",
		slog.String("operation", operation),
		slog.String("guild", guild),
		slog.Any("error", err),
	)
	return err
}

func forbidden(member, action, target string) error {
	return fmt.Errorf("member %s may not %s %q: %w", member, action, target, domain.ErrForbidden)
}
