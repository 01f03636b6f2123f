package uow

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/fluxcrew/lifecycle/internal/domain"
	"github.com/fluxcrew/lifecycle/internal/platform/logging"
)

// actionItem is one entry of the commit queue: a single action or a group.
type actionItem interface {
	execute(ctx context.Context) error
	rollback(ctx context.Context) error
	description() string
}

type singleAction struct {
	action domain.Action
}

func (s *singleAction) execute(ctx context.Context) error  { return s.action.Execute(ctx) }
func (s *singleAction) rollback(ctx context.Context) error { return s.action.Rollback(ctx) }
func (s *singleAction) description() string                { return s.action.Description() }

// actionGroup runs its actions concurrently. The first failure cancels the
// rest, and every action that did succeed is rolled back in reverse
// insertion order before the error is returned.
type actionGroup struct {
	actions []domain.Action

	mu   sync.Mutex
	done []bool
}

func (g *actionGroup) execute(ctx context.Context) error {
	g.done = make([]bool, len(g.actions))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, a := range g.actions {
		eg.Go(func() error {
			if err := a.Execute(egCtx); err != nil {
				return err
			}
			g.mu.Lock()
			g.done[i] = true
			g.mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		g.rollbackDone(ctx)
		return err
	}
	return nil
}

func (g *actionGroup) rollback(ctx context.Context) error {
	g.rollbackDone(ctx)
	return nil
}

func (g *actionGroup) rollbackDone(ctx context.Context) {
	logger := logging.FromContext(ctx)

	g.mu.Lock()
	done := slices.Clone(g.done)
	g.mu.Unlock()

	for i := len(g.actions) - 1; i >= 0; i-- {
		if i >= len(done) || !done[i] {
			continue
		}
		a := g.actions[i]
		if err := a.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed in action group",
				slog.String("operation", "actionGroup.rollback"),
				slog.String("action", a.Description()),
				slog.Any("error", err),
			)
		}
	}
}

func (g *actionGroup) description() string {
	switch len(g.actions) {
	case 0:
		return "empty action group"
	case 1:
		return g.actions[0].Description()
	default:
		return fmt.Sprintf("%d concurrent actions (%s, ...)", len(g.actions), g.actions[0].Description())
	}
}
