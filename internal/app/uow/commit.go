package uow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fluxcrew/lifecycle/internal/platform/logging"
)

// Commit executes the queue in insertion order. When an item fails, items
// that already completed are rolled back newest first; rollback failures are
// logged and do not replace the returned error.
//
// The Unit is marked committed whether or not Commit succeeds. A second call
// returns ErrAlreadyCommitted.
func (u *Unit) Commit(ctx context.Context) error {
	u.mu.Lock()
	if u.committed {
		u.mu.Unlock()
		return ErrAlreadyCommitted
	}
	u.committed = true
	items := u.items
	u.mu.Unlock()

	logger := logging.FromContext(ctx)

	for i, item := range items {
		logger.DebugContext(ctx, "executing staged write",
			slog.String("operation", "Unit.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(items)),
			slog.String("action", item.description()),
		)

		if err := item.execute(ctx); err != nil {
			logger.ErrorContext(ctx, "staged write failed, rolling back",
				slog.String("operation", "Unit.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("action", item.description()),
				slog.Any("error", err),
			)
			rollback(ctx, items[:i], logger)
			return fmt.Errorf("executing %s: %w", item.description(), err)
		}
	}
	return nil
}

func rollback(ctx context.Context, items []actionItem, logger *slog.Logger) {
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]
		if err := item.rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "Unit.Commit"),
				slog.Int("step", i+1),
				slog.String("action", item.description()),
				slog.Any("error", err),
			)
		}
	}
}
