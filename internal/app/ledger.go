package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/fluxcrew/lifecycle/internal/app/uow"
	"github.com/fluxcrew/lifecycle/internal/domain"
	"github.com/fluxcrew/lifecycle/internal/domain/community"
	"github.com/fluxcrew/lifecycle/internal/domain/points"
	"github.com/fluxcrew/lifecycle/internal/domain/task"
	"github.com/fluxcrew/lifecycle/internal/ports"
)

// Compile-time check that PointsLedger implements ports.PointsService.
var _ ports.PointsService = (*PointsLedger)(nil)

// DefaultLeaderboardPageSize is used when NewPointsLedger is given a
// non-positive page size.
const DefaultLeaderboardPageSize = 10

// PointsLedger records point awards and reversals as append-only ledger
// documents and keeps the community's point totals in step with them.
type PointsLedger struct {
	docs     ports.DocumentStore
	store    *ProjectStore
	pageSize int
	docLocks *keyedLocks
	now      func() time.Time
	logger   *slog.Logger
}

// NewPointsLedger creates a PointsLedger. store is used by the read side to
// load point totals.
func NewPointsLedger(docs ports.DocumentStore, store *ProjectStore, pageSize int, logger *slog.Logger) *PointsLedger {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if pageSize < 1 {
		pageSize = DefaultLeaderboardPageSize
	}
	return &PointsLedger{
		docs:     docs,
		store:    store,
		pageSize: pageSize,
		docLocks: newKeyedLocks(),
		now:      time.Now,
		logger:   logger,
	}
}

// CalculateBonus returns the completion award for a task finished now.
func (l *PointsLedger) CalculateBonus(start, due time.Time, value int) int {
	return points.CalculateBonus(start, due, l.now(), value)
}

// Award credits amount to member for t. The community total changes
// immediately; the ledger entry is staged on u.
func (l *PointsLedger) Award(u *uow.Unit, c *community.Community, t *task.Task, member string, amount int) error {
	entry := l.entry(c, t, member, points.KindAddition, amount)
	if err := u.AddAction(l.appendAction(entry)); err != nil {
		return err
	}
	c.AddPoints(member, amount)
	return nil
}

// AwardAll credits amount to every member in members. The ledger appends
// run concurrently when u commits.
func (l *PointsLedger) AwardAll(u *uow.Unit, c *community.Community, t *task.Task, members []string, amount int) (map[string]int, error) {
	awards := make(map[string]int, len(members))
	actions := make([]domain.Action, 0, len(members))
	for _, member := range members {
		actions = append(actions, l.appendAction(l.entry(c, t, member, points.KindAddition, amount)))
		awards[member] = amount
	}
	if err := u.AddGroup(actions...); err != nil {
		return nil, err
	}
	for member, amount := range awards {
		c.AddPoints(member, amount)
	}
	return awards, nil
}

// ReverseTask refunds every assigned member of t the amount still credited
// for it: all additions net of earlier removals. Members with nothing
// outstanding are skipped. It returns the refund per member as a negative
// amount.
func (l *PointsLedger) ReverseTask(ctx context.Context, u *uow.Unit, c *community.Community, t *task.Task) (map[string]int, error) {
	refunds := make(map[string]int, len(t.Assigned))
	actions := make([]domain.Action, 0, len(t.Assigned))

	for _, member := range t.Assigned {
		entries, err := l.entries(ctx, member, t.Name)
		if err != nil {
			return nil, err
		}
		outstanding := points.Outstanding(entries, c.GuildID, t.ID)
		if outstanding == 0 {
			continue
		}

		entry := l.entry(c, t, member, points.KindRemoval, -outstanding)
		actions = append(actions, l.appendAction(entry))
		refunds[member] = -outstanding
	}

	if err := u.AddGroup(actions...); err != nil {
		return nil, err
	}
	for member, amount := range refunds {
		c.AddPoints(member, amount)
	}
	return refunds, nil
}

// Balance implements ports.PointsService.
func (l *PointsLedger) Balance(ctx context.Context, guild, member string) (int, error) {
	c, err := l.store.Read(ctx, guild)
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to load balance",
			slog.String("operation", "Balance"),
			slog.String("guild", guild),
			slog.String("member", member),
			slog.Any("error", err),
		)
		return 0, err
	}
	return c.Points[member], nil
}

// Leaderboard implements ports.PointsService.
func (l *PointsLedger) Leaderboard(ctx context.Context, guild string, page int) (*points.Page, error) {
	c, err := l.store.Read(ctx, guild)
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to load leaderboard",
			slog.String("operation", "Leaderboard"),
			slog.String("guild", guild),
			slog.Any("error", err),
		)
		return nil, err
	}

	p, err := points.Paginate(points.Rank(c.Points), page, l.pageSize)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// History implements ports.PointsService.
func (l *PointsLedger) History(ctx context.Context, guild, member, taskName string) ([]points.Entry, error) {
	entries, err := l.entries(ctx, member, taskName)
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to load ledger history",
			slog.String("operation", "History"),
			slog.String("guild", guild),
			slog.String("member", member),
			slog.String("task", taskName),
			slog.Any("error", err),
		)
		return nil, err
	}

	out := slices.DeleteFunc(entries, func(e points.Entry) bool { return e.Guild != guild })
	slices.SortStableFunc(out, func(a, b points.Entry) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return out, nil
}

func (l *PointsLedger) entry(c *community.Community, t *task.Task, member string, kind points.Kind, amount int) points.Entry {
	return points.Entry{
		Guild:     c.GuildID,
		Member:    member,
		Task:      t.Name,
		TaskID:    t.ID,
		Kind:      kind,
		Amount:    amount,
		Timestamp: l.now(),
	}
}

// entries returns every addition and removal filed for member on taskName,
// across all guilds.
func (l *PointsLedger) entries(ctx context.Context, member, taskName string) ([]points.Entry, error) {
	var out []points.Entry
	for _, key := range []string{points.AdditionKey(member, taskName), points.RemovalKey(member, taskName)} {
		got, _, err := l.readDoc(ctx, key)
		if err != nil {
			return nil, err
		}
		out = append(out, got...)
	}
	return out, nil
}

// readDoc returns the entries under key and the raw document they came from.
// A missing document yields no entries and a nil raw value.
func (l *PointsLedger) readDoc(ctx context.Context, key string) ([]points.Entry, json.RawMessage, error) {
	raw, err := l.docs.Find(ctx, collectionLedger, key)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading ledger %s: %w", key, err)
	}
	entries, err := decodeLedger(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("ledger %s: %w: %w", key, domain.ErrInvariant, err)
	}
	return entries, raw, nil
}

// appendAction appends entry to its ledger document. Ledger documents are
// shared by every guild, so the read-modify-write holds the document's lock
// rather than relying on the caller's guild lock. Rollback removes only this
// entry, leaving appends made by other guilds in the meantime intact.
func (l *PointsLedger) appendAction(entry points.Entry) domain.Action {
	key := entry.Key()

	return uow.Func{
		Desc: fmt.Sprintf("append %s of %d to %s", entry.Kind, entry.Amount, key),
		Do: func(ctx context.Context) error {
			unlock := l.docLocks.lock(key)
			defer unlock()

			entries, raw, err := l.readDoc(ctx, key)
			if err != nil {
				return err
			}
			return l.writeDoc(ctx, key, append(entries, entry), raw != nil)
		},
		Undo: func(ctx context.Context) error {
			unlock := l.docLocks.lock(key)
			defer unlock()

			entries, raw, err := l.readDoc(ctx, key)
			if err != nil || raw == nil {
				return err
			}
			i := slices.IndexFunc(entries, entry.Same)
			if i < 0 {
				return nil
			}
			entries = slices.Delete(entries, i, i+1)
			if len(entries) == 0 {
				return l.docs.Delete(ctx, collectionLedger, key)
			}
			return l.writeDoc(ctx, key, entries, true)
		},
	}
}

func (l *PointsLedger) writeDoc(ctx context.Context, key string, entries []points.Entry, exists bool) error {
	raw, err := encodeLedger(entries)
	if err != nil {
		return err
	}
	if exists {
		return l.docs.Update(ctx, collectionLedger, key, raw)
	}
	return l.docs.Insert(ctx, collectionLedger, key, raw)
}
