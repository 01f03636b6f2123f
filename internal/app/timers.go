package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fluxcrew/lifecycle/internal/app/uow"
	"github.com/fluxcrew/lifecycle/internal/domain"
	"github.com/fluxcrew/lifecycle/internal/domain/timer"
	"github.com/fluxcrew/lifecycle/internal/platform/logging"
	"github.com/fluxcrew/lifecycle/internal/platform/scheduler"
	"github.com/fluxcrew/lifecycle/internal/ports"
)

// TimerHandler runs when a durable timer fires.
type TimerHandler func(ctx context.Context, rec timer.Record) error

// TimerService persists every deferred callback as a timer record and arms
// it on the scheduler, so pending timers can be replayed after a restart.
//
// A record is deleted before its handler runs. A crash between the delete
// and the handler loses the callback rather than firing it twice.
type TimerService struct {
	docs      ports.DocumentStore
	scheduler *scheduler.Scheduler
	logger    *slog.Logger

	mu       sync.Mutex
	handlers map[timer.Kind]TimerHandler
	handles  map[string]scheduler.Handle
}

// NewTimerService creates a TimerService. Handlers are registered with
// Handle before Restore is called.
func NewTimerService(docs ports.DocumentStore, s *scheduler.Scheduler, logger *slog.Logger) *TimerService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TimerService{
		docs:      docs,
		scheduler: s,
		logger:    logger,
		handlers:  make(map[timer.Kind]TimerHandler),
		handles:   make(map[string]scheduler.Handle),
	}
}

// Handle registers fn for records of kind.
func (s *TimerService) Handle(kind timer.Kind, fn TimerHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[kind] = fn
}

// Arm persists rec and schedules it. Arming an id that is already pending
// replaces the earlier timer.
func (s *TimerService) Arm(ctx context.Context, rec timer.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	raw, err := encodeTimer(rec)
	if err != nil {
		return err
	}
	err = s.docs.Update(ctx, collectionTimers, rec.ID, raw)
	if errors.Is(err, domain.ErrNotFound) {
		err = s.docs.Insert(ctx, collectionTimers, rec.ID, raw)
	}
	if err != nil {
		return fmt.Errorf("persisting timer %s: %w", rec.ID, err)
	}

	s.schedule(ctx, rec)
	return nil
}

// Disarm deletes the record of the timer with id and cancels it. A failed
// delete leaves the timer armed. Disarming an unknown id is a no-op.
func (s *TimerService) Disarm(ctx context.Context, id string) error {
	if err := s.docs.Delete(ctx, collectionTimers, id); err != nil {
		return fmt.Errorf("deleting timer %s: %w", id, err)
	}

	s.mu.Lock()
	h, ok := s.handles[id]
	delete(s.handles, id)
	s.mu.Unlock()

	if ok {
		s.scheduler.Cancel(h)
	}
	return nil
}

// Pending reports whether a timer with id is armed in this process.
func (s *TimerService) Pending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.handles[id]
	return ok
}

// StageArm queues Arm on u; rollback disarms.
func (s *TimerService) StageArm(u *uow.Unit, rec timer.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	return u.AddAction(uow.Func{
		Desc: fmt.Sprintf("arm %s timer %s", rec.Kind, rec.ID),
		Do:   func(ctx context.Context) error { return s.Arm(ctx, rec) },
		Undo: func(ctx context.Context) error { return s.Disarm(ctx, rec.ID) },
	})
}

// StageDisarm queues Disarm on u; rollback re-arms rec.
func (s *TimerService) StageDisarm(u *uow.Unit, rec timer.Record) error {
	return u.AddAction(uow.Func{
		Desc: fmt.Sprintf("disarm %s timer %s", rec.Kind, rec.ID),
		Do:   func(ctx context.Context) error { return s.Disarm(ctx, rec.ID) },
		Undo: func(ctx context.Context) error { return s.Arm(ctx, rec) },
	})
}

// Restore schedules every persisted record. Records already past their fire
// time fire immediately. Records of a kind with no handler are dropped.
// It returns how many records were armed.
func (s *TimerService) Restore(ctx context.Context) (int, error) {
	docs, err := s.docs.FindAll(ctx, collectionTimers)
	if err != nil {
		return 0, fmt.Errorf("loading timers: %w", err)
	}

	armed := 0
	for _, raw := range docs {
		rec, err := decodeTimer(raw)
		if err == nil {
			err = rec.Validate()
		}
		if err != nil {
			s.logger.ErrorContext(ctx, "skipping unreadable timer record",
				slog.String("operation", "Restore"),
				slog.Any("error", err),
			)
			continue
		}

		if !s.known(rec.Kind) {
			s.logger.WarnContext(ctx, "dropping timer of unknown kind",
				slog.String("timer_id", rec.ID),
				slog.String("kind", string(rec.Kind)),
			)
			if err := s.docs.Delete(ctx, collectionTimers, rec.ID); err != nil {
				return armed, fmt.Errorf("deleting timer %s: %w", rec.ID, err)
			}
			continue
		}

		s.schedule(ctx, rec)
		armed++
	}

	s.logger.InfoContext(ctx, "restored timers", slog.Int("count", armed))
	return armed, nil
}

func (s *TimerService) known(kind timer.Kind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.handlers[kind]
	return ok
}

func (s *TimerService) schedule(ctx context.Context, rec timer.Record) {
	name := fmt.Sprintf("%s %s", rec.Kind, rec.ID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.handles[rec.ID]; ok {
		s.scheduler.Cancel(prev)
	}

	var h scheduler.Handle
	h = s.scheduler.ScheduleAt(ctx, rec.FireAt, name, func(ctx context.Context) error {
		return s.fire(ctx, &h, rec)
	})
	s.handles[rec.ID] = h
}

// fire reads h under s.mu, which schedule holds until h is assigned. A
// callback whose timer was disarmed or replaced after it started does
// nothing.
func (s *TimerService) fire(ctx context.Context, h *scheduler.Handle, rec timer.Record) error {
	s.mu.Lock()
	if cur, ok := s.handles[rec.ID]; !ok || cur != *h {
		s.mu.Unlock()
		return nil
	}
	delete(s.handles, rec.ID)
	fn := s.handlers[rec.Kind]
	s.mu.Unlock()

	ctx = logging.Enrich(ctx,
		slog.String("timer_id", rec.ID),
		slog.String("timer_kind", string(rec.Kind)),
	)
	if err := s.docs.Delete(ctx, collectionTimers, rec.ID); err != nil {
		return fmt.Errorf("clearing timer %s before firing: %w", rec.ID, err)
	}
	if fn == nil {
		return fmt.Errorf("no handler for timer kind %q", rec.Kind)
	}
	return fn(ctx, rec)
}
