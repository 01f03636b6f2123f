package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fluxcrew/lifecycle/internal/app/uow"
	"github.com/fluxcrew/lifecycle/internal/domain"
	"github.com/fluxcrew/lifecycle/internal/domain/event"
	"github.com/fluxcrew/lifecycle/internal/domain/reminder"
	"github.com/fluxcrew/lifecycle/internal/domain/timer"
	"github.com/fluxcrew/lifecycle/internal/ports"
)

// Compile-time check that ReminderService implements ports.ReminderService.
var _ ports.ReminderService = (*ReminderService)(nil)

// ReminderService stores reminders and delivers them through the event
// publisher when their durable timer fires.
type ReminderService struct {
	docs   ports.DocumentStore
	timers *TimerService
	events ports.EventPublisher
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// NewReminderService creates a ReminderService and registers its delivery
// handler on timers.
func NewReminderService(docs ports.DocumentStore, timers *TimerService, events ports.EventPublisher, logger *slog.Logger) *ReminderService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &ReminderService{
		docs:   docs,
		timers: timers,
		events: events,
		now:    time.Now,
		newID:  uuid.NewString,
		logger: logger,
	}
	timers.Handle(timer.KindReminder, s.deliver)
	return s
}

// CreateReminder stores the reminder and arms its timer.
func (s *ReminderService) CreateReminder(ctx context.Context, author, message string, at time.Time) (*reminder.Reminder, error) {
	r := &reminder.Reminder{
		ID:        s.newID(),
		Author:    author,
		Message:   strings.TrimSpace(message),
		FireAt:    at,
		CreatedAt: s.now(),
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating reminder",
		slog.String("reminder_id", r.ID),
		slog.String("member", author),
		slog.Time("fire_at", at),
	)

	raw, err := encodeReminder(r)
	if err != nil {
		return nil, err
	}

	u := uow.New(ctx)
	err = u.AddAction(uow.Func{
		Desc: "insert reminder " + r.ID,
		Do: func(ctx context.Context) error {
			return s.docs.Insert(ctx, collectionReminders, r.ID, raw)
		},
		Undo: func(ctx context.Context) error {
			return s.docs.Delete(ctx, collectionReminders, r.ID)
		},
	})
	if err != nil {
		return nil, err
	}
	if err := s.timers.StageArm(u, timer.NewReminder(r.ID, r.FireAt)); err != nil {
		return nil, err
	}

	if err := u.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to create reminder",
			slog.String("operation", "CreateReminder"),
			slog.String("reminder_id", r.ID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return r, nil
}

// ListReminders returns author's pending reminders ordered by fire time.
func (s *ReminderService) ListReminders(ctx context.Context, author string) ([]reminder.Reminder, error) {
	docs, err := s.docs.FindAll(ctx, collectionReminders)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list reminders",
			slog.String("operation", "ListReminders"),
			slog.String("member", author),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing reminders: %w", err)
	}

	var out []reminder.Reminder
	for _, raw := range docs {
		r, err := decodeReminder(raw)
		if err != nil {
			s.logger.WarnContext(ctx, "skipping unreadable reminder", slog.Any("error", err))
			continue
		}
		if r.Author == author {
			out = append(out, *r)
		}
	}
	slices.SortFunc(out, func(a, b reminder.Reminder) int {
		return a.FireAt.Compare(b.FireAt)
	})
	return out, nil
}

// CancelReminder disarms and deletes a pending reminder.
func (s *ReminderService) CancelReminder(ctx context.Context, author, id string) error {
	r, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if r.Author != author {
		return fmt.Errorf("member %s may not cancel reminder %s: %w", author, id, domain.ErrForbidden)
	}

	if err := s.timers.Disarm(ctx, id); err != nil {
		return err
	}
	if err := s.docs.Delete(ctx, collectionReminders, id); err != nil {
		return fmt.Errorf("deleting reminder %s: %w", id, err)
	}
	return nil
}

func (s *ReminderService) find(ctx context.Context, id string) (*reminder.Reminder, error) {
	raw, err := s.docs.Find(ctx, collectionReminders, id)
	if err != nil {
		return nil, fmt.Errorf("reminder %s: %w", id, err)
	}
	return decodeReminder(raw)
}

// deliver publishes the reminder and removes it. A reminder deleted before
// its timer fired is skipped.
func (s *ReminderService) deliver(ctx context.Context, rec timer.Record) error {
	id := rec.Payload[timer.PayloadReminderID]
	r, err := s.find(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.docs.Delete(ctx, collectionReminders, id); err != nil {
		return fmt.Errorf("deleting reminder %s: %w", id, err)
	}

	if s.events == nil {
		return nil
	}
	return s.events.Publish(ctx, event.Event{
		Kind:       event.ReminderDue,
		Members:    []string{r.Author},
		Message:    r.Text(),
		OccurredAt: s.now(),
	})
}
