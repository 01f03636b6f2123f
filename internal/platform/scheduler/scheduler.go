// Package scheduler runs deferred callbacks on in-process timers.
//
// Each scheduled callback fires at most once. Cancel before firing
// guarantees it never runs; Cancel after it started is a no-op. A callback
// that returns an error or panics is logged and counted but never takes the
// process down.
//
//	s := scheduler.New(scheduler.WithLogger(logger))
//	h := s.Schedule(ctx, time.Hour, "task_due t1", func(ctx context.Context) error { ... })
//	s.Cancel(h)
//	_ = s.Stop(shutdownCtx)
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/fluxcrew/lifecycle/internal/platform/telemetry"
)

// ErrStopped is returned by Stop when it is called twice.
var ErrStopped = errors.New("scheduler: stopped")

// Callback is the work a timer performs when it fires.
type Callback func(ctx context.Context) error

// ErrorHandler observes callback failures after they are logged.
type ErrorHandler func(name string, err error)

// Handle identifies a scheduled callback.
type Handle string

const (
	statePending int32 = iota
	stateRunning
	stateDone
	stateCancelled
)

type entry struct {
	handle Handle
	name   string
	timer  *time.Timer
	state  atomic.Int32
}

// Scheduler owns a set of pending timers.
type Scheduler struct {
	logger    *slog.Logger
	onError   ErrorHandler
	callbacks metric.Int64Counter
	now       func() time.Time

	mu      sync.Mutex
	entries map[Handle]*entry
	stopped bool
	running sync.WaitGroup
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the logger used for callback failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithErrorHandler registers h to observe callback errors and panics.
func WithErrorHandler(h ErrorHandler) Option {
	return func(s *Scheduler) { s.onError = h }
}

// WithMetrics counts callback outcomes on m.SchedulerCallbacks.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Scheduler) {
		if m != nil {
			s.callbacks = m.SchedulerCallbacks
		}
	}
}

// WithClock overrides time.Now for ScheduleAt.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// New creates a Scheduler.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		logger:  slog.Default(),
		now:     time.Now,
		entries: make(map[Handle]*entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule runs fn after delay. A non-positive delay runs it as soon as
// possible. The callback receives a context detached from ctx's
// cancellation but carrying its values, since it usually outlives the
// request that scheduled it.
func (s *Scheduler) Schedule(ctx context.Context, delay time.Duration, name string, fn Callback) Handle {
	e := &entry{
		handle: Handle(uuid.NewString()),
		name:   name,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		e.state.Store(stateCancelled)
		return e.handle
	}

	base := context.WithoutCancel(ctx)
	s.entries[e.handle] = e
	e.timer = time.AfterFunc(max(delay, 0), func() { s.fire(base, e, fn) })
	return e.handle
}

// ScheduleAt runs fn at the given instant, immediately if it has passed.
func (s *Scheduler) ScheduleAt(ctx context.Context, at time.Time, name string, fn Callback) Handle {
	return s.Schedule(ctx, at.Sub(s.now()), name, fn)
}

// Cancel prevents a pending callback from firing. It reports whether the
// callback was still pending.
func (s *Scheduler) Cancel(h Handle) bool {
	s.mu.Lock()
	e, ok := s.entries[h]
	if ok {
		delete(s.entries, h)
	}
	s.mu.Unlock()

	if !ok || !e.state.CompareAndSwap(statePending, stateCancelled) {
		return false
	}
	e.timer.Stop()
	s.record(context.Background(), "cancelled")
	return true
}

// Pending reports how many callbacks have not fired yet.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Stop cancels every pending callback and waits for running ones to finish
// or for ctx to end.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return ErrStopped
	}
	s.stopped = true
	pending := s.entries
	s.entries = make(map[Handle]*entry)
	s.mu.Unlock()

	for _, e := range pending {
		if e.state.CompareAndSwap(statePending, stateCancelled) {
			e.timer.Stop()
		}
	}

	done := make(chan struct{})
	go func() {
		s.running.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for running callbacks: %w", ctx.Err())
	}
}

func (s *Scheduler) fire(ctx context.Context, e *entry, fn Callback) {
	s.mu.Lock()
	if s.stopped || !e.state.CompareAndSwap(statePending, stateRunning) {
		s.mu.Unlock()
		return
	}
	delete(s.entries, e.handle)
	s.running.Add(1)
	s.mu.Unlock()
	defer s.running.Done()
	defer e.state.Store(stateDone)

	err := s.run(ctx, e.name, fn)
	switch {
	case err == nil:
		s.record(ctx, "ok")
	case errors.Is(err, errPanic):
		s.record(ctx, "panic")
	default:
		s.record(ctx, "error")
	}
}

var errPanic = errors.New("callback panicked")

func (s *Scheduler) run(ctx context.Context, name string, fn Callback) (err error) {
	logger := s.logger

	defer func() {
		if v := recover(); v != nil {
			errorID := uuid.NewString()[:8]
			logger.ErrorContext(ctx, "scheduled callback panicked",
				slog.String("error_id", errorID),
				slog.String("callback", name),
				slog.Any("panic", v),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("%w: %v", errPanic, v)
			s.notify(name, err)
		}
	}()

	if err = fn(ctx); err != nil {
		logger.ErrorContext(ctx, "scheduled callback failed",
			slog.String("callback", name),
			slog.Any("error", err),
		)
		s.notify(name, err)
	}
	return err
}

func (s *Scheduler) notify(name string, err error) {
	if s.onError != nil {
		s.onError(name, err)
	}
}

func (s *Scheduler) record(ctx context.Context, result string) {
	if s.callbacks == nil {
		return
	}
	s.callbacks.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResult.String(result)))
}

// Name identifies the scheduler in the health registry.
func (s *Scheduler) Name() string { return "scheduler" }

// HealthCheck fails once Stop has been called; a stopped scheduler drops
// every timer armed after it.
func (s *Scheduler) HealthCheck(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return ErrStopped
	}
	return nil
}
