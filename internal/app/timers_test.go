package app

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fluxcrew/lifecycle/internal/adapters/docstore/memory"
	"github.com/fluxcrew/lifecycle/internal/domain"
	"github.com/fluxcrew/lifecycle/internal/domain/timer"
	"github.com/fluxcrew/lifecycle/internal/platform/scheduler"
)

func newTestTimers(t *testing.T, docs *memory.Store) *TimerService {
	t.Helper()
	s := scheduler.New(scheduler.WithLogger(discardLogger()))
	t.Cleanup(func() { _ = s.Stop(context.Background()) })
	return NewTimerService(docs, s, discardLogger())
}

// firedChan registers a handler for kind that reports each fired record id.
func firedChan(ts *TimerService, kind timer.Kind) <-chan string {
	ch := make(chan string, 8)
	ts.Handle(kind, func(_ context.Context, rec timer.Record) error {
		ch <- rec.ID
		return nil
	})
	return ch
}

func expectFired(t *testing.T, ch <-chan string, want string) {
	t.Helper()
	select {
	case got := <-ch:
		if got != want {
			t.Errorf("fired %q, want %q", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timer %q did not fire", want)
	}
}

func expectNotFired(t *testing.T, ch <-chan string) {
	t.Helper()
	select {
	case got := <-ch:
		t.Errorf("timer %q fired, want none", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTimerService_ArmPersistsAndFires(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	docs := memory.New()
	ts := newTestTimers(t, docs)
	fired := firedChan(ts, timer.KindReminder)

	rec := timer.NewReminder("r1", time.Now().Add(20*time.Millisecond))
	if err := ts.Arm(ctx, rec); err != nil {
		t.Fatalf("Arm() error = %v", err)
	}
	if docs.Len(collectionTimers) != 1 || !ts.Pending("r1") {
		t.Fatal("Arm() did not persist and schedule the timer")
	}

	expectFired(t, fired, "r1")
	if docs.Len(collectionTimers) != 0 {
		t.Error("timer record not deleted after firing")
	}
	if ts.Pending("r1") {
		t.Error("Pending() = true after firing")
	}
}

func TestTimerService_PastFireTimeClampsToNow(t *testing.T) {
	t.Parallel()
	ts := newTestTimers(t, memory.New())
	fired := firedChan(ts, timer.KindTaskDue)

	rec := timer.NewTaskDue(testGuild, "p1", "t1", time.Now().Add(-time.Hour))
	if err := ts.Arm(context.Background(), rec); err != nil {
		t.Fatalf("Arm() error = %v", err)
	}
	expectFired(t, fired, "t1")
}

func TestTimerService_Disarm(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	docs := memory.New()
	ts := newTestTimers(t, docs)
	fired := firedChan(ts, timer.KindReminder)

	_ = ts.Arm(ctx, timer.NewReminder("r1", time.Now().Add(50*time.Millisecond)))
	if err := ts.Disarm(ctx, "r1"); err != nil {
		t.Fatalf("Disarm() error = %v", err)
	}
	if err := ts.Disarm(ctx, "unknown"); err != nil {
		t.Errorf("Disarm(unknown) error = %v, want nil", err)
	}

	expectNotFired(t, fired)
	if docs.Len(collectionTimers) != 0 {
		t.Error("Disarm() left the record behind")
	}
}

func TestTimerService_RearmReplaces(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ts := newTestTimers(t, memory.New())
	var calls atomic.Int32
	done := make(chan struct{}, 2)
	ts.Handle(timer.KindReminder, func(context.Context, timer.Record) error {
		calls.Add(1)
		done <- struct{}{}
		return nil
	})

	_ = ts.Arm(ctx, timer.NewReminder("r1", time.Now().Add(30*time.Millisecond)))
	_ = ts.Arm(ctx, timer.NewReminder("r1", time.Now().Add(60*time.Millisecond)))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}
	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("handler calls = %d, want 1", got)
	}
}

func TestTimerService_ArmRejectsInvalidRecord(t *testing.T) {
	t.Parallel()
	ts := newTestTimers(t, memory.New())

	err := ts.Arm(context.Background(), timer.Record{ID: "x"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Arm(invalid) error = %v, want ErrValidation", err)
	}
}

func TestTimerService_Restore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	docs := memory.New()

	// Records left behind by a previous process.
	first := newTestTimers(t, docs)
	_ = first.Arm(ctx, timer.NewReminder("soon", time.Now().Add(30*time.Millisecond)))
	_ = first.Arm(ctx, timer.NewReminder("late", time.Now().Add(-time.Minute)))
	_ = first.Arm(ctx, timer.NewTaskDue(testGuild, "p1", "t1", time.Now().Add(time.Hour)))
	_ = first.scheduler.Stop(ctx)
	_ = docs.Insert(ctx, collectionTimers, "junk", json.RawMessage(`not json`))

	second := newTestTimers(t, docs)
	fired := firedChan(second, timer.KindReminder)

	armed, err := second.Restore(ctx)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	// No task_due handler is registered, so that record is dropped.
	if armed != 2 {
		t.Errorf("Restore() = %d, want 2", armed)
	}

	got := map[string]bool{}
	for range 2 {
		select {
		case id := <-fired:
			got[id] = true
		case <-time.After(2 * time.Second):
			t.Fatalf("restored timers fired %v, want soon and late", got)
		}
	}
	if !got["soon"] || !got["late"] {
		t.Errorf("restored timers fired %v, want soon and late", got)
	}

	if _, err := docs.Find(ctx, collectionTimers, "t1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("record of unhandled kind still stored, Find() error = %v", err)
	}
}

func TestTimerService_HandlerErrorIsContained(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	docs := memory.New()

	reported := make(chan error, 1)
	s := scheduler.New(
		scheduler.WithLogger(discardLogger()),
		scheduler.WithErrorHandler(func(_ string, err error) { reported <- err }),
	)
	t.Cleanup(func() { _ = s.Stop(context.Background()) })

	ts := NewTimerService(docs, s, discardLogger())
	ts.Handle(timer.KindReminder, func(context.Context, timer.Record) error {
		return errors.New("boom")
	})

	_ = ts.Arm(ctx, timer.NewReminder("r1", time.Now()))

	select {
	case err := <-reported:
		if err == nil || err.Error() != "boom" {
			t.Errorf("reported error = %v, want boom", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler error was not reported")
	}
	// At-most-once: the record is gone even though the handler failed.
	if docs.Len(collectionTimers) != 0 {
		t.Error("timer record kept after a failed handler")
	}
}
