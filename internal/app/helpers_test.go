package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/fluxcrew/lifecycle/internal/adapters/docstore/memory"
	"github.com/fluxcrew/lifecycle/internal/domain"
	"github.com/fluxcrew/lifecycle/internal/domain/event"
	"github.com/fluxcrew/lifecycle/internal/platform/scheduler"
	"github.com/fluxcrew/lifecycle/internal/ports"
)

const (
	testGuild = "g1"
	testOwner = "U1"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// recorder is an EventPublisher that keeps every event and lets tests wait
// for one of a given kind.
type recorder struct {
	mu     sync.Mutex
	events []event.Event
	notify chan struct{}
}

func newRecorder() *recorder {
	return &recorder{notify: make(chan struct{}, 64)}
}

func (r *recorder) Publish(_ context.Context, e event.Event) error {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()

	select {
	case r.notify <- struct{}{}:
	default:
	}
	return nil
}

func (r *recorder) kinds() []event.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]event.Kind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

func (r *recorder) last(kind event.Kind) (event.Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Kind == kind {
			return r.events[i], true
		}
	}
	return event.Event{}, false
}

func (r *recorder) waitFor(t *testing.T, kind event.Kind) event.Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if e, ok := r.last(kind); ok {
			return e
		}
		select {
		case <-r.notify:
		case <-deadline:
			t.Fatalf("no %s event within 2s, got %v", kind, r.kinds())
		}
	}
}

// faultyStore fails chosen operations on chosen collections and passes
// everything else through.
type faultyStore struct {
	ports.DocumentStore

	mu     sync.Mutex
	faults map[string]error
	delays map[string]time.Duration
}

func newFaultyStore(inner ports.DocumentStore) *faultyStore {
	return &faultyStore{
		DocumentStore: inner,
		faults:        make(map[string]error),
		delays:        make(map[string]time.Duration),
	}
}

// slow delays every Find on collection by d, widening read-modify-write
// windows.
func (f *faultyStore) slow(collection string, d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delays[collection] = d
}

func (f *faultyStore) Find(ctx context.Context, collection, name string) (json.RawMessage, error) {
	f.mu.Lock()
	d := f.delays[collection]
	f.mu.Unlock()
	if d > 0 {
		time.Sleep(d)
	}
	return f.DocumentStore.Find(ctx, collection, name)
}

// fail makes op ("insert", "update", "delete") on collection return err.
func (f *faultyStore) fail(op, collection string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults[op+":"+collection] = fmt.Errorf("%s %s: %w", op, collection, domain.ErrUnavailable)
}

func (f *faultyStore) fault(op, collection string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faults[op+":"+collection]
}

func (f *faultyStore) Insert(ctx context.Context, collection, name string, doc json.RawMessage) error {
	if err := f.fault("insert", collection); err != nil {
		return err
	}
	return f.DocumentStore.Insert(ctx, collection, name, doc)
}

func (f *faultyStore) Update(ctx context.Context, collection, name string, doc json.RawMessage) error {
	if err := f.fault("update", collection); err != nil {
		return err
	}
	return f.DocumentStore.Update(ctx, collection, name, doc)
}

func (f *faultyStore) Delete(ctx context.Context, collection, name string) error {
	if err := f.fault("delete", collection); err != nil {
		return err
	}
	return f.DocumentStore.Delete(ctx, collection, name)
}

// harness wires the lifecycle services over an in-memory store with a fixed
// clock. Timers still run on the real scheduler.
type harness struct {
	mem    *memory.Store
	docs   *faultyStore
	sched  *scheduler.Scheduler
	timers *TimerService
	store  *ProjectStore
	ledger *PointsLedger
	ctrl   *LifecycleController
	events *recorder
	now    time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		mem:    memory.New(),
		sched:  scheduler.New(scheduler.WithLogger(discardLogger())),
		events: newRecorder(),
		now:    time.Now().Truncate(time.Second),
	}
	t.Cleanup(func() { _ = h.sched.Stop(context.Background()) })

	h.docs = newFaultyStore(h.mem)
	h.timers = NewTimerService(h.docs, h.sched, discardLogger())
	h.store = NewProjectStore(h.docs, discardLogger())
	h.ledger = NewPointsLedger(h.docs, h.store, 2, discardLogger())
	h.ctrl = NewLifecycleController(h.store, h.ledger, h.timers, h.events, DefaultLifecycleConfig(), nil, discardLogger())

	clock := func() time.Time { return h.now }
	h.ledger.now = clock
	h.ctrl.now = clock
	return h
}

// seed creates project "P" owned by U1 with task "T" of value, due after
// dueIn, and returns the created task id.
func (h *harness) seed(t *testing.T, value int, dueIn time.Duration) string {
	t.Helper()
	ctx := context.Background()

	if _, err := h.ctrl.CreateProject(ctx, testGuild, testOwner, ports.NewProject{Name: "P"}); err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	created, err := h.ctrl.CreateTask(ctx, testGuild, testOwner, ports.NewTask{
		Project: "P",
		Name:    "T",
		Value:   value,
		Due:     h.now.Add(dueIn),
	})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	return created.ID
}

func (h *harness) balance(t *testing.T, member string) int {
	t.Helper()
	got, err := h.ledger.Balance(context.Background(), testGuild, member)
	if err != nil {
		t.Fatalf("Balance(%s) error = %v", member, err)
	}
	return got
}

// setPoints stores an initial point total for member.
func (h *harness) setPoints(t *testing.T, member string, total int) {
	t.Helper()
	ctx := context.Background()
	c, err := h.store.Load(ctx, testGuild)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	c.Points[member] = total
	if err := h.store.Save(ctx, c); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
}

// storedTask reloads P/T from the document store.
func (h *harness) storedTask(t *testing.T) (completed bool, value int) {
	t.Helper()
	c, err := h.store.Load(context.Background(), testGuild)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	_, tk, err := h.store.FindTask(c, "P", "T")
	if err != nil {
		t.Fatalf("FindTask() error = %v", err)
	}
	return tk.Completed, tk.Value
}
