// Package uow stages the writes of one lifecycle operation and commits them
// in order, rolling completed writes back when a later write fails.
//
// A lifecycle operation mutates the community aggregate in memory, stages
// one action per document write, then commits:
//
//	u := uow.New(ctx)
//	_ = u.Stage("guild:123", community, saveCommunity)
//	_ = u.AddGroup(appendLedger("u1"), appendLedger("u2"))
//	err := u.Commit(ctx)
//
// A Unit belongs to a single operation running under the guild lock; it is
// not shared between operations.
package uow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fluxcrew/lifecycle/internal/domain"
)

// Compile-time check that Unit implements domain.WriteStager.
var _ domain.WriteStager = (*Unit)(nil)

var (
	// ErrAlreadyCommitted is returned when staging or committing a Unit
	// that has already been committed.
	ErrAlreadyCommitted = errors.New("uow: already committed")

	// ErrNilAction is returned when a nil action is staged.
	ErrNilAction = errors.New("uow: nil action")
)

// Unit is an ordered queue of staged writes plus the entities they persist.
type Unit struct {
	ctx       context.Context
	mu        sync.Mutex
	staged    map[string]any
	items     []actionItem
	committed bool
}

// New creates an empty Unit bound to ctx. Execute uses ctx for immediate
// actions.
func New(ctx context.Context) *Unit {
	return &Unit{
		ctx:    ctx,
		staged: make(map[string]any),
	}
}

// Staged returns the entity last staged under key, typed as T.
func Staged[T any](u *Unit, key string) (T, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	v, ok := u.staged[key].(T)
	return v, ok
}

// Stage records entity under key and queues action to persist it.
func (u *Unit) Stage(key string, entity any, action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.committed {
		return ErrAlreadyCommitted
	}
	u.staged[key] = entity
	u.items = append(u.items, &singleAction{action: action})
	return nil
}

// Execute runs action immediately. It does not join the commit queue and is
// never rolled back.
func (u *Unit) Execute(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return action.Execute(u.ctx)
}

// AddAction queues a single action.
func (u *Unit) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.committed {
		return ErrAlreadyCommitted
	}
	u.items = append(u.items, &singleAction{action: action})
	return nil
}

// AddGroup queues actions that run concurrently when their turn comes.
// An empty call is a no-op.
func (u *Unit) AddGroup(actions ...domain.Action) error {
	for _, a := range actions {
		if a == nil {
			return ErrNilAction
		}
	}
	if len(actions) == 0 {
		return nil
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.committed {
		return ErrAlreadyCommitted
	}
	u.items = append(u.items, &actionGroup{actions: actions})
	return nil
}

// Len reports how many items are queued.
func (u *Unit) Len() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.items)
}

// Func adapts a pair of closures to domain.Action. A nil undo makes the
// rollback a no-op.
type Func struct {
	Desc string
	Do   func(ctx context.Context) error
	Undo func(ctx context.Context) error
}

// Execute implements domain.Action.
func (f Func) Execute(ctx context.Context) error {
	if f.Do == nil {
		return fmt.Errorf("%s: no execute function", f.Desc)
	}
	return f.Do(ctx)
}

// Rollback implements domain.Action.
func (f Func) Rollback(ctx context.Context) error {
	if f.Undo == nil {
		return nil
	}
	return f.Undo(ctx)
}

// Description implements domain.Action.
func (f Func) Description() string { return f.Desc }
