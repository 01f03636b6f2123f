// Package docstore holds the document store decorators shared by every
// driver. The drivers themselves live in the memory, sqlite and docapi
// packages.
package docstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fluxcrew/lifecycle/internal/ports"
)

// Compile-time interface check.
var _ ports.DocumentStore = (*Timeout)(nil)

// Timeout bounds every call on the wrapped store. Scheduler callbacks run on
// contexts without a deadline, so without it a hung store would pin a timer
// goroutine forever.
type Timeout struct {
	next ports.DocumentStore
	d    time.Duration
}

// WithTimeout wraps next. A non-positive d returns next unchanged.
func WithTimeout(next ports.DocumentStore, d time.Duration) ports.DocumentStore {
	if d <= 0 {
		return next
	}
	return &Timeout{next: next, d: d}
}

func (t *Timeout) Find(ctx context.Context, collection, name string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.next.Find(ctx, collection, name)
}

func (t *Timeout) Insert(ctx context.Context, collection, name string, doc json.RawMessage) error {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.next.Insert(ctx, collection, name, doc)
}

func (t *Timeout) Update(ctx context.Context, collection, name string, doc json.RawMessage) error {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.next.Update(ctx, collection, name, doc)
}

func (t *Timeout) Delete(ctx context.Context, collection, name string) error {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.next.Delete(ctx, collection, name)
}

func (t *Timeout) FindAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.next.FindAll(ctx, collection)
}
