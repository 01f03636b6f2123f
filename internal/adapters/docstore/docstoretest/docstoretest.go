// Package docstoretest holds the behavior every ports.DocumentStore
// implementation must share, run against each adapter from its own tests.
package docstoretest

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fluxcrew/lifecycle/internal/domain"
	"github.com/fluxcrew/lifecycle/internal/ports"
)

// Run exercises the DocumentStore contract. newStore must return an empty
// store each time it is called.
func Run(t *testing.T, newStore func(t *testing.T) ports.DocumentStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("find missing", func(t *testing.T) {
		s := newStore(t)
		if _, err := s.Find(ctx, "guilds", "g1"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Find() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("insert then find", func(t *testing.T) {
		s := newStore(t)
		doc := json.RawMessage(`{"guild_id":"g1"}`)
		if err := s.Insert(ctx, "guilds", "g1", doc); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
		got, err := s.Find(ctx, "guilds", "g1")
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if string(got) != string(doc) {
			t.Errorf("Find() = %s, want %s", got, doc)
		}
	})

	t.Run("insert duplicate", func(t *testing.T) {
		s := newStore(t)
		_ = s.Insert(ctx, "guilds", "g1", json.RawMessage(`{}`))
		if err := s.Insert(ctx, "guilds", "g1", json.RawMessage(`{}`)); !errors.Is(err, domain.ErrConflict) {
			t.Errorf("Insert() duplicate error = %v, want ErrConflict", err)
		}
	})

	t.Run("same name in different collections", func(t *testing.T) {
		s := newStore(t)
		if err := s.Insert(ctx, "guilds", "x", json.RawMessage(`1`)); err != nil {
			t.Fatalf("Insert(guilds) error = %v", err)
		}
		if err := s.Insert(ctx, "timers", "x", json.RawMessage(`2`)); err != nil {
			t.Fatalf("Insert(timers) error = %v", err)
		}
		got, _ := s.Find(ctx, "timers", "x")
		if string(got) != "2" {
			t.Errorf("Find(timers) = %s, want 2", got)
		}
	})

	t.Run("update", func(t *testing.T) {
		s := newStore(t)
		if err := s.Update(ctx, "guilds", "g1", json.RawMessage(`{}`)); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Update() missing error = %v, want ErrNotFound", err)
		}
		_ = s.Insert(ctx, "guilds", "g1", json.RawMessage(`{"v":1}`))
		if err := s.Update(ctx, "guilds", "g1", json.RawMessage(`{"v":2}`)); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		got, _ := s.Find(ctx, "guilds", "g1")
		if string(got) != `{"v":2}` {
			t.Errorf("Find() after Update = %s, want {\"v\":2}", got)
		}
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		_ = s.Insert(ctx, "reminders", "r1", json.RawMessage(`{}`))
		if err := s.Delete(ctx, "reminders", "r1"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := s.Find(ctx, "reminders", "r1"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Find() after Delete error = %v, want ErrNotFound", err)
		}
		if err := s.Delete(ctx, "reminders", "r1"); err != nil {
			t.Errorf("Delete() missing error = %v, want nil", err)
		}
	})

	t.Run("find all ordered by name", func(t *testing.T) {
		s := newStore(t)
		for _, name := range []string{"b", "c", "a"} {
			_ = s.Insert(ctx, "timers", name, json.RawMessage(`"`+name+`"`))
		}
		_ = s.Insert(ctx, "guilds", "z", json.RawMessage(`"z"`))

		got, err := s.FindAll(ctx, "timers")
		if err != nil {
			t.Fatalf("FindAll() error = %v", err)
		}
		want := []string{`"a"`, `"b"`, `"c"`}
		if len(got) != len(want) {
			t.Fatalf("FindAll() returned %d docs, want %d", len(got), len(want))
		}
		for i := range want {
			if string(got[i]) != want[i] {
				t.Errorf("FindAll()[%d] = %s, want %s", i, got[i], want[i])
			}
		}
	})

	t.Run("find all empty", func(t *testing.T) {
		s := newStore(t)
		got, err := s.FindAll(ctx, "ledger")
		if err != nil {
			t.Fatalf("FindAll() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("FindAll() = %d docs, want 0", len(got))
		}
	})
}
