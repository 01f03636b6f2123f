package memory_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fluxcrew/lifecycle/internal/adapters/docstore/docstoretest"
	"github.com/fluxcrew/lifecycle/internal/adapters/docstore/memory"
	"github.com/fluxcrew/lifecycle/internal/ports"
)

func TestStore_Contract(t *testing.T) {
	docstoretest.Run(t, func(*testing.T) ports.DocumentStore { return memory.New() })
}

func TestStore_CopiesDocuments(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()

	doc := json.RawMessage(`{"v":1}`)
	_ = s.Insert(ctx, "guilds", "g1", doc)
	doc[5] = '9'

	got, _ := s.Find(ctx, "guilds", "g1")
	if string(got) != `{"v":1}` {
		t.Errorf("Find() = %s, want stored copy unaffected by caller", got)
	}
	got[5] = '7'
	again, _ := s.Find(ctx, "guilds", "g1")
	if string(again) != `{"v":1}` {
		t.Errorf("Find() = %s, want stored copy unaffected by returned slice", again)
	}
	if s.Len("guilds") != 1 {
		t.Errorf("Len() = %d, want 1", s.Len("guilds"))
	}
}

func TestStore_CancelledContext(t *testing.T) {
	t.Parallel()
	s := memory.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Find(ctx, "guilds", "g1"); !errors.Is(err, context.Canceled) {
		t.Errorf("Find() error = %v, want context.Canceled", err)
	}
}
