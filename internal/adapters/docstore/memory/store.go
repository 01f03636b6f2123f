// Package memory implements ports.DocumentStore in process memory. It backs
// the "memory" store driver and the application tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/fluxcrew/lifecycle/internal/domain"
	"github.com/fluxcrew/lifecycle/internal/ports"
)

// Compile-time interface check.
var _ ports.DocumentStore = (*Store)(nil)

// Store keeps documents in nested maps guarded by an RWMutex. Stored and
// returned documents are copies, so callers cannot alias store state.
type Store struct {
	mu   sync.RWMutex
	data map[string]map[string]json.RawMessage
}

// New creates an empty Store.
func New() *Store {
	return &Store{data: make(map[string]map[string]json.RawMessage)}
}

// Find implements ports.DocumentStore.
func (s *Store) Find(ctx context.Context, collection, name string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.data[collection][name]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", collection, name, domain.ErrNotFound)
	}
	return slices.Clone(doc), nil
}

// Insert implements ports.DocumentStore.
func (s *Store) Insert(ctx context.Context, collection, name string, doc json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, ok := s.data[collection]
	if !ok {
		docs = make(map[string]json.RawMessage)
		s.data[collection] = docs
	}
	if _, exists := docs[name]; exists {
		return fmt.Errorf("%s/%s: %w", collection, name, domain.ErrConflict)
	}
	docs[name] = slices.Clone(doc)
	return nil
}

// Update implements ports.DocumentStore.
func (s *Store) Update(ctx context.Context, collection, name string, doc json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[collection][name]; !ok {
		return fmt.Errorf("%s/%s: %w", collection, name, domain.ErrNotFound)
	}
	s.data[collection][name] = slices.Clone(doc)
	return nil
}

// Delete implements ports.DocumentStore.
func (s *Store) Delete(ctx context.Context, collection, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data[collection], name)
	return nil
}

// FindAll implements ports.DocumentStore.
func (s *Store) FindAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.data[collection]
	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]json.RawMessage, 0, len(names))
	for _, name := range names {
		out = append(out, slices.Clone(docs[name]))
	}
	return out, nil
}

// Len reports how many documents collection holds.
func (s *Store) Len(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data[collection])
}
