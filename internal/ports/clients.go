package ports

import (
	"context"
	"encoding/json"

	"github.com/fluxcrew/lifecycle/internal/domain/event"
)

// DocumentStore is the generic document backend every piece of lifecycle
// state lives in. Documents are opaque JSON values keyed by (collection,
// name). Implemented by the memory, SQLite and remote document adapters.
//
// Failures of the backend itself surface as domain.ErrUnavailable. The
// application layer never retries; retry belongs to the adapter.
type DocumentStore interface {
	// Find returns the named document.
	// Returns domain.ErrNotFound if it does not exist.
	Find(ctx context.Context, collection, name string) (json.RawMessage, error)

	// Insert stores a new document.
	// Returns domain.ErrConflict if the name is already taken.
	Insert(ctx context.Context, collection, name string, doc json.RawMessage) error

	// Update replaces an existing document.
	// Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, collection, name string, doc json.RawMessage) error

	// Delete removes the named document. Deleting a missing document is not
	// an error.
	Delete(ctx context.Context, collection, name string) error

	// FindAll returns every document in the collection ordered by name.
	FindAll(ctx context.Context, collection string) ([]json.RawMessage, error)
}

// EventPublisher delivers domain events to the notification layer.
// Delivery is best effort: the lifecycle engine logs a failed Publish and
// carries on, since the state change it describes is already committed.
type EventPublisher interface {
	Publish(ctx context.Context, e event.Event) error
}
