package domain

import "context"

// Action is one staged write with a compensating rollback.
type Action interface {
	// Execute performs the write.
	Execute(ctx context.Context) error

	// Rollback undoes a successful Execute. It is never called when Execute
	// failed.
	Rollback(ctx context.Context) error

	// Description names the write in logs, e.g. "append ledger entry for u1".
	Description() string
}

// WriteStager queues the writes of one lifecycle operation so they commit
// together after the aggregate has been mutated in memory.
type WriteStager interface {
	// Stage records entity under key and queues action for commit.
	Stage(key string, entity any, action Action) error

	// Execute runs action now, outside the commit queue. It is never rolled
	// back.
	Execute(action Action) error
}
