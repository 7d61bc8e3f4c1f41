// Package repo provides the uniform storage contract for flat calculation
// records, with three backends sharing it: an ephemeral in-process store, a
// durable CSV flat file, and a durable SQLite database.
//
// The contract is append-only: Add never rejects duplicate IDs because the
// layer above generates IDs uniquely. GetAll and GetLast report
// EmptyStoreError when no records exist — the same contract on every
// variant. Filter treats an empty store as a valid, empty result.
//
// Backends are plain constructed values owned by their caller; there are no
// process-wide singletons. Tests build fresh instances per case.
package repo

import (
	"github.com/tally-cli/tally/internal/record"
)

// Repository is the uniform CRUD surface over flat calculation records.
type Repository interface {
	// Add appends a record. Duplicate IDs are permitted.
	Add(rec record.Record) error

	// GetAll returns all records in insertion order.
	// Fails with EmptyStoreError when the store holds no records.
	GetAll() ([]record.Record, error)

	// GetByID returns the first record whose ID matches, in insertion
	// order. Fails with NotFoundError when absent.
	GetByID(id string) (record.Record, error)

	// GetLast returns the most recently added record.
	// Fails with EmptyStoreError when the store holds no records.
	GetLast() (record.Record, error)

	// Filter returns the records matching pred, in insertion order.
	// An empty store yields an empty slice, never an error.
	Filter(pred func(record.Record) bool) ([]record.Record, error)

	// Clear removes all records. Idempotent.
	Clear() error

	// Delete removes every record whose ID matches.
	// Fails with NotFoundError when none do.
	Delete(id string) error

	// Close releases any resources held by the backend.
	Close() error
}
