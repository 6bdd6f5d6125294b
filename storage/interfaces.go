package storage

import (
	"context"

	"github.com/poiesic/memrank/core"
)

// MemoryRepository provides operations for managing memory records.
// Implementations must be thread-safe and support concurrent access.
type MemoryRepository interface {
	// AddMemories adds one or more memory records to storage.
	// For records with ID=0, derives a content-based ID from the record's
	// identity text, so identical memories collapse to one record.
	// Sets CreatedAt if not already set.
	// Returns the records with IDs and timestamps populated.
	AddMemories(ctx context.Context, records ...*core.MemoryRecord) ([]*core.MemoryRecord, error)

	// GetMemory retrieves a single memory record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetMemory(ctx context.Context, id core.ID) (*core.MemoryRecord, error)

	// GetMemories retrieves multiple memory records by their IDs.
	// Returns only the records that exist (no error for missing records).
	GetMemories(ctx context.Context, ids ...core.ID) ([]*core.MemoryRecord, error)

	// GetAllMemories returns a snapshot of the full corpus in creation
	// order. The order is stable across calls for an unchanged corpus, so
	// callers can rely on it for deterministic ranking tie-breaks.
	GetAllMemories(ctx context.Context) ([]*core.MemoryRecord, error)

	// GetMemoriesByTag retrieves records carrying the given tag
	// (case-insensitive), in creation order.
	GetMemoriesByTag(ctx context.Context, tag string) ([]*core.MemoryRecord, error)

	// TouchAccess records a read of the given records: increments
	// AccessCount and updates LastAccessedAt. Missing IDs are skipped.
	TouchAccess(ctx context.Context, ids ...core.ID) error

	// DeleteMemories removes memory records by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteMemories(ctx context.Context, ids ...core.ID) error

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}
