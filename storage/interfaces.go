package storage

import (
	"context"

	"github.com/poiesic/partdex/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// TokenSearcher runs exact/prefix queries against the token index.
type TokenSearcher interface {
	// TokenSearch tokenizes the query and matches every term as a prefix;
	// multiple terms are OR-ed to favor recall. Results are ordered by the
	// index's relevance rank (matched terms, then term frequency, then ID).
	// limit <= 0 returns all ranked results; offset applies after ranking.
	// A blank query deterministically returns no results.
	TokenSearch(ctx context.Context, query string, limit, offset int) ([]core.ID, error)
}

// PartRepository provides operations for managing part records and keeps the
// token index synchronized with every mutation.
type PartRepository interface {
	Repository
	TokenSearcher

	// AddParts adds one or more parts to storage and indexes them in the
	// same transaction. For parts with ID=0, derives a content-based ID.
	// Sets InsertedAt/UpdatedAt timestamps.
	// Returns the parts with IDs and timestamps populated.
	AddParts(ctx context.Context, parts ...*core.Part) ([]*core.Part, error)

	// UpdateParts updates existing parts and replaces their postings in the
	// same transaction. Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any part doesn't exist.
	UpdateParts(ctx context.Context, parts ...*core.Part) ([]*core.Part, error)

	// DeleteParts removes parts by their IDs, along with their postings.
	// Returns ErrNotFound if any part doesn't exist.
	DeleteParts(ctx context.Context, ids ...core.ID) error

	// GetPart retrieves a single part by ID.
	// Returns ErrNotFound if the part doesn't exist.
	GetPart(ctx context.Context, id core.ID) (*core.Part, error)

	// GetParts retrieves multiple parts by their IDs.
	// Returns only the parts that exist (no error for missing parts).
	GetParts(ctx context.Context, ids ...core.ID) ([]*core.Part, error)

	// ListParts retrieves up to limit parts ordered by ID.
	// limit <= 0 returns all parts.
	ListParts(ctx context.Context, limit int) ([]*core.Part, error)

	// CountParts returns the number of stored parts.
	CountParts(ctx context.Context) (int, error)

	// RebuildIndex atomically clears the token index and repopulates it
	// from the stored parts. Idempotent; returns the count indexed.
	RebuildIndex(ctx context.Context) (int, error)
}
