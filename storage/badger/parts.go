package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/partdex/core"
	"github.com/poiesic/partdex/storage"
)

// PartRepository implements storage.PartRepository for BadgerDB.
type PartRepository struct {
	backend *Backend
}

var _ storage.PartRepository = (*PartRepository)(nil)

// NewPartRepository creates a new PartRepository.
func NewPartRepository(backend *Backend) (*PartRepository, error) {
	return &PartRepository{backend: backend}, nil
}

// Close is a no-op; the caller owns the backend.
func (r *PartRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *PartRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddParts adds one or more parts to storage and indexes them in the same
// transaction. Parts with ID=0 receive a content-based ID derived from the
// part number and name, so re-seeding the same catalog yields the same IDs.
func (r *PartRepository) AddParts(ctx context.Context, parts ...*core.Part) ([]*core.Part, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, part := range parts {
			if part.Id == 0 {
				part.Id = core.IDFromContent(part.PartNumber + "|" + part.Name)
			}

			key := makePartKey(part.Id)
			existing, err := r.readPart(tx, key)
			if err != nil {
				return err
			}
			if existing != nil {
				return storage.ErrDuplicateKey
			}

			part.InsertedAt = time.Now().UTC()
			part.UpdatedAt = part.InsertedAt

			if err := tx.Set(key, storage.MarshalPart(part)); err != nil {
				return err
			}
			if err := indexPart(tx, part); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return parts, err
}

// UpdateParts updates existing parts and replaces their postings in the
// same transaction.
func (r *PartRepository) UpdateParts(ctx context.Context, parts ...*core.Part) ([]*core.Part, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, part := range parts {
			key := makePartKey(part.Id)

			// Read old record so stale postings can be removed
			old, err := r.readPart(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			part.InsertedAt = old.InsertedAt
			part.UpdatedAt = time.Now().UTC()

			if err := tx.Set(key, storage.MarshalPart(part)); err != nil {
				return err
			}

			if old.SearchText() != part.SearchText() {
				if err := deindexPart(tx, old); err != nil {
					return err
				}
				if err := indexPart(tx, part); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return parts, err
}

// DeleteParts removes parts by their IDs, along with their postings.
func (r *PartRepository) DeleteParts(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makePartKey(id)

			part, err := r.readPart(tx, key)
			if err != nil {
				return err
			}
			if part == nil {
				return storage.ErrNotFound
			}

			if err := deindexPart(tx, part); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetPart retrieves a single part by ID.
func (r *PartRepository) GetPart(ctx context.Context, id core.ID) (*core.Part, error) {
	var result *core.Part
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readPart(tx, makePartKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetParts retrieves multiple parts by their IDs. Missing IDs are skipped.
func (r *PartRepository) GetParts(ctx context.Context, ids ...core.ID) ([]*core.Part, error) {
	var result []*core.Part
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			part, err := r.readPart(tx, makePartKey(id))
			if err != nil {
				return err
			}
			if part != nil {
				result = append(result, part)
			}
		}
		return nil
	}, false)
	return result, err
}

// ListParts retrieves up to limit parts ordered by ID.
func (r *PartRepository) ListParts(ctx context.Context, limit int) ([]*core.Part, error) {
	var results []*core.Part
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(partRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var part *core.Part
			err := iter.Item().Value(func(val []byte) error {
				var err error
				part, err = storage.UnmarshalPart(val)
				return err
			})
			if err != nil {
				return err
			}
			if part != nil {
				results = append(results, part)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Record keys sort as strings, not numerically
	slices.SortFunc(results, func(a, b *core.Part) int {
		if a.Id < b.Id {
			return -1
		}
		if a.Id > b.Id {
			return 1
		}
		return 0
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// CountParts returns the number of stored parts.
func (r *PartRepository) CountParts(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(partRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readPart reads a part record from the transaction.
func (r *PartRepository) readPart(tx *badger.Txn, key []byte) (*core.Part, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var part *core.Part
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		part, unmarshalErr = storage.UnmarshalPart(val)
		return unmarshalErr
	})
	return part, err
}
