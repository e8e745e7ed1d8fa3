package badger

import (
	"context"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/partdex/core"
	"github.com/poiesic/partdex/storage"
)

// indexPart writes one posting per distinct term in the part's search text.
func indexPart(tx *badger.Txn, part *core.Part) error {
	for term, freq := range core.TermFrequencies(part.SearchText()) {
		if err := tx.Set(makeTokenKey(term, part.Id), makeTokenValue(freq)); err != nil {
			return err
		}
	}
	return nil
}

// deindexPart removes the part's postings.
func deindexPart(tx *badger.Txn, part *core.Part) error {
	for term := range core.TermFrequencies(part.SearchText()) {
		if err := tx.Delete(makeTokenKey(term, part.Id)); err != nil {
			return err
		}
	}
	return nil
}

// tokenHit accumulates relevance evidence for one candidate part.
type tokenHit struct {
	id      core.ID
	matched int
	tfSum   int
}

// TokenSearch tokenizes the query and matches every distinct term as a
// prefix against the token index. Terms are OR-ed: a part matching any term
// is a candidate, ranked by how many distinct query terms it matched, then
// by total term frequency, then by ID for a stable order.
func (r *PartRepository) TokenSearch(ctx context.Context, query string, limit, offset int) ([]core.ID, error) {
	terms := core.Tokenize(query)
	if len(terms) == 0 {
		return nil, nil
	}
	slices.Sort(terms)
	terms = slices.Compact(terms)

	hits := make(map[core.ID]*tokenHit)
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, term := range terms {
			opts := badger.DefaultIteratorOptions
			opts.Prefix = makePartialTokenKey(term)
			iter := tx.NewIterator(opts)

			// IDs a single query term already credited; one query term
			// may prefix-match several index terms for the same part.
			credited := make(map[core.ID]bool)

			for iter.Rewind(); iter.Valid(); iter.Next() {
				item := iter.Item()
				_, id, ok := parseTokenKey(item.Key())
				if !ok {
					continue
				}

				freq := 0
				if err := item.Value(func(val []byte) error {
					freq = parseTokenValue(val)
					return nil
				}); err != nil {
					iter.Close()
					return err
				}

				hit, exists := hits[id]
				if !exists {
					hit = &tokenHit{id: id}
					hits[id] = hit
				}
				if !credited[id] {
					hit.matched++
					credited[id] = true
				}
				hit.tfSum += freq
			}
			iter.Close()
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	ranked := make([]*tokenHit, 0, len(hits))
	for _, hit := range hits {
		ranked = append(ranked, hit)
	}
	slices.SortFunc(ranked, func(a, b *tokenHit) int {
		if a.matched != b.matched {
			return b.matched - a.matched
		}
		if a.tfSum != b.tfSum {
			return b.tfSum - a.tfSum
		}
		if a.id < b.id {
			return -1
		}
		if a.id > b.id {
			return 1
		}
		return 0
	})

	if offset >= len(ranked) {
		return nil, nil
	}
	ranked = ranked[offset:]
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	ids := make([]core.ID, len(ranked))
	for i, hit := range ranked {
		ids[i] = hit.id
	}
	return ids, nil
}

// RebuildIndex clears the token index and repopulates it from the stored
// parts in a single transaction, so readers never observe a half-built
// index. Returns the number of parts indexed.
func (r *PartRepository) RebuildIndex(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Collect stale posting keys first; deleting while iterating is
		// undefined.
		var staleKeys [][]byte
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(partTokenPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		for iter.Rewind(); iter.Valid(); iter.Next() {
			staleKeys = append(staleKeys, iter.Item().KeyCopy(nil))
		}
		iter.Close()

		for _, key := range staleKeys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}

		var parts []*core.Part
		opts = badger.DefaultIteratorOptions
		opts.Prefix = []byte(partRecordPrefix + ":")
		iter = tx.NewIterator(opts)
		for iter.Rewind(); iter.Valid(); iter.Next() {
			var part *core.Part
			err := iter.Item().Value(func(val []byte) error {
				var err error
				part, err = storage.UnmarshalPart(val)
				return err
			})
			if err != nil {
				iter.Close()
				return err
			}
			if part != nil {
				parts = append(parts, part)
			}
		}
		iter.Close()

		for _, part := range parts {
			if err := indexPart(tx, part); err != nil {
				return err
			}
			count++
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return 0, err
	}
	return count, nil
}
