package search

import (
	"context"
	"log/slog"
	"slices"

	"github.com/poiesic/partdex/core"
	"github.com/poiesic/partdex/storage"
)

const (
	// DefaultFuzzyFloor is the token-result count below which the fuzzy
	// supplement engages.
	DefaultFuzzyFloor = 5

	defaultCandidateCap  = 500
	defaultMinSimilarity = 0.55
)

// Result is a single search hit. Token-matched hits carry a score of 1.0;
// fuzzy-only hits carry their similarity in [0, 1).
type Result struct {
	Part  *core.Part
	Score float64
	Fuzzy bool
}

// Searcher provides hybrid token and fuzzy search over part records.
type Searcher struct {
	parts         storage.PartRepository
	logger        *slog.Logger
	candidateCap  int
	minSimilarity float64
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithCandidateCap bounds how many parts the fuzzy stage will scan.
// Default is 500.
func WithCandidateCap(cap int) Option {
	return func(s *Searcher) error {
		if cap > 0 {
			s.candidateCap = cap
		}
		return nil
	}
}

// WithMinSimilarity sets the similarity floor for fuzzy hits.
// Default is 0.55.
func WithMinSimilarity(floor float64) Option {
	return func(s *Searcher) error {
		s.minSimilarity = floor
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(parts storage.PartRepository, opts ...Option) (*Searcher, error) {
	if parts == nil {
		return nil, ErrPartRepositoryRequired
	}

	s := &Searcher{
		parts:         parts,
		logger:        slog.Default(),
		candidateCap:  defaultCandidateCap,
		minSimilarity: defaultMinSimilarity,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// TokenSearch runs the token index stage only and resolves the ranked IDs
// to part records.
func (s *Searcher) TokenSearch(ctx context.Context, query string, limit, offset int) ([]*core.Part, error) {
	ids, err := s.parts.TokenSearch(ctx, query, limit, offset)
	if err != nil {
		s.logger.Error("token search failed", "query", query, "err", err)
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return s.parts.GetParts(ctx, ids...)
}

// HybridSearch searches the token index and, when it returns fewer than
// fuzzyFloor results, supplements them with fuzzy matches. fuzzyFloor <= 0
// uses DefaultFuzzyFloor. Token results keep their rank; fuzzy-only results
// follow ordered by similarity. limit and offset apply to the fused list.
func (s *Searcher) HybridSearch(ctx context.Context, query string, limit, offset, fuzzyFloor int) ([]*Result, error) {
	return s.HybridSearchWithMonitor(ctx, query, limit, offset, fuzzyFloor, nil)
}

// HybridSearchWithMonitor is HybridSearch with observation hooks.
// The monitor receives callbacks at each stage of the search process.
func (s *Searcher) HybridSearchWithMonitor(ctx context.Context, query string, limit, offset, fuzzyFloor int, monitor SearchMonitor) ([]*Result, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if fuzzyFloor <= 0 {
		fuzzyFloor = DefaultFuzzyFloor
	}

	monitor.Start(query)

	// 1. Token stage
	tokenIDs, err := s.parts.TokenSearch(ctx, query, 0, 0)
	if err != nil {
		s.logger.Error("token search failed", "query", query, "err", err)
		return nil, err
	}
	monitor.AfterTokenSearch(tokenIDs)

	tokenSet := make(map[core.ID]bool, len(tokenIDs))
	for _, id := range tokenIDs {
		tokenSet[id] = true
	}

	results := make([]*Result, 0, len(tokenIDs))
	if len(tokenIDs) > 0 {
		tokenParts, err := s.parts.GetParts(ctx, tokenIDs...)
		if err != nil {
			s.logger.Error("error retrieving token matches", "err", err)
			return nil, err
		}
		for _, part := range tokenParts {
			results = append(results, &Result{Part: part, Score: 1.0})
		}
	}

	// 2. Fuzzy supplement, only when the token stage came up short
	if len(tokenIDs) < fuzzyFloor {
		fuzzy, err := s.fuzzyScan(ctx, query, tokenSet, monitor)
		if err != nil {
			return nil, err
		}
		results = append(results, fuzzy...)
	}

	// 3. Paginate the fused list
	if offset >= len(results) {
		results = nil
	} else {
		results = results[offset:]
		if limit > 0 && len(results) > limit {
			results = results[:limit]
		}
	}

	monitor.Finish(results)
	return results, nil
}

// fuzzyScan scores catalog candidates against the query and returns those
// above the similarity floor, best first. Parts already matched by the
// token stage are skipped.
func (s *Searcher) fuzzyScan(ctx context.Context, query string, tokenSet map[core.ID]bool, monitor SearchMonitor) ([]*Result, error) {
	queryTerms := core.Tokenize(query)
	if len(queryTerms) == 0 {
		return nil, nil
	}

	candidates, err := s.parts.ListParts(ctx, s.candidateCap)
	if err != nil {
		s.logger.Error("error listing fuzzy candidates", "err", err)
		return nil, err
	}

	var hits []*Result
	for _, part := range candidates {
		if tokenSet[part.Id] {
			continue
		}
		score := querySimilarity(queryTerms, core.Tokenize(part.SearchText()))
		if score < s.minSimilarity {
			continue
		}
		monitor.FuzzyHit(part, score)
		hits = append(hits, &Result{Part: part, Score: score, Fuzzy: true})
	}

	slices.SortFunc(hits, func(a, b *Result) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		if a.Part.Id < b.Part.Id {
			return -1
		}
		if a.Part.Id > b.Part.Id {
			return 1
		}
		return 0
	})

	return hits, nil
}
