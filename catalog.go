// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package partdex

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/partdex/core"
	"github.com/poiesic/partdex/query"
	"github.com/poiesic/partdex/search"
	"github.com/poiesic/partdex/storage"
	"github.com/poiesic/partdex/storage/badger"
)

// Catalog ties the query parser, the part store, and the hybrid searcher
// together behind one handle.
type Catalog struct {
	backend  *badger.Backend
	parts    storage.PartRepository
	searcher *search.Searcher
	parser   *query.Parser
	config   *query.Config
	logger   *slog.Logger
}

// CatalogOption configures a Catalog.
type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	inMemory  bool
	threshold float64
	logger    *slog.Logger
}

// WithInMemory opens the catalog on an in-memory store. Useful for tests
// and scratch sessions; nothing is persisted.
func WithInMemory() CatalogOption {
	return func(o *catalogOptions) {
		o.inMemory = true
	}
}

// WithThreshold sets the initial confidence threshold for structured
// search. Default is query.DefaultThreshold.
func WithThreshold(threshold float64) CatalogOption {
	return func(o *catalogOptions) {
		o.threshold = threshold
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) CatalogOption {
	return func(o *catalogOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Open opens a part catalog at filePath, creating it if needed.
func Open(filePath string, opts ...CatalogOption) (*Catalog, error) {
	// Apply options
	options := &catalogOptions{
		threshold: query.DefaultThreshold,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create part repository
	parts, err := badger.NewPartRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create searcher
	searcher, err := search.NewSearcher(parts, search.WithLogger(options.logger))
	if err != nil {
		parts.Close()
		backend.Close()
		return nil, err
	}

	// Create parser with its scoring config
	config := query.NewConfig()
	if err := config.SetThreshold(options.threshold); err != nil {
		parts.Close()
		backend.Close()
		return nil, err
	}
	parser, err := query.NewParser(config, query.WithLogger(options.logger))
	if err != nil {
		parts.Close()
		backend.Close()
		return nil, err
	}

	return &Catalog{
		backend:  backend,
		parts:    parts,
		searcher: searcher,
		parser:   parser,
		config:   config,
		logger:   options.logger,
	}, nil
}

// Close releases the catalog's resources.
func (c *Catalog) Close() error {
	if err := c.parts.Close(); err != nil {
		c.logger.Error("error closing part repository", "err", err)
		return err
	}
	if err := c.backend.Close(); err != nil {
		c.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Parse runs query understanding over a raw query string.
func (c *Catalog) Parse(text string) *core.ParsedQuery {
	return c.parser.Parse(text)
}

// SearchParams parses a raw query and maps it to backend search
// parameters, falling back to a plain text search when confidence is
// below the threshold.
func (c *Catalog) SearchParams(text string) *query.SearchParams {
	return c.parser.SearchParams(text)
}

// Threshold returns the current confidence threshold.
func (c *Catalog) Threshold() float64 {
	return c.config.Threshold()
}

// SetThreshold adjusts the confidence threshold at runtime.
func (c *Catalog) SetThreshold(value float64) error {
	return c.config.SetThreshold(value)
}

// TokenSearch runs the token index stage only.
func (c *Catalog) TokenSearch(ctx context.Context, queryText string, limit, offset int) ([]*core.Part, error) {
	return c.searcher.TokenSearch(ctx, queryText, limit, offset)
}

// HybridSearch runs token search with the fuzzy supplement.
// fuzzyFloor <= 0 uses search.DefaultFuzzyFloor.
func (c *Catalog) HybridSearch(ctx context.Context, queryText string, limit, offset, fuzzyFloor int) ([]*search.Result, error) {
	return c.searcher.HybridSearch(ctx, queryText, limit, offset, fuzzyFloor)
}

// RebuildIndex rebuilds the token index from the stored parts.
func (c *Catalog) RebuildIndex(ctx context.Context) (int, error) {
	return c.parts.RebuildIndex(ctx)
}

// AddParts validates and stores parts, indexing them in the same
// transaction.
func (c *Catalog) AddParts(ctx context.Context, parts ...*core.Part) ([]*core.Part, error) {
	for _, part := range parts {
		if err := core.ValidatePart(part); err != nil {
			return nil, fmt.Errorf("%w: %s", err, part.Name)
		}
	}
	return c.parts.AddParts(ctx, parts...)
}

// UpdateParts validates and updates existing parts.
func (c *Catalog) UpdateParts(ctx context.Context, parts ...*core.Part) ([]*core.Part, error) {
	for _, part := range parts {
		if err := core.ValidatePart(part); err != nil {
			return nil, fmt.Errorf("%w: %s", err, part.Name)
		}
	}
	return c.parts.UpdateParts(ctx, parts...)
}

// DeleteParts removes parts and their index entries.
func (c *Catalog) DeleteParts(ctx context.Context, ids ...core.ID) error {
	return c.parts.DeleteParts(ctx, ids...)
}

// GetPart retrieves a part by ID.
func (c *Catalog) GetPart(ctx context.Context, id core.ID) (*core.Part, error) {
	return c.parts.GetPart(ctx, id)
}

// GetParts retrieves multiple parts by ID, skipping missing ones.
func (c *Catalog) GetParts(ctx context.Context, ids ...core.ID) ([]*core.Part, error) {
	return c.parts.GetParts(ctx, ids...)
}

// ListParts lists up to limit parts ordered by ID. limit <= 0 lists all.
func (c *Catalog) ListParts(ctx context.Context, limit int) ([]*core.Part, error) {
	return c.parts.ListParts(ctx, limit)
}

// PartRepository exposes the underlying repository for advanced callers.
func (c *Catalog) PartRepository() storage.PartRepository {
	return c.parts
}

// NewSearcher creates a searcher with custom options over this catalog's
// parts.
func (c *Catalog) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(c.parts, opts...)
}
