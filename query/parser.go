package query

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/partdex/core"
)

// Parser turns one free-text query into a ParsedQuery. Parsing is
// synchronous, stateless per call, and side-effect free; the only shared
// state is the Config, so a single Parser may be used from many goroutines.
type Parser struct {
	config *Config
	logger *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewParser creates a new parser bound to the given configuration.
func NewParser(config *Config, opts ...Option) (*Parser, error) {
	if config == nil {
		return nil, ErrConfigRequired
	}

	p := &Parser{
		config: config,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Config returns the configuration the parser was built with.
func (p *Parser) Config() *Config {
	return p.config
}

// Parse analyzes one query string. It never fails: empty or garbage input
// yields the default intent with no entities and confidence 0.0.
func (p *Parser) Parse(text string) *core.ParsedQuery {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return &core.ParsedQuery{
			Intent:     core.IntentTypeSearch,
			Entities:   core.Entities{},
			Confidence: 0.0,
			RawQuery:   text,
		}
	}

	intent, base := classifyIntent(trimmed)

	entities := make(core.Entities)
	best := make(map[core.EntityKind]float64)
	for _, ext := range extractEntities(trimmed) {
		if ext.confidence <= best[ext.kind] {
			continue
		}
		entities[ext.kind] = ext.value
		best[ext.kind] = ext.confidence
	}

	confidence := scoreConfidence(base, entities, trimmed)

	p.logger.Debug("parsed query",
		"query", trimmed,
		"intent", intent.String(),
		"entities", len(entities),
		"confidence", confidence,
	)

	return &core.ParsedQuery{
		Intent:     intent,
		Entities:   entities,
		Confidence: confidence,
		RawQuery:   text,
	}
}

// ParseBatch parses a sequence of queries independently on a worker pool,
// returning results in input order. Each parse is referentially pure given
// the same input, so no ordering between parses is observable.
func (p *Parser) ParseBatch(queries []string, poolSize int) ([]*core.ParsedQuery, error) {
	if len(queries) == 0 {
		return []*core.ParsedQuery{}, nil
	}
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	results := make([]*core.ParsedQuery, len(queries))
	var wg sync.WaitGroup

	for i, text := range queries {
		i, text := i, text
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			results[i] = p.Parse(text)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}

	wg.Wait()
	return results, nil
}
