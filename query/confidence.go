package query

import (
	"math"
	"strings"
	"sync"

	"github.com/poiesic/partdex/core"
)

const (
	// DefaultThreshold separates "trust the structured parse" from
	// "fall back to raw-text search".
	DefaultThreshold = 0.5

	// multiEntityBoost is added for each entity beyond the first.
	multiEntityBoost = 0.1

	// ambiguityPenalty is subtracted when the query is judged ambiguous.
	ambiguityPenalty = 0.15

	// ambiguityBaseFloor is the base confidence below which a classification
	// alone counts as ambiguous.
	ambiguityBaseFloor = 0.3
)

// fillerPhrases are generic requests that say nothing about what to filter.
var fillerPhrases = []string{
	"show me", "what do you have", "list everything", "anything",
}

// Config carries the process-wide parsing configuration. The confidence
// threshold is expected to be set once at startup or through an explicit
// administrative call, not per request; it is safe for concurrent use.
type Config struct {
	mu        sync.RWMutex
	threshold float64
}

// NewConfig creates a Config with the default confidence threshold.
func NewConfig() *Config {
	return &Config{threshold: DefaultThreshold}
}

// Threshold returns the current confidence threshold.
func (c *Config) Threshold() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.threshold
}

// SetThreshold replaces the confidence threshold. A value outside
// [0.0, 1.0] is rejected and the previous threshold stays in effect.
func (c *Config) SetThreshold(value float64) error {
	if value < 0.0 || value > 1.0 {
		return ErrThresholdOutOfRange
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.threshold = value
	return nil
}

// scoreConfidence adjusts the classifier's base confidence: queries pinning
// down several independent facets are boosted, ambiguous queries are
// penalized. The result is clamped to [0.0, 1.0] and rounded to two
// decimal places.
func scoreConfidence(base float64, entities core.Entities, text string) float64 {
	confidence := base

	if len(entities) > 1 {
		confidence += float64(len(entities)-1) * multiEntityBoost
	}

	if isAmbiguous(base, entities, text) {
		confidence -= ambiguityPenalty
	}

	if confidence < 0.0 {
		confidence = 0.0
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return math.Round(confidence*100) / 100
}

// isAmbiguous reports whether the query gives too little to filter on:
// nothing was extracted, the classifier barely matched, or the query is a
// generic filler request.
func isAmbiguous(base float64, entities core.Entities, text string) bool {
	if len(entities) == 0 {
		return true
	}
	if base < ambiguityBaseFloor {
		return true
	}
	folded := strings.ToLower(text)
	for _, phrase := range fillerPhrases {
		if strings.Contains(folded, phrase) {
			return true
		}
	}
	return false
}
