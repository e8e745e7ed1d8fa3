package query

import (
	"strings"

	"github.com/poiesic/partdex/core"
)

// intentPattern holds the match vocabulary for one intent category.
// Phrases are matched as substrings of the folded query and score higher
// than single keywords, which must match whole tokens.
type intentPattern struct {
	intent   core.Intent
	phrases  []string
	keywords []string
}

const (
	phraseConfidence   = 0.8
	keywordConfidence  = 0.5
	extraMatchBonus    = 0.1
	maxMatchConfidence = 0.95
)

// intentPatterns is evaluated in order; IntentTypeSearch comes first so that
// exact ties resolve to the default category.
var intentPatterns = []intentPattern{
	{
		intent: core.IntentTypeSearch,
		phrases: []string{
			"what kind of", "all my", "everything i have",
		},
		keywords: []string{
			"find", "show", "search", "list", "get", "need", "looking",
			"component", "components", "part", "parts",
			"resistor", "resistors", "capacitor", "capacitors",
			"inductor", "inductors", "diode", "diodes", "led", "leds",
			"transistor", "transistors", "ic", "ics", "chip", "chips",
			"connector", "connectors", "crystal", "crystals",
			"switch", "switches", "fuse", "fuses", "relay", "relays",
		},
	},
	{
		intent: core.IntentStockFilter,
		phrases: []string{
			"low stock", "out of stock", "in stock", "running low",
			"needs reorder", "need to reorder", "none left", "stock is low",
		},
		keywords: []string{
			"stock", "reorder", "restock", "available", "unused",
			"overstocked", "critical", "depleted",
		},
	},
	{
		intent: core.IntentLocationFilter,
		phrases: []string{
			"stored in", "stored at", "located in", "located at", "kept in",
		},
		keywords: []string{
			"location", "bin", "shelf", "drawer", "cabinet", "box", "rack",
		},
	},
	{
		intent: core.IntentValueFilter,
		phrases: []string{
			"rated at", "with a value of",
		},
		keywords: []string{
			"ohm", "ohms", "farad", "farads", "henry", "henries",
			"volt", "volts", "amp", "amps", "ampere", "amperes",
			"hertz", "hz", "khz", "mhz", "ghz", "uf", "nf", "pf",
		},
	},
	{
		intent: core.IntentPriceFilter,
		phrases: []string{
			"less than", "cheaper than", "more expensive than", "priced at",
			"under $", "over $", "between $",
		},
		keywords: []string{
			"price", "priced", "cost", "costs", "cheap", "expensive", "budget",
		},
	},
}

// classifyIntent maps free text to the single best intent category and a
// base confidence. A confidence of 0.0 means unclassified, which callers
// must treat as a valid result, not an error.
func classifyIntent(text string) (core.Intent, float64) {
	folded := strings.ToLower(text)
	tokens := tokenSet(folded)

	best := core.IntentTypeSearch
	bestConfidence := 0.0
	bestConsumed := 0

	for _, pattern := range intentPatterns {
		confidence, consumed := scorePattern(pattern, folded, tokens)
		if confidence > bestConfidence ||
			(confidence == bestConfidence && consumed > bestConsumed) {
			best = pattern.intent
			bestConfidence = confidence
			bestConsumed = consumed
		}
	}

	return best, bestConfidence
}

// scorePattern scores one category. An exact phrase match dominates keyword
// matches; every additional match raises the confidence a little. The
// consumed count tracks how much of the query the matches cover and is used
// as a tie-break between categories.
func scorePattern(pattern intentPattern, folded string, tokens map[string]bool) (float64, int) {
	matches := 0
	consumed := 0
	sawPhrase := false

	for _, phrase := range pattern.phrases {
		if strings.Contains(folded, phrase) {
			matches++
			consumed += len(phrase)
			sawPhrase = true
		}
	}
	for _, keyword := range pattern.keywords {
		if tokens[keyword] {
			matches++
			consumed += len(keyword)
		}
	}

	if matches == 0 {
		return 0, 0
	}

	confidence := keywordConfidence
	if sawPhrase {
		confidence = phraseConfidence
	}
	confidence += float64(matches-1) * extraMatchBonus
	if confidence > maxMatchConfidence {
		confidence = maxMatchConfidence
	}
	return confidence, consumed
}

func tokenSet(folded string) map[string]bool {
	terms := core.Tokenize(folded)
	set := make(map[string]bool, len(terms))
	for _, term := range terms {
		set[term] = true
	}
	return set
}
