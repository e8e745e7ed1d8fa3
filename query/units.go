package query

import (
	"strings"

	"github.com/poiesic/partdex/core"
)

// prefixSymbols maps accepted metric prefix spellings to the canonical
// symbolic form. Case matters: "m" is milli, "M" is mega.
var prefixSymbols = map[string]string{
	"p":   "p",
	"n":   "n",
	"u":   "μ",
	"µ":   "μ",
	"μ":   "μ",
	"m":   "m",
	"k":   "k",
	"K":   "k",
	"M":   "M",
	"meg": "M",
	"Meg": "M",
	"MEG": "M",
	"G":   "G",
}

// NormalizeValue converts a raw magnitude and unit-prefix pair into the
// canonical display form for the given quantity, e.g. ("10", "k",
// QuantityResistance) -> "10.0kΩ". The magnitude is preserved verbatim
// except that exactly one decimal point is guaranteed. Unrecognized
// prefixes are treated as the base unit. Never fails.
func NormalizeValue(magnitude, prefix string, quantity core.Quantity) string {
	mag := strings.TrimSpace(magnitude)
	if mag == "" {
		mag = "0"
	}
	if !strings.Contains(mag, ".") {
		mag += ".0"
	}

	symbol, ok := prefixSymbols[strings.TrimSpace(prefix)]
	if !ok {
		symbol = ""
	}

	return mag + symbol + quantity.Symbol()
}
