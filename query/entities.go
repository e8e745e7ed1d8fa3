package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/poiesic/partdex/core"
)

// extraction is one extracted entity with the specificity of its match.
type extraction struct {
	kind       core.EntityKind
	value      core.EntityValue
	confidence float64
}

// extractEntities runs every extractor independently against the query.
// Extractors do not short-circuit each other; a query may yield zero to
// many entities.
func extractEntities(text string) []extraction {
	folded := strings.ToLower(text)
	tokens := core.Tokenize(folded)

	var found []extraction

	componentType := ""
	if ext, ok := extractComponentType(tokens); ok {
		found = append(found, ext)
		componentType = ext.value.Text
	}
	if ext, ok := extractStockStatus(folded, tokens); ok {
		found = append(found, ext)
	}
	if ext, ok := extractLocation(text); ok {
		found = append(found, ext)
	}
	found = append(found, extractValues(text, componentType)...)
	if ext, ok := extractPackage(text); ok {
		found = append(found, ext)
	}
	if ext, ok := extractManufacturer(folded, tokens); ok {
		found = append(found, ext)
	}
	found = append(found, extractPrice(folded)...)

	return found
}

// --- component type ---

// componentTypes are the canonical type names matched at full confidence.
var componentTypes = map[string]bool{
	"resistor": true, "capacitor": true, "inductor": true, "diode": true,
	"led": true, "transistor": true, "ic": true, "crystal": true,
	"connector": true, "switch": true, "fuse": true, "relay": true,
	"potentiometer": true,
}

// componentAbbreviations maps common shorthand to the canonical type.
var componentAbbreviations = map[string]string{
	"res":            "resistor",
	"cap":            "capacitor",
	"caps":           "capacitor",
	"coil":           "inductor",
	"choke":          "inductor",
	"mosfet":         "transistor",
	"fet":            "transistor",
	"bjt":            "transistor",
	"chip":           "ic",
	"mcu":            "ic",
	"microcontroller": "ic",
	"opamp":          "ic",
	"xtal":           "crystal",
	"oscillator":     "crystal",
	"header":         "connector",
	"socket":         "connector",
	"pot":            "potentiometer",
	"trimmer":        "potentiometer",
}

// extractComponentType matches whole tokens only, so "res" in "resolution"
// is never a hit. Canonical names beat abbreviations.
func extractComponentType(tokens []string) (extraction, bool) {
	for _, token := range tokens {
		for _, form := range []string{token, singular(token)} {
			if componentTypes[form] {
				return extraction{
					kind:       core.EntityComponentType,
					value:      core.EntityValue{Text: form},
					confidence: 0.9,
				}, true
			}
			if canonical, ok := componentAbbreviations[form]; ok {
				return extraction{
					kind:       core.EntityComponentType,
					value:      core.EntityValue{Text: canonical},
					confidence: 0.7,
				}, true
			}
		}
	}
	return extraction{}, false
}

// singular strips a plural suffix: "switches" -> "switch", "resistors" -> "resistor".
func singular(token string) string {
	if strings.HasSuffix(token, "ches") {
		return strings.TrimSuffix(token, "es")
	}
	if strings.HasSuffix(token, "s") && len(token) > 2 {
		return strings.TrimSuffix(token, "s")
	}
	return token
}

// --- stock status ---

type stockPattern struct {
	match      string
	status     string
	confidence float64
}

// stockPhrases are checked against the folded query as substrings, most
// specific first.
var stockPhrases = []stockPattern{
	{"out of stock", "out", 0.9},
	{"none left", "out", 0.9},
	{"no stock", "out", 0.9},
	{"stock is low", "low", 0.9},
	{"low stock", "low", 0.9},
	{"running low", "low", 0.9},
	{"almost out", "low", 0.85},
	{"need to reorder", "needs-reorder", 0.9},
	{"needs reorder", "needs-reorder", 0.9},
	{"in stock", "in-stock", 0.9},
}

// stockKeywords are whole-token matches for the rest of the fixed vocabulary.
var stockKeywords = []stockPattern{
	{"reorder", "needs-reorder", 0.7},
	{"restock", "needs-reorder", 0.7},
	{"available", "available", 0.7},
	{"unused", "unused", 0.7},
	{"critical", "critical", 0.7},
	{"overstocked", "overstocked", 0.7},
	{"depleted", "out", 0.7},
	{"low", "low", 0.6},
}

func extractStockStatus(folded string, tokens []string) (extraction, bool) {
	for _, p := range stockPhrases {
		if strings.Contains(folded, p.match) {
			return extraction{
				kind:       core.EntityStockStatus,
				value:      core.EntityValue{Text: p.status},
				confidence: p.confidence,
			}, true
		}
	}
	set := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		set[token] = true
	}
	for _, p := range stockKeywords {
		if set[p.match] {
			return extraction{
				kind:       core.EntityStockStatus,
				value:      core.EntityValue{Text: p.status},
				confidence: p.confidence,
			}, true
		}
	}
	return extraction{}, false
}

// --- location ---

var (
	containerLocationRe   = regexp.MustCompile(`(?i)\b(?:bin|shelf|drawer|box|cabinet|rack)\s+([a-z0-9][a-z0-9_-]*)\b`)
	prepositionLocationRe = regexp.MustCompile(`(?i)\b(stored\s+in|located\s+in|located\s+at|kept\s+in|in|at|from)\s+(?:the\s+)?([a-z0-9][a-z0-9_-]*)\b`)
	digitRe               = regexp.MustCompile(`\d`)
)

// locationRejects are tokens a bare preposition must never capture.
var locationRejects = map[string]bool{
	"stock": true, "my": true, "our": true, "a": true, "an": true,
	"storage": true, "inventory": true, "total": true,
}

// extractLocation pulls an alphanumeric-with-separators code that follows a
// location preposition. The value is lowercased for matching; display case
// is not preserved. A bare "in"/"at"/"from" only counts when the code
// contains a digit, which keeps "in stock" from becoming a location.
func extractLocation(text string) (extraction, bool) {
	if m := containerLocationRe.FindStringSubmatch(text); m != nil {
		return extraction{
			kind:       core.EntityLocation,
			value:      core.EntityValue{Text: strings.ToLower(m[1])},
			confidence: 0.85,
		}, true
	}

	if m := prepositionLocationRe.FindStringSubmatch(text); m != nil {
		preposition := strings.ToLower(m[1])
		code := strings.ToLower(m[2])
		if locationRejects[code] {
			return extraction{}, false
		}
		strong := strings.ContainsAny(preposition, " \t") // multi-word forms like "stored in"
		if !strong && !digitRe.MatchString(code) {
			return extraction{}, false
		}
		confidence := 0.7
		if strong {
			confidence = 0.9
		}
		return extraction{
			kind:       core.EntityLocation,
			value:      core.EntityValue{Text: code},
			confidence: confidence,
		}, true
	}

	return extraction{}, false
}

// --- unit values ---

type valuePattern struct {
	quantity core.Quantity
	re       *regexp.Regexp
}

// valuePatterns match <number><metric prefix><unit> for each quantity kind.
// The prefix group is case-sensitive ("m" milli vs "M" mega); unit words are
// folded. Frequency folds its prefix separately since "mhz" always means
// megahertz in catalog queries.
var valuePatterns = []valuePattern{
	{core.QuantityResistance, regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*([Mm]eg|[pnuµμmkKMG])?\s*(?i:ohms?|Ω)`)},
	{core.QuantityCapacitance, regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*([pnuµμm])?\s*(?i:farads?|f)\b`)},
	{core.QuantityInductance, regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*([pnuµμm])?\s*(?i:henr(?:y|ys|ies)|h)\b`)},
	{core.QuantityCurrent, regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*([pnuµμm])?\s*(?i:amps?|amperes?|a)\b`)},
	{core.QuantityFrequency, regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*([kKmMgG])?\s*(?i:hertz|hz)\b`)},
	{core.QuantityVoltage, regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*([pnuµμmkK])?\s*(?i:volts?|v)\b`)},
}

// bareResistanceRe matches shorthand like "10k" or "4.7M" that only counts
// as a resistance when the query also mentions resistors.
var bareResistanceRe = regexp.MustCompile(`\b(\d+(?:\.\d+)?)([kKM]|[Mm]eg)\b`)

var frequencyPrefixFold = map[string]string{
	"k": "k", "K": "k", "m": "M", "M": "M", "g": "G", "G": "G",
}

func extractValues(text, componentType string) []extraction {
	// Blank out container locations ("bin 5a") so their codes cannot be
	// misread as single-letter unit values.
	if span := containerLocationRe.FindStringIndex(text); span != nil {
		text = text[:span[0]] + strings.Repeat(" ", span[1]-span[0]) + text[span[1]:]
	}

	var found []extraction
	matched := make(map[core.Quantity]bool)

	for _, p := range valuePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		prefix := m[2]
		if p.quantity == core.QuantityFrequency {
			prefix = frequencyPrefixFold[prefix]
		}
		found = append(found, extraction{
			kind:       p.quantity.EntityKind(),
			value:      core.EntityValue{Text: NormalizeValue(m[1], prefix, p.quantity)},
			confidence: 0.9,
		})
		matched[p.quantity] = true
	}

	if !matched[core.QuantityResistance] && componentType == "resistor" {
		if m := bareResistanceRe.FindStringSubmatch(text); m != nil {
			found = append(found, extraction{
				kind:       core.EntityResistance,
				value:      core.EntityValue{Text: NormalizeValue(m[1], m[2], core.QuantityResistance)},
				confidence: 0.7,
			})
		}
	}

	return found
}

// --- package / footprint ---

var (
	packageCodeRe   = regexp.MustCompile(`\b(0201|0402|0603|0805|1206|1210|2010|2512)\b`)
	packageFamilyRe = regexp.MustCompile(`(?i)\b(dip|pdip|soic|sop|tssop|msop|sot|qfn|qfp|tqfp|lqfp|bga|to)-?(\d{1,4})?\b`)
)

func extractPackage(text string) (extraction, bool) {
	if m := packageCodeRe.FindStringSubmatch(text); m != nil {
		return extraction{
			kind:       core.EntityPackage,
			value:      core.EntityValue{Text: m[1]},
			confidence: 0.9,
		}, true
	}

	if m := packageFamilyRe.FindStringSubmatch(text); m != nil {
		family := strings.ToUpper(m[1])
		pins := m[2]
		// "to" is an everyday word; only TO-92, TO-220 etc. count.
		if family == "TO" && pins == "" {
			return extraction{}, false
		}
		canonical := family
		if pins != "" {
			canonical += "-" + pins
		}
		return extraction{
			kind:       core.EntityPackage,
			value:      core.EntityValue{Text: canonical},
			confidence: 0.8,
		}, true
	}

	return extraction{}, false
}

// --- manufacturer ---

// manufacturerPhrases match multi-word names against the folded query.
var manufacturerPhrases = []struct {
	alias     string
	canonical string
}{
	{"texas instruments", "Texas Instruments"},
	{"analog devices", "Analog Devices"},
	{"on semiconductor", "ON Semiconductor"},
	{"on semi", "ON Semiconductor"},
	{"maxim integrated", "Maxim Integrated"},
	{"diodes incorporated", "Diodes Incorporated"},
}

// manufacturerTokens match whole tokens; abbreviations score lower than
// the canonical single-word names.
var manufacturerTokens = map[string]string{
	"ti":                  "Texas Instruments",
	"adi":                 "Analog Devices",
	"st":                  "STMicroelectronics",
	"stm":                 "STMicroelectronics",
	"stmicro":             "STMicroelectronics",
	"stmicroelectronics":  "STMicroelectronics",
	"onsemi":              "ON Semiconductor",
	"maxim":               "Maxim Integrated",
	"nxp":                 "NXP",
	"microchip":           "Microchip",
	"atmel":               "Atmel",
	"infineon":            "Infineon",
	"vishay":              "Vishay",
	"murata":              "Murata",
	"tdk":                 "TDK",
	"yageo":               "Yageo",
	"kemet":               "KEMET",
	"nichicon":            "Nichicon",
	"panasonic":           "Panasonic",
	"bourns":              "Bourns",
	"rohm":                "ROHM",
	"toshiba":             "Toshiba",
	"fairchild":           "Fairchild",
}

func extractManufacturer(folded string, tokens []string) (extraction, bool) {
	for _, p := range manufacturerPhrases {
		if strings.Contains(folded, p.alias) {
			return extraction{
				kind:       core.EntityManufacturer,
				value:      core.EntityValue{Text: p.canonical},
				confidence: 0.9,
			}, true
		}
	}
	for _, token := range tokens {
		canonical, ok := manufacturerTokens[token]
		if !ok {
			continue
		}
		confidence := 0.7
		if token == strings.ToLower(canonical) {
			confidence = 0.9
		}
		return extraction{
			kind:       core.EntityManufacturer,
			value:      core.EntityValue{Text: canonical},
			confidence: confidence,
		}, true
	}
	return extraction{}, false
}

// --- price ---

var (
	priceBetweenRe = regexp.MustCompile(`\bbetween\s+\$?(\d+(?:\.\d+)?)\s+and\s+\$?(\d+(?:\.\d+)?)`)
	priceMaxRe     = regexp.MustCompile(`\b(?:under|below|less\s+than|cheaper\s+than|at\s+most|up\s+to)\s+\$?(\d+(?:\.\d+)?)`)
	priceMinRe     = regexp.MustCompile(`\b(?:over|above|more\s+than|at\s+least)\s+\$?(\d+(?:\.\d+)?)`)
	priceExactRe   = regexp.MustCompile(`\b(?:exactly|costing|priced\s+at|for)\s+\$(\d+(?:\.\d+)?)`)
)

// cheapCeiling is the fixed default ceiling applied for qualitative terms
// like "cheap".
const cheapCeiling = 1.00

var cheapTerms = []string{"cheap", "inexpensive", "budget"}

func extractPrice(folded string) []extraction {
	if m := priceBetweenRe.FindStringSubmatch(folded); m != nil {
		return []extraction{
			priceExtraction(core.EntityMinPrice, m[1], 0.9),
			priceExtraction(core.EntityMaxPrice, m[2], 0.9),
		}
	}

	var found []extraction
	if m := priceMaxRe.FindStringSubmatch(folded); m != nil {
		found = append(found, priceExtraction(core.EntityMaxPrice, m[1], 0.85))
	}
	if m := priceMinRe.FindStringSubmatch(folded); m != nil {
		found = append(found, priceExtraction(core.EntityMinPrice, m[1], 0.85))
	}
	if len(found) > 0 {
		return found
	}

	if m := priceExactRe.FindStringSubmatch(folded); m != nil {
		return []extraction{priceExtraction(core.EntityExactPrice, m[1], 0.85)}
	}

	for _, term := range cheapTerms {
		if containsToken(folded, term) {
			amount := cheapCeiling
			return []extraction{{
				kind: core.EntityMaxPrice,
				value: core.EntityValue{
					Text:   strconv.FormatFloat(amount, 'f', 2, 64),
					Amount: amount,
				},
				confidence: 0.6,
			}}
		}
	}

	return nil
}

func priceExtraction(kind core.EntityKind, raw string, confidence float64) extraction {
	amount, _ := strconv.ParseFloat(raw, 64)
	return extraction{
		kind: kind,
		value: core.EntityValue{
			Text:   strconv.FormatFloat(amount, 'f', 2, 64),
			Amount: amount,
		},
		confidence: confidence,
	}
}

func containsToken(folded, want string) bool {
	for _, token := range core.Tokenize(folded) {
		if token == want {
			return true
		}
	}
	return false
}
