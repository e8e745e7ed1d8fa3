package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or supplied by the catalog.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs, so a part keeps its
// identity across index rebuilds.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Intent is the coarse-grained purpose a free-text query expresses.
type Intent int

const (
	// IntentTypeSearch searches by component type. It is the default when a
	// query matches nothing more specific.
	IntentTypeSearch Intent = iota + 1
	// IntentStockFilter filters by stock status.
	IntentStockFilter
	// IntentLocationFilter filters by storage location.
	IntentLocationFilter
	// IntentValueFilter filters by a component value (resistance, capacitance, ...).
	IntentValueFilter
	// IntentPriceFilter filters by unit price.
	IntentPriceFilter
)

// String returns the wire name of the intent.
func (i Intent) String() string {
	switch i {
	case IntentTypeSearch:
		return "type-search"
	case IntentStockFilter:
		return "stock-filter"
	case IntentLocationFilter:
		return "location-filter"
	case IntentValueFilter:
		return "value-filter"
	case IntentPriceFilter:
		return "price-filter"
	}
	return "unknown"
}

// EntityKind identifies a structured fact extracted from free text.
type EntityKind int

const (
	EntityComponentType EntityKind = iota + 1
	EntityStockStatus
	EntityLocation
	EntityResistance
	EntityCapacitance
	EntityInductance
	EntityCurrent
	EntityFrequency
	EntityVoltage
	EntityPackage
	EntityManufacturer
	EntityMinPrice
	EntityMaxPrice
	EntityExactPrice
)

// String returns the wire name of the entity kind.
func (k EntityKind) String() string {
	switch k {
	case EntityComponentType:
		return "component_type"
	case EntityStockStatus:
		return "stock_status"
	case EntityLocation:
		return "location"
	case EntityResistance:
		return "resistance"
	case EntityCapacitance:
		return "capacitance"
	case EntityInductance:
		return "inductance"
	case EntityCurrent:
		return "current"
	case EntityFrequency:
		return "frequency"
	case EntityVoltage:
		return "voltage"
	case EntityPackage:
		return "package"
	case EntityManufacturer:
		return "manufacturer"
	case EntityMinPrice:
		return "min_price"
	case EntityMaxPrice:
		return "max_price"
	case EntityExactPrice:
		return "exact_price"
	}
	return "unknown"
}

// Quantity is one of the physical quantity kinds a component value can carry.
type Quantity int

const (
	QuantityResistance Quantity = iota + 1
	QuantityCapacitance
	QuantityInductance
	QuantityCurrent
	QuantityFrequency
	QuantityVoltage
)

// Symbol returns the canonical unit symbol for the quantity.
func (q Quantity) Symbol() string {
	switch q {
	case QuantityResistance:
		return "Ω"
	case QuantityCapacitance:
		return "F"
	case QuantityInductance:
		return "H"
	case QuantityCurrent:
		return "A"
	case QuantityFrequency:
		return "Hz"
	case QuantityVoltage:
		return "V"
	}
	return ""
}

// EntityKind returns the entity kind that carries a value of this quantity.
func (q Quantity) EntityKind() EntityKind {
	switch q {
	case QuantityResistance:
		return EntityResistance
	case QuantityCapacitance:
		return EntityCapacitance
	case QuantityInductance:
		return EntityInductance
	case QuantityCurrent:
		return EntityCurrent
	case QuantityFrequency:
		return EntityFrequency
	case QuantityVoltage:
		return EntityVoltage
	}
	return 0
}

// EntityValue is the extracted value of one entity. Text carries the canonical
// textual form; Amount is populated for the price kinds only.
type EntityValue struct {
	Text   string
	Amount float64
}

// Entities maps entity kinds to their extracted values. Keys are unique and
// insertion order is irrelevant.
type Entities map[EntityKind]EntityValue

// ParsedQuery is the immutable result of parsing one query string.
// It is constructed once per query and never mutated afterwards.
type ParsedQuery struct {
	Intent     Intent
	Entities   Entities
	Confidence float64 // in [0.0, 1.0]
	RawQuery   string  // original input, retained for fallback and logging
}

// Part is the searchable projection of a catalog entry.
type Part struct {
	Id            ID
	Name          string
	PartNumber    string
	Manufacturer  string
	ComponentType string
	Value         string
	Package       string
	Notes         string
	Specs         map[string]string // structured specification key/value pairs
	InsertedAt    time.Time
	UpdatedAt     time.Time
}

// SearchText renders the part as one flat text blob for indexing and fuzzy
// matching. Specification pairs are appended with punctuation replaced so
// every term is tokenizable.
func (p *Part) SearchText() string {
	fields := make([]string, 0, 7+2*len(p.Specs))
	for _, field := range []string{
		p.Name, p.PartNumber, p.Manufacturer, p.ComponentType,
		p.Value, p.Package, p.Notes,
	} {
		if field != "" {
			fields = append(fields, field)
		}
	}
	for _, key := range sortedSpecKeys(p.Specs) {
		fields = append(fields, stripPunctuation(key), stripPunctuation(p.Specs[key]))
	}
	return joinFields(fields)
}
