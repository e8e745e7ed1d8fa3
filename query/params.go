package query

import (
	"github.com/poiesic/partdex/core"
)

// Filter keys understood by the catalog query layer.
const (
	FilterComponentType = "component_type"
	FilterStockStatus   = "stock_status"
	FilterManufacturer  = "manufacturer"
	FilterPackage       = "package"
	FilterLocation      = "storage_location"
	FilterSearch        = "search"
	FilterMinPrice      = "min_price"
	FilterMaxPrice      = "max_price"
)

// SearchParams is the outcome of the full parse -> score -> map pipeline.
// When UsedFallback is true, Filters holds exactly one free-text search key
// equal to the original input.
type SearchParams struct {
	Filters      map[string]any
	Confidence   float64
	UsedFallback bool
	Intent       core.Intent
}

// quantityOrder fixes which quantity wins the free-text search slot when a
// query carries several unit values. Only the first present is used; the
// rest are dropped from the text search on purpose.
var quantityOrder = []core.EntityKind{
	core.EntityResistance,
	core.EntityCapacitance,
	core.EntityInductance,
	core.EntityCurrent,
	core.EntityFrequency,
	core.EntityVoltage,
}

// MapFilters converts extracted entities into backend-agnostic filter
// parameters. Pure function.
func MapFilters(entities core.Entities) map[string]any {
	filters := make(map[string]any, len(entities))

	if v, ok := entities[core.EntityComponentType]; ok {
		filters[FilterComponentType] = v.Text
	}
	if v, ok := entities[core.EntityStockStatus]; ok {
		filters[FilterStockStatus] = v.Text
	}
	if v, ok := entities[core.EntityManufacturer]; ok {
		filters[FilterManufacturer] = v.Text
	}
	if v, ok := entities[core.EntityPackage]; ok {
		filters[FilterPackage] = v.Text
	}
	if v, ok := entities[core.EntityLocation]; ok {
		filters[FilterLocation] = v.Text
	}

	for _, kind := range quantityOrder {
		if v, ok := entities[kind]; ok {
			filters[FilterSearch] = v.Text
			break
		}
	}

	if v, ok := entities[core.EntityExactPrice]; ok {
		filters[FilterMinPrice] = v.Amount
		filters[FilterMaxPrice] = v.Amount
	} else {
		if v, ok := entities[core.EntityMinPrice]; ok {
			filters[FilterMinPrice] = v.Amount
		}
		if v, ok := entities[core.EntityMaxPrice]; ok {
			filters[FilterMaxPrice] = v.Amount
		}
	}

	return filters
}

// SearchParams runs the full pipeline for one query: parse, score against
// the configured threshold, and either map the entities to structured
// filters or fall back to raw-text search.
func (p *Parser) SearchParams(text string) *SearchParams {
	parsed := p.Parse(text)

	if parsed.Confidence < p.config.Threshold() {
		return &SearchParams{
			Filters:      map[string]any{FilterSearch: parsed.RawQuery},
			Confidence:   parsed.Confidence,
			UsedFallback: true,
			Intent:       parsed.Intent,
		}
	}

	return &SearchParams{
		Filters:      MapFilters(parsed.Entities),
		Confidence:   parsed.Confidence,
		UsedFallback: false,
		Intent:       parsed.Intent,
	}
}
