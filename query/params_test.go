package query

import (
	"testing"

	"github.com/poiesic/partdex/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFilters_Passthrough(t *testing.T) {
	entities := core.Entities{
		core.EntityComponentType: {Text: "resistor"},
		core.EntityStockStatus:   {Text: "low"},
		core.EntityManufacturer:  {Text: "Yageo"},
		core.EntityPackage:       {Text: "0805"},
		core.EntityLocation:      {Text: "a3"},
	}

	filters := MapFilters(entities)

	assert.Equal(t, map[string]any{
		FilterComponentType: "resistor",
		FilterStockStatus:   "low",
		FilterManufacturer:  "Yageo",
		FilterPackage:       "0805",
		FilterLocation:      "a3",
	}, filters)
}

func TestMapFilters_FirstQuantityWins(t *testing.T) {
	// When several unit values are present only one becomes the free-text
	// search term, in fixed quantity order.
	entities := core.Entities{
		core.EntityCapacitance: {Text: "100.0nF"},
		core.EntityVoltage:     {Text: "50.0V"},
	}

	filters := MapFilters(entities)
	assert.Equal(t, "100.0nF", filters[FilterSearch])

	entities[core.EntityResistance] = core.EntityValue{Text: "10.0kΩ"}
	filters = MapFilters(entities)
	assert.Equal(t, "10.0kΩ", filters[FilterSearch])
}

func TestMapFilters_Price(t *testing.T) {
	t.Run("bounds", func(t *testing.T) {
		filters := MapFilters(core.Entities{
			core.EntityMinPrice: {Text: "1.00", Amount: 1},
			core.EntityMaxPrice: {Text: "5.00", Amount: 5},
		})
		assert.Equal(t, 1.0, filters[FilterMinPrice])
		assert.Equal(t, 5.0, filters[FilterMaxPrice])
	})

	t.Run("exact expands to min=max", func(t *testing.T) {
		filters := MapFilters(core.Entities{
			core.EntityExactPrice: {Text: "0.25", Amount: 0.25},
		})
		assert.Equal(t, 0.25, filters[FilterMinPrice])
		assert.Equal(t, 0.25, filters[FilterMaxPrice])
	})
}

func TestSearchParams_Structured(t *testing.T) {
	parser := newTestParser(t)

	params := parser.SearchParams("find resistors")

	assert.False(t, params.UsedFallback)
	assert.Equal(t, core.IntentTypeSearch, params.Intent)
	assert.Greater(t, params.Confidence, 0.5)
	assert.Equal(t, map[string]any{FilterComponentType: "resistor"}, params.Filters)
}

func TestSearchParams_Fallback(t *testing.T) {
	parser := newTestParser(t)

	t.Run("garbage input", func(t *testing.T) {
		params := parser.SearchParams("banana spaceship")
		assert.True(t, params.UsedFallback)
		assert.Equal(t, map[string]any{FilterSearch: "banana spaceship"}, params.Filters)
	})

	t.Run("empty input", func(t *testing.T) {
		params := parser.SearchParams("")
		assert.True(t, params.UsedFallback)
		assert.Equal(t, 0.0, params.Confidence)
		assert.Equal(t, map[string]any{FilterSearch: ""}, params.Filters)
	})
}

func TestSearchParams_ThresholdGovernsFallback(t *testing.T) {
	config := NewConfig()
	parser, err := NewParser(config)
	require.NoError(t, err)

	// "find resistors" scores 0.6: structured under the default threshold,
	// fallback once the threshold is raised past it.
	params := parser.SearchParams("find resistors")
	assert.False(t, params.UsedFallback)

	require.NoError(t, config.SetThreshold(0.9))
	params = parser.SearchParams("find resistors")
	assert.True(t, params.UsedFallback)
	assert.Equal(t, map[string]any{FilterSearch: "find resistors"}, params.Filters)
}
