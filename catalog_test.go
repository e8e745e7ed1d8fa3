package partdex

import (
	"context"
	"testing"

	"github.com/poiesic/partdex/core"
	"github.com/poiesic/partdex/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	catalog, err := Open("", WithInMemory())
	require.NoError(t, err)
	t.Cleanup(func() { catalog.Close() })
	return catalog
}

func seedSampleParts(t *testing.T, catalog *Catalog) {
	t.Helper()

	parts := []*core.Part{
		{Name: "10k resistor", PartNumber: "RC0805FR-0710KL", Manufacturer: "Yageo", ComponentType: "resistor", Value: "10.0kΩ", Package: "0805"},
		{Name: "4.7k resistor", PartNumber: "RC0805FR-074K7L", Manufacturer: "Yageo", ComponentType: "resistor", Value: "4.7kΩ", Package: "0805"},
		{Name: "100nF ceramic capacitor", PartNumber: "CC0805KRX7R9BB104", Manufacturer: "Yageo", ComponentType: "capacitor", Value: "100.0nF", Package: "0805"},
		{Name: "LM358 op-amp", PartNumber: "LM358P", Manufacturer: "Texas Instruments", ComponentType: "op-amp", Package: "DIP-8"},
	}
	_, err := catalog.AddParts(context.Background(), parts...)
	require.NoError(t, err)
}

func TestOpen_InMemory(t *testing.T) {
	catalog, err := Open("", WithInMemory())
	require.NoError(t, err)
	require.NoError(t, catalog.Close())
}

func TestOpen_ThresholdOption(t *testing.T) {
	catalog, err := Open("", WithInMemory(), WithThreshold(0.8))
	require.NoError(t, err)
	defer catalog.Close()

	assert.Equal(t, 0.8, catalog.Threshold())

	require.NoError(t, catalog.SetThreshold(0.4))
	assert.Equal(t, 0.4, catalog.Threshold())

	assert.Error(t, catalog.SetThreshold(1.5))
	assert.Equal(t, 0.4, catalog.Threshold())
}

func TestOpen_RejectsInvalidThreshold(t *testing.T) {
	_, err := Open("", WithInMemory(), WithThreshold(2.0))
	assert.Error(t, err)
}

func TestCatalog_ParseScenarios(t *testing.T) {
	catalog := openTestCatalog(t)

	t.Run("simple type search", func(t *testing.T) {
		parsed := catalog.Parse("find resistors")
		assert.Equal(t, core.IntentTypeSearch, parsed.Intent)
		assert.Equal(t, 0.6, parsed.Confidence)
		assert.Equal(t, "resistor", parsed.Entities[core.EntityComponentType].Text)
	})

	t.Run("value plus stock filter", func(t *testing.T) {
		parsed := catalog.Parse("10k resistors with low stock")
		assert.Equal(t, core.IntentStockFilter, parsed.Intent)
		assert.Equal(t, 1.0, parsed.Confidence)
		assert.Equal(t, "10.0kΩ", parsed.Entities[core.EntityResistance].Text)
		assert.Equal(t, "low", parsed.Entities[core.EntityStockStatus].Text)
	})

	t.Run("nonsense query", func(t *testing.T) {
		parsed := catalog.Parse("banana spaceship")
		assert.Equal(t, core.IntentTypeSearch, parsed.Intent)
		assert.Equal(t, 0.0, parsed.Confidence)
		assert.Empty(t, parsed.Entities)
	})
}

func TestCatalog_SearchParams(t *testing.T) {
	catalog := openTestCatalog(t)

	t.Run("structured", func(t *testing.T) {
		params := catalog.SearchParams("10k resistors with low stock")
		assert.False(t, params.UsedFallback)
		assert.Equal(t, "resistor", params.Filters[query.FilterComponentType])
		assert.Equal(t, "low", params.Filters[query.FilterStockStatus])
		assert.Equal(t, "10.0kΩ", params.Filters[query.FilterSearch])
	})

	t.Run("fallback", func(t *testing.T) {
		params := catalog.SearchParams("banana spaceship")
		assert.True(t, params.UsedFallback)
		assert.Equal(t, map[string]any{query.FilterSearch: "banana spaceship"}, params.Filters)
	})
}

func TestCatalog_WriteAndSearch(t *testing.T) {
	catalog := openTestCatalog(t)
	seedSampleParts(t, catalog)

	ctx := context.Background()

	count, err := catalog.PartRepository().CountParts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	parts, err := catalog.TokenSearch(ctx, "resistor", 0, 0)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	// Typo still finds the resistors through the fuzzy supplement
	results, err := catalog.HybridSearch(ctx, "Resistro", 10, 0, 0)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, result := range results {
		assert.Equal(t, "resistor", result.Part.ComponentType)
	}
}

func TestCatalog_ValidationOnWrite(t *testing.T) {
	catalog := openTestCatalog(t)

	_, err := catalog.AddParts(context.Background(), &core.Part{Name: ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrEmptyPartName)
}

func TestCatalog_RebuildIndex(t *testing.T) {
	catalog := openTestCatalog(t)
	seedSampleParts(t, catalog)

	ctx := context.Background()

	count, err := catalog.RebuildIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	parts, err := catalog.TokenSearch(ctx, "capacitor", 0, 0)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "100nF ceramic capacitor", parts[0].Name)
}

func TestCatalog_UpdateDelete(t *testing.T) {
	catalog := openTestCatalog(t)
	seedSampleParts(t, catalog)

	ctx := context.Background()

	parts, err := catalog.TokenSearch(ctx, "lm358", 0, 0)
	require.NoError(t, err)
	require.Len(t, parts, 1)

	part := parts[0]
	part.Notes = "dual op-amp, through hole"
	_, err = catalog.UpdateParts(ctx, part)
	require.NoError(t, err)

	got, err := catalog.GetPart(ctx, part.Id)
	require.NoError(t, err)
	assert.Equal(t, "dual op-amp, through hole", got.Notes)

	require.NoError(t, catalog.DeleteParts(ctx, part.Id))
	after, err := catalog.TokenSearch(ctx, "lm358", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, after)
}
