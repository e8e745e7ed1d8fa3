package query

import (
	"testing"

	"github.com/poiesic/partdex/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findEntity(exts []extraction, kind core.EntityKind) (extraction, bool) {
	for _, ext := range exts {
		if ext.kind == kind {
			return ext, true
		}
	}
	return extraction{}, false
}

func TestExtractComponentType(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"find resistors", "resistor"},
		{"a single resistor", "resistor"},
		{"caps in drawer 3", "capacitor"},
		{"show ceramic cap", "capacitor"},
		{"res with low stock", "resistor"},
		{"mosfet drivers", "transistor"},
		{"tantalum capacitors", "capacitor"},
		{"switches", "switch"},
		{"leds", "led"},
		{"a pot for volume", "potentiometer"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			exts := extractEntities(tt.query)
			ext, ok := findEntity(exts, core.EntityComponentType)
			require.True(t, ok, "no component type extracted from %q", tt.query)
			assert.Equal(t, tt.want, ext.value.Text)
		})
	}
}

func TestExtractComponentType_WholeTokensOnly(t *testing.T) {
	// "res" inside "resolution" must not match.
	exts := extractEntities("high resolution display")
	_, ok := findEntity(exts, core.EntityComponentType)
	assert.False(t, ok)
}

func TestExtractComponentType_AbbreviationScoresLower(t *testing.T) {
	full := extractEntities("resistor")
	abbrev := extractEntities("res")

	fullExt, ok := findEntity(full, core.EntityComponentType)
	require.True(t, ok)
	abbrevExt, ok := findEntity(abbrev, core.EntityComponentType)
	require.True(t, ok)

	assert.Greater(t, fullExt.confidence, abbrevExt.confidence)
}

func TestExtractStockStatus(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"resistors with low stock", "low"},
		{"what is out of stock", "out"},
		{"capacitors running low", "low"},
		{"parts in stock", "in-stock"},
		{"available op amps", "available"},
		{"things i need to reorder", "needs-reorder"},
		{"critical parts", "critical"},
		{"overstocked resistors", "overstocked"},
		{"unused connectors", "unused"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			exts := extractEntities(tt.query)
			ext, ok := findEntity(exts, core.EntityStockStatus)
			require.True(t, ok, "no stock status extracted from %q", tt.query)
			assert.Equal(t, tt.want, ext.value.Text)
		})
	}
}

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"resistors stored in A3", "a3"},
		{"caps in B4", "b4"},
		{"parts from C-12", "c-12"},
		{"stored in the workbench", "workbench"},
		{"diodes in bin 5a", "5a"},
		{"shelf B2", "b2"},
		{"drawer 12", "12"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			exts := extractEntities(tt.query)
			ext, ok := findEntity(exts, core.EntityLocation)
			require.True(t, ok, "no location extracted from %q", tt.query)
			assert.Equal(t, tt.want, ext.value.Text)
		})
	}
}

func TestExtractLocation_RejectsPlainWords(t *testing.T) {
	for _, query := range []string{
		"parts in stock",
		"resistors in inventory",
		"something at random",
	} {
		exts := extractEntities(query)
		_, ok := findEntity(exts, core.EntityLocation)
		assert.False(t, ok, "unexpected location from %q", query)
	}
}

func TestExtractValues(t *testing.T) {
	tests := []struct {
		query string
		kind  core.EntityKind
		want  string
	}{
		{"220 ohm resistors", core.EntityResistance, "220.0Ω"},
		{"4.7k ohm", core.EntityResistance, "4.7kΩ"},
		{"1M ohm", core.EntityResistance, "1.0MΩ"},
		{"10meg ohm", core.EntityResistance, "10.0MΩ"},
		{"10k resistors", core.EntityResistance, "10.0kΩ"},
		{"100nF caps", core.EntityCapacitance, "100.0nF"},
		{"10uF electrolytic", core.EntityCapacitance, "10.0μF"},
		{"10μF electrolytic", core.EntityCapacitance, "10.0μF"},
		{"22 pF", core.EntityCapacitance, "22.0pF"},
		{"10mH inductors", core.EntityInductance, "10.0mH"},
		{"500mA fuse", core.EntityCurrent, "500.0mA"},
		{"2 amp fuse", core.EntityCurrent, "2.0A"},
		{"16MHz crystals", core.EntityFrequency, "16.0MHz"},
		{"16mhz crystals", core.EntityFrequency, "16.0MHz"},
		{"32 khz", core.EntityFrequency, "32.0kHz"},
		{"5V regulators", core.EntityVoltage, "5.0V"},
		{"3.3 volt parts", core.EntityVoltage, "3.3V"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			exts := extractEntities(tt.query)
			ext, ok := findEntity(exts, tt.kind)
			require.True(t, ok, "no %v extracted from %q", tt.kind, tt.query)
			assert.Equal(t, tt.want, ext.value.Text)
		})
	}
}

func TestExtractValues_BareShorthandNeedsResistorContext(t *testing.T) {
	// "10k" alone could be anything; without a resistor mention it stays out.
	exts := extractEntities("10k somethings")
	_, ok := findEntity(exts, core.EntityResistance)
	assert.False(t, ok)
}

func TestExtractValues_MultipleQuantities(t *testing.T) {
	exts := extractEntities("5V 2 amp regulators")

	voltage, ok := findEntity(exts, core.EntityVoltage)
	require.True(t, ok)
	assert.Equal(t, "5.0V", voltage.value.Text)

	current, ok := findEntity(exts, core.EntityCurrent)
	require.True(t, ok)
	assert.Equal(t, "2.0A", current.value.Text)
}

func TestExtractPackage(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"0805 resistors", "0805"},
		{"0603 caps", "0603"},
		{"DIP-8 sockets", "DIP-8"},
		{"dip8 sockets", "DIP-8"},
		{"SOIC-14", "SOIC-14"},
		{"qfn packages", "QFN"},
		{"TO-220 regulators", "TO-220"},
		{"sot-23 transistors", "SOT-23"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			exts := extractEntities(tt.query)
			ext, ok := findEntity(exts, core.EntityPackage)
			require.True(t, ok, "no package extracted from %q", tt.query)
			assert.Equal(t, tt.want, ext.value.Text)
		})
	}
}

func TestExtractPackage_BareToIsNotAPackage(t *testing.T) {
	exts := extractEntities("things to sort")
	_, ok := findEntity(exts, core.EntityPackage)
	assert.False(t, ok)
}

func TestExtractManufacturer(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"TI op amps", "Texas Instruments"},
		{"texas instruments chips", "Texas Instruments"},
		{"st microcontrollers", "STMicroelectronics"},
		{"parts by vishay", "Vishay"},
		{"murata caps", "Murata"},
		{"on semiconductor diodes", "ON Semiconductor"},
		{"yageo resistors", "Yageo"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			exts := extractEntities(tt.query)
			ext, ok := findEntity(exts, core.EntityManufacturer)
			require.True(t, ok, "no manufacturer extracted from %q", tt.query)
			assert.Equal(t, tt.want, ext.value.Text)
		})
	}
}

func TestExtractManufacturer_AbbreviationScoresLower(t *testing.T) {
	abbrev := extractEntities("TI parts")
	full := extractEntities("texas instruments parts")

	abbrevExt, ok := findEntity(abbrev, core.EntityManufacturer)
	require.True(t, ok)
	fullExt, ok := findEntity(full, core.EntityManufacturer)
	require.True(t, ok)

	assert.Greater(t, fullExt.confidence, abbrevExt.confidence)
}

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		kind    core.EntityKind
		amount  float64
	}{
		{"under", "resistors under $5", core.EntityMaxPrice, 5},
		{"less than", "caps less than $2.50", core.EntityMaxPrice, 2.5},
		{"over", "parts over $10", core.EntityMinPrice, 10},
		{"more than", "ics more than $1", core.EntityMinPrice, 1},
		{"exact", "connectors for $0.25", core.EntityExactPrice, 0.25},
		{"cheap default ceiling", "cheap resistors", core.EntityMaxPrice, 1.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exts := extractEntities(tt.query)
			ext, ok := findEntity(exts, tt.kind)
			require.True(t, ok, "no %v extracted from %q", tt.kind, tt.query)
			assert.InDelta(t, tt.amount, ext.value.Amount, 1e-9)
		})
	}
}

func TestExtractPrice_Between(t *testing.T) {
	exts := extractEntities("parts between $1 and $5")

	minExt, ok := findEntity(exts, core.EntityMinPrice)
	require.True(t, ok)
	assert.InDelta(t, 1.0, minExt.value.Amount, 1e-9)

	maxExt, ok := findEntity(exts, core.EntityMaxPrice)
	require.True(t, ok)
	assert.InDelta(t, 5.0, maxExt.value.Amount, 1e-9)
}

func TestExtractEntities_NothingRecognized(t *testing.T) {
	exts := extractEntities("banana spaceship")
	assert.Empty(t, exts)
}
