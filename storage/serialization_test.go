package storage

import (
	"testing"
	"time"

	"github.com/poiesic/partdex/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	part := &core.Part{
		Id:            core.IDFromContent("RC0805FR-0710KL"),
		Name:          "10k resistor",
		PartNumber:    "RC0805FR-0710KL",
		Manufacturer:  "Yageo",
		ComponentType: "resistor",
		Value:         "10.0kΩ",
		Package:       "0805",
		Notes:         "general purpose, thick film",
		Specs: map[string]string{
			"power":     "0.125W",
			"tolerance": "1%",
		},
		InsertedAt: now,
		UpdatedAt:  now,
	}

	decoded, err := UnmarshalPart(MarshalPart(part))
	require.NoError(t, err)

	// Compare timestamps as instants; their internal representation differs
	// after decoding.
	assert.True(t, part.InsertedAt.Equal(decoded.InsertedAt))
	assert.True(t, part.UpdatedAt.Equal(decoded.UpdatedAt))
	decoded.InsertedAt, decoded.UpdatedAt = part.InsertedAt, part.UpdatedAt
	assert.Equal(t, part, decoded)
}

func TestPartRoundTrip_ZeroValues(t *testing.T) {
	part := &core.Part{Name: "mystery part"}

	decoded, err := UnmarshalPart(MarshalPart(part))
	require.NoError(t, err)

	assert.Equal(t, part.Name, decoded.Name)
	assert.Nil(t, decoded.Specs)
	assert.True(t, decoded.InsertedAt.Equal(part.InsertedAt.UTC()))
}

func TestIDRoundTrip(t *testing.T) {
	for _, id := range []core.ID{0, 1, 255, 1 << 32, 1<<64 - 1} {
		decoded, err := UnmarshalID(MarshalID(id))
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}
}

func TestUnmarshalPart_Garbage(t *testing.T) {
	_, err := UnmarshalPart([]byte{0xff})
	assert.Error(t, err)
}
