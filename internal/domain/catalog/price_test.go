package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceScanValueRoundTrip(t *testing.T) {
	in := Price{Type: PriceDiscount, Old: 2000000, New: 1500000}

	v, err := in.Value()
	require.NoError(t, err)

	var out Price
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)
}

func TestPriceFixedWireKey(t *testing.T) {
	data, err := json.Marshal(Price{Type: PriceFixed, Amount: 500000})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"fixed","value":500000}`, string(data))

	var p Price
	require.NoError(t, json.Unmarshal([]byte(`{"type":"fixed","value":750000}`), &p))
	assert.Equal(t, float64(750000), p.Amount)
}

func TestPriceScanAcceptsString(t *testing.T) {
	var p Price
	require.NoError(t, p.Scan(`{"type":"range","min":800000,"max":1200000}`))
	assert.Equal(t, PriceRange, p.Type)
	assert.Equal(t, float64(800000), p.Min)
	assert.Equal(t, float64(1200000), p.Max)
}

func TestPriceScanNil(t *testing.T) {
	p := Price{Type: PriceFixed, Amount: 1}
	require.NoError(t, p.Scan(nil))
	assert.Equal(t, Price{}, p)
	assert.False(t, p.KnownType())
}

func TestPriceKnownType(t *testing.T) {
	assert.True(t, Price{Type: PriceContact}.KnownType())
	assert.False(t, Price{Type: "free"}.KnownType())
}
