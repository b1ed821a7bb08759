package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestROI_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		roi      ROI
		expected string
	}{
		{name: "ROI definido", roi: NewROI(decimal.RequireFromString("3.3333")), expected: "3.3333"},
		{name: "ROI zero", roi: NewROI(decimal.Zero), expected: "0"},
		{name: "ROI indefinido vira sentinela", roi: UnboundedROI(), expected: "999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.roi)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestROI_UnmarshalJSON(t *testing.T) {
	var roi ROI
	require.NoError(t, json.Unmarshal([]byte("2000"), &roi))
	assert.False(t, roi.IsUnbounded())
	assert.Equal(t, 2000.0, roi.Float64())

	require.NoError(t, json.Unmarshal([]byte("999.99"), &roi))
	assert.False(t, roi.IsUnbounded())
	assert.True(t, roi.Decimal().Equal(ROISentinel))

	require.NoError(t, json.Unmarshal([]byte("2.5"), &roi))
	value, ok := roi.Value()
	assert.True(t, ok)
	assert.True(t, value.Equal(decimal.RequireFromString("2.5")))

	require.NoError(t, json.Unmarshal([]byte(`"1.25"`), &roi))
	assert.Equal(t, 1.25, roi.Float64())

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &roi))
}

func TestROI_Equal(t *testing.T) {
	assert.True(t, UnboundedROI().Equal(UnboundedROI()))
	assert.False(t, UnboundedROI().Equal(NewROI(ROISentinel)))
	assert.True(t, NewROI(decimal.RequireFromString("1.50")).Equal(NewROI(decimal.RequireFromString("1.5"))))
}

func TestAggregationResult_JSONShape(t *testing.T) {
	decimal.MarshalJSONWithoutQuotes = true
	t.Cleanup(func() { decimal.MarshalJSONWithoutQuotes = false })

	result := AggregationResult{
		ProductID: "p1",
		Totals: Totals{
			Sales:  decimal.RequireFromString("100.5"),
			Spend:  decimal.Zero,
			Budget: decimal.Zero,
			ROI:    UnboundedROI(),
			Profit: decimal.RequireFromString("100.5"),
			Margin: decimal.NewFromInt(100),
		},
		Channels: map[string]ChannelSummary{
			ChannelInstagram: EmptyChannelSummary(),
		},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	totals := decoded["totals"].(map[string]any)
	assert.Equal(t, 100.5, totals["sales"])
	assert.Equal(t, 999.99, totals["roi"])

	channels := decoded["channels"].(map[string]any)
	assert.Contains(t, channels, ChannelInstagram)
}
