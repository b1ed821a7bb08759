package utils

import (
	stdjson "encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
		wantErr  bool
	}{
		{name: "nil vira zero", input: nil, expected: "0"},
		{name: "string formato americano", input: "3380.46", expected: "3380.46"},
		{name: "string com moeda e espaços", input: "R$ 1 250.10", expected: "1250.1"},
		{name: "string vazia", input: "  ", expected: "0"},
		{name: "float", input: 12.5, expected: "12.5"},
		{name: "inteiro", input: 7, expected: "7"},
		{name: "json.Number", input: stdjson.Number("99.9"), expected: "99.9"},
		{name: "string inválida", input: "abc", wantErr: true},
		{name: "tipo não suportado", input: []int{1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := ParseDecimal(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, value.Equal(decimal.RequireFromString(tt.expected)), "valor obtido: %s", value)
		})
	}
}

func TestUseNumericDecimalJSON(t *testing.T) {
	t.Cleanup(func() { decimal.MarshalJSONWithoutQuotes = false })

	value := decimal.RequireFromString("10.5")

	quoted, err := stdjson.Marshal(value)
	require.NoError(t, err)
	assert.Equal(t, `"10.5"`, string(quoted))

	UseNumericDecimalJSON()

	numeric, err := stdjson.Marshal(value)
	require.NoError(t, err)
	assert.Equal(t, `10.5`, string(numeric))
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, "6666.67", RoundMoney(decimal.RequireFromString("6666.666666")).String())
	assert.True(t, RoundMoney(decimal.Zero).IsZero())
}

func TestStartOfDayAndFormat(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	instant := time.Date(2024, 6, 14, 2, 30, 0, 0, time.UTC) // 23:30 do dia 13 em BRT

	start := StartOfDay(instant, loc)
	assert.Equal(t, 13, start.Day())
	assert.Equal(t, "2024-06-13T03:00:00.000Z", FormatAPIInstant(start))
}

func TestPrettyJson(t *testing.T) {
	out, err := PrettyJson(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"a\": 1\n}", out)

	_, err = PrettyJson([]byte("{invalid"))
	assert.Error(t, err)
}
