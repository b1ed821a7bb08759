package utils

import (
	stdjson "encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal converte um valor vindo de uma API externa em decimal.
// Aceita números, strings no formato americano (com ou sem "R$") e nil, que vira zero.
func ParseDecimal(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case nil:
		return decimal.Zero, nil
	case decimal.Decimal:
		return v, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case stdjson.Number:
		return decimal.NewFromString(v.String())
	case string:
		clean := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(v, "R$", ""), " ", ""))
		if clean == "" {
			return decimal.Zero, nil
		}
		return decimal.NewFromString(clean)
	default:
		return decimal.Zero, fmt.Errorf("tipo numérico não suportado: %T", value)
	}
}

// RoundMoney arredonda um valor monetário para centavos
func RoundMoney(value decimal.Decimal) decimal.Decimal {
	if value.IsZero() {
		return decimal.Zero
	}

	return value.Round(2)
}

// UseNumericDecimalJSON faz os decimais saírem como número no JSON, não como string.
// Deve ser chamada uma vez na inicialização do processo.
func UseNumericDecimalJSON() {
	decimal.MarshalJSONWithoutQuotes = true
}
