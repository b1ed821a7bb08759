package domain

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// ROISentinel é o valor numérico publicado quando existe venda sem investimento
var ROISentinel = decimal.RequireFromString("999.99")

// ROI representa o retorno (1 + lucro/gasto) de um canal.
// Quando o gasto é zero e há vendas a razão é indefinida (unbounded) e só vira
// número na serialização.
type ROI struct {
	value     decimal.Decimal
	unbounded bool
}

// NewROI cria um ROI definido
func NewROI(value decimal.Decimal) ROI {
	return ROI{value: value}
}

// UnboundedROI cria um ROI sem limite (vendas > 0 e gasto = 0)
func UnboundedROI() ROI {
	return ROI{unbounded: true}
}

// IsUnbounded indica se o ROI é indefinido
func (r ROI) IsUnbounded() bool {
	return r.unbounded
}

// Value retorna o valor do ROI e false quando ele é indefinido
func (r ROI) Value() (decimal.Decimal, bool) {
	if r.unbounded {
		return decimal.Zero, false
	}
	return r.value, true
}

// Decimal retorna o valor publicado, substituindo o ROI indefinido pelo sentinela
func (r ROI) Decimal() decimal.Decimal {
	if r.unbounded {
		return ROISentinel
	}
	return r.value
}

// Float64 retorna o valor publicado como float
func (r ROI) Float64() float64 {
	return r.Decimal().InexactFloat64()
}

func (r ROI) Equal(other ROI) bool {
	if r.unbounded || other.unbounded {
		return r.unbounded == other.unbounded
	}
	return r.value.Equal(other.value)
}

func (r ROI) String() string {
	if r.unbounded {
		return "unbounded"
	}
	return r.value.String()
}

func (r ROI) MarshalJSON() ([]byte, error) {
	return []byte(r.Decimal().String()), nil
}

func (r *ROI) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*r = NewROI(decimal.Zero)
		return nil
	}

	value, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("erro ao decodificar roi %q: %w", string(data), err)
	}

	*r = NewROI(value)
	return nil
}
