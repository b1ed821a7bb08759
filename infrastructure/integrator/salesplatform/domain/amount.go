package salesdomain

import (
	"bytes"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/roi-collector-api/pkg/utils"
)

// Amount guarda o valor como veio da API, que manda número ou texto
type Amount struct {
	raw string
}

func NewAmount(raw string) Amount {
	return Amount{raw: raw}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		a.raw = ""
		return nil
	}
	a.raw = string(bytes.Trim(data, `"`))
	return nil
}

// Decimal converte o valor; texto vazio ou nulo vale zero
func (a Amount) Decimal() (decimal.Decimal, error) {
	return utils.ParseDecimal(a.raw)
}

func (a Amount) String() string {
	return a.raw
}
