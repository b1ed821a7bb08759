package metadomain

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/roi-collector-api/pkg/utils"
)

// dias usados para converter o orçamento vitalício em diário
const lifetimeBudgetDays = 30

var cents = decimal.NewFromInt(100)

type Campaign struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	DailyBudget    string `json:"daily_budget"`
	LifetimeBudget string `json:"lifetime_budget"`
}

// AdSet tem os mesmos campos de orçamento da campanha
type AdSet struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	DailyBudget    string `json:"daily_budget"`
	LifetimeBudget string `json:"lifetime_budget"`
}

// HasBudget indica se o orçamento é definido na campanha e não nos conjuntos
func (c Campaign) HasBudget() bool {
	return c.DailyBudget != "" || c.LifetimeBudget != ""
}

// DailyBudgetValue converte o orçamento da campanha (em centavos) para reais por dia
func (c Campaign) DailyBudgetValue() (decimal.Decimal, error) {
	return dailyBudget(c.DailyBudget, c.LifetimeBudget)
}

func (a AdSet) DailyBudgetValue() (decimal.Decimal, error) {
	return dailyBudget(a.DailyBudget, a.LifetimeBudget)
}

// dailyBudget usa o orçamento diário; sem ele, o vitalício dividido por 30
func dailyBudget(daily string, lifetime string) (decimal.Decimal, error) {
	if daily != "" {
		value, err := utils.ParseDecimal(daily)
		if err != nil {
			return decimal.Zero, err
		}
		return value.Div(cents), nil
	}

	if lifetime != "" {
		value, err := utils.ParseDecimal(lifetime)
		if err != nil {
			return decimal.Zero, err
		}
		return value.Div(cents).Div(decimal.NewFromInt(lifetimeBudgetDays)), nil
	}

	return decimal.Zero, nil
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}
