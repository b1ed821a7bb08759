package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Totals é o bloco global de uma coleta
type Totals struct {
	Sales   decimal.Decimal `json:"sales"`
	Spend   decimal.Decimal `json:"spend"`
	Budget  decimal.Decimal `json:"budget"`
	ROI     ROI             `json:"roi"`
	Orders  int             `json:"orders"`
	Numbers int             `json:"numbers"`
	Profit  decimal.Decimal `json:"profit"`
	Margin  decimal.Decimal `json:"margin"`
}

// AggregationResult é o resultado imutável de uma execução do agregador
type AggregationResult struct {
	Timestamp time.Time                 `json:"timestamp"`
	ProductID string                    `json:"product_id"`
	Totals    Totals                    `json:"totals"`
	Channels  map[string]ChannelSummary `json:"channels"`
}

// Channel retorna o resumo do canal ou um resumo zerado
func (r AggregationResult) Channel(name string) (ChannelSummary, bool) {
	summary, ok := r.Channels[name]
	if !ok {
		return EmptyChannelSummary(), false
	}
	return summary, true
}
