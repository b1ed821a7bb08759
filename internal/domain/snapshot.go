package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CollectionStatus string

const (
	CollectionStatusSuccess  CollectionStatus = "success"
	CollectionStatusDegraded CollectionStatus = "degraded"
	CollectionStatusError    CollectionStatus = "error"
	CollectionStatusNoData   CollectionStatus = "no_data"
)

type MappingSource string

const (
	MappingSourceDatabase MappingSource = "database"
	MappingSourceFile     MappingSource = "file"
	MappingSourceFallback MappingSource = "fallback"
)

// Snapshot é uma coleta gravada. Nunca é atualizada depois de inserida.
type Snapshot struct {
	ID     string            `json:"id"`
	Date   time.Time         `json:"date"`
	Result AggregationResult `json:"result"`
}

// CollectedAt é o instante em que a coleta foi agregada
func (s Snapshot) CollectedAt() time.Time {
	return s.Result.Timestamp
}

// CollectionLog registra cada tentativa de coleta, bem-sucedida ou não
type CollectionLog struct {
	ID            string           `json:"id"`
	SnapshotID    *string          `json:"snapshot_id,omitempty"`
	Date          time.Time        `json:"date"`
	CollectedAt   time.Time        `json:"collected_at"`
	Status        CollectionStatus `json:"status"`
	Message       string           `json:"message"`
	MappingSource MappingSource    `json:"mapping_source"`
}

// SnapshotDelta é a variação entre duas coletas consecutivas
type SnapshotDelta struct {
	SalesDiff        decimal.Decimal `json:"sales_diff"`
	SalesPctChange   decimal.Decimal `json:"sales_percent_change"`
	ROIPctChange     decimal.Decimal `json:"roi_percent_change"`
	ProfitDiff       decimal.Decimal `json:"profit_diff"`
	ProfitPctChange  decimal.Decimal `json:"profit_percent_change"`
	HasDataToCompare bool            `json:"has_data_to_compare"`
}

// HistoryEntry é uma linha do histórico de coletas
type HistoryEntry struct {
	SnapshotDelta
	SnapshotID string           `json:"snapshot_id"`
	Date       string           `json:"date"`
	Time       string           `json:"time"`
	Status     CollectionStatus `json:"status"`
	Message    string           `json:"message"`
	ROI        ROI              `json:"roi"`
	Sales      decimal.Decimal  `json:"sales"`
	Spend      decimal.Decimal  `json:"spend"`
	Profit     decimal.Decimal  `json:"profit"`
	HasGrowth  bool             `json:"has_growth"`
}

// CollectionStatusReport resume as coletas do dia
type CollectionStatusReport struct {
	LastCollection   *time.Time       `json:"last_collection"`
	LastStatus       CollectionStatus `json:"last_status"`
	TodayCollections int              `json:"today_collections"`
	IsActive         bool             `json:"is_active"`
	NextCollection   string           `json:"next_collection"`
}

// DashboardSummary é a visão do dia entregue ao painel
type DashboardSummary struct {
	Date       string                    `json:"date"`
	Status     CollectionStatus          `json:"status"`
	Message    string                    `json:"message"`
	Totals     Totals                    `json:"totals"`
	Channels   map[string]ChannelSummary `json:"channels"`
	LastUpdate *time.Time                `json:"last_update,omitempty"`
}
