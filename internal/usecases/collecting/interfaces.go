package collecting

import (
	"context"

	"github.com/vfg2006/roi-collector-api/internal/domain"
	"github.com/vfg2006/roi-collector-api/internal/usecases/attribution"
)

// SalesFetcher lê as vendas do dia e os totais dos afiliados
type SalesFetcher interface {
	GetTodaySales(ctx context.Context) (domain.RawSalesSummary, error)
	GetTodayAffiliates(ctx context.Context) ([]domain.RawAffiliateRecord, error)
}

// AdSpendFetcher lê o gasto do dia das contas de anúncio
type AdSpendFetcher interface {
	GetAdSpend(ctx context.Context, accountIDs []string) ([]domain.RawAdSpendRecord, error)
}

type MappingResolver interface {
	Resolve(ctx context.Context) attribution.Resolution
}

// Recorder grava a coleta e o registro da tentativa
type Recorder interface {
	Record(ctx context.Context, snapshot *domain.Snapshot, log *domain.CollectionLog) error
	RecordFailure(ctx context.Context, log *domain.CollectionLog) error
}

type Locker interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}
