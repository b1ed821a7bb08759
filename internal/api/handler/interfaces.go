package handler

import (
	"context"

	"github.com/vfg2006/roi-collector-api/internal/domain"
	"github.com/vfg2006/roi-collector-api/internal/usecases/collecting"
)

// Reporter expõe as leituras do painel
type Reporter interface {
	Today(ctx context.Context) (*domain.DashboardSummary, error)
	History(ctx context.Context, days int) ([]domain.HistoryEntry, error)
	Status(ctx context.Context) (*domain.CollectionStatusReport, error)
	Channel(ctx context.Context, name string) (*domain.ChannelReport, error)
	Health(ctx context.Context) (*domain.HealthReport, error)
}

// CollectionRunner executa uma coleta de forma síncrona
type CollectionRunner interface {
	Collect(ctx context.Context) (*collecting.Result, error)
}

type ConfigManager interface {
	GetConfig(ctx context.Context) (*domain.AppSettings, error)
	UpdateConfig(ctx context.Context, req domain.UpdateSettingsRequest) (*domain.AppSettings, error)
}

// CronController controla o agendador de coletas
type CronController interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}
