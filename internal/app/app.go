package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roi-collector-api/infrastructure/database/postgres"
	"github.com/vfg2006/roi-collector-api/infrastructure/integrator/meta"
	"github.com/vfg2006/roi-collector-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/roi-collector-api/infrastructure/integrator/salesplatform"
	"github.com/vfg2006/roi-collector-api/infrastructure/integrator/salesplatform/salesclient"
	"github.com/vfg2006/roi-collector-api/infrastructure/lock"
	"github.com/vfg2006/roi-collector-api/infrastructure/repository"
	"github.com/vfg2006/roi-collector-api/internal/config"
	"github.com/vfg2006/roi-collector-api/internal/domain"
	"github.com/vfg2006/roi-collector-api/internal/usecases/aggregating"
	"github.com/vfg2006/roi-collector-api/internal/usecases/attribution"
	"github.com/vfg2006/roi-collector-api/internal/usecases/collecting"
	"github.com/vfg2006/roi-collector-api/internal/usecases/configuring"
	"github.com/vfg2006/roi-collector-api/internal/usecases/reporting"
)

// App reúne as conexões e os serviços montados a partir da configuração
type App struct {
	Config *config.Config
	DB     *postgres.Connection
	Redis  *redis.Client

	Collector *collecting.Service
	Reporter  *reporting.Service
	Settings  *configuring.Service
	Mapper    *attribution.Mapper
}

// New abre o banco e o Redis e monta os serviços
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}
	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = lock.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			// sem Redis o lock fica restrito ao processo
			logrus.WithError(err).Warn("Redis indisponível, usando lock local")
		} else {
			logrus.WithField("addr", cfg.Redis.Addr).Info("Conexão com Redis estabelecida com sucesso")
		}
	}

	app := &App{
		Config: cfg,
		DB:     conn,
		Redis:  redisClient,
	}
	app.build()

	return app, nil
}

func (a *App) build() {
	cfg := a.Config

	snapshotRepo := repository.NewSnapshotRepository(a.DB)
	logRepo := repository.NewCollectionLogRepository(a.DB)
	mappingRepo := repository.NewChannelMappingRepository(a.DB)
	campaignRepo := repository.NewCampaignRepository(a.DB)
	recorder := repository.NewSnapshotRecorder(a.DB)

	a.Mapper = newMapper(cfg, mappingRepo)

	affiliateChannels := cfg.Collection.AffiliateChannels()
	if len(affiliateChannels) == 0 {
		affiliateChannels = attribution.DefaultAffiliates()
	}
	affiliates := attribution.NewAffiliateTable(affiliateChannels, cfg.Collection.DefaultChannel)
	aggregator := aggregating.NewAggregator(
		cfg.SalesPlatform.ProductID,
		cfg.Collection.DefaultChannel,
		cfg.Collection.OverallChannel,
		affiliates,
	)

	metaClient := metaclient.NewClient(cfg, &http.Client{Timeout: cfg.Collection.FetchTimeout})
	metaIntegrator := meta.New(cfg, metaClient)

	salesClient := salesclient.NewClient(cfg).
		WithHTTPClient(&http.Client{Timeout: cfg.Collection.FetchTimeout})
	salesIntegrator := salesplatform.New(cfg, salesClient)

	a.Collector = collecting.NewService(
		cfg,
		salesIntegrator,
		metaIntegrator,
		a.Mapper,
		aggregator,
		recorder,
		lock.New(cfg.Redis, a.Redis),
	)
	a.Reporter = reporting.NewService(cfg, snapshotRepo, logRepo, a.DB)
	a.Settings = configuring.NewService(cfg, campaignRepo, mappingRepo, a.Mapper, affiliates)
}

// newMapper escolhe a origem do mapeamento de canais
func newMapper(cfg *config.Config, repo repository.ChannelMappingRepository) *attribution.Mapper {
	if cfg.Mapping.Source == string(domain.MappingSourceFile) {
		logrus.WithField("path", cfg.Mapping.FilePath).Info("Mapeamento de canais lido de arquivo")
		return attribution.NewMapper(attribution.FileSource{Path: cfg.Mapping.FilePath}, domain.MappingSourceFile, cfg.Collection.Channels)
	}

	return attribution.NewMapper(repo, domain.MappingSourceDatabase, cfg.Collection.Channels)
}

// Close libera as conexões abertas
func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão com Redis")
		}
	}

	if err := a.DB.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
	}
}
