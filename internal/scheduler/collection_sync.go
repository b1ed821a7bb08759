package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roi-collector-api/internal/config"
	"github.com/vfg2006/roi-collector-api/internal/domain"
	"github.com/vfg2006/roi-collector-api/internal/usecases/collecting"
	"github.com/vfg2006/roi-collector-api/pkg/utils"
)

// Collector executa uma coleta completa
type Collector interface {
	Collect(ctx context.Context) (*collecting.Result, error)
}

// CollectionSyncConfig representa a configuração do agendador de coletas
type CollectionSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	RetryAttempts int
	RetryBackoff  time.Duration
}

// CollectionSyncService agenda a coleta de ROI e evita execuções sobrepostas
type CollectionSyncService struct {
	scheduler *gocron.Scheduler
	config    CollectionSyncConfig
	collector Collector
	backoff   utils.Backoff

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncStatus      domain.CollectionStatus
	lastSyncError       string

	baseCtx context.Context
}

func NewCollectionSyncService(collector Collector, appConfig *config.Config) *CollectionSyncService {
	syncConfig := CollectionSyncConfig{
		CronSchedule:  appConfig.CollectionSync.CronSchedule,
		SyncEnabled:   appConfig.CollectionSync.Enabled,
		RetryAttempts: appConfig.Collection.RetryAttempts,
		RetryBackoff:  appConfig.Collection.RetryBackoff,
	}

	scheduler := gocron.NewScheduler(utils.LoadLocation(appConfig.App.Timezone))

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"sync_enabled":   syncConfig.SyncEnabled,
		"retry_attempts": syncConfig.RetryAttempts,
		"retry_backoff":  syncConfig.RetryBackoff.String(),
	}).Info("Configuração do agendador de coletas carregada")

	return &CollectionSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		collector: collector,
		backoff:   utils.NewBackoff(syncConfig.RetryBackoff, syncConfig.RetryAttempts),
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador
func (s *CollectionSyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Coleta agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de coletas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCollection(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar coleta: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de coletas")
		s.scheduler.Stop()
	}()

	return nil
}

// runCollection executa a coleta com novas tentativas. Ignora a chamada se já houver uma em andamento.
func (s *CollectionSyncService) runCollection(ctx context.Context) {
	if !s.tryStartSync() {
		logrus.Info("Coleta já em andamento, ignorando")
		return
	}

	s.executeCollection(ctx)
}

// tryStartSync marca a coleta como em andamento; false se já havia uma
func (s *CollectionSyncService) tryStartSync() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()

	return true
}

// executeCollection roda a coleta já marcada por tryStartSync e libera a marcação no fim
func (s *CollectionSyncService) executeCollection(ctx context.Context) {
	status, syncErr := s.collectWithRetry(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncStatus = status
	s.lastSyncError = ""
	if syncErr != nil {
		s.lastSyncError = syncErr.Error()
	}
	s.syncMutex.Unlock()
}

func (s *CollectionSyncService) collectWithRetry(ctx context.Context) (domain.CollectionStatus, error) {
	status := domain.CollectionStatusError

	err := s.backoff.Do(ctx, func(attempt int) error {
		result, err := s.collector.Collect(ctx)
		if errors.Is(err, domain.ErrLockNotAcquired) {
			// outra instância está coletando
			status = domain.CollectionStatusNoData
			return nil
		}
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"attempt":      attempt + 1,
				"max_attempts": s.config.RetryAttempts + 1,
			}).Warn("Coleta falhou")
			return err
		}

		status = result.Log.Status
		return nil
	})
	if err != nil {
		logrus.WithError(err).Error("Coleta falhou após todas as tentativas")
		return domain.CollectionStatusError, err
	}

	return status, nil
}

// TriggerManualSync inicia uma coleta em segundo plano. Retorna false se já houver uma em andamento.
func (s *CollectionSyncService) TriggerManualSync() bool {
	if !s.tryStartSync() {
		logrus.Info("Coleta já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando coleta manual")
	go s.executeCollection(s.baseCtx)

	return true
}

// IsRunning indica se há uma coleta em andamento
func (s *CollectionSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *CollectionSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"retry_attempts":         s.config.RetryAttempts,
		"retry_backoff":          s.config.RetryBackoff.String(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_status":       s.lastSyncStatus,
		"last_sync_error":        s.lastSyncError,
	}

	if jobs := s.scheduler.Jobs(); len(jobs) > 0 {
		status["next_sync_at"] = jobs[0].NextRun()
	}

	return status
}
