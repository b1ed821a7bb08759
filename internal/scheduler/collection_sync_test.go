package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/roi-collector-api/internal/config"
	"github.com/vfg2006/roi-collector-api/internal/domain"
	"github.com/vfg2006/roi-collector-api/internal/usecases/collecting"
)

type fakeCollector struct {
	mu      sync.Mutex
	calls   int
	errs    []error
	status  domain.CollectionStatus
	release chan struct{}
}

func (f *fakeCollector) Collect(context.Context) (*collecting.Result, error) {
	if f.release != nil {
		<-f.release
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	call := f.calls
	f.calls++
	if call < len(f.errs) && f.errs[call] != nil {
		return nil, f.errs[call]
	}

	return &collecting.Result{Log: &domain.CollectionLog{Status: f.status}}, nil
}

func (f *fakeCollector) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestSyncService(collector Collector, enabled bool) *CollectionSyncService {
	return NewCollectionSyncService(collector, &config.Config{
		App:            config.App{Timezone: "America/Sao_Paulo"},
		CollectionSync: config.CollectionSync{CronSchedule: "*/30 * * * *", Enabled: enabled},
		Collection:     config.Collection{RetryAttempts: 2, RetryBackoff: time.Millisecond},
	})
}

func TestCollectionSyncService_runCollection(t *testing.T) {
	errSource := domain.NewSourceError("meta", errors.New("status 500"))

	tests := []struct {
		name       string
		errs       []error
		wantCalls  int
		wantStatus domain.CollectionStatus
		wantError  bool
	}{
		{
			name:       "Sucesso na primeira tentativa",
			wantCalls:  1,
			wantStatus: domain.CollectionStatusSuccess,
		},
		{
			name:       "Sucesso depois de duas falhas",
			errs:       []error{errSource, errSource},
			wantCalls:  3,
			wantStatus: domain.CollectionStatusSuccess,
		},
		{
			name:       "Todas as tentativas falham",
			errs:       []error{errSource, errSource, errSource},
			wantCalls:  3,
			wantStatus: domain.CollectionStatusError,
			wantError:  true,
		},
		{
			name:       "Outra coleta em andamento não gera nova tentativa",
			errs:       []error{domain.ErrLockNotAcquired},
			wantCalls:  1,
			wantStatus: domain.CollectionStatusNoData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := &fakeCollector{errs: tt.errs, status: domain.CollectionStatusSuccess}
			service := newTestSyncService(collector, true)

			service.runCollection(context.Background())

			assert.Equal(t, tt.wantCalls, collector.Calls())

			status := service.GetStatus()
			assert.Equal(t, tt.wantStatus, status["last_sync_status"])
			assert.Equal(t, false, status["sync_running"])
			if tt.wantError {
				assert.Contains(t, status["last_sync_error"], "meta")
			} else {
				assert.Equal(t, "", status["last_sync_error"])
			}
		})
	}
}

func TestCollectionSyncService_TriggerManualSync(t *testing.T) {
	collector := &fakeCollector{status: domain.CollectionStatusSuccess, release: make(chan struct{})}
	service := newTestSyncService(collector, false)

	assert.True(t, service.TriggerManualSync())
	assert.True(t, service.IsRunning())

	// já existe uma coleta em andamento
	assert.False(t, service.TriggerManualSync())

	close(collector.release)
	assert.Eventually(t, func() bool { return !service.IsRunning() }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, collector.Calls())
}

func TestCollectionSyncService_TriggerManualSyncConcorrente(t *testing.T) {
	collector := &fakeCollector{status: domain.CollectionStatusSuccess, release: make(chan struct{})}
	service := newTestSyncService(collector, false)

	const triggers = 20

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < triggers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if service.TriggerManualSync() {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	assert.True(t, service.IsRunning())

	// o agendamento também respeita a coleta manual em andamento
	service.runCollection(context.Background())

	close(collector.release)
	assert.Eventually(t, func() bool { return !service.IsRunning() }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, collector.Calls())
}

func TestCollectionSyncService_Start(t *testing.T) {
	t.Run("Desabilitado", func(t *testing.T) {
		service := newTestSyncService(&fakeCollector{}, false)

		require.NoError(t, service.Start(context.Background()))
		assert.NotContains(t, service.GetStatus(), "next_sync_at")
	})

	t.Run("Habilitado", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		service := newTestSyncService(&fakeCollector{}, true)

		require.NoError(t, service.Start(ctx))
		status := service.GetStatus()
		assert.Equal(t, true, status["sync_enabled"])
		assert.Contains(t, status, "next_sync_at")
	})

	t.Run("Expressão cron inválida", func(t *testing.T) {
		service := newTestSyncService(&fakeCollector{}, true)
		service.config.CronSchedule = "a cada hora"

		assert.Error(t, service.Start(context.Background()))
	})
}
