package collecting

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/roi-collector-api/internal/config"
	"github.com/vfg2006/roi-collector-api/internal/domain"
	"github.com/vfg2006/roi-collector-api/internal/metrics"
	"github.com/vfg2006/roi-collector-api/internal/usecases/aggregating"
	"github.com/vfg2006/roi-collector-api/internal/usecases/attribution"
	"github.com/vfg2006/roi-collector-api/pkg/log"
	"github.com/vfg2006/roi-collector-api/pkg/utils"
)

var ErrRunBudgetExceeded = errors.New("tempo limite da coleta excedido")

// Result é o que uma coleta bem-sucedida gravou
type Result struct {
	RunID    string                `json:"run_id"`
	Snapshot *domain.Snapshot      `json:"snapshot"`
	Log      *domain.CollectionLog `json:"log"`
	Outcome  aggregating.Outcome   `json:"-"`
}

// inputs reúne o que foi lido das fontes externas
type inputs struct {
	sales      domain.RawSalesSummary
	affiliates []domain.RawAffiliateRecord
	adSpend    []domain.RawAdSpendRecord
}

type Service struct {
	sales         SalesFetcher
	ads           AdSpendFetcher
	mapper        MappingResolver
	aggregator    *aggregating.Aggregator
	recorder      Recorder
	locker        Locker
	adAccounts    []string
	maxConcurrent int
	runBudget     time.Duration
	location      *time.Location
	now           func() time.Time

	// serializa agregação e gravação dentro do processo
	mu sync.Mutex
}

func NewService(
	cfg *config.Config,
	sales SalesFetcher,
	ads AdSpendFetcher,
	mapper MappingResolver,
	aggregator *aggregating.Aggregator,
	recorder Recorder,
	locker Locker,
) *Service {
	maxConcurrent := cfg.Collection.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 5
	}

	return &Service{
		sales:         sales,
		ads:           ads,
		mapper:        mapper,
		aggregator:    aggregator,
		recorder:      recorder,
		locker:        locker,
		adAccounts:    cfg.Meta.AdAccounts,
		maxConcurrent: maxConcurrent,
		runBudget:     cfg.Collection.RunBudget,
		location:      utils.LoadLocation(cfg.App.Timezone),
		now:           time.Now,
	}
}

// WithClock substitui o relógio usado nos registros de falha
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Collect executa uma coleta completa: mapeamento, leitura das fontes,
// agregação e gravação. Nenhuma coleta é gravada se alguma fonte falhar.
func (s *Service) Collect(ctx context.Context) (*Result, error) {
	started := time.Now()
	ctx, runID := log.WithRunID(ctx)

	if s.runBudget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.runBudget)
		defer cancel()
	}

	logger := log.ForContext(ctx)
	logger.Info("Iniciando coleta de ROI")

	resolution := s.mapper.Resolve(ctx)
	accounts := mergeAccounts(s.adAccounts, resolution.Mapping.Accounts())

	logger.WithFields(log.Fields{
		"mapping_source": resolution.Source,
		"accounts":       len(accounts),
	}).Debug("Mapeamento de canais resolvido")

	in, err := s.fetch(ctx, accounts)
	if err == nil && ctx.Err() != nil {
		err = errors.Wrap(ErrRunBudgetExceeded, ctx.Err().Error())
	}
	if err != nil {
		s.fail(ctx, resolution, err)
		return nil, err
	}

	result, err := s.aggregateAndRecord(ctx, in, resolution)
	if err != nil {
		if !errors.Is(err, domain.ErrLockNotAcquired) {
			s.fail(ctx, resolution, err)
		}
		return nil, err
	}
	result.RunID = runID

	status := result.Log.Status
	metrics.CollectionRunsTotal.WithLabelValues(string(status)).Inc()
	metrics.CollectionDuration.Observe(time.Since(started).Seconds())
	for channel, summary := range result.Snapshot.Result.Channels {
		metrics.RecordChannel(channel, summary.ROI.Decimal(), summary.Sales)
	}

	totals := result.Snapshot.Result.Totals
	logger.WithFields(log.Fields{
		"snapshot_id": result.Snapshot.ID,
		"status":      status,
		"sales":       totals.Sales.String(),
		"spend":       totals.Spend.String(),
		"roi":         totals.ROI.String(),
		"duration_ms": time.Since(started).Milliseconds(),
	}).Info("Coleta de ROI concluída")

	return result, nil
}

// fetch lê as três fontes em paralelo, limitado pelo semáforo
func (s *Service) fetch(ctx context.Context, accounts []string) (inputs, error) {
	var (
		in  inputs
		wg  sync.WaitGroup
		sem = make(chan struct{}, s.maxConcurrent)

		salesErr, affiliatesErr, adsErr error
	)

	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			fn()
		}()
	}

	run(func() { in.sales, salesErr = s.sales.GetTodaySales(ctx) })
	run(func() { in.affiliates, affiliatesErr = s.sales.GetTodayAffiliates(ctx) })
	run(func() { in.adSpend, adsErr = s.ads.GetAdSpend(ctx, accounts) })

	wg.Wait()

	// ordem fixa para que o erro reportado seja sempre o mesmo
	for _, err := range []error{salesErr, affiliatesErr, adsErr} {
		if err != nil {
			return inputs{}, err
		}
	}

	return in, nil
}

// aggregateAndRecord roda dentro da seção crítica. O timestamp é gerado aqui
// dentro, então a ordem de inserção é a ordem dos timestamps.
func (s *Service) aggregateAndRecord(ctx context.Context, in inputs, resolution attribution.Resolution) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acquired, err := s.locker.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	if !acquired {
		log.ForContext(ctx).Warn("Outra coleta está em andamento, ignorando")
		return nil, domain.ErrLockNotAcquired
	}
	defer func() {
		if err := s.locker.Release(context.WithoutCancel(ctx)); err != nil {
			log.ForContext(ctx).WithError(err).Warn("Erro ao liberar lock da coleta")
		}
	}()

	outcome := s.aggregator.Run(in.sales, in.affiliates, in.adSpend, resolution.Mapping)

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(ErrRunBudgetExceeded, err.Error())
	}

	snapshotID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id da coleta")
	}
	logID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id do registro")
	}

	collectedAt := outcome.Result.Timestamp
	date := utils.StartOfDay(collectedAt, s.location)

	snapshot := &domain.Snapshot{
		ID:     snapshotID,
		Date:   date,
		Result: outcome.Result,
	}

	status := domain.CollectionStatusSuccess
	if resolution.IsFallback() || outcome.UsedFallback() {
		status = domain.CollectionStatusDegraded
	}

	collectionLog := &domain.CollectionLog{
		ID:            logID,
		SnapshotID:    &snapshot.ID,
		Date:          date,
		CollectedAt:   collectedAt,
		Status:        status,
		Message:       describe(outcome, resolution),
		MappingSource: resolution.Source,
	}

	if err := s.recorder.Record(ctx, snapshot, collectionLog); err != nil {
		return nil, errors.Wrap(err, "erro ao gravar coleta")
	}

	return &Result{
		Snapshot: snapshot,
		Log:      collectionLog,
		Outcome:  outcome,
	}, nil
}

// fail registra a tentativa que não gerou coleta
func (s *Service) fail(ctx context.Context, resolution attribution.Resolution, cause error) {
	logger := log.ForContext(ctx).WithError(cause)

	fields := log.Fields{"status": domain.CollectionStatusError}
	var sourceErr *domain.SourceError
	if errors.As(cause, &sourceErr) {
		fields["source"] = sourceErr.Source
	}
	logger.WithFields(fields).Error("Coleta de ROI falhou")

	metrics.CollectionRunsTotal.WithLabelValues(string(domain.CollectionStatusError)).Inc()

	logID, err := utils.GenerateID()
	if err != nil {
		logger.WithError(err).Error("Erro ao gerar id do registro de falha")
		return
	}

	now := s.now()
	failure := &domain.CollectionLog{
		ID:            logID,
		Date:          utils.StartOfDay(now, s.location),
		CollectedAt:   now.UTC(),
		Status:        domain.CollectionStatusError,
		Message:       cause.Error(),
		MappingSource: resolution.Source,
	}

	// o contexto da coleta pode já ter expirado
	if err := s.recorder.RecordFailure(context.WithoutCancel(ctx), failure); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao registrar falha da coleta")
	}
}

// describe monta a mensagem gravada no registro da coleta
func describe(outcome aggregating.Outcome, resolution attribution.Resolution) string {
	notes := make([]string, 0, 3)

	if resolution.IsFallback() {
		notes = append(notes, "mapeamento de canais padrão")
	}

	switch outcome.SalesSource {
	case aggregating.SalesFromAffiliates:
		notes = append(notes, "vendas estimadas pelos afiliados")
	case aggregating.SalesFromNone:
		notes = append(notes, "sem vendas no dia")
	}

	switch outcome.Attribution {
	case aggregating.AttributionSingleChannel:
		notes = append(notes, "vendas atribuídas ao único canal com gasto")
	case aggregating.AttributionProportional:
		notes = append(notes, "vendas distribuídas pelo gasto de cada canal")
	}

	if len(notes) == 0 {
		return "Coleta realizada com sucesso"
	}

	return fmt.Sprintf("Coleta realizada com ressalvas: %s", strings.Join(notes, "; "))
}

// mergeAccounts une as contas configuradas e as do mapeamento, sem repetição
func mergeAccounts(configured []string, mapped []string) []string {
	seen := make(map[string]struct{}, len(configured)+len(mapped))
	accounts := make([]string, 0, len(configured)+len(mapped))

	for _, list := range [][]string{configured, mapped} {
		for _, id := range list {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			accounts = append(accounts, id)
		}
	}

	return accounts
}
