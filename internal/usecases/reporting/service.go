package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roi-collector-api/infrastructure/repository"
	"github.com/vfg2006/roi-collector-api/internal/config"
	"github.com/vfg2006/roi-collector-api/internal/domain"
	"github.com/vfg2006/roi-collector-api/pkg/utils"
)

const (
	MinHistoryDays = 1
	MaxHistoryDays = 90

	displayDateLayout = "02/01/2006"
	displayTimeLayout = "15:04:05"
)

// Pinger verifica a conexão com o banco
type Pinger interface {
	Ping(ctx context.Context) error
}

type Service struct {
	productID       string
	channels        []string
	intervalMinutes int
	snapshots       repository.SnapshotRepository
	logs            repository.CollectionLogRepository
	db              Pinger
	location        *time.Location
	now             func() time.Time
}

func NewService(
	cfg *config.Config,
	snapshots repository.SnapshotRepository,
	logs repository.CollectionLogRepository,
	db Pinger,
) *Service {
	return &Service{
		productID:       cfg.SalesPlatform.ProductID,
		channels:        cfg.Collection.Channels,
		intervalMinutes: cfg.CollectionSync.IntervalMinutes,
		snapshots:       snapshots,
		logs:            logs,
		db:              db,
		location:        utils.LoadLocation(cfg.App.Timezone),
		now:             time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) today() time.Time {
	return utils.StartOfDay(s.now(), s.location)
}

// Today monta o resumo do painel com a última coleta do dia
func (s *Service) Today(ctx context.Context) (*domain.DashboardSummary, error) {
	today := s.today()

	snapshot, err := s.snapshots.Latest(ctx, s.productID, today)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar coleta de hoje")
	}

	lastLog, err := s.logs.LastByDate(ctx, today)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar registro da última coleta")
	}

	summary := &domain.DashboardSummary{
		Date: today.Format(displayDateLayout),
	}

	if snapshot == nil {
		summary.Status = domain.CollectionStatusNoData
		summary.Message = "Nenhuma coleta realizada hoje"
		if lastLog != nil && lastLog.Status == domain.CollectionStatusError {
			summary.Status = domain.CollectionStatusError
			summary.Message = lastLog.Message
		}
		summary.Totals = emptyTotals()
		summary.Channels = s.withChannels(nil)
		return summary, nil
	}

	summary.Status = domain.CollectionStatusSuccess
	summary.Message = "Dados cumulativos desde 00:00 de hoje"
	if lastLog != nil {
		summary.Status = lastLog.Status
		switch lastLog.Status {
		case domain.CollectionStatusDegraded:
			summary.Message = lastLog.Message
		case domain.CollectionStatusError:
			summary.Message = fmt.Sprintf("Última coleta falhou: %s", lastLog.Message)
		}
	}

	lastUpdate := snapshot.CollectedAt()
	summary.Totals = snapshot.Result.Totals
	summary.Channels = s.withChannels(snapshot.Result.Channels)
	summary.LastUpdate = &lastUpdate

	return summary, nil
}

// History retorna as coletas dos últimos dias, da mais recente para a mais antiga.
// As variações são calculadas em ordem cronológica.
func (s *Service) History(ctx context.Context, days int) ([]domain.HistoryEntry, error) {
	if days < MinHistoryDays || days > MaxHistoryDays {
		return nil, errors.Wrapf(domain.ErrInvalidRequest, "days deve estar entre %d e %d", MinHistoryDays, MaxHistoryDays)
	}

	from := s.today().AddDate(0, 0, -days)

	snapshots, err := s.snapshots.ListSince(ctx, s.productID, from)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar histórico de coletas")
	}

	logs, err := s.logs.ListSince(ctx, from)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar registros de coleta")
	}

	logBySnapshot := make(map[string]*domain.CollectionLog, len(logs))
	for _, log := range logs {
		if log.SnapshotID != nil {
			logBySnapshot[*log.SnapshotID] = log
		}
	}

	entries := make([]domain.HistoryEntry, len(snapshots))
	var previous *domain.Snapshot
	for i, snapshot := range snapshots {
		entries[len(snapshots)-1-i] = s.historyEntry(snapshot, previous, logBySnapshot[snapshot.ID])
		previous = snapshot
	}

	return entries, nil
}

func (s *Service) historyEntry(snapshot *domain.Snapshot, previous *domain.Snapshot, log *domain.CollectionLog) domain.HistoryEntry {
	totals := snapshot.Result.Totals
	collectedAt := snapshot.CollectedAt().In(s.location)
	delta := Delta(snapshot, previous)

	entry := domain.HistoryEntry{
		SnapshotDelta: delta,
		SnapshotID:    snapshot.ID,
		Date:          collectedAt.Format(displayDateLayout),
		Time:          collectedAt.Format(displayTimeLayout),
		Status:        domain.CollectionStatusSuccess,
		Message: fmt.Sprintf("ROI: %s | Vendas: R$ %s",
			totals.ROI.Decimal().StringFixed(2), totals.Sales.StringFixed(2)),
		ROI:       totals.ROI,
		Sales:     totals.Sales,
		Spend:     totals.Spend,
		Profit:    totals.Profit,
		HasGrowth: delta.SalesDiff.IsPositive(),
	}

	if log != nil {
		entry.Status = log.Status
	}

	return entry
}

// Status resume as tentativas de coleta de hoje
func (s *Service) Status(ctx context.Context) (*domain.CollectionStatusReport, error) {
	today := s.today()

	lastLog, err := s.logs.LastByDate(ctx, today)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar registro da última coleta")
	}

	count, err := s.logs.CountByDate(ctx, today)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar coletas de hoje")
	}

	report := &domain.CollectionStatusReport{
		LastStatus:       domain.CollectionStatusNoData,
		TodayCollections: count,
		IsActive:         count > 0,
		NextCollection:   fmt.Sprintf("A cada %d minutos", s.intervalMinutes),
	}

	if lastLog != nil {
		lastCollection := lastLog.CollectedAt
		report.LastCollection = &lastCollection
		report.LastStatus = lastLog.Status
	}

	return report, nil
}

// Channel retorna os números de um canal na última coleta do dia
func (s *Service) Channel(ctx context.Context, name string) (*domain.ChannelReport, error) {
	if !s.isKnownChannel(name) {
		return nil, errors.Wrapf(domain.ErrUnknownChannel, "canal %q", name)
	}

	today := s.today()
	report := &domain.ChannelReport{
		Channel: name,
		Status:  domain.CollectionStatusNoData,
		Data:    domain.EmptyChannelSummary(),
		Date:    today.Format(displayDateLayout),
	}

	snapshot, err := s.snapshots.Latest(ctx, s.productID, today)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar coleta de hoje")
	}
	if snapshot == nil {
		return report, nil
	}

	summary, ok := snapshot.Result.Channel(name)
	if !ok {
		return report, nil
	}

	lastUpdate := snapshot.CollectedAt()
	report.Status = domain.CollectionStatusSuccess
	report.Data = summary
	report.LastUpdate = &lastUpdate

	return report, nil
}

// Health indica se há coleta hoje e se o banco responde
func (s *Service) Health(ctx context.Context) (*domain.HealthReport, error) {
	report := &domain.HealthReport{
		Status:     domain.HealthStatusWarning,
		ProductID:  s.productID,
		SystemTime: s.now(),
		Database:   "connected",
	}

	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			logrus.WithError(err).Warn("Banco de dados não respondeu ao ping")
			report.Database = "disconnected"
			return report, nil
		}
	}

	status, err := s.Status(ctx)
	if err != nil {
		return nil, err
	}
	report.CollectionsToday = status.TodayCollections
	report.LastCollection = status.LastCollection

	snapshot, err := s.snapshots.Latest(ctx, s.productID, s.today())
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar coleta de hoje")
	}

	report.HasTodayData = snapshot != nil
	if report.HasTodayData {
		report.Status = domain.HealthStatusHealthy
	}

	return report, nil
}

func (s *Service) isKnownChannel(name string) bool {
	for _, channel := range s.channels {
		if channel == name {
			return true
		}
	}
	return false
}

// withChannels garante que todos os canais configurados aparecem no resumo
func (s *Service) withChannels(channels map[string]domain.ChannelSummary) map[string]domain.ChannelSummary {
	result := make(map[string]domain.ChannelSummary, len(s.channels)+len(channels))
	for _, channel := range s.channels {
		result[channel] = domain.EmptyChannelSummary()
	}
	for channel, summary := range channels {
		result[channel] = summary
	}
	return result
}

func emptyTotals() domain.Totals {
	return domain.Totals{
		Sales:  decimal.Zero,
		Spend:  decimal.Zero,
		Budget: decimal.Zero,
		ROI:    domain.NewROI(decimal.Zero),
		Profit: decimal.Zero,
		Margin: decimal.Zero,
	}
}
