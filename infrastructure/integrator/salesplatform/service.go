package salesplatform

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	salesdomain "github.com/vfg2006/roi-collector-api/infrastructure/integrator/salesplatform/domain"
	"github.com/vfg2006/roi-collector-api/infrastructure/integrator/salesplatform/salesclient"
	"github.com/vfg2006/roi-collector-api/internal/config"
	"github.com/vfg2006/roi-collector-api/internal/domain"
	"github.com/vfg2006/roi-collector-api/internal/metrics"
	"github.com/vfg2006/roi-collector-api/pkg/utils"
)

const (
	SourceSales      = "sales"
	SourceAffiliates = "affiliates"
)

// a janela dos afiliados começa às 00:01 no horário local
const affiliateWindowOffset = time.Minute

type SalesIntegrator interface {
	GetTodaySales(ctx context.Context) (domain.RawSalesSummary, error)
	GetTodayAffiliates(ctx context.Context) ([]domain.RawAffiliateRecord, error)
}

type SalesPlatformService struct {
	client   salesclient.Client
	location *time.Location
	now      func() time.Time
}

func New(cfg *config.Config, client salesclient.Client) *SalesPlatformService {
	return &SalesPlatformService{
		client:   client,
		location: utils.LoadLocation(cfg.App.Timezone),
		now:      time.Now,
	}
}

// WithClock substitui o relógio usado para definir "hoje"
func (s *SalesPlatformService) WithClock(now func() time.Time) *SalesPlatformService {
	s.now = now
	return s
}

// GetTodaySales retorna o total de hoje. Sem linha para hoje, o total é zero.
func (s *SalesPlatformService) GetTodaySales(ctx context.Context) (domain.RawSalesSummary, error) {
	start := time.Now()
	defer func() {
		metrics.SourceFetchDuration.WithLabelValues(SourceSales).Observe(time.Since(start).Seconds())
	}()

	now := s.now().In(s.location)
	today := now.Format(time.DateOnly)
	summary := domain.RawSalesSummary{
		TotalSales: decimal.Zero,
		AsOfDate:   utils.StartOfDay(now, s.location),
		Date:       today,
	}

	resp, err := s.client.GetOrdersByDay(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar vendas do dia na plataforma")
		return domain.RawSalesSummary{}, domain.NewSourceError(SourceSales, err)
	}

	day, ok := resp.Day(today)
	if !ok {
		logrus.WithField("date", today).Warn("Vendas de hoje não encontradas, considerando zero")
		return summary, nil
	}

	summary.TotalSales = parseAmount(day.Total, SourceSales, "totalPorDia")
	summary.TotalOrders = int(parseAmount(day.TotalOrders, SourceSales, "totalOrdensPorDia").IntPart())
	summary.TotalNumbers = int(parseAmount(day.TotalNumbers, SourceSales, "totalNumerosPorDia").IntPart())

	return summary, nil
}

// GetTodayAffiliates retorna o total pago de cada afiliado de 00:01 até agora
func (s *SalesPlatformService) GetTodayAffiliates(ctx context.Context) ([]domain.RawAffiliateRecord, error) {
	start := time.Now()
	defer func() {
		metrics.SourceFetchDuration.WithLabelValues(SourceAffiliates).Observe(time.Since(start).Seconds())
	}()

	now := s.now()
	init := utils.StartOfDay(now, s.location).Add(affiliateWindowOffset)

	summaries, err := s.client.GetAffiliates(ctx, init, now)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar afiliados na plataforma")
		return nil, domain.NewSourceError(SourceAffiliates, err)
	}

	records := make([]domain.RawAffiliateRecord, 0, len(summaries))
	for _, summary := range summaries {
		records = append(records, domain.RawAffiliateRecord{
			AffiliateCode:   summary.User.AffiliateCode,
			PaidOrdersTotal: parseAmount(summary.TotalPaidOrders, SourceAffiliates, summary.User.AffiliateCode),
		})
	}

	logrus.WithField("affiliates", len(records)).Debug("Afiliados obtidos da plataforma")

	return records, nil
}

// parseAmount converte o valor; ilegível vira zero com aviso
func parseAmount(amount salesdomain.Amount, source string, field string) decimal.Decimal {
	value, err := amount.Decimal()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"source": source,
			"field":  field,
			"value":  amount.String(),
		}).Warn("Valor numérico ilegível, considerando zero")
		metrics.RecordMalformed(source)
		return decimal.Zero
	}
	return value
}
