package meta

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roi-collector-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/roi-collector-api/internal/config"
	"github.com/vfg2006/roi-collector-api/internal/domain"
	"github.com/vfg2006/roi-collector-api/internal/metrics"
	"github.com/vfg2006/roi-collector-api/pkg/utils"
)

// SourceName identifica o Meta nos erros e métricas
const SourceName = "meta"

type MetaIntegrator struct {
	client        metaclient.Client
	maxConcurrent int
	fetchTimeout  time.Duration
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		client:        client,
		maxConcurrent: cfg.Collection.MaxConcurrent,
		fetchTimeout:  cfg.Collection.FetchTimeout,
	}
}

type accountResult struct {
	record domain.RawAdSpendRecord
	err    error
}

// GetAdSpend busca gasto e orçamento de hoje de cada conta.
// Falha no gasto de qualquer conta invalida a coleta; falha no orçamento só zera o orçamento da conta.
func (s *MetaIntegrator) GetAdSpend(ctx context.Context, accountIDs []string) ([]domain.RawAdSpendRecord, error) {
	start := time.Now()
	defer func() {
		metrics.SourceFetchDuration.WithLabelValues(SourceName).Observe(time.Since(start).Seconds())
	}()

	maxConcurrent := s.maxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	results := make([]accountResult, len(accountIDs))
	semaphore := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup

	for i, accountID := range accountIDs {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(i int, accountID string) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			results[i] = s.fetchAccount(ctx, accountID)
		}(i, accountID)
	}

	wg.Wait()

	records := make([]domain.RawAdSpendRecord, 0, len(results))
	for _, result := range results {
		if result.err != nil {
			return nil, domain.NewSourceError(SourceName, result.err)
		}
		records = append(records, result.record)
	}

	logrus.WithField("accounts", len(records)).Debug("Gastos do Meta obtidos")

	return records, nil
}

func (s *MetaIntegrator) fetchAccount(ctx context.Context, accountID string) accountResult {
	fetchCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	insight, err := s.client.GetAccountSpend(fetchCtx, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("Erro ao buscar gasto da conta no Meta")
		return accountResult{err: err}
	}

	spend, err := utils.ParseDecimal(insight.Spend)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"spend":      insight.Spend,
		}).Warn("Gasto ilegível, considerando zero")
		metrics.RecordMalformed(SourceName)
		spend = decimal.Zero
	}

	return accountResult{
		record: domain.RawAdSpendRecord{
			AccountID: accountID,
			Spend:     spend,
			Budget:    s.accountBudget(fetchCtx, accountID),
		},
	}
}

// accountBudget soma o orçamento diário das campanhas ativas.
// Campanha sem orçamento próprio usa a soma dos seus conjuntos de anúncios.
func (s *MetaIntegrator) accountBudget(ctx context.Context, accountID string) decimal.Decimal {
	logger := logrus.WithField("account_id", accountID)

	campaigns, err := s.client.GetActiveCampaigns(ctx, accountID)
	if err != nil {
		logger.WithError(err).Warn("Erro ao buscar campanhas ativas, orçamento considerado zero")
		return decimal.Zero
	}

	total := decimal.Zero
	for _, campaign := range campaigns {
		if campaign.HasBudget() {
			budget, err := campaign.DailyBudgetValue()
			if err != nil {
				logger.WithField("campaign_id", campaign.ID).Warn("Orçamento de campanha ilegível, considerando zero")
				metrics.RecordMalformed(SourceName)
				continue
			}
			total = total.Add(budget)
			continue
		}

		adSets, err := s.client.GetActiveAdSets(ctx, campaign.ID)
		if err != nil {
			logger.WithError(err).WithField("campaign_id", campaign.ID).Warn("Erro ao buscar conjuntos de anúncios, orçamento da campanha considerado zero")
			continue
		}

		for _, adSet := range adSets {
			budget, err := adSet.DailyBudgetValue()
			if err != nil {
				logger.WithField("adset_id", adSet.ID).Warn("Orçamento de conjunto ilegível, considerando zero")
				metrics.RecordMalformed(SourceName)
				continue
			}
			total = total.Add(budget)
		}
	}

	return utils.RoundMoney(total)
}

func (s *MetaIntegrator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.fetchTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.fetchTimeout)
}
