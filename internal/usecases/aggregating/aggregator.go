package aggregating

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roi-collector-api/internal/domain"
	"github.com/vfg2006/roi-collector-api/internal/usecases/attribution"
)

// SalesSource indica de onde veio o total de vendas
type SalesSource string

const (
	SalesFromPlatform   SalesSource = "platform"
	SalesFromAffiliates SalesSource = "affiliates"
	SalesFromNone       SalesSource = "none"
)

// AttributionTier indica como as vendas foram distribuídas entre os canais
type AttributionTier string

const (
	AttributionAffiliates    AttributionTier = "affiliates"
	AttributionSingleChannel AttributionTier = "single_channel"
	AttributionProportional  AttributionTier = "proportional"
	AttributionNone          AttributionTier = "none"
)

// Outcome é o resultado da agregação junto com as regras aplicadas
type Outcome struct {
	Result      domain.AggregationResult
	SalesSource SalesSource
	Attribution AttributionTier
}

// UsedFallback indica se alguma estimativa substituiu os dados de afiliados
func (o Outcome) UsedFallback() bool {
	return o.SalesSource == SalesFromAffiliates ||
		o.Attribution == AttributionSingleChannel ||
		o.Attribution == AttributionProportional
}

type Aggregator struct {
	productID      string
	defaultChannel string
	overallChannel string
	affiliates     attribution.AffiliateTable
	now            func() time.Time
}

func NewAggregator(productID string, defaultChannel string, overallChannel string, affiliates attribution.AffiliateTable) *Aggregator {
	return &Aggregator{
		productID:      productID,
		defaultChannel: defaultChannel,
		overallChannel: overallChannel,
		affiliates:     affiliates,
		now:            time.Now,
	}
}

// WithClock substitui o relógio usado no timestamp do resultado
func (a *Aggregator) WithClock(now func() time.Time) *Aggregator {
	a.now = now
	return a
}

// Aggregate combina vendas, afiliados e gastos em um resumo por canal
func (a *Aggregator) Aggregate(
	sales domain.RawSalesSummary,
	affiliates []domain.RawAffiliateRecord,
	adSpend []domain.RawAdSpendRecord,
	mapping domain.ChannelMapping,
) domain.AggregationResult {
	return a.Run(sales, affiliates, adSpend, mapping).Result
}

// Run executa a agregação e informa quais regras de fallback foram aplicadas
func (a *Aggregator) Run(
	sales domain.RawSalesSummary,
	affiliates []domain.RawAffiliateRecord,
	adSpend []domain.RawAdSpendRecord,
	mapping domain.ChannelMapping,
) Outcome {
	channels := a.knownChannels(mapping)

	totalSales, salesSource := resolveTotalSales(sales, affiliates)
	spend := attributeSpend(adSpend, mapping, a.defaultChannel, a.overallChannel)
	channelSales, tier := attributeAffiliateSales(affiliates, a.affiliates, totalSales, spend)

	result := domain.AggregationResult{
		Timestamp: a.now().UTC(),
		ProductID: a.productID,
		Channels:  make(map[string]domain.ChannelSummary, len(channels)+1),
	}

	for _, channel := range channels {
		result.Channels[channel] = summarize(channelSales[channel], spend.byChannel[channel])
	}

	// canais que só apareceram nos afiliados ou nos gastos também entram no resultado
	for channel, value := range channelSales {
		if _, ok := result.Channels[channel]; !ok {
			result.Channels[channel] = summarize(value, spend.byChannel[channel])
		}
	}
	for channel, value := range spend.byChannel {
		if _, ok := result.Channels[channel]; !ok {
			result.Channels[channel] = summarize(channelSales[channel], value)
		}
	}

	for channel, summary := range result.Channels {
		summary.Budget = spend.channelBudget(channel)
		result.Channels[channel] = summary
	}

	overall := overallSummary(totalSales, spend.global)
	overall.Budget = spend.budget
	result.Channels[a.overallChannel] = overall

	result.Totals = domain.Totals{
		Sales:   overall.Sales,
		Spend:   overall.Spend,
		Budget:  spend.budget,
		ROI:     overall.ROI,
		Orders:  sales.TotalOrders,
		Numbers: sales.TotalNumbers,
		Profit:  overall.Profit,
		Margin:  overall.Margin,
	}

	return Outcome{
		Result:      result,
		SalesSource: salesSource,
		Attribution: tier,
	}
}

// knownChannels reúne os canais do mapeamento, o canal padrão e os canais dos afiliados
func (a *Aggregator) knownChannels(mapping domain.ChannelMapping) []string {
	known := domain.ChannelMapping{}
	for channel := range mapping {
		if channel == a.overallChannel {
			continue
		}
		known[channel] = nil
	}
	known[a.defaultChannel] = nil
	for _, channel := range a.affiliates.Channels() {
		if channel == a.overallChannel {
			continue
		}
		known[channel] = nil
	}
	return known.Channels()
}

func logOverallAccount(accountID string, overall string, fallback string) {
	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"channel":    overall,
	}).Warnf("Conta mapeada para o canal %s, gasto atribuído ao canal %s", overall, fallback)
}
