package aggregating

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/roi-collector-api/internal/domain"
	"github.com/vfg2006/roi-collector-api/internal/usecases/attribution"
	"github.com/vfg2006/roi-collector-api/pkg/utils"
)

// casas decimais das razões (ROI, margem)
const ratioPlaces = 4

var hundred = decimal.NewFromInt(100)

type spendAttribution struct {
	byChannel       map[string]decimal.Decimal
	budgetByChannel map[string]decimal.Decimal
	global          decimal.Decimal
	budget          decimal.Decimal
}

// channelBudget retorna o orçamento somado do canal, zero quando não houve conta
func (s spendAttribution) channelBudget(channel string) decimal.Decimal {
	if budget, ok := s.budgetByChannel[channel]; ok {
		return budget
	}
	return decimal.Zero
}

// resolveTotalSales usa o total da plataforma; sem ele, a soma dos afiliados
func resolveTotalSales(sales domain.RawSalesSummary, affiliates []domain.RawAffiliateRecord) (decimal.Decimal, SalesSource) {
	if sales.TotalSales.IsPositive() {
		return sales.TotalSales, SalesFromPlatform
	}

	sum := sumAffiliates(affiliates)
	if sum.IsPositive() {
		return sum, SalesFromAffiliates
	}

	return decimal.Zero, SalesFromNone
}

// attributeSpend soma gasto e orçamento por canal. Contas sem canal vão para o canal padrão.
func attributeSpend(records []domain.RawAdSpendRecord, mapping domain.ChannelMapping, defaultChannel string, overallChannel string) spendAttribution {
	attributed := spendAttribution{
		byChannel:       make(map[string]decimal.Decimal),
		budgetByChannel: make(map[string]decimal.Decimal),
		global:          decimal.Zero,
		budget:          decimal.Zero,
	}

	for _, record := range records {
		channel, ok := mapping.ChannelOf(record.AccountID)
		if !ok {
			channel = defaultChannel
		} else if channel == overallChannel {
			logOverallAccount(record.AccountID, overallChannel, defaultChannel)
			channel = defaultChannel
		}

		attributed.byChannel[channel] = attributed.byChannel[channel].Add(record.Spend)
		attributed.budgetByChannel[channel] = attributed.budgetByChannel[channel].Add(record.Budget)
		attributed.global = attributed.global.Add(record.Spend)
		attributed.budget = attributed.budget.Add(record.Budget)
	}

	return attributed
}

// attributeAffiliateSales distribui as vendas dos afiliados pelos canais.
// Sem vendas de afiliados, tenta singleChannelSales e depois proportionalSales.
func attributeAffiliateSales(
	affiliates []domain.RawAffiliateRecord,
	table attribution.AffiliateTable,
	totalSales decimal.Decimal,
	spend spendAttribution,
) (map[string]decimal.Decimal, AttributionTier) {
	byChannel := make(map[string]decimal.Decimal)
	for _, record := range affiliates {
		channel := table.ChannelFor(record.AffiliateCode)
		byChannel[channel] = byChannel[channel].Add(record.PaidOrdersTotal)
	}

	if sumAffiliates(affiliates).IsPositive() {
		return byChannel, AttributionAffiliates
	}

	if !totalSales.IsPositive() || !spend.global.IsPositive() {
		return byChannel, AttributionNone
	}

	if single, ok := singleChannelSales(totalSales, spend.byChannel); ok {
		return single, AttributionSingleChannel
	}

	return proportionalSales(totalSales, spend.byChannel), AttributionProportional
}

// singleChannelSales atribui 100% das vendas quando apenas um canal tem gasto
func singleChannelSales(totalSales decimal.Decimal, spendByChannel map[string]decimal.Decimal) (map[string]decimal.Decimal, bool) {
	var spending []string
	for channel, spend := range spendByChannel {
		if spend.IsPositive() {
			spending = append(spending, channel)
		}
	}

	if len(spending) != 1 {
		return nil, false
	}

	return map[string]decimal.Decimal{spending[0]: totalSales}, true
}

// proportionalSales divide as vendas pela participação de cada canal no gasto.
// A diferença de arredondamento fica com o canal de maior gasto.
func proportionalSales(totalSales decimal.Decimal, spendByChannel map[string]decimal.Decimal) map[string]decimal.Decimal {
	channels := make([]string, 0, len(spendByChannel))
	globalSpend := decimal.Zero
	for channel, spend := range spendByChannel {
		if !spend.IsPositive() {
			continue
		}
		channels = append(channels, channel)
		globalSpend = globalSpend.Add(spend)
	}
	sort.Strings(channels)

	result := make(map[string]decimal.Decimal, len(channels))
	if !globalSpend.IsPositive() {
		return result
	}

	distributed := decimal.Zero
	largest := ""
	for _, channel := range channels {
		share := utils.RoundMoney(totalSales.Mul(spendByChannel[channel]).Div(globalSpend))
		result[channel] = share
		distributed = distributed.Add(share)

		if largest == "" || spendByChannel[channel].GreaterThan(spendByChannel[largest]) {
			largest = channel
		}
	}

	if diff := totalSales.Sub(distributed); !diff.IsZero() {
		result[largest] = result[largest].Add(diff)
	}

	return result
}

// overallSummary usa o total da plataforma, não a soma dos canais
func overallSummary(totalSales decimal.Decimal, globalSpend decimal.Decimal) domain.ChannelSummary {
	return summarize(totalSales, globalSpend)
}

// summarize calcula lucro, margem e ROI
func summarize(sales decimal.Decimal, spend decimal.Decimal) domain.ChannelSummary {
	profit := sales.Sub(spend)

	margin := decimal.Zero
	if sales.IsPositive() {
		margin = profit.Div(sales).Mul(hundred).Round(ratioPlaces)
	}

	return domain.ChannelSummary{
		Sales:  sales,
		Spend:  spend,
		Budget: decimal.Zero,
		ROI:    computeROI(sales, spend, profit),
		Profit: profit,
		Margin: margin,
	}
}

func computeROI(sales decimal.Decimal, spend decimal.Decimal, profit decimal.Decimal) domain.ROI {
	if spend.IsPositive() {
		return domain.NewROI(decimal.NewFromInt(1).Add(profit.Div(spend)).Round(ratioPlaces))
	}
	if sales.IsPositive() {
		return domain.UnboundedROI()
	}
	return domain.NewROI(decimal.Zero)
}

func sumAffiliates(affiliates []domain.RawAffiliateRecord) decimal.Decimal {
	sum := decimal.Zero
	for _, record := range affiliates {
		sum = sum.Add(record.PaidOrdersTotal)
	}
	return sum
}
