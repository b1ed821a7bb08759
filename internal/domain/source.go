package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawSalesSummary é o total de vendas do dia informado pela plataforma
type RawSalesSummary struct {
	TotalSales   decimal.Decimal `json:"total_sales"`
	TotalOrders  int             `json:"total_orders"`
	TotalNumbers int             `json:"total_numbers"`
	AsOfDate     time.Time       `json:"-"`
	Date         string          `json:"date"`
}

// RawAffiliateRecord é o total pago de um afiliado na janela do dia
type RawAffiliateRecord struct {
	AffiliateCode   string          `json:"affiliate_code"`
	PaidOrdersTotal decimal.Decimal `json:"total_paid_orders"`
}

// RawAdSpendRecord é o gasto e o orçamento do dia de uma conta de anúncios
type RawAdSpendRecord struct {
	AccountID string          `json:"account_id"`
	Spend     decimal.Decimal `json:"spend"`
	Budget    decimal.Decimal `json:"budget"`
}
