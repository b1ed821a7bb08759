package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignSettings guarda as metas da ação acompanhada pelo painel
type CampaignSettings struct {
	ProductID   string          `json:"product_id"`
	Name        string          `json:"campaign_name"`
	ROIGoal     decimal.Decimal `json:"roi_goal"`
	DailyBudget decimal.Decimal `json:"daily_budget"`
	TargetSales decimal.Decimal `json:"target_sales"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// AppSettings é a configuração exposta pela API
type AppSettings struct {
	CampaignSettings
	CollectionInterval int               `json:"collection_interval"`
	AdAccounts         []string          `json:"facebook_accounts"`
	ChannelMapping     ChannelMapping    `json:"channel_mapping"`
	MappingSource      MappingSource     `json:"mapping_source"`
	Affiliates         map[string]string `json:"affiliates"`
}

// UpdateSettingsRequest é o corpo aceito para alterar a configuração
type UpdateSettingsRequest struct {
	ProductID      string           `json:"product_id"`
	Name           *string          `json:"campaign_name"`
	ROIGoal        *decimal.Decimal `json:"roi_goal"`
	DailyBudget    *decimal.Decimal `json:"daily_budget"`
	TargetSales    *decimal.Decimal `json:"target_sales"`
	ChannelMapping ChannelMapping   `json:"channel_mapping"`
}
