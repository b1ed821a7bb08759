package metadomain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaign_DailyBudgetValue(t *testing.T) {
	tests := []struct {
		name      string
		campaign  Campaign
		expected  string
		hasBudget bool
		wantErr   bool
	}{
		{name: "Orçamento diário em centavos", campaign: Campaign{DailyBudget: "15000"}, expected: "150", hasBudget: true},
		{name: "Orçamento vitalício dividido por 30", campaign: Campaign{LifetimeBudget: "900000"}, expected: "300", hasBudget: true},
		{name: "Diário tem prioridade", campaign: Campaign{DailyBudget: "100", LifetimeBudget: "900000"}, expected: "1", hasBudget: true},
		{name: "Sem orçamento", campaign: Campaign{}, expected: "0", hasBudget: false},
		{name: "Orçamento ilegível", campaign: Campaign{DailyBudget: "abc"}, hasBudget: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hasBudget, tt.campaign.HasBudget())

			value, err := tt.campaign.DailyBudgetValue()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(value), value.String())
		})
	}
}
