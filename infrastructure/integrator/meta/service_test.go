package meta

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/roi-collector-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/roi-collector-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/roi-collector-api/internal/config"
	"github.com/vfg2006/roi-collector-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Collection: config.Collection{MaxConcurrent: 2, FetchTimeout: time.Second},
	}
}

func TestMetaIntegrator_GetAdSpend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), mockClient)

	tests := []struct {
		name     string
		accounts []string
		setup    func()
		validate func(t *testing.T, records []domain.RawAdSpendRecord, err error)
	}{
		{
			name:     "Gasto e orçamento de campanhas e conjuntos",
			accounts: []string{"act_1"},
			setup: func() {
				mockClient.EXPECT().
					GetAccountSpend(gomock.Any(), "act_1").
					Return(&metadomain.SpendInsight{AccountID: "act_1", Spend: "1234.56"}, nil)

				mockClient.EXPECT().
					GetActiveCampaigns(gomock.Any(), "act_1").
					Return([]metadomain.Campaign{
						{ID: "c1", DailyBudget: "50000"},
						{ID: "c2", LifetimeBudget: "300000"},
						{ID: "c3"},
					}, nil)

				mockClient.EXPECT().
					GetActiveAdSets(gomock.Any(), "c3").
					Return([]metadomain.AdSet{
						{ID: "s1", DailyBudget: "2000"},
						{ID: "s2", DailyBudget: "abc"},
					}, nil)
			},
			validate: func(t *testing.T, records []domain.RawAdSpendRecord, err error) {
				require.NoError(t, err)
				require.Len(t, records, 1)
				assert.Equal(t, "act_1", records[0].AccountID)
				assert.True(t, decimal.RequireFromString("1234.56").Equal(records[0].Spend))
				// 500 + 3000/30 + 20
				assert.True(t, decimal.NewFromInt(620).Equal(records[0].Budget), records[0].Budget.String())
			},
		},
		{
			name:     "Falha no orçamento zera apenas o orçamento",
			accounts: []string{"act_2"},
			setup: func() {
				mockClient.EXPECT().
					GetAccountSpend(gomock.Any(), "act_2").
					Return(&metadomain.SpendInsight{Spend: "R$ 10"}, nil)

				mockClient.EXPECT().
					GetActiveCampaigns(gomock.Any(), "act_2").
					Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, records []domain.RawAdSpendRecord, err error) {
				require.NoError(t, err)
				assert.True(t, decimal.NewFromInt(10).Equal(records[0].Spend))
				assert.True(t, records[0].Budget.IsZero())
			},
		},
		{
			name:     "Gasto ilegível vira zero",
			accounts: []string{"act_3"},
			setup: func() {
				mockClient.EXPECT().
					GetAccountSpend(gomock.Any(), "act_3").
					Return(&metadomain.SpendInsight{Spend: "n/a"}, nil)

				mockClient.EXPECT().
					GetActiveCampaigns(gomock.Any(), "act_3").
					Return([]metadomain.Campaign{}, nil)
			},
			validate: func(t *testing.T, records []domain.RawAdSpendRecord, err error) {
				require.NoError(t, err)
				assert.True(t, records[0].Spend.IsZero())
			},
		},
		{
			name:     "Falha no gasto torna a fonte indisponível",
			accounts: []string{"act_4"},
			setup: func() {
				mockClient.EXPECT().
					GetAccountSpend(gomock.Any(), "act_4").
					Return(nil, &metadomain.GraphError{StatusCode: 400, Details: metadomain.ErrorDetails{Code: 190}})
			},
			validate: func(t *testing.T, records []domain.RawAdSpendRecord, err error) {
				require.Error(t, err)
				assert.Nil(t, records)
				assert.True(t, domain.IsSourceUnavailable(err))

				var sourceErr *domain.SourceError
				require.True(t, errors.As(err, &sourceErr))
				assert.Equal(t, SourceName, sourceErr.Source)

				var graphErr *metadomain.GraphError
				require.True(t, errors.As(err, &graphErr))
				assert.True(t, graphErr.TokenExpired())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			records, err := integrator.GetAdSpend(context.Background(), tt.accounts)
			tt.validate(t, records, err)
		})
	}
}

func TestMetaIntegrator_GetAdSpendKeepsOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), mockClient)

	accounts := []string{"act_a", "act_b", "act_c", "act_d"}
	for _, id := range accounts {
		mockClient.EXPECT().
			GetAccountSpend(gomock.Any(), id).
			Return(&metadomain.SpendInsight{AccountID: id, Spend: "1"}, nil)
		mockClient.EXPECT().
			GetActiveCampaigns(gomock.Any(), id).
			Return(nil, nil)
	}

	records, err := integrator.GetAdSpend(context.Background(), accounts)
	require.NoError(t, err)
	require.Len(t, records, 4)
	for i, id := range accounts {
		assert.Equal(t, id, records[i].AccountID)
	}
}
