package configuring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/roi-collector-api/infrastructure/repository/mocks"
	"github.com/vfg2006/roi-collector-api/internal/config"
	"github.com/vfg2006/roi-collector-api/internal/domain"
	"github.com/vfg2006/roi-collector-api/internal/usecases/attribution"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 7, 10, 15, 0, 0, 0, time.UTC)

type staticResolver attribution.Resolution

func (r staticResolver) Resolve(context.Context) attribution.Resolution {
	return attribution.Resolution(r)
}

type fixture struct {
	campaigns *mocks.MockCampaignRepository
	mappings  *mocks.MockChannelMappingRepository
	service   *Service
}

func newFixture(t *testing.T, mappingSource string) *fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{
		SalesPlatform:  config.SalesPlatform{ProductID: "p1"},
		Meta:           config.Meta{AdAccounts: []string{"act_1", "act_2"}},
		Collection:     config.Collection{Channels: []string{"instagram", "grupos", "geral"}},
		CollectionSync: config.CollectionSync{IntervalMinutes: 30},
		Mapping:        config.Mapping{Source: mappingSource},
	}

	resolver := staticResolver{
		Mapping: domain.ChannelMapping{"instagram": {"act_1"}, "grupos": {}, "geral": {}},
		Source:  domain.MappingSourceDatabase,
	}

	f := &fixture{
		campaigns: mocks.NewMockCampaignRepository(ctrl),
		mappings:  mocks.NewMockChannelMappingRepository(ctrl),
	}
	f.service = NewService(
		cfg,
		f.campaigns,
		f.mappings,
		resolver,
		attribution.NewAffiliateTable(attribution.DefaultAffiliates(), "instagram"),
	).WithClock(func() time.Time { return fixedNow })

	return f
}

func TestService_GetConfig(t *testing.T) {
	t.Run("Valores padrão sem campanha salva", func(t *testing.T) {
		f := newFixture(t, "database")
		f.campaigns.EXPECT().Get(gomock.Any(), "p1").Return(nil, nil)

		settings, err := f.service.GetConfig(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "p1", settings.ProductID)
		assert.Equal(t, DefaultCampaignName, settings.Name)
		assert.True(t, decimal.NewFromInt(2).Equal(settings.ROIGoal))
		assert.True(t, decimal.NewFromInt(10000).Equal(settings.DailyBudget))
		assert.True(t, decimal.NewFromInt(30000).Equal(settings.TargetSales))
		assert.Equal(t, 30, settings.CollectionInterval)
		assert.Equal(t, []string{"act_1", "act_2"}, settings.AdAccounts)
		assert.Equal(t, []string{"act_1"}, settings.ChannelMapping[domain.ChannelInstagram])
		assert.Equal(t, domain.MappingSourceDatabase, settings.MappingSource)
		assert.Equal(t, "grupos", settings.Affiliates["17QB25AKRL"])
	})

	t.Run("Campanha salva", func(t *testing.T) {
		f := newFixture(t, "database")
		f.campaigns.EXPECT().Get(gomock.Any(), "p1").Return(&domain.CampaignSettings{
			ProductID: "p1",
			Name:      "Ação de julho",
			ROIGoal:   decimal.RequireFromString("3.5"),
		}, nil)

		settings, err := f.service.GetConfig(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Ação de julho", settings.Name)
	})

	t.Run("Erro no banco", func(t *testing.T) {
		f := newFixture(t, "database")
		f.campaigns.EXPECT().Get(gomock.Any(), "p1").Return(nil, errors.New("conexão perdida"))

		settings, err := f.service.GetConfig(context.Background())
		assert.Error(t, err)
		assert.Nil(t, settings)
	})
}

func TestService_UpdateConfig(t *testing.T) {
	name := "Ação de agosto"
	goal := decimal.RequireFromString("2.5")
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name          string
		mappingSource string
		req           domain.UpdateSettingsRequest
		setup         func(f *fixture)
		wantErr       error
	}{
		{
			name: "Atualiza metas a partir dos valores padrão",
			req:  domain.UpdateSettingsRequest{Name: &name, ROIGoal: &goal},
			setup: func(f *fixture) {
				f.campaigns.EXPECT().Get(gomock.Any(), "p1").Return(nil, nil)
				f.campaigns.EXPECT().Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, settings *domain.CampaignSettings) error {
						assert.Equal(t, name, settings.Name)
						assert.True(t, goal.Equal(settings.ROIGoal))
						assert.True(t, DefaultDailyBudget.Equal(settings.DailyBudget))
						assert.Equal(t, fixedNow, settings.UpdatedAt)
						return nil
					})
				f.campaigns.EXPECT().Get(gomock.Any(), "p1").Return(&domain.CampaignSettings{ProductID: "p1", Name: name}, nil)
			},
		},
		{
			name: "Substitui o mapeamento",
			req: domain.UpdateSettingsRequest{
				ChannelMapping: domain.ChannelMapping{
					"instagram": {" act_1 ", "act_3", ""},
					"grupos":    {"act_2"},
				},
			},
			setup: func(f *fixture) {
				f.mappings.EXPECT().ReplaceAll(gomock.Any(), domain.ChannelMapping{
					"instagram": {"act_1", "act_3"},
					"grupos":    {"act_2"},
				}).Return(nil)
				f.campaigns.EXPECT().Get(gomock.Any(), "p1").Return(nil, nil)
			},
		},
		{
			name:    "Canal desconhecido",
			req:     domain.UpdateSettingsRequest{ChannelMapping: domain.ChannelMapping{"tiktok": {"act_1"}}},
			wantErr: domain.ErrUnknownChannel,
		},
		{
			name: "Conta em dois canais",
			req: domain.UpdateSettingsRequest{ChannelMapping: domain.ChannelMapping{
				"instagram": {"act_1"},
				"grupos":    {"act_1"},
			}},
			wantErr: domain.ErrInvalidRequest,
		},
		{
			name:          "Mapeamento lido de arquivo",
			mappingSource: "file",
			req:           domain.UpdateSettingsRequest{ChannelMapping: domain.ChannelMapping{"instagram": {"act_1"}}},
			wantErr:       ErrMappingReadOnly,
		},
		{
			name:    "Outro produto",
			req:     domain.UpdateSettingsRequest{ProductID: "p2", Name: &name},
			wantErr: domain.ErrInvalidRequest,
		},
		{
			name: "Meta negativa",
			req:  domain.UpdateSettingsRequest{DailyBudget: &negative},
			setup: func(f *fixture) {
				f.campaigns.EXPECT().Get(gomock.Any(), "p1").Return(nil, nil)
			},
			wantErr: domain.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := tt.mappingSource
			if source == "" {
				source = "database"
			}
			f := newFixture(t, source)
			if tt.setup != nil {
				tt.setup(f)
			}

			settings, err := f.service.UpdateConfig(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, settings)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, settings)
		})
	}
}
