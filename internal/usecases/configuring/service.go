package configuring

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roi-collector-api/infrastructure/repository"
	"github.com/vfg2006/roi-collector-api/internal/config"
	"github.com/vfg2006/roi-collector-api/internal/domain"
	"github.com/vfg2006/roi-collector-api/internal/usecases/attribution"
)

const DefaultCampaignName = "Sorteio 200mil"

var (
	DefaultROIGoal     = decimal.RequireFromString("2.0")
	DefaultDailyBudget = decimal.NewFromInt(10000)
	DefaultTargetSales = decimal.NewFromInt(30000)
)

// ErrMappingReadOnly indica que o mapeamento vem de arquivo e não pode ser alterado pela API
var ErrMappingReadOnly = errors.New("mapeamento de canais é lido de arquivo")

type MappingResolver interface {
	Resolve(ctx context.Context) attribution.Resolution
}

type Service struct {
	cfg        *config.Config
	campaigns  repository.CampaignRepository
	mappings   repository.ChannelMappingRepository
	mapper     MappingResolver
	affiliates attribution.AffiliateTable
	now        func() time.Time
}

func NewService(
	cfg *config.Config,
	campaigns repository.CampaignRepository,
	mappings repository.ChannelMappingRepository,
	mapper MappingResolver,
	affiliates attribution.AffiliateTable,
) *Service {
	return &Service{
		cfg:        cfg,
		campaigns:  campaigns,
		mappings:   mappings,
		mapper:     mapper,
		affiliates: affiliates,
		now:        time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// DefaultCampaignSettings são as metas usadas enquanto nada foi salvo
func DefaultCampaignSettings(productID string) domain.CampaignSettings {
	return domain.CampaignSettings{
		ProductID:   productID,
		Name:        DefaultCampaignName,
		ROIGoal:     DefaultROIGoal,
		DailyBudget: DefaultDailyBudget,
		TargetSales: DefaultTargetSales,
	}
}

// GetConfig retorna a configuração atual, com os valores padrão onde nada foi salvo
func (s *Service) GetConfig(ctx context.Context) (*domain.AppSettings, error) {
	productID := s.cfg.SalesPlatform.ProductID

	campaign, err := s.campaigns.Get(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar configuração da campanha")
	}
	if campaign == nil {
		defaults := DefaultCampaignSettings(productID)
		campaign = &defaults
	}

	resolution := s.mapper.Resolve(ctx)

	return &domain.AppSettings{
		CampaignSettings:   *campaign,
		CollectionInterval: s.cfg.CollectionSync.IntervalMinutes,
		AdAccounts:         s.cfg.Meta.AdAccounts,
		ChannelMapping:     resolution.Mapping,
		MappingSource:      resolution.Source,
		Affiliates:         s.affiliates.Entries(),
	}, nil
}

// UpdateConfig salva as metas da campanha e, se enviado, substitui o mapeamento de canais
func (s *Service) UpdateConfig(ctx context.Context, req domain.UpdateSettingsRequest) (*domain.AppSettings, error) {
	productID := s.cfg.SalesPlatform.ProductID
	if req.ProductID != "" && req.ProductID != productID {
		return nil, errors.Wrapf(domain.ErrInvalidRequest, "produto %q não é acompanhado por este serviço", req.ProductID)
	}

	if req.ChannelMapping != nil {
		if err := s.ImportMapping(ctx, req.ChannelMapping); err != nil {
			return nil, err
		}
	}

	if req.Name != nil || req.ROIGoal != nil || req.DailyBudget != nil || req.TargetSales != nil {
		if err := s.updateCampaign(ctx, productID, req); err != nil {
			return nil, err
		}
	}

	return s.GetConfig(ctx)
}

func (s *Service) updateCampaign(ctx context.Context, productID string, req domain.UpdateSettingsRequest) error {
	current, err := s.campaigns.Get(ctx, productID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar configuração da campanha")
	}

	settings := DefaultCampaignSettings(productID)
	if current != nil {
		settings = *current
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return errors.Wrap(domain.ErrInvalidRequest, "campaign_name não pode ser vazio")
		}
		settings.Name = name
	}

	values := []struct {
		field string
		value *decimal.Decimal
		dest  *decimal.Decimal
	}{
		{"roi_goal", req.ROIGoal, &settings.ROIGoal},
		{"daily_budget", req.DailyBudget, &settings.DailyBudget},
		{"target_sales", req.TargetSales, &settings.TargetSales},
	}
	for _, v := range values {
		if v.value == nil {
			continue
		}
		if v.value.IsNegative() {
			return errors.Wrapf(domain.ErrInvalidRequest, "%s não pode ser negativo", v.field)
		}
		*v.dest = *v.value
	}

	settings.UpdatedAt = s.now().UTC()

	if err := s.campaigns.Upsert(ctx, &settings); err != nil {
		return errors.Wrap(err, "erro ao salvar configuração da campanha")
	}

	logrus.WithField("product_id", productID).Info("Configuração da campanha atualizada")

	return nil
}

// ImportMapping valida e substitui o mapeamento de canais no banco
func (s *Service) ImportMapping(ctx context.Context, mapping domain.ChannelMapping) error {
	if s.cfg.Mapping.Source == string(domain.MappingSourceFile) {
		return ErrMappingReadOnly
	}

	clean, err := s.validateMapping(mapping)
	if err != nil {
		return err
	}

	if err := s.mappings.ReplaceAll(ctx, clean); err != nil {
		return errors.Wrap(err, "erro ao salvar mapeamento de canais")
	}

	logrus.WithFields(logrus.Fields{
		"channels": len(clean),
		"accounts": len(clean.Accounts()),
	}).Info("Mapeamento de canais substituído")

	return nil
}

// validateMapping confere os canais e remove contas vazias ou repetidas
func (s *Service) validateMapping(mapping domain.ChannelMapping) (domain.ChannelMapping, error) {
	clean := make(domain.ChannelMapping, len(mapping))
	owner := make(map[string]string)

	for _, channel := range mapping.Channels() {
		name := strings.TrimSpace(channel)
		if !s.cfg.Collection.HasChannel(name) {
			return nil, errors.Wrapf(domain.ErrUnknownChannel, "canal %q", channel)
		}

		accounts := make([]string, 0, len(mapping[channel]))
		for _, id := range mapping[channel] {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			if previous, ok := owner[id]; ok {
				if previous != name {
					return nil, errors.Wrapf(domain.ErrInvalidRequest, "conta %s mapeada para %s e %s", id, previous, name)
				}
				continue
			}
			owner[id] = name
			accounts = append(accounts, id)
		}

		clean[name] = append(clean[name], accounts...)
	}

	return clean, nil
}
