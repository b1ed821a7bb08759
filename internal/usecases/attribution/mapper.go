package attribution

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roi-collector-api/internal/domain"
	"github.com/vfg2006/roi-collector-api/internal/metrics"
)

// MappingSource lê o mapeamento de canais vigente
type MappingSource interface {
	ListActive(ctx context.Context) (domain.ChannelMapping, error)
}

// Resolution é o mapeamento usado em uma coleta e a sua origem
type Resolution struct {
	Mapping domain.ChannelMapping
	Source  domain.MappingSource
}

// IsFallback indica se o mapeamento fixo foi usado
func (r Resolution) IsFallback() bool {
	return r.Source == domain.MappingSourceFallback
}

// FallbackMapping é usado quando a configuração não pode ser lida
func FallbackMapping() domain.ChannelMapping {
	return domain.ChannelMapping{
		domain.ChannelOverall: {},
		domain.ChannelInstagram: {
			"act_2067257390316380",
			"act_1391112848236399",
			"act_406219475582745",
			"act_790223756353632",
		},
		domain.ChannelGroups: {},
	}
}

type Mapper struct {
	source     MappingSource
	sourceKind domain.MappingSource
	channels   []string
}

// NewMapper cria o mapper. channels são as chaves sempre presentes no resultado.
func NewMapper(source MappingSource, sourceKind domain.MappingSource, channels []string) *Mapper {
	return &Mapper{
		source:     source,
		sourceKind: sourceKind,
		channels:   channels,
	}
}

// Resolve lê o mapeamento atual. Nunca falha: sem configuração, devolve o mapeamento fixo.
func (m *Mapper) Resolve(ctx context.Context) Resolution {
	mapping, err := m.load(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Mapeamento de canais indisponível, usando mapeamento padrão")
		metrics.MappingFallbackTotal.Inc()

		return Resolution{
			Mapping: FallbackMapping().EnsureChannels(m.channels...),
			Source:  domain.MappingSourceFallback,
		}
	}

	return Resolution{
		Mapping: mapping.Clone().EnsureChannels(m.channels...),
		Source:  m.sourceKind,
	}
}

func (m *Mapper) load(ctx context.Context) (domain.ChannelMapping, error) {
	if m.source == nil {
		return nil, domain.ErrConfigurationMissing
	}

	mapping, err := m.source.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigurationMissing, err)
	}

	if mapping == nil {
		return nil, domain.ErrConfigurationMissing
	}

	return mapping, nil
}
