package attribution

import (
	"context"
	"fmt"
	"os"

	"github.com/vfg2006/roi-collector-api/internal/domain"
	"gopkg.in/yaml.v3"
)

// mappingFile é o formato do arquivo YAML:
//
//	channels:
//	  instagram:
//	    - act_2067257390316380
//	  grupos: []
type mappingFile struct {
	Channels map[string][]string `yaml:"channels"`
}

// LoadMappingFile lê o mapeamento de canais de um arquivo YAML
func LoadMappingFile(path string) (domain.ChannelMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo de mapeamento: %w", err)
	}

	return ParseMapping(data)
}

// ParseMapping interpreta o conteúdo YAML do mapeamento
func ParseMapping(data []byte) (domain.ChannelMapping, error) {
	var file mappingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("erro ao interpretar arquivo de mapeamento: %w", err)
	}

	if len(file.Channels) == 0 {
		return nil, fmt.Errorf("arquivo de mapeamento sem canais")
	}

	mapping := make(domain.ChannelMapping, len(file.Channels))
	for channel, accounts := range file.Channels {
		if accounts == nil {
			accounts = []string{}
		}
		mapping[channel] = accounts
	}

	return mapping, nil
}

// FileSource relê o arquivo a cada coleta
type FileSource struct {
	Path string
}

func (f FileSource) ListActive(_ context.Context) (domain.ChannelMapping, error) {
	return LoadMappingFile(f.Path)
}
