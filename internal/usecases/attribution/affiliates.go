package attribution

// AffiliateTable associa códigos de afiliado a canais.
// É independente do mapeamento de contas de anúncio.
type AffiliateTable struct {
	channels       map[string]string
	defaultChannel string
}

// DefaultAffiliates é a tabela usada quando nada é configurado
func DefaultAffiliates() map[string]string {
	return map[string]string{
		"L8UTEDVTI0": "instagram",
		"17QB25AKRL": "grupos",
	}
}

func NewAffiliateTable(channels map[string]string, defaultChannel string) AffiliateTable {
	table := make(map[string]string, len(channels))
	for code, channel := range channels {
		table[code] = channel
	}
	return AffiliateTable{channels: table, defaultChannel: defaultChannel}
}

// ChannelFor retorna o canal do afiliado; códigos desconhecidos vão para o canal padrão
func (t AffiliateTable) ChannelFor(code string) string {
	if channel, ok := t.channels[code]; ok {
		return channel
	}
	return t.defaultChannel
}

// Channels retorna os canais que aparecem na tabela
func (t AffiliateTable) Channels() []string {
	seen := make(map[string]struct{})
	channels := make([]string, 0, len(t.channels))
	for _, channel := range t.channels {
		if _, ok := seen[channel]; ok {
			continue
		}
		seen[channel] = struct{}{}
		channels = append(channels, channel)
	}
	return channels
}

// Entries devolve uma cópia da tabela
func (t AffiliateTable) Entries() map[string]string {
	entries := make(map[string]string, len(t.channels))
	for code, channel := range t.channels {
		entries[code] = channel
	}
	return entries
}

func (t AffiliateTable) DefaultChannel() string {
	return t.defaultChannel
}
