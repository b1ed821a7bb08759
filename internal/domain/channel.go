package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

const (
	ChannelOverall   = "geral"
	ChannelInstagram = "instagram"
	ChannelGroups    = "grupos"
)

// ChannelMapping associa cada canal às contas de anúncio que pertencem a ele
type ChannelMapping map[string][]string

// ChannelOf retorna o canal de uma conta. A busca percorre os canais em ordem
// alfabética para que uma configuração duplicada seja resolvida sempre igual.
func (m ChannelMapping) ChannelOf(accountID string) (string, bool) {
	for _, channel := range m.Channels() {
		for _, id := range m[channel] {
			if id == accountID {
				return channel, true
			}
		}
	}
	return "", false
}

// Channels retorna os nomes dos canais ordenados
func (m ChannelMapping) Channels() []string {
	channels := make([]string, 0, len(m))
	for channel := range m {
		channels = append(channels, channel)
	}
	sort.Strings(channels)
	return channels
}

// Accounts retorna todas as contas mapeadas, sem repetição
func (m ChannelMapping) Accounts() []string {
	seen := make(map[string]struct{})
	accounts := make([]string, 0)
	for _, channel := range m.Channels() {
		for _, id := range m[channel] {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			accounts = append(accounts, id)
		}
	}
	return accounts
}

// Clone cria uma cópia independente do mapeamento
func (m ChannelMapping) Clone() ChannelMapping {
	clone := make(ChannelMapping, len(m))
	for channel, accounts := range m {
		clone[channel] = append([]string{}, accounts...)
	}
	return clone
}

// EnsureChannels garante a presença das chaves informadas
func (m ChannelMapping) EnsureChannels(channels ...string) ChannelMapping {
	for _, channel := range channels {
		if _, ok := m[channel]; !ok {
			m[channel] = []string{}
		}
	}
	return m
}

// ChannelSummary é o resumo financeiro de um canal em uma coleta
type ChannelSummary struct {
	Sales  decimal.Decimal `json:"sales"`
	Spend  decimal.Decimal `json:"spend"`
	Budget decimal.Decimal `json:"budget"`
	ROI    ROI             `json:"roi"`
	Profit decimal.Decimal `json:"profit"`
	Margin decimal.Decimal `json:"margin"`
}

// EmptyChannelSummary retorna um canal zerado
func EmptyChannelSummary() ChannelSummary {
	return ChannelSummary{
		Sales:  decimal.Zero,
		Spend:  decimal.Zero,
		Budget: decimal.Zero,
		ROI:    NewROI(decimal.Zero),
		Profit: decimal.Zero,
		Margin: decimal.Zero,
	}
}
