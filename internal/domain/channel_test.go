package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelMapping_ChannelOf(t *testing.T) {
	mapping := ChannelMapping{
		ChannelInstagram: {"act_1", "act_2"},
		ChannelGroups:    {"act_3", "act_2"},
	}

	channel, ok := mapping.ChannelOf("act_1")
	assert.True(t, ok)
	assert.Equal(t, ChannelInstagram, channel)

	// Conta duplicada sempre resolve para o primeiro canal em ordem alfabética
	channel, ok = mapping.ChannelOf("act_2")
	assert.True(t, ok)
	assert.Equal(t, ChannelGroups, channel)

	_, ok = mapping.ChannelOf("act_9")
	assert.False(t, ok)
}

func TestChannelMapping_AccountsAndClone(t *testing.T) {
	mapping := ChannelMapping{
		ChannelInstagram: {"act_1", "act_2"},
		ChannelGroups:    {"act_2"},
	}

	assert.Equal(t, []string{"act_2", "act_1"}, mapping.Accounts())

	clone := mapping.Clone()
	clone[ChannelInstagram][0] = "changed"
	assert.Equal(t, "act_1", mapping[ChannelInstagram][0])

	mapping.EnsureChannels(ChannelOverall)
	assert.Equal(t, []string{}, mapping[ChannelOverall])
	assert.Equal(t, []string{ChannelOverall, ChannelGroups, ChannelInstagram}, mapping.Channels())
}
