package tokenout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SynapticNetworks/hippocampal-engine/tokenio"
)

func tokens() []tokenio.Token {
	return []tokenio.Token{
		{ID: 0, Text: "cat", Embedding: []uint8{255, 0}},
		{ID: 1, Text: "dog", Embedding: []uint8{0, 255}},
	}
}

func TestTokenOutput_BestTokenWithNoActivityReturnsFalse(t *testing.T) {
	var out TokenOutput
	out.SetTokens(tokens())

	_, ok := out.BestToken()
	assert.False(t, ok)
}

func TestTokenOutput_SpikeActivatesMatchingToken(t *testing.T) {
	var out TokenOutput
	out.SetTokens(tokens())

	out.Spike([]uint16{0})
	out.Spike([]uint16{0})

	best, ok := out.BestToken()
	require.True(t, ok)
	assert.Equal(t, "cat", best.Text)
}

func TestTokenOutput_ResetClearsActivation(t *testing.T) {
	var out TokenOutput
	out.SetTokens(tokens())

	out.Spike([]uint16{0})
	out.Reset()

	_, ok := out.BestToken()
	assert.False(t, ok)
}

func TestTokenOutput_TieKeepsFirstToken(t *testing.T) {
	var out TokenOutput
	out.SetTokens([]tokenio.Token{
		{ID: 0, Text: "first", Embedding: []uint8{128}},
		{ID: 1, Text: "second", Embedding: []uint8{128}},
	})

	out.Spike([]uint16{0})

	best, ok := out.BestToken()
	require.True(t, ok)
	assert.Equal(t, "first", best.Text)
}
