/*
Package tokenout decodes a Brain's output channels back into tokens: one
activation accumulator per token, driven by the token's own embedding,
from which the best-matching token can be read off after each step.
*/
package tokenout

import (
	"github.com/SynapticNetworks/hippocampal-engine/tokenio"
)

// outputState tracks one token's activation level, built from the
// token's embedding normalized to [0, 1).
type outputState struct {
	token            tokenio.Token
	embeddingWeights []float32
	activationLevel  float32
}

func newOutputState(token tokenio.Token) *outputState {
	weights := make([]float32, len(token.Embedding))
	for i, b := range token.Embedding {
		weights[i] = float32(b) / 256.0
	}
	return &outputState{token: token, embeddingWeights: weights}
}

func (o *outputState) spike(channel uint16) {
	if int(channel) >= len(o.embeddingWeights) {
		return
	}
	o.activationLevel += o.embeddingWeights[channel]
}

func (o *outputState) reset() {
	o.activationLevel = 0
}

// TokenOutput decodes a stream of output-channel spikes into the token
// whose embedding they best match.
//
// A TokenOutput is not safe for concurrent use.
type TokenOutput struct {
	states []*outputState
}

// SetTokens installs the set of tokens TokenOutput can decode to. It
// replaces any tokens set by a previous call.
func (o *TokenOutput) SetTokens(tokens []tokenio.Token) {
	o.states = make([]*outputState, len(tokens))
	for i, token := range tokens {
		o.states[i] = newOutputState(token)
	}
}

// Spike applies an output step's fired channels to every token's
// activation level.
func (o *TokenOutput) Spike(channels []uint16) {
	for _, channel := range channels {
		for _, state := range o.states {
			state.spike(channel)
		}
	}
}

// BestToken returns the token with the highest activation level and true,
// or false if no token's activation level is strictly greater than zero.
func (o *TokenOutput) BestToken() (tokenio.Token, bool) {
	var best *outputState
	for _, state := range o.states {
		if state.activationLevel > 0 && (best == nil || state.activationLevel > best.activationLevel) {
			best = state
		}
	}
	if best == nil {
		return tokenio.Token{}, false
	}
	return best.token, true
}

// Reset zeros every token's activation level.
func (o *TokenOutput) Reset() {
	for _, state := range o.states {
		state.reset()
	}
}
