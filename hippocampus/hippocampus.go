/*
Package hippocampus implements the engine's online learning algorithm: a
per-channel population of candidate-neuron builders that observe recent
input statistics, fire on input/output coincidence, and promote themselves
into the cortex once their negative-weight baseline is believed correct.

# Why this learns

Each channel's cumulative input is a fading histogram of its own recent
firing density. When a candidateChannel reaches threshold under its current
negative-weight regime, that means the present mix of recent input activity
is strong enough to trigger it. Every actually-observed output on that
channel depresses its negative-weight controller — making the channel
harder to trigger from pure correlation next time — while every input
raises it back. The negative weight at the moment of promotion is exactly
the baseline suppression needed to keep the new neuron silent on average
traffic; see the cap documented on maxNegativeWeight.

Promotion snapshots the current cumulative-input weights plus that negative
weight as an immutable neuron, handed to the cortex — a detector for
whatever recent-input pattern was present at that instant.

# Input/output channel space coincidence

ReceiveInput indexes channels[inputChannel] directly — this is only
meaningful because, in every configuration this engine is used with, the
input and output channel spaces are the same size and numbered the same
way (spec.md §9's open question). This package keeps that assumption
rather than generalizing it away.
*/
package hippocampus

import (
	"github.com/SynapticNetworks/hippocampal-engine/cortex"
	"github.com/SynapticNetworks/hippocampal-engine/decay"
	"github.com/SynapticNetworks/hippocampal-engine/params"
)

// Hippocampus holds, for the lifetime of a Brain, one cumulative-input
// decaying value and one candidate-neuron builder per channel.
//
// A Hippocampus is not safe for concurrent use.
type Hippocampus struct {
	numChannels      uint16
	cumulativeInputs []*decay.Value
	channels         []*candidateChannel
}

// New builds a Hippocampus for numChannels channels, using p's decay and
// negative-weight tuning.
func New(numChannels uint16, p params.Params) *Hippocampus {
	h := &Hippocampus{
		numChannels:      numChannels,
		cumulativeInputs: make([]*decay.Value, numChannels),
		channels:         make([]*candidateChannel, numChannels),
	}
	for i := uint16(0); i < numChannels; i++ {
		h.cumulativeInputs[i] = decay.NewValue(p.DecayHalfLife, p.SpikeFraction)
		h.channels[i] = newCandidateChannel(i, p.NegativeWeightHalfLife, p.NegativeSpikeFraction)
	}
	return h
}

// ReceiveInput processes a spike on inputChannel at timestamp: it broadcasts
// the channel's current cumulative-input weight to every candidate, any
// candidate that fires appends its id to outputs and, if ready, is
// promoted into cortex as a new neuron (and then reset); it then spikes the
// cumulative input for inputChannel and forwards the event to the
// like-numbered candidate channel's own receiveInput.
func (h *Hippocampus) ReceiveInput(
	timestamp float32,
	inputChannel uint16,
	p params.Params,
	cx *cortex.Cortex,
	outputs *[]uint16,
) {
	weightedInput := h.cumulativeInputs[inputChannel].GetWeight(timestamp)
	if weightedInput > 0 {
		for _, c := range h.channels {
			if !c.activate(timestamp, weightedInput) {
				continue
			}
			*outputs = append(*outputs, c.id)
			if !c.shouldCreateNeuron() {
				continue
			}
			cx.AddNeuron(c.id, h.promotionWeights(timestamp, c), p)
			c.reset()
		}
	}

	h.cumulativeInputs[inputChannel].Spike(timestamp)
	h.channels[inputChannel].receiveInput(timestamp)
}

// promotionWeights snapshots, at timestamp, the weight vector a candidate
// should be promoted with: each channel's current cumulative-input weight
// plus the candidate's current negative weight (spec.md property 8).
func (h *Hippocampus) promotionWeights(timestamp float32, c *candidateChannel) []int8 {
	negativeWeight := c.calculateNegativeWeight(timestamp)
	weights := make([]int8, h.numChannels)
	for i, cumulative := range h.cumulativeInputs {
		weights[i] = cumulative.GetWeight(timestamp) + negativeWeight
	}
	return weights
}

// ReceiveOutput forwards an observed output on outputChannel to that
// channel's candidate builder, for reinforcement.
func (h *Hippocampus) ReceiveOutput(timestamp float32, outputChannel uint16) {
	h.channels[outputChannel].receiveOutput(timestamp)
}

// Reset zeros every cumulative input and candidate channel.
func (h *Hippocampus) Reset() {
	for _, v := range h.cumulativeInputs {
		v.Reset()
	}
	for _, c := range h.channels {
		c.reset()
	}
}
