/*
Package engine composes the cortex and hippocampus into the single
entry point an embedder drives: Brain. A Brain routes every spike
through its cortex first, then — when asked — teaches its hippocampus
about the event and every output the cortex and hippocampus produced.
*/
package engine

import (
	"github.com/SynapticNetworks/hippocampal-engine/cortex"
	"github.com/SynapticNetworks/hippocampal-engine/hippocampus"
	"github.com/SynapticNetworks/hippocampal-engine/params"
)

// Brain is the engine's top-level composition: a fixed-weight inference
// population (Cortex) alongside an online learner (Hippocampus) that
// proposes new neurons for it.
//
// A Brain is not safe for concurrent use.
type Brain struct {
	params      params.Params
	cortex      cortex.Cortex
	hippocampus *hippocampus.Hippocampus
}

// New builds a Brain with numChannels input/output channels, tuned by p.
func New(numChannels uint16, p params.Params) *Brain {
	return &Brain{
		params:      p,
		hippocampus: hippocampus.New(numChannels, p),
	}
}

// Reserve pre-sizes the cortex's backing storage for numNeurons.
func (b *Brain) Reserve(numNeurons int) {
	b.cortex.Reserve(numNeurons)
}

// Spike delivers an event on inChannel at timestamp. It is always routed
// through the cortex first; outputs is appended with every channel that
// fired. When useHippocampus is true, the hippocampus also observes the
// input (possibly appending its own fires to outputs and promoting a
// neuron into the cortex), and is then taught that every channel in
// outputs, from the cortex and the hippocampus alike, coincided with it —
// in that exact order, so a neuron promoted mid-call never sees the event
// that created it.
func (b *Brain) Spike(timestamp float32, inChannel uint16, useHippocampus bool, outputs *[]uint16) {
	b.cortex.Spike(timestamp, inChannel, outputs)

	if !useHippocampus {
		return
	}

	b.hippocampus.ReceiveInput(timestamp, inChannel, b.params, &b.cortex, outputs)

	for _, outChannel := range *outputs {
		b.hippocampus.ReceiveOutput(timestamp, outChannel)
	}
}

// Reset zeros every neuron's activation state and every hippocampus
// candidate's learning state, without discarding any promoted neuron.
func (b *Brain) Reset() {
	b.cortex.Reset()
	b.hippocampus.Reset()
}

// NeuronCount returns the number of neurons promoted into the cortex so far.
func (b *Brain) NeuronCount() int {
	return b.cortex.NeuronCount()
}
