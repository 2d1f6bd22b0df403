/*
Package cortex holds the engine's unordered-in-name-only collection of
inference neurons: an append-only, insertion-ordered list that broadcasts
each input spike to every neuron and collects whichever ones fire.

There is no deduplication across neurons — two neurons sharing an output
channel can both fire on the same event, and both fires are reported.
*/
package cortex

import (
	"github.com/SynapticNetworks/hippocampal-engine/neuron"
	"github.com/SynapticNetworks/hippocampal-engine/params"
)

// Cortex is an append-only, insertion-ordered collection of neurons.
//
// A Cortex is not safe for concurrent use.
type Cortex struct {
	neurons []*neuron.Neuron
}

// Reserve pre-sizes the cortex's backing storage for numNeurons. It is a
// capacity hint only — it never reorders existing neurons.
func (c *Cortex) Reserve(numNeurons int) {
	if cap(c.neurons) >= numNeurons {
		return
	}
	grown := make([]*neuron.Neuron, len(c.neurons), numNeurons)
	copy(grown, c.neurons)
	c.neurons = grown
}

// AddNeuron constructs a neuron reporting on outputChannel with the given
// weights and appends it to the cortex.
func (c *Cortex) AddNeuron(outputChannel uint16, weights []int8, p params.Params) {
	c.neurons = append(c.neurons, neuron.New(outputChannel, weights, p))
}

// Spike delivers an event on inputChannel at timestamp to every neuron in
// insertion order, appending the output channel of each one that fires to
// outputs.
func (c *Cortex) Spike(timestamp float32, inputChannel uint16, outputs *[]uint16) {
	for _, n := range c.neurons {
		if n.Spike(timestamp, inputChannel) == neuron.Fired {
			*outputs = append(*outputs, n.OutputChannel)
		}
	}
}

// Reset zeros the activation level and refractory deadline of every
// neuron in the cortex.
func (c *Cortex) Reset() {
	for _, n := range c.neurons {
		n.Reset()
	}
}

// NeuronCount returns the number of neurons in the cortex.
func (c *Cortex) NeuronCount() int {
	return len(c.neurons)
}
