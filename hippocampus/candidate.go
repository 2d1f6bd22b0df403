package hippocampus

import (
	"github.com/chewxy/math32"

	"github.com/SynapticNetworks/hippocampal-engine/decay"
)

// maxNegativeWeight caps how close to zero a candidate's negative weight
// can get. A strictly negative cap guarantees a promoted neuron stays
// silent on pure background noise, even once its negative-weight
// controller has fully decayed — see spec.md §4.E's "why this learns".
const maxNegativeWeight = -4

// candidateChannel is one hippocampus candidate-neuron builder (spec.md's
// "HC Channel"), one per channel treated as a candidate output. It
// accumulates weighted input against a self-tuning negative baseline and,
// once it fires while believed correctly tuned, marks itself ready for
// promotion into the cortex.
type candidateChannel struct {
	id uint16

	// activationLevel is clipped at zero on underflow and reset to zero on
	// fire, same discipline as neuron.Neuron's activation level.
	activationLevel int16

	// negativeWeightController rises on inputs (raising the negative weight
	// toward zero, making promotion easier) and falls on observed outputs
	// (pushing the negative weight further negative, suppressing spurious
	// future fires).
	negativeWeightController *decay.Value

	// weightIsCorrect is set the first time this candidate fires, and
	// marks it as eligible for promotion into the cortex.
	weightIsCorrect bool
}

func newCandidateChannel(id uint16, negativeWeightHalfLife, negativeSpikeFraction float32) *candidateChannel {
	return &candidateChannel{
		id:                       id,
		negativeWeightController: decay.NewValue(negativeWeightHalfLife, negativeSpikeFraction),
	}
}

// receiveInput registers incoming traffic on this channel's input: it
// raises the negative-weight controller (easing future promotion) and
// clears the transient activation level.
func (c *candidateChannel) receiveInput(timestamp float32) {
	c.negativeWeightController.Spike(timestamp)
	c.activationLevel = 0
}

// receiveOutput registers an actually-observed output on this channel: it
// depresses the negative-weight controller (suppressing spurious future
// fires) and clears the transient activation level.
func (c *candidateChannel) receiveOutput(timestamp float32) {
	c.negativeWeightController.NegativeSpike(timestamp)
	c.activationLevel = 0
}

// calculateNegativeWeight returns the negative weight that should be
// applied to every input of an under-construction neuron at timestamp:
// round((controller.GetValue(t)-1)*128), capped above at maxNegativeWeight
// (spec.md property 7).
func (c *candidateChannel) calculateNegativeWeight(timestamp float32) int8 {
	raw := c.negativeWeightController.GetValue(timestamp)
	negativeWeight := int(math32.Round((raw - 1) * 128))
	if negativeWeight > maxNegativeWeight {
		negativeWeight = maxNegativeWeight
	}
	return int8(negativeWeight)
}

// activate applies a weighted input spike, combined with the channel's
// current negative weight, to the candidate's activation level. It
// returns true if the candidate fires (activation reaches 128), in which
// case the candidate is marked ready for promotion.
func (c *candidateChannel) activate(timestamp float32, weightedInput int8) bool {
	c.activationLevel += int16(weightedInput) + int16(c.calculateNegativeWeight(timestamp))

	if c.activationLevel >= 128 {
		c.activationLevel = 0
		c.weightIsCorrect = true
		return true
	}
	if c.activationLevel < 0 {
		c.activationLevel = 0
	}
	return false
}

// shouldCreateNeuron reports whether this candidate has fired under a
// negative-weight regime believed correct, and is ready for promotion.
func (c *candidateChannel) shouldCreateNeuron() bool {
	return c.weightIsCorrect
}

// reset clears the candidate back to its just-constructed state.
func (c *candidateChannel) reset() {
	c.activationLevel = 0
	c.weightIsCorrect = false
	c.negativeWeightController.Reset()
}
