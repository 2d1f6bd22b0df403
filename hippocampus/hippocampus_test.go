package hippocampus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SynapticNetworks/hippocampal-engine/cortex"
	"github.com/SynapticNetworks/hippocampal-engine/params"
)

// TestCandidateChannel_NegativeWeightNeverExceedsCap encodes spec.md
// property 7: calculate_negative_weight is always <= -4, regardless of how
// much input traffic has raised the controller.
func TestCandidateChannel_NegativeWeightNeverExceedsCap(t *testing.T) {
	c := newCandidateChannel(0, 5.0, 0.5)

	for i := 0; i < 1000; i++ {
		c.receiveInput(float32(i) * 0.001)
	}

	assert.LessOrEqual(t, c.calculateNegativeWeight(float32(1000)*0.001), int8(maxNegativeWeight))
}

// TestHippocampus_PromotesAfterRepeatedCoincidence alternates input between
// channels 0 and 1 until a candidate fires and is promoted, then checks
// that exactly one neuron was added to the cortex. Input on a single
// channel alone never promotes: each input resets the like-numbered
// candidate's activation, and every other candidate's negative weight
// stays at -128.
func TestHippocampus_PromotesAfterRepeatedCoincidence(t *testing.T) {
	p := params.Default()
	const numChannels = 3
	h := New(numChannels, p)
	var cx cortex.Cortex

	var timestamp float32
	promoted := false
	for i := 0; i < 5000 && !promoted; i++ {
		var outputs []uint16
		h.ReceiveInput(timestamp, uint16(i%2), p, &cx, &outputs)
		for _, ch := range outputs {
			h.ReceiveOutput(timestamp, ch)
		}
		if cx.NeuronCount() > 0 {
			promoted = true
		}
		timestamp += p.MinSpikeInterval
	}

	require.True(t, promoted, "repeated coincident input on two channels must eventually promote a neuron")
	assert.Equal(t, 1, cx.NeuronCount())
}

func TestHippocampus_ResetZeroesStateButIsReusable(t *testing.T) {
	p := params.Default()
	h := New(2, p)
	var cx cortex.Cortex

	var outputs []uint16
	h.ReceiveInput(0, 0, p, &cx, &outputs)
	h.Reset()

	// After reset, the cumulative input that the earlier spike raised must
	// read back as zero weight at timestamp 0.
	weight := h.cumulativeInputs[0].GetWeight(0)
	assert.Equal(t, int8(0), weight)
}

func TestHippocampus_NoInputActivityProducesNoOutputs(t *testing.T) {
	p := params.Default()
	h := New(2, p)
	var cx cortex.Cortex

	var outputs []uint16
	h.ReceiveInput(0, 1, p, &cx, &outputs)
	assert.Empty(t, outputs, "a single isolated input spike should not be enough to fire any candidate")
}
