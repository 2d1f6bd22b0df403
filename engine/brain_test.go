package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SynapticNetworks/hippocampal-engine/params"
)

func TestBrain_SpikeWithoutHippocampusOnlyUsesCortex(t *testing.T) {
	p := params.Default()
	b := New(2, p)

	var outputs []uint16
	b.Spike(0, 0, false, &outputs)
	assert.Empty(t, outputs, "an empty cortex never fires")
	assert.Equal(t, 0, b.NeuronCount())
}

// TestBrain_RepeatedCoincidenceEventuallyPromotesAndThenFires drives a
// Brain with hippocampus learning enabled, alternating input between
// channels 0 and 1, until it promotes a neuron, then confirms that neuron
// actually participates in subsequent cortex routing (spec.md's end-to-end
// promotion-then-use path, scenario S1/S2).
func TestBrain_RepeatedCoincidenceEventuallyPromotesAndThenFires(t *testing.T) {
	p := params.Default()
	b := New(3, p)

	var timestamp float32
	for i := 0; i < 5000 && b.NeuronCount() == 0; i++ {
		var outputs []uint16
		b.Spike(timestamp, uint16(i%2), true, &outputs)
		timestamp += p.MinSpikeInterval
	}

	require.Greater(t, b.NeuronCount(), 0, "repeated coincident traffic on two channels must promote a neuron")

	fired := 0
	for i := 0; i < 20; i++ {
		var outputs []uint16
		b.Spike(timestamp, uint16(i%2), false, &outputs)
		fired += len(outputs)
		timestamp += p.MinSpikeInterval
	}
	assert.Greater(t, fired, 0, "the promoted neuron must fire through the cortex on further traffic")
}

func TestBrain_ResetPreservesPromotedNeuronsButClearsActivation(t *testing.T) {
	p := params.Default()
	b := New(2, p)
	b.cortex.AddNeuron(0, []int8{127}, p)

	var outputs []uint16
	b.Spike(0, 0, false, &outputs)
	b.Spike(0.001, 0, false, &outputs)
	require.NotEmpty(t, outputs)

	b.Reset()
	assert.Equal(t, 1, b.NeuronCount())

	outputs = nil
	b.Spike(2, 0, false, &outputs)
	assert.Empty(t, outputs, "a single spike right after reset must not immediately refire")
}
