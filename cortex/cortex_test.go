package cortex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SynapticNetworks/hippocampal-engine/params"
)

func TestCortex_AddNeuronIncrementsCount(t *testing.T) {
	var c Cortex
	p := params.Default()

	require.Equal(t, 0, c.NeuronCount())
	c.AddNeuron(0, []int8{127, 0}, p)
	assert.Equal(t, 1, c.NeuronCount())
}

func TestCortex_SpikeBroadcastsAndCollectsFires(t *testing.T) {
	var c Cortex
	p := params.Default()

	c.AddNeuron(5, []int8{127, 0}, p) // fires on two channel-0 spikes
	c.AddNeuron(6, []int8{0, 127}, p) // fires on two channel-1 spikes

	var outputs []uint16
	c.Spike(0, 0, &outputs)
	assert.Empty(t, outputs)

	c.Spike(0.001, 0, &outputs)
	require.Equal(t, []uint16{5}, outputs)
}

// TestCortex_NoDedupAcrossSharedOutputChannel confirms two neurons that
// share an output channel both report a fire on the same event.
func TestCortex_NoDedupAcrossSharedOutputChannel(t *testing.T) {
	var c Cortex
	p := params.Default()

	c.AddNeuron(9, []int8{127}, p)
	c.AddNeuron(9, []int8{127}, p)

	var outputs []uint16
	c.Spike(0, 0, &outputs)
	c.Spike(0.001, 0, &outputs)

	assert.Equal(t, []uint16{9, 9}, outputs)
}

func TestCortex_ResetZeroesAllNeuronsButKeepsCount(t *testing.T) {
	var c Cortex
	p := params.Default()
	c.AddNeuron(0, []int8{127}, p)

	var outputs []uint16
	c.Spike(0, 0, &outputs)
	c.Spike(0.001, 0, &outputs)
	require.NotEmpty(t, outputs)

	c.Reset()
	assert.Equal(t, 1, c.NeuronCount(), "reset must not remove neurons")

	outputs = nil
	c.Spike(2, 0, &outputs)
	assert.Empty(t, outputs, "after reset, a single spike must not immediately fire")
}
