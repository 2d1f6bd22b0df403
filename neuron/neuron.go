/*
Package neuron implements the engine's fixed-weight, integrate-and-fire
spiking unit.

# Overview

Unlike a traditional ANN neuron, a Neuron here never adjusts its own
weights — it is a fixed detector, snapshotted at construction time by the
hippocampus (see the hippocampus package's promotion step). Its only
runtime state is a transient activation level and a refractory deadline.

# No intra-event leak

A biologically complete model would decay the activation level between
spikes, the same way decay.Value does. This neuron deliberately does not:
at the firing rates this engine operates at, the decay between consecutive
input spikes is negligible, and evaluating it on every event is wasted
work. Callers must not add it back in as a "completeness" fix — it is a
documented performance choice, not an omission.
*/
package neuron

import "github.com/SynapticNetworks/hippocampal-engine/params"

// FireResult reports the outcome of a single spike delivered to a Neuron.
type FireResult bool

const (
	// DidNotFire means the event was accepted (or dropped, if inside the
	// refractory window) without crossing the firing threshold.
	DidNotFire FireResult = false
	// Fired means the event drove the neuron's activation to or past the
	// firing threshold; activation has been reset and the neuron has
	// entered its refractory period.
	Fired FireResult = true
)

// firingThreshold is the activation level that causes a Neuron to fire.
// Weights are 8-bit signed, normalized so 128 fully triggers a neuron from
// rest.
const firingThreshold = 128

// Neuron is a fixed integrate-and-fire unit: it sums the signed 8-bit
// weight of its input channel into a running activation level, fires when
// that level reaches firingThreshold, and ignores every event until its
// refractory period ends.
//
// A Neuron is immutable after construction except for its two transient
// fields (ActivationLevel and RefractoryEndTime); it carries no intra-event
// decay (see the package doc).
type Neuron struct {
	// OutputChannel is the channel this neuron reports a fire on.
	OutputChannel uint16

	// Weights holds one signed 8-bit weight per input channel, indexed by
	// channel number. Its length equals the engine's channel count at
	// construction time.
	Weights []int8

	// RefractoryDuration is how long, in seconds, the neuron ignores
	// further spikes after firing.
	RefractoryDuration float32

	// ActivationLevel is the neuron's running activation. It is clipped to
	// zero on a negative sum and reset to zero on fire; between events it
	// is always in [0, 127].
	ActivationLevel int16

	// RefractoryEndTime is the timestamp before which spikes are ignored.
	RefractoryEndTime float32
}

// New constructs a Neuron reporting on outputChannel, with a private copy
// of weights (the caller's slice is not aliased), and a refractory duration
// of p.MinSpikeInterval.
func New(outputChannel uint16, weights []int8, p params.Params) *Neuron {
	owned := make([]int8, len(weights))
	copy(owned, weights)
	return &Neuron{
		OutputChannel:      outputChannel,
		Weights:            owned,
		RefractoryDuration: p.MinSpikeInterval,
	}
}

// Clone returns a deep copy of n: a new Weights slice, with transient
// activation state reset to rest. This mirrors the original's copy
// constructor semantics (spec.md §9), needed wherever a Neuron value is
// moved into a new collection.
func (n *Neuron) Clone() *Neuron {
	owned := make([]int8, len(n.Weights))
	copy(owned, n.Weights)
	return &Neuron{
		OutputChannel:      n.OutputChannel,
		Weights:            owned,
		RefractoryDuration: n.RefractoryDuration,
	}
}

// Spike delivers an event on inputChannel at timestamp. It returns Fired if
// the event drives ActivationLevel to or past firingThreshold, in which
// case ActivationLevel is reset to zero and RefractoryEndTime is pushed out
// by RefractoryDuration. Events arriving before RefractoryEndTime are
// silently dropped.
func (n *Neuron) Spike(timestamp float32, inputChannel uint16) FireResult {
	if timestamp < n.RefractoryEndTime {
		return DidNotFire
	}

	n.ActivationLevel += int16(n.Weights[inputChannel])

	if n.ActivationLevel >= firingThreshold {
		n.ActivationLevel = 0
		n.RefractoryEndTime = timestamp + n.RefractoryDuration
		return Fired
	}
	if n.ActivationLevel < 0 {
		n.ActivationLevel = 0
	}
	return DidNotFire
}

// Reset zeros the neuron's activation level and refractory deadline.
func (n *Neuron) Reset() {
	n.ActivationLevel = 0
	n.RefractoryEndTime = 0
}
