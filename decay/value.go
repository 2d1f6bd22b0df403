package decay

import "github.com/chewxy/math32"

// Value is a leaky integrator: it rises toward one on Spike, falls on
// NegativeSpike, and decays exponentially toward zero between updates.
// Decay is evaluated lazily, at the next read or update, via a Calculator.
//
// Value stays in [0, 1]: Spike closes part of the remaining distance to one
// without passing it, and NegativeSpike and decay only shrink it. Nothing
// clamps the value itself; GetWeight clamps its readout, since a value of
// exactly 1 would otherwise read as 128.
type Value struct {
	value         float32
	spikeFraction float32
	calculator    *Calculator
}

// NewValue constructs a Value with the given half-life (seconds, time for
// the value to fall by half absent spikes) and spike fraction (the fraction
// of the remaining distance to one that a Spike closes).
func NewValue(halfLife, spikeFraction float32) *Value {
	rate := -math32.Ln2 / halfLife
	return &Value{
		spikeFraction: spikeFraction,
		calculator:    NewCalculator(rate),
	}
}

// decayTo lazily applies decay up to timestamp.
func (v *Value) decayTo(timestamp float32) {
	if factor, ok := v.calculator.CalculateFactor(timestamp); ok {
		v.value *= factor
	}
}

// GetValue decays the value to timestamp and returns it.
func (v *Value) GetValue(timestamp float32) float32 {
	v.decayTo(timestamp)
	return v.value
}

// GetWeight returns the value at timestamp as an 8-bit weight:
// clamp(round(value*128), 0, 127). Negative values are not expected in
// normal use (the unclamped minimum is 0), so only the upper bound is
// enforced, matching the source's own only-clamp-the-max behavior.
func (v *Value) GetWeight(timestamp float32) int8 {
	weight := int(math32.Round(v.GetValue(timestamp) * 128))
	if weight > 127 {
		weight = 127
	}
	return int8(weight)
}

// Spike decays the value to timestamp, then moves it a spikeFraction of the
// remaining distance toward one.
func (v *Value) Spike(timestamp float32) {
	v.decayTo(timestamp)
	v.value += (1 - v.value) * v.spikeFraction
}

// NegativeSpike decays the value to timestamp, then scales it down by
// (1 - spikeFraction). This is NOT the inverse of Spike — see spec.md §8
// property 4 and §9: Spike then NegativeSpike from v yields
// (v + (1-v)*f)*(1-f), strictly between v*(1-f) and v+(1-v)*f.
func (v *Value) NegativeSpike(timestamp float32) {
	v.decayTo(timestamp)
	v.value *= 1 - v.spikeFraction
}

// Reset zeros the value and clears the decay timer.
func (v *Value) Reset() {
	v.value = 0
	v.calculator.Reset()
}
