package decay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCalculator_MemoizationIsConsistentAcrossInstances encodes spec.md
// scenario S5: two Calculators built from the same rate must produce
// identical factors for identical (reset -> spike(0) -> get_value(dt))
// sequences, because they share the same underlying lookup table.
func TestCalculator_MemoizationIsConsistentAcrossInstances(t *testing.T) {
	const halfLife = float32(0.5)
	const spikeFraction = float32(0.08)

	v1 := NewValue(halfLife, spikeFraction)
	v2 := NewValue(halfLife, spikeFraction)

	v1.Spike(0)
	v2.Spike(0)

	for _, dt := range []float32{0.001, 0.01, 0.1, 0.5, 1.0, 2.0} {
		assert.Equal(t, v1.GetValue(dt), v2.GetValue(dt), "dt=%v", dt)
	}
}

func TestCalculator_SkipsSubMinimumDeltas(t *testing.T) {
	c := NewCalculator(-1.386) // -ln(2)/0.5

	_, appliedImmediately := c.CalculateFactor(0)
	assert.False(t, appliedImmediately, "a zero-duration delta must be a no-op, not a factor of 1")

	_, appliedTiny := c.CalculateFactor(0.0001)
	assert.False(t, appliedTiny, "a delta far below the minimum duration must still be skipped")

	_, appliedLater := c.CalculateFactor(1.0)
	assert.True(t, appliedLater, "a delta well past the minimum duration must apply")
}

func TestCalculator_ReusesPrecalculatedTableAcrossInstances(t *testing.T) {
	c1 := NewCalculator(-1.0)
	c2 := NewCalculator(-1.0)

	f1, ok1 := c1.CalculateFactor(0.05)
	f2, ok2 := c2.CalculateFactor(0.05)

	assert.Equal(t, ok1, ok2)
	assert.Equal(t, f1, f2)
}
