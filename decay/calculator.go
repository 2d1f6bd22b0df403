package decay

import (
	"sync"

	"github.com/chewxy/math32"
)

// precalculatedFactorCount is the size of a Calculator's lookup table.
const precalculatedFactorCount = 1024

// decayThreshold is the cutoff below which a decay factor is considered
// negligible at 8-bit weight resolution (127/128).
const decayThreshold = float32(127.0) / float32(128.0)

// calculatorCache memoizes, per decay rate, the minimum meaningful duration
// and the precomputed factor table. Rates are compared bit-exact (float32
// equality) as documented in spec.md §9 — callers that vary rates
// dynamically should expect unbounded growth of this cache.
var calculatorCache = struct {
	mu           sync.Mutex
	minDurations map[float32]float32
	factors      map[float32]*[precalculatedFactorCount]float32
}{
	minDurations: make(map[float32]float32),
	factors:      make(map[float32]*[precalculatedFactorCount]float32),
}

// decayFactorForDuration returns e^(duration*rate).
func decayFactorForDuration(duration, rate float32) float32 {
	return math32.Exp(duration * rate)
}

// minimumDurationFor returns the smallest multiple of one millisecond at
// which decayFactorForDuration drops below decayThreshold, computing and
// caching it on first use for rate.
func minimumDurationFor(rate float32) float32 {
	calculatorCache.mu.Lock()
	defer calculatorCache.mu.Unlock()

	if d, ok := calculatorCache.minDurations[rate]; ok {
		return d
	}

	var minDuration float32
	for i := 1; ; i++ {
		duration := float32(i) * 1e-3
		if decayFactorForDuration(duration, rate) < decayThreshold {
			minDuration = duration
			break
		}
	}
	calculatorCache.minDurations[rate] = minDuration
	return minDuration
}

// precalculatedFactorsFor returns the shared factor table for rate,
// building it on first use.
func precalculatedFactorsFor(minDuration, rate float32) *[precalculatedFactorCount]float32 {
	calculatorCache.mu.Lock()
	defer calculatorCache.mu.Unlock()

	if table, ok := calculatorCache.factors[rate]; ok {
		return table
	}

	table := new([precalculatedFactorCount]float32)
	for i := 0; i < precalculatedFactorCount; i++ {
		table[i] = decayFactorForDuration(minDuration+float32(i)*1e-3, rate)
	}
	calculatorCache.factors[rate] = table
	return table
}

// Calculator computes exponential decay factors against a fixed rate,
// skipping the evaluation entirely when the elapsed time since the last
// applied decay is too small to matter, and serving a precomputed factor
// instead of calling Exp whenever possible.
//
// A Calculator is not safe for concurrent use; the engine's scheduling
// model (spec.md §5) assumes single-threaded access to any one instance.
// The lookup tables it shares via calculatorCache are read-mostly and
// built under lock on first use per rate.
type Calculator struct {
	rate              float32
	minDuration       float32
	precalculated     *[precalculatedFactorCount]float32
	previousTimestamp float32
}

// NewCalculator builds a Calculator for the given decay rate (negative for
// decay toward zero, e.g. -ln(2)/halfLife).
func NewCalculator(rate float32) *Calculator {
	minDuration := minimumDurationFor(rate)
	return &Calculator{
		rate:          rate,
		minDuration:   minDuration,
		precalculated: precalculatedFactorsFor(minDuration, rate),
	}
}

// CalculateFactor returns the decay factor to apply at timestamp and true,
// or (0, false) if the elapsed time since the last applied decay is below
// the minimum meaningful duration — in which case the caller must leave its
// value and timestamp untouched, letting the small delta accumulate toward
// the next call.
func (c *Calculator) CalculateFactor(timestamp float32) (float32, bool) {
	duration := timestamp - c.previousTimestamp
	if duration < c.minDuration {
		return 0, false
	}

	milliseconds := int((duration - c.minDuration) * 1000)
	var factor float32
	if milliseconds < precalculatedFactorCount {
		factor = c.precalculated[milliseconds]
	} else {
		factor = decayFactorForDuration(duration, c.rate)
	}
	c.previousTimestamp = timestamp
	return factor, true
}

// Reset zeros the calculator's decay timer.
func (c *Calculator) Reset() {
	c.previousTimestamp = 0
}
