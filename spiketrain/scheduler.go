package spiketrain

import (
	"math/rand"
	"sort"
	"time"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/SynapticNetworks/hippocampal-engine/params"
)

/*
=================================================================================
SPIKE SCHEDULER
=================================================================================

Scheduler encodes scalars and embeddings into Poisson-like, time-ordered
spike trains and hands them out one at a time through PeekNext()/Advance().

ENCODING POLICY (spec.md §4.B):
A value v in [0,1] is encoded as a uniform spike train of period
MinSpikeInterval/v (saturating to MinSpikeInterval above 1, producing no
spikes at or below SpikeFraction), starting at a phase offset from the
window start — the midpoint of the period when deterministic, or a
gonum distuv.Uniform draw when randomized. An embedding is the same
encoding applied per-channel with value = embedding[i]/256, merged and
sorted by ascending timestamp.

BUFFER DISCIPLINE:
The original C++ implementation manages a manually-grown power-of-two
array with an explicit compact-on-grow step. Go's slice append already
amortizes growth, so this port keeps only the semantically meaningful half
of that discipline: the consumed prefix [0, next) is dropped before new
spikes are appended, so a long-running scheduler doesn't retain spikes it
will never hand out again.
=================================================================================
*/

// Scheduler converts scalar values and embeddings into time-ordered spike
// streams, consumed through PeekNext/Advance.
//
// A Scheduler is not safe for concurrent use — see spec.md §5.
type Scheduler struct {
	numChannels      uint16
	minSpikeInterval float32
	spikeFraction    float32

	spikes []Spike
	next   int

	rng *rand.Rand
}

// NewScheduler builds a Scheduler for numChannels channels. rng supplies
// the phase offset for randomized encoding; passing nil builds one seeded
// from the current time, matching the DESIGN note in spec.md §9 that
// replaces the original's process-wide seed-once flag with an explicit,
// injectable handle.
func NewScheduler(numChannels uint16, p params.Params, rng *rand.Rand) *Scheduler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Scheduler{
		numChannels:      numChannels,
		minSpikeInterval: p.MinSpikeInterval,
		spikeFraction:    p.SpikeFraction,
		rng:              rng,
	}
}

// calculatePeriod returns the spike period that encodes value, or 0 if
// value can't be represented (value <= SpikeFraction).
func (s *Scheduler) calculatePeriod(value float32) float32 {
	switch {
	case value <= s.spikeFraction:
		return 0
	case value > 1:
		return s.minSpikeInterval
	default:
		return s.minSpikeInterval / value
	}
}

// phaseOffset returns a fraction of period: the deterministic midpoint
// (0.5) unless randomize is set, in which case it draws a uniform sample
// in [0, 1) from s.rng.
func (s *Scheduler) phaseOffset(randomize bool) float32 {
	if !randomize {
		return 0.5
	}
	u := distuv.Uniform{Min: 0, Max: 1, Src: s.rng}
	return float32(u.Rand())
}

// spikeCount returns 1 + floor(span/period), the number of spikes a
// uniform train at the given period produces over span seconds starting at
// the first spike.
func spikeCount(period, span float32) int {
	return 1 + int(math32.Floor(span/period))
}

// compact drops the consumed prefix [0, next) so a long-running scheduler
// doesn't retain spikes it will never hand out again.
func (s *Scheduler) compact() {
	if s.next == 0 {
		return
	}
	s.spikes = append(s.spikes[:0], s.spikes[s.next:]...)
	s.next = 0
}

// ScheduleValue encodes value (expected in [0,1]) as a uniform spike train
// on channel over [start, start+duration). Produces no spikes if value
// can't be represented, or if the first spike would fall within
// MinSpikeInterval of the end of the window.
func (s *Scheduler) ScheduleValue(start, duration float32, channel uint16, value float32, randomize bool) {
	period := s.calculatePeriod(value)
	if period <= 0 {
		return
	}

	offset := s.phaseOffset(randomize) * period
	if offset > duration-s.minSpikeInterval {
		return
	}

	count := spikeCount(period, duration-offset-s.minSpikeInterval)
	s.compact()

	timestamp := start + offset
	for i := 0; i < count; i++ {
		s.spikes = append(s.spikes, Spike{Timestamp: timestamp, Channel: channel})
		timestamp += period
	}
	s.sort()
}

// ScheduleEmbedding applies ScheduleValue's encoding to every channel i with
// value embedding[i]/256, merging and sorting all resulting spikes by
// ascending timestamp. embedding must have exactly numChannels entries.
func (s *Scheduler) ScheduleEmbedding(start, duration float32, embedding []uint8, randomize bool) {
	type plan struct {
		period, offset float32
		count          int
	}
	plans := make([]plan, len(embedding))
	total := 0

	for i, raw := range embedding {
		period := s.calculatePeriod(float32(raw) / 256.0)
		if period == 0 {
			continue
		}
		offset := s.phaseOffset(randomize) * period
		if offset > duration-s.minSpikeInterval {
			continue
		}
		count := spikeCount(period, duration-offset-s.minSpikeInterval)
		plans[i] = plan{period: period, offset: offset, count: count}
		total += count
	}
	if total == 0 {
		return
	}

	s.compact()
	for i, pl := range plans {
		if pl.count == 0 {
			continue
		}
		timestamp := start + pl.offset
		for j := 0; j < pl.count; j++ {
			s.spikes = append(s.spikes, Spike{Timestamp: timestamp, Channel: uint16(i)})
			timestamp += pl.period
		}
	}
	s.sort()
}

// sort orders the pending spikes by ascending timestamp. Ties are not
// further broken — any stable relative order is acceptable per spec.md §4.B.
func (s *Scheduler) sort() {
	sort.SliceStable(s.spikes, func(i, j int) bool {
		return s.spikes[i].Timestamp < s.spikes[j].Timestamp
	})
}

// PeekNext returns the next unconsumed spike and true, or a zero Spike and
// false if there are none.
func (s *Scheduler) PeekNext() (Spike, bool) {
	if s.next >= len(s.spikes) {
		return Spike{}, false
	}
	return s.spikes[s.next], true
}

// Advance consumes the spike last returned by PeekNext.
func (s *Scheduler) Advance() {
	s.next++
}
