/*
Command sequence trains a brain on a repeating sequence of small vectors,
then prompts it with the first vector alone and reports how the
predicted sequence unfolds, fed back through itself via a Merger.
*/
package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/SynapticNetworks/hippocampal-engine/engine"
	"github.com/SynapticNetworks/hippocampal-engine/params"
	"github.com/SynapticNetworks/hippocampal-engine/spikequeue"
	"github.com/SynapticNetworks/hippocampal-engine/spiketrain"
)

var pattern = []float32{0.51, 0.51}

const sequenceLength = 8

// scheduleTrainingSpikes lays out sequenceLength repetitions of pattern,
// one per SecondsPerSample window, each on its own block of channels.
func scheduleTrainingSpikes(p params.Params, s *spiketrain.Scheduler) {
	for i := 0; i < sequenceLength; i++ {
		start := float32(i) * p.SecondsPerSample
		channel := uint16(i * len(pattern))
		for _, value := range pattern {
			s.ScheduleValue(start, p.SecondsPerSample, channel, value, true)
			channel++
		}
	}
}

func applyScheduledSpikes(s *spiketrain.Scheduler, b *engine.Brain, useHippocampus bool) {
	var outputs []uint16
	for {
		spike, ok := s.PeekNext()
		if !ok {
			break
		}
		outputs = outputs[:0]
		b.Spike(spike.Timestamp, spike.Channel, useHippocampus, &outputs)
		s.Advance()
	}
}

func trainBrainSequence(p params.Params, numChannels uint16, b *engine.Brain) {
	s := spiketrain.NewScheduler(numChannels, p, nil)
	scheduleTrainingSpikes(p, s)
	applyScheduledSpikes(s, b, true)
}

// randomFeedbackDelay staggers re-delivery of a channel's own output so
// feedback neurons don't all fire in lockstep.
func randomFeedbackDelay(p params.Params, rng *rand.Rand) float32 {
	return p.MinSpikeInterval * (1.0 + 2.0*rng.Float32())
}

// reportValues prints per-channel output counts since the last report and
// the sequence step whose pattern best matches the recent activity, then
// zeros the counts.
func reportValues(numChannels uint16, values []uint, timestamp float32) {
	pstep := len(pattern)
	activations := make([]float32, sequenceLength)

	fmt.Printf("%4.2f:", timestamp)
	for i := uint16(0); i < numChannels; i++ {
		fmt.Printf(" %2d", values[i])
		value := values[i]
		values[i] = 0

		for pid := 0; pid < sequenceLength; pid++ {
			offset := pid * pstep
			if int(i) >= offset && int(i) < offset+pstep {
				activations[pid] += float32(value) * pattern[int(i)-offset]
			}
		}
	}
	fmt.Println()

	hiIdx, hiValue := 0, float32(0)
	for i, a := range activations {
		if a > hiValue {
			hiValue = a
			hiIdx = i
		}
	}

	fmt.Print("      ")
	for i := 0; i < hiIdx*pstep; i++ {
		fmt.Print("   ")
	}
	fmt.Println("^^")
}

func testBrainSequence(p params.Params, numChannels uint16, b *engine.Brain) {
	s := spiketrain.NewScheduler(numChannels, p, nil)
	var channel uint16
	for _, value := range pattern {
		s.ScheduleValue(0, p.SecondsPerSample, channel, value, true)
		channel++
	}

	rng := rand.New(rand.NewSource(1))
	duration := p.SecondsPerSample * float32(sequenceLength+2)
	var feedback spikequeue.Queue
	merger := spikequeue.NewMerger(s, &feedback, duration)

	values := make([]uint, numChannels)
	const reportingInterval = 0.1
	reportingDeadline := float32(reportingInterval)

	var outputs []uint16
	for {
		timestamp, channel, ok := merger.GetNext()
		if !ok {
			break
		}

		outputs = outputs[:0]
		b.Spike(timestamp, channel, false, &outputs)

		for _, ch := range outputs {
			delay := randomFeedbackDelay(p, rng)
			feedback.Add(timestamp+delay, ch)
			values[ch]++
		}

		if timestamp >= reportingDeadline {
			reportValues(numChannels, values, reportingDeadline)
			reportingDeadline += reportingInterval
		}
	}
	reportValues(numChannels, values, reportingDeadline)
}

func main() {
	p := params.Default()
	numChannels := uint16(len(pattern) * sequenceLength)

	b := engine.New(numChannels, p)
	b.Reserve(int(numChannels) * 100)

	trainBrainSequence(p, numChannels, b)
	log.Printf("%d neurons created during training.", b.NeuronCount())
	b.Reset()

	testBrainSequence(p, numChannels, b)
}
