/*
Command pavlov reproduces the engine's classic training demo: a "bell"
stimulus on channels 0-2 followed by a "food" stimulus on channels 3-5,
trained together so that, after training, a bell alone recalls food.
*/
package main

import (
	"fmt"
	"log"

	"github.com/SynapticNetworks/hippocampal-engine/engine"
	"github.com/SynapticNetworks/hippocampal-engine/params"
	"github.com/SynapticNetworks/hippocampal-engine/spiketrain"
)

const numChannels = 6

// scheduleTrainingSpikes lays out a bell stimulus on channels 0-2 followed,
// after a gap, by a food stimulus on channels 3-5.
func scheduleTrainingSpikes(bellDuration, bellIntensity, gapDuration, foodDuration, foodIntensity float32, s *spiketrain.Scheduler) {
	s.ScheduleValue(0, bellDuration, 0, bellIntensity, true)
	s.ScheduleValue(0, bellDuration, 1, bellIntensity, true)
	s.ScheduleValue(0, bellDuration, 2, bellIntensity, true)

	foodStart := bellDuration + gapDuration
	s.ScheduleValue(foodStart, foodDuration, 3, foodIntensity, true)
	s.ScheduleValue(foodStart, foodDuration, 4, foodIntensity, true)
	s.ScheduleValue(foodStart, foodDuration, 5, foodIntensity, true)
}

// applyScheduledSpikes drains s into b, discarding outputs.
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

func trainBrainPavlovian(p params.Params, bellDuration, bellIntensity, gapDuration, foodDuration, foodIntensity float32, b *engine.Brain) {
	s := spiketrain.NewScheduler(numChannels, p, nil)
	scheduleTrainingSpikes(bellDuration, bellIntensity, gapDuration, foodDuration, foodIntensity, s)
	applyScheduledSpikes(s, b, true)
}

// testBrainPavlovian presents a bell alone and reports how the brain
// responds, broken down by channel.
func testBrainPavlovian(p params.Params, bellDuration, bellIntensity float32, b *engine.Brain) {
	s := spiketrain.NewScheduler(numChannels, p, nil)
	s.ScheduleValue(0, bellDuration, 0, bellIntensity, true)
	s.ScheduleValue(0, bellDuration, 1, bellIntensity, true)
	s.ScheduleValue(0, bellDuration, 2, bellIntensity, true)

	var counts [numChannels]uint
	var outputs []uint16
	for {
		spike, ok := s.PeekNext()
		if !ok {
			break
		}
		outputs = outputs[:0]
		b.Spike(spike.Timestamp, spike.Channel, false, &outputs)
		for _, ch := range outputs {
			counts[ch]++
		}
		s.Advance()
	}

	fmt.Println("Output spikes with bell input. [0-2] bell, [3-5] food.")
	for i, c := range counts {
		fmt.Printf("%d: %d\n", i, c)
	}
}

func main() {
	p := params.Default()

	const (
		bellDuration  = 0.5
		bellIntensity = 0.7
		gapDuration   = 0.25
		foodDuration  = 0.5
		foodIntensity = 0.7
	)

	b := engine.New(numChannels, p)
	b.Reserve(numChannels * 100)

	trainBrainPavlovian(p, bellDuration, bellIntensity, gapDuration, foodDuration, foodIntensity, b)
	log.Printf("%d neurons created during training.", b.NeuronCount())
	b.Reset()

	testBrainPavlovian(p, bellDuration, bellIntensity, b)
}
