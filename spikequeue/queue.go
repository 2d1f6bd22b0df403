// Package spikequeue provides the feedback spike queue and the merger that
// time-orders it against a spiketrain.Scheduler.
package spikequeue

import "github.com/SynapticNetworks/hippocampal-engine/spiketrain"

/*
=================================================================================
FEEDBACK SPIKE QUEUE
=================================================================================

Queue holds spikes that arise as feedback from a running Brain (spec.md's
sequence-recall scenario S3 feeds a channel's own recent outputs back in as
new inputs after a random delay) rather than from a pre-scheduled train.

Inputs are expected to arrive nearly sorted, so Add is O(1) in the common
cases — back-append when the new timestamp is at or after the current back,
front-prepend when it's before the current front — and falls back to an
O(n) reverse scan only for genuinely out-of-order insertion.
=================================================================================
*/

// Queue is a time-ordered double-ended sequence of spikes.
//
// A Queue is not safe for concurrent use.
type Queue struct {
	spikes []spiketrain.Spike
}

// Add inserts a spike, keeping the queue ordered by ascending timestamp.
func (q *Queue) Add(timestamp float32, channel uint16) {
	spike := spiketrain.Spike{Timestamp: timestamp, Channel: channel}

	switch {
	case len(q.spikes) == 0 || timestamp >= q.spikes[len(q.spikes)-1].Timestamp:
		q.spikes = append(q.spikes, spike)
	case timestamp < q.spikes[0].Timestamp:
		q.spikes = append(q.spikes, spiketrain.Spike{})
		copy(q.spikes[1:], q.spikes)
		q.spikes[0] = spike
	default:
		i := len(q.spikes)
		for i > 0 && q.spikes[i-1].Timestamp > timestamp {
			i--
		}
		q.spikes = append(q.spikes, spiketrain.Spike{})
		copy(q.spikes[i+1:], q.spikes[i:])
		q.spikes[i] = spike
	}
}

// Empty reports whether the queue holds no spikes.
func (q *Queue) Empty() bool {
	return len(q.spikes) == 0
}

// Front returns the earliest scheduled spike. Calling it on an empty queue
// panics — callers must check Empty first, matching the precondition on
// the original's front()/pop() pair.
func (q *Queue) Front() spiketrain.Spike {
	return q.spikes[0]
}

// Pop removes the earliest scheduled spike.
func (q *Queue) Pop() {
	q.spikes = q.spikes[1:]
}
