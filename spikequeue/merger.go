package spikequeue

import "github.com/SynapticNetworks/hippocampal-engine/spiketrain"

// Merger time-orders a spiketrain.Scheduler against an optional Queue,
// handing out spikes up to a deadline and preferring the scheduler on ties.
type Merger struct {
	scheduler *spiketrain.Scheduler
	queue     *Queue // nullable
	deadline  float32
}

// NewMerger builds a Merger. queue may be nil, in which case only scheduler
// is consulted.
func NewMerger(scheduler *spiketrain.Scheduler, queue *Queue, deadline float32) *Merger {
	return &Merger{scheduler: scheduler, queue: queue, deadline: deadline}
}

// GetNext returns the earliest spike before the deadline across the
// scheduler and the queue, advancing whichever source it was drawn from,
// and true — or (zero, zero, false) if neither source has anything left
// before the deadline.
func (m *Merger) GetNext() (timestamp float32, channel uint16, ok bool) {
	scheduled, haveScheduled := m.scheduler.PeekNext()
	if haveScheduled && scheduled.Timestamp >= m.deadline {
		haveScheduled = false
	}

	haveQueued := m.queue != nil && !m.queue.Empty() && m.queue.Front().Timestamp < m.deadline

	if haveScheduled && (!haveQueued || scheduled.Timestamp <= m.queue.Front().Timestamp) {
		m.scheduler.Advance()
		return scheduled.Timestamp, scheduled.Channel, true
	}
	if haveQueued {
		front := m.queue.Front()
		m.queue.Pop()
		return front.Timestamp, front.Channel, true
	}
	return 0, 0, false
}
