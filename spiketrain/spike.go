// Package spiketrain converts scalar values and dense embeddings into
// time-ordered spike streams, and hands them out through a random-access
// consumer cursor.
package spiketrain

// Spike is a single scheduled event: fire channel at timestamp. It is
// immutable once placed into a Scheduler or spikequeue.Queue.
type Spike struct {
	Timestamp float32
	Channel   uint16
}
