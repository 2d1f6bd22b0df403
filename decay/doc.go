/*
Package decay implements the engine's single shared numeric primitive: a
leaky integrator ("decaying value") that rises on a spike, falls on a
negative spike, and otherwise decays exponentially toward zero between
updates.

# Overview

Every decaying per-channel statistic in this engine — a hippocampus
candidate's negative-weight controller, the cumulative-input histogram that
feeds promotion — is an instance of the same decaying value. Activation
levels (a neuron's, a candidate's) are plain integer sums with no decay and
do not use this package. Centralizing it here means the decay-rate lookup table is
built once per rate and shared, instead of re-derived per caller.

# Why decay is precomputed

Evaluating exp() on every spike is wasteful: at typical firing rates the vast
majority of calls see a delta-t small enough that the decay factor is
indistinguishable from 1 at 8-bit weight resolution. Calculator exploits
that: deltas below a per-rate minimum duration are treated as no-ops (the
value is left untouched and the timestamp is NOT advanced, so small deltas
accumulate instead of being silently dropped), and deltas inside a
millisecond-granular window are served from a 1024-entry precomputed table.
Only deltas past that window fall back to a direct float32 Exp call.

This is a deliberate speed/precision tradeoff, not an approximation bug: the
table index is the elapsed time past the minimum duration, truncated to whole
milliseconds, so a table factor can be off by up to one millisecond of decay,
which can shift a weight readout by about 1/128.
*/
package decay
