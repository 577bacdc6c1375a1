// Package lowpass provides a single-pole exponential low-pass filter for
// per-tick motion signals.
//
// The filter is weight-parameterized: a weight of 1 passes raw samples
// through unchanged, a weight of 0 freezes the output. The first valid
// sample initializes the state and is returned as-is; non-finite samples
// (NaN, Inf) are rejected without touching state, which keeps the filter
// robust against corrupt sensor readings.
//
// The filter is stateful, deterministic, and single-threaded by contract:
// one instance per tracked signal, updated once per tick by its owner.
package lowpass
