// Package oneeuro provides a speed-adaptive low-pass filter ("1 Euro"
// filter) for per-tick motion signals.
//
// The filter estimates the signal speed with a smoothed derivative, then
// widens its cutoff frequency in proportion to that speed. Slow motion gets
// a narrow cutoff (maximum smoothing), fast motion a wide cutoff (minimum
// lag), resolving the jitter/lag trade-off a fixed cutoff cannot satisfy.
// State is O(1) and there is no lookahead or buffering.
//
// Timing is explicit: every call takes the elapsed time since the previous
// sample, and the sampling frequency is re-estimated from it, so the filter
// stays correct under variable tick rates and never reads a clock itself.
//
// Three cutoff-to-weight mappings are supported:
//   - MappingRational: the 1 Euro formulation 1/(1 + tau/te).
//   - MappingExponential: the exact one-pole step response
//     1 - exp(-2*pi*cutoff*te).
//   - MappingExponentialLightweight: the exponential mapping with a
//     polynomial exp approximation for lower CPU use.
package oneeuro
