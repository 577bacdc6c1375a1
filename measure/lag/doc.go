// Package lag quantifies the responsiveness/stability trade-off of a motion
// filter over a recorded trajectory.
//
// Given a raw trace and its filtered counterpart, it estimates the filter's
// phase lag from the peak of the FFT cross-correlation of the two traces,
// summarizes the residual error, and reports how much tick-to-tick jitter
// power the filter removed. The Run helper drives any per-tick scalar filter
// over an input trace and analyzes the resulting pair in one call.
package lag
