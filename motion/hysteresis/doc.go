// Package hysteresis provides windowed speed-adaptive filters for scalars,
// 3D vectors, and unit-quaternion rotations.
//
// Each filter wraps one speed-adaptive sub-filter per independent component
// (1 for scalars, 3 for vectors, 4 for quaternions) and gates the filtered
// motion through a hysteresis window: motion below the inner window is fully
// suppressed (the output holds bitwise still), motion beyond the outer
// window passes the filtered value through unchanged, and the band in
// between blends linearly. This removes residual sub-threshold jitter during
// near-stationary holds without adding lag to deliberate motion.
//
// The rotation variant resolves the quaternion double-cover before
// filtering: a sample that is the antipodal representation of the previous
// output is negated so interpolation always takes the shorter arc, and the
// window gate uses the quaternion angular difference rather than a
// component-wise distance.
//
// All per-tick calls take dt explicitly; the filters never read a clock.
package hysteresis
