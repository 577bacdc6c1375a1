package testutil

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// DeterministicSine generates a deterministic sine trace sampled per tick.
func DeterministicSine(freqHz, rateHz, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / rateHz
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates uniform noise with a fixed seed for
// reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Hold generates a constant-valued trace.
func Hold(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Step generates a trace that jumps from a to b at the given tick.
func Step(a, b float64, at, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		if i < at {
			out[i] = a
		} else {
			out[i] = b
		}
	}
	return out
}

// AxisRotation returns the unit quaternion rotating by angle radians about
// the given axis. The axis need not be normalized.
func AxisRotation(axis r3.Vec, angle float64) quat.Number {
	n := r3.Norm(axis)
	if n == 0 {
		return quat.Number{Real: 1}
	}

	u := r3.Scale(1/n, axis)
	s := math.Sin(angle / 2)

	return quat.Number{
		Real: math.Cos(angle / 2),
		Imag: s * u.X,
		Jmag: s * u.Y,
		Kmag: s * u.Z,
	}
}
