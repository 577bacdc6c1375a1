package hysteresis

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cwbudde/algo-motion/motion/core"
)

// Vector filters a 3D position signal. Each axis runs an independent
// speed-adaptive sub-filter; the hysteresis window gates on the Euclidean
// distance between the incoming sample and the held output.
type Vector struct {
	*bank

	lastOutput  r3.Vec
	initialized bool
}

// NewVector constructs a vector hysteresis filter. The windows are explicit
// construction parameters and must satisfy 0 <= inner < outer.
func NewVector(freqHz, inner, outer float64, opts ...Option) (*Vector, error) {
	b, err := newBank(3, freqHz, inner, outer, opts)
	if err != nil {
		return nil, err
	}

	return &Vector{bank: b}, nil
}

// LastOutput returns the most recent output position.
// Undefined (zero vector) before the first valid sample.
func (v *Vector) LastOutput() r3.Vec { return v.lastOutput }

// IsInitialized reports whether a valid sample has been accepted.
func (v *Vector) IsInitialized() bool { return v.initialized }

// Reset reinitializes every sub-filter and clears the held output.
func (v *Vector) Reset() {
	v.reset()
	v.lastOutput = r3.Vec{}
	v.initialized = false
}

// Filter processes one position sample with the elapsed time dt since the
// previous sample. Samples with any non-finite component are rejected and
// the held output is returned.
func (v *Vector) Filter(value r3.Vec, dt float64) r3.Vec {
	if !vecIsFinite(value) {
		return v.lastOutput
	}

	if !v.initialized {
		if !v.windowOnly {
			v.filterComponents(value, dt)
		}

		v.lastOutput = value
		v.initialized = true

		return value
	}

	distance := r3.Norm(r3.Sub(value, v.lastOutput))

	rawFiltered := value
	if !v.windowOnly {
		rawFiltered = v.filterComponents(value, dt)
	}

	ratio := v.ratio(distance)
	out := r3.Vec{
		X: core.Lerp(v.lastOutput.X, rawFiltered.X, ratio),
		Y: core.Lerp(v.lastOutput.Y, rawFiltered.Y, ratio),
		Z: core.Lerp(v.lastOutput.Z, rawFiltered.Z, ratio),
	}
	v.lastOutput = out

	return out
}

func (v *Vector) filterComponents(value r3.Vec, dt float64) r3.Vec {
	return r3.Vec{
		X: v.filters[0].Filter(value.X, dt),
		Y: v.filters[1].Filter(value.Y, dt),
		Z: v.filters[2].Filter(value.Z, dt),
	}
}

func vecIsFinite(v r3.Vec) bool {
	return core.IsFinite(v.X) && core.IsFinite(v.Y) && core.IsFinite(v.Z)
}
