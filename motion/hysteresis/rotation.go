package hysteresis

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/cwbudde/algo-motion/motion/core"
)

// Rotation filters a unit-quaternion orientation signal. The four
// components run independent speed-adaptive sub-filters; the hysteresis
// window gates on the quaternion angular difference between the incoming
// sample and the held output, and the blend is a spherical interpolation.
//
// Incoming samples are expected to be unit quaternions. A sample on the far
// side of the double-cover (dot product with the held output below zero) is
// negated before filtering so interpolation always takes the shorter arc.
type Rotation struct {
	*bank

	lastOutput  quat.Number
	initialized bool
}

// NewRotation constructs a rotation hysteresis filter. The windows are in
// radians of angular difference and must satisfy 0 <= inner < outer.
func NewRotation(freqHz, inner, outer float64, opts ...Option) (*Rotation, error) {
	b, err := newBank(4, freqHz, inner, outer, opts)
	if err != nil {
		return nil, err
	}

	return &Rotation{bank: b}, nil
}

// LastOutput returns the most recent output orientation.
// Undefined (zero quaternion) before the first valid sample.
func (r *Rotation) LastOutput() quat.Number { return r.lastOutput }

// IsInitialized reports whether a valid sample has been accepted.
func (r *Rotation) IsInitialized() bool { return r.initialized }

// Reset reinitializes every sub-filter and clears the held output.
func (r *Rotation) Reset() {
	r.reset()
	r.lastOutput = quat.Number{}
	r.initialized = false
}

// Filter processes one orientation sample with the elapsed time dt since
// the previous sample. Samples with any non-finite component are rejected
// and the held output is returned.
func (r *Rotation) Filter(value quat.Number, dt float64) quat.Number {
	if !quatIsFinite(value) {
		return r.lastOutput
	}

	if !r.initialized {
		if !r.windowOnly {
			r.filterComponents(value, dt)
		}

		r.lastOutput = value
		r.initialized = true

		return value
	}

	// Resolve the double-cover: q and -q are the same rotation, so pick the
	// representation on the shorter arc from the held output.
	dot := quatDot(value, r.lastOutput)
	if dot < 0 {
		value = quatNeg(value)
		dot = -dot
	}

	if dot > 1 {
		dot = 1
	}
	distance := 2 * math.Acos(dot)

	rawFiltered := value
	if !r.windowOnly {
		rawFiltered = quatNormalize(r.filterComponents(value, dt), r.lastOutput)
	}

	out := slerp(r.lastOutput, rawFiltered, r.ratio(distance))
	r.lastOutput = out

	return out
}

func (r *Rotation) filterComponents(value quat.Number, dt float64) quat.Number {
	return quat.Number{
		Real: r.filters[0].Filter(value.Real, dt),
		Imag: r.filters[1].Filter(value.Imag, dt),
		Jmag: r.filters[2].Filter(value.Jmag, dt),
		Kmag: r.filters[3].Filter(value.Kmag, dt),
	}
}

// slerp spherically interpolates from a to b. t == 0 returns a exactly and
// t == 1 returns b exactly; near-parallel inputs fall back to normalized
// linear interpolation for numerical stability.
func slerp(a, b quat.Number, t float64) quat.Number {
	if t == 0 {
		return a
	}

	if t == 1 {
		return b
	}

	dot := quatDot(a, b)
	if dot < 0 {
		b = quatNeg(b)
		dot = -dot
	}

	if dot > 1-1e-9 {
		mixed := quat.Number{
			Real: core.Lerp(a.Real, b.Real, t),
			Imag: core.Lerp(a.Imag, b.Imag, t),
			Jmag: core.Lerp(a.Jmag, b.Jmag, t),
			Kmag: core.Lerp(a.Kmag, b.Kmag, t),
		}

		return quatNormalize(mixed, a)
	}

	theta := math.Acos(dot)
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta

	return quat.Number{
		Real: wa*a.Real + wb*b.Real,
		Imag: wa*a.Imag + wb*b.Imag,
		Jmag: wa*a.Jmag + wb*b.Jmag,
		Kmag: wa*a.Kmag + wb*b.Kmag,
	}
}

func quatDot(a, b quat.Number) float64 {
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}

func quatNeg(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}

// quatNormalize scales q to unit length, falling back to the previous
// output when the components have collapsed to zero.
func quatNormalize(q, fallback quat.Number) quat.Number {
	n := math.Sqrt(quatDot(q, q))
	if n == 0 || !core.IsFinite(n) {
		return fallback
	}

	inv := 1 / n

	return quat.Number{Real: q.Real * inv, Imag: q.Imag * inv, Jmag: q.Jmag * inv, Kmag: q.Kmag * inv}
}

func quatIsFinite(q quat.Number) bool {
	return core.IsFinite(q.Real) && core.IsFinite(q.Imag) &&
		core.IsFinite(q.Jmag) && core.IsFinite(q.Kmag)
}
