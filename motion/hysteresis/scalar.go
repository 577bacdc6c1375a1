package hysteresis

import (
	"math"

	"github.com/cwbudde/algo-motion/motion/core"
)

// Scalar filters a single scalar signal through a speed-adaptive sub-filter
// gated by a hysteresis window.
type Scalar struct {
	*bank

	lastOutput  float64
	initialized bool
}

// NewScalar constructs a scalar hysteresis filter. The windows are explicit
// construction parameters and must satisfy 0 <= inner < outer.
func NewScalar(freqHz, inner, outer float64, opts ...Option) (*Scalar, error) {
	b, err := newBank(1, freqHz, inner, outer, opts)
	if err != nil {
		return nil, err
	}

	return &Scalar{bank: b}, nil
}

// LastOutput returns the most recent output value.
// Undefined (zero) before the first valid sample.
func (s *Scalar) LastOutput() float64 { return s.lastOutput }

// IsInitialized reports whether a valid sample has been accepted.
func (s *Scalar) IsInitialized() bool { return s.initialized }

// Reset reinitializes the sub-filter and clears the held output. Call after
// retuning to restart from a clean state.
func (s *Scalar) Reset() {
	s.reset()
	s.lastOutput = 0
	s.initialized = false
}

// Filter processes one sample with the elapsed time dt since the previous
// sample. Non-finite samples are rejected and the held output is returned.
func (s *Scalar) Filter(value, dt float64) float64 {
	if !core.IsFinite(value) {
		return s.lastOutput
	}

	if !s.initialized {
		if !s.windowOnly {
			s.filters[0].Filter(value, dt)
		}

		s.lastOutput = value
		s.initialized = true

		return value
	}

	distance := math.Abs(value - s.lastOutput)

	rawFiltered := value
	if !s.windowOnly {
		rawFiltered = s.filters[0].Filter(value, dt)
	}

	out := core.Lerp(s.lastOutput, rawFiltered, s.ratio(distance))
	s.lastOutput = out

	return out
}
