package lowpass

import (
	"fmt"
	"math"
)

const defaultWeight = 1.0

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	weight float64
}

func defaultConfig() config {
	return config{weight: defaultWeight}
}

// WithWeight sets the default blend weight in [0, 1].
// 1 passes raw samples through, 0 freezes the output.
func WithWeight(weight float64) Option {
	return func(cfg *config) error {
		if err := validateWeight(weight); err != nil {
			return err
		}

		cfg.weight = weight

		return nil
	}
}

// Filter is a single-pole exponential low-pass smoother.
//
// Before the first valid sample the smoothed value is undefined; the first
// valid sample is stored and returned unchanged. Afterwards each output is a
// convex combination of the previous output and the new raw value.
type Filter struct {
	weight float64

	smoothed    float64
	rawInput    float64
	initialized bool
}

// New constructs a low-pass filter.
func New(opts ...Option) (*Filter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Filter{weight: cfg.weight}, nil
}

// Weight returns the persisted default blend weight.
func (f *Filter) Weight() float64 { return f.weight }

// RawInput returns the last accepted raw sample.
func (f *Filter) RawInput() float64 { return f.rawInput }

// Smoothed returns the current smoothed value.
// Undefined (zero) before the first valid sample.
func (f *Filter) Smoothed() float64 { return f.smoothed }

// IsInitialized reports whether a valid sample has been accepted.
func (f *Filter) IsInitialized() bool { return f.initialized }

// SetWeight updates the persisted default blend weight.
// Takes effect on the next ProcessSample call.
func (f *Filter) SetWeight(weight float64) error {
	if err := validateWeight(weight); err != nil {
		return err
	}

	f.weight = weight

	return nil
}

// Reset clears all filter state. The next valid sample re-initializes.
func (f *Filter) Reset() {
	f.smoothed = 0
	f.rawInput = 0
	f.initialized = false
}

// ProcessSample filters one sample using the persisted default weight.
func (f *Filter) ProcessSample(value float64) float64 {
	return f.ProcessSampleWeighted(value, f.weight)
}

// ProcessSampleWeighted filters one sample with a per-call weight in [0, 1].
//
// Non-finite input returns the current smoothed value and leaves all state
// untouched. The per-call weight is not persisted; it is clamped to [0, 1]
// rather than rejected since it arrives on the hot per-tick path.
func (f *Filter) ProcessSampleWeighted(value, weight float64) float64 {
	if !isFinite(value) {
		return f.smoothed
	}

	if !f.initialized {
		f.smoothed = value
		f.rawInput = value
		f.initialized = true

		return value
	}

	if !isFinite(weight) {
		weight = f.weight
	}

	if weight < 0 {
		weight = 0
	} else if weight > 1 {
		weight = 1
	}

	f.smoothed = weight*value + (1-weight)*f.smoothed
	f.rawInput = value

	return f.smoothed
}

// ProcessInPlace filters a sample buffer in place.
func (f *Filter) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = f.ProcessSample(buf[i])
	}
}

// ProcessTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessTo(dst, src []float64) {
	n := len(src)
	if n == 0 {
		return
	}

	_ = dst[n-1]
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

func validateWeight(weight float64) error {
	if !isFinite(weight) {
		return fmt.Errorf("lowpass: weight must be finite: %v", weight)
	}

	if weight < 0 || weight > 1 {
		return fmt.Errorf("lowpass: weight must be in [0, 1]: %f", weight)
	}

	return nil
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
