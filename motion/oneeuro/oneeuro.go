package oneeuro

import (
	"fmt"
	"math"

	approx "github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-motion/motion/lowpass"
)

const (
	defaultMinCutoff        = 1.0
	defaultBeta             = 0.0
	defaultDerivativeCutoff = 1.0
)

// Mapping selects how a cutoff frequency is converted into a per-call
// exponential smoothing weight.
type Mapping int

const (
	// MappingRational uses the 1 Euro formulation 1/(1 + tau/te) with
	// tau = 1/(2*pi*cutoff).
	MappingRational Mapping = iota
	// MappingExponential uses the exact one-pole step response
	// 1 - exp(-2*pi*cutoff*te).
	MappingExponential
	// MappingExponentialLightweight uses the exponential mapping with a
	// polynomial exp approximation for lower CPU use.
	MappingExponentialLightweight
)

func (m Mapping) String() string {
	switch m {
	case MappingRational:
		return "rational"
	case MappingExponential:
		return "exponential"
	case MappingExponentialLightweight:
		return "exponential_lightweight"
	default:
		return "unknown"
	}
}

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	minCutoff        float64
	beta             float64
	derivativeCutoff float64
	mapping          Mapping
}

func defaultConfig() config {
	return config{
		minCutoff:        defaultMinCutoff,
		beta:             defaultBeta,
		derivativeCutoff: defaultDerivativeCutoff,
		mapping:          MappingRational,
	}
}

// WithMinCutoff sets the minimum cutoff frequency in Hz. Must be finite and > 0.
func WithMinCutoff(minCutoff float64) Option {
	return func(cfg *config) error {
		if err := validateMinCutoff(minCutoff); err != nil {
			return err
		}

		cfg.minCutoff = minCutoff

		return nil
	}
}

// WithBeta sets the speed coefficient. Must be finite and >= 0.
func WithBeta(beta float64) Option {
	return func(cfg *config) error {
		if err := validateBeta(beta); err != nil {
			return err
		}

		cfg.beta = beta

		return nil
	}
}

// WithDerivativeCutoff sets the derivative smoothing cutoff in Hz.
// Must be finite and > 0.
func WithDerivativeCutoff(derivativeCutoff float64) Option {
	return func(cfg *config) error {
		if err := validateDerivativeCutoff(derivativeCutoff); err != nil {
			return err
		}

		cfg.derivativeCutoff = derivativeCutoff

		return nil
	}
}

// WithWeightMapping selects the cutoff-to-weight mapping.
func WithWeightMapping(mapping Mapping) Option {
	return func(cfg *config) error {
		if !validMapping(mapping) {
			return fmt.Errorf("oneeuro: invalid weight mapping: %d", mapping)
		}

		cfg.mapping = mapping

		return nil
	}
}

// Filter is a speed-adaptive low-pass filter with O(1) state.
//
// It owns a value low-pass and a derivative low-pass; each call re-estimates
// the sampling frequency from dt, smooths the finite-difference derivative,
// derives an adaptive cutoff from the smoothed speed, and blends the new
// sample with that cutoff's weight.
type Filter struct {
	initialFreqHz float64
	freqHz        float64

	minCutoff        float64
	beta             float64
	derivativeCutoff float64
	mapping          Mapping

	value      *lowpass.Filter
	derivative *lowpass.Filter
}

// New constructs a speed-adaptive filter with the given initial sampling
// frequency in Hz. The frequency is re-estimated from dt on every call; the
// constructor value only covers the very first sample.
func New(freqHz float64, opts ...Option) (*Filter, error) {
	if !isFinite(freqHz) || freqHz <= 0 {
		return nil, fmt.Errorf("oneeuro: frequency must be > 0 and finite: %f", freqHz)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	value, err := lowpass.New()
	if err != nil {
		return nil, err
	}

	derivative, err := lowpass.New()
	if err != nil {
		return nil, err
	}

	return &Filter{
		initialFreqHz:    freqHz,
		freqHz:           freqHz,
		minCutoff:        cfg.minCutoff,
		beta:             cfg.beta,
		derivativeCutoff: cfg.derivativeCutoff,
		mapping:          cfg.mapping,
		value:            value,
		derivative:       derivative,
	}, nil
}

// MinCutoff returns the minimum cutoff frequency in Hz.
func (f *Filter) MinCutoff() float64 { return f.minCutoff }

// Beta returns the speed coefficient.
func (f *Filter) Beta() float64 { return f.beta }

// DerivativeCutoff returns the derivative smoothing cutoff in Hz.
func (f *Filter) DerivativeCutoff() float64 { return f.derivativeCutoff }

// WeightMapping returns the cutoff-to-weight mapping.
func (f *Filter) WeightMapping() Mapping { return f.mapping }

// FrequencyHz returns the current sampling frequency estimate.
func (f *Filter) FrequencyHz() float64 { return f.freqHz }

// LastValue returns the most recent filtered output.
// Undefined (zero) before the first valid sample.
func (f *Filter) LastValue() float64 { return f.value.Smoothed() }

// RawInput returns the last accepted raw sample.
func (f *Filter) RawInput() float64 { return f.value.RawInput() }

// IsInitialized reports whether a valid sample has been accepted.
func (f *Filter) IsInitialized() bool { return f.value.IsInitialized() }

// SetMinCutoff updates the minimum cutoff frequency.
// Takes effect on the next call; past output is never recomputed.
func (f *Filter) SetMinCutoff(minCutoff float64) error {
	if err := validateMinCutoff(minCutoff); err != nil {
		return err
	}

	f.minCutoff = minCutoff

	return nil
}

// SetBeta updates the speed coefficient.
func (f *Filter) SetBeta(beta float64) error {
	if err := validateBeta(beta); err != nil {
		return err
	}

	f.beta = beta

	return nil
}

// SetDerivativeCutoff updates the derivative smoothing cutoff.
func (f *Filter) SetDerivativeCutoff(derivativeCutoff float64) error {
	if err := validateDerivativeCutoff(derivativeCutoff); err != nil {
		return err
	}

	f.derivativeCutoff = derivativeCutoff

	return nil
}

// Reset clears both inner low-pass filters and restores the constructor
// frequency. The next valid sample re-initializes.
func (f *Filter) Reset() {
	f.value.Reset()
	f.derivative.Reset()
	f.freqHz = f.initialFreqHz
}

// Filter processes one sample with the elapsed time dt (seconds) since the
// previous sample.
//
// A non-finite value is rejected without touching any state; the previous
// filtered output is returned. dt <= 0 (or non-finite dt) keeps the
// previous frequency estimate instead of dividing by zero.
func (f *Filter) Filter(value, dt float64) float64 {
	if !isFinite(value) {
		return f.value.Smoothed()
	}

	if isFinite(dt) && dt > 0 {
		f.freqHz = 1 / dt
	}

	dx := 0.0
	if f.value.IsInitialized() {
		dx = (value - f.value.RawInput()) * f.freqHz
	}

	edx := f.derivative.ProcessSampleWeighted(dx, f.weightFor(f.derivativeCutoff))
	cutoff := f.minCutoff + f.beta*math.Abs(edx)

	return f.value.ProcessSampleWeighted(value, f.weightFor(cutoff))
}

// weightFor converts a cutoff frequency into a per-call smoothing weight for
// the current sampling interval.
func (f *Filter) weightFor(cutoff float64) float64 {
	te := 1 / f.freqHz

	switch f.mapping {
	case MappingExponential:
		return 1 - math.Exp(-2*math.Pi*cutoff*te)
	case MappingExponentialLightweight:
		w := 1 - approx.FastExp(-2*math.Pi*cutoff*te)
		if w < 0 {
			return 0
		}
		if w > 1 {
			return 1
		}
		return w
	default:
		tau := 1 / (2 * math.Pi * cutoff)
		return 1 / (1 + tau/te)
	}
}

func validMapping(mapping Mapping) bool {
	return mapping >= MappingRational && mapping <= MappingExponentialLightweight
}

func validateMinCutoff(minCutoff float64) error {
	if !isFinite(minCutoff) || minCutoff <= 0 {
		return fmt.Errorf("oneeuro: min cutoff must be > 0 and finite: %v", minCutoff)
	}

	return nil
}

func validateBeta(beta float64) error {
	if !isFinite(beta) || beta < 0 {
		return fmt.Errorf("oneeuro: beta must be >= 0 and finite: %v", beta)
	}

	return nil
}

func validateDerivativeCutoff(derivativeCutoff float64) error {
	if !isFinite(derivativeCutoff) || derivativeCutoff <= 0 {
		return fmt.Errorf("oneeuro: derivative cutoff must be > 0 and finite: %v", derivativeCutoff)
	}

	return nil
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
