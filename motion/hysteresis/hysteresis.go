package hysteresis

import (
	"fmt"

	"github.com/cwbudde/algo-motion/motion/core"
	"github.com/cwbudde/algo-motion/motion/oneeuro"
)

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	oneeuroOpts []oneeuro.Option
	windowOnly  bool
}

// WithMinCutoff sets the minimum cutoff frequency of every sub-filter.
func WithMinCutoff(minCutoff float64) Option {
	return func(cfg *config) error {
		cfg.oneeuroOpts = append(cfg.oneeuroOpts, oneeuro.WithMinCutoff(minCutoff))
		return nil
	}
}

// WithBeta sets the speed coefficient of every sub-filter.
func WithBeta(beta float64) Option {
	return func(cfg *config) error {
		cfg.oneeuroOpts = append(cfg.oneeuroOpts, oneeuro.WithBeta(beta))
		return nil
	}
}

// WithDerivativeCutoff sets the derivative smoothing cutoff of every
// sub-filter.
func WithDerivativeCutoff(derivativeCutoff float64) Option {
	return func(cfg *config) error {
		cfg.oneeuroOpts = append(cfg.oneeuroOpts, oneeuro.WithDerivativeCutoff(derivativeCutoff))
		return nil
	}
}

// WithWeightMapping selects the cutoff-to-weight mapping of every
// sub-filter.
func WithWeightMapping(mapping oneeuro.Mapping) Option {
	return func(cfg *config) error {
		cfg.oneeuroOpts = append(cfg.oneeuroOpts, oneeuro.WithWeightMapping(mapping))
		return nil
	}
}

// WithWindowOnly bypasses the speed-adaptive smoothing and applies the
// hysteresis window alone.
func WithWindowOnly(windowOnly bool) Option {
	return func(cfg *config) error {
		cfg.windowOnly = windowOnly
		return nil
	}
}

// bank holds one speed-adaptive sub-filter per independent component plus
// the shared hysteresis window state.
type bank struct {
	filters    []*oneeuro.Filter
	inner      float64
	outer      float64
	windowOnly bool
}

func newBank(components int, freqHz, inner, outer float64, opts []Option) (*bank, error) {
	if err := validateWindows(inner, outer); err != nil {
		return nil, err
	}

	cfg := config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	filters := make([]*oneeuro.Filter, components)
	for i := range filters {
		f, err := oneeuro.New(freqHz, cfg.oneeuroOpts...)
		if err != nil {
			return nil, err
		}
		filters[i] = f
	}

	return &bank{
		filters:    filters,
		inner:      inner,
		outer:      outer,
		windowOnly: cfg.windowOnly,
	}, nil
}

// ratio maps a motion distance into the hysteresis blend factor:
// 0 below the inner window, 1 beyond the outer window, linear in between.
func (b *bank) ratio(distance float64) float64 {
	return core.Clamp01((distance - b.inner) / (b.outer - b.inner))
}

// InnerWindow returns the inner (dead-zone) window threshold.
func (b *bank) InnerWindow() float64 { return b.inner }

// OuterWindow returns the outer (full pass-through) window threshold.
func (b *bank) OuterWindow() float64 { return b.outer }

// WindowOnly reports whether speed-adaptive smoothing is bypassed.
func (b *bank) WindowOnly() bool { return b.windowOnly }

// MinCutoff returns the minimum cutoff frequency of the sub-filters.
func (b *bank) MinCutoff() float64 { return b.filters[0].MinCutoff() }

// Beta returns the speed coefficient of the sub-filters.
func (b *bank) Beta() float64 { return b.filters[0].Beta() }

// DerivativeCutoff returns the derivative smoothing cutoff of the
// sub-filters.
func (b *bank) DerivativeCutoff() float64 { return b.filters[0].DerivativeCutoff() }

// SetInnerWindow updates the inner window threshold.
func (b *bank) SetInnerWindow(inner float64) error {
	if err := validateWindows(inner, b.outer); err != nil {
		return err
	}

	b.inner = inner

	return nil
}

// SetOuterWindow updates the outer window threshold.
func (b *bank) SetOuterWindow(outer float64) error {
	if err := validateWindows(b.inner, outer); err != nil {
		return err
	}

	b.outer = outer

	return nil
}

// SetWindowOnly enables or disables the smoothing bypass. Call Reset after
// re-enabling smoothing to discard stale sub-filter state.
func (b *bank) SetWindowOnly(windowOnly bool) {
	b.windowOnly = windowOnly
}

// SetMinCutoff updates the minimum cutoff frequency of every sub-filter.
func (b *bank) SetMinCutoff(minCutoff float64) error {
	for _, f := range b.filters {
		if err := f.SetMinCutoff(minCutoff); err != nil {
			return err
		}
	}

	return nil
}

// SetBeta updates the speed coefficient of every sub-filter.
func (b *bank) SetBeta(beta float64) error {
	for _, f := range b.filters {
		if err := f.SetBeta(beta); err != nil {
			return err
		}
	}

	return nil
}

// SetDerivativeCutoff updates the derivative smoothing cutoff of every
// sub-filter.
func (b *bank) SetDerivativeCutoff(derivativeCutoff float64) error {
	for _, f := range b.filters {
		if err := f.SetDerivativeCutoff(derivativeCutoff); err != nil {
			return err
		}
	}

	return nil
}

func (b *bank) reset() {
	for _, f := range b.filters {
		f.Reset()
	}
}

func validateWindows(inner, outer float64) error {
	if !core.IsFinite(inner) || inner < 0 {
		return fmt.Errorf("hysteresis: inner window must be >= 0 and finite: %v", inner)
	}

	if !core.IsFinite(outer) || outer <= inner {
		return fmt.Errorf("hysteresis: outer window must be finite and > inner window (%v): %v", inner, outer)
	}

	return nil
}
