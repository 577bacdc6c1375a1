package oneeuro

import (
	"math"
	"testing"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		freqHz  float64
		opts    []Option
		wantErr bool
	}{
		{name: "defaults", freqHz: 60, wantErr: false},
		{name: "zero_frequency", freqHz: 0, wantErr: true},
		{name: "negative_frequency", freqHz: -10, wantErr: true},
		{name: "nan_frequency", freqHz: math.NaN(), wantErr: true},
		{name: "valid_tunables", freqHz: 60, opts: []Option{WithMinCutoff(0.5), WithBeta(2), WithDerivativeCutoff(1.5)}, wantErr: false},
		{name: "zero_min_cutoff", freqHz: 60, opts: []Option{WithMinCutoff(0)}, wantErr: true},
		{name: "negative_beta", freqHz: 60, opts: []Option{WithBeta(-0.1)}, wantErr: true},
		{name: "zero_derivative_cutoff", freqHz: 60, opts: []Option{WithDerivativeCutoff(0)}, wantErr: true},
		{name: "invalid_mapping", freqHz: 60, opts: []Option{WithWeightMapping(Mapping(99))}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.freqHz, tt.opts...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFirstSamplePassThrough(t *testing.T) {
	f, err := New(60)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got := f.Filter(3.25, 1.0/60)
	if got != 3.25 {
		t.Fatalf("first sample = %v, want 3.25", got)
	}

	if !f.IsInitialized() {
		t.Fatal("filter not initialized after first sample")
	}
}

func TestFrequencyReestimation(t *testing.T) {
	f, err := New(60)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	f.Filter(0, 1.0/120)
	if f.FrequencyHz() != 120 {
		t.Fatalf("FrequencyHz() = %v, want 120", f.FrequencyHz())
	}

	// Degenerate dt keeps the previous estimate.
	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		f.Filter(0, dt)
		if f.FrequencyHz() != 120 {
			t.Fatalf("FrequencyHz() = %v after dt=%v, want 120", f.FrequencyHz(), dt)
		}
	}
}

func TestNonFiniteSampleSkipsUpdate(t *testing.T) {
	const dt = 1.0 / 60

	f, err := New(60, WithMinCutoff(1), WithBeta(0.5))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	control, err := New(60, WithMinCutoff(1), WithBeta(0.5))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	f.Filter(1, dt)
	control.Filter(1, dt)

	got := f.Filter(math.NaN(), dt)
	if got != control.LastValue() {
		t.Fatalf("Filter(NaN) = %v, want previous output %v", got, control.LastValue())
	}

	// The rejected sample must not pollute the derivative path either:
	// both filters must agree bit-for-bit on all subsequent samples.
	for _, v := range []float64{1.2, 1.5, 1.4, 1.8} {
		a := f.Filter(v, dt)
		b := control.Filter(v, dt)
		if a != b {
			t.Fatalf("diverged after NaN: got %v, want %v", a, b)
		}
	}
}

// rampError accumulates |output - input| for a constant-velocity ramp.
func rampError(t *testing.T, beta, perTick, dt float64, ticks int) float64 {
	t.Helper()

	f, err := New(1/dt, WithMinCutoff(1), WithBeta(beta))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	sum := 0.0
	value := 0.0
	for range ticks {
		out := f.Filter(value, dt)
		sum += math.Abs(out - value)
		value += perTick
	}
	return sum
}

func TestSpeedAdaptivityReducesLag(t *testing.T) {
	const dt = 1.0 / 60

	// Same fast ramp: a nonzero beta must strictly reduce accumulated lag.
	rigid := rampError(t, 0, 0.01, dt, 200)
	adaptive := rampError(t, 5, 0.01, dt, 200)
	if adaptive >= rigid {
		t.Fatalf("beta>0 accumulated error %v, want < %v", adaptive, rigid)
	}

	// Identical displacement at different rates: the fast traversal must
	// accumulate strictly less error than the slow one for beta > 0.
	fast := rampError(t, 5, 0.01, dt, 100)
	slow := rampError(t, 5, 0.0025, dt, 400)
	if fast >= slow {
		t.Fatalf("fast ramp error %v, want < slow ramp error %v", fast, slow)
	}
}

func TestStationaryInputConverges(t *testing.T) {
	f, err := New(60, WithMinCutoff(1), WithBeta(1))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out := 0.0
	for range 600 {
		out = f.Filter(2.5, 1.0/60)
	}

	if math.Abs(out-2.5) > 1e-9 {
		t.Fatalf("output = %v, want convergence to 2.5", out)
	}
}

func TestSettersTakeEffectNextCall(t *testing.T) {
	f, err := New(60)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := f.SetMinCutoff(0.25); err != nil {
		t.Fatalf("SetMinCutoff() error = %v", err)
	}
	if err := f.SetBeta(3); err != nil {
		t.Fatalf("SetBeta() error = %v", err)
	}
	if err := f.SetDerivativeCutoff(2); err != nil {
		t.Fatalf("SetDerivativeCutoff() error = %v", err)
	}

	if f.MinCutoff() != 0.25 || f.Beta() != 3 || f.DerivativeCutoff() != 2 {
		t.Fatalf("tunables = (%v, %v, %v), want (0.25, 3, 2)",
			f.MinCutoff(), f.Beta(), f.DerivativeCutoff())
	}

	if err := f.SetMinCutoff(-1); err == nil {
		t.Fatal("SetMinCutoff(-1) expected error")
	}
	if err := f.SetBeta(math.NaN()); err == nil {
		t.Fatal("SetBeta(NaN) expected error")
	}
	if err := f.SetDerivativeCutoff(0); err == nil {
		t.Fatal("SetDerivativeCutoff(0) expected error")
	}
}

func TestResetReproducesSequence(t *testing.T) {
	f, err := New(60, WithMinCutoff(0.8), WithBeta(2))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	inputs := []float64{0, 0.2, 0.5, 0.4, 0.9, 1.2, 1.1}

	first := make([]float64, 0, len(inputs))
	for _, v := range inputs {
		first = append(first, f.Filter(v, 1.0/60))
	}

	f.Reset()
	if f.IsInitialized() {
		t.Fatal("Reset() left filter initialized")
	}
	if f.FrequencyHz() != 60 {
		t.Fatalf("FrequencyHz() = %v after Reset(), want 60", f.FrequencyHz())
	}

	for i, v := range inputs {
		got := f.Filter(v, 1.0/60)
		if got != first[i] {
			t.Fatalf("tick %d: %v != %v after Reset()", i, got, first[i])
		}
	}
}

func TestWeightMappings(t *testing.T) {
	const dt = 1.0 / 60

	inputs := []float64{0, 0.3, 0.7, 1.1, 1.0, 0.9}

	exact, err := New(60, WithWeightMapping(MappingExponential))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	light, err := New(60, WithWeightMapping(MappingExponentialLightweight))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for i, v := range inputs {
		a := exact.Filter(v, dt)
		b := light.Filter(v, dt)
		if math.Abs(a-b) > 1e-2 {
			t.Fatalf("tick %d: lightweight output %v deviates from exact %v", i, b, a)
		}
	}
}

func TestMappingString(t *testing.T) {
	tests := []struct {
		mapping Mapping
		want    string
	}{
		{MappingRational, "rational"},
		{MappingExponential, "exponential"},
		{MappingExponentialLightweight, "exponential_lightweight"},
		{Mapping(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mapping.String(); got != tt.want {
			t.Fatalf("Mapping(%d).String() = %q, want %q", tt.mapping, got, tt.want)
		}
	}
}
