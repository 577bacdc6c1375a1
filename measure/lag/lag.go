package lag

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptyInput indicates an empty raw or filtered trace.
	ErrEmptyInput = errors.New("lag: empty input")
	// ErrLengthMismatch indicates raw and filtered traces of different length.
	ErrLengthMismatch = errors.New("lag: raw and filtered lengths differ")
)

// Result summarizes a filtered trace against its raw input.
type Result struct {
	// LagTicks is the delay of the filtered trace behind the raw trace, in
	// ticks, estimated from the cross-correlation peak.
	LagTicks int
	// LagSeconds is LagTicks converted by the tick rate.
	LagSeconds float64
	// ResidualRMS is the root-mean-square of filtered minus raw.
	ResidualRMS float64
	// ResidualPeak is the largest absolute residual.
	ResidualPeak float64
	// SuppressionDB compares tick-to-tick jitter power before and after
	// filtering (10*log10 convention). Positive values mean the filter
	// removed jitter; +Inf means the filtered trace is perfectly still.
	SuppressionDB float64
}

// TickFilter is a per-tick scalar filter. It is satisfied by
// oneeuro.Filter and hysteresis.Scalar.
type TickFilter interface {
	Filter(value, dt float64) float64
}

// Run drives a per-tick filter over input at the given tick rate and
// analyzes the raw/filtered pair. The filtered trace is returned alongside
// the analysis.
func Run(f TickFilter, input []float64, rateHz float64) (Result, []float64, error) {
	if len(input) == 0 {
		return Result{}, nil, ErrEmptyInput
	}
	if f == nil {
		return Result{}, nil, errors.New("lag: nil filter")
	}
	if !isFinite(rateHz) || rateHz <= 0 {
		return Result{}, nil, fmt.Errorf("lag: tick rate must be > 0 and finite: %f", rateHz)
	}

	dt := 1 / rateHz
	filtered := make([]float64, len(input))
	for i, v := range input {
		filtered[i] = f.Filter(v, dt)
	}

	res, err := Analyze(input, filtered, rateHz)
	if err != nil {
		return Result{}, nil, err
	}

	return res, filtered, nil
}

// Analyze estimates lag and residual statistics for a raw/filtered pair
// sampled at the given tick rate.
func Analyze(raw, filtered []float64, rateHz float64) (Result, error) {
	if len(raw) == 0 || len(filtered) == 0 {
		return Result{}, ErrEmptyInput
	}
	if len(raw) != len(filtered) {
		return Result{}, ErrLengthMismatch
	}
	if !isFinite(rateHz) || rateHz <= 0 {
		return Result{}, fmt.Errorf("lag: tick rate must be > 0 and finite: %f", rateHz)
	}

	n := len(raw)

	residualRMS := 0.0
	residualPeak := 0.0
	for i := range raw {
		d := filtered[i] - raw[i]
		residualRMS += d * d
		if a := math.Abs(d); a > residualPeak {
			residualPeak = a
		}
	}
	residualRMS = math.Sqrt(residualRMS / float64(n))

	lagTicks, err := correlationLag(raw, filtered)
	if err != nil {
		return Result{}, err
	}

	return Result{
		LagTicks:      lagTicks,
		LagSeconds:    float64(lagTicks) / rateHz,
		ResidualRMS:   residualRMS,
		ResidualPeak:  residualPeak,
		SuppressionDB: suppressionDB(raw, filtered),
	}, nil
}

// correlationLag locates the delay of filtered behind raw at the peak of
// their zero-padded FFT cross-correlation. Only non-negative delays up to
// half the trace length are considered.
func correlationLag(raw, filtered []float64) (int, error) {
	n := len(raw)
	if n == 1 {
		return 0, nil
	}

	fftSize := nextPowerOf2(2 * n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("lag: failed to create FFT plan: %w", err)
	}

	rawMean := stat.Mean(raw, nil)
	filteredMean := stat.Mean(filtered, nil)

	rawPadded := make([]complex128, fftSize)
	filteredPadded := make([]complex128, fftSize)
	for i := range n {
		rawPadded[i] = complex(raw[i]-rawMean, 0)
		filteredPadded[i] = complex(filtered[i]-filteredMean, 0)
	}

	rawFreq := make([]complex128, fftSize)
	if err := plan.Forward(rawFreq, rawPadded); err != nil {
		return 0, fmt.Errorf("lag: forward FFT failed: %w", err)
	}

	filteredFreq := make([]complex128, fftSize)
	if err := plan.Forward(filteredFreq, filteredPadded); err != nil {
		return 0, fmt.Errorf("lag: forward FFT failed: %w", err)
	}

	// Cross-spectrum conj(raw)*filtered; its inverse transform peaks at the
	// delay of filtered relative to raw.
	crossFreq := make([]complex128, fftSize)
	for i := range crossFreq {
		crossFreq[i] = cmplx.Conj(rawFreq[i]) * filteredFreq[i]
	}

	crossTime := make([]complex128, fftSize)
	if err := plan.Inverse(crossTime, crossFreq); err != nil {
		return 0, fmt.Errorf("lag: inverse FFT failed: %w", err)
	}

	maxLag := n / 2
	re := make([]float64, maxLag+1)
	im := make([]float64, maxLag+1)
	for k := range maxLag + 1 {
		re[k] = real(crossTime[k])
		im[k] = imag(crossTime[k])
	}

	mag := make([]float64, maxLag+1)
	vecmath.Magnitude(mag, re, im)

	best := 0
	for k, m := range mag {
		if m > mag[best] {
			best = k
		}
	}

	return best, nil
}

// suppressionDB compares the tick-to-tick difference variance of the raw
// and filtered traces, a proxy for jitter power.
func suppressionDB(raw, filtered []float64) float64 {
	before := diffVariance(raw)
	after := diffVariance(filtered)

	if before == 0 && after == 0 {
		return 0
	}
	if after == 0 {
		return math.Inf(1)
	}
	if before == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(before/after)
}

func diffVariance(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}

	diffs := make([]float64, len(data)-1)
	for i := range diffs {
		diffs[i] = data[i+1] - data[i]
	}

	return stat.Variance(diffs, nil)
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size *= 2
	}
	return size
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
