// Package trajectory generates deterministic motion trajectories for tests,
// measurements, and demos: scalar traces, 3D paths, and unit-quaternion
// orientation sweeps, all sampled at a fixed tick rate with optional seeded
// jitter.
package trajectory

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cwbudde/algo-motion/motion/core"
)

// Generator creates deterministic trajectories from a shared configuration.
type Generator struct {
	cfg  core.ClockConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for jitter generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured trajectory generator.
func NewGenerator(opts ...core.ClockOption) *Generator {
	return &Generator{
		cfg:  core.ApplyClockOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured trajectory generator with
// generator-specific options.
func NewGeneratorWithOptions(clockOpts []core.ClockOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyClockOptions(clockOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator clock configuration.
func (g *Generator) Config() core.ClockConfig {
	return g.cfg
}

// DT returns the tick interval in seconds.
func (g *Generator) DT() float64 {
	return 1 / g.cfg.RateHz
}

// Hold generates a constant-valued scalar trace.
func (g *Generator) Hold(value float64, ticks int) ([]float64, error) {
	if ticks <= 0 {
		return nil, fmt.Errorf("trajectory: hold ticks must be > 0: %d", ticks)
	}
	out := make([]float64, ticks)
	for i := range out {
		out[i] = value
	}
	return out, nil
}

// Step generates a scalar trace that jumps from one value to another at the
// given tick.
func (g *Generator) Step(from, to float64, at, ticks int) ([]float64, error) {
	if ticks <= 0 {
		return nil, fmt.Errorf("trajectory: step ticks must be > 0: %d", ticks)
	}
	if at < 0 || at > ticks {
		return nil, fmt.Errorf("trajectory: step position must be in [0, %d]: %d", ticks, at)
	}
	out := make([]float64, ticks)
	for i := range out {
		if i < at {
			out[i] = from
		} else {
			out[i] = to
		}
	}
	return out, nil
}

// Sine generates a sinusoidal scalar trace.
func (g *Generator) Sine(freqHz, amplitude float64, ticks int) ([]float64, error) {
	if ticks <= 0 {
		return nil, fmt.Errorf("trajectory: sine ticks must be > 0: %d", ticks)
	}
	if g.cfg.RateHz <= 0 {
		return nil, fmt.Errorf("trajectory: sine tick rate must be > 0: %f", g.cfg.RateHz)
	}
	out := make([]float64, ticks)
	step := 2 * math.Pi * freqHz / g.cfg.RateHz
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Jitter returns a copy of data with seeded uniform noise in
// [-amplitude, amplitude] added per tick.
func (g *Generator) Jitter(data []float64, amplitude float64) ([]float64, error) {
	if amplitude < 0 {
		return nil, fmt.Errorf("trajectory: jitter amplitude must be >= 0: %f", amplitude)
	}
	rng := rand.New(rand.NewSource(g.seed))
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v + (rng.Float64()*2-1)*amplitude
	}
	return out, nil
}

// Orbit generates a circular path of the given radius in the XY plane,
// completing freqHz revolutions per second.
func (g *Generator) Orbit(radius, freqHz float64, ticks int) ([]r3.Vec, error) {
	if ticks <= 0 {
		return nil, fmt.Errorf("trajectory: orbit ticks must be > 0: %d", ticks)
	}
	if radius < 0 {
		return nil, fmt.Errorf("trajectory: orbit radius must be >= 0: %f", radius)
	}
	if g.cfg.RateHz <= 0 {
		return nil, fmt.Errorf("trajectory: orbit tick rate must be > 0: %f", g.cfg.RateHz)
	}
	out := make([]r3.Vec, ticks)
	step := 2 * math.Pi * freqHz / g.cfg.RateHz
	for i := range out {
		angle := step * float64(i)
		out[i] = r3.Vec{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return out, nil
}

// VectorHold generates a constant 3D path.
func (g *Generator) VectorHold(p r3.Vec, ticks int) ([]r3.Vec, error) {
	if ticks <= 0 {
		return nil, fmt.Errorf("trajectory: vector hold ticks must be > 0: %d", ticks)
	}
	out := make([]r3.Vec, ticks)
	for i := range out {
		out[i] = p
	}
	return out, nil
}

// JitterVec returns a copy of path with seeded uniform noise in
// [-amplitude, amplitude] added to every component.
func (g *Generator) JitterVec(path []r3.Vec, amplitude float64) ([]r3.Vec, error) {
	if amplitude < 0 {
		return nil, fmt.Errorf("trajectory: jitter amplitude must be >= 0: %f", amplitude)
	}
	rng := rand.New(rand.NewSource(g.seed))
	out := make([]r3.Vec, len(path))
	for i, p := range path {
		out[i] = r3.Vec{
			X: p.X + (rng.Float64()*2-1)*amplitude,
			Y: p.Y + (rng.Float64()*2-1)*amplitude,
			Z: p.Z + (rng.Float64()*2-1)*amplitude,
		}
	}
	return out, nil
}

// Spin generates a unit-quaternion sweep rotating about the given axis at a
// constant angular rate in radians per second.
func (g *Generator) Spin(axis r3.Vec, rateRadPerSec float64, ticks int) ([]quat.Number, error) {
	if ticks <= 0 {
		return nil, fmt.Errorf("trajectory: spin ticks must be > 0: %d", ticks)
	}
	n := r3.Norm(axis)
	if n == 0 {
		return nil, fmt.Errorf("trajectory: spin axis must be non-zero")
	}
	if g.cfg.RateHz <= 0 {
		return nil, fmt.Errorf("trajectory: spin tick rate must be > 0: %f", g.cfg.RateHz)
	}

	u := r3.Scale(1/n, axis)
	dt := 1 / g.cfg.RateHz
	out := make([]quat.Number, ticks)
	for i := range out {
		half := rateRadPerSec * dt * float64(i) / 2
		s := math.Sin(half)
		out[i] = quat.Number{
			Real: math.Cos(half),
			Imag: s * u.X,
			Jmag: s * u.Y,
			Kmag: s * u.Z,
		}
	}
	return out, nil
}

// SignFlip returns a copy of qs with every k-th quaternion negated. The
// negated entries represent the same rotations; the flipped signs exercise
// double-cover handling in downstream consumers.
func SignFlip(qs []quat.Number, every int) ([]quat.Number, error) {
	if every <= 0 {
		return nil, fmt.Errorf("trajectory: sign flip interval must be > 0: %d", every)
	}
	out := make([]quat.Number, len(qs))
	for i, q := range qs {
		if i%every == 0 {
			out[i] = quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
		} else {
			out[i] = q
		}
	}
	return out, nil
}
