package hysteresis

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cwbudde/algo-motion/internal/testutil"
)

func TestNewVectorValidation(t *testing.T) {
	if _, err := NewVector(60, 0.01, 0.02); err != nil {
		t.Fatalf("NewVector() error = %v", err)
	}

	if _, err := NewVector(60, 0.02, 0.01); err == nil {
		t.Fatal("NewVector() expected window error")
	}

	if _, err := NewVector(-1, 0.01, 0.02); err == nil {
		t.Fatal("NewVector() expected frequency error")
	}
}

func TestVectorDeadZoneHoldsBitwise(t *testing.T) {
	v, err := NewVector(60, 0.01, 0.02)
	if err != nil {
		t.Fatalf("NewVector() error = %v", err)
	}

	anchor := r3.Vec{X: 1, Y: -2, Z: 0.5}
	v.Filter(anchor, tickDT)

	// Jitter within 0.005 of the held output must not move it at all.
	for i := range 100 {
		angle := float64(i) * 0.37
		sample := r3.Add(anchor, r3.Vec{
			X: 0.004 * math.Cos(angle),
			Y: 0.004 * math.Sin(angle),
			Z: 0.001,
		})

		got := v.Filter(sample, tickDT)
		if got != anchor {
			t.Fatalf("tick %d: output %v, want bitwise %v", i, got, anchor)
		}
	}
}

func TestVectorFullPassThroughWindowOnly(t *testing.T) {
	v, err := NewVector(60, 0.01, 0.02, WithWindowOnly(true))
	if err != nil {
		t.Fatalf("NewVector() error = %v", err)
	}

	v.Filter(r3.Vec{}, tickDT)

	target := r3.Vec{X: 3, Y: 4, Z: 0}
	if got := v.Filter(target, tickDT); got != target {
		t.Fatalf("output %v, want bitwise %v", got, target)
	}
}

func TestVectorFollowsMotion(t *testing.T) {
	v, err := NewVector(60, 0.001, 0.005, WithMinCutoff(1), WithBeta(2))
	if err != nil {
		t.Fatalf("NewVector() error = %v", err)
	}

	// Constant-velocity straight line: the output must track within a small
	// bound once the adaptive cutoff has widened.
	var got r3.Vec
	var want r3.Vec
	for i := range 300 {
		want = r3.Vec{X: float64(i) * 0.05, Y: 0, Z: 0}
		got = v.Filter(want, tickDT)
	}

	if d := r3.Norm(r3.Sub(got, want)); d > 0.5 {
		t.Fatalf("tracking error %v, want <= 0.5", d)
	}
}

func TestVectorNonFiniteRejection(t *testing.T) {
	v, err := NewVector(60, 0.01, 0.02)
	if err != nil {
		t.Fatalf("NewVector() error = %v", err)
	}

	anchor := r3.Vec{X: 1, Y: 1, Z: 1}
	v.Filter(anchor, tickDT)

	bad := r3.Vec{X: math.NaN(), Y: 0, Z: 0}
	if got := v.Filter(bad, tickDT); got != anchor {
		t.Fatalf("Filter(NaN component) = %v, want held %v", got, anchor)
	}
}

func TestVectorResetReproducesSequence(t *testing.T) {
	v, err := NewVector(60, 0.002, 0.02, WithBeta(1.5))
	if err != nil {
		t.Fatalf("NewVector() error = %v", err)
	}

	inputs := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 0.1, Y: 0.05, Z: 0},
		{X: 0.101, Y: 0.051, Z: 0.001},
		{X: 0.4, Y: 0.2, Z: 0.1},
		{X: 0.9, Y: 0.4, Z: 0.3},
	}

	first := make([]r3.Vec, 0, len(inputs))
	for _, in := range inputs {
		first = append(first, v.Filter(in, tickDT))
	}

	v.Reset()
	if v.IsInitialized() {
		t.Fatal("Reset() left filter initialized")
	}

	for i, in := range inputs {
		got := v.Filter(in, tickDT)
		if got != first[i] {
			t.Fatalf("tick %d: %v != %v after Reset()", i, got, first[i])
		}
	}

	testutil.RequireVecNearlyEqual(t, v.LastOutput(), first[len(first)-1], 0)
}
