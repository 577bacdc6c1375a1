package testutil

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/num/quat"
)

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	if err != nil {
		t.Fatalf("MaxAbsDiff() error = %v", err)
	}
	if d != 1 {
		t.Fatalf("MaxAbsDiff() = %v, want 1", d)
	}

	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestAngularDistanceDoubleCover(t *testing.T) {
	q := quat.Number{Real: math.Cos(0.3), Imag: math.Sin(0.3)}
	neg := quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}

	if a := AngularDistance(q, q); a > 1e-12 {
		t.Fatalf("AngularDistance(q, q) = %v, want 0", a)
	}

	// q and -q represent the same rotation.
	if a := AngularDistance(q, neg); a > 1e-12 {
		t.Fatalf("AngularDistance(q, -q) = %v, want 0", a)
	}
}
