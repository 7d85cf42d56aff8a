package gmm

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestWeighting_IdentityWeight(t *testing.T) {
	w := IdentityWeight(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if got := w.At(i, j); got != want {
				t.Errorf("w[%d][%d]: expected %v, got %v", i, j, want, got)
			}
		}
	}
}

func TestWeighting_InverseWeight(t *testing.T) {
	omega := mat.NewSymDense(2, []float64{
		2, 0,
		0, 4,
	})

	inv, err := InverseWeight(omega)
	if err != nil {
		t.Fatalf("InverseWeight failed: %v", err)
	}
	if got := inv.At(0, 0); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("inv[0][0]: expected 0.5, got %v", got)
	}
	if got := inv.At(1, 1); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("inv[1][1]: expected 0.25, got %v", got)
	}
	if got := inv.At(0, 1); math.Abs(got) > 1e-12 {
		t.Errorf("inv[0][1]: expected 0, got %v", got)
	}
}

func TestWeighting_InverseWeightSingular(t *testing.T) {
	// Perfectly collinear moments produce a rank-deficient covariance.
	omega := mat.NewSymDense(2, []float64{
		1, 1,
		1, 1,
	})

	if _, err := InverseWeight(omega); !errors.Is(err, ErrSingularCovariance) {
		t.Errorf("Expected ErrSingularCovariance, got %v", err)
	}
}
