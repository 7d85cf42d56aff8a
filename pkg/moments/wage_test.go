package moments

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestWage_Residuals(t *testing.T) {
	wage := []float64{2, 3}
	x := mat.NewDense(2, 2, []float64{
		1, 0,
		1, 1,
	})
	z := mat.NewDense(2, 2, []float64{
		1, 2,
		1, 3,
	})

	m, err := NewWage(wage, x, z)
	if err != nil {
		t.Fatalf("NewWage failed: %v", err)
	}

	// theta = (0, ln 2): fitted wages are exp(0)=1 and exp(ln 2)=2,
	// residuals (1, 1).
	dst := mat.NewDense(2, 2, nil)
	m.Residuals([]float64{0, math.Log(2)}, dst)

	want := [][]float64{
		{1, 2},
		{1, 3},
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := dst.At(i, j); math.Abs(got-want[i][j]) > 1e-9 {
				t.Errorf("g[%d][%d]: expected %v, got %v", i, j, want[i][j], got)
			}
		}
	}
}

func TestWage_OverflowPropagates(t *testing.T) {
	wage := []float64{1}
	x := mat.NewDense(1, 1, []float64{1})
	z := mat.NewDense(1, 1, []float64{1})

	m, err := NewWage(wage, x, z)
	if err != nil {
		t.Fatalf("NewWage failed: %v", err)
	}

	dst := mat.NewDense(1, 1, nil)
	m.Residuals([]float64{1e4}, dst)
	if got := dst.At(0, 0); !math.IsInf(got, -1) {
		t.Errorf("Expected -Inf residual on exponent overflow, got %v", got)
	}
}

func TestWage_DimensionMismatch(t *testing.T) {
	wage := []float64{1, 2, 3}
	x := mat.NewDense(2, 1, nil)
	z := mat.NewDense(3, 1, nil)

	if _, err := NewWage(wage, x, z); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Expected ErrDimensionMismatch, got %v", err)
	}
}
