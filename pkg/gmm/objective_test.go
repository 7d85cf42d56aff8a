package gmm

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestObjective_SampleMoments(t *testing.T) {
	g := mat.NewDense(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})

	gn := SampleMoments(g)
	if got := gn.AtVec(0); math.Abs(got-3) > 1e-12 {
		t.Errorf("Expected first moment 3, got %v", got)
	}
	if got := gn.AtVec(1); math.Abs(got-4) > 1e-12 {
		t.Errorf("Expected second moment 4, got %v", got)
	}
}

func TestObjective_MomentCovariance(t *testing.T) {
	g := mat.NewDense(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})

	// Uncentered: (1/3) * g'g computed by hand.
	omega := MomentCovariance(g, false)
	want := [][]float64{
		{35.0 / 3, 44.0 / 3},
		{44.0 / 3, 56.0 / 3},
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := omega.At(i, j); math.Abs(got-want[i][j]) > 1e-12 {
				t.Errorf("omega[%d][%d]: expected %v, got %v", i, j, want[i][j], got)
			}
		}
	}

	// Centered: variance of column 0 around its mean 3 is (4+0+4)/3.
	centered := MomentCovariance(g, true)
	if got := centered.At(0, 0); math.Abs(got-8.0/3) > 1e-12 {
		t.Errorf("centered omega[0][0]: expected %v, got %v", 8.0/3, got)
	}
}

func TestObjective_IdentityWeightEqualsScaledNorm(t *testing.T) {
	g := mat.NewDense(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})

	// With W = I the objective is n * ||gN||^2 = 3 * (9 + 16).
	j := Objective(g, IdentityWeight(2))
	if math.Abs(j-75) > 1e-12 {
		t.Errorf("Expected objective 75, got %v", j)
	}
	if j < 0 {
		t.Errorf("Objective must be non-negative under a PSD weight, got %v", j)
	}
}

type constantMoments struct {
	g *mat.Dense
	k int
}

func (m constantMoments) Dims() (n, l, k int) {
	n, l = m.g.Dims()
	return n, l, m.k
}

func (m constantMoments) Residuals(_ []float64, dst *mat.Dense) {
	dst.Copy(m.g)
}

func TestObjective_EvaluationHelpers(t *testing.T) {
	g := mat.NewDense(2, 2, []float64{
		1, 0,
		3, 2,
	})
	m := constantMoments{g: g, k: 1}

	gn := SampleMomentsAt(m, []float64{0})
	if got := gn.AtVec(0); math.Abs(got-2) > 1e-12 {
		t.Errorf("Expected first moment 2, got %v", got)
	}

	j := ObjectiveAt(m, []float64{0}, IdentityWeight(2))
	if math.Abs(j-10) > 1e-12 {
		t.Errorf("Expected objective 2*(4+1)=10, got %v", j)
	}
}
