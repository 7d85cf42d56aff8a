package gmm

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// SampleMoments returns the column means gN of an n-by-l residual matrix.
func SampleMoments(g mat.Matrix) *mat.VecDense {
	n, l := g.Dims()
	gn := mat.NewVecDense(l, nil)
	col := make([]float64, n)
	for j := 0; j < l; j++ {
		mat.Col(col, j, g)
		gn.SetVec(j, stat.Mean(col, nil))
	}
	return gn
}

// MomentCovariance estimates Omega = (1/n) * sum_j g_j g_j' from the
// residual matrix. With center set, residual rows are demeaned by gN first.
func MomentCovariance(g mat.Matrix, center bool) *mat.SymDense {
	n, l := g.Dims()

	src := g
	if center {
		gn := SampleMoments(g)
		c := mat.NewDense(n, l, nil)
		c.Apply(func(i, j int, v float64) float64 { return v - gn.AtVec(j) }, g)
		src = c
	}

	omega := mat.NewSymDense(l, nil)
	omega.SymOuterK(1/float64(n), src.T())
	return omega
}

// Objective evaluates the GMM quadratic form N*gN'*W*gN for the given
// residual matrix. Non-negative whenever w is positive semi-definite.
func Objective(g mat.Matrix, w mat.Symmetric) float64 {
	n, _ := g.Dims()
	gn := SampleMoments(g)
	return float64(n) * mat.Inner(gn, w, gn)
}

// SampleMomentsAt evaluates the sample moment vector of m at theta.
func SampleMomentsAt(m Moments, theta []float64) *mat.VecDense {
	n, l, _ := m.Dims()
	g := mat.NewDense(n, l, nil)
	m.Residuals(theta, g)
	return SampleMoments(g)
}

// ObjectiveAt evaluates the GMM objective of m at theta under w.
func ObjectiveAt(m Moments, theta []float64, w mat.Symmetric) float64 {
	n, l, _ := m.Dims()
	g := mat.NewDense(n, l, nil)
	m.Residuals(theta, g)
	return Objective(g, w)
}
