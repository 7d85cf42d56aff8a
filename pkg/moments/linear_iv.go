package moments

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var ErrDimensionMismatch = errors.New("observation counts do not match")

// LinearIV holds the instrumental-variable moment conditions
// g_j(theta) = z_j * (y_j - x_j'theta) for a linear structural equation
// with regressors x (n-by-k) and instruments z (n-by-l).
type LinearIV struct {
	y *mat.VecDense
	x *mat.Dense
	z *mat.Dense
}

func NewLinearIV(y []float64, x, z *mat.Dense) (*LinearIV, error) {
	n := len(y)
	xn, _ := x.Dims()
	zn, _ := z.Dims()
	if xn != n || zn != n {
		return nil, fmt.Errorf("%w: y %d, x %d, z %d", ErrDimensionMismatch, n, xn, zn)
	}
	return &LinearIV{
		y: mat.NewVecDense(n, append([]float64(nil), y...)),
		x: x,
		z: z,
	}, nil
}

func (m *LinearIV) Dims() (n, l, k int) {
	n, k = m.x.Dims()
	_, l = m.z.Dims()
	return n, l, k
}

// Residuals fills dst with each instrument row scaled by the structural
// residual y_j - x_j'theta.
func (m *LinearIV) Residuals(theta []float64, dst *mat.Dense) {
	n, l, _ := m.Dims()

	var fitted mat.VecDense
	fitted.MulVec(m.x, mat.NewVecDense(len(theta), theta))

	for i := 0; i < n; i++ {
		u := m.y.AtVec(i) - fitted.AtVec(i)
		for j := 0; j < l; j++ {
			dst.Set(i, j, m.z.At(i, j)*u)
		}
	}
}
