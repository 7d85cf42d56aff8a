package moments

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Wage holds the moment conditions of the exponential wage equation
// E[z_j * (wage_j - exp(x_j'theta))] = 0. Far from the optimum the
// exponent can overflow; the resulting infinities propagate through
// ordinary floating-point arithmetic.
type Wage struct {
	wage []float64
	x    *mat.Dense
	z    *mat.Dense
}

func NewWage(wage []float64, x, z *mat.Dense) (*Wage, error) {
	n := len(wage)
	xn, _ := x.Dims()
	zn, _ := z.Dims()
	if xn != n || zn != n {
		return nil, fmt.Errorf("%w: wage %d, x %d, z %d", ErrDimensionMismatch, n, xn, zn)
	}
	return &Wage{
		wage: append([]float64(nil), wage...),
		x:    x,
		z:    z,
	}, nil
}

func (m *Wage) Dims() (n, l, k int) {
	n, k = m.x.Dims()
	_, l = m.z.Dims()
	return n, l, k
}

func (m *Wage) Residuals(theta []float64, dst *mat.Dense) {
	n, l, k := m.Dims()

	for i := 0; i < n; i++ {
		var xb float64
		for p := 0; p < k; p++ {
			xb += m.x.At(i, p) * theta[p]
		}
		r := m.wage[i] - math.Exp(xb)
		for j := 0; j < l; j++ {
			dst.Set(i, j, m.z.At(i, j)*r)
		}
	}
}
