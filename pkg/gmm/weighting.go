package gmm

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var ErrSingularCovariance = errors.New("moment covariance is singular")

// IdentityWeight returns the l-by-l identity weighting matrix used as the
// first-step weighting.
func IdentityWeight(l int) *mat.SymDense {
	w := mat.NewSymDense(l, nil)
	for i := 0; i < l; i++ {
		w.SetSym(i, i, 1)
	}
	return w
}

// InverseWeight inverts an estimated moment covariance to obtain the
// efficient weighting matrix. A covariance that is not positive definite
// surfaces as ErrSingularCovariance.
func InverseWeight(omega *mat.SymDense) (*mat.SymDense, error) {
	var chol mat.Cholesky
	if ok := chol.Factorize(omega); !ok {
		return nil, ErrSingularCovariance
	}

	l := omega.SymmetricDim()
	inv := mat.NewSymDense(l, nil)
	if err := chol.InverseTo(inv); err != nil {
		return nil, fmt.Errorf("inverting moment covariance: %w", err)
	}
	return inv, nil
}
