package simulate

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/tomas-hruska/gmmlab/pkg/moments"
)

var (
	ErrBadTheta        = errors.New("theta0 must hold intercept and slope")
	ErrNoInstruments   = errors.New("design needs at least one external instrument")
	ErrBadEndogeneity  = errors.New("endogeneity must lie in (-1, 1)")
	ErrDegenerateNoise = errors.New("error covariance is not positive definite")
)

// IVSample is one simulated draw of the linear instrumental-variable design:
// outcome y, regressors x (constant and the endogenous regressor) and
// instruments z (constant plus the external instruments).
type IVSample struct {
	Y []float64
	X *mat.Dense
	Z *mat.Dense
}

// Moments wraps the sample in its linear IV moment conditions.
func (s *IVSample) Moments() (*moments.LinearIV, error) {
	return moments.NewLinearIV(s.Y, s.X, s.Z)
}

// IVDesign simulates the structural equation y = t0 + t1*x + eps where the
// regressor x is driven by the instruments through a first stage and its
// error is correlated with eps. With a zero violation the instruments are
// valid, E[z*eps] = 0. A non-zero violation loads the last instrument into
// the structural error directly, breaking the moment condition.
type IVDesign struct {
	intercept float64
	slope     float64

	nInstruments int
	strength     float64
	endogeneity  float64
	violation    float64

	src rand.Source
}

func NewIVDesign(theta0 []float64, nInstruments int, opts ...IVOption) (*IVDesign, error) {
	if len(theta0) != 2 {
		return nil, fmt.Errorf("%w: got %d values", ErrBadTheta, len(theta0))
	}
	if nInstruments < 1 {
		return nil, ErrNoInstruments
	}

	d := &IVDesign{
		intercept:    theta0[0],
		slope:        theta0[1],
		nInstruments: nInstruments,
		strength:     1.0,
		endogeneity:  0.5,
		src:          rand.NewSource(1),
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.endogeneity <= -1 || d.endogeneity >= 1 {
		return nil, fmt.Errorf("%w: got %g", ErrBadEndogeneity, d.endogeneity)
	}
	return d, nil
}

// Theta0 returns the data-generating parameters (intercept, slope).
func (d *IVDesign) Theta0() []float64 {
	return []float64{d.intercept, d.slope}
}

// Valid reports whether the design satisfies the moment condition.
func (d *IVDesign) Valid() bool {
	return d.violation == 0
}

func (d *IVDesign) Simulate(n int) (*IVSample, error) {
	if n <= 0 {
		return nil, fmt.Errorf("sample size must be positive, got %d", n)
	}

	stdNormal := distuv.Normal{Mu: 0, Sigma: 1, Src: d.src}

	// Structural and first-stage errors are jointly normal, correlated by
	// the endogeneity parameter. That is what makes least squares
	// inconsistent here while the instruments still identify theta0.
	cov := mat.NewSymDense(2, []float64{1, d.endogeneity, d.endogeneity, 1})
	errDist, ok := distmv.NewNormal([]float64{0, 0}, cov, d.src)
	if !ok {
		return nil, ErrDegenerateNoise
	}

	pi := d.strength / float64(d.nInstruments)

	s := &IVSample{
		Y: make([]float64, n),
		X: mat.NewDense(n, 2, nil),
		Z: mat.NewDense(n, 1+d.nInstruments, nil),
	}

	ev := make([]float64, 2)
	for i := 0; i < n; i++ {
		s.Z.Set(i, 0, 1)

		var firstStage float64
		for j := 0; j < d.nInstruments; j++ {
			z := stdNormal.Rand()
			s.Z.Set(i, 1+j, z)
			firstStage += pi * z
		}

		errDist.Rand(ev)
		eps, v := ev[0], ev[1]
		if d.violation != 0 {
			eps += d.violation * s.Z.At(i, d.nInstruments)
		}

		x := firstStage + v
		s.X.Set(i, 0, 1)
		s.X.Set(i, 1, x)
		s.Y[i] = d.intercept + d.slope*x + eps
	}
	return s, nil
}
