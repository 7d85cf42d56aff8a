package simulate

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/tomas-hruska/gmmlab/pkg/moments"
)

// WageSample mirrors the classroom (x1, x2, p1, p2, wage) table: two
// characteristics, two price proxies correlated with them, and a wage.
type WageSample struct {
	X1, X2, P1, P2, Wage []float64
}

// Moments wraps the sample in the exponential wage-equation moment
// conditions, instrumenting the regressors (1, x1, x2) with (1, x1, p1, p2).
// One over-identifying restriction remains.
func (s *WageSample) Moments() (*moments.Wage, error) {
	n := len(s.Wage)

	x := mat.NewDense(n, 3, nil)
	z := mat.NewDense(n, 4, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, 1)
		x.Set(i, 1, s.X1[i])
		x.Set(i, 2, s.X2[i])

		z.Set(i, 0, 1)
		z.Set(i, 1, s.X1[i])
		z.Set(i, 2, s.P1[i])
		z.Set(i, 3, s.P2[i])
	}
	return moments.NewWage(s.Wage, x, z)
}

// WageDesign simulates wage = exp(t0 + t1*x1 + t2*x2) + eps with price
// proxies p1, p2 tracking the characteristics through independent noise.
type WageDesign struct {
	theta0     []float64
	noiseSigma float64
	proxySigma float64

	src rand.Source
}

func NewWageDesign(theta0 []float64, opts ...WageOption) (*WageDesign, error) {
	if len(theta0) != 3 {
		return nil, fmt.Errorf("%w: got %d values", ErrBadTheta, len(theta0))
	}

	d := &WageDesign{
		theta0:     append([]float64(nil), theta0...),
		noiseSigma: 0.5,
		proxySigma: 0.5,
		src:        rand.NewSource(1),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Theta0 returns the data-generating parameters (constant, x1, x2).
func (d *WageDesign) Theta0() []float64 {
	return append([]float64(nil), d.theta0...)
}

func (d *WageDesign) Simulate(n int) (*WageSample, error) {
	if n <= 0 {
		return nil, fmt.Errorf("sample size must be positive, got %d", n)
	}

	characteristic := distuv.Normal{Mu: 0, Sigma: 0.5, Src: d.src}
	proxyNoise := distuv.Normal{Mu: 0, Sigma: d.proxySigma, Src: d.src}
	wageNoise := distuv.Normal{Mu: 0, Sigma: d.noiseSigma, Src: d.src}

	s := &WageSample{
		X1:   make([]float64, n),
		X2:   make([]float64, n),
		P1:   make([]float64, n),
		P2:   make([]float64, n),
		Wage: make([]float64, n),
	}

	for i := 0; i < n; i++ {
		x1 := characteristic.Rand()
		x2 := characteristic.Rand()

		s.X1[i] = x1
		s.X2[i] = x2
		s.P1[i] = x1 + proxyNoise.Rand()
		s.P2[i] = x2 + proxyNoise.Rand()
		s.Wage[i] = math.Exp(d.theta0[0]+d.theta0[1]*x1+d.theta0[2]*x2) + wageNoise.Rand()
	}
	return s, nil
}
