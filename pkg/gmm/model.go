package gmm

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

var (
	ErrNoObservations  = errors.New("dataset has no observations")
	ErrUnderIdentified = errors.New("fewer moment conditions than parameters")
	ErrBadStart        = errors.New("starting point does not match parameter count")
	ErrBadWeight       = errors.New("weighting matrix does not match moment count")
)

const (
	defaultMaxSteps = 50
	defaultStepTol  = 1e-6
)

// Method selects how the weighting matrix is updated during estimation.
type Method int

const (
	// OneStep minimizes the objective once under the initial weighting matrix.
	OneStep Method = iota
	// TwoStep re-estimates the weighting matrix at the first-step estimate
	// and minimizes a second time.
	TwoStep
	// Iterated repeats the two-step update until the estimate settles.
	Iterated
	// CUE re-estimates the weighting matrix at every candidate parameter
	// inside the objective itself.
	CUE
)

func (m Method) String() string {
	switch m {
	case OneStep:
		return "one-step"
	case TwoStep:
		return "two-step"
	case Iterated:
		return "iterated"
	case CUE:
		return "cue"
	default:
		return "unknown"
	}
}

// Moments describes a model's moment conditions over a fixed dataset.
// Implementations hold the data; the estimator only sees residuals.
type Moments interface {
	// Dims reports the number of observations n, moment conditions l and
	// parameters k of the underlying model.
	Dims() (n, l, k int)
	// Residuals fills dst, an n-by-l matrix, with the per-observation
	// moment residuals evaluated at theta. The dataset must not be mutated.
	Residuals(theta []float64, dst *mat.Dense)
}

// Estimator minimizes the GMM quadratic form N*gN'*W*gN over the model
// parameters, delegating the minimization itself to gonum/optimize.
type Estimator struct {
	moments Moments

	method Method
	center bool
	start  []float64
	weight *mat.SymDense

	optMethod   optimize.Method
	optSettings *optimize.Settings

	maxSteps int
	stepTol  float64
}

func NewEstimator(m Moments, opts ...Option) (*Estimator, error) {
	n, l, k := m.Dims()
	if n <= 0 {
		return nil, ErrNoObservations
	}
	if l < k {
		return nil, fmt.Errorf("%w: %d conditions, %d parameters", ErrUnderIdentified, l, k)
	}

	e := &Estimator{
		moments:  m,
		method:   TwoStep,
		maxSteps: defaultMaxSteps,
		stepTol:  defaultStepTol,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.start == nil {
		e.start = make([]float64, k)
	}
	if len(e.start) != k {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrBadStart, len(e.start), k)
	}
	if e.weight == nil {
		e.weight = IdentityWeight(l)
	}
	if wl := e.weight.SymmetricDim(); wl != l {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrBadWeight, wl, l)
	}
	return e, nil
}

// Fit runs the configured estimation method and returns the final estimate
// together with the minimized objective and its over-identification test.
func (e *Estimator) Fit() (*Result, error) {
	n, l, _ := e.moments.Dims()
	g := mat.NewDense(n, l, nil)

	if e.method == CUE {
		return e.fitCue(g)
	}

	steps := 1
	switch e.method {
	case TwoStep:
		steps = 2
	case Iterated:
		steps = e.maxSteps
	}
	return e.fitStepped(g, steps)
}

func (e *Estimator) fitStepped(g *mat.Dense, maxSteps int) (*Result, error) {
	_, l, k := e.moments.Dims()

	w := e.weight
	theta := append([]float64(nil), e.start...)

	var (
		jTrace    []float64
		steps     int
		converged bool
	)

	for s := 0; s < maxSteps; s++ {
		next, j, err := e.minimize(e.fixedWeightObjective(g, w), theta)
		if err != nil {
			return nil, err
		}
		steps++
		jTrace = append(jTrace, j)

		if e.method == Iterated && s > 0 && floats.Distance(next, theta, 2) < e.stepTol {
			theta = next
			converged = true
			break
		}
		theta = next

		if s == maxSteps-1 {
			break
		}

		// Re-estimate the efficient weighting at the current step's estimate.
		e.moments.Residuals(theta, g)
		winv, err := InverseWeight(MomentCovariance(g, e.center))
		if err != nil {
			return nil, err
		}
		w = winv
	}

	if e.method != Iterated {
		converged = true
	}

	j := jTrace[len(jTrace)-1]
	return &Result{
		Theta:     theta,
		Weight:    w,
		J:         j,
		Steps:     steps,
		Converged: converged,
		JTrace:    jTrace,
		Test:      NewJTest(j, l-k),
	}, nil
}

func (e *Estimator) fitCue(g *mat.Dense) (*Result, error) {
	n, l, k := e.moments.Dims()

	obj := func(theta []float64) float64 {
		e.moments.Residuals(theta, g)

		var chol mat.Cholesky
		if !chol.Factorize(MomentCovariance(g, e.center)) {
			return math.Inf(1)
		}
		gn := SampleMoments(g)

		var x mat.VecDense
		if err := chol.SolveVecTo(&x, gn); err != nil {
			return math.Inf(1)
		}
		v := float64(n) * mat.Dot(gn, &x)
		if math.IsNaN(v) {
			return math.Inf(1)
		}
		return v
	}

	theta, j, err := e.minimize(obj, e.start)
	if err != nil {
		return nil, err
	}

	e.moments.Residuals(theta, g)
	w, err := InverseWeight(MomentCovariance(g, e.center))
	if err != nil {
		return nil, err
	}

	return &Result{
		Theta:     theta,
		Weight:    w,
		J:         j,
		Steps:     1,
		Converged: true,
		JTrace:    []float64{j},
		Test:      NewJTest(j, l-k),
	}, nil
}

func (e *Estimator) fixedWeightObjective(g *mat.Dense, w mat.Symmetric) func([]float64) float64 {
	return func(theta []float64) float64 {
		e.moments.Residuals(theta, g)
		v := Objective(g, w)
		if math.IsNaN(v) {
			return math.Inf(1)
		}
		return v
	}
}

func (e *Estimator) minimize(objective func([]float64) float64, start []float64) ([]float64, float64, error) {
	problem := optimize.Problem{Func: objective}

	method := e.optMethod
	if method == nil {
		method = &optimize.NelderMead{}
	}

	result, err := optimize.Minimize(problem, start, e.optSettings, method)
	if err != nil {
		return nil, 0, fmt.Errorf("minimizing gmm objective: %w", err)
	}
	if err := result.Status.Err(); err != nil {
		return nil, 0, fmt.Errorf("minimizing gmm objective: %w", err)
	}

	theta := append([]float64(nil), result.X...)
	return theta, result.F, nil
}
