package gmm

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

type Option func(*Estimator)

func WithMethod(method Method) Option {
	return func(e *Estimator) {
		e.method = method
	}
}

// WithStart sets the optimizer's starting point. Defaults to the origin.
func WithStart(theta []float64) Option {
	return func(e *Estimator) {
		e.start = append([]float64(nil), theta...)
	}
}

// WithWeight sets the initial weighting matrix, replacing the identity.
func WithWeight(w *mat.SymDense) Option {
	return func(e *Estimator) {
		e.weight = w
	}
}

// WithCenteredCovariance demeans residual rows before estimating the
// moment covariance.
func WithCenteredCovariance(center bool) Option {
	return func(e *Estimator) {
		e.center = center
	}
}

// WithOptimizer overrides the minimization method and settings. A nil
// method keeps the Nelder-Mead default.
func WithOptimizer(method optimize.Method, settings *optimize.Settings) Option {
	return func(e *Estimator) {
		e.optMethod = method
		e.optSettings = settings
	}
}

// WithIterationLimit bounds the iterated re-weighting loop. Non-positive
// values keep the defaults.
func WithIterationLimit(maxSteps int, stepTol float64) Option {
	return func(e *Estimator) {
		if maxSteps > 0 {
			e.maxSteps = maxSteps
		}
		if stepTol > 0 {
			e.stepTol = stepTol
		}
	}
}
