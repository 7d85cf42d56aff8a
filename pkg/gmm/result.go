package gmm

import "gonum.org/v1/gonum/mat"

// Result holds the outcome of a single estimation run.
type Result struct {
	// Theta is the parameter estimate after the final step.
	Theta []float64
	// Weight is the weighting matrix under which Theta was obtained.
	Weight *mat.SymDense
	// J is the minimized objective N*gN'*W*gN at Theta.
	J float64
	// Steps counts the minimizations performed.
	Steps int
	// Converged reports whether the iterated re-weighting settled within
	// its step budget. Always true for the non-iterated methods.
	Converged bool
	// JTrace records the minimized objective of every step in order.
	JTrace []float64
	// Test is the over-identification test at the final estimate.
	Test JTest
}
