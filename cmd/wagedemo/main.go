package main

import (
	"go.uber.org/zap"

	"github.com/tomas-hruska/gmmlab/internal/dbg"
	"github.com/tomas-hruska/gmmlab/pkg/gmm"
	"github.com/tomas-hruska/gmmlab/pkg/simulate"
	"github.com/tomas-hruska/gmmlab/pkg/utility/fixed"
)

// Walks through the exponential wage equation: one-step against two-step
// estimates, the re-weighting property between them, and a slice of the
// objective along the x1 slope.
func main() {
	logger := dbg.NewDevLogger()
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	design, err := simulate.NewWageDesign(Theta0, simulate.WithWageSeed(Seed))
	if err != nil {
		logger.Fatal("building wage design", zap.Error(err))
	}
	sample, err := design.Simulate(SampleSize)
	if err != nil {
		logger.Fatal("simulating", zap.Error(err))
	}
	m, err := sample.Moments()
	if err != nil {
		logger.Fatal("building moments", zap.Error(err))
	}

	logger.Info("wage equation walkthrough",
		zap.Int("sample_size", SampleSize),
		zap.Strings("theta0", fixed.FormatSlice(Theta0, 2)),
	)

	oneStep := fit(logger, m, gmm.OneStep)
	twoStep := fit(logger, m, gmm.TwoStep)

	// Under the second-step weighting, the second-step estimate cannot do
	// worse than the first-step estimate.
	jOneUnderW2 := gmm.ObjectiveAt(m, oneStep.Theta, twoStep.Weight)
	logger.Info("re-weighting comparison",
		zap.String("j_one_step_under_w2", fixed.Format(jOneUnderW2, 4)),
		zap.String("j_two_step", fixed.Format(twoStep.J, 4)),
	)

	printObjectiveSlice(logger, m, twoStep)
}

func fit(logger *zap.Logger, m gmm.Moments, method gmm.Method) *gmm.Result {
	est, err := gmm.NewEstimator(m,
		gmm.WithMethod(method),
		gmm.WithStart(StartPoint),
	)
	if err != nil {
		logger.Fatal("building estimator", zap.String("method", method.String()), zap.Error(err))
	}
	res, err := est.Fit()
	if err != nil {
		logger.Fatal("fitting", zap.String("method", method.String()), zap.Error(err))
	}

	logger.Info("estimate",
		zap.String("method", method.String()),
		zap.Strings("theta", fixed.FormatSlice(res.Theta, 4)),
		zap.String("j", fixed.Format(res.J, 4)),
		zap.String("p_value", fixed.Format(res.Test.PValue, 4)),
		zap.Bool("rejected", res.Test.Reject(SignificanceLevel)),
	)
	return res
}

// The notebooks plotted J against a grid on the x1 slope; here the slice
// is logged as a table with the other coordinates held at the estimate.
func printObjectiveSlice(logger *zap.Logger, m gmm.Moments, res *gmm.Result) {
	step := (SliceTo - SliceFrom) / float64(SliceSteps-1)
	theta := append([]float64(nil), res.Theta...)

	for i := 0; i < SliceSteps; i++ {
		theta[1] = SliceFrom + float64(i)*step
		logger.Info("objective slice",
			zap.String("theta1", fixed.Format(theta[1], 3)),
			zap.String("j", fixed.Format(gmm.ObjectiveAt(m, theta, res.Weight), 4)),
		)
	}
}
