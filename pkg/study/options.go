package study

import "github.com/tomas-hruska/gmmlab/pkg/gmm"

type Option func(*Study)

// WithSignificanceLevel sets the level of the over-identification test.
// Values outside (0, 1) keep the 0.05 default.
func WithSignificanceLevel(level float64) Option {
	return func(s *Study) {
		if level > 0 && level < 1 {
			s.level = level
		}
	}
}

func WithEstimationMethod(method gmm.Method) Option {
	return func(s *Study) {
		s.method = method
	}
}

// WithCenteredCovariance demeans residuals when estimating the weighting
// matrix in each replication.
func WithCenteredCovariance(center bool) Option {
	return func(s *Study) {
		s.center = center
	}
}

// WithStart sets the optimizer starting point used in each replication.
// Defaults to the design's data-generating parameters.
func WithStart(theta []float64) Option {
	return func(s *Study) {
		s.start = append([]float64(nil), theta...)
	}
}
