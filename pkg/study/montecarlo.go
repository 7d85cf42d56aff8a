package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tomas-hruska/gmmlab/pkg/gmm"
)

var (
	ErrBadSampleSize   = errors.New("sample size must be positive")
	ErrBadReplications = errors.New("replication count must be positive")
)

// Design yields fresh simulated moment conditions for each replication.
type Design interface {
	Name() string
	Theta0() []float64
	Draw(n int) (gmm.Moments, error)
}

// Study repeatedly simulates, estimates and tests a design, collecting the
// sampling distribution of the estimator and of the J statistic.
type Study struct {
	id     uuid.UUID
	design Design

	sampleSize   int
	replications int
	level        float64
	method       gmm.Method
	center       bool
	start        []float64
}

func NewStudy(design Design, sampleSize, replications int, opts ...Option) (*Study, error) {
	if sampleSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSampleSize, sampleSize)
	}
	if replications <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadReplications, replications)
	}

	s := &Study{
		id:           uuid.New(),
		design:       design,
		sampleSize:   sampleSize,
		replications: replications,
		level:        0.05,
		method:       gmm.TwoStep,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.start == nil {
		s.start = design.Theta0()
	}
	return s, nil
}

func (s *Study) ID() uuid.UUID {
	return s.id
}

// Replication is the outcome of a single simulate-estimate-test pass.
type Replication struct {
	Rep       int
	Theta     []float64
	J         float64
	PValue    float64
	Rejected  bool
	Converged bool
}

// Run executes every replication sequentially. A failed replication (a
// singular weighting draw, an optimizer breakdown) is logged and skipped;
// it does not abort the study.
func (s *Study) Run(ctx context.Context) (*Report, error) {
	results := make([]Replication, 0, s.replications)
	failures := 0

	for r := 0; r < s.replications; r++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		m, err := s.design.Draw(s.sampleSize)
		if err != nil {
			return nil, fmt.Errorf("drawing replication %d: %w", r, err)
		}

		est, err := gmm.NewEstimator(m,
			gmm.WithMethod(s.method),
			gmm.WithCenteredCovariance(s.center),
			gmm.WithStart(s.start),
		)
		if err != nil {
			return nil, fmt.Errorf("building estimator for replication %d: %w", r, err)
		}

		res, err := est.Fit()
		if err != nil {
			slog.Warn("replication failed", "rep", r, "error", err)
			failures++
			continue
		}

		results = append(results, Replication{
			Rep:       r,
			Theta:     res.Theta,
			J:         res.J,
			PValue:    res.Test.PValue,
			Rejected:  res.Test.Reject(s.level),
			Converged: res.Converged,
		})
	}

	return s.summarize(results, failures), nil
}
