package study

import (
	"log/slog"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/tomas-hruska/gmmlab/pkg/utility/fixed"
)

// Report summarizes a finished study: the sampling mean and spread of the
// estimates and the empirical rejection rate of the over-identification
// test at the configured level.
type Report struct {
	RunID        uuid.UUID
	Design       string
	Method       string
	SampleSize   int
	Replications int
	Failures     int
	Level        float64

	Theta0        []float64
	ThetaMean     []float64
	ThetaStdDev   []float64
	MeanJ         float64
	RejectionRate float64

	Results []Replication
}

func (s *Study) summarize(results []Replication, failures int) *Report {
	rep := &Report{
		RunID:        s.id,
		Design:       s.design.Name(),
		Method:       s.method.String(),
		SampleSize:   s.sampleSize,
		Replications: s.replications,
		Failures:     failures,
		Level:        s.level,
		Theta0:       s.design.Theta0(),
		Results:      results,
	}
	if len(results) == 0 {
		return rep
	}

	k := len(results[0].Theta)
	rep.ThetaMean = make([]float64, k)
	rep.ThetaStdDev = make([]float64, k)

	coord := make([]float64, len(results))
	for p := 0; p < k; p++ {
		for i, r := range results {
			coord[i] = r.Theta[p]
		}
		rep.ThetaMean[p] = stat.Mean(coord, nil)
		rep.ThetaStdDev[p] = stat.StdDev(coord, nil)
	}

	js := make([]float64, len(results))
	rejected := 0
	for i, r := range results {
		js[i] = r.J
		if r.Rejected {
			rejected++
		}
	}
	rep.MeanJ = stat.Mean(js, nil)
	rep.RejectionRate = float64(rejected) / float64(len(results))

	return rep
}

func (r Report) Print() {
	slog.Info("study summary",
		"run_id", r.RunID.String(),
		"design", r.Design,
		"method", r.Method,
		"sample_size", r.SampleSize,
		"replications", r.Replications,
		"failures", r.Failures,
	)
	slog.Info("estimates",
		"theta0", fixed.FormatSlice(r.Theta0, 4),
		"theta_mean", fixed.FormatSlice(r.ThetaMean, 4),
		"theta_sd", fixed.FormatSlice(r.ThetaStdDev, 4),
	)
	slog.Info("overidentification test",
		"mean_j", fixed.Format(r.MeanJ, 4),
		"level", r.Level,
		"rejection_rate", fixed.Format(r.RejectionRate, 4),
	)
}
