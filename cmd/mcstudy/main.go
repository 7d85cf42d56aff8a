package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/tomas-hruska/gmmlab/internal/cfg"
	"github.com/tomas-hruska/gmmlab/pkg/data/duckdb"
	"github.com/tomas-hruska/gmmlab/pkg/gmm"
	"github.com/tomas-hruska/gmmlab/pkg/simulate"
	"github.com/tomas-hruska/gmmlab/pkg/study"
)

func main() {
	configPath := flag.String("config", "", "path to study configuration yaml")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	config, err := cfg.LoadStudyConfig(*configPath)
	if err != nil {
		slog.Error("loading configuration", "error", err)
		os.Exit(1)
	}

	design, err := buildDesign(config)
	if err != nil {
		slog.Error("building design", "error", err)
		os.Exit(1)
	}

	st, err := study.NewStudy(design, config.SampleSize, config.Replications,
		study.WithSignificanceLevel(config.Level),
		study.WithEstimationMethod(methodFromString(config.Method)),
	)
	if err != nil {
		slog.Error("building study", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancel()

	slog.Info("running study",
		"run_id", st.ID().String(),
		"design", design.Name(),
		"sample_size", config.SampleSize,
		"replications", config.Replications,
	)

	report, err := st.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			slog.Warn("study canceled")
			return
		}
		slog.Error("running study", "error", err)
		os.Exit(1)
	}
	report.Print()

	if config.Output != "" {
		if err := persist(ctx, config.Output, report); err != nil {
			slog.Error("persisting study", "error", err)
			os.Exit(1)
		}
		slog.Info("study persisted", "output", config.Output, "rows", len(report.Results))
	}
}

func buildDesign(config cfg.StudyConfig) (study.Design, error) {
	switch config.Design {
	case "wage":
		return simulate.NewWageDesign([]float64{1.0, 0.3, -0.2},
			simulate.WithWageSeed(config.Seed))
	default:
		return simulate.NewIVDesign([]float64{1.0, 0.5}, config.Instruments,
			simulate.WithSeed(config.Seed),
			simulate.WithEndogeneity(config.Endogeneity),
			simulate.WithViolation(config.Violation))
	}
}

func methodFromString(s string) gmm.Method {
	switch s {
	case "one-step":
		return gmm.OneStep
	case "iterated":
		return gmm.Iterated
	case "cue":
		return gmm.CUE
	default:
		return gmm.TwoStep
	}
}

func persist(ctx context.Context, output string, report *study.Report) error {
	writer := duckdb.NewWriter(output)
	if err := writer.Connect(); err != nil {
		return err
	}
	defer writer.Close()

	rows := make([]duckdb.Row, 0, len(report.Results))
	for _, r := range report.Results {
		rows = append(rows, duckdb.Row{
			RunID:     report.RunID.String(),
			Rep:       r.Rep,
			Theta:     r.Theta,
			J:         r.J,
			PValue:    r.PValue,
			Rejected:  r.Rejected,
			Converged: r.Converged,
		})
	}
	return writer.SaveStudy(ctx, rows)
}
