package cfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StudyConfig drives the mcstudy binary: which design to simulate, how
// large and how often, and where the replication rows go.
type StudyConfig struct {
	Design       string  `yaml:"design"`
	SampleSize   int     `yaml:"sample_size"`
	Replications int     `yaml:"replications"`
	Instruments  int     `yaml:"instruments"`
	Endogeneity  float64 `yaml:"endogeneity"`
	Violation    float64 `yaml:"violation"`
	Seed         uint64  `yaml:"seed"`
	Level        float64 `yaml:"significance_level"`
	Method       string  `yaml:"method"`
	Output       string  `yaml:"output"`
}

// DefaultStudyConfig is a small exogenous two-step study, sized so a
// classroom run finishes in seconds.
func DefaultStudyConfig() StudyConfig {
	return StudyConfig{
		Design:       "linear-iv",
		SampleSize:   500,
		Replications: 200,
		Instruments:  3,
		Endogeneity:  0.5,
		Seed:         1,
		Level:        0.05,
		Method:       "two-step",
		Output:       "study.duckdb",
	}
}

// LoadStudyConfig reads a yaml file over the defaults. An empty path
// returns the defaults untouched.
func LoadStudyConfig(path string) (StudyConfig, error) {
	cfg := DefaultStudyConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := validateStudyConfig(cfg); err != nil {
		return cfg, fmt.Errorf("validating config file %s: %w", path, err)
	}
	return cfg, nil
}

func validateStudyConfig(cfg StudyConfig) error {
	switch cfg.Design {
	case "linear-iv", "wage":
	default:
		return fmt.Errorf("unknown design %q (must be linear-iv or wage)", cfg.Design)
	}
	switch cfg.Method {
	case "one-step", "two-step", "iterated", "cue":
	default:
		return fmt.Errorf("unknown method %q (must be one-step, two-step, iterated or cue)", cfg.Method)
	}
	if cfg.SampleSize <= 0 {
		return fmt.Errorf("sample_size must be positive, got %d", cfg.SampleSize)
	}
	if cfg.Replications <= 0 {
		return fmt.Errorf("replications must be positive, got %d", cfg.Replications)
	}
	if cfg.Design == "linear-iv" && cfg.Instruments < 1 {
		return fmt.Errorf("instruments must be at least 1, got %d", cfg.Instruments)
	}
	if cfg.Level <= 0 || cfg.Level >= 1 {
		return fmt.Errorf("significance_level must lie in (0, 1), got %g", cfg.Level)
	}
	if cfg.Endogeneity <= -1 || cfg.Endogeneity >= 1 {
		return fmt.Errorf("endogeneity must lie in (-1, 1), got %g", cfg.Endogeneity)
	}
	return nil
}
