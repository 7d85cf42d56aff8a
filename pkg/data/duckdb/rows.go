package duckdb

import (
	"fmt"
	"strconv"
	"strings"
)

// Row is one persisted replication of a study.
type Row struct {
	RunID     string
	Rep       int
	Theta     []float64
	J         float64
	PValue    float64
	Rejected  bool
	Converged bool
}

// Theta vectors vary in length between designs, so they are stored as a
// single delimited column rather than a fixed set of columns.
func encodeTheta(theta []float64) string {
	parts := make([]string, len(theta))
	for i, v := range theta {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func decodeTheta(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	theta := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("decoding theta element %d: %w", i, err)
		}
		theta[i] = v
	}
	return theta, nil
}
