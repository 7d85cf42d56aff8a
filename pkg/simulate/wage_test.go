package simulate

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestWageDesign_Validation(t *testing.T) {
	if _, err := NewWageDesign([]float64{1, 2}); !errors.Is(err, ErrBadTheta) {
		t.Errorf("Expected ErrBadTheta, got %v", err)
	}
}

func TestWageDesign_Dims(t *testing.T) {
	design, err := NewWageDesign([]float64{1, 0.3, -0.2}, WithWageSeed(3))
	if err != nil {
		t.Fatalf("NewWageDesign failed: %v", err)
	}

	s, err := design.Simulate(100)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if len(s.Wage) != 100 || len(s.X1) != 100 || len(s.P2) != 100 {
		t.Error("Expected 100 observations in every column")
	}

	m, err := s.Moments()
	if err != nil {
		t.Fatalf("Moments failed: %v", err)
	}
	n, l, k := m.Dims()
	if n != 100 || l != 4 || k != 3 {
		t.Errorf("Expected dims (100, 4, 3), got (%d, %d, %d)", n, l, k)
	}
}

func TestWageDesign_Reproducible(t *testing.T) {
	a, err := NewWageDesign([]float64{1, 0.3, -0.2}, WithWageSeed(9))
	if err != nil {
		t.Fatalf("NewWageDesign failed: %v", err)
	}
	b, err := NewWageDesign([]float64{1, 0.3, -0.2}, WithWageSeed(9))
	if err != nil {
		t.Fatalf("NewWageDesign failed: %v", err)
	}

	sa, err := a.Simulate(20)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	sb, err := b.Simulate(20)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	for i := range sa.Wage {
		if sa.Wage[i] != sb.Wage[i] {
			t.Fatalf("Expected identical draws under the same seed, differ at %d", i)
		}
	}
}

func TestWageDesign_ProxiesTrackCharacteristics(t *testing.T) {
	design, err := NewWageDesign([]float64{1, 0.3, -0.2}, WithWageSeed(13))
	if err != nil {
		t.Fatalf("NewWageDesign failed: %v", err)
	}

	s, err := design.Simulate(5000)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	if got := stat.Correlation(s.X1, s.P1, nil); got < 0.4 {
		t.Errorf("Expected p1 to track x1, correlation %v", got)
	}
	if got := stat.Correlation(s.X2, s.P2, nil); got < 0.4 {
		t.Errorf("Expected p2 to track x2, correlation %v", got)
	}
}
