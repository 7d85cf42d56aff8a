package main

var (
	Theta0     = []float64{1.0, 0.3, -0.2}
	StartPoint = []float64{0, 0, 0}
)

const (
	SampleSize        = 2000
	Seed              = 7
	SignificanceLevel = 0.05

	// Objective slice around the slope on x1.
	SliceFrom  = -0.2
	SliceTo    = 0.8
	SliceSteps = 21
)
