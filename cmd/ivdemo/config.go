package main

var (
	Theta0     = []float64{1.0, 0.5}
	StartPoint = []float64{0, 0}
)

const (
	SampleSize        = 2000
	NumInstruments    = 3
	Seed              = 42
	Violation         = 0.5
	SignificanceLevel = 0.05
)
