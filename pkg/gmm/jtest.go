package gmm

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// JTest is the over-identification test formed from the scaled minimized
// objective. Under correct specification J is asymptotically chi-square
// with l-k degrees of freedom.
type JTest struct {
	Stat             float64
	DegreesOfFreedom int
	PValue           float64
}

// NewJTest builds the test for a minimized objective value. Just-identified
// models carry no over-identifying restrictions; their p-value is NaN.
func NewJTest(stat float64, df int) JTest {
	t := JTest{Stat: stat, DegreesOfFreedom: df, PValue: math.NaN()}
	if df > 0 {
		t.PValue = distuv.ChiSquared{K: float64(df)}.Survival(stat)
	}
	return t
}

// CriticalValue returns the chi-square quantile the statistic is compared
// against at the given significance level.
func (t JTest) CriticalValue(level float64) float64 {
	if t.DegreesOfFreedom <= 0 || level <= 0 || level >= 1 {
		return math.NaN()
	}
	return distuv.ChiSquared{K: float64(t.DegreesOfFreedom)}.Quantile(1 - level)
}

// Reject reports whether the over-identifying restrictions are rejected at
// the given significance level.
func (t JTest) Reject(level float64) bool {
	if t.DegreesOfFreedom <= 0 {
		return false
	}
	return t.Stat > t.CriticalValue(level)
}
