package fixed

import (
	"math"

	"github.com/govalues/decimal"
)

// Point is a thin wrapper around a decimal value, used to render results
// at a stable scale. Construction from a non-finite float yields a zero
// point; callers wanting non-finite passthrough use Format.
type Point struct {
	v decimal.Decimal
}

func FromFloat64(value float64) Point {
	d, err := decimal.NewFromFloat64(value)
	if err != nil {
		return Point{}
	}
	return Point{d}
}

func FromInt(value int, scale int) Point {
	d, err := decimal.New(int64(value), scale)
	if err != nil {
		return Point{}
	}
	return Point{d}
}

func (p Point) String() string           { return p.v.String() }
func (p Point) Float64() (float64, bool) { return p.v.Float64() }

func (p Point) Rescale(scale int) Point { return Point{p.v.Rescale(scale)} }

// Format renders a float at the given scale, passing NaN and infinities
// through in their usual text form.
func Format(value float64, scale int) string {
	switch {
	case math.IsInf(value, 1):
		return "+Inf"
	case math.IsInf(value, -1):
		return "-Inf"
	case math.IsNaN(value):
		return "NaN"
	default:
		return FromFloat64(value).Rescale(scale).String()
	}
}

// FormatSlice renders every element of a float slice at the given scale.
func FormatSlice(values []float64, scale int) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = Format(v, scale)
	}
	return out
}
