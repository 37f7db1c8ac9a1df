package scale

import (
	"math"
	"strconv"
)

// Tick is a major tick value. Segment is the index of the segment that
// produced it, or -1 for scales without segments.
type Tick struct {
	Value   float64 `json:"value"`
	Segment int     `json:"segment"`
}

// Scale maps a data domain onto the unit interval and produces ticks.
type Scale interface {
	// Extent returns the data extent [min, max].
	Extent() [2]float64

	// SetExtent replaces the data extent.
	SetExtent(min, max float64)

	// Normalize maps a data value to [0, 1]. Values outside the scale's
	// domain extrapolate beyond [0, 1].
	Normalize(v float64) float64

	// Scale is the inverse of Normalize.
	Scale(t float64) float64

	// Ticks returns the major ticks in ascending order.
	Ticks() []Tick

	// MinorTicks returns, for each gap between consecutive major ticks,
	// the minor tick values strictly inside that gap. splitNumber is the
	// default number of sub-intervals per gap.
	MinorTicks(splitNumber int) [][]float64
}

// Segmenter is implemented by scales whose geometry depends on the axis
// pixel extent. Axes call UpdateSegments on every relayout.
type Segmenter interface {
	UpdateSegments(axisExtent [2]float64, minorSplitNumber int)
}

// minorPrecision is the number of decimals minor tick values are rounded to.
const minorPrecision = 10

// round rounds x to the given number of decimals, formatting through
// strconv so large magnitudes do not overflow an intermediate product.
func round(x float64, precision int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', precision, 64), 64)
	if err != nil {
		return x
	}
	return v
}

// normalize maps v from extent to [0, 1]. A degenerate extent maps
// everything to 0.5.
func normalize(v float64, extent [2]float64) float64 {
	if extent[1] == extent[0] {
		return 0.5
	}
	return (v - extent[0]) / (extent[1] - extent[0])
}

// interpolate is the inverse of normalize.
func interpolate(t float64, extent [2]float64) float64 {
	return extent[0] + t*(extent[1]-extent[0])
}

// subdivide returns up to n-1 values prev + j*(interval/n), rounded to
// minorPrecision, that lie strictly between prev and next.
func subdivide(prev, next, interval float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	step := interval / float64(n)
	out := make([]float64, 0, n-1)
	for j := 1; j < n; j++ {
		v := round(prev+float64(j)*step, minorPrecision)
		if v > prev && v < next {
			out = append(out, v)
		}
	}
	return out
}
