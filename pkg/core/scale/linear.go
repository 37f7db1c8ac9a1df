package scale

// Linear is an evenly divided value scale. It stands in for a generic
// interval scale: the extent is used as given, without nicing.
type Linear struct {
	extent      [2]float64
	splitNumber int
}

// NewLinear returns a linear scale over [min, max] with splitNumber major
// intervals. A non-positive splitNumber defaults to 5.
func NewLinear(min, max float64, splitNumber int) *Linear {
	if splitNumber <= 0 {
		splitNumber = 5
	}
	return &Linear{extent: [2]float64{min, max}, splitNumber: splitNumber}
}

func (l *Linear) Extent() [2]float64 { return l.extent }

func (l *Linear) SetExtent(min, max float64) { l.extent = [2]float64{min, max} }

func (l *Linear) Normalize(v float64) float64 { return normalize(v, l.extent) }

func (l *Linear) Scale(t float64) float64 { return interpolate(t, l.extent) }

// Interval returns the data distance between two major ticks.
func (l *Linear) Interval() float64 {
	return (l.extent[1] - l.extent[0]) / float64(l.splitNumber)
}

func (l *Linear) Ticks() []Tick {
	interval := l.Interval()
	ticks := make([]Tick, 0, l.splitNumber+1)
	for j := 0; j <= l.splitNumber; j++ {
		v := l.extent[0] + float64(j)*interval
		if j == l.splitNumber {
			v = l.extent[1]
		}
		ticks = append(ticks, Tick{Value: v, Segment: -1})
	}
	return ticks
}

func (l *Linear) MinorTicks(splitNumber int) [][]float64 {
	ticks := l.Ticks()
	interval := l.Interval()
	out := make([][]float64, 0, len(ticks))
	for i := 1; i < len(ticks); i++ {
		out = append(out, subdivide(ticks[i-1].Value, ticks[i].Value, interval, splitNumber))
	}
	return out
}

var _ Scale = (*Linear)(nil)
