package scale

import (
	"math"
	"sort"

	"github.com/matzehuels/segaxis/pkg/core/segment"
)

// Segmented is a value scale divided into contiguous segments, each with
// its own tick interval and its own share of the axis length.
//
// The configured segments are immutable. The effective segment list, which
// may carry an extra trailing segment covering the data extent, and its
// pixel geometry are recomputed by UpdateSegments.
type Segmented struct {
	set    segment.Set
	extent [2]float64

	specs      []segment.Spec
	geoms      []segment.Geometry
	axisLength float64
}

// NewSegmented validates specs and returns a scale whose data extent is
// the segments' coverage.
func NewSegmented(specs []segment.Spec) (*Segmented, error) {
	set, err := segment.NewSet(specs)
	if err != nil {
		return nil, err
	}
	return NewSegmentedFromSet(set), nil
}

// NewSegmentedFromSet returns a scale over an already validated set.
func NewSegmentedFromSet(set segment.Set) *Segmented {
	return &Segmented{
		set:    set,
		extent: set.Coverage(),
		specs:  set.Specs(),
	}
}

func (s *Segmented) Extent() [2]float64 { return s.extent }

// SetExtent replaces the data extent. The effective segments only change
// on the next UpdateSegments.
func (s *Segmented) SetExtent(min, max float64) { s.extent = [2]float64{min, max} }

// Segments returns the effective segment list as of the last update.
func (s *Segmented) Segments() []segment.Spec {
	out := make([]segment.Spec, len(s.specs))
	copy(out, s.specs)
	return out
}

// Configured returns the number of user-configured segments. Effective
// segments at or past this index were added to cover the data extent.
func (s *Segmented) Configured() int { return s.set.Len() }

// Geometry returns the segment geometry computed by the last update, or
// nil if UpdateSegments has not run.
func (s *Segmented) Geometry() []segment.Geometry {
	if s.geoms == nil {
		return nil
	}
	out := make([]segment.Geometry, len(s.geoms))
	copy(out, s.geoms)
	return out
}

// AxisLength returns the pixel length used by the last update.
func (s *Segmented) AxisLength() float64 { return s.axisLength }

// UpdateSegments appends a trailing segment when the data extent runs past
// the configured segments and lays the segments out over the axis pixel
// extent. Repeated calls with the same inputs produce the same geometry.
func (s *Segmented) UpdateSegments(axisExtent [2]float64, minorSplitNumber int) {
	s.axisLength = math.Abs(axisExtent[1] - axisExtent[0])
	s.specs = s.set.Extend(s.extent[1])
	s.geoms = segment.Layout(s.specs, s.axisLength, minorSplitNumber)
}

// NormalizeWithinSegment maps an offset measured from a segment's From to
// its fractional position within the segment [from, to].
func NormalizeWithinSegment(offset float64, extent [2]float64) float64 {
	return normalize(offset, [2]float64{0, extent[1] - extent[0]})
}

func (s *Segmented) laidOut() bool {
	return len(s.geoms) == len(s.specs) && s.axisLength > 0
}

func (s *Segmented) coverage() [2]float64 {
	return [2]float64{s.specs[0].From, s.specs[len(s.specs)-1].To}
}

// Normalize maps v through the segment that contains it. Before the first
// layout it falls back to a linear mapping over the segment coverage.
func (s *Segmented) Normalize(v float64) float64 {
	if !s.laidOut() {
		return normalize(v, s.coverage())
	}
	i := sort.Search(len(s.specs), func(i int) bool { return s.specs[i].To >= v })
	if i == len(s.specs) {
		i--
	}
	sp, g := s.specs[i], s.geoms[i]
	pos := g.Left + NormalizeWithinSegment(v-sp.From, [2]float64{sp.From, sp.To})*g.Size
	return pos / s.axisLength
}

// Scale maps a position in [0, 1] back to a data value.
func (s *Segmented) Scale(t float64) float64 {
	if !s.laidOut() {
		return interpolate(t, s.coverage())
	}
	pos := t * s.axisLength
	i := sort.Search(len(s.geoms), func(i int) bool { return s.geoms[i].Right() >= pos })
	if i == len(s.geoms) {
		i--
	}
	sp, g := s.specs[i], s.geoms[i]
	return interpolate(normalize(pos, g.Extent()), [2]float64{sp.From, sp.To})
}

// Ticks emits SplitNumber ticks per segment, starting at From, and one
// more for the last segment so the final To is always present. Ticks are
// not deduplicated.
func (s *Segmented) Ticks() []Tick {
	var ticks []Tick
	last := len(s.specs) - 1
	for i, sp := range s.specs {
		n := sp.Splits()
		count := n
		if i == last {
			count = n + 1
		}
		interval := sp.Interval()
		for j := 0; j < count; j++ {
			v := sp.From + float64(j)*interval
			if j == n {
				v = sp.To
			}
			ticks = append(ticks, Tick{Value: v, Segment: i})
		}
	}
	return ticks
}

// MinorTicks subdivides each gap between consecutive major ticks by the
// MinorSplitNumber of the segment owning the gap's first tick, or by
// splitNumber when the segment does not set one. Gaps whose owning segment
// cannot be resolved produce no group.
func (s *Segmented) MinorTicks(splitNumber int) [][]float64 {
	if splitNumber <= 0 {
		splitNumber = segment.DefaultMinorSplitNumber
	}
	ticks := s.Ticks()
	out := make([][]float64, 0, len(ticks))
	for i := 1; i < len(ticks); i++ {
		prev, next := ticks[i-1], ticks[i]
		if prev.Segment < 0 || prev.Segment >= len(s.specs) {
			continue
		}
		sp := s.specs[prev.Segment]
		n := splitNumber
		if sp.MinorSplitNumber > 0 {
			n = sp.MinorSplitNumber
		}
		out = append(out, subdivide(prev.Value, next.Value, sp.Interval(), n))
	}
	return out
}

var (
	_ Scale     = (*Segmented)(nil)
	_ Segmenter = (*Segmented)(nil)
)
