package axis

import (
	"math"

	"github.com/matzehuels/segaxis/pkg/core/scale"
	"github.com/matzehuels/segaxis/pkg/core/segment"
)

// Dim names the chart dimension an axis measures.
type Dim string

const (
	DimX Dim = "x"
	DimY Dim = "y"
)

// Position is where an axis is drawn relative to its grid.
type Position string

const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
	PositionLeft   Position = "left"
	PositionRight  Position = "right"
)

// Axis types.
const (
	TypeValue    = "value"
	TypeSegments = "segments"
)

// coordEps is the tolerance used when deciding whether a tick coordinate
// lies outside the axis extent.
const coordEps = 1e-6

// Placement converts between an axis's local pixel line and the chart's
// global pixel space. It is usually the grid the axis belongs to.
type Placement interface {
	ToGlobalCoord(dim Dim, local float64) float64
	ToLocalCoord(dim Dim, global float64) float64
}

// TickCoord is a tick value together with its local pixel coordinate.
type TickCoord struct {
	Coord float64 `json:"coord"`
	Value float64 `json:"value"`
}

// TicksOptions configures TicksCoords.
type TicksOptions struct {
	// Clamp pins the first and last tick to the ends of the axis extent.
	// Without Clamp, ticks mapped outside the extent are dropped.
	Clamp bool
}

// Axis places a scale along a pixel extent.
//
// The scale is injected and not owned by the axis. The placement is a
// non-owning reference to the grid that positioned the axis; without one,
// local and global coordinates coincide.
type Axis struct {
	Dim      Dim
	Position Position
	Type     string
	Index    int
	Inverse  bool

	// MinorSplitNumber is the default number of minor intervals between two
	// major ticks.
	MinorSplitNumber int

	scale     scale.Scale
	extent    [2]float64
	placement Placement
}

// Option configures an Axis at construction.
type Option func(*Axis)

func WithPosition(p Position) Option { return func(a *Axis) { a.Position = p } }
func WithType(t string) Option       { return func(a *Axis) { a.Type = t } }
func WithIndex(i int) Option         { return func(a *Axis) { a.Index = i } }
func WithInverse() Option            { return func(a *Axis) { a.Inverse = true } }
func WithMinorSplitNumber(n int) Option {
	return func(a *Axis) { a.MinorSplitNumber = n }
}

// New creates an axis over the local pixel extent and lays out the scale's
// segments if it has any. Position defaults to bottom for x axes and left
// for y axes; Type defaults to "segments" for segmented scales and "value"
// otherwise.
func New(dim Dim, sc scale.Scale, extent [2]float64, opts ...Option) *Axis {
	a := &Axis{
		Dim:              dim,
		MinorSplitNumber: segment.DefaultMinorSplitNumber,
		scale:            sc,
		extent:           extent,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Position == "" {
		a.Position = PositionBottom
		if dim == DimY {
			a.Position = PositionLeft
		}
	}
	if a.Type == "" {
		a.Type = TypeValue
		if _, ok := sc.(scale.Segmenter); ok {
			a.Type = TypeSegments
		}
	}
	a.Relayout()
	return a
}

// Scale returns the axis scale.
func (a *Axis) Scale() scale.Scale { return a.scale }

// SetScale replaces the scale and lays it out against the current extent.
func (a *Axis) SetScale(sc scale.Scale) {
	a.scale = sc
	a.Relayout()
}

// Extent returns the local pixel extent. The first value may exceed the
// second, e.g. for inverted or vertical axes.
func (a *Axis) Extent() [2]float64 { return a.extent }

// SetExtent replaces the local pixel extent and re-runs segment layout.
func (a *Axis) SetExtent(p0, p1 float64) {
	a.extent = [2]float64{p0, p1}
	a.Relayout()
}

// Length returns the absolute pixel length of the axis.
func (a *Axis) Length() float64 { return math.Abs(a.extent[1] - a.extent[0]) }

// Relayout recomputes segment geometry for segmented scales. It must run
// before tick or coordinate queries whenever the extent has changed
// outside SetExtent.
func (a *Axis) Relayout() {
	if s, ok := a.scale.(scale.Segmenter); ok {
		s.UpdateSegments(a.extent, a.MinorSplitNumber)
	}
}

// Placement returns the grid reference, or nil.
func (a *Axis) Placement() Placement { return a.placement }

// SetPlacement sets the non-owning grid reference.
func (a *Axis) SetPlacement(p Placement) { a.placement = p }

// IsHorizontal reports whether the axis is drawn along the top or bottom.
func (a *Axis) IsHorizontal() bool {
	return a.Position == PositionTop || a.Position == PositionBottom
}

// ToLocalCoord converts a global pixel coordinate to the axis line.
func (a *Axis) ToLocalCoord(global float64) float64 {
	if a.placement == nil {
		return global
	}
	return a.placement.ToLocalCoord(a.Dim, global)
}

// ToGlobalCoord converts a coordinate on the axis line to global pixels.
func (a *Axis) ToGlobalCoord(local float64) float64 {
	if a.placement == nil {
		return local
	}
	return a.placement.ToGlobalCoord(a.Dim, local)
}

// GlobalExtent returns the extent endpoints in global coordinates. The
// pair keeps the local direction unless asc is set, in which case it is
// returned in ascending order.
func (a *Axis) GlobalExtent(asc bool) [2]float64 {
	ret := [2]float64{a.ToGlobalCoord(a.extent[0]), a.ToGlobalCoord(a.extent[1])}
	if asc && ret[0] > ret[1] {
		ret[0], ret[1] = ret[1], ret[0]
	}
	return ret
}

// DataToCoord maps a data value to a local pixel coordinate.
func (a *Axis) DataToCoord(v float64) float64 {
	t := a.scale.Normalize(v)
	return a.extent[0] + t*(a.extent[1]-a.extent[0])
}

// CoordToData maps a local pixel coordinate to a data value. With clamp
// the result is restricted to the scale's data extent.
func (a *Axis) CoordToData(coord float64, clamp bool) float64 {
	var t float64
	if a.extent[1] == a.extent[0] {
		t = 0.5
	} else {
		t = (coord - a.extent[0]) / (a.extent[1] - a.extent[0])
	}
	if clamp {
		t = math.Max(0, math.Min(1, t))
	}
	v := a.scale.Scale(t)
	if clamp {
		ext := a.scale.Extent()
		lo, hi := math.Min(ext[0], ext[1]), math.Max(ext[0], ext[1])
		v = math.Max(lo, math.Min(hi, v))
	}
	return v
}

// PointToData converts a global 2D point to a data value, reading the
// point component that matches the axis dimension.
func (a *Axis) PointToData(point [2]float64, clamp bool) float64 {
	c := point[0]
	if a.Dim == DimY {
		c = point[1]
	}
	return a.CoordToData(a.ToLocalCoord(c), clamp)
}

func (a *Axis) inExtent(coord float64) bool {
	lo := math.Min(a.extent[0], a.extent[1]) - coordEps
	hi := math.Max(a.extent[0], a.extent[1]) + coordEps
	return coord >= lo && coord <= hi
}

// TicksCoords returns the local coordinates of the scale's major ticks.
func (a *Axis) TicksCoords(opts TicksOptions) []TickCoord {
	ticks := a.scale.Ticks()
	out := make([]TickCoord, 0, len(ticks))
	for _, tk := range ticks {
		c := a.DataToCoord(tk.Value)
		if !opts.Clamp && !a.inExtent(c) {
			continue
		}
		out = append(out, TickCoord{Coord: c, Value: tk.Value})
	}
	if opts.Clamp && len(out) > 0 {
		out[0].Coord = a.extent[0]
		out[len(out)-1].Coord = a.extent[1]
	}
	return out
}

// MinorTicksCoords returns the local coordinates of the minor ticks, one
// group per major gap.
func (a *Axis) MinorTicksCoords() [][]TickCoord {
	groups := a.scale.MinorTicks(a.MinorSplitNumber)
	out := make([][]TickCoord, len(groups))
	for i, g := range groups {
		coords := make([]TickCoord, len(g))
		for j, v := range g {
			coords[j] = TickCoord{Coord: a.DataToCoord(v), Value: v}
		}
		out[i] = coords
	}
	return out
}
