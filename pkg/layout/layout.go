package layout

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matzehuels/segaxis/pkg/core/axis"
	"github.com/matzehuels/segaxis/pkg/core/scale"
)

// =============================================================================
// Layout - Serialized Axis
// =============================================================================

// Layout is the serialized form of a laid out axis: its placement, the
// effective segments with their pixel geometry, and the tick coordinates
// renderers draw.
//
// Coordinates are local to the axis line; the Global fields add the grid
// offset so renderers can draw without re-deriving the placement.
type Layout struct {
	Dim              string  `json:"dim"`
	Position         string  `json:"position"`
	Type             string  `json:"type"`
	Index            int     `json:"index,omitempty"`
	Inverse          bool    `json:"inverse,omitempty"`
	MinorSplitNumber int     `json:"minor_split_number"`
	Grid             Grid    `json:"grid"`
	AxisLength       float64 `json:"axis_length"`

	Extent       [2]float64 `json:"extent"`
	GlobalExtent [2]float64 `json:"global_extent"`
	DataExtent   [2]float64 `json:"data_extent"`

	Segments   []Segment `json:"segments"`
	Ticks      []Tick    `json:"ticks"`
	MinorTicks [][]Tick  `json:"minor_ticks,omitempty"`
}

// Grid is the rectangle the axis was placed in.
type Grid struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Segment is one effective segment and its pixel geometry.
type Segment struct {
	Index            int     `json:"index"`
	From             float64 `json:"from"`
	To               float64 `json:"to"`
	SplitNumber      int     `json:"split_number"`
	MinorSplitNumber int     `json:"minor_split_number,omitempty"`
	Interval         float64 `json:"interval"`
	Left             float64 `json:"left"`
	Size             float64 `json:"size"`

	// Synthetic marks the trailing segment added to cover the data extent.
	Synthetic bool `json:"synthetic,omitempty"`
}

// Tick is a tick value with its local and global pixel coordinates.
type Tick struct {
	Value  float64 `json:"value"`
	Coord  float64 `json:"coord"`
	Global float64 `json:"global"`
}

// IsHorizontal reports whether the axis runs along the top or bottom edge.
func (l *Layout) IsHorizontal() bool {
	return l.Position == string(axis.PositionTop) || l.Position == string(axis.PositionBottom)
}

// MinorCount returns the total number of minor ticks.
func (l *Layout) MinorCount() int {
	n := 0
	for _, g := range l.MinorTicks {
		n += len(g)
	}
	return n
}

// =============================================================================
// Conversion
// =============================================================================

// FromAxis captures the current state of an axis over a segmented scale.
// The axis must have been laid out; clamp is passed to TicksCoords.
func FromAxis(ax *axis.Axis, sc *scale.Segmented, grid *axis.Grid, clamp bool) Layout {
	l := Layout{
		Dim:              string(ax.Dim),
		Position:         string(ax.Position),
		Type:             ax.Type,
		Index:            ax.Index,
		Inverse:          ax.Inverse,
		MinorSplitNumber: ax.MinorSplitNumber,
		AxisLength:       ax.Length(),
		Extent:           ax.Extent(),
		GlobalExtent:     ax.GlobalExtent(false),
		DataExtent:       sc.Extent(),
	}
	if grid != nil {
		l.Grid = Grid{X: grid.X, Y: grid.Y, Width: grid.Width, Height: grid.Height}
	}

	specs, geoms := sc.Segments(), sc.Geometry()
	configured := sc.Configured()
	l.Segments = make([]Segment, len(specs))
	for i, sp := range specs {
		seg := Segment{
			Index:            i,
			From:             sp.From,
			To:               sp.To,
			SplitNumber:      sp.Splits(),
			MinorSplitNumber: sp.MinorSplitNumber,
			Interval:         sp.Interval(),
			Synthetic:        i >= configured,
		}
		if i < len(geoms) {
			seg.Left, seg.Size = geoms[i].Left, geoms[i].Size
		}
		l.Segments[i] = seg
	}

	l.Ticks = convertTicks(ax, ax.TicksCoords(axis.TicksOptions{Clamp: clamp}))
	minor := ax.MinorTicksCoords()
	l.MinorTicks = make([][]Tick, len(minor))
	for i, g := range minor {
		l.MinorTicks[i] = convertTicks(ax, g)
	}
	return l
}

func convertTicks(ax *axis.Axis, coords []axis.TickCoord) []Tick {
	out := make([]Tick, len(coords))
	for i, c := range coords {
		out[i] = Tick{Value: c.Value, Coord: c.Coord, Global: ax.ToGlobalCoord(c.Coord)}
	}
	return out
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// Marshal serializes a Layout to pretty-printed JSON bytes.
func Marshal(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// Unmarshal deserializes JSON bytes into a Layout and checks that it
// carries segments and ticks.
func Unmarshal(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if len(l.Segments) == 0 {
		return Layout{}, fmt.Errorf("layout must contain segments")
	}
	if len(l.Ticks) == 0 {
		return Layout{}, fmt.Errorf("layout must contain ticks")
	}
	return l, nil
}

// WriteFile writes a Layout to a JSON file.
func WriteFile(l Layout, path string) error {
	data, err := Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile reads a Layout from a JSON file.
func ReadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}
