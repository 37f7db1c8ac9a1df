package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/segaxis/pkg/layout"
)

const (
	majorTickLength = 6.0
	minorTickLength = 3.0
	labelGap        = 4.0
	fontSize        = 11.0

	axisColor  = "#6E7079"
	splitColor = "#E0E6F1"
	labelColor = "#6E7079"
)

var bandColors = [2]string{"rgba(250,250,250,0.6)", "rgba(210,219,238,0.3)"}

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	minor      bool
	labels     bool
	splitLines bool
	bands      bool
	format     func(float64) string
}

func WithMinorTicks() SVGOption { return func(r *svgRenderer) { r.minor = true } }
func WithoutLabels() SVGOption  { return func(r *svgRenderer) { r.labels = false } }
func WithSplitLines() SVGOption { return func(r *svgRenderer) { r.splitLines = true } }
func WithBands() SVGOption      { return func(r *svgRenderer) { r.bands = true } }

// WithLabelFormatter replaces the default tick label formatter.
func WithLabelFormatter(f func(float64) string) SVGOption {
	return func(r *svgRenderer) {
		if f != nil {
			r.format = f
		}
	}
}

// RenderSVG draws the axis line, its major ticks and labels, and
// optionally minor ticks, split lines across the grid, and alternating
// segment bands. The canvas mirrors the grid margins on both sides.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{labels: true, format: FormatLabel}
	for _, opt := range opts {
		opt(&r)
	}

	width := l.Grid.Width + 2*l.Grid.X
	height := l.Grid.Height + 2*l.Grid.Y

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	d := newDrawer(l)
	if r.bands {
		d.bands(&buf)
	}
	if r.splitLines {
		d.splitLines(&buf)
	}
	d.line(&buf)
	d.ticks(&buf, l.Ticks, majorTickLength, "tick")
	if r.minor {
		for _, g := range l.MinorTicks {
			d.ticks(&buf, g, minorTickLength, "minor-tick")
		}
	}
	if r.labels {
		d.labels(&buf, r.format)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// FormatLabel prints v without trailing zeros after rounding away float
// noise from tick accumulation.
func FormatLabel(v float64) string {
	v, _ = strconv.ParseFloat(strconv.FormatFloat(v, 'f', 10, 64), 64)
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// drawer maps layout coordinates onto the canvas for one axis orientation.
type drawer struct {
	l          layout.Layout
	horizontal bool

	// cross is the global coordinate of the axis line on the other
	// dimension; out is the direction ticks and labels point away from
	// the grid (+1 or -1).
	cross float64
	out   float64

	// gridLo and gridHi bound split lines and bands on the other dimension.
	gridLo, gridHi float64
}

func newDrawer(l layout.Layout) drawer {
	d := drawer{l: l, horizontal: l.IsHorizontal()}
	g := l.Grid
	switch l.Position {
	case "top":
		d.cross, d.out = g.Y, -1
	case "left":
		d.cross, d.out = g.X, -1
	case "right":
		d.cross, d.out = g.X+g.Width, 1
	default:
		d.cross, d.out = g.Y+g.Height, 1
	}
	if d.horizontal {
		d.gridLo, d.gridHi = g.Y, g.Y+g.Height
	} else {
		d.gridLo, d.gridHi = g.X, g.X+g.Width
	}
	return d
}

// segment writes a line from (along, a) to (along, b) where a and b are on
// the cross dimension.
func (d drawer) segment(buf *bytes.Buffer, along, a, b float64, class, stroke string) {
	x1, y1, x2, y2 := along, a, along, b
	if !d.horizontal {
		x1, y1, x2, y2 = a, along, b, along
	}
	fmt.Fprintf(buf, `  <line class="%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1"/>`+"\n",
		class, x1, y1, x2, y2, stroke)
}

func (d drawer) line(buf *bytes.Buffer) {
	ext := d.l.GlobalExtent
	x1, y1, x2, y2 := ext[0], d.cross, ext[1], d.cross
	if !d.horizontal {
		x1, y1, x2, y2 = d.cross, ext[0], d.cross, ext[1]
	}
	fmt.Fprintf(buf, `  <line class="axis-line" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1"/>`+"\n",
		x1, y1, x2, y2, axisColor)
}

func (d drawer) ticks(buf *bytes.Buffer, ticks []layout.Tick, length float64, class string) {
	for _, t := range ticks {
		d.segment(buf, t.Global, d.cross, d.cross+d.out*length, class, axisColor)
	}
}

func (d drawer) splitLines(buf *bytes.Buffer) {
	for _, t := range d.l.Ticks {
		d.segment(buf, t.Global, d.gridLo, d.gridHi, "split-line", splitColor)
	}
}

// bands fills each segment's span across the grid with alternating colors.
func (d drawer) bands(buf *bytes.Buffer) {
	ext := d.l.Extent
	dir := 1.0
	if ext[1] < ext[0] {
		dir = -1
	}
	offset := d.l.GlobalExtent[0] - ext[0]
	for i, s := range d.l.Segments {
		a := ext[0] + dir*s.Left + offset
		b := ext[0] + dir*(s.Left+s.Size) + offset
		lo, size := math.Min(a, b), math.Abs(b-a)
		x, y, w, h := lo, d.gridLo, size, d.gridHi-d.gridLo
		if !d.horizontal {
			x, y, w, h = d.gridLo, lo, d.gridHi-d.gridLo, size
		}
		fmt.Fprintf(buf, `  <rect class="segment-band" data-segment="%d" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			s.Index, x, y, w, h, bandColors[i%2])
	}
}

func (d drawer) labels(buf *bytes.Buffer, format func(float64) string) {
	dist := majorTickLength + labelGap
	for _, t := range d.l.Ticks {
		var x, y float64
		var anchor, baseline string
		if d.horizontal {
			x, y = t.Global, d.cross+d.out*dist
			anchor = "middle"
			baseline = "hanging"
			if d.out < 0 {
				baseline = "auto"
			}
		} else {
			x, y = d.cross+d.out*dist, t.Global
			baseline = "middle"
			anchor = "start"
			if d.out < 0 {
				anchor = "end"
			}
		}
		fmt.Fprintf(buf, `  <text class="tick-label" x="%.2f" y="%.2f" text-anchor="%s" dominant-baseline="%s" font-family="sans-serif" font-size="%.0f" fill="%s">%s</text>`+"\n",
			x, y, anchor, baseline, fontSize, labelColor, escapeXML(format(t.Value)))
	}
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
