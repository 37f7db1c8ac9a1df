// Package config loads segmented axis documents.
//
// A document is read from TOML or JSON into a [Document], which maps
// directly onto the file, and then processed into an [Axis] with defaults
// applied and every field validated. Only the processed form is used to
// build scales and axes.
//
//	[grid]
//	width = 800
//
//	[axis]
//	dim = "x"
//	minor_split_number = 5
//
//	[[segments]]
//	from = 0
//	to = 10
//	split_number = 5
package config

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/segaxis/pkg/core/axis"
	"github.com/matzehuels/segaxis/pkg/core/scale"
	"github.com/matzehuels/segaxis/pkg/core/segment"
	"github.com/matzehuels/segaxis/pkg/errors"
)

// Document formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

// Grid defaults.
const (
	DefaultGridX      = 40.0
	DefaultGridY      = 20.0
	DefaultGridWidth  = 800.0
	DefaultGridHeight = 100.0
)

// Document is an axis document as written by the user. Pointer fields
// distinguish "unset" from zero.
type Document struct {
	Grid     GridDoc        `json:"grid" toml:"grid"`
	Axis     AxisDoc        `json:"axis" toml:"axis"`
	Data     DataDoc        `json:"data" toml:"data"`
	Segments []segment.Spec `json:"segments" toml:"segments"`
}

// GridDoc is the rectangle the axis is drawn along.
type GridDoc struct {
	X      *float64 `json:"x,omitempty" toml:"x,omitempty"`
	Y      *float64 `json:"y,omitempty" toml:"y,omitempty"`
	Width  *float64 `json:"width,omitempty" toml:"width,omitempty"`
	Height *float64 `json:"height,omitempty" toml:"height,omitempty"`
}

// AxisDoc holds the axis options.
type AxisDoc struct {
	Dim              string `json:"dim,omitempty" toml:"dim,omitempty"`
	Position         string `json:"position,omitempty" toml:"position,omitempty"`
	Type             string `json:"type,omitempty" toml:"type,omitempty"`
	Index            int    `json:"index,omitempty" toml:"index,omitempty"`
	Inverse          bool   `json:"inverse,omitempty" toml:"inverse,omitempty"`
	MinorSplitNumber int    `json:"minor_split_number,omitempty" toml:"minor_split_number,omitempty"`
}

// DataDoc is the observed data extent. Unset bounds default to the
// segments' coverage.
type DataDoc struct {
	Min *float64 `json:"min,omitempty" toml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" toml:"max,omitempty"`
}

// Axis is a processed document.
type Axis struct {
	Grid             axis.Grid
	Dim              axis.Dim
	Position         axis.Position
	Type             string
	Index            int
	Inverse          bool
	MinorSplitNumber int

	// Extent is the data extent. It may run past the segments' coverage,
	// in which case a trailing segment is added at layout.
	Extent   [2]float64
	Segments segment.Set
}

// Load reads and processes the document at path. The format is taken
// from the file extension.
func Load(path string) (*Axis, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return doc.Process()
}

// LoadDocument reads the document at path without processing it.
func LoadDocument(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Decode(data, format)
}

// FormatFromPath maps .toml and .json extensions to a document format.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidConfig, "unsupported config extension %q (use .toml or .json)", filepath.Ext(path))
}

// Parse decodes and processes a document.
func Parse(data []byte, format string) (*Axis, error) {
	doc, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return doc.Process()
}

// Decode reads a document without processing it. Unknown keys are
// rejected in both formats.
func Decode(data []byte, format string) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported config format %q", format)
	}
	return &doc, nil
}

// Process applies defaults and validates the document.
func (d *Document) Process() (*Axis, error) {
	set, err := segment.NewSet(d.Segments)
	if err != nil {
		return nil, err
	}

	out := &Axis{
		Grid: axis.Grid{
			X:      valueOr(d.Grid.X, DefaultGridX),
			Y:      valueOr(d.Grid.Y, DefaultGridY),
			Width:  valueOr(d.Grid.Width, DefaultGridWidth),
			Height: valueOr(d.Grid.Height, DefaultGridHeight),
		},
		Type:             d.Axis.Type,
		Index:            d.Axis.Index,
		Inverse:          d.Axis.Inverse,
		MinorSplitNumber: d.Axis.MinorSplitNumber,
		Segments:         set,
	}
	if err := validateGrid(out.Grid); err != nil {
		return nil, err
	}

	dim := d.Axis.Dim
	if dim == "" {
		dim = string(axis.DimX)
	}
	if err := errors.ValidateDim(dim); err != nil {
		return nil, err
	}
	out.Dim = axis.Dim(dim)

	if d.Axis.Position != "" {
		if err := errors.ValidatePosition(dim, d.Axis.Position); err != nil {
			return nil, err
		}
		out.Position = axis.Position(d.Axis.Position)
	}

	switch out.Type {
	case "", axis.TypeSegments:
	default:
		return nil, errors.New(errors.ErrCodeInvalidAxis, "invalid axis type: %q (must be segments)", out.Type)
	}
	if out.Index < 0 {
		return nil, errors.New(errors.ErrCodeInvalidAxis, "axis index cannot be negative")
	}
	switch {
	case out.MinorSplitNumber < 0:
		return nil, errors.New(errors.ErrCodeInvalidAxis, "minor_split_number cannot be negative")
	case out.MinorSplitNumber == 0:
		out.MinorSplitNumber = segment.DefaultMinorSplitNumber
	}
	if err := set.CheckMinorTicks(out.MinorSplitNumber); err != nil {
		return nil, err
	}

	cov := set.Coverage()
	out.Extent = [2]float64{valueOr(d.Data.Min, cov[0]), valueOr(d.Data.Max, cov[1])}
	if !finite(out.Extent[0]) || !finite(out.Extent[1]) {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "data extent must be finite")
	}
	if out.Extent[1] <= out.Extent[0] {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "data max (%v) must exceed min (%v)", out.Extent[1], out.Extent[0])
	}
	return out, nil
}

// EncodeTOML writes the document as TOML.
func (d *Document) EncodeTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(d)
}

// Sample returns a small two-segment document.
func Sample() *Document {
	return &Document{
		Axis: AxisDoc{Dim: string(axis.DimX), MinorSplitNumber: segment.DefaultMinorSplitNumber},
		Segments: []segment.Spec{
			{From: 0, To: 10, SplitNumber: 5},
			{From: 10, To: 100, SplitNumber: 3},
		},
	}
}

// Build creates the scale and axis described by the config and places the
// axis on a copy of the configured grid.
func (a *Axis) Build() (*axis.Axis, *scale.Segmented, *axis.Grid) {
	sc := scale.NewSegmentedFromSet(a.Segments)
	sc.SetExtent(a.Extent[0], a.Extent[1])

	grid := a.Grid
	opts := []axis.Option{
		axis.WithIndex(a.Index),
		axis.WithMinorSplitNumber(a.MinorSplitNumber),
	}
	if a.Position != "" {
		opts = append(opts, axis.WithPosition(a.Position))
	}
	if a.Type != "" {
		opts = append(opts, axis.WithType(a.Type))
	}
	if a.Inverse {
		opts = append(opts, axis.WithInverse())
	}
	ax := axis.New(a.Dim, sc, grid.AxisExtent(a.Dim, a.Inverse), opts...)
	grid.Place(ax)
	return ax, sc, &grid
}

func validateGrid(g axis.Grid) error {
	for _, v := range []float64{g.X, g.Y, g.Width, g.Height} {
		if !finite(v) {
			return errors.New(errors.ErrCodeInvalidConfig, "grid values must be finite")
		}
	}
	if g.Width <= 0 || g.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid width and height must be positive")
	}
	return nil
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
