// Package pipeline provides the layout and render pipeline for segmented axes.
//
// This package implements the config → layout → render flow used by the
// CLI, the HTTP API, and the terminal preview. By centralizing it, every
// entry point applies the same defaults and shares one cache key scheme.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: Process the axis document, build the segmented scale and the
//     axis, place it on its grid, and capture a [layout.Layout]
//  2. Render: Draw the layout in the requested formats (SVG, JSON, PNG, PDF)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Config:  doc,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	l, err := runner.Layout(ctx, opts)
//	artifacts, err := runner.Render(ctx, l, opts)
package pipeline

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/segaxis/pkg/cache"
	"github.com/matzehuels/segaxis/pkg/config"
	"github.com/matzehuels/segaxis/pkg/core/segment"
	"github.com/matzehuels/segaxis/pkg/errors"
	"github.com/matzehuels/segaxis/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// DefaultScale is the default PNG zoom factor.
const DefaultScale = 2.0

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the axis pipeline.
// This struct is also the request body of the HTTP API.
type Options struct {
	// Input
	Config *config.Document `json:"config" toml:"config"`

	// Layout options
	AxisLength       float64 `json:"axis_length,omitempty" toml:"axis_length"` // Overrides the grid edge the axis runs along
	MinorSplitNumber int     `json:"minor_split_number,omitempty" toml:"minor_split_number"`
	Clamp            bool    `json:"clamp,omitempty" toml:"clamp"`

	// Render options
	Formats    []string `json:"formats,omitempty" toml:"formats"`
	ShowMinor  bool     `json:"show_minor,omitempty" toml:"show_minor"`
	NoLabels   bool     `json:"no_labels,omitempty" toml:"no_labels"`
	SplitLines bool     `json:"split_lines,omitempty" toml:"split_lines"`
	Bands      bool     `json:"bands,omitempty" toml:"bands"`
	Scale      float64  `json:"scale,omitempty" toml:"scale"` // PNG zoom factor

	Refresh bool `json:"refresh,omitempty" toml:"refresh"` // Bypass cached layouts

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the laid out axis.
	Layout layout.Layout

	// ConfigHash is the content hash of the axis document.
	ConfigHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Segments   int
	Synthetic  int
	Ticks      int
	MinorTicks int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLayout checks the fields layout depends on.
func (o *Options) ValidateForLayout() error {
	if o.Config == nil {
		return errors.New(errors.ErrCodeInvalidInput, "config is required")
	}
	if math.IsNaN(o.AxisLength) || math.IsInf(o.AxisLength, 0) || o.AxisLength < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "axis_length must be a non-negative number")
	}
	if o.MinorSplitNumber < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "minor_split_number cannot be negative")
	}
	if o.MinorSplitNumber > segment.MaxSplitNumber {
		return errors.New(errors.ErrCodeInvalidInput, "minor_split_number exceeds %d", segment.MaxSplitNumber)
	}
	o.setLogger()
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if o.Scale < 0 || math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive")
	}
	return ValidateFormats(o.Formats)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		AxisLength:       o.AxisLength,
		MinorSplitNumber: o.MinorSplitNumber,
		Clamp:            o.Clamp,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:     format,
		ShowMinor:  o.ShowMinor,
		NoLabels:   o.NoLabels,
		SplitLines: o.SplitLines,
		Bands:      o.Bands,
	}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	return k
}
