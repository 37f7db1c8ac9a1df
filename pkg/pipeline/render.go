package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/segaxis/pkg/errors"
	"github.com/matzehuels/segaxis/pkg/layout"
	"github.com/matzehuels/segaxis/pkg/render/sink"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, l, sink.WithScale(opts.Scale), sink.WithPNGSVGOptions(svgOpts...))
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, l, svgOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(l, opts.ShowMinor)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions maps the render toggles onto SVG options.
func buildSVGOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.ShowMinor {
		svgOpts = append(svgOpts, sink.WithMinorTicks())
	}
	if opts.NoLabels {
		svgOpts = append(svgOpts, sink.WithoutLabels())
	}
	if opts.SplitLines {
		svgOpts = append(svgOpts, sink.WithSplitLines())
	}
	if opts.Bands {
		svgOpts = append(svgOpts, sink.WithBands())
	}
	return svgOpts
}

// RenderFromLayoutData renders output from serialized layout data.
// This is useful when the layout was computed elsewhere (e.g., cached).
func RenderFromLayoutData(ctx context.Context, data []byte, opts Options) (map[string][]byte, error) {
	l, err := layout.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse layout")
	}
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	return Render(ctx, l, opts)
}
