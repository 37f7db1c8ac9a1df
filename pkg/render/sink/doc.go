// Package sink turns a [layout.Layout] into output files.
//
//   - SVG: axis line, major ticks and labels, with optional minor ticks,
//     split lines across the grid, and alternating segment bands
//   - JSON: the layout itself
//   - PNG, PDF: SVG converted with rsvg-convert (see package render)
//
// Basic usage:
//
//	svg := sink.RenderSVG(l,
//	    sink.WithMinorTicks(),
//	    sink.WithSplitLines(),
//	)
//	png, err := sink.RenderPNG(ctx, l,
//	    sink.WithScale(2),
//	    sink.WithPNGSVGOptions(sink.WithBands()),
//	)
//
// Labels default to [FormatLabel], which prints the shortest decimal form
// of each tick value.
package sink
