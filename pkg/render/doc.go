// Package render converts rendered axes between output formats.
//
// SVG is produced by the [sink] subpackage. [ToPDF] and [ToPNG] convert
// that SVG with the external rsvg-convert tool from librsvg:
//
//	svg := sink.RenderSVG(l, sink.WithMinorTicks())
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// [Available] reports whether the tool is installed so callers can fail
// early with an install hint.
package render
