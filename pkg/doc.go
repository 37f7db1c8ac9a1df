// Package pkg provides the libraries behind segaxis, a layout engine for
// segmented chart axes.
//
// # Overview
//
// A segmented axis splits its value range into consecutive segments. Each
// segment has its own tick density and its own share of the axis pixels,
// so a value range like 0..10 followed by 10..1000 can give both parts a
// readable scale. The pkg directory is organized as:
//
//  1. [core/segment] - segment specs and the pixel layout of a segment list
//  2. [core/scale] - the segmented scale (and a linear fallback)
//  3. [core/axis] - axis placement on a grid and data/pixel transforms
//  4. [config] - TOML/JSON axis documents
//  5. [layout] - the serialized layout renderers consume
//  6. [render] - SVG, PNG, PDF, and JSON sinks
//  7. [pipeline] - orchestration with caching (config → layout → render)
//  8. [cache], [api], [observability], [errors], [buildinfo] - infrastructure
//
// # Architecture
//
//	axis.toml
//	    ↓
//	[config] package (decode + validate)
//	    ↓
//	[core/scale] + [core/axis] (lay out segments, place ticks)
//	    ↓
//	[layout] package (serializable result)
//	    ↓
//	[render/sink] package → SVG/PNG/PDF/JSON
//
// # Quick Start
//
//	cfg, err := config.Load("axis.toml")
//	if err != nil {
//	    return err
//	}
//	l := pipeline.ComputeLayout(cfg, pipeline.Options{})
//	svg := sink.RenderSVG(l, sink.WithMinorTicks())
package pkg
