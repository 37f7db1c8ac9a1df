// Package scale maps data values onto the unit interval and generates
// major and minor ticks.
//
// [Scale] is the interface axes consume. [Linear] is an evenly divided
// value scale; [Segmented] divides its domain into contiguous segments
// (see package segment) whose tick interval and pixel share differ.
//
// A Segmented scale also implements [Segmenter]: its geometry depends on
// the axis pixel length and must be refreshed with UpdateSegments before
// any tick or coordinate query in the same layout pass.
package scale
