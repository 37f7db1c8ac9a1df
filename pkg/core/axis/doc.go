// Package axis converts between data values, an axis's local pixel line,
// and the global pixel space of a chart.
//
// An [Axis] holds an injected scale (see package scale) and a local pixel
// extent [p0, p1]. The extent may run in either direction: vertical and
// inverted axes have p0 > p1. A [Grid] supplies the extent and acts as the
// axis's [Placement], offsetting local coordinates into global ones.
//
// Renderers use [Axis.TicksCoords] and [Axis.MinorTicksCoords] to place
// tick marks, labels, and split lines:
//
//	sc, _ := scale.NewSegmented(specs)
//	grid := &axis.Grid{X: 40, Y: 20, Width: 800, Height: 400}
//	ax := axis.New(axis.DimX, sc, [2]float64{0, 800})
//	grid.Place(ax)
//	for _, tc := range ax.TicksCoords(axis.TicksOptions{Clamp: true}) {
//	    x := ax.ToGlobalCoord(tc.Coord)
//	    // draw tick at x
//	}
package axis
