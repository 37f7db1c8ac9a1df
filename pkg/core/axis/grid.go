package axis

// Grid is the rectangle axes are placed in, in global pixel coordinates.
// Y grows downward, so a non-inverted vertical axis runs from the bottom
// edge (local Height) to the top edge (local 0).
type Grid struct {
	X, Y          float64
	Width, Height float64
}

// ToGlobalCoord offsets a local coordinate by the grid origin.
func (g *Grid) ToGlobalCoord(dim Dim, local float64) float64 {
	if dim == DimY {
		return local + g.Y
	}
	return local + g.X
}

// ToLocalCoord is the inverse of ToGlobalCoord.
func (g *Grid) ToLocalCoord(dim Dim, global float64) float64 {
	if dim == DimY {
		return global - g.Y
	}
	return global - g.X
}

// AxisExtent returns the local pixel extent for an axis of dim.
func (g *Grid) AxisExtent(dim Dim, inverse bool) [2]float64 {
	ext := [2]float64{0, g.Width}
	if dim == DimY {
		ext = [2]float64{g.Height, 0}
	}
	if inverse {
		ext[0], ext[1] = ext[1], ext[0]
	}
	return ext
}

// Place attaches the axis to the grid and resizes it to the grid's edge.
func (g *Grid) Place(a *Axis) {
	a.SetPlacement(g)
	ext := g.AxisExtent(a.Dim, a.Inverse)
	a.SetExtent(ext[0], ext[1])
}

// Resize changes the grid rectangle and re-places the given axes.
func (g *Grid) Resize(x, y, width, height float64, axes ...*Axis) {
	g.X, g.Y, g.Width, g.Height = x, y, width, height
	for _, a := range axes {
		g.Place(a)
	}
}

var _ Placement = (*Grid)(nil)
