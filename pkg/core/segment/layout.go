package segment

// Geometry is the pixel placement of one segment along the axis. It is
// computed by Layout and keyed by the segment's index in the input slice.
type Geometry struct {
	Index    int     `json:"index"`
	Left     float64 `json:"left"`
	Size     float64 `json:"size"`
	Interval float64 `json:"interval"`
}

// Extent returns the pixel range [Left, Left+Size].
func (g Geometry) Extent() [2]float64 { return [2]float64{g.Left, g.Left + g.Size} }

// Right returns Left + Size.
func (g Geometry) Right() float64 { return g.Left + g.Size }

// Layout distributes axisLength pixels over specs and returns one Geometry
// per spec, in order. specs is not modified.
//
// When any spec has a positive Length, every segment is sized explicitly:
// Length × axisLength, or TickPixels × SplitNumber for specs without a
// Length. Otherwise the axis is split uniformly by the total number of
// major intervals. In uniform mode, a first segment whose MinorSplitNumber
// differs from minorDefault is resized so that its minor steps are as wide
// in pixels as the default-subdivided steps after it.
//
// The last segment always takes axisLength minus the preceding sizes, so
// the sizes sum to axisLength exactly. When explicit sizes before the last
// segment already exceed axisLength, all explicit sizes are scaled by the
// same factor to fit, so no segment ends up with a negative size. An empty
// specs returns nil.
func Layout(specs []Spec, axisLength float64, minorDefault int) []Geometry {
	if len(specs) == 0 {
		return nil
	}
	if minorDefault <= 0 {
		minorDefault = DefaultMinorSplitNumber
	}

	var sizes []float64
	if hasLength(specs) {
		sizes = explicitSizes(specs, axisLength)
	} else {
		sizes = uniformSizes(specs, axisLength, minorDefault)
	}

	geoms := make([]Geometry, len(specs))
	var left float64
	last := len(specs) - 1
	for i, s := range specs {
		size := sizes[i]
		if i == last {
			size = axisLength - left
		}
		geoms[i] = Geometry{
			Index:    i,
			Left:     left,
			Size:     size,
			Interval: s.Interval(),
		}
		left += size
	}
	return geoms
}

func hasLength(specs []Spec) bool {
	for _, s := range specs {
		if s.Length > 0 {
			return true
		}
	}
	return false
}

func explicitSizes(specs []Spec, axisLength float64) []float64 {
	sizes := make([]float64, len(specs))
	var preceding, total float64
	last := len(specs) - 1
	for i, s := range specs {
		if s.Length > 0 {
			sizes[i] = s.Length * axisLength
		} else {
			sizes[i] = s.tickPixels() * float64(s.Splits())
		}
		if i < last {
			preceding += sizes[i]
		}
		total += sizes[i]
	}
	if preceding > axisLength && total > 0 {
		f := axisLength / total
		for i := range sizes {
			sizes[i] *= f
		}
	}
	return sizes
}

func uniformSizes(specs []Spec, axisLength float64, minorDefault int) []float64 {
	var total int
	for _, s := range specs {
		total += s.Splits()
	}

	sizes := make([]float64, len(specs))
	unit := axisLength / float64(total)

	first := specs[0]
	if len(specs) > 1 && first.MinorSplitNumber > 0 && first.MinorSplitNumber != minorDefault {
		s0 := float64(first.Splits())
		ratio := float64(first.MinorSplitNumber) / float64(minorDefault)
		unit = axisLength / (s0*ratio + float64(total) - s0)
		sizes[0] = s0 * ratio * unit
	} else {
		sizes[0] = float64(first.Splits()) * unit
	}

	for i := 1; i < len(specs); i++ {
		sizes[i] = float64(specs[i].Splits()) * unit
	}
	return sizes
}
