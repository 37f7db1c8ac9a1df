package pipeline

import (
	"github.com/matzehuels/segaxis/pkg/config"
	"github.com/matzehuels/segaxis/pkg/core/axis"
	"github.com/matzehuels/segaxis/pkg/core/scale"
	"github.com/matzehuels/segaxis/pkg/layout"
)

// =============================================================================
// Layout Generation
// =============================================================================

// Build creates the axis described by cfg and applies the option
// overrides. An AxisLength override resizes the grid edge the axis runs
// along; the returned axis has been laid out against its final extent.
func Build(cfg *config.Axis, opts Options) (*axis.Axis, *scale.Segmented, *axis.Grid) {
	ax, sc, grid := cfg.Build()
	if opts.MinorSplitNumber > 0 {
		ax.MinorSplitNumber = opts.MinorSplitNumber
	}
	if opts.AxisLength > 0 {
		w, h := grid.Width, grid.Height
		if ax.Dim == axis.DimY {
			h = opts.AxisLength
		} else {
			w = opts.AxisLength
		}
		grid.Resize(grid.X, grid.Y, w, h, ax)
	} else {
		ax.Relayout()
	}
	return ax, sc, grid
}

// ComputeLayout builds the axis and captures its layout.
func ComputeLayout(cfg *config.Axis, opts Options) layout.Layout {
	ax, sc, grid := Build(cfg, opts)
	return layout.FromAxis(ax, sc, grid, opts.Clamp)
}

// statsFor fills the size fields of Stats from a layout.
func statsFor(l layout.Layout) Stats {
	s := Stats{
		Segments:   len(l.Segments),
		Ticks:      len(l.Ticks),
		MinorTicks: l.MinorCount(),
	}
	for _, seg := range l.Segments {
		if seg.Synthetic {
			s.Synthetic++
		}
	}
	return s
}
