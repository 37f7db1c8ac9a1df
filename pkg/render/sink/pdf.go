package sink

import (
	"context"

	"github.com/matzehuels/segaxis/pkg/layout"
	"github.com/matzehuels/segaxis/pkg/render"
)

// RenderPDF renders the axis as PDF via SVG conversion.
func RenderPDF(ctx context.Context, l layout.Layout, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(ctx, RenderSVG(l, opts...))
}
