package sink

import "github.com/matzehuels/segaxis/pkg/layout"

// RenderJSON exports the layout as a pretty-printed JSON document. Minor
// ticks are dropped unless withMinor is set.
func RenderJSON(l layout.Layout, withMinor bool) ([]byte, error) {
	if !withMinor {
		l.MinorTicks = nil
	}
	return layout.Marshal(l)
}
