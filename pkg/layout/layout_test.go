package layout

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/matzehuels/segaxis/pkg/core/axis"
	"github.com/matzehuels/segaxis/pkg/core/scale"
	"github.com/matzehuels/segaxis/pkg/core/segment"
)

func buildAxis(t *testing.T, max float64) (*axis.Axis, *scale.Segmented, *axis.Grid) {
	t.Helper()
	sc, err := scale.NewSegmented([]segment.Spec{
		{From: 0, To: 10, SplitNumber: 5},
		{From: 10, To: 20, SplitNumber: 5},
	})
	if err != nil {
		t.Fatalf("NewSegmented: %v", err)
	}
	sc.SetExtent(0, max)
	grid := &axis.Grid{X: 40, Y: 20, Width: 100, Height: 50}
	ax := axis.New(axis.DimX, sc, grid.AxisExtent(axis.DimX, false))
	grid.Place(ax)
	return ax, sc, grid
}

func TestFromAxis(t *testing.T) {
	ax, sc, grid := buildAxis(t, 20)
	l := FromAxis(ax, sc, grid, false)

	if l.Dim != "x" || l.Position != "bottom" || l.Type != axis.TypeSegments {
		t.Errorf("placement = %s/%s/%s", l.Dim, l.Position, l.Type)
	}
	if !l.IsHorizontal() {
		t.Error("bottom axis should be horizontal")
	}
	if l.AxisLength != 100 {
		t.Errorf("AxisLength = %v, want 100", l.AxisLength)
	}
	if l.GlobalExtent != [2]float64{40, 140} {
		t.Errorf("GlobalExtent = %v", l.GlobalExtent)
	}
	if len(l.Segments) != 2 {
		t.Fatalf("len(Segments) = %d, want 2", len(l.Segments))
	}
	if l.Segments[0].Size != 50 || l.Segments[1].Left != 50 {
		t.Errorf("segment geometry = %+v", l.Segments)
	}
	if len(l.Ticks) != 11 {
		t.Fatalf("len(Ticks) = %d, want 11", len(l.Ticks))
	}
	if l.Ticks[10].Value != 20 || l.Ticks[10].Global != 140 {
		t.Errorf("last tick = %+v", l.Ticks[10])
	}
	if len(l.MinorTicks) != 10 || l.MinorCount() != 40 {
		t.Errorf("minor groups = %d, count = %d", len(l.MinorTicks), l.MinorCount())
	}
}

func TestFromAxisSynthetic(t *testing.T) {
	ax, sc, grid := buildAxis(t, 25)
	l := FromAxis(ax, sc, grid, false)

	if len(l.Segments) != 3 {
		t.Fatalf("len(Segments) = %d, want 3", len(l.Segments))
	}
	last := l.Segments[2]
	if !last.Synthetic || last.From != 20 || last.To != 25 {
		t.Errorf("synthetic segment = %+v", last)
	}
	if l.Segments[0].Synthetic {
		t.Error("configured segment marked synthetic")
	}

	total := 0.0
	for _, s := range l.Segments {
		total += s.Size
	}
	if math.Abs(total-100) > 1e-9 {
		t.Errorf("sizes sum to %v, want 100", total)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	ax, sc, grid := buildAxis(t, 20)
	l := FromAxis(ax, sc, grid, true)

	path := filepath.Join(t.TempDir(), "layout.json")
	if err := WriteFile(l, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got.Ticks) != len(l.Ticks) || got.Segments[1].Size != l.Segments[1].Size {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{`},
		{"no segments", `{"ticks":[{"value":0}]}`},
		{"no ticks", `{"segments":[{"from":0,"to":1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Unmarshal([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
