package segment

import (
	"math"
	"reflect"
	"testing"
)

func sizes(geoms []Geometry) []float64 {
	out := make([]float64, len(geoms))
	for i, g := range geoms {
		out[i] = g.Size
	}
	return out
}

func assertSizes(t *testing.T, got []Geometry, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d segments, want %d", len(got), len(want))
	}
	for i, w := range want {
		if math.Abs(got[i].Size-w) > eps {
			t.Errorf("segment %d size = %v, want %v (all: %v)", i, got[i].Size, w, sizes(got))
		}
	}
}

func TestLayoutUniform(t *testing.T) {
	specs := []Spec{
		{From: 0, To: 10, SplitNumber: 5},
		{From: 10, To: 20, SplitNumber: 5},
	}
	geoms := Layout(specs, 100, DefaultMinorSplitNumber)
	assertSizes(t, geoms, []float64{50, 50})

	if geoms[1].Left != 50 {
		t.Errorf("second Left = %v, want 50", geoms[1].Left)
	}
	if geoms[0].Interval != 2 || geoms[1].Interval != 2 {
		t.Errorf("intervals = %v, %v, want 2", geoms[0].Interval, geoms[1].Interval)
	}
}

func TestLayoutUniformUnevenSplits(t *testing.T) {
	specs := []Spec{
		{From: 0, To: 100, SplitNumber: 2},
		{From: 100, To: 1000, SplitNumber: 6},
	}
	assertSizes(t, Layout(specs, 400, DefaultMinorSplitNumber), []float64{100, 300})
}

func TestLayoutExplicit(t *testing.T) {
	tests := []struct {
		name  string
		specs []Spec
		want  []float64
	}{
		{
			name: "all lengths",
			specs: []Spec{
				{From: 0, To: 10, Length: 0.2},
				{From: 10, To: 20, Length: 0.5},
				{From: 20, To: 30, Length: 0.3},
			},
			want: []float64{20, 50, 30},
		},
		{
			name: "last length ignored",
			specs: []Spec{
				{From: 0, To: 10, Length: 0.25},
				{From: 10, To: 20, Length: 0.9},
			},
			want: []float64{25, 75},
		},
		{
			name: "mixed with tick pixels",
			specs: []Spec{
				{From: 0, To: 10, Length: 0.5},
				{From: 10, To: 20, SplitNumber: 5, TickPixels: 4},
				{From: 20, To: 30},
			},
			want: []float64{50, 20, 30},
		},
		{
			name: "default tick pixels",
			specs: []Spec{
				{From: 0, To: 10, Length: 0.1},
				{From: 10, To: 20, SplitNumber: 2},
				{From: 20, To: 30},
			},
			want: []float64{10, 10, 80},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertSizes(t, Layout(tt.specs, 100, DefaultMinorSplitNumber), tt.want)
		})
	}
}

func TestLayoutFirstSegmentMinorCorrection(t *testing.T) {
	specs := []Spec{
		{From: 0, To: 10, SplitNumber: 5, MinorSplitNumber: 10},
		{From: 10, To: 20, SplitNumber: 5},
	}
	geoms := Layout(specs, 150, 5)
	assertSizes(t, geoms, []float64{100, 50})

	// Minor steps are the same pixel width on both sides of the boundary.
	first := geoms[0].Size / float64(5*10)
	second := geoms[1].Size / float64(5*5)
	if math.Abs(first-second) > eps {
		t.Errorf("minor step widths differ: %v vs %v", first, second)
	}
}

func TestLayoutMinorCorrectionSkipped(t *testing.T) {
	t.Run("matches default", func(t *testing.T) {
		specs := []Spec{
			{From: 0, To: 10, MinorSplitNumber: 5},
			{From: 10, To: 20},
		}
		assertSizes(t, Layout(specs, 100, 5), []float64{50, 50})
	})

	t.Run("single segment", func(t *testing.T) {
		specs := []Spec{{From: 0, To: 10, MinorSplitNumber: 2}}
		assertSizes(t, Layout(specs, 100, 5), []float64{100})
	})

	t.Run("explicit mode", func(t *testing.T) {
		specs := []Spec{
			{From: 0, To: 10, Length: 0.4, MinorSplitNumber: 2},
			{From: 10, To: 20},
		}
		assertSizes(t, Layout(specs, 100, 5), []float64{40, 60})
	})
}

func TestLayoutSumsToAxisLength(t *testing.T) {
	cases := [][]Spec{
		{{From: 0, To: 1, SplitNumber: 3}, {From: 1, To: 2, SplitNumber: 7}, {From: 2, To: 3, SplitNumber: 11}},
		{{From: 0, To: 1, Length: 1.0 / 3}, {From: 1, To: 2, Length: 1.0 / 7}, {From: 2, To: 3}},
		{{From: 0, To: 1, TickPixels: 3.3, Length: 0.01}, {From: 1, To: 2, TickPixels: 7.7}, {From: 2, To: 3}},
		{{From: 0, To: 1, MinorSplitNumber: 3}, {From: 1, To: 2, SplitNumber: 9}, {From: 2, To: 3}},
	}
	for _, length := range []float64{1, 97.3, 333, 1e4 / 3} {
		for i, specs := range cases {
			var sum float64
			for _, g := range Layout(specs, length, 4) {
				sum += g.Size
			}
			if math.Abs(sum-length) > eps {
				t.Errorf("case %d, length %v: sum = %v", i, length, sum)
			}
		}
	}
}

func TestLayoutExtentsMonotonic(t *testing.T) {
	tests := []struct {
		name  string
		specs []Spec
	}{
		{"uniform", []Spec{
			{From: 0, To: 1, SplitNumber: 3},
			{From: 1, To: 2, SplitNumber: 7},
			{From: 2, To: 3, SplitNumber: 2},
		}},
		{"explicit lengths overflow", []Spec{
			{From: 0, To: 10, Length: 0.6},
			{From: 10, To: 20, Length: 0.6},
			{From: 20, To: 30},
		}},
		{"tick pixels overflow", []Spec{
			{From: 0, To: 10, Length: 0.5},
			{From: 10, To: 20, SplitNumber: 20, TickPixels: 10},
			{From: 20, To: 30},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geoms := Layout(tt.specs, 120, DefaultMinorSplitNumber)
			for i, g := range geoms {
				if g.Size < 0 {
					t.Errorf("segment %d has negative size %v", i, g.Size)
				}
				if i == 0 {
					continue
				}
				if prev := geoms[i-1].Extent(); math.Abs(g.Left-prev[1]) > eps {
					t.Errorf("segment %d starts at %v, previous ends at %v", i, g.Left, prev[1])
				}
			}
			if end := geoms[len(geoms)-1].Right(); math.Abs(end-120) > eps {
				t.Errorf("last segment ends at %v, want 120", end)
			}
		})
	}
}

func TestLayoutExplicitOverflowScales(t *testing.T) {
	specs := []Spec{
		{From: 0, To: 10, Length: 0.6},
		{From: 10, To: 20, Length: 0.6},
		{From: 20, To: 30},
	}
	// 60 + 60 + 25 explicit pixels squeezed into 100.
	f := 100.0 / 145
	assertSizes(t, Layout(specs, 100, DefaultMinorSplitNumber), []float64{60 * f, 60 * f, 25 * f})
}

func TestLayoutIdempotent(t *testing.T) {
	specs := []Spec{
		{From: 0, To: 10, MinorSplitNumber: 2},
		{From: 10, To: 50, SplitNumber: 4},
	}
	snapshot := append([]Spec(nil), specs...)

	a := Layout(specs, 321, 5)
	b := Layout(specs, 321, 5)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("layouts differ:\n%v\n%v", a, b)
	}
	if !reflect.DeepEqual(specs, snapshot) {
		t.Error("Layout modified its input")
	}
}

func TestLayoutEmpty(t *testing.T) {
	if got := Layout(nil, 100, 5); got != nil {
		t.Errorf("Layout(nil) = %v, want nil", got)
	}
}
