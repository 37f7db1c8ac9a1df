package scale

import (
	"math"
	"reflect"
	"testing"

	"github.com/matzehuels/segaxis/pkg/core/segment"
)

const tol = 1e-9

func twoSegments(t *testing.T) *Segmented {
	t.Helper()
	s, err := NewSegmented([]segment.Spec{
		{From: 0, To: 10, SplitNumber: 5},
		{From: 10, To: 20, SplitNumber: 5},
	})
	if err != nil {
		t.Fatalf("NewSegmented: %v", err)
	}
	return s
}

func tickValues(ticks []Tick) []float64 {
	out := make([]float64, len(ticks))
	for i, tk := range ticks {
		out[i] = tk.Value
	}
	return out
}

func TestNewSegmentedRejectsInvalid(t *testing.T) {
	if _, err := NewSegmented(nil); err == nil {
		t.Error("empty segments should fail")
	}
	if _, err := NewSegmented([]segment.Spec{{From: 0, To: 10}, {From: 12, To: 20}}); err == nil {
		t.Error("non-contiguous segments should fail")
	}
}

func TestSegmentedTicks(t *testing.T) {
	s := twoSegments(t)
	s.UpdateSegments([2]float64{0, 100}, 5)

	want := []float64{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20}
	got := s.Ticks()
	if !reflect.DeepEqual(tickValues(got), want) {
		t.Errorf("Ticks() = %v, want %v", tickValues(got), want)
	}
	for i, tk := range got {
		wantSeg := 0
		if i >= 5 {
			wantSeg = 1
		}
		if tk.Segment != wantSeg {
			t.Errorf("tick %d (%v) segment = %d, want %d", i, tk.Value, tk.Segment, wantSeg)
		}
	}

	geoms := s.Geometry()
	if geoms[0].Size != 50 || geoms[1].Size != 50 {
		t.Errorf("sizes = %v, %v, want 50, 50", geoms[0].Size, geoms[1].Size)
	}
}

func TestSegmentedTicksLastValueExact(t *testing.T) {
	s, err := NewSegmented([]segment.Spec{
		{From: 0, To: 0.1, SplitNumber: 3},
		{From: 0.1, To: 0.7, SplitNumber: 3},
	})
	if err != nil {
		t.Fatalf("NewSegmented: %v", err)
	}
	ticks := s.Ticks()
	if last := ticks[len(ticks)-1].Value; last != 0.7 {
		t.Errorf("last tick = %v, want 0.7", last)
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i].Value < ticks[i-1].Value {
			t.Errorf("ticks decrease at %d: %v < %v", i, ticks[i].Value, ticks[i-1].Value)
		}
	}
}

func TestSegmentedSyntheticTrailingSegment(t *testing.T) {
	s := twoSegments(t)
	s.SetExtent(0, 25)
	s.UpdateSegments([2]float64{0, 150}, 5)

	segs := s.Segments()
	if len(segs) != 3 {
		t.Fatalf("segments = %d, want 3", len(segs))
	}
	if segs[2].From != 20 || segs[2].To != 25 {
		t.Errorf("trailing segment = %+v, want 20..25", segs[2])
	}

	var sum float64
	for _, g := range s.Geometry() {
		sum += g.Size
	}
	if math.Abs(sum-150) > tol {
		t.Errorf("sizes sum to %v, want 150", sum)
	}

	ticks := s.Ticks()
	if last := ticks[len(ticks)-1].Value; last != 25 {
		t.Errorf("last tick = %v, want 25", last)
	}
}

func TestSegmentedSyntheticSegmentFollowsExtent(t *testing.T) {
	s := twoSegments(t)
	s.SetExtent(0, 25)
	s.UpdateSegments([2]float64{0, 100}, 5)
	s.SetExtent(0, 18)
	s.UpdateSegments([2]float64{0, 100}, 5)

	if n := len(s.Segments()); n != 2 {
		t.Errorf("segments after shrinking extent = %d, want 2", n)
	}
}

func TestSegmentedUpdateIdempotent(t *testing.T) {
	s := twoSegments(t)
	s.SetExtent(0, 30)

	s.UpdateSegments([2]float64{0, 240}, 5)
	first := s.Geometry()
	firstSegs := s.Segments()

	s.UpdateSegments([2]float64{0, 240}, 5)
	if !reflect.DeepEqual(first, s.Geometry()) {
		t.Errorf("geometry changed:\n%v\n%v", first, s.Geometry())
	}
	if !reflect.DeepEqual(firstSegs, s.Segments()) {
		t.Errorf("segments changed:\n%v\n%v", firstSegs, s.Segments())
	}
}

func TestSegmentedInvertedAxisExtent(t *testing.T) {
	s := twoSegments(t)
	s.UpdateSegments([2]float64{100, 0}, 5)
	if got := s.AxisLength(); got != 100 {
		t.Errorf("AxisLength() = %v, want 100", got)
	}
}

func TestSegmentedMinorTicks(t *testing.T) {
	s := twoSegments(t)
	s.UpdateSegments([2]float64{0, 100}, 5)

	groups := s.MinorTicks(4)
	if len(groups) != 10 {
		t.Fatalf("groups = %d, want 10", len(groups))
	}
	want := []float64{0.5, 1, 1.5}
	if !reflect.DeepEqual(groups[0], want) {
		t.Errorf("first group = %v, want %v", groups[0], want)
	}
	want = []float64{18.5, 19, 19.5}
	if !reflect.DeepEqual(groups[9], want) {
		t.Errorf("last group = %v, want %v", groups[9], want)
	}
}

func TestSegmentedMinorTicksUseSegmentOverride(t *testing.T) {
	s, err := NewSegmented([]segment.Spec{
		{From: 0, To: 10, SplitNumber: 5, MinorSplitNumber: 2},
		{From: 10, To: 20, SplitNumber: 5},
	})
	if err != nil {
		t.Fatalf("NewSegmented: %v", err)
	}
	s.UpdateSegments([2]float64{0, 100}, 5)

	groups := s.MinorTicks(5)
	if got := groups[0]; !reflect.DeepEqual(got, []float64{1}) {
		t.Errorf("overridden group = %v, want [1]", got)
	}
	if got := groups[5]; len(got) != 4 {
		t.Errorf("default group = %v, want 4 values", got)
	}
}

func TestSegmentedMinorTicksStrictlyInside(t *testing.T) {
	s, err := NewSegmented([]segment.Spec{
		{From: 0, To: 1, SplitNumber: 3, MinorSplitNumber: 7},
		{From: 1, To: 100, SplitNumber: 9},
		{From: 100, To: 100.3, SplitNumber: 2},
	})
	if err != nil {
		t.Fatalf("NewSegmented: %v", err)
	}
	s.UpdateSegments([2]float64{0, 500}, 6)

	ticks := s.Ticks()
	groups := s.MinorTicks(6)
	if len(groups) != len(ticks)-1 {
		t.Fatalf("groups = %d, want %d", len(groups), len(ticks)-1)
	}
	for i, g := range groups {
		prev, next := ticks[i].Value, ticks[i+1].Value
		for _, v := range g {
			if v <= prev || v >= next {
				t.Errorf("gap %d: minor %v not inside (%v, %v)", i, v, prev, next)
			}
		}
	}
}

func TestSegmentedNormalizeRoundTrip(t *testing.T) {
	s := twoSegments(t)
	s.SetExtent(0, 40)
	s.UpdateSegments([2]float64{0, 300}, 5)

	// Segment 0: 0..10 over 100px, segment 1: 10..20 over 100px,
	// segment 2 (trailing): 20..40 over 100px.
	tests := []struct {
		v    float64
		want float64
	}{
		{0, 0},
		{5, 50.0 / 300},
		{10, 100.0 / 300},
		{15, 150.0 / 300},
		{30, 250.0 / 300},
		{40, 1},
	}
	for _, tt := range tests {
		got := s.Normalize(tt.v)
		if math.Abs(got-tt.want) > tol {
			t.Errorf("Normalize(%v) = %v, want %v", tt.v, got, tt.want)
		}
		if back := s.Scale(got); math.Abs(back-tt.v) > 1e-7 {
			t.Errorf("Scale(Normalize(%v)) = %v", tt.v, back)
		}
	}
}

func TestSegmentedNormalizeBeforeLayout(t *testing.T) {
	s := twoSegments(t)
	if got := s.Normalize(5); got != 0.25 {
		t.Errorf("Normalize(5) = %v, want 0.25", got)
	}
	if got := s.Scale(0.5); got != 10 {
		t.Errorf("Scale(0.5) = %v, want 10", got)
	}
}

func TestNormalizeWithinSegment(t *testing.T) {
	tests := []struct {
		offset float64
		extent [2]float64
		want   float64
	}{
		{0, [2]float64{10, 20}, 0},
		{5, [2]float64{10, 20}, 0.5},
		{10, [2]float64{10, 20}, 1},
		{3, [2]float64{7, 7}, 0.5},
	}
	for _, tt := range tests {
		if got := NormalizeWithinSegment(tt.offset, tt.extent); got != tt.want {
			t.Errorf("NormalizeWithinSegment(%v, %v) = %v, want %v", tt.offset, tt.extent, got, tt.want)
		}
	}
}
