package scale

import (
	"reflect"
	"testing"
)

func TestLinearTicks(t *testing.T) {
	l := NewLinear(0, 100, 4)
	got := tickValues(l.Ticks())
	want := []float64{0, 25, 50, 75, 100}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Ticks() = %v, want %v", got, want)
	}
	for _, tk := range l.Ticks() {
		if tk.Segment != -1 {
			t.Errorf("tick %v segment = %d, want -1", tk.Value, tk.Segment)
		}
	}
}

func TestLinearDefaultSplit(t *testing.T) {
	if n := len(NewLinear(0, 1, 0).Ticks()); n != 6 {
		t.Errorf("ticks = %d, want 6", n)
	}
}

func TestLinearNormalize(t *testing.T) {
	l := NewLinear(-10, 10, 5)
	if got := l.Normalize(0); got != 0.5 {
		t.Errorf("Normalize(0) = %v, want 0.5", got)
	}
	if got := l.Scale(0.25); got != -5 {
		t.Errorf("Scale(0.25) = %v, want -5", got)
	}

	l.SetExtent(3, 3)
	if got := l.Normalize(3); got != 0.5 {
		t.Errorf("degenerate Normalize = %v, want 0.5", got)
	}
}

func TestLinearMinorTicks(t *testing.T) {
	l := NewLinear(0, 10, 2)
	got := l.MinorTicks(5)
	want := [][]float64{{1, 2, 3, 4}, {6, 7, 8, 9}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MinorTicks(5) = %v, want %v", got, want)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.1 + 0.2, 0.3},
		{1.00000000004, 1},
		{123456789.123456789, 123456789.1234567890},
	}
	for _, tt := range tests {
		if got := round(tt.in, minorPrecision); got != tt.want {
			t.Errorf("round(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
