package segment_test

import (
	"fmt"

	"github.com/matzehuels/segaxis/pkg/core/segment"
)

func ExampleLayout() {
	specs := []segment.Spec{
		{From: 0, To: 10, SplitNumber: 5},
		{From: 10, To: 20, SplitNumber: 5},
	}
	for _, g := range segment.Layout(specs, 100, segment.DefaultMinorSplitNumber) {
		fmt.Printf("segment %d: left=%g size=%g interval=%g\n", g.Index, g.Left, g.Size, g.Interval)
	}
	// Output:
	// segment 0: left=0 size=50 interval=2
	// segment 1: left=50 size=50 interval=2
}

func ExampleLayout_explicit() {
	// The last segment always takes what is left of the axis.
	specs := []segment.Spec{
		{From: 0, To: 10, SplitNumber: 2, Length: 0.25},
		{From: 10, To: 100, SplitNumber: 3},
	}
	for _, g := range segment.Layout(specs, 200, segment.DefaultMinorSplitNumber) {
		fmt.Printf("segment %d: left=%g size=%g interval=%g\n", g.Index, g.Left, g.Size, g.Interval)
	}
	// Output:
	// segment 0: left=0 size=50 interval=5
	// segment 1: left=50 size=150 interval=30
}

func ExampleNewSet() {
	_, err := segment.NewSet([]segment.Spec{
		{From: 0, To: 10},
		{From: 12, To: 20},
	})
	fmt.Println(err != nil)
	// Output:
	// true
}
