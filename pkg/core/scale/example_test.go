package scale_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/segaxis/pkg/core/scale"
	"github.com/matzehuels/segaxis/pkg/core/segment"
)

func ExampleSegmented() {
	sc, err := scale.NewSegmented([]segment.Spec{
		{From: 0, To: 10, SplitNumber: 2},
		{From: 10, To: 100, SplitNumber: 3},
	})
	if err != nil {
		panic(err)
	}
	sc.UpdateSegments([2]float64{0, 300}, segment.DefaultMinorSplitNumber)

	var values []string
	for _, t := range sc.Ticks() {
		values = append(values, fmt.Sprint(t.Value))
	}
	fmt.Println(strings.Join(values, " "))
	fmt.Printf("%.2f\n", sc.Normalize(55))
	fmt.Printf("%g\n", sc.Scale(0.7))
	// Output:
	// 0 5 10 40 70 100
	// 0.70
	// 55
}

func ExampleSegmented_trailingSegment() {
	sc, _ := scale.NewSegmented([]segment.Spec{
		{From: 0, To: 10, SplitNumber: 5},
		{From: 10, To: 20, SplitNumber: 5},
	})
	sc.SetExtent(0, 25)
	sc.UpdateSegments([2]float64{0, 100}, segment.DefaultMinorSplitNumber)

	segs := sc.Segments()
	fmt.Println(len(segs), sc.Configured())
	fmt.Println(segs[2].From, segs[2].To)
	// Output:
	// 3 2
	// 20 25
}
