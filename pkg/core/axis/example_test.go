package axis_test

import (
	"fmt"

	"github.com/matzehuels/segaxis/pkg/core/axis"
	"github.com/matzehuels/segaxis/pkg/core/scale"
	"github.com/matzehuels/segaxis/pkg/core/segment"
)

func ExampleAxis_TicksCoords() {
	sc, _ := scale.NewSegmented([]segment.Spec{
		{From: 0, To: 10, SplitNumber: 2},
		{From: 10, To: 100, SplitNumber: 3},
	})
	ax := axis.New(axis.DimX, sc, [2]float64{0, 300})

	grid := &axis.Grid{X: 40, Y: 20, Width: 300, Height: 100}
	grid.Place(ax)

	for _, t := range ax.TicksCoords(axis.TicksOptions{}) {
		fmt.Printf("%g: local=%.1f global=%.1f\n", t.Value, t.Coord, ax.ToGlobalCoord(t.Coord))
	}
	// Output:
	// 0: local=0.0 global=40.0
	// 5: local=60.0 global=100.0
	// 10: local=120.0 global=160.0
	// 40: local=180.0 global=220.0
	// 70: local=240.0 global=280.0
	// 100: local=300.0 global=340.0
}

func ExampleAxis_PointToData() {
	sc, _ := scale.NewSegmented([]segment.Spec{
		{From: 0, To: 10, SplitNumber: 2},
		{From: 10, To: 100, SplitNumber: 3},
	})
	ax := axis.New(axis.DimY, sc, [2]float64{300, 0})

	// Vertical axes read the second component and run bottom to top.
	fmt.Printf("%.1f\n", ax.PointToData([2]float64{999, 90}, false))
	// Output:
	// 55.0
}
