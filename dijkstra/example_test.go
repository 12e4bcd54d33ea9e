package dijkstra_test

import (
	"fmt"

	"github.com/AnacletoLAB/ensmallen-sub009/builder"
	"github.com/AnacletoLAB/ensmallen-sub009/dijkstra"
)

func ExampleShortestPath() {
	g, err := builder.FromWeightedPairs(4, []builder.WeightedPair{
		{Src: 0, Dst: 1, Weight: 1},
		{Src: 1, Dst: 2, Weight: 1},
		{Src: 0, Dst: 2, Weight: 5},
		{Src: 2, Dst: 3, Weight: 1},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	path, dist, err := dijkstra.ShortestPath(g, 0, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(path, dist)
	// Output: [0 1 2 3] 3
}
