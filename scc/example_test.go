package scc_test

import (
	"context"
	"fmt"

	"github.com/AnacletoLAB/ensmallen-sub009/builder"
	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/scc"
)

func ExampleTarjan() {
	g, _ := builder.FromPairs(4, []core.Pair{
		{Src: 0, Dst: 1}, {Src: 1, Dst: 2}, {Src: 2, Dst: 0}, {Src: 2, Dst: 3},
	}, builder.WithDirected(true))

	res, _ := scc.Tarjan(context.Background(), g)
	fmt.Println(res.Components)
	// Output: [[3] [0 1 2]]
}
