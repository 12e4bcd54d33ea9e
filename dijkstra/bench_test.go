package dijkstra_test

import (
	"testing"

	"github.com/AnacletoLAB/ensmallen-sub009/builder"
	"github.com/AnacletoLAB/ensmallen-sub009/dijkstra"
)

func BenchmarkDijkstra_RandomConnected(b *testing.B) {
	g, err := builder.RandomConnected(5000, 20000, builder.WithWeightFn(builder.UniformWeightFn(1, 10)))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Dijkstra(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
