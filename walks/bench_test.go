package walks_test

import (
	"context"
	"testing"

	"github.com/AnacletoLAB/ensmallen-sub009/builder"
	"github.com/AnacletoLAB/ensmallen-sub009/walks"
)

func benchmarkWalks(b *testing.B, mutate func(*walks.Parameters)) {
	g, err := builder.RandomConnected(5000, 40000, builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	p := walks.DefaultParameters()
	p.WalkLength = 64
	mutate(&p)
	seq, err := walks.CompleteWalks(g, p)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := seq.Collect(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompleteWalks_Uniform(b *testing.B) {
	benchmarkWalks(b, func(*walks.Parameters) {})
}

func BenchmarkCompleteWalks_Node2Vec(b *testing.B) {
	benchmarkWalks(b, func(p *walks.Parameters) {
		p.ReturnWeight = 0.5
		p.ExploreWeight = 2
	})
}

func BenchmarkCompleteWalks_Approximate(b *testing.B) {
	benchmarkWalks(b, func(p *walks.Parameters) {
		p.ExploreWeight = 2
		p.MaxNeighbours = 4
	})
}
