package search_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/gridworld"
	"github.com/katalvlaran/gridpath/search"
)

func BenchmarkUniformCost_Reference(b *testing.B) {
	g := gridworld.Reference()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := search.UniformCost(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAStar_Reference(b *testing.B) {
	g := gridworld.Reference()
	h := search.Manhattan(g.Goal())
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := search.AStarSearch(g, h); err != nil {
			b.Fatal(err)
		}
	}
}
