package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridworld"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleUniformCost solves the reference grid with UCS.
func ExampleUniformCost() {
	g := gridworld.Reference()
	res, err := search.UniformCost(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("found=%t cost=%d pops=%d actions=%s\n", res.Found, res.Cost, res.Pops, res.ActionString())
	// Output: found=true cost=16 pops=56 actions=RRRRRRRUUUUUUUUR
}

// ExampleAStarSearch solves the same grid with A* and the Manhattan heuristic.
// It reaches the same cost with fewer pops.
func ExampleAStarSearch() {
	g := gridworld.Reference()
	res, err := search.AStarSearch(g, search.Manhattan(g.Goal()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("found=%t cost=%d pops=%d actions=%s\n", res.Found, res.Cost, res.Pops, res.ActionString())
	// Output: found=true cost=16 pops=53 actions=RRRRRRRUUUUUUUUR
}

// ExampleSearch plugs a custom priority into the shared loop: greedy
// best-first ordering by heuristic alone. It is fast but not optimal in general.
func ExampleSearch() {
	g := gridworld.Reference()
	h := search.Manhattan(g.Goal())
	greedy := func(n search.Node) int { return h(n.Position) }

	res, err := search.Search(g, greedy)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	end, _, _ := g.Walk(res.Actions)
	fmt.Println(res.Found, end == g.Goal())
	// Output: true true
}

// ExampleResult_Err shows how an unreachable goal is reported.
func ExampleResult_Err() {
	g, err := gridworld.New(
		[][]bool{{false, true, false}},
		[][]int{{1, 1, 1}},
		gridworld.Position{Col: 0}, gridworld.Position{Col: 2},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, _ := search.UniformCost(g)
	fmt.Println(res.Found, res.Err())
	// Output: false search: no path to goal
}
