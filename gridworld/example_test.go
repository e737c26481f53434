package gridworld_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridworld"
)

// ExampleReference prints the demonstration grid. Walls are '#', costs
// above nine are '+'.
func ExampleReference() {
	g := gridworld.Reference()
	fmt.Print(g)
	fmt.Println(g.Start(), "->", g.Goal())
	// Output:
	// 11155551G
	// 111555511
	// 11#####11
	// 111+++#11
	// 11111+#11
	// 11111+#11
	// 1111++#11
	// 111####11
	// S11111111
	// (8,0) -> (0,8)
}

// ExampleGrid_Walk replays a symbol string and reports where it ends.
func ExampleGrid_Walk() {
	g := gridworld.Reference()
	acts, err := gridworld.ParseActions("RRRRRRRUUUUUUUUR")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	end, cost, err := g.Walk(acts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("end=%v goal=%t cost=%d\n", end, g.IsGoal(end), cost)
	// Output: end=(0,8) goal=true cost=16
}
