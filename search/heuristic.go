package search

import "github.com/katalvlaran/gridpath/gridworld"

// Manhattan returns the L1 distance to goal: |Δrow| + |Δcol|.
// Admissible for 4-directional grids whose entry costs are all ≥ 1.
func Manhattan(goal gridworld.Position) Heuristic {
	return func(p gridworld.Position) int {
		return abs(goal.Row-p.Row) + abs(goal.Col-p.Col)
	}
}

// ManhattanFor returns Manhattan(g.Goal()) scaled by g.MinCost(), the
// tightest L1 bound that stays admissible for any non-negative cost grid.
// A grid containing zero-cost cells gets the zero heuristic.
func ManhattanFor(g *gridworld.Grid) Heuristic {
	h, scale := Manhattan(g.Goal()), g.MinCost()

	return func(p gridworld.Position) int {
		return scale * h(p)
	}
}

// UCS orders the frontier by path cost alone.
func UCS() Priority {
	return func(n Node) int { return n.PathCost }
}

// AStar orders the frontier by path cost plus the heuristic estimate.
// A nil heuristic yields a nil Priority, which Search rejects.
func AStar(h Heuristic) Priority {
	if h == nil {
		return nil
	}

	return func(n Node) int { return n.PathCost + h(n.Position) }
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
