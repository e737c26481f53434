package gridworld

// Reachable returns the set of open cells connected to Start through
// 4-directional moves, Start included. Costs are ignored.
//
// The flood is a plain BFS over a row-major index queue.
//
// Time:   O(R·C).
// Memory: O(R·C) for the seen flags and output.
func (g *Grid) Reachable() map[Position]struct{} {
	seen := make([]bool, g.rows*g.cols)
	out := make(map[Position]struct{})

	i0 := g.index(g.start)
	seen[i0] = true
	queue := []int{i0}
	for qi := 0; qi < len(queue); qi++ {
		u := g.position(queue[qi])
		out[u] = struct{}{}
		for _, a := range Actions() {
			v, _, ok := g.Transition(u, a)
			if !ok {
				continue
			}
			vi := g.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return out
}

// GoalReachable reports whether any obstacle-free path joins Start and Goal.
func (g *Grid) GoalReachable() bool {
	_, ok := g.Reachable()[g.goal]

	return ok
}

// index maps p to a row-major index: Row*cols + Col.
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// position converts a row-major index back to a Position.
func (g *Grid) position(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}
