package search

import "github.com/katalvlaran/gridpath/gridworld"

// Expand returns the successors of n, one per successful transition, in the
// canonical action order U, D, L, R. Each successor's PathCost adds the
// entry cost of its cell; failed transitions are dropped.
func Expand(env Environment, n Node) []Node {
	actions := gridworld.Actions()
	out := make([]Node, 0, len(actions))
	for _, a := range actions {
		next, step, ok := env.Transition(n.Position, a)
		if !ok {
			continue
		}
		acts := make([]gridworld.Action, len(n.Actions)+1)
		copy(acts, n.Actions)
		acts[len(n.Actions)] = a
		out = append(out, Node{
			Position: next,
			Actions:  acts,
			PathCost: n.PathCost + step,
		})
	}

	return out
}
