// Package gridpath is a small grid shortest-path playground: a static 2D
// world with walls and per-cell entry costs, solved by Uniform-Cost Search
// and A* through one shared best-first search loop.
//
// Packages:
//
//	gridworld/       — Grid, Position, Action; transitions, path replay, reachability
//	search/          — Node expansion, the priority-frontier loop, UCS/A* priorities, Manhattan heuristic
//	harness/         — repeated timed trials and the console report
//	cmd/gridsearch/  — CLI over the reference 9×9 grid
//
// Quick ASCII example (S start, G goal, # wall, digits = entry cost):
//
//	1 1 G
//	1 # 5
//	S 1 1
//
// UCS orders the frontier by path cost; A* adds the Manhattan distance to the
// goal. Both return the same cost; A* usually pops fewer nodes.
package gridpath
