// Package search implements best-first graph search over a gridworld:
// Uniform-Cost Search (UCS) and A* share one loop and differ only in the
// Priority function that orders the frontier.
//
// Overview:
//
//   - A Node is a path prefix: current position, actions taken from the
//     start, and accumulated entry cost.
//   - The frontier is a min-heap keyed by (priority, insertion sequence).
//     Equal priorities pop in insertion order, so results are deterministic.
//   - The visited map records the lowest path cost at which each position
//     has been enqueued. A successor is pushed only when its position is new
//     or strictly cheaper than the recorded cost.
//   - The search stops at the first popped goal node.
//
// Strategies:
//
//   - UCS():          key = PathCost
//   - AStar(h):       key = PathCost + h(Position)
//   - Manhattan(goal) is admissible and consistent when every cell entry
//     cost is at least 1; ManhattanFor scales it by the grid's minimum cost.
//
// Outcomes:
//
//   - Result.Found == true:  Actions, Cost, Pops and Expanded are populated.
//   - Result.Found == false: the frontier was exhausted; no path exists.
//     This is not an error; Result.Err reports ErrNoPath for callers that
//     prefer one.
//   - A non-nil error signals misconfiguration (ErrNilEnvironment,
//     ErrNilPriority) or the WithMaxPops cap (ErrPopLimit).
//
// Complexity:
//
//   - Time:  O(E log E) heap operations, E = number of pushes (≤ 4 per pop).
//   - Space: O(V + E) for the visited map and the lazy frontier.
//
// Thread safety:
//
//   - Every call owns its frontier and visited map. Concurrent calls on the
//     same read-only Environment are safe.
package search
