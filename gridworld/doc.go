// Package gridworld models a static 2D grid world for shortest-path search:
// an obstacle map, a per-cell entry-cost map, and a start and goal cell.
//
// What:
//
//   - Grid wraps a rectangular obstacle grid ([][]bool, true = blocked) and
//     an equally sized cost grid ([][]int, every value ≥ 0).
//   - Transition moves one cell Up, Down, Left or Right and charges the cost
//     of the cell entered. Moves off the grid or into an obstacle fail.
//   - Walk replays an action sequence from Start and validates every step.
//   - Reachable floods the open cells connected to Start.
//
// Why:
//
//   - Search algorithms (see package search) only need Start, IsGoal and
//     Transition; Grid supplies them without exposing its storage.
//   - Tests and the timing harness use Walk and Reachable as independent
//     checks on search results.
//
// Coordinates:
//
//	Position{Row, Col} is 0-indexed; Row grows downward, Col grows rightward.
//
//	      col 0 1 2
//	row 0     . . G
//	row 1     . # .
//	row 2     S . .
//
// Complexity:
//
//   - New:        O(R×C) time and memory (deep copy + validation).
//   - Transition: O(1).
//   - Walk:       O(len(actions)).
//   - Reachable:  O(R×C) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid:         obstacle grid has no rows or no columns.
//   - ErrNonRectangular:    rows of differing lengths.
//   - ErrDimensionMismatch: cost grid shape differs from obstacle grid shape.
//   - ErrNegativeCost:      a cost-grid value is negative.
//   - ErrOutOfBounds:       a position lies outside the grid.
//   - ErrBlocked:           start or goal sits on an obstacle.
//   - ErrInvalidAction:     an action symbol outside U, D, L, R.
//   - ErrIllegalMove:       Walk hit a wall or the grid edge.
package gridworld
