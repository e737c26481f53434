package gridworld

import (
	"fmt"
	"strings"
)

// Grid is an immutable grid world. Obstacles[r][c] reports a blocked cell,
// Costs[r][c] the cost charged for entering cell (r,c).
// A Grid is safe for concurrent reads once built.
type Grid struct {
	rows, cols int
	obstacles  [][]bool
	costs      [][]int
	start      Position
	goal       Position
	minCost    int
}

// New constructs a Grid from an obstacle grid and a cost grid of identical
// shape. Both inputs are deep-copied so later mutation by the caller has no
// effect.
//
// Validation order:
//  1. obstacles non-empty (ErrEmptyGrid) and rectangular (ErrNonRectangular).
//  2. costs has the same shape (ErrDimensionMismatch), values ≥ 0 (ErrNegativeCost).
//  3. start and goal (after options) in bounds (ErrOutOfBounds) and open (ErrBlocked).
//
// Complexity: O(R×C) time and memory.
func New(obstacles [][]bool, costs [][]int, start, goal Position, opts ...Option) (*Grid, error) {
	cfg := Options{Start: start, Goal: goal}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(obstacles) == 0 || len(obstacles[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(obstacles), len(obstacles[0])
	for r, row := range obstacles {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}
	if len(costs) != rows {
		return nil, fmt.Errorf("%w: cost grid has %d rows, want %d", ErrDimensionMismatch, len(costs), rows)
	}

	g := &Grid{
		rows:      rows,
		cols:      cols,
		obstacles: make([][]bool, rows),
		costs:     make([][]int, rows),
		start:     cfg.Start,
		goal:      cfg.Goal,
		minCost:   -1,
	}
	for r := 0; r < rows; r++ {
		if len(costs[r]) != cols {
			return nil, fmt.Errorf("%w: cost row %d has %d columns, want %d", ErrDimensionMismatch, r, len(costs[r]), cols)
		}
		g.obstacles[r] = make([]bool, cols)
		copy(g.obstacles[r], obstacles[r])
		g.costs[r] = make([]int, cols)
		for c, v := range costs[r] {
			if v < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d) cost=%d", ErrNegativeCost, r, c, v)
			}
			g.costs[r][c] = v
			if g.minCost < 0 || v < g.minCost {
				g.minCost = v
			}
		}
	}

	for _, end := range []struct {
		name string
		p    Position
	}{{"start", g.start}, {"goal", g.goal}} {
		if !g.InBounds(end.p) {
			return nil, fmt.Errorf("%w: %s %v", ErrOutOfBounds, end.name, end.p)
		}
		if g.Blocked(end.p) {
			return nil, fmt.Errorf("%w: %s %v", ErrBlocked, end.name, end.p)
		}
	}

	return g, nil
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the start position.
func (g *Grid) Start() Position { return g.start }

// Goal returns the goal position.
func (g *Grid) Goal() Position { return g.goal }

// MinCost returns the smallest cell cost in the grid.
func (g *Grid) MinCost() int { return g.minCost }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Blocked reports whether p is an obstacle. Out-of-bounds positions count
// as blocked.
func (g *Grid) Blocked(p Position) bool {
	return !g.InBounds(p) || g.obstacles[p.Row][p.Col]
}

// IsGoal reports whether p equals the goal.
func (g *Grid) IsGoal(p Position) bool {
	return p == g.goal
}

// Cost returns the entry cost of p, or ErrOutOfBounds.
func (g *Grid) Cost(p Position) (int, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}

	return g.costs[p.Row][p.Col], nil
}

// Transition applies a to p.
//
// On success it returns the neighboring cell, the cost of entering it, and
// ok=true. If the neighbor is off the grid or blocked it returns p itself,
// the cost of p, and ok=false; callers must discard both values in that case.
//
// Complexity: O(1).
func (g *Grid) Transition(p Position, a Action) (Position, int, bool) {
	dr, dc := a.Offset()
	next := p.Add(dr, dc)
	if g.Blocked(next) {
		var stay int
		if g.InBounds(p) {
			stay = g.costs[p.Row][p.Col]
		}
		return p, stay, false
	}

	return next, g.costs[next.Row][next.Col], true
}

// Walk replays actions from Start and returns the final position and the
// accumulated entry cost. The first failed transition aborts with
// ErrIllegalMove, reporting the step index and the position it was taken from.
//
// Complexity: O(len(actions)).
func (g *Grid) Walk(actions []Action) (Position, int, error) {
	p, total := g.start, 0
	for i, a := range actions {
		if !a.Valid() {
			return p, total, fmt.Errorf("step %d: %w: %d", i, ErrInvalidAction, uint8(a))
		}
		next, cost, ok := g.Transition(p, a)
		if !ok {
			return p, total, fmt.Errorf("%w: step %d %s from %v", ErrIllegalMove, i, a, p)
		}
		p, total = next, total+cost
	}

	return p, total, nil
}

// String renders the grid one row per line: 'S' start, 'G' goal, '#'
// obstacle, otherwise the cell cost (values above 9 shown as '+').
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := Position{r, c}
			switch {
			case p == g.start:
				sb.WriteByte('S')
			case p == g.goal:
				sb.WriteByte('G')
			case g.obstacles[r][c]:
				sb.WriteByte('#')
			case g.costs[r][c] > 9:
				sb.WriteByte('+')
			default:
				sb.WriteByte(byte('0' + g.costs[r][c]))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
