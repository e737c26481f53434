package gridworld

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridworld operations.
var (
	// ErrEmptyGrid indicates the obstacle grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridworld: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridworld: all rows must have the same length")
	// ErrDimensionMismatch indicates the cost grid and obstacle grid differ in shape.
	ErrDimensionMismatch = errors.New("gridworld: cost and obstacle grids must share dimensions")
	// ErrNegativeCost indicates a negative entry cost.
	ErrNegativeCost = errors.New("gridworld: cell cost must be non-negative")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("gridworld: position out of bounds")
	// ErrBlocked indicates the start or goal cell is an obstacle.
	ErrBlocked = errors.New("gridworld: position is obstructed")
	// ErrInvalidAction indicates an unknown action symbol.
	ErrInvalidAction = errors.New("gridworld: invalid action")
	// ErrIllegalMove indicates a replayed action left the grid or entered an obstacle.
	ErrIllegalMove = errors.New("gridworld: illegal move")
)

// Position is a cell coordinate. It is a comparable value type and is used
// directly as a map key.
type Position struct {
	Row, Col int
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns p shifted by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Action is one of the four orthogonal moves.
type Action uint8

const (
	// Up moves one row toward row 0.
	Up Action = iota
	// Down moves one row away from row 0.
	Down
	// Left moves one column toward column 0.
	Left
	// Right moves one column away from column 0.
	Right
)

// actionOffsets holds (dRow, dCol) per Action, indexed by the Action value.
var actionOffsets = [...][2]int{
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

var actionSymbols = [...]byte{Up: 'U', Down: 'D', Left: 'L', Right: 'R'}

// Actions returns the four actions in canonical expansion order: U, D, L, R.
// A fresh slice is returned on every call.
func Actions() []Action {
	return []Action{Up, Down, Left, Right}
}

// Valid reports whether a is one of the four recognized actions.
func (a Action) Valid() bool {
	return int(a) < len(actionOffsets)
}

// Offset returns the unit (dRow, dCol) displacement of a.
// It panics on an invalid action; actions obtained from Actions or
// ParseAction are always valid.
func (a Action) Offset() (dr, dc int) {
	if !a.Valid() {
		panic(fmt.Sprintf("%v: %d", ErrInvalidAction, uint8(a)))
	}
	o := actionOffsets[a]

	return o[0], o[1]
}

// String returns the single-letter symbol of a ("U", "D", "L", "R").
func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Action(%d)", uint8(a))
	}

	return string(actionSymbols[a])
}

// ParseAction converts a symbol to an Action. Both upper and lower case are
// accepted.
func ParseAction(r rune) (Action, error) {
	switch r {
	case 'U', 'u':
		return Up, nil
	case 'D', 'd':
		return Down, nil
	case 'L', 'l':
		return Left, nil
	case 'R', 'r':
		return Right, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidAction, r)
}

// ParseActions converts a string of symbols such as "RRUU" into actions.
// The first unknown symbol aborts parsing with ErrInvalidAction.
func ParseActions(s string) ([]Action, error) {
	out := make([]Action, 0, len(s))
	for i, r := range s {
		a, err := ParseAction(r)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", i, err)
		}
		out = append(out, a)
	}

	return out, nil
}

// FormatActions renders actions as a compact symbol string, e.g. "RRUU".
func FormatActions(actions []Action) string {
	b := make([]byte, len(actions))
	for i, a := range actions {
		b[i] = a.String()[0]
	}

	return string(b)
}

// Option configures a Grid during construction.
type Option func(*Options)

// Options holds construction-time overrides.
type Options struct {
	Start Position
	Goal  Position
}

// WithStart overrides the start position passed to New.
func WithStart(p Position) Option {
	return func(o *Options) {
		o.Start = p
	}
}

// WithGoal overrides the goal position passed to New.
func WithGoal(p Position) Option {
	return func(o *Options) {
		o.Goal = p
	}
}
