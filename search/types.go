package search

import (
	"errors"

	"github.com/katalvlaran/gridpath/gridworld"
)

// Sentinel errors returned by the search package.
var (
	// ErrNilEnvironment indicates a nil Environment was passed to Search.
	ErrNilEnvironment = errors.New("search: environment is nil")

	// ErrNilPriority indicates a nil Priority was passed to Search.
	ErrNilPriority = errors.New("search: priority function is nil")

	// ErrNoPath indicates the frontier was exhausted without reaching the goal.
	// Search never returns it directly; see Result.Err.
	ErrNoPath = errors.New("search: no path to goal")

	// ErrPopLimit indicates the search hit the WithMaxPops cap.
	ErrPopLimit = errors.New("search: pop limit reached")

	// ErrBadMaxPops indicates WithMaxPops was given a negative value.
	ErrBadMaxPops = errors.New("search: MaxPops must be non-negative")
)

// Environment is the view of a world the search needs.
// *gridworld.Grid satisfies it.
type Environment interface {
	Start() gridworld.Position
	IsGoal(p gridworld.Position) bool
	Transition(p gridworld.Position, a gridworld.Action) (gridworld.Position, int, bool)
}

// Node is a path prefix produced by expansion. Nodes are never mutated after
// creation; successors get their own copy of Actions.
type Node struct {
	Position gridworld.Position
	Actions  []gridworld.Action
	PathCost int
}

// Priority computes the frontier key of a node. Smaller keys pop first.
type Priority func(n Node) int

// Heuristic estimates the remaining cost from a position to the goal.
type Heuristic func(p gridworld.Position) int

// Result is the outcome of one search.
//
// Pops counts every frontier pop, the goal pop included. Expanded counts the
// distinct positions whose successors were generated.
type Result struct {
	Found    bool
	Actions  []gridworld.Action
	Cost     int
	Pops     int
	Expanded int
}

// Err returns ErrNoPath when no path was found, nil otherwise.
func (r Result) Err() error {
	if !r.Found {
		return ErrNoPath
	}

	return nil
}

// ActionString renders the actions as a symbol string such as "RRUU".
func (r Result) ActionString() string {
	return gridworld.FormatActions(r.Actions)
}

// Options configures a search.
//
// OnExpand – called with every non-goal node just before it is expanded.
// MaxPops  – stop with ErrPopLimit after this many pops; 0 means unlimited.
type Options struct {
	OnExpand func(Node)
	MaxPops  int
}

// Option is a functional option for Search.
type Option func(*Options)

// DefaultOptions returns Options with no hook and no pop cap.
func DefaultOptions() Options {
	return Options{}
}

// WithOnExpand registers a hook invoked for every expanded node.
func WithOnExpand(fn func(Node)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// WithMaxPops caps the number of frontier pops. Zero disables the cap.
// Panics on a negative value.
func WithMaxPops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxPops.Error())
		}
		o.MaxPops = n
	}
}
