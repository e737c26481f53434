package search

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/gridworld"
)

// Search runs best-first search from env.Start() until a goal position is
// popped or the frontier is exhausted. priority orders the frontier.
//
// Loop:
//  1. Pop the entry with the smallest (key, seq).
//  2. Goal reached: return its actions.
//  3. Otherwise expand it.
//  4. Push each successor whose position is unseen or strictly cheaper than
//     the cost recorded in visited, updating visited first.
//
// An exhausted frontier yields Result{Found: false} and a nil error.
//
// Complexity:
//
//   - Time:  O(E log E), E = pushes.
//   - Space: O(V + E).
func Search(env Environment, priority Priority, opts ...Option) (Result, error) {
	if env == nil {
		return Result{}, ErrNilEnvironment
	}
	if g, ok := env.(*gridworld.Grid); ok && g == nil {
		return Result{}, ErrNilEnvironment
	}
	if priority == nil {
		return Result{}, ErrNilPriority
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{
		env:      env,
		priority: priority,
		options:  cfg,
		frontier: make(frontier, 0, 16),
		visited:  make(map[gridworld.Position]int),
		expanded: make(map[gridworld.Position]struct{}),
	}
	r.init()

	return r.process()
}

// UniformCost is Search with the UCS priority.
func UniformCost(env Environment, opts ...Option) (Result, error) {
	return Search(env, UCS(), opts...)
}

// AStarSearch is Search with the A* priority built from h.
func AStarSearch(env Environment, h Heuristic, opts ...Option) (Result, error) {
	return Search(env, AStar(h), opts...)
}

// runner holds the mutable state of one search. It is created per call
// and dropped when Search returns.
type runner struct {
	env      Environment
	priority Priority
	options  Options

	frontier frontier
	visited  map[gridworld.Position]int
	expanded map[gridworld.Position]struct{}
	seq      uint64
	pops     int
}

// init seeds the frontier and visited map with the start node at cost 0.
func (r *runner) init() {
	start := Node{Position: r.env.Start()}
	r.visited[start.Position] = 0
	heap.Init(&r.frontier)
	r.push(start)
}

func (r *runner) push(n Node) {
	heap.Push(&r.frontier, entry{key: r.priority(n), seq: r.seq, node: n})
	r.seq++
}

// process is the main loop.
func (r *runner) process() (Result, error) {
	for r.frontier.Len() > 0 {
		if r.options.MaxPops > 0 && r.pops >= r.options.MaxPops {
			return r.result(Node{}, false), ErrPopLimit
		}

		n := heap.Pop(&r.frontier).(entry).node
		r.pops++

		if r.env.IsGoal(n.Position) {
			return r.result(n, true), nil
		}

		if r.options.OnExpand != nil {
			r.options.OnExpand(n)
		}
		r.expanded[n.Position] = struct{}{}

		for _, s := range Expand(r.env, n) {
			best, seen := r.visited[s.Position]
			if seen && s.PathCost >= best {
				continue
			}
			r.visited[s.Position] = s.PathCost
			r.push(s)
		}
	}

	return r.result(Node{}, false), nil
}

func (r *runner) result(n Node, found bool) Result {
	res := Result{
		Found:    found,
		Pops:     r.pops,
		Expanded: len(r.expanded),
	}
	if found {
		res.Actions = n.Actions
		if res.Actions == nil {
			res.Actions = []gridworld.Action{}
		}
		res.Cost = n.PathCost
	}

	return res
}
