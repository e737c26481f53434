// Package harness times repeated searches and prints a console report.
//
// Each trial runs a fresh search: no frontier or visited state is shared
// between trials or between algorithms.
package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/gridpath/gridworld"
	"github.com/katalvlaran/gridpath/search"
)

// DefaultTrials is the number of timed repetitions per algorithm.
const DefaultTrials = 50

// Sentinel errors for harness configuration.
var (
	// ErrBadTrials indicates a trial count below one.
	ErrBadTrials = errors.New("harness: trials must be at least 1")
	// ErrUnknownAlgorithm indicates an algorithm name not known to Select.
	ErrUnknownAlgorithm = errors.New("harness: unknown algorithm")
	// ErrUnstable indicates two trials of one algorithm disagreed.
	ErrUnstable = errors.New("harness: trials returned different results")
)

// Algorithm is a named frontier ordering.
type Algorithm struct {
	Name     string
	Priority search.Priority
}

// Algorithms returns UCS and A* (Manhattan) for g, in that order.
func Algorithms(g *gridworld.Grid) []Algorithm {
	return []Algorithm{
		{Name: "UCS", Priority: search.UCS()},
		{Name: "A*", Priority: search.AStar(search.ManhattanFor(g))},
	}
}

// Select resolves a comma-separated list of names ("ucs", "astar", "all")
// to algorithms. Matching ignores case.
func Select(g *gridworld.Grid, names string) ([]Algorithm, error) {
	all := Algorithms(g)
	var out []Algorithm
	for _, name := range strings.Split(names, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "all", "":
			out = append(out, all...)
		case "ucs":
			out = append(out, all[0])
		case "astar", "a*":
			out = append(out, all[1])
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
		}
	}

	return out, nil
}

// Report is the outcome of timing one algorithm.
type Report struct {
	Name   string
	Result search.Result
	Trials int
	Total  time.Duration
}

// Mean returns the average wall-clock time per trial.
func (r Report) Mean() time.Duration {
	if r.Trials == 0 {
		return 0
	}

	return r.Total / time.Duration(r.Trials)
}

// Options configures Run.
type Options struct {
	Trials int
	// Now is the clock used for timing; tests substitute a fake.
	Now func() time.Time
	// OnReport, if set, is called after each algorithm finishes.
	OnReport func(Report)
}

// Option is a functional option for Run.
type Option func(*Options)

// DefaultOptions returns DefaultTrials trials timed with time.Now.
func DefaultOptions() Options {
	return Options{Trials: DefaultTrials, Now: time.Now}
}

// WithTrials sets the number of repetitions per algorithm.
func WithTrials(n int) Option {
	return func(o *Options) { o.Trials = n }
}

// WithClock replaces the timing clock.
func WithClock(now func() time.Time) Option {
	return func(o *Options) { o.Now = now }
}

// WithOnReport registers a callback fired once per finished algorithm.
func WithOnReport(fn func(Report)) Option {
	return func(o *Options) { o.OnReport = fn }
}

// Run times every algorithm on env. Each trial is an independent
// search.Search call. ctx is checked between trials.
//
// The last trial's result is reported; a trial whose result differs from
// the first one aborts the run with ErrUnstable.
func Run(ctx context.Context, env search.Environment, algs []Algorithm, opts ...Option) ([]Report, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Trials < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadTrials, cfg.Trials)
	}

	reports := make([]Report, 0, len(algs))
	for _, alg := range algs {
		rep := Report{Name: alg.Name}
		var first search.Result
		for i := 0; i < cfg.Trials; i++ {
			if err := ctx.Err(); err != nil {
				return reports, err
			}
			t0 := cfg.Now()
			res, err := search.Search(env, alg.Priority)
			rep.Total += cfg.Now().Sub(t0)
			if err != nil {
				return reports, fmt.Errorf("harness: %s trial %d: %w", alg.Name, i, err)
			}
			if i == 0 {
				first = res
			} else if !sameOutcome(first, res) {
				return reports, fmt.Errorf("%w: %s trial %d", ErrUnstable, alg.Name, i)
			}
			rep.Result = res
			rep.Trials++
		}
		reports = append(reports, rep)
		if cfg.OnReport != nil {
			cfg.OnReport(rep)
		}
	}

	return reports, nil
}

func sameOutcome(a, b search.Result) bool {
	return a.Found == b.Found && a.Cost == b.Cost && a.Pops == b.Pops &&
		gridworld.FormatActions(a.Actions) == gridworld.FormatActions(b.Actions)
}

// Print writes one block per report:
//
//	=== UCS ===
//	Nodes expanded: 56
//	Num actions: 16, Actions: [R R ... R]
//	Cost: 16
//	Time: 12.3µs
//
// An unreachable goal prints "No path found" instead of the action lines.
func Print(w io.Writer, reports []Report) error {
	for _, rep := range reports {
		res := rep.Result
		var err error
		if res.Found {
			_, err = fmt.Fprintf(w, "=== %s ===\nNodes expanded: %d\nNum actions: %d,\t\tActions: %v\nCost: %d\nTime: %v\n\n",
				rep.Name, res.Pops, len(res.Actions), res.Actions, res.Cost, rep.Mean())
		} else {
			_, err = fmt.Fprintf(w, "=== %s ===\nNodes expanded: %d\nNo path found\nTime: %v\n\n",
				rep.Name, res.Pops, rep.Mean())
		}
		if err != nil {
			return err
		}
	}

	return nil
}
