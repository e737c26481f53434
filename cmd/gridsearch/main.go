// Command gridsearch solves the reference 9×9 grid with UCS and A* and
// prints expansion counts, the action sequence, and mean wall-clock time
// over repeated trials.
//
// Usage:
//
//	gridsearch [-trials 50] [-algo all|ucs|astar] [-log-level info] [-json-logs]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/katalvlaran/gridpath/gridworld"
	"github.com/katalvlaran/gridpath/harness"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "gridsearch:", err)
		os.Exit(1)
	}
}

type config struct {
	trials   int
	algo     string
	logLevel string
	jsonLogs bool
	showGrid bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("gridsearch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.trials, "trials", harness.DefaultTrials, "Timed repetitions per algorithm")
	fs.StringVar(&cfg.algo, "algo", "all", "Algorithms to run: all, ucs, astar (comma-separated)")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.BoolVar(&cfg.jsonLogs, "json-logs", false, "Emit logs as JSON")
	fs.BoolVar(&cfg.showGrid, "show-grid", false, "Print the grid before searching")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func newLogger(w io.Writer, level string, asJSON bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid -log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if asJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger, err := newLogger(stderr, cfg.logLevel, cfg.jsonLogs)
	if err != nil {
		return err
	}

	g := gridworld.Reference()
	if cfg.showGrid {
		fmt.Fprint(stdout, g)
		fmt.Fprintln(stdout)
	}
	logger.Debug("grid loaded",
		"rows", g.Rows(), "cols", g.Cols(),
		"start", g.Start().String(), "goal", g.Goal().String(),
		"min_cost", g.MinCost())
	if !g.GoalReachable() {
		logger.Warn("goal is not reachable from start")
	}

	algs, err := harness.Select(g, cfg.algo)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reports, err := harness.Run(ctx, g, algs,
		harness.WithTrials(cfg.trials),
		harness.WithOnReport(func(r harness.Report) {
			logger.Info("search finished",
				"algorithm", r.Name,
				"found", r.Result.Found,
				"cost", r.Result.Cost,
				"pops", r.Result.Pops,
				"expanded", r.Result.Expanded,
				"trials", r.Trials,
				"mean", r.Mean())
		}),
	)
	if err != nil {
		return err
	}

	return harness.Print(stdout, reports)
}
