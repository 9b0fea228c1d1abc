// Command escape searches for a walking path that escapes a closed boundary
// from every interior start point and heading, and reports the worst case.
//
//	escape -config square.yaml -seed 42 -out escape.png -v
//
// Without -config it solves the built-in L-shaped room.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/escapepath/config"
	"github.com/katalvlaran/escapepath/escape"
	"github.com/katalvlaran/escapepath/geom"
	"github.com/katalvlaran/escapepath/render"
	"github.com/katalvlaran/escapepath/runner"
)

func main() {
	configPath := flag.String("config", "", "JSON or YAML file with boundary and solver settings")
	seed := flag.Int64("seed", 0, "RNG seed (overrides the config file when set)")
	workers := flag.Int("workers", 0, "parallel evaluators (overrides the config file when > 0)")
	out := flag.String("out", "", "write a PNG of the worst-case escape to this path")
	verbose := flag.Bool("v", false, "log every generation")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	escape.SetLogger(logger)
	gg.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})

	if err := run(ctx, logger, *configPath, *seed, seedSet, *workers, *out); err != nil {
		logger.Error("escape failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, configPath string, seed int64, seedSet bool, workers int, out string) error {
	b, opts, policy, err := load(configPath)
	if err != nil {
		return err
	}
	if seedSet {
		opts.Seed = seed
	}
	if workers > 0 {
		opts.Workers = workers
	}

	s, err := escape.New(b, opts)
	if err != nil {
		return err
	}
	if err = s.Prepare(); err != nil {
		return err
	}

	res, err := runner.Run(ctx, s, policy, func(g escape.Generation) {
		logger.Debug("generation", "index", g.Index, "distance", g.Distance, "escaped", g.Escaped)
	})
	if err != nil && res.Generations == 0 {
		return err
	}
	if err != nil {
		logger.Warn("run interrupted", "err", err)
	}

	best := res.Best
	fmt.Printf("generations: %d (%s)\n", res.Generations, res.Reason)
	fmt.Printf("worst-case distance: %.6f (escaped: %t)\n", best.Distance, best.Escaped)
	fmt.Printf("worst-case start: (%.4f, %.4f) heading %.4f rad\n", best.Start.X, best.Start.Y, best.Heading)
	fmt.Printf("path: %v\n", []float64(best.Best))

	if out == "" {
		return nil
	}
	ropts := render.DefaultOptions()
	ropts.Samples = s.Samples()
	if err = render.SavePNG(out, s.Boundary(), best.Trace, ropts); err != nil {
		return err
	}
	logger.Info("snapshot written", "path", out)

	return nil
}

// load returns the boundary, solver options and policy from configPath, or
// the built-in demo room when configPath is empty.
func load(configPath string) (geom.Boundary, escape.Options, runner.Policy, error) {
	if configPath == "" {
		return demoRoom(), escape.DefaultOptions(), runner.DefaultPolicy(), nil
	}
	f, err := config.Load(configPath)
	if err != nil {
		return nil, escape.Options{}, runner.Policy{}, err
	}
	b, err := f.BoundaryValue()
	if err != nil {
		return nil, escape.Options{}, runner.Policy{}, err
	}

	return b, f.Options(), f.RunPolicy(), nil
}

func demoRoom() geom.Boundary {
	return geom.NewBoundary(
		geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 50),
		geom.Pt(50, 50), geom.Pt(50, 100), geom.Pt(0, 100),
	)
}
