// Package soak runs many independent seeded sessions side by side and
// summarises how their populations evolve.
package soak

import (
	"context"
	"flag"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"lifedit/internal/core"
	"lifedit/internal/life"
	"lifedit/internal/session"
)

// Config describes a batch of runs.
type Config struct {
	Rows, Cols  int
	Generations int
	Runs        int
	Workers     int
	Seed        int64
	Logger      *log.Logger
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Rows: 50, Cols: 50, Generations: 2000, Runs: 32, Workers: runtime.NumCPU(), Seed: 1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Generations, "gens", c.Generations, "generation limit per run")
	fs.IntVar(&c.Runs, "runs", c.Runs, "number of independent runs")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel runs")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed of the first run; run i uses seed+i")
}

// Result summarises one run.
type Result struct {
	Seed        int64
	Generations int
	Initial     int
	Final       int
	Min, Max    int
	// Period is 1 for a still life, 2 for a period-2 oscillator and 0 if
	// the run did not settle into either.
	Period    int
	SettledAt int
}

// Run executes cfg.Runs sessions, seeds Seed, Seed+1, ..., with at most
// cfg.Workers running concurrently. Results are ordered by seed.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	if cfg.Runs <= 0 || cfg.Generations < 0 || cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, fmt.Errorf("soak: runs %d, generations %d, grid %dx%d", cfg.Runs, cfg.Generations, cfg.Rows, cfg.Cols)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	results := make([]Result, cfg.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < cfg.Runs; i++ {
		g.Go(func() error {
			res, err := runOne(ctx, cfg, cfg.Seed+int64(i))
			if err != nil {
				return err
			}
			logger.Debug("run finished", "seed", res.Seed, "final", res.Final, "period", res.Period)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, cfg Config, seed int64) (Result, error) {
	e := life.NewWithRNG(cfg.Rows, cfg.Cols, core.NewRNG(seed))
	e.Randomize()

	res := Result{Seed: seed, Initial: e.Population()}
	res.Min, res.Max, res.Final = res.Initial, res.Initial, res.Initial
	s := session.New(e, session.RenderFunc(func(live []core.Cell, _ int) {
		n := len(live)
		res.Final = n
		res.Min = min(res.Min, n)
		res.Max = max(res.Max, n)
	}), session.Config{})

	prev, prev2 := e.Clone(), (*life.Engine)(nil)
	for gen := 1; gen <= cfg.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		s.StepOnce()
		switch {
		case e.Equal(prev):
			res.Period = 1
		case e.Equal(prev2):
			res.Period = 2
		}
		if res.Period != 0 {
			res.SettledAt = gen
			break
		}
		prev, prev2 = e.Clone(), prev
	}
	res.Generations = s.Generation()
	return res, nil
}
