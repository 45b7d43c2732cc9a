package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"

	"lifedit/internal/soak"
)

func main() {
	cfg := soak.NewConfig()
	cfg.Bind(flag.CommandLine)
	verbose := flag.Bool("v", false, "log every finished run")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "soak", ReportTimestamp: true})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	cfg.Logger = logger
	results, err := soak.Run(ctx, *cfg)
	if err != nil {
		logger.Fatal("soak failed", "err", err)
	}

	settled := 0
	fmt.Printf("%8s %6s %7s %6s %6s %6s %7s\n", "seed", "gens", "initial", "final", "min", "max", "period")
	for _, r := range results {
		period := "-"
		if r.Period != 0 {
			settled++
			period = fmt.Sprintf("%d@%d", r.Period, r.SettledAt)
		}
		fmt.Printf("%8d %6d %7d %6d %6d %6d %7s\n", r.Seed, r.Generations, r.Initial, r.Final, r.Min, r.Max, period)
	}
	logger.Info("done", "runs", len(results), "settled", settled, "elapsed", time.Since(start).Round(time.Millisecond))
}
