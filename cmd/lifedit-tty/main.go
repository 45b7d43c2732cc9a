package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"lifedit/internal/app"
	"lifedit/internal/tty"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logFile := flag.String("log-file", "", "write logs here instead of discarding them while the screen is active")
	flag.Parse()

	logger := cfg.NewLogger(os.Stderr)
	if err := cfg.Validate(); err != nil {
		logger.Fatal("bad configuration", "err", err)
	}
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logger.Fatal("open log file", "err", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	} else {
		// The terminal belongs to tcell from here on.
		logger.SetLevel(log.FatalLevel)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("create screen", "err", err)
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("init screen", "err", err)
	}

	frontend, err := tty.New(screen, cfg, logger)
	if err != nil {
		screen.Fini()
		logger.Fatal("start", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = frontend.Run(ctx)
	screen.Fini()
	if err != nil {
		logger.Fatal("run", "err", err)
	}
}
