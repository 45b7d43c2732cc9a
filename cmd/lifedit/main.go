//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"lifedit/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := cfg.NewLogger(os.Stderr)
	if err := cfg.Validate(); err != nil {
		logger.Fatal("bad configuration", "err", err)
	}

	game, err := app.New(cfg, logger)
	if err != nil {
		logger.Fatal("start", "err", err)
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Conway's Game of Life - click cells to toggle them")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop", "err", err)
	}
}
