//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"snorkel/internal/app"
	"snorkel/internal/editor"
	"snorkel/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.LoadFile(flag.CommandLine); err != nil {
		fmt.Fprintln(os.Stderr, "snorkel:", err)
		os.Exit(1)
	}
	log, err := app.NewLogger(cfg.LogLevel, cfg.LogFormat, cfg.Sim, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "snorkel:", err)
		os.Exit(2)
	}

	grid, err := cfg.NewGrid()
	if err != nil {
		log.Error("startup failed", "error", err)
		os.Exit(1)
	}
	session := editor.New(grid)
	session.SetLogger(log)

	size := grid.Size()
	log.Info("starting", "rows", size.H, "cols", size.W, "tps", cfg.TPS, "seed", cfg.Seed)

	game := app.New(session, cfg, log)

	ebiten.SetWindowTitle("snorkel: " + grid.Name())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(size.W*app.CellW*cfg.Scale, (size.H*app.CellH+ui.Height)*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game loop failed", "error", err)
		os.Exit(1)
	}
}
