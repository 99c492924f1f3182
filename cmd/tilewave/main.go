//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"tilewave/internal/app"
	"tilewave/internal/core"
	"tilewave/internal/logging"
	_ "tilewave/internal/sims/wavegrid"
	"tilewave/pkg/wfc"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	logger, closer := logging.New(cfg.Logging)
	defer closer.Close()
	wfc.SetLogger(logger)

	sim, err := core.New(cfg.Sim, cfg.SimConfig())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg, logger)
	size := sim.Size()

	ebiten.SetWindowTitle("tilewave - " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("viewer stopped", "err", err)
		closer.Close()
		os.Exit(1)
	}
}
