package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"tilewave/internal/app"
	"tilewave/internal/logging"
	"tilewave/internal/render"
	"tilewave/internal/sims/wavegrid"
	"tilewave/pkg/wfc"
)

func main() {
	cfg := app.NewConfig()
	out := flag.String("out", "tilewave.png", "output PNG path")
	maxSteps := flag.Int("max-steps", 0, "stop after this many steps (0 = until done)")
	cfg.Bind(flag.CommandLine)
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, closer := logging.New(cfg.Logging)
	wfc.SetLogger(logger)
	err := run(cfg, *out, *maxSteps, logger)
	closer.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *app.Config, out string, maxSteps int, logger *slog.Logger) error {
	sim, err := wavegrid.New(wavegrid.FromMap(cfg.SimConfig()))
	if err != nil {
		return err
	}
	grid := sim.Grid()
	grid.OnContradiction = func(c wfc.Contradiction) {
		logger.Warn("contradiction", "x", c.X, "y", c.Y, "step", grid.Steps())
	}

	start := time.Now()
	steps := grid.Run(maxSteps)
	st := grid.Stats()
	logger.Info("run finished",
		"steps", steps, "collapsed", st.Collapsed, "contradicted", st.Contradicted,
		"remaining", st.Remaining, "complete", grid.Complete(), "elapsed", time.Since(start))

	size := sim.Size()
	if err := render.SavePNG(out, sim.Colors(), size.W, size.H, cfg.Scale); err != nil {
		return err
	}
	logger.Info("wrote image", "path", out, "w", size.W*cfg.Scale, "h", size.H*cfg.Scale)
	return nil
}
