package main

import (
	"bytes"
	"flag"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tilewave/internal/app"
)

func TestRunWritesImage(t *testing.T) {
	cfg := app.NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := cfg.Parse(fs, []string{"-w", "8", "-h", "6", "-scale", "2", "-pattern", "checker"}); err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	out := filepath.Join(t.TempDir(), "grid.png")

	if err := run(cfg, out, 0, logger); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 12 {
		t.Fatalf("image bounds = %v, want 16x12", b)
	}
	if !strings.Contains(logs.String(), "run finished") || !strings.Contains(logs.String(), "remaining=0") {
		t.Fatalf("missing summary log: %q", logs.String())
	}
}

func TestRunUnknownPattern(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Pattern = "does-not-exist"
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	if err := run(cfg, filepath.Join(t.TempDir(), "x.png"), 0, logger); err == nil {
		t.Fatal("unknown pattern should fail")
	}
}
