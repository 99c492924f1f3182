package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"tilewave/internal/sims/wavegrid"
)

func TestNewConfigMatchesSimDefaults(t *testing.T) {
	c := NewConfig()
	fromMap := wavegrid.FromMap(c.SimConfig())
	if fromMap != wavegrid.DefaultConfig() {
		t.Fatalf("SimConfig() round trip = %+v, want defaults", fromMap)
	}
	if c.Sim != "wfc" || c.Scale != 10 {
		t.Fatalf("NewConfig() = %+v", c)
	}
}

func TestParseFlags(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	c := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	if err := c.Parse(fs, []string{"-w", "12", "-pattern", "stripes", "-seed", "9", "-log-level", "DEBUG"}); err != nil {
		t.Fatal(err)
	}
	if c.Width != 12 || c.Pattern != "stripes" || c.Seed != 9 || c.Logging.Level != "DEBUG" {
		t.Fatalf("parsed config = %+v", c)
	}
	m := c.SimConfig()
	if m["w"] != "12" || m["pattern"] != "stripes" || m["seed"] != "9" || m["h"] != "40" {
		t.Fatalf("SimConfig() = %v", m)
	}
}

func TestFileThenFlags(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "tilewave.yaml")
	yamlContent := `width: 30
height: 20
pattern: checker
seed: 5
logging:
  level: WARN
  console_format: json
`
	if err := os.WriteFile(path, []byte(yamlContent), 0o644); err != nil {
		t.Fatal(err)
	}
	c := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	if err := c.Parse(fs, []string{"-config", path, "-seed", "77"}); err != nil {
		t.Fatal(err)
	}
	if c.Width != 30 || c.Height != 20 || c.Pattern != "checker" {
		t.Fatalf("file values not applied: %+v", c)
	}
	if c.Seed != 77 {
		t.Fatalf("flag should win over file, seed = %d", c.Seed)
	}
	if c.TileSize != 3 || c.Scale != 10 {
		t.Fatalf("fields absent from the file should keep defaults: %+v", c)
	}
	if c.Logging.Level != "WARN" || c.Logging.ConsoleFormat != "json" || !c.Logging.ConsoleEnabled {
		t.Fatalf("logging section = %+v", c.Logging)
	}
}

func TestLoadFileErrors(t *testing.T) {
	c := NewConfig()
	if err := c.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file should fail")
	}
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("width: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := c.LoadFile(bad); err == nil {
		t.Fatal("malformed YAML should fail")
	}
}

func TestEnvOverridesLogging(t *testing.T) {
	t.Setenv("LOG_LEVEL", "ERROR")
	c := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	if err := c.Parse(fs, nil); err != nil {
		t.Fatal(err)
	}
	if c.Logging.Level != "ERROR" {
		t.Fatalf("Logging.Level = %q, want ERROR", c.Logging.Level)
	}
}
