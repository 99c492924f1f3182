package core

import (
	"image/color"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) add(d time.Duration) { c.t = c.t.Add(d) }

func newTestStep(tps int) (*FixedStep, *fakeClock) {
	clk := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(tps)
	fs.now = clk.now
	return fs, clk
}

func TestFixedStepFirstCallFires(t *testing.T) {
	fs, clk := newTestStep(10)
	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, should not step")
	}
	clk.add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half an interval should not step")
	}
	clk.add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full interval should step")
	}
}

func TestFixedStepDue(t *testing.T) {
	fs, clk := newTestStep(100)
	fs.Reset()
	if got := fs.Due(); got != 0 {
		t.Fatalf("Due() after reset = %d, want 0", got)
	}
	clk.add(35 * time.Millisecond)
	if got := fs.Due(); got != 3 {
		t.Fatalf("Due() = %d, want 3", got)
	}
	clk.add(5 * time.Millisecond)
	if got := fs.Due(); got != 1 {
		t.Fatalf("Due() = %d, want 1 (carried remainder)", got)
	}
	clk.add(10 * time.Second)
	if got := fs.Due(); got != maxCatchUp {
		t.Fatalf("Due() after stall = %d, want %d", got, maxCatchUp)
	}
	if got := fs.Due(); got != 0 {
		t.Fatalf("Due() after capped burst = %d, want 0", got)
	}
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("Interval() = %v, want 1/60s", fs.Interval())
	}
}

type stubSim struct{ seed int64 }

func (s *stubSim) Name() string         { return "stub" }
func (s *stubSim) Size() Size           { return Size{W: 2, H: 3} }
func (s *stubSim) Reset(seed int64)     { s.seed = seed }
func (s *stubSim) Step()                {}
func (s *stubSim) Colors() []color.RGBA { return make([]color.RGBA, 6) }
func (s *stubSim) Done() bool           { return true }

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) (Sim, error) { return &stubSim{}, nil })
	Register("nil-factory", nil)
	Register("stub", func(map[string]string) (Sim, error) { return &stubSim{}, nil })
	t.Cleanup(func() { delete(sims, "stub") })

	if _, ok := Sims()[""]; ok {
		t.Fatal("empty name must not register")
	}
	if _, ok := Sims()["nil-factory"]; ok {
		t.Fatal("nil factory must not register")
	}
	sim, err := New("stub", nil)
	if err != nil {
		t.Fatal(err)
	}
	if sim.Size().Cells() != 6 {
		t.Fatalf("Cells() = %d, want 6", sim.Size().Cells())
	}
	if _, err := New("missing", nil); err == nil {
		t.Fatal("unknown sim should fail")
	}
}

func TestParameterControlAdjust(t *testing.T) {
	ctrl := ParameterControl{Key: "k", Step: 2, Min: 1, Max: 6, HasMin: true, HasMax: true}
	tests := []struct {
		v, dir, want int
	}{
		{3, 1, 5},
		{5, 1, 6},
		{2, -1, 1},
		{4, -1, 2},
	}
	for _, tc := range tests {
		if got := ctrl.Adjust(tc.v, tc.dir); got != tc.want {
			t.Errorf("Adjust(%d, %d) = %d, want %d", tc.v, tc.dir, got, tc.want)
		}
	}
	if got := (ParameterControl{}).Adjust(10, -1); got != 9 {
		t.Errorf("unbounded Adjust = %d, want 9", got)
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Grid", Params: []Parameter{IntParam("w", "Width", 40)}},
		{Name: "Run", Params: []Parameter{Int64Param("seed", "Seed", -3), StringParam("pattern", "Pattern", "city")}},
	}}
	if p, ok := snap.Lookup("seed"); !ok || p.Value != "-3" || p.Type != ParamTypeInt {
		t.Fatalf("Lookup(seed) = %+v, %v", p, ok)
	}
	if p, ok := snap.Lookup("pattern"); !ok || p.Value != "city" {
		t.Fatalf("Lookup(pattern) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("nope"); ok {
		t.Fatal("missing key should not be found")
	}
}
