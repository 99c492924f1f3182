package wavegrid

import (
	"fmt"
	"image/color"

	"tilewave/internal/core"
	"tilewave/internal/pattern"
	"tilewave/pkg/wfc"

	pkgcore "tilewave/pkg/core"
)

// Name is the registry key of the wave grid sim.
const Name = "wfc"

// Sim drives a wfc.Grid through the core.Sim contract.
type Sim struct {
	cfg Config

	tiles *wfc.TileSet
	table *wfc.AdjacencyTable
	grid  *wfc.Grid

	colors []color.RGBA
}

// New resolves the configured pattern, builds the tile set and adjacency
// table once and seeds a grid.
func New(cfg Config) (*Sim, error) {
	src, err := pattern.Resolve(cfg.Pattern)
	if err != nil {
		return nil, err
	}
	return NewFromPattern(cfg, src)
}

// NewFromPattern builds a Sim from an already decoded source pattern.
func NewFromPattern(cfg Config, src *wfc.PixelBuffer) (*Sim, error) {
	cfg.StepsPerTick = clampSteps(cfg.StepsPerTick)
	tiles, err := wfc.NewTileSet(src, cfg.TileSize)
	if err != nil {
		return nil, fmt.Errorf("wavegrid: pattern %q: %w", cfg.Pattern, err)
	}
	table := wfc.NewAdjacencyTable(tiles)
	grid, err := wfc.NewGridWithTable(cfg.Width, cfg.Height, tiles, table, pkgcore.NewRNG(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("wavegrid: %w", err)
	}
	wfc.Logger().Info("wave grid ready",
		"w", cfg.Width, "h", cfg.Height, "pattern", cfg.Pattern,
		"tile_size", cfg.TileSize, "tiles", tiles.Len(), "adjacencies", table.Count(), "seed", cfg.Seed)
	return &Sim{cfg: cfg, tiles: tiles, table: table, grid: grid}, nil
}

func init() {
	core.Register(Name, func(cfg map[string]string) (core.Sim, error) {
		s, err := New(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}

// Name implements core.Sim.
func (s *Sim) Name() string { return Name }

// Size implements core.Sim.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Config returns the active configuration.
func (s *Sim) Config() Config { return s.cfg }

// Grid exposes the underlying grid.
func (s *Sim) Grid() *wfc.Grid { return s.grid }

// Reset restarts the run from a full superposition with a fresh RNG. The
// tile set and adjacency table are reused.
func (s *Sim) Reset(seed int64) {
	s.cfg.Seed = seed
	s.grid.Reset(pkgcore.NewRNG(seed))
	wfc.Logger().Debug("wave grid reset", "seed", seed)
}

// Step runs up to StepsPerTick grid steps, stopping early once the grid is
// done.
func (s *Sim) Step() {
	for i := 0; i < s.cfg.StepsPerTick; i++ {
		if !s.grid.Step().Selected {
			return
		}
	}
}

// Colors implements core.Sim. The returned slice is reused between calls.
func (s *Sim) Colors() []color.RGBA {
	s.colors = s.grid.AppendColors(s.colors[:0])
	return s.colors
}

// Done implements core.Sim.
func (s *Sim) Done() bool { return s.grid.Done() }

// Stats returns the grid statistics.
func (s *Sim) Stats() wfc.Stats { return s.grid.Stats() }

// TileCount is the size of a full domain.
func (s *Sim) TileCount() int { return s.tiles.Len() }

// DomainSizes returns the number of remaining options per cell.
func (s *Sim) DomainSizes() []int { return s.grid.DomainSizes() }

// ContradictionCells returns the row-major indices of every contradicted cell.
func (s *Sim) ContradictionCells() []int {
	cs := s.grid.Contradictions()
	out := make([]int, len(cs))
	for i, c := range cs {
		out[i] = c.Y*s.cfg.Width + c.X
	}
	return out
}
