package wfc

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// StepResult describes what a single Step did.
type StepResult struct {
	// Selected is false when no eligible cell was left and the step was a no-op.
	Selected bool
	// X, Y locate the collapsed cell, or -1 when nothing was selected.
	X, Y int
	// Tile is the index the selected cell collapsed to.
	Tile int
	// Visited counts cells dequeued during propagation.
	Visited int
	// Changed counts neighbor reductions that shrank a domain.
	Changed int
	// Contradictions lists cells emptied during this step.
	Contradictions []Contradiction
}

// Stats summarizes the state of a grid.
type Stats struct {
	Steps        int
	Cells        int
	Collapsed    int
	Contradicted int
	Remaining    int
}

// Grid runs wave function collapse over a fixed width×height array of cells.
type Grid struct {
	width, height int

	tiles *TileSet
	table *AdjacencyTable
	cells []*Cell
	rng   Source

	steps          int
	contradictions []Contradiction
	queue          []int

	// OnContradiction, when set, is called for every emptied cell.
	OnContradiction func(Contradiction)
}

// NewGrid builds the adjacency table for ts and returns a grid whose cells
// all start with the full tile domain.
func NewGrid(width, height int, ts *TileSet, rng Source) (*Grid, error) {
	if ts == nil {
		return nil, fmt.Errorf("%w: nil tile set", ErrInvalidPattern)
	}
	return NewGridWithTable(width, height, ts, NewAdjacencyTable(ts), rng)
}

// NewGridFromPattern extracts size×size tiles from src and builds a grid.
func NewGridFromPattern(width, height int, src *PixelBuffer, size int, rng Source) (*Grid, error) {
	ts, err := NewTileSet(src, size)
	if err != nil {
		return nil, err
	}
	return NewGrid(width, height, ts, rng)
}

// NewGridWithTable reuses a prebuilt table, which lets several grids share
// the same read-only tile data.
func NewGridWithTable(width, height int, ts *TileSet, table *AdjacencyTable, rng Source) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if ts == nil || table == nil {
		return nil, fmt.Errorf("%w: missing tiles or adjacency table", ErrInvalidPattern)
	}
	if table.Len() != ts.Len() {
		return nil, fmt.Errorf("%w: table has %d tiles, set has %d", ErrInvalidPattern, table.Len(), ts.Len())
	}
	if rng == nil {
		return nil, errors.New("wfc: nil random source")
	}
	g := &Grid{width: width, height: height, tiles: ts, table: table}
	g.Reset(rng)
	return g, nil
}

// Reset restores every cell to the full domain and clears run history. A
// nil rng keeps the current source.
func (g *Grid) Reset(rng Source) {
	if rng != nil {
		g.rng = rng
	}
	total := g.width * g.height
	g.cells = make([]*Cell, total)
	var initial color.RGBA
	for i := range g.cells {
		c := NewCell(g.tiles.Len())
		if i == 0 {
			c.updateColor(g.tiles)
			initial = c.color
		}
		c.color = initial
		g.cells[i] = c
	}
	g.steps = 0
	g.contradictions = nil
	g.queue = make([]int, 0, total)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Tiles returns the tile set the grid draws from.
func (g *Grid) Tiles() *TileSet { return g.tiles }

// Table returns the adjacency table.
func (g *Grid) Table() *AdjacencyTable { return g.table }

// Steps returns how many selecting steps have run since the last reset.
func (g *Grid) Steps() int { return g.steps }

// Cell returns the cell at (x, y), or nil when out of bounds.
func (g *Grid) Cell(x, y int) *Cell {
	if !g.inBounds(x, y) {
		return nil
	}
	return g.cells[y*g.width+x]
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Step selects the lowest-entropy cell, collapses it and propagates the
// consequences. Once no uncollapsed cell with more than one option is left
// it becomes a no-op.
func (g *Grid) Step() StepResult {
	idx := g.selectCell()
	if idx < 0 {
		return StepResult{X: -1, Y: -1, Tile: -1}
	}
	x, y := idx%g.width, idx/g.width
	cell := g.cells[idx]
	cell.Collapse(g.rng)
	cell.updateColor(g.tiles)
	g.steps++

	res := StepResult{Selected: true, X: x, Y: y, Tile: cell.domain[0]}
	g.propagate(idx, &res)
	Logger().Debug("step",
		"step", g.steps, "x", x, "y", y, "tile", res.Tile,
		"visited", res.Visited, "changed", res.Changed, "contradictions", len(res.Contradictions))
	return res
}

// Run steps until the grid is done or limit selecting steps have run. A
// non-positive limit means no limit. It returns the number of steps taken.
func (g *Grid) Run(limit int) int {
	taken := 0
	for limit <= 0 || taken < limit {
		if !g.Step().Selected {
			break
		}
		taken++
	}
	return taken
}

// selectCell returns the first cell, in row-major order, holding the
// smallest domain above one, or -1.
func (g *Grid) selectCell() int {
	best, bestLen := -1, math.MaxInt
	for i, c := range g.cells {
		if c.collapsed {
			continue
		}
		if n := len(c.domain); n > 1 && n < bestLen {
			best, bestLen = i, n
		}
	}
	return best
}

// propagate runs a breadth-first pass from start, reducing every reachable
// uncollapsed neighbor. Each cell is dequeued at most once per pass.
func (g *Grid) propagate(start int, res *StepResult) {
	for _, c := range g.cells {
		c.visited = false
	}
	queue := append(g.queue[:0], start)
	for head := 0; head < len(queue); head++ {
		i := queue[head]
		cur := g.cells[i]
		if cur.visited {
			continue
		}
		cur.visited = true
		res.Visited++

		x, y := i%g.width, i/g.width
		for _, d := range Directions {
			dx, dy := d.Offset()
			nx, ny := x+dx, y+dy
			if !g.inBounds(nx, ny) {
				continue
			}
			ni := ny*g.width + nx
			n := g.cells[ni]
			if n.collapsed || n.visited {
				continue
			}
			// cur lies on the opposite side of n.
			if !n.ReduceAgainst(cur.domain, d.Opposite(), g.table) {
				continue
			}
			n.updateColor(g.tiles)
			res.Changed++
			if n.Empty() {
				g.contradict(nx, ny, res)
				continue
			}
			queue = append(queue, ni)
		}
	}
	g.queue = queue[:0]
}

func (g *Grid) contradict(x, y int, res *StepResult) {
	c := Contradiction{X: x, Y: y}
	g.contradictions = append(g.contradictions, c)
	res.Contradictions = append(res.Contradictions, c)
	Logger().Warn("contradiction: no options left", "x", x, "y", y, "step", g.steps)
	if g.OnContradiction != nil {
		g.OnContradiction(c)
	}
}

// Done reports whether Step has nothing left to select.
func (g *Grid) Done() bool { return g.selectCell() < 0 }

// Complete reports whether every cell holds exactly one tile.
func (g *Grid) Complete() bool {
	for _, c := range g.cells {
		if !c.collapsed {
			return false
		}
	}
	return true
}

// Stuck reports whether any cell has reached the contradiction state.
func (g *Grid) Stuck() bool {
	for _, c := range g.cells {
		if c.Empty() {
			return true
		}
	}
	return false
}

// Contradictions returns every contradiction reported since the last reset.
func (g *Grid) Contradictions() []Contradiction {
	return append([]Contradiction(nil), g.contradictions...)
}

// Colors returns the derived color of every cell in row-major order.
func (g *Grid) Colors() []color.RGBA {
	return g.AppendColors(make([]color.RGBA, 0, len(g.cells)))
}

// AppendColors appends every cell color to dst and returns it.
func (g *Grid) AppendColors(dst []color.RGBA) []color.RGBA {
	for _, c := range g.cells {
		dst = append(dst, c.color)
	}
	return dst
}

// Assignments returns the collapsed tile index of every cell, or -1 for
// cells that are not collapsed.
func (g *Grid) Assignments() []int {
	out := make([]int, len(g.cells))
	for i, c := range g.cells {
		out[i], _ = c.Tile()
	}
	return out
}

// DomainSizes returns the domain size of every cell in row-major order.
func (g *Grid) DomainSizes() []int {
	out := make([]int, len(g.cells))
	for i, c := range g.cells {
		out[i] = len(c.domain)
	}
	return out
}

// Stats counts collapsed, contradicted and remaining cells.
func (g *Grid) Stats() Stats {
	s := Stats{Steps: g.steps, Cells: len(g.cells)}
	for _, c := range g.cells {
		switch {
		case c.collapsed:
			s.Collapsed++
		case c.Empty():
			s.Contradicted++
		default:
			s.Remaining++
		}
	}
	return s
}
