package wfc

import "image/color"

// Source supplies uniform random integers in [0, n). *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

var (
	// ContradictionColor marks cells whose domain is empty.
	ContradictionColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	// PendingColor is shown before a cell's color has been derived.
	PendingColor = color.RGBA{R: 255, G: 218, B: 185, A: 255}
)

// Cell tracks the tiles still possible at one grid position.
type Cell struct {
	domain    []int
	collapsed bool
	visited   bool
	color     color.RGBA
}

// NewCell returns a cell whose domain is every index in [0, tileCount).
func NewCell(tileCount int) *Cell {
	c := &Cell{domain: make([]int, tileCount), color: PendingColor}
	for i := range c.domain {
		c.domain[i] = i
	}
	c.collapsed = tileCount == 1
	return c
}

// Len returns the domain size.
func (c *Cell) Len() int { return len(c.domain) }

// Collapsed reports whether exactly one tile remains.
func (c *Cell) Collapsed() bool { return c.collapsed }

// Empty reports whether the cell is in the contradiction state.
func (c *Cell) Empty() bool { return len(c.domain) == 0 }

// Color returns the derived display color.
func (c *Cell) Color() color.RGBA { return c.color }

// Domain returns a copy of the surviving tile indices.
func (c *Cell) Domain() []int { return append([]int(nil), c.domain...) }

// Tile returns the assigned tile index once the cell has collapsed.
func (c *Cell) Tile() (int, bool) {
	if !c.collapsed {
		return -1, false
	}
	return c.domain[0], true
}

// Collapse picks one surviving tile uniformly at random and discards the
// rest. It is a no-op on collapsed or empty cells and reports whether the
// domain changed.
func (c *Cell) Collapse(rng Source) bool {
	if c.collapsed || len(c.domain) == 0 {
		return false
	}
	pick := c.domain[rng.IntN(len(c.domain))]
	c.domain = c.domain[:1]
	c.domain[0] = pick
	c.collapsed = true
	return true
}

// ReduceAgainst keeps only the tiles x for which some y in neighbor is legal
// on side d of x, where d is the side of this cell the neighbor occupies.
// Collapsed cells are left untouched. It reports whether the domain shrank.
func (c *Cell) ReduceAgainst(neighbor []int, d Direction, table *AdjacencyTable) bool {
	if c.collapsed {
		return false
	}
	before := len(c.domain)
	kept := c.domain[:0]
	for _, x := range c.domain {
		for _, y := range neighbor {
			if table.Compatible(x, d, y) {
				kept = append(kept, x)
				break
			}
		}
	}
	c.domain = kept
	if len(c.domain) == 1 {
		c.collapsed = true
	}
	return len(c.domain) != before
}

// updateColor averages the center pixels of every surviving tile.
func (c *Cell) updateColor(ts *TileSet) {
	n := uint32(len(c.domain))
	if n == 0 {
		c.color = ContradictionColor
		return
	}
	var r, g, b uint32
	for _, i := range c.domain {
		px := ts.Representative(i)
		r += uint32(px.R)
		g += uint32(px.G)
		b += uint32(px.B)
	}
	c.color = color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: 255}
}
