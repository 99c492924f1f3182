package wfc

import "fmt"

// AdjacencyTable records, for every ordered tile pair and direction, whether
// the second tile may sit on that side of the first. It is read-only once
// built and may be shared between grids.
type AdjacencyTable struct {
	n       int
	allowed []bool
}

// NewAdjacencyTable runs the edge-overlap test for every (a, d, b) triple
// using the tile set's overlap width.
func NewAdjacencyTable(ts *TileSet) *AdjacencyTable {
	n := ts.Len()
	t := &AdjacencyTable{n: n, allowed: make([]bool, n*n*len(Directions))}
	overlap := ts.Overlap()
	for a := 0; a < n; a++ {
		for _, d := range Directions {
			for b := 0; b < n; b++ {
				ok, _ := Fits(ts.Tile(a), ts.Tile(b), d, overlap)
				t.allowed[t.index(a, d, b)] = ok
			}
		}
	}
	Logger().Debug("adjacency table built", "tiles", n, "overlap", overlap, "allowed", t.Count())
	return t
}

func (t *AdjacencyTable) index(a int, d Direction, b int) int {
	return (a*len(Directions)+int(d))*t.n + b
}

// Len returns the number of tiles the table was built for.
func (t *AdjacencyTable) Len() int { return t.n }

// Compatible reports whether tile b may be placed on the d side of tile a.
// Unknown tiles are never compatible; an invalid direction is logged and
// treated as incompatible.
func (t *AdjacencyTable) Compatible(a int, d Direction, b int) bool {
	if !d.Valid() {
		Logger().Warn("adjacency lookup with invalid direction", "direction", int(d), "a", a, "b", b)
		return false
	}
	if a < 0 || b < 0 || a >= t.n || b >= t.n {
		return false
	}
	return t.allowed[t.index(a, d, b)]
}

// Count returns the number of legal (a, d, b) triples.
func (t *AdjacencyTable) Count() int {
	count := 0
	for _, ok := range t.allowed {
		if ok {
			count++
		}
	}
	return count
}

// Fits runs the edge-overlap test: the overlap-wide band of a on its d side
// must equal, pixel for pixel, the band of b on the opposite side. For
// North that means the top rows of a match the bottom rows of b.
func Fits(a, b *PixelBuffer, d Direction, overlap int) (bool, error) {
	if !d.Valid() {
		err := fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
		Logger().Warn("fits called with invalid direction", "error", err)
		return false, err
	}
	if a.W != b.W || a.H != b.H {
		return false, nil
	}
	if overlap <= 0 {
		return true, nil
	}
	w, h := a.W, a.H
	switch d {
	case North, South:
		if overlap > h {
			return false, nil
		}
		for y := 0; y < overlap; y++ {
			ay, by := y, h-overlap+y
			if d == South {
				ay, by = h-overlap+y, y
			}
			for x := 0; x < w; x++ {
				if a.Pix[ay*w+x] != b.Pix[by*w+x] {
					return false, nil
				}
			}
		}
	case East, West:
		if overlap > w {
			return false, nil
		}
		for y := 0; y < h; y++ {
			for x := 0; x < overlap; x++ {
				ax, bx := x, w-overlap+x
				if d == East {
					ax, bx = w-overlap+x, x
				}
				if a.Pix[y*w+ax] != b.Pix[y*w+bx] {
					return false, nil
				}
			}
		}
	}
	return true, nil
}
