package wfc

import (
	"image/color"
	"testing"
)

var (
	cA = color.RGBA{R: 10, A: 255}
	cB = color.RGBA{R: 20, A: 255}
	cC = color.RGBA{R: 30, A: 255}
	cD = color.RGBA{R: 40, A: 255}
	cE = color.RGBA{R: 50, A: 255}
	cF = color.RGBA{R: 60, A: 255}
	cG = color.RGBA{R: 70, A: 255}
	cH = color.RGBA{R: 80, A: 255}
	cI = color.RGBA{R: 90, A: 255}
	cJ = color.RGBA{R: 100, A: 255}
)

// tile builds a square buffer from rows of samples.
func tile(rows ...[]color.RGBA) *PixelBuffer {
	p := NewPixelBuffer(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			p.Set(x, y, c)
		}
	}
	return p
}

func row(cs ...color.RGBA) []color.RGBA { return cs }

// scriptedSource returns the queued picks in order, then zeros.
type scriptedSource struct {
	picks []int
	calls int
}

func (s *scriptedSource) IntN(n int) int {
	p := 0
	if s.calls < len(s.picks) {
		p = s.picks[s.calls]
	}
	s.calls++
	return p % n
}

// eastOnlyTiles returns three 2x2 tiles where the only legal relation is
// tile 1 on the east side of tile 0 (equivalently 0 west of 1).
func eastOnlyTiles(t *testing.T) *TileSet {
	t.Helper()
	ts, err := NewTileSetFromTiles([]*PixelBuffer{
		tile(row(cA, cB), row(cC, cD)),
		tile(row(cB, cE), row(cD, cF)),
		tile(row(cG, cH), row(cI, cJ)),
	})
	if err != nil {
		t.Fatal(err)
	}
	return ts
}

// incompatibleTiles returns two 2x2 tiles that fit nowhere, not even with
// themselves.
func incompatibleTiles(t *testing.T) *TileSet {
	t.Helper()
	ts, err := NewTileSetFromTiles([]*PixelBuffer{
		tile(row(cA, cB), row(cC, cD)),
		tile(row(cE, cF), row(cG, cH)),
	})
	if err != nil {
		t.Fatal(err)
	}
	return ts
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
