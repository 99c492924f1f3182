package wfc

import (
	"fmt"
	"image/color"
)

// DefaultTileSize is the footprint used by the reference generator.
const DefaultTileSize = 3

// TileSet holds every size×size footprint sampled from a source pattern.
// Tiles are identified by their index, which follows extraction order.
type TileSet struct {
	size  int
	tiles []*PixelBuffer
}

// NewTileSet extracts one tile per source pixel in row-major order. Tile k
// starts at (k mod W, k div W) and samples with toroidal wraparound, so
// footprints larger than the source are still well defined. Pixel-identical
// tiles are kept as distinct entries.
func NewTileSet(src *PixelBuffer, size int) (*TileSet, error) {
	if src == nil || src.W <= 0 || src.H <= 0 || len(src.Pix) < src.W*src.H {
		return nil, fmt.Errorf("%w: empty source pattern", ErrInvalidPattern)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: tile size %d", ErrInvalidPattern, size)
	}
	ts := &TileSet{size: size, tiles: make([]*PixelBuffer, 0, src.W*src.H)}
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			tile := NewPixelBuffer(size, size)
			for sy := 0; sy < size; sy++ {
				for sx := 0; sx < size; sx++ {
					tile.Pix[sy*size+sx] = src.At(x+sx, y+sy)
				}
			}
			ts.tiles = append(ts.tiles, tile)
		}
	}
	return ts, nil
}

// NewTileSetFromTiles builds a set from prepared square tiles of equal size.
func NewTileSetFromTiles(tiles []*PixelBuffer) (*TileSet, error) {
	if len(tiles) == 0 {
		return nil, fmt.Errorf("%w: no tiles", ErrInvalidPattern)
	}
	size := tiles[0].W
	for i, t := range tiles {
		if t == nil || t.W != size || t.H != size || len(t.Pix) != size*size {
			return nil, fmt.Errorf("%w: tile %d is not %dx%d", ErrInvalidPattern, i, size, size)
		}
	}
	return &TileSet{size: size, tiles: append([]*PixelBuffer(nil), tiles...)}, nil
}

// Len returns the number of tiles.
func (ts *TileSet) Len() int { return len(ts.tiles) }

// Size returns the edge length of every tile.
func (ts *TileSet) Size() int { return ts.size }

// Overlap returns the width of the edge band compared between neighbors.
func (ts *TileSet) Overlap() int { return ts.size - 1 }

// Tile returns the tile with index i. Callers must not modify it.
func (ts *TileSet) Tile(i int) *PixelBuffer { return ts.tiles[i] }

// Representative returns the center pixel of tile i.
func (ts *TileSet) Representative(i int) color.RGBA { return ts.tiles[i].Center() }
