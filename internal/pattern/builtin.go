package pattern

import (
	"image/color"
	"sort"

	"tilewave/pkg/wfc"
)

var (
	white  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	maroon = color.RGBA{R: 190, G: 33, B: 55, A: 255}
	gold   = color.RGBA{R: 184, G: 134, B: 11, A: 255}
	teal   = color.RGBA{R: 0, G: 128, B: 128, A: 255}
)

var builtins = map[string]func() *wfc.PixelBuffer{
	"city":    City,
	"checker": Checker,
	"stripes": Stripes,
}

// Names returns the built-in pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a fresh copy of the named built-in pattern.
func Lookup(name string) (*wfc.PixelBuffer, bool) {
	f, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// City returns a 9x9 block: a white border, a black ring and a maroon core.
func City() *wfc.PixelBuffer {
	p := wfc.NewPixelBuffer(9, 9)
	p.Fill(black)
	for i := 0; i < 9; i++ {
		p.Set(i, 0, white)
		p.Set(i, 8, white)
		p.Set(0, i, white)
		p.Set(8, i, white)
	}
	for y := 2; y < 7; y++ {
		for x := 2; x < 7; x++ {
			p.Set(x, y, maroon)
		}
	}
	return p
}

// Checker returns a 4x4 two-color checkerboard of 2x2 squares.
func Checker() *wfc.PixelBuffer {
	p := wfc.NewPixelBuffer(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if (x/2+y/2)%2 == 0 {
				p.Set(x, y, gold)
			} else {
				p.Set(x, y, black)
			}
		}
	}
	return p
}

// Stripes returns a 6x6 pattern of diagonal bands.
func Stripes() *wfc.PixelBuffer {
	p := wfc.NewPixelBuffer(6, 6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			switch (x + y) % 3 {
			case 0:
				p.Set(x, y, teal)
			case 1:
				p.Set(x, y, white)
			default:
				p.Set(x, y, black)
			}
		}
	}
	return p
}
