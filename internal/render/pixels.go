package render

import (
	"image/color"
	"math"
)

// FillRGBA copies cell colors into an RGBA byte buffer. Cells beyond the
// buffer are ignored.
func FillRGBA(buf []byte, colors []color.RGBA) {
	for i, c := range colors {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// FillEntropy shades each cell by how many options it still has out of
// full. Collapsed and contradicted cells are left transparent.
func FillEntropy(buf []byte, sizes []int, full int, tint color.RGBA) {
	const maxAlpha = 180.0
	for i, n := range sizes {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		if n <= 1 || full <= 1 {
			clearPixel(buf, base)
			continue
		}
		t := math.Log(float64(n)) / math.Log(float64(full))
		if t > 1 {
			t = 1
		}
		buf[base+0] = tint.R
		buf[base+1] = tint.G
		buf[base+2] = tint.B
		buf[base+3] = uint8(math.Round(maxAlpha * t))
	}
}

// FillMask paints the listed cell indices with c over a transparent buffer.
func FillMask(buf []byte, cells []int, c color.RGBA) {
	for i := range buf {
		buf[i] = 0
	}
	for _, idx := range cells {
		base := idx * 4
		if idx < 0 || base+3 >= len(buf) {
			continue
		}
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

func clearPixel(buf []byte, base int) {
	buf[base+0] = 0
	buf[base+1] = 0
	buf[base+2] = 0
	buf[base+3] = 0
}
