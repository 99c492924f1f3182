package wfc

import (
	"image"
	"image/color"
)

// PixelBuffer stores RGBA samples in row-major order.
type PixelBuffer struct {
	W, H int
	Pix  []color.RGBA
}

// NewPixelBuffer allocates a transparent buffer with the given dimensions.
// Non-positive dimensions are clamped to one pixel.
func NewPixelBuffer(w, h int) *PixelBuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &PixelBuffer{W: w, H: h, Pix: make([]color.RGBA, w*h)}
}

// PixelBufferFromImage copies any image.Image into a PixelBuffer.
func PixelBufferFromImage(img image.Image) *PixelBuffer {
	b := img.Bounds()
	p := NewPixelBuffer(b.Dx(), b.Dy())
	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			p.Pix[p.Index(x, y)] = c
		}
	}
	return p
}

// Index returns the linear slice index for coordinates (x, y).
func (p *PixelBuffer) Index(x, y int) int { return y*p.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (p *PixelBuffer) Wrap(x, y int) (int, int) {
	x = (x%p.W + p.W) % p.W
	y = (y%p.H + p.H) % p.H
	return x, y
}

// At returns the sample at (x, y) with toroidal wrapping.
func (p *PixelBuffer) At(x, y int) color.RGBA {
	x, y = p.Wrap(x, y)
	return p.Pix[p.Index(x, y)]
}

// Set stores c at (x, y). Out-of-range coordinates are ignored.
func (p *PixelBuffer) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= p.W || y >= p.H {
		return
	}
	p.Pix[p.Index(x, y)] = c
}

// Fill sets every sample to c.
func (p *PixelBuffer) Fill(c color.RGBA) {
	for i := range p.Pix {
		p.Pix[i] = c
	}
}

// Center returns the sample in the middle of the buffer. For even sizes the
// lower/right middle is used.
func (p *PixelBuffer) Center() color.RGBA {
	return p.Pix[p.Index(p.W/2, p.H/2)]
}

// Image converts the buffer into an *image.RGBA.
func (p *PixelBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.W, p.H))
	for i, c := range p.Pix {
		base := i * 4
		img.Pix[base+0] = c.R
		img.Pix[base+1] = c.G
		img.Pix[base+2] = c.B
		img.Pix[base+3] = c.A
	}
	return img
}
