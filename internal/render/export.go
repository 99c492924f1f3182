package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// Image builds a w×h image from row-major cell colors, upscaled by scale
// with nearest-neighbor sampling.
func Image(colors []color.RGBA, w, h, scale int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("render: invalid size %dx%d", w, h)
	}
	if len(colors) != w*h {
		return nil, fmt.Errorf("render: have %d colors for %dx%d cells", len(colors), w, h)
	}
	if scale <= 0 {
		scale = 1
	}
	base := image.NewRGBA(image.Rect(0, 0, w, h))
	FillRGBA(base.Pix, colors)
	if scale == 1 {
		return base, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), base, base.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// WritePNG encodes the scaled cell image as PNG.
func WritePNG(out io.Writer, colors []color.RGBA, w, h, scale int) error {
	img, err := Image(colors, w, h, scale)
	if err != nil {
		return err
	}
	return png.Encode(out, img)
}

// SavePNG writes the scaled cell image to path, creating parent directories.
func SavePNG(path string, colors []color.RGBA, w, h, scale int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := WritePNG(f, colors, w, h, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
