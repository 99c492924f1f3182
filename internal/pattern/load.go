package pattern

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"tilewave/pkg/wfc"
)

// ErrUnknownPattern is returned when a name is neither built in nor a file.
var ErrUnknownPattern = errors.New("pattern: unknown pattern")

// Load decodes the image file at path into a pixel buffer. PNG, GIF, JPEG,
// BMP, TIFF and WebP sources are supported.
func Load(path string) (*wfc.PixelBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pattern: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode pattern %s: %w", path, err)
	}
	p := wfc.PixelBufferFromImage(img)
	wfc.Logger().Debug("pattern loaded", "path", path, "format", format, "w", p.W, "h", p.H)
	return p, nil
}

// Resolve returns the built-in pattern called name, or loads name as a file
// path when no built-in matches.
func Resolve(name string) (*wfc.PixelBuffer, error) {
	if p, ok := Lookup(name); ok {
		return p, nil
	}
	if _, err := os.Stat(name); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return Load(name)
}
