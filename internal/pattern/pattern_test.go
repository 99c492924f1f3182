package pattern

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestCityLayout(t *testing.T) {
	p := City()
	if p.W != 9 || p.H != 9 {
		t.Fatalf("city size = %dx%d, want 9x9", p.W, p.H)
	}
	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, white},
		{8, 4, white},
		{4, 8, white},
		{1, 1, black},
		{7, 4, black},
		{2, 2, maroon},
		{4, 4, maroon},
		{6, 6, maroon},
	}
	for _, tc := range checks {
		if got := p.At(tc.x, tc.y); got != tc.want {
			t.Errorf("city(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		p, ok := Lookup(name)
		if !ok || p == nil {
			t.Fatalf("Lookup(%q) failed", name)
		}
	}
	if _, ok := Lookup("nope"); ok {
		t.Fatal("Lookup of unknown name should fail")
	}

	a, _ := Lookup("city")
	a.Set(4, 4, white)
	b, _ := Lookup("city")
	if b.At(4, 4) != maroon {
		t.Fatal("Lookup must return an independent copy")
	}
}

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})
	img.Set(2, 0, color.RGBA{B: 255, A: 255})
	img.Set(0, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.Set(1, 1, color.RGBA{A: 255})
	img.Set(2, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}

func TestLoadPNGAndBMP(t *testing.T) {
	dir := t.TempDir()
	src := testImage()

	pngPath := filepath.Join(dir, "p.png")
	f, err := os.Create(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	bmpPath := filepath.Join(dir, "p.bmp")
	f, err = os.Create(bmpPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	for _, path := range []string{pngPath, bmpPath} {
		p, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", path, err)
		}
		if p.W != 3 || p.H != 2 {
			t.Fatalf("Load(%s) size = %dx%d, want 3x2", path, p.W, p.H)
		}
		for y := 0; y < 2; y++ {
			for x := 0; x < 3; x++ {
				want := src.RGBAAt(x, y)
				if got := p.At(x, y); got != want {
					t.Errorf("Load(%s) (%d,%d) = %v, want %v", path, x, y, got, want)
				}
			}
		}
	}
}

func TestResolve(t *testing.T) {
	if p, err := Resolve("checker"); err != nil || p.W != 4 {
		t.Fatalf("Resolve(checker) = %v, %v", p, err)
	}
	_, err := Resolve(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("Resolve(missing) error = %v, want ErrUnknownPattern", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(bad); err == nil {
		t.Fatal("Resolve of undecodable file should fail")
	}
}
