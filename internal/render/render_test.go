package render

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func TestFillRGBA(t *testing.T) {
	buf := make([]byte, 8)
	FillRGBA(buf, []color.RGBA{red, blue, red})
	want := []byte{255, 0, 0, 255, 0, 0, 255, 255}
	if !bytes.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestFillEntropy(t *testing.T) {
	buf := make([]byte, 16)
	tint := color.RGBA{R: 10, G: 20, B: 30}
	FillEntropy(buf, []int{16, 4, 1, 0}, 16, tint)
	if buf[3] != 180 {
		t.Errorf("full domain alpha = %d, want 180", buf[3])
	}
	if buf[7] != 90 {
		t.Errorf("half-entropy alpha = %d, want 90", buf[7])
	}
	if buf[4] != 10 || buf[5] != 20 || buf[6] != 30 {
		t.Errorf("tint not applied: %v", buf[4:7])
	}
	for i := 8; i < 16; i++ {
		if buf[i] != 0 {
			t.Fatalf("resolved cells must be transparent, got %v", buf[8:])
		}
	}
}

func TestFillMask(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9}
	FillMask(buf, []int{2, -1, 7}, red)
	want := []byte{0, 0, 0, 0, 0, 0, 0, 0, 255, 0, 0, 255}
	if !bytes.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestImageScalesNearestNeighbor(t *testing.T) {
	img, err := Image([]color.RGBA{red, blue}, 2, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 3 {
		t.Fatalf("bounds = %v, want 6x3", b)
	}
	if img.RGBAAt(2, 2) != red || img.RGBAAt(3, 0) != blue || img.RGBAAt(5, 2) != blue {
		t.Fatal("upscaled pixels do not match their source cells")
	}
	if _, err := Image([]color.RGBA{red}, 2, 1, 1); err == nil {
		t.Fatal("color count mismatch should fail")
	}
	if _, err := Image(nil, 0, 1, 1); err == nil {
		t.Fatal("zero width should fail")
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "grid.png")
	if err := SavePNG(path, []color.RGBA{red, blue, blue, red}, 2, 2, 4); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Fatalf("decoded bounds = %v, want 8x8", b)
	}
	r, g, b, _ := img.At(7, 0).RGBA()
	if r != 0 || g != 0 || b != 0xffff {
		t.Fatalf("top-right pixel = %d,%d,%d, want blue", r, g, b)
	}
}
