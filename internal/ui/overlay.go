//go:build ebiten

package ui

import (
	"image/color"

	"tilewave/internal/core"
	"tilewave/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type entropyProvider interface {
	DomainSizes() []int
	TileCount() int
}

type contradictionProvider interface {
	ContradictionCells() []int
}

var (
	entropyTint        = color.RGBA{R: 64, G: 164, B: 223}
	contradictionColor = color.RGBA{R: 255, G: 40, B: 40, A: 200}
)

// Overlay draws optional debugging visuals on top of the base simulation.
// Key 1 toggles the entropy shading, key 2 the contradiction markers.
type Overlay struct {
	sim   core.Sim
	scale int

	showEntropy        bool
	showContradictions bool

	img *ebiten.Image
	buf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale, showContradictions: true}
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showEntropy = !o.showEntropy
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showContradictions = !o.showContradictions
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	total := size.Cells()
	if total <= 0 {
		return
	}
	if o.img == nil || o.img.Bounds().Dx() != size.W || o.img.Bounds().Dy() != size.H {
		o.img = ebiten.NewImage(size.W, size.H)
		o.buf = make([]byte, 4*total)
	}

	if o.showEntropy {
		if p, ok := o.sim.(entropyProvider); ok {
			render.FillEntropy(o.buf, p.DomainSizes(), p.TileCount(), entropyTint)
			o.blit(screen)
		}
	}
	if o.showContradictions {
		if p, ok := o.sim.(contradictionProvider); ok {
			cells := p.ContradictionCells()
			if len(cells) == 0 {
				return
			}
			render.FillMask(o.buf, cells, contradictionColor)
			o.blit(screen)
		}
	}
}

func (o *Overlay) blit(screen *ebiten.Image) {
	o.img.WritePixels(o.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.img, op)
}
