package preview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/marquee"
)

// fpsOverlay displays FPS, TPS and the scroll state in the top-right
// corner. The text is redrawn every ~0.5 seconds.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
	op         ebiten.DrawImageOptions
}

func newFPSOverlay() *fpsOverlay {
	// 120x64 is enough for four debug lines
	return &fpsOverlay{img: ebiten.NewImage(120, 64), lastUpdate: 0.5}
}

func (o *fpsOverlay) update(dt float64, p *marquee.Page) {
	o.lastUpdate += dt
	if o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})

	ready := "no"
	if p.Ready() {
		ready = "yes"
	}
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nY: %.0f\nReady: %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), p.Viewport().ScrollY(), ready))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	o.op.GeoM.Reset()
	o.op.GeoM.Translate(float64(screen.Bounds().Dx()-o.img.Bounds().Dx()-8), 8)
	screen.DrawImage(o.img, &o.op)
}

func toRGBA(c marquee.Color) color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
