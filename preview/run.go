// Package preview runs a marquee Page in an Ebitengine window. Elements are
// drawn as tinted quads and debug text; the page clock is Ebitengine's tick.
package preview

import (
	"errors"
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/marquee"
)

// RunConfig configures the preview window.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool

	// WheelSpeed is px scrolled per wheel notch. Default 60.
	WheelSpeed float64
	// KeyStep is px scrolled per arrow key press. Default 80.
	KeyStep float64

	// ClearColor fills the window before the page is drawn.
	ClearColor marquee.Color

	// Update, when set, is called after the page has been updated each tick.
	// Returning an error stops the run; ebiten.Termination stops it cleanly.
	Update func(dt float64) error
}

// debugLineHeight is the glyph height of ebitenutil's debug font.
const debugLineHeight = 16

// Run opens a window and drives p until the window is closed or Escape is
// pressed. It blocks and returns nil on a clean exit.
func Run(p *marquee.Page, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 720
	}
	if cfg.WheelSpeed <= 0 {
		cfg.WheelSpeed = 60
	}
	if cfg.KeyStep <= 0 {
		cfg.KeyStep = 80
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	p.Resize(float64(cfg.Width), float64(cfg.Height))

	g := &game{page: p, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	page  *marquee.Page
	cfg   RunConfig
	quads []Quad
	fps   *fpsOverlay
	pixel *ebiten.Image
	op    ebiten.DrawImageOptions
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	vp := g.page.Viewport()
	if _, wy := ebiten.Wheel(); wy != 0 {
		vp.Wheel(-wy * g.cfg.WheelSpeed)
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		vp.Wheel(g.cfg.KeyStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		vp.Wheel(-g.cfg.KeyStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		vp.Wheel(vp.Height() * 0.9)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		vp.Wheel(-vp.Height() * 0.9)
	}

	g.page.Update(dt)
	if g.fps != nil {
		g.fps.update(dt, g.page)
	}
	if g.cfg.Update != nil {
		return g.cfg.Update(dt)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.pixel == nil {
		g.pixel = ebiten.NewImage(1, 1)
		g.pixel.Fill(toRGBA(marquee.ColorWhite))
	}
	screen.Fill(toRGBA(g.cfg.ClearColor))

	sh := float64(screen.Bounds().Dy())
	g.quads = Collect(g.page.Root(), g.page.Viewport().ScrollY(), g.quads[:0])
	for i := range g.quads {
		q := &g.quads[i]
		if q.Rect.Y > sh || q.Rect.Bottom() < 0 {
			continue
		}
		g.drawQuad(screen, q)
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) drawQuad(screen *ebiten.Image, q *Quad) {
	target := screen
	if q.Clipped {
		if q.Clip.Width <= 0 || q.Clip.Height <= 0 {
			return
		}
		target = screen.SubImage(image.Rect(
			int(q.Clip.X), int(q.Clip.Y),
			int(q.Clip.X+q.Clip.Width), int(q.Clip.Y+q.Clip.Height),
		)).(*ebiten.Image)
	}

	e := q.Element
	if e.Text != "" {
		// the debug font has no alpha; hide mostly transparent text
		if q.Alpha*e.Color.A < 0.25 {
			return
		}
		lines := strings.Split(e.Text, "\n")
		step := float64(debugLineHeight)
		if len(lines) > 1 {
			step = q.Rect.Height / float64(len(lines))
		}
		for i, line := range lines {
			y := q.Rect.Y + float64(i)*step + (step-debugLineHeight)/2
			ebitenutil.DebugPrintAt(target, line, int(q.Rect.X), int(y))
		}
		return
	}

	if q.Rect.Width <= 0 || q.Rect.Height <= 0 {
		return
	}
	op := &g.op
	op.GeoM.Reset()
	op.GeoM.Scale(q.Rect.Width, q.Rect.Height)
	op.GeoM.Translate(q.Rect.X, q.Rect.Y)
	op.ColorScale.Reset()
	a := float32(q.Alpha * e.Color.A)
	op.ColorScale.Scale(float32(e.Color.R)*a, float32(e.Color.G)*a, float32(e.Color.B)*a, a)
	target.DrawImage(g.pixel, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.page.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
