package preview

import "github.com/phanxgames/marquee"

// Quad is one element resolved to screen space for drawing.
type Quad struct {
	Element *marquee.Element

	// Rect is the element's box after translation, scale and clip insets.
	Rect marquee.Rect
	// Alpha is the element's opacity multiplied by its ancestors'.
	Alpha float64

	// Clip, when Clipped, bounds everything drawn for this element.
	Clip    marquee.Rect
	Clipped bool
}

// frame is the state a parent hands down to its children.
type frame struct {
	dx, dy  float64
	alpha   float64
	fixed   bool
	clip    marquee.Rect
	clipped bool
}

// Collect appends a Quad for every visible element under root, in tree
// order, for a page scrolled to scrollY. Translation, opacity and clipping
// are inherited by children; scale and insets apply to the element's own
// box only. Subtrees with zero opacity are skipped.
func Collect(root *marquee.Element, scrollY float64, dst []Quad) []Quad {
	if root == nil || root.IsDisposed() {
		return dst
	}
	return collect(root, frame{alpha: 1}, scrollY, dst)
}

func collect(e *marquee.Element, parent frame, scrollY float64, dst []Quad) []Quad {
	alpha := parent.alpha * e.Property(marquee.PropOpacity)
	if alpha <= 0 {
		return dst
	}
	b := e.Bounds
	f := frame{
		dx:      parent.dx + e.Property(marquee.PropX) + e.Property(marquee.PropXPercent)/100*b.Width,
		dy:      parent.dy + e.Property(marquee.PropY) + e.Property(marquee.PropYPercent)/100*b.Height,
		alpha:   alpha,
		fixed:   parent.fixed || e.Fixed,
		clip:    parent.clip,
		clipped: parent.clipped,
	}

	r := marquee.Rect{X: b.X + f.dx, Y: b.Y + f.dy, Width: b.Width, Height: b.Height}
	if !f.fixed {
		r.Y -= scrollY
	}
	r = scaleAbout(r,
		e.Property(marquee.PropScale)*e.Property(marquee.PropScaleX),
		e.Property(marquee.PropScale)*e.Property(marquee.PropScaleY))
	r, inset := applyInsets(r,
		e.Property(marquee.PropInsetX),
		e.Property(marquee.PropInsetY),
		e.Property(marquee.PropInsetBottom))

	if e.Clip || inset {
		if f.clipped {
			f.clip = intersect(f.clip, r)
		} else {
			f.clip = r
		}
		f.clipped = true
	}

	if e.Text != "" || e.Color.A > 0 {
		dst = append(dst, Quad{
			Element: e,
			Rect:    r,
			Alpha:   alpha,
			Clip:    f.clip,
			Clipped: f.clipped,
		})
	}
	for _, c := range e.Children() {
		dst = collect(c, f, scrollY, dst)
	}
	return dst
}

// scaleAbout scales r about its center.
func scaleAbout(r marquee.Rect, sx, sy float64) marquee.Rect {
	if sx == 1 && sy == 1 {
		return r
	}
	cx, cy := r.X+r.Width/2, r.Y+r.Height/2
	w, h := r.Width*sx, r.Height*sy
	return marquee.Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

// applyInsets shrinks r by percentage insets and reports whether any
// inset was applied.
func applyInsets(r marquee.Rect, insetX, insetY, insetBottom float64) (marquee.Rect, bool) {
	if insetX <= 0 && insetY <= 0 && insetBottom <= 0 {
		return r, false
	}
	ix := max(insetX, 0) / 100 * r.Width
	iy := max(insetY, 0) / 100 * r.Height
	ib := max(insetBottom, 0) / 100 * r.Height
	r.X += ix
	r.Width = max(r.Width-2*ix, 0)
	r.Y += iy
	r.Height = max(r.Height-2*iy-ib, 0)
	return r, true
}

func intersect(a, b marquee.Rect) marquee.Rect {
	x0, y0 := max(a.X, b.X), max(a.Y, b.Y)
	x1, y1 := min(a.X+a.Width, b.X+b.Width), min(a.Y+a.Height, b.Y+b.Height)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return marquee.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
