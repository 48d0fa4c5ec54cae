package marquee

// FooterView is the footer's element subtree: the big masked headline, its
// accent underline and the bottom bar.
type FooterView struct {
	Footer  *Element
	BigText *Element // clipping mask
	Line    *Element // headline sliding up inside BigText
	Accent  *Element
	Bottom  *Element
	Social  []*Element
}

// NewFooterView builds the footer subtree.
func NewFooterView(social ...string) *FooterView {
	v := &FooterView{
		Footer:  NewElement("footer", "section"),
		BigText: NewElement("footer-big-text", ""),
		Line:    NewElement("footer-line", ""),
		Accent:  NewElement("footer-accent-line", "footer-accent-line"),
		Bottom:  NewElement("footer-bottom", ""),
	}
	v.Footer.Color = Color{0.07, 0.07, 0.07, 1}
	v.BigText.Clip = true
	v.Line.Text = "RUN IT BACK"
	v.Line.Color = ColorWhite
	v.Accent.Color = colorAccent
	v.Bottom.Text = "© LEAGUE 1V1"
	v.Bottom.Color = Color{1, 1, 1, 0.4}

	v.Footer.AddChild(v.BigText)
	v.BigText.AddChild(v.Line)
	v.Footer.AddChild(v.Accent)
	v.Footer.AddChild(v.Bottom)
	for _, s := range social {
		link := NewElement("social-"+s, "social-link")
		link.Text = s
		link.Color = Color{1, 1, 1, 0.6}
		v.Bottom.AddChild(link)
		v.Social = append(v.Social, link)
	}
	return v
}

// Layout places the footer at y and returns its height.
func (v *FooterView) Layout(y, width, height float64) float64 {
	const pad = 40.0
	top := y
	y += 120
	bigH := clampRange(width*0.1, 48, 160)
	v.BigText.Bounds = Rect{X: pad, Y: y, Width: width - 2*pad, Height: bigH}
	v.Line.Bounds = v.BigText.Bounds
	y += bigH + 16
	v.Accent.Bounds = Rect{X: pad, Y: y, Width: min(width-2*pad, 320), Height: 3}
	y += 3 + 120
	v.Bottom.Bounds = Rect{X: pad, Y: y, Width: width - 2*pad, Height: 48}
	x := v.Bottom.Bounds.X + v.Bottom.Bounds.Width
	for i := len(v.Social) - 1; i >= 0; i-- {
		x -= 96
		v.Social[i].Bounds = Rect{X: x, Y: y + 14, Width: 88, Height: 20}
	}
	y += 48 + 40
	v.Footer.Bounds = Rect{Y: top, Width: width, Height: y - top}
	return y - top
}

// Footer reveals its headline, underline and bottom bar once each scrolls
// into view.
type Footer struct {
	view *FooterView

	scope *Scope
}

// NewFooter creates a footer over view.
func NewFooter(view *FooterView) *Footer {
	return &Footer{view: view}
}

// Name implements Named.
func (f *Footer) Name() string { return "footer" }

// Mount sets the hidden state and binds the three reveals.
func (f *Footer) Mount(p *Page) {
	v := f.view
	f.scope = NewScope(p, "footer")

	slide := FromTo(PropYPercent, 120, 0)
	v.Line.SetFrom(slide)
	f.scope.RevealFromTo("footer-big-text", v.BigText, "top 85%", v.Line, 1, Power3Out, slide)

	grow := FromTo(PropScaleX, 0, 1)
	v.Accent.SetFrom(grow)
	f.scope.RevealFromTo("footer-accent", v.BigText, "top 75%", v.Accent, 1.2, Power3Out, grow)

	fade := []Change{FromTo(PropY, 20, 0), FromTo(PropOpacity, 0, 1)}
	v.Bottom.SetFrom(fade...)
	f.scope.RevealFromTo("footer-bottom", v.Bottom, "top 95%", v.Bottom, 0.8, Power3Out, fade...)
}

// Scope returns the current mount's scope, or nil before Mount.
func (f *Footer) Scope() *Scope { return f.scope }

// Update advances the reveals.
func (f *Footer) Update(dt float64) {
	if f.scope != nil {
		f.scope.Update(dt)
	}
}

// Unmount kills the reveals and unbinds their triggers.
func (f *Footer) Unmount() {
	if f.scope != nil {
		f.scope.Revert()
	}
}
