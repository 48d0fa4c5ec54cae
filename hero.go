package marquee

// HeroView is the hero section's element subtree.
type HeroView struct {
	Section   *Element
	Video     *Element
	Content   *Element
	Line1     *Element
	Line2     *Element
	Subtitle  *Element
	ScrollCue *Element
}

// NewHeroView builds the hero subtree.
func NewHeroView() *HeroView {
	v := &HeroView{
		Section:   NewElement("hero", "section"),
		Video:     NewElement("hero-video", "video"),
		Content:   NewElement("hero-content", "hero-content"),
		Line1:     NewElement("hero-line-1", "line-inner"),
		Line2:     NewElement("hero-line-2", "line-inner"),
		Subtitle:  NewElement("hero-subtitle", ""),
		ScrollCue: NewElement("scroll-indicator", "scroll-indicator"),
	}
	v.Section.Clip = true
	v.Video.Color = Color{0.15, 0.15, 0.17, 1}
	v.Line1.Text = "ONE COURT"
	v.Line1.Color = ColorWhite
	v.Line2.Text = "ONE CROWN"
	v.Line2.Color = Color{1, 1, 1, 0.8}
	v.Subtitle.Text = "1V1 BASKETBALL · WEIGHT CLASSES · ONE WINNER"
	v.Subtitle.Color = Color{1, 1, 1, 0.6}
	v.ScrollCue.Text = "SCROLL"
	v.ScrollCue.Color = Color{1, 1, 1, 0.3}

	v.Section.AddChild(v.Video)
	v.Section.AddChild(v.Content)
	v.Content.AddChild(v.Line1)
	v.Content.AddChild(v.Line2)
	v.Content.AddChild(v.Subtitle)
	v.Section.AddChild(v.ScrollCue)
	return v
}

// Layout places the section at y, one viewport tall, and returns its height.
func (v *HeroView) Layout(y, width, height float64) float64 {
	v.Section.Bounds = Rect{Y: y, Width: width, Height: height}
	v.Video.Bounds = v.Section.Bounds
	v.Content.Bounds = v.Section.Bounds
	lineH := clampRange(width*0.115, 51, 184) * 0.9
	mid := y + height/2
	v.Line1.Bounds = Rect{X: width * 0.1, Y: mid - lineH - 4, Width: width * 0.8, Height: lineH}
	v.Line2.Bounds = Rect{X: width * 0.1, Y: mid + 4, Width: width * 0.8, Height: lineH}
	v.Subtitle.Bounds = Rect{X: width * 0.1, Y: mid + lineH + 32, Width: width * 0.8, Height: 20}
	v.ScrollCue.Bounds = Rect{X: width/2 - 30, Y: y + height - 80, Width: 60, Height: 40}
	return height
}

// Hero reveals its headline once the page is ready and binds two scrubbed
// parallax effects: the video scales up as the section scrolls away and the
// content drifts up and fades.
type Hero struct {
	view *HeroView

	scope    *Scope
	reveal   *Timeline
	video    *ScrollTrigger
	parallax *ScrollTrigger
}

// NewHero creates a hero over view.
func NewHero(view *HeroView) *Hero {
	return &Hero{view: view}
}

// Name implements Named.
func (h *Hero) Name() string { return "hero" }

// Mount sets the hidden state, binds the parallax scrubs and waits for the
// ready signal.
func (h *Hero) Mount(p *Page) {
	v := h.view
	h.scope = NewScope(p, "hero")
	h.reveal = nil

	v.Line1.Set(ToValue(PropYPercent, 110))
	v.Line2.Set(ToValue(PropYPercent, 110))
	v.Subtitle.Set(ToValue(PropY, 30), ToValue(PropOpacity, 0))
	v.ScrollCue.Set(ToValue(PropOpacity, 0))

	h.video = h.scope.Scrub("hero-video", v.Section, "top top", "bottom top", 0,
		To(v.Video, PropScale, 1.15, scrubDuration, Power1Out))
	h.parallax = h.scope.Scrub("hero-content", v.Section, "20% top", "60% top", 0,
		NewTweenGroup(v.Content, scrubDuration, Power1Out,
			ToValue(PropY, -120), ToValue(PropOpacity, 0)))

	h.scope.OnReady(h.enter)
}

// scrubDuration is the length given to tweens that exist only to be
// scrubbed; only the ratio of position to duration matters.
const scrubDuration = 0.5

func (h *Hero) enter() {
	v := h.view
	tl := h.scope.Timeline("hero-reveal").Delay(0.1)
	tl.FromTo(v.Line1, 0.8, Power3Out, Sequential(), ToValue(PropYPercent, 0))
	tl.FromTo(v.Line2, 0.8, Power3Out, Overlap(0.55), ToValue(PropYPercent, 0))
	tl.FromTo(v.Subtitle, 0.6, Power3Out, Overlap(0.3), ToValue(PropY, 0), ToValue(PropOpacity, 1))
	tl.FromTo(v.ScrollCue, 0.5, Power1Out, Overlap(0.2), ToValue(PropOpacity, 1))
	tl.Play()
	h.reveal = tl
}

// Reveal returns the headline timeline, or nil before the page is ready.
func (h *Hero) Reveal() *Timeline { return h.reveal }

// VideoTrigger returns the video scale scrub.
func (h *Hero) VideoTrigger() *ScrollTrigger { return h.video }

// ContentTrigger returns the content parallax scrub.
func (h *Hero) ContentTrigger() *ScrollTrigger { return h.parallax }

// Update advances the headline reveal.
func (h *Hero) Update(dt float64) {
	if h.scope != nil {
		h.scope.Update(dt)
	}
}

// Unmount kills the reveal and unbinds both scrubs.
func (h *Hero) Unmount() {
	if h.scope != nil {
		h.scope.Revert()
	}
}
