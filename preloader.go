package marquee

import "fmt"

// Phase is a named step of the preloader timeline.
type Phase uint8

const (
	PhaseBrand   Phase = iota // brand characters, line and subtitle
	PhaseCounter              // counter area fades in, odometer rolls 0 to 100
	PhaseHold                 // short hold, then a faint flash
	PhaseExit                 // content fades, curtains split
	numPhases
)

var phaseNames = [numPhases]string{"brand", "counter", "hold", "exit"}

func (ph Phase) String() string {
	if ph < numPhases {
		return phaseNames[ph]
	}
	return fmt.Sprintf("Phase(%d)", uint8(ph))
}

// Colors used by the preloader view.
var (
	colorCurtain = Color{0x11 / 255.0, 0x11 / 255.0, 0x11 / 255.0, 1}
	colorAccent  = Color{0.91, 0.34, 0.13, 1}
	colorDim     = Color{1, 1, 1, 0.5}
)

// PreloaderView is the preloader's element subtree: a fixed overlay with
// two curtains, a flash layer and the content (brand and counter).
type PreloaderView struct {
	Overlay      *Element
	CurtainLeft  *Element
	CurtainRight *Element
	Flash        *Element
	Content      *Element

	Brand    *Element
	Chars    []*Element
	Line     *Element
	Subtitle *Element

	CounterArea *Element
	Columns     [numColumns]*Element // clipping windows
	Strips      [numColumns]*Element // 0-9 strips moved by the odometer
	Track       *Element
	Progress    *Element
}

// NewPreloaderView builds the preloader subtree for cfg's brand and subtitle.
// Bounds are assigned by Layout.
func NewPreloaderView(cfg PreloaderConfig) *PreloaderView {
	v := &PreloaderView{
		Overlay:      NewElement("preloader", "preloader"),
		CurtainLeft:  NewElement("curtain-left", "curtain"),
		CurtainRight: NewElement("curtain-right", "curtain"),
		Flash:        NewElement("preloader-flash", "preloader-flash"),
		Content:      NewElement("preloader-content", ""),
		Brand:        NewElement("brand", ""),
		Line:         NewElement("brand-line", ""),
		Subtitle:     NewElement("brand-sub", ""),
		CounterArea:  NewElement("counter-area", "counter-area"),
		Track:        NewElement("progress-track", ""),
		Progress:     NewElement("progress", ""),
	}
	v.Overlay.Fixed = true
	v.CurtainLeft.Color = colorCurtain
	v.CurtainRight.Color = colorCurtain
	v.Flash.PointerEvents = false
	v.Flash.Color = ColorWhite
	v.Brand.Clip = true
	v.Line.Color = colorAccent
	v.Subtitle.Text = cfg.Subtitle
	v.Subtitle.Color = colorDim
	v.Track.Color = Color{1, 1, 1, 0.1}
	v.Progress.Color = colorAccent

	v.Overlay.AddChild(v.CurtainLeft)
	v.Overlay.AddChild(v.CurtainRight)
	v.Overlay.AddChild(v.Flash)
	v.Overlay.AddChild(v.Content)

	v.Content.AddChild(v.Brand)
	for i, r := range cfg.Brand {
		ch := NewElement(fmt.Sprintf("brand-char-%d", i), "brand-char")
		ch.Text = string(r)
		ch.Color = ColorWhite
		v.Chars = append(v.Chars, ch)
		v.Brand.AddChild(ch)
	}
	v.Content.AddChild(v.Line)
	v.Content.AddChild(v.Subtitle)

	v.Content.AddChild(v.CounterArea)
	for c := range v.Columns {
		col := NewElement(fmt.Sprintf("digit-column-%d", c), "digit-column")
		col.Clip = true
		strip := NewElement(fmt.Sprintf("digit-strip-%d", c), "digit-strip")
		strip.Text = "0\n1\n2\n3\n4\n5\n6\n7\n8\n9"
		strip.Color = Color{1, 1, 1, 0.7}
		col.AddChild(strip)
		v.CounterArea.AddChild(col)
		v.Columns[c] = col
		v.Strips[c] = strip
	}
	v.CounterArea.AddChild(v.Track)
	v.Track.AddChild(v.Progress)
	return v
}

// Layout sizes the overlay to the viewport. Bounds of fixed elements are in
// viewport space.
func (v *PreloaderView) Layout(width, height float64) {
	full := Rect{Width: width, Height: height}
	v.Overlay.Bounds = full
	v.Flash.Bounds = full
	v.Content.Bounds = full
	v.CurtainLeft.Bounds = Rect{Width: width / 2, Height: height}
	v.CurtainRight.Bounds = Rect{X: width / 2, Width: width / 2, Height: height}

	charW := clampRange(width*0.12, 48, 160) * 0.7
	charH := charW / 0.7 * 0.9
	brandW := charW * float64(len(v.Chars))
	brandX := (width - brandW) / 2
	brandY := height/2 - charH
	v.Brand.Bounds = Rect{X: brandX, Y: brandY, Width: brandW, Height: charH}
	for i, ch := range v.Chars {
		ch.Bounds = Rect{X: brandX + float64(i)*charW, Y: brandY, Width: charW, Height: charH}
	}
	v.Line.Bounds = Rect{X: width/2 - 40, Y: brandY + charH + 12, Width: 80, Height: 3}
	v.Subtitle.Bounds = Rect{X: width/2 - 60, Y: brandY + charH + 27, Width: 120, Height: 32}

	const colW, colH, gap, margin = 32.0, 40.0, 4.0, 40.0
	areaW := 3*colW + 2*gap
	areaX := width - margin - areaW
	areaY := height - margin - colH - 9
	v.CounterArea.Bounds = Rect{X: areaX, Y: areaY, Width: areaW, Height: colH + 9}
	for c := range v.Columns {
		r := Rect{X: areaX + float64(c)*(colW+gap), Y: areaY, Width: colW, Height: colH}
		v.Columns[c].Bounds = r
		r.Height = colH * 10
		v.Strips[c].Bounds = r
	}
	v.Track.Bounds = Rect{X: areaX, Y: areaY + colH + 8, Width: areaW, Height: 1}
	v.Progress.Bounds = v.Track.Bounds
}

// hide puts every animated element in its pre-animation state.
func (v *PreloaderView) hide() {
	for _, ch := range v.Chars {
		ch.Set(ToValue(PropYPercent, 130), ToValue(PropOpacity, 0))
	}
	v.Line.Set(ToValue(PropScaleX, 0))
	v.Subtitle.Set(ToValue(PropY, 12), ToValue(PropOpacity, 0))
	v.CounterArea.Set(ToValue(PropOpacity, 0), ToValue(PropY, 10))
	for _, s := range v.Strips {
		s.Set(ToValue(PropYPercent, 0))
	}
	v.Progress.Set(ToValue(PropScaleX, 0))
	v.Flash.Set(ToValue(PropOpacity, 0))
	v.Content.Set(ToValue(PropOpacity, 1))
	v.CurtainLeft.Set(ToValue(PropXPercent, 0))
	v.CurtainRight.Set(ToValue(PropXPercent, 0))
	v.Overlay.PointerEvents = true
}

// Preloader is the page's entrance sequence: the brand is revealed, a
// three-digit odometer rolls from 000 to 100, the screen flashes and the
// curtains split. The whole sequence is one Timeline built at mount.
//
// While mounted and unfinished the preloader holds a scroll lock. On
// completion it releases the lock, stops the overlay from taking pointer
// input and calls onComplete exactly once. Unmounting early kills the
// timeline and releases the lock without calling onComplete.
type Preloader struct {
	cfg        PreloaderConfig
	view       *PreloaderView
	onComplete func()

	page     *Page
	scope    *Scope
	tl       *Timeline
	odometer *Odometer
	release  func()
	phases   [numPhases]float64
	done     bool

	// OnDigit, when set, is called for every odometer column write.
	OnDigit func(column, digit int)
}

// NewPreloader creates a preloader over view. onComplete may be nil.
func NewPreloader(view *PreloaderView, cfg PreloaderConfig, onComplete func()) *Preloader {
	return &Preloader{cfg: cfg, view: view, onComplete: onComplete}
}

// Name implements Named.
func (pl *Preloader) Name() string { return "preloader" }

// Mount locks scrolling, resets the view and starts the timeline.
func (pl *Preloader) Mount(p *Page) {
	pl.page = p
	pl.done = false
	pl.scope = NewScope(p, "preloader")
	pl.release = p.Viewport().Lock()
	pl.view.hide()

	pl.odometer = NewOdometer(pl.view.Strips[ColumnHundreds], pl.view.Strips[ColumnTens], pl.view.Strips[ColumnOnes])
	pl.odometer.OnDigit = func(col, digit int) {
		if pl.OnDigit != nil {
			pl.OnDigit(col, digit)
		}
	}

	pl.tl = pl.build(pl.scope.Timeline("preloader"))
	pl.tl.OnComplete(pl.finish)
	pl.tl.Play()
}

func (pl *Preloader) build(tl *Timeline) *Timeline {
	cfg, v := pl.cfg, pl.view

	// Phase 1: brand reveals center stage
	pl.phases[PhaseBrand] = tl.End()
	chars := Stagger(targets(v.Chars), cfg.CharStagger, cfg.CharDuration, Power3Out,
		FromTo(PropYPercent, 130, 0), FromTo(PropOpacity, 0, 1))
	tl.Add(chars, Sequential())
	tl.FromTo(v.Line, cfg.LineDuration, Power3InOut, Overlap(cfg.LineOverlap),
		FromTo(PropScaleX, 0, 1))
	tl.FromTo(v.Subtitle, cfg.SubtitleDuration, Power3Out, Overlap(cfg.SubtitleOverlap),
		FromTo(PropY, 12, 0), FromTo(PropOpacity, 0, 1))

	// Phase 2: counter fades in and rolls 000 to 100
	tl.FromTo(v.CounterArea, cfg.CounterFadeDuration, Power3Out, Overlap(cfg.CounterFadeOverlap),
		FromTo(PropOpacity, 0, 1), FromTo(PropY, 10, 0))
	pl.phases[PhaseCounter] = tl.LastStart()
	tl.Add(Animate(pl.odometer, PropValue, 0, 100, cfg.CounterDuration, Power2InOut), Overlap(cfg.CounterOverlap))
	tl.FromTo(v.Progress, cfg.CounterDuration, Power2InOut, WithPrevious(),
		ToValue(PropScaleX, 1))

	// Phase 3: hold, then flash up and back
	pl.phases[PhaseHold] = tl.End()
	tl.Hold(cfg.Hold)
	tl.FromTo(v.Flash, cfg.FlashDuration, Power1Out, Sequential(), ToValue(PropOpacity, cfg.FlashOpacity))
	tl.FromTo(v.Flash, cfg.FlashDuration, Power1Out, Sequential(), ToValue(PropOpacity, 0))

	// Phase 4: everything fades, curtains split
	pl.phases[PhaseExit] = tl.End()
	tl.FromTo(v.Content, cfg.ContentFadeDuration, Power2In, Sequential(), ToValue(PropOpacity, 0))
	tl.FromTo(v.CurtainLeft, cfg.CurtainDuration, Power4InOut, Overlap(cfg.CurtainOverlap),
		ToValue(PropXPercent, -100))
	tl.FromTo(v.CurtainRight, cfg.CurtainDuration, Power4InOut, WithPrevious(),
		ToValue(PropXPercent, 100))
	return tl
}

// Update advances the timeline.
func (pl *Preloader) Update(dt float64) {
	if pl.scope != nil {
		pl.scope.Update(dt)
	}
}

// Unmount kills the timeline if it is still running and releases the
// scroll lock.
func (pl *Preloader) Unmount() {
	if pl.scope != nil {
		pl.scope.Revert()
	}
	if pl.release != nil {
		pl.release()
	}
}

func (pl *Preloader) finish() {
	if pl.done {
		return
	}
	pl.done = true
	pl.release()
	pl.view.Overlay.PointerEvents = false
	if pl.onComplete != nil {
		pl.onComplete()
	}
}

// Done reports whether the sequence has completed in the current mount.
func (pl *Preloader) Done() bool { return pl.done }

// Timeline returns the current mount's timeline, or nil before Mount.
func (pl *Preloader) Timeline() *Timeline { return pl.tl }

// Odometer returns the counter driven by the timeline, or nil before Mount.
func (pl *Preloader) Odometer() *Odometer { return pl.odometer }

// View returns the preloader's element subtree.
func (pl *Preloader) View() *PreloaderView { return pl.view }

// PhaseStart returns the resolved start time of ph in the current timeline.
func (pl *Preloader) PhaseStart(ph Phase) float64 {
	if ph >= numPhases {
		return 0
	}
	return pl.phases[ph]
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
