package marquee

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Mode selects how a ScrollTrigger applies its progress.
type Mode uint8

const (
	ModeScrub    Mode = iota // progress drives the animation position directly
	ModeFireOnce             // the timeline plays once when progress first leaves 0
)

func (m Mode) String() string {
	switch m {
	case ModeScrub:
		return "scrub"
	case ModeFireOnce:
		return "fire-once"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Default boundaries when a TriggerConfig leaves them empty.
const (
	DefaultStart = "top bottom"
	DefaultEnd   = "bottom top"
)

// Boundary is a scroll position expressed as "a point on the trigger
// aligned with a point on the viewport". Each point is a fraction of the
// respective height plus a px offset.
type Boundary struct {
	TriggerFrac, TriggerPx   float64
	ViewportFrac, ViewportPx float64
}

// ParseBoundary parses "<trigger> <viewport>", each one of top, center,
// bottom, "N%" or "Npx" (a bare number is px). "top 80%" means the
// trigger's top edge sits 80% of the way down the viewport.
func ParseBoundary(s string) (Boundary, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Boundary{}, fmt.Errorf("parse boundary %q: %w", s, ErrInvalidBoundary)
	}
	tf, tpx, err := parseAnchor(fields[0])
	if err != nil {
		return Boundary{}, fmt.Errorf("parse boundary %q: %w", s, err)
	}
	vf, vpx, err := parseAnchor(fields[1])
	if err != nil {
		return Boundary{}, fmt.Errorf("parse boundary %q: %w", s, err)
	}
	return Boundary{TriggerFrac: tf, TriggerPx: tpx, ViewportFrac: vf, ViewportPx: vpx}, nil
}

// MustBoundary is like ParseBoundary but panics on error. Intended for
// literals in code.
func MustBoundary(s string) Boundary {
	b, err := ParseBoundary(s)
	if err != nil {
		panic("marquee: " + err.Error())
	}
	return b
}

func parseAnchor(s string) (frac, px float64, err error) {
	switch s {
	case "top":
		return 0, 0, nil
	case "center":
		return 0.5, 0, nil
	case "bottom":
		return 1, 0, nil
	}
	if n, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, 0, ErrInvalidBoundary
		}
		return v / 100, 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil {
		return 0, 0, ErrInvalidBoundary
	}
	return 0, v, nil
}

// Offset returns the scroll offset at which the boundary is met for a
// trigger laid out at r in a viewport of height viewportH.
func (b Boundary) Offset(r Rect, viewportH float64) float64 {
	return r.Y + b.TriggerFrac*r.Height + b.TriggerPx - (b.ViewportFrac*viewportH + b.ViewportPx)
}

// LayoutSource provides a trigger's layout box. Elements implement it.
// ok is false once the source is gone.
type LayoutSource interface {
	Layout() (r Rect, ok bool)
}

// TriggerConfig describes a ScrollTrigger binding.
type TriggerConfig struct {
	Name    string
	Trigger LayoutSource
	Start   string // default DefaultStart
	End     string // default DefaultEnd
	Mode    Mode

	// Scrub mode: Animation is rendered at progress*Duration. Lag > 0 eases
	// the rendered position toward the scroll position over Lag seconds.
	Animation Animation
	Lag       float64

	// Fire-once mode: Timeline is played once.
	Timeline *Timeline
	OnFire   func()
}

// ScrollTrigger binds an animation to the scroll position of a viewport.
// Progress is clamp((scroll-start)/(end-start), 0, 1), where start and end
// are the boundary offsets measured from the trigger's layout. Offsets are
// cached and re-measured only on resize or refresh, never on scroll.
//
// A trigger observes its viewport until Kill; it never owns the trigger
// element. If the element is gone when measured the trigger goes inert.
type ScrollTrigger struct {
	name       string
	source     LayoutSource
	start, end Boundary
	mode       Mode
	lag        float64
	anim       Animation
	tl         *Timeline
	onFire     func()

	viewport  *Viewport
	unobserve func()

	startPx, endPx float64
	measured       bool
	inert          bool
	measures       int

	progress  float64
	applied   float64
	smoothing *gween.Tween

	fired  bool
	killed bool
}

// NewScrollTrigger binds cfg to vp and applies the current scroll position
// right away.
func NewScrollTrigger(vp *Viewport, cfg TriggerConfig) (*ScrollTrigger, error) {
	startExpr, endExpr := cfg.Start, cfg.End
	if startExpr == "" {
		startExpr = DefaultStart
	}
	if endExpr == "" {
		endExpr = DefaultEnd
	}
	start, err := ParseBoundary(startExpr)
	if err != nil {
		return nil, fmt.Errorf("scroll trigger %q: %w", cfg.Name, err)
	}
	end, err := ParseBoundary(endExpr)
	if err != nil {
		return nil, fmt.Errorf("scroll trigger %q: %w", cfg.Name, err)
	}
	st := &ScrollTrigger{
		name:     cfg.Name,
		source:   cfg.Trigger,
		start:    start,
		end:      end,
		mode:     cfg.Mode,
		lag:      cfg.Lag,
		anim:     cfg.Animation,
		tl:       cfg.Timeline,
		onFire:   cfg.OnFire,
		viewport: vp,
	}
	if st.mode == ModeFireOnce && st.tl == nil {
		if tl, ok := cfg.Animation.(*Timeline); ok {
			st.tl = tl
		}
	}
	st.unobserve = vp.Observe(st.handle)
	st.measure()
	if st.mode == ModeScrub {
		// lag smooths later changes; the starting position is applied as is
		st.apply(st.ProgressAt(vp.ScrollY()))
	}
	st.update()
	return st, nil
}

// Name returns the trigger's name.
func (st *ScrollTrigger) Name() string { return st.name }

// Mode returns the trigger's mode.
func (st *ScrollTrigger) Mode() Mode { return st.mode }

// Progress returns the scroll progress in [0, 1], a pure function of the
// scroll offset and the cached layout.
func (st *ScrollTrigger) Progress() float64 { return st.progress }

// Applied returns the progress currently rendered on the animation. It
// differs from Progress only while a lagged scrub is catching up.
func (st *ScrollTrigger) Applied() float64 { return st.applied }

// Range returns the cached start and end scroll offsets in px.
func (st *ScrollTrigger) Range() (start, end float64) { return st.startPx, st.endPx }

// Fired reports whether a fire-once trigger has played its timeline.
func (st *ScrollTrigger) Fired() bool { return st.fired }

// Killed reports whether Kill has been called.
func (st *ScrollTrigger) Killed() bool { return st.killed }

// Inert reports whether the trigger's layout source was missing when last measured.
func (st *ScrollTrigger) Inert() bool { return st.inert }

// Refresh re-measures the trigger layout and re-applies progress.
func (st *ScrollTrigger) Refresh() {
	if st.killed {
		return
	}
	st.measure()
	st.update()
}

// Kill unbinds the trigger from its viewport. The bound animation is left
// as is; its owner decides whether to kill it. Safe to call more than once.
func (st *ScrollTrigger) Kill() {
	if st.killed {
		return
	}
	st.killed = true
	st.smoothing = nil
	if st.unobserve != nil {
		st.unobserve()
		st.unobserve = nil
	}
}

// Update advances lagged scrubbing by dt seconds.
func (st *ScrollTrigger) Update(dt float64) {
	if st.killed || st.smoothing == nil {
		return
	}
	val, done := st.smoothing.Update(float32(dt))
	if done {
		st.smoothing = nil
		st.apply(st.progress)
		return
	}
	st.apply(float64(val))
}

// ProgressAt returns the progress for scroll offset y using the cached layout.
func (st *ScrollTrigger) ProgressAt(y float64) float64 {
	if st.inert {
		return 0
	}
	span := st.endPx - st.startPx
	if span <= 0 {
		if y >= st.startPx {
			return 1
		}
		return 0
	}
	return clamp01((y - st.startPx) / span)
}

func (st *ScrollTrigger) handle(ev ViewportEvent) {
	if st.killed {
		return
	}
	if ev != ViewportScroll {
		st.measured = false
	}
	st.update()
}

func (st *ScrollTrigger) measure() {
	st.measured = true
	st.measures++
	if st.source == nil {
		st.inert = true
		return
	}
	r, ok := st.source.Layout()
	if !ok {
		st.inert = true
		return
	}
	st.inert = false
	h := st.viewport.Height()
	st.startPx = st.start.Offset(r, h)
	st.endPx = st.end.Offset(r, h)
}

func (st *ScrollTrigger) update() {
	if st.killed {
		return
	}
	if !st.measured {
		st.measure()
	}
	p := st.ProgressAt(st.viewport.ScrollY())
	st.progress = p

	switch st.mode {
	case ModeScrub:
		if st.lag <= 0 {
			st.apply(p)
			return
		}
		if p == st.applied {
			st.smoothing = nil
			return
		}
		st.smoothing = gween.New(float32(st.applied), float32(p), float32(st.lag), ease.OutQuad)
	case ModeFireOnce:
		if st.fired || p <= 0 {
			return
		}
		st.fired = true
		if st.tl != nil {
			st.tl.Play()
		}
		if st.onFire != nil {
			st.onFire()
		}
	}
}

func (st *ScrollTrigger) apply(p float64) {
	st.applied = p
	if st.anim != nil {
		st.anim.seek(p * st.anim.Duration())
	}
}
