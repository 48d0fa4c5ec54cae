package marquee

import "github.com/tanema/gween/ease"

// Animation is anything a Timeline can sequence or a ScrollTrigger can
// scrub: *Tween, *TweenGroup and *Timeline.
type Animation interface {
	// Duration returns the animation's length in seconds.
	Duration() float64

	// render draws the animation at local time (seconds since its start) and
	// reports whether it has finished. Completion callbacks fire from here.
	render(local float64) bool
	// seek draws the animation at local time without lifecycle effects, so
	// it may move backwards. Used by scrubbed scroll triggers.
	seek(local float64)
	// cancel stops all further writes.
	cancel()
}

// Change describes one property animated by a tween: from From to To, or
// from whatever the target holds when the tween starts (see ToValue).
type Change struct {
	Prop     Property
	From, To float64

	fromCurrent bool
}

// FromTo animates p from from to to.
func FromTo(p Property, from, to float64) Change {
	return Change{Prop: p, From: from, To: to}
}

// ToValue animates p to to, starting from the target's value at the moment
// the tween first renders.
func ToValue(p Property, to float64) Change {
	return Change{Prop: p, To: to, fromCurrent: true}
}

// Tween animates a single property of a target. Create one with Animate or
// To, then either call Update(dt) each frame or add it to a Timeline.
//
// A tween writes exactly its end value once its duration has elapsed. A
// zero duration snaps: one update with the end value, then completion.
// Cancel stops further writes and suppresses the completion callback. If
// the target is missing or disposed the tween finishes without writing.
type Tween struct {
	target      Target
	prop        Property
	from, to    float64
	fromCurrent bool
	duration    float64
	fn          ease.TweenFunc

	onUpdate   func(v float64)
	onComplete func()

	elapsed   float64
	value     float64
	begun     bool
	cancelled bool

	// Done is true once the tween has completed or been cancelled.
	Done bool
}

// Animate creates a tween of target's property p from from to to over
// duration seconds using the easing function fn (nil means Linear).
func Animate(target Target, p Property, from, to, duration float64, fn ease.TweenFunc) *Tween {
	return newTween(target, Change{Prop: p, From: from, To: to}, duration, fn)
}

// To creates a tween of target's property p to to, starting from the value
// the target holds when the tween first renders.
func To(target Target, p Property, to, duration float64, fn ease.TweenFunc) *Tween {
	return newTween(target, ToValue(p, to), duration, fn)
}

func newTween(target Target, c Change, duration float64, fn ease.TweenFunc) *Tween {
	if duration < 0 {
		duration = 0
	}
	return &Tween{
		target:      target,
		prop:        c.Prop,
		from:        c.From,
		to:          c.To,
		fromCurrent: c.fromCurrent,
		duration:    duration,
		fn:          fn,
		value:       c.From,
	}
}

// OnUpdate sets a callback invoked with the written value after every write.
func (tw *Tween) OnUpdate(fn func(v float64)) *Tween {
	tw.onUpdate = fn
	return tw
}

// OnComplete sets a callback invoked once when the tween reaches its end.
func (tw *Tween) OnComplete(fn func()) *Tween {
	tw.onComplete = fn
	return tw
}

// Update advances the tween by dt seconds and writes the new value.
func (tw *Tween) Update(dt float64) {
	if tw.Done {
		return
	}
	tw.elapsed += dt
	tw.render(tw.elapsed)
}

// Cancel stops the tween immediately. The completion callback never fires
// after Cancel. Safe to call more than once.
func (tw *Tween) Cancel() {
	tw.cancelled = true
	tw.Done = true
}

// Cancelled reports whether Cancel was called before the tween completed.
func (tw *Tween) Cancelled() bool {
	return tw.cancelled
}

// Duration returns the tween's length in seconds.
func (tw *Tween) Duration() float64 {
	return tw.duration
}

// Value returns the last value the tween wrote (its start value before the
// first write).
func (tw *Tween) Value() float64 {
	return tw.value
}

// Progress returns the elapsed fraction of a standalone tween in [0, 1].
func (tw *Tween) Progress() float64 {
	if tw.duration <= 0 {
		if tw.begun {
			return 1
		}
		return 0
	}
	return clamp01(tw.elapsed / tw.duration)
}

func (tw *Tween) render(local float64) bool {
	if tw.Done {
		return true
	}
	if isAbsent(tw.target) {
		tw.Done = true
		return true
	}
	t := 1.0
	if tw.duration > 0 {
		t = clamp01(local / tw.duration)
	}
	tw.write(t)
	if tw.cancelled {
		return true
	}
	if t >= 1 {
		tw.Done = true
		if tw.onComplete != nil {
			tw.onComplete()
		}
		return true
	}
	return false
}

func (tw *Tween) seek(local float64) {
	if tw.cancelled || isAbsent(tw.target) {
		return
	}
	t := 1.0
	if tw.duration > 0 {
		t = clamp01(local / tw.duration)
	} else if local < 0 {
		t = 0
	}
	tw.write(t)
}

func (tw *Tween) cancel() {
	tw.Cancel()
}

// write resolves the start value on first use, then interpolates at the
// eased fraction t and writes the result to the target.
func (tw *Tween) write(t float64) {
	if !tw.begun {
		tw.begun = true
		if tw.fromCurrent {
			if r, ok := tw.target.(PropertyReader); ok {
				tw.from = r.Property(tw.prop)
			} else {
				tw.from = tw.prop.Default()
			}
		}
	}
	var v float64
	switch {
	case t >= 1:
		v = tw.to
	case t <= 0:
		v = tw.from
	default:
		v = tw.from + (tw.to-tw.from)*Curve(tw.fn, t)
	}
	tw.value = v
	tw.target.SetProperty(tw.prop, v)
	if tw.onUpdate != nil {
		tw.onUpdate(v)
	}
}

// TweenGroup animates several properties of one target in lockstep: same
// start, same duration, same easing. If the target is disposed the group
// stops immediately.
//
// There is no global animation manager. Call Update yourself or add the
// group to a Timeline.
type TweenGroup struct {
	tweens     []*Tween
	target     Target
	duration   float64
	elapsed    float64
	onComplete func()

	// Done is true once every tween has finished or the group was cancelled.
	Done bool
}

// NewTweenGroup creates a group animating each change on target over
// duration seconds using fn.
func NewTweenGroup(target Target, duration float64, fn ease.TweenFunc, changes ...Change) *TweenGroup {
	g := &TweenGroup{target: target, tweens: make([]*Tween, len(changes))}
	for i, c := range changes {
		g.tweens[i] = newTween(target, c, duration, fn)
	}
	g.duration = duration
	if g.duration < 0 {
		g.duration = 0
	}
	return g
}

// OnComplete sets a callback invoked once when every tween has finished.
func (g *TweenGroup) OnComplete(fn func()) *TweenGroup {
	g.onComplete = fn
	return g
}

// Update advances all tweens by dt seconds and writes their values. If the
// target has been disposed, Done is set and no writes occur.
func (g *TweenGroup) Update(dt float64) {
	if g.Done {
		return
	}
	g.elapsed += dt
	g.render(g.elapsed)
}

// Cancel stops every tween in the group. Safe to call more than once.
func (g *TweenGroup) Cancel() {
	g.cancel()
}

// Duration returns the group's shared length in seconds.
func (g *TweenGroup) Duration() float64 {
	return g.duration
}

// Tweens returns the group's tweens, one per change. Callers MUST NOT
// mutate the returned slice.
func (g *TweenGroup) Tweens() []*Tween {
	return g.tweens
}

func (g *TweenGroup) render(local float64) bool {
	if g.Done {
		return true
	}
	if isAbsent(g.target) {
		g.Done = true
		return true
	}
	allDone := true
	for _, tw := range g.tweens {
		if !tw.render(local) {
			allDone = false
		}
	}
	if g.Done {
		// cancelled from a tween callback
		return true
	}
	if allDone {
		g.Done = true
		if g.onComplete != nil {
			g.onComplete()
		}
	}
	return allDone
}

func (g *TweenGroup) seek(local float64) {
	for _, tw := range g.tweens {
		tw.seek(local)
	}
}

func (g *TweenGroup) cancel() {
	g.Done = true
	for _, tw := range g.tweens {
		tw.Cancel()
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
