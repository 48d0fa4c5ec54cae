package marquee

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// TimelineState is the lifecycle state of a Timeline.
type TimelineState uint8

const (
	TimelineIdle      TimelineState = iota // constructed, not yet playing
	TimelineRunning                        // advancing on Update (possibly paused)
	TimelineCompleted                      // terminal: every entry reached its end
	TimelineKilled                         // terminal: stopped before completion
)

var timelineStateNames = [...]string{"idle", "running", "completed", "killed"}

func (s TimelineState) String() string {
	if int(s) < len(timelineStateNames) {
		return timelineStateNames[s]
	}
	return fmt.Sprintf("TimelineState(%d)", uint8(s))
}

// entry is one scheduled animation on a timeline.
type entry struct {
	anim  Animation
	start float64
	begun bool
	done  bool
}

// callback is a zero-length entry that runs a function once.
type callback struct {
	fn    func()
	fired bool
}

func (c *callback) Duration() float64 { return 0 }

func (c *callback) render(float64) bool {
	if !c.fired {
		c.fired = true
		if c.fn != nil {
			c.fn()
		}
	}
	return true
}

func (c *callback) seek(float64) {}

func (c *callback) cancel() { c.fired = true }

// Timeline sequences animations on a virtual clock. Entries start at
// resolved offsets (see Position) and run concurrently where they overlap.
// Entries are kept sorted by start time, ties in add order, so ordering is
// a function of the virtual clock only, never of frame size.
//
// A Timeline starts Idle; Play moves it to Running; it ends Completed (the
// completion callback fires exactly once) or Killed (no further writes, no
// completion). Kill is idempotent and a no-op after completion.
type Timeline struct {
	name    string
	entries []*entry

	prevStart float64
	prevEnd   float64
	end       float64
	delay     float64

	clock    float64
	rendered float64 // last local time rendered by Update
	sought   float64 // last local time passed to Seek
	state    TimelineState
	paused   bool

	onComplete func()
	observer   func(tl *Timeline, s TimelineState)
	debug      bool
}

// NewTimeline creates an empty, idle timeline. The name shows up in debug
// output and lifecycle events.
func NewTimeline(name string) *Timeline {
	return &Timeline{name: name}
}

// Name returns the timeline's name.
func (tl *Timeline) Name() string {
	return tl.name
}

// Add schedules a at pos. A nil animation is ignored. Returns tl for chaining.
func (tl *Timeline) Add(a Animation, pos Position) *Timeline {
	if a == nil || tl.state == TimelineKilled || tl.state == TimelineCompleted {
		return tl
	}
	start := tl.resolve(pos)
	e := &entry{anim: a, start: start}

	// insert after every entry starting at or before start
	i := len(tl.entries)
	for i > 0 && tl.entries[i-1].start > start {
		i--
	}
	tl.entries = append(tl.entries, nil)
	copy(tl.entries[i+1:], tl.entries[i:])
	tl.entries[i] = e

	end := start + a.Duration()
	tl.prevStart = start
	tl.prevEnd = end
	if end > tl.end {
		tl.end = end
	}
	return tl
}

// FromTo schedules a TweenGroup on target at pos. Shorthand for
// Add(NewTweenGroup(...), pos).
func (tl *Timeline) FromTo(target Target, duration float64, fn ease.TweenFunc, pos Position, changes ...Change) *Timeline {
	return tl.Add(NewTweenGroup(target, duration, fn, changes...), pos)
}

// Call schedules fn to run once when the clock reaches pos.
func (tl *Timeline) Call(fn func(), pos Position) *Timeline {
	return tl.Add(&callback{fn: fn}, pos)
}

// Hold appends an empty span of d seconds, pushing later sequential entries back.
func (tl *Timeline) Hold(d float64) *Timeline {
	return tl.Add(&pause{d: d}, Sequential())
}

// Delay sets how long the timeline waits after Play before its first entry.
func (tl *Timeline) Delay(d float64) *Timeline {
	if d < 0 {
		d = 0
	}
	tl.delay = d
	return tl
}

// OnComplete sets the callback invoked once on completion.
func (tl *Timeline) OnComplete(fn func()) *Timeline {
	tl.onComplete = fn
	return tl
}

// Play starts an idle timeline, or resumes a paused one. No-op once the
// timeline has completed or been killed.
func (tl *Timeline) Play() {
	switch tl.state {
	case TimelineIdle:
		tl.setState(TimelineRunning)
	case TimelineRunning:
		tl.paused = false
	}
}

// Pause freezes the virtual clock. Resume or Play continues it.
func (tl *Timeline) Pause() {
	if tl.state == TimelineRunning {
		tl.paused = true
	}
}

// Resume continues a paused timeline.
func (tl *Timeline) Resume() {
	if tl.state == TimelineRunning {
		tl.paused = false
	}
}

// Paused reports whether a running timeline is paused.
func (tl *Timeline) Paused() bool {
	return tl.paused
}

// Kill stops the timeline for good: outstanding tweens are cancelled and
// pending callbacks discarded. Safe to call any number of times; a no-op
// on a completed timeline.
func (tl *Timeline) Kill() {
	if tl.state == TimelineCompleted || tl.state == TimelineKilled {
		return
	}
	tl.setState(TimelineKilled)
	for _, e := range tl.entries {
		if !e.done {
			e.anim.cancel()
		}
	}
}

// Update advances the virtual clock by dt seconds and renders every entry
// whose start has been reached. Only a running, unpaused timeline moves.
func (tl *Timeline) Update(dt float64) {
	if tl.state != TimelineRunning || tl.paused || dt < 0 {
		return
	}
	tl.clock += dt
	local := tl.clock - tl.delay
	if local < 0 {
		return
	}
	tl.renderAt(local)
}

// Seek renders every entry at position pos (seconds, delay included)
// without lifecycle effects: no callbacks, no completion, and pos may move
// backwards. Scrubbed scroll triggers drive timelines this way.
//
// Moving backwards seeks entries in reverse start order, so where two
// entries overlap on one property the earlier entry has the last word.
func (tl *Timeline) Seek(pos float64) {
	if tl.state == TimelineKilled {
		return
	}
	local := pos - tl.delay
	backwards := local < tl.sought
	tl.sought = local
	n := len(tl.entries)
	for i := range n {
		e := tl.entries[i]
		if backwards {
			e = tl.entries[n-1-i]
		}
		l := local - e.start
		if l < 0 && !e.begun {
			continue
		}
		e.begun = true
		e.anim.seek(l)
	}
}

// State returns the lifecycle state.
func (tl *Timeline) State() TimelineState {
	return tl.state
}

// Duration returns the timeline's length in seconds, start delay included.
func (tl *Timeline) Duration() float64 {
	return tl.delay + tl.end
}

// Time returns the virtual clock in seconds since Play, delay included.
func (tl *Timeline) Time() float64 {
	return tl.clock
}

// Progress returns Time/Duration clamped to [0, 1]. A completed timeline
// reports 1.
func (tl *Timeline) Progress() float64 {
	if tl.state == TimelineCompleted {
		return 1
	}
	d := tl.Duration()
	if d <= 0 {
		return 0
	}
	return clamp01(tl.clock / d)
}

// Len returns the number of entries.
func (tl *Timeline) Len() int {
	return len(tl.entries)
}

// StartOf returns the resolved start of the i-th entry in start order.
// ok is false when i is out of range.
func (tl *Timeline) StartOf(i int) (start float64, ok bool) {
	if i < 0 || i >= len(tl.entries) {
		return 0, false
	}
	return tl.entries[i].start, true
}

// LastStart returns the resolved start of the most recently added entry.
func (tl *Timeline) LastStart() float64 {
	return tl.prevStart
}

// End returns where the next Sequential entry would start.
func (tl *Timeline) End() float64 {
	return tl.end
}

func (tl *Timeline) resolve(pos Position) float64 {
	var t float64
	switch pos.kind {
	case posAbsolute:
		t = pos.offset
	case posPrevEnd:
		t = tl.prevEnd + pos.offset
	case posPrevStart:
		t = tl.prevStart + pos.offset
	default:
		t = tl.end + pos.offset
	}
	if t < 0 {
		t = 0
	}
	return t
}

// renderAt renders entries at local time and completes the timeline when
// every entry is done. Reports whether the timeline is complete. A step that
// crosses pending entry starts or ends is split at each of them, so side
// effects run in virtual-clock order whatever the frame size.
func (tl *Timeline) renderAt(local float64) bool {
	for {
		b, ok := tl.nextBoundary(local)
		if !ok {
			break
		}
		if tl.renderStep(b) || tl.state != TimelineRunning {
			return tl.state == TimelineCompleted
		}
	}
	return tl.renderStep(local)
}

// nextBoundary returns the earliest start or end of an unfinished entry
// that lies after the last rendered time and before local.
func (tl *Timeline) nextBoundary(local float64) (float64, bool) {
	best, found := local, false
	for _, e := range tl.entries {
		if e.done {
			continue
		}
		for _, b := range [2]float64{e.start, e.start + e.anim.Duration()} {
			if b > tl.rendered && b < best {
				best, found = b, true
			}
		}
	}
	return best, found
}

func (tl *Timeline) renderStep(local float64) bool {
	tl.rendered = local
	allDone := true
	for _, e := range tl.entries {
		if tl.state == TimelineKilled {
			return false
		}
		if e.done {
			continue
		}
		if local < e.start {
			allDone = false
			break
		}
		e.begun = true
		l := local - e.start
		if d := e.anim.Duration(); l < d && e.start+d <= local {
			// the end was reached on the timeline's clock; avoid rounding short of it
			l = d
		}
		if e.anim.render(l) {
			e.done = true
		} else {
			allDone = false
		}
	}
	if tl.state != TimelineRunning {
		return tl.state == TimelineCompleted
	}
	if allDone && local >= tl.end {
		tl.complete()
		return true
	}
	return false
}

func (tl *Timeline) complete() {
	if tl.state == TimelineCompleted {
		if tl.debug {
			panic(fmt.Sprintf("marquee debug: timeline %q completed twice", tl.name))
		}
		return
	}
	tl.setState(TimelineCompleted)
	if tl.onComplete != nil {
		tl.onComplete()
	}
}

func (tl *Timeline) setState(s TimelineState) {
	tl.state = s
	if tl.observer != nil {
		tl.observer(tl, s)
	}
}

// Animation implementation, for nesting timelines inside timelines.

func (tl *Timeline) render(local float64) bool {
	switch tl.state {
	case TimelineCompleted, TimelineKilled:
		return true
	case TimelineIdle:
		tl.setState(TimelineRunning)
	}
	tl.clock = local
	l := local - tl.delay
	if l < 0 {
		return false
	}
	return tl.renderAt(l)
}

func (tl *Timeline) seek(local float64) {
	tl.Seek(local)
}

func (tl *Timeline) cancel() {
	tl.Kill()
}

// pause is an empty span used by Hold.
type pause struct {
	d float64
}

func (p *pause) Duration() float64 { return p.d }

func (p *pause) render(local float64) bool { return local >= p.d }

func (p *pause) seek(float64) {}

func (p *pause) cancel() {}

// Stagger builds a timeline giving each target its own TweenGroup, the i-th
// starting i*each seconds after the first. Nil targets keep their slot but
// never write. The timeline is unnamed; a Scope names it after the trigger
// it is bound to.
func Stagger(targets []Target, each, duration float64, fn ease.TweenFunc, changes ...Change) *Timeline {
	tl := NewTimeline("")
	for i, t := range targets {
		tl.Add(NewTweenGroup(t, duration, fn, changes...), At(float64(i)*each))
	}
	return tl
}
