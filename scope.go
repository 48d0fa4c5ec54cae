package marquee

import (
	"errors"

	"github.com/tanema/gween/ease"
)

// Scope owns every timeline, scroll trigger and viewport observer a
// component creates during one mount. Revert kills the timelines and
// unbinds the triggers and observers, so a component that builds through
// its Scope cannot leak anything past Unmount.
type Scope struct {
	name string
	page *Page

	timelines []*Timeline
	triggers  []*ScrollTrigger
	cleanups  []func()
	reverted  bool
}

// NewScope creates an empty scope on p.
func NewScope(p *Page, name string) *Scope {
	return &Scope{name: name, page: p}
}

// Name returns the scope's name.
func (s *Scope) Name() string {
	return s.name
}

// Timeline creates an idle timeline owned by the scope.
func (s *Scope) Timeline(name string) *Timeline {
	return s.Adopt(NewTimeline(name))
}

// Adopt makes the scope own tl: it is advanced by Update and killed by
// Revert. Adopting into a reverted scope kills tl.
func (s *Scope) Adopt(tl *Timeline) *Timeline {
	if s.reverted {
		tl.Kill()
		return tl
	}
	tl.debug = s.page.debug
	tl.observer = s.timelineChanged
	s.timelines = append(s.timelines, tl)
	return tl
}

// Trigger creates a scroll trigger owned by the scope. A *Timeline bound
// as cfg.Animation or cfg.Timeline is adopted.
func (s *Scope) Trigger(cfg TriggerConfig) (*ScrollTrigger, error) {
	adopt := func(tl *Timeline) {
		if tl.name == "" {
			tl.name = cfg.Name
		}
		if !s.owns(tl) {
			s.Adopt(tl)
		}
	}
	if tl, ok := cfg.Animation.(*Timeline); ok {
		adopt(tl)
	}
	if cfg.Timeline != nil {
		adopt(cfg.Timeline)
	}
	if cfg.Mode == ModeFireOnce {
		name, onFire := cfg.Name, cfg.OnFire
		cfg.OnFire = func() {
			s.page.debugLog("trigger %s/%s fired", s.name, name)
			s.page.emit(EventTriggerFired, s.name, name)
			if onFire != nil {
				onFire()
			}
		}
	}
	st, err := NewScrollTrigger(s.page.viewport, cfg)
	if err != nil {
		return nil, err
	}
	if s.reverted {
		st.Kill()
		return st, nil
	}
	s.triggers = append(s.triggers, st)
	return st, nil
}

// Reveal plays tl once when trigger's top reaches the viewport line named by
// start (for example "top 80%"). If the trigger cannot be bound, or its
// element is missing, tl plays right away so the content is never left
// hidden.
func (s *Scope) Reveal(name string, trigger LayoutSource, start string, tl *Timeline) *ScrollTrigger {
	st, err := s.Trigger(TriggerConfig{
		Name:     name,
		Trigger:  trigger,
		Start:    start,
		Mode:     ModeFireOnce,
		Timeline: tl,
	})
	if err == nil && !st.Inert() {
		return st
	}
	if err == nil {
		err = errMissingTrigger
		st.Kill()
		s.dropTrigger(st)
	}
	s.page.debugLog("reveal %s/%s: %v; playing immediately", s.name, name, err)
	if !s.owns(tl) {
		s.Adopt(tl)
	}
	tl.Play()
	return nil
}

var errMissingTrigger = errors.New("trigger element not mounted")

func (s *Scope) dropTrigger(st *ScrollTrigger) {
	for i, t := range s.triggers {
		if t == st {
			s.triggers = append(s.triggers[:i], s.triggers[i+1:]...)
			return
		}
	}
}

// RevealFromTo is Reveal for a single tween group: target goes through
// changes over duration once the trigger is reached.
func (s *Scope) RevealFromTo(name string, trigger LayoutSource, start string, target Target, duration float64, fn ease.TweenFunc, changes ...Change) *ScrollTrigger {
	tl := NewTimeline(name)
	tl.FromTo(target, duration, fn, At(0), changes...)
	return s.Reveal(name, trigger, start, tl)
}

// Scrub binds anim to the scroll range [start, end] of trigger. Lag > 0
// smooths the rendered position over lag seconds. If the trigger cannot be
// bound the animation is left at its start.
func (s *Scope) Scrub(name string, trigger LayoutSource, start, end string, lag float64, anim Animation) *ScrollTrigger {
	st, err := s.Trigger(TriggerConfig{
		Name:      name,
		Trigger:   trigger,
		Start:     start,
		End:       end,
		Mode:      ModeScrub,
		Lag:       lag,
		Animation: anim,
	})
	if err != nil {
		s.page.debugLog("scrub %s/%s: %v", s.name, name, err)
		return nil
	}
	return st
}

// Observe registers fn as a viewport observer for the scope's lifetime.
func (s *Scope) Observe(fn func(ViewportEvent)) {
	if s.reverted {
		return
	}
	s.cleanups = append(s.cleanups, s.page.viewport.Observe(fn))
}

// OnReady runs fn when the page becomes ready, or right away if it already
// is. A pending subscription is cancelled by Revert.
func (s *Scope) OnReady(fn func()) {
	if s.reverted {
		return
	}
	s.cleanups = append(s.cleanups, s.page.ready.Subscribe(fn))
}

// Update advances the scope's running timelines and lagged triggers by dt
// seconds and forgets timelines that have finished. Idle timelines (scrub
// targets, reveals not yet fired) are kept.
func (s *Scope) Update(dt float64) {
	if s.reverted {
		return
	}
	for _, st := range s.triggers {
		st.Update(dt)
	}
	for _, tl := range s.timelines[:len(s.timelines):len(s.timelines)] {
		tl.Update(dt)
	}
	// prune after updating: callbacks may have added timelines or reverted the scope
	n := 0
	for _, tl := range s.timelines {
		switch tl.State() {
		case TimelineCompleted, TimelineKilled:
			tl.observer = nil
			continue
		}
		s.timelines[n] = tl
		n++
	}
	clear(s.timelines[n:])
	s.timelines = s.timelines[:n]
}

// Revert kills every owned timeline and unbinds every trigger and
// observer. Safe to call more than once.
func (s *Scope) Revert() {
	if s.reverted {
		return
	}
	s.reverted = true
	for _, st := range s.triggers {
		st.Kill()
	}
	for _, release := range s.cleanups {
		release()
	}
	for _, tl := range s.timelines {
		tl.Kill()
		tl.observer = nil
	}
	s.triggers = nil
	s.cleanups = nil
	s.timelines = nil
}

// Reverted reports whether Revert has been called.
func (s *Scope) Reverted() bool {
	return s.reverted
}

// Timelines returns the number of live timelines the scope owns.
func (s *Scope) Timelines() int {
	return len(s.timelines)
}

// Triggers returns the scope's scroll triggers. The returned slice MUST NOT
// be mutated.
func (s *Scope) Triggers() []*ScrollTrigger {
	return s.triggers
}

func (s *Scope) owns(tl *Timeline) bool {
	for _, t := range s.timelines {
		if t == tl {
			return true
		}
	}
	return false
}

func (s *Scope) timelineChanged(tl *Timeline, state TimelineState) {
	var kind LifecycleKind
	switch state {
	case TimelineRunning:
		kind = EventTimelineStarted
	case TimelineCompleted:
		kind = EventTimelineCompleted
	case TimelineKilled:
		kind = EventTimelineKilled
	default:
		return
	}
	s.page.debugLog("timeline %s/%s %s", s.name, tl.Name(), state)
	s.page.emit(kind, s.name, tl.Name())
}
