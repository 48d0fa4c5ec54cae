package marquee

import "testing"

// eventLog is an EventSink that records every event.
type eventLog struct {
	events []LifecycleEvent
}

func (l *eventLog) EmitEvent(ev LifecycleEvent) {
	l.events = append(l.events, ev)
}

func (l *eventLog) count(kind LifecycleKind, name string) int {
	n := 0
	for _, ev := range l.events {
		if ev.Kind == kind && (name == "" || ev.Name == name) {
			n++
		}
	}
	return n
}

func newScopeFixture() (*Page, *Element) {
	p := NewPage(1280, 800)
	el := NewElement("section", "")
	p.Root().AddChild(el)
	p.SetLayout(func(root *Element, w, h float64) float64 {
		el.Bounds = Rect{Y: 1000, Width: w, Height: 400}
		return 5000
	})
	return p, el
}

func TestScopeRevertReleasesEverything(t *testing.T) {
	p, el := newScopeFixture()
	s := NewScope(p, "test")
	tl := s.Timeline("intro")
	tl.Add(Animate(&Counter{}, PropValue, 0, 1, 1, Linear), Sequential())
	tl.Play()
	s.Scrub("scrub", el, "top top", "bottom top", 0, Animate(&Counter{}, PropValue, 0, 1, 1, Linear))
	s.Reveal("reveal", el, "top 80%", Stagger([]Target{&Counter{}}, 0.1, 1, Linear, FromTo(PropValue, 0, 1)))
	s.Observe(func(ViewportEvent) {})
	ready := false
	s.OnReady(func() { ready = true })

	if p.Viewport().ObserverCount() != 3 {
		t.Fatalf("ObserverCount = %d, want 3", p.Viewport().ObserverCount())
	}
	s.Revert()
	s.Revert()
	if p.Viewport().ObserverCount() != 0 {
		t.Errorf("ObserverCount = %d after Revert, want 0", p.Viewport().ObserverCount())
	}
	if tl.State() != TimelineKilled {
		t.Errorf("State = %v, want killed", tl.State())
	}
	if p.ReadyLatch().Pending() != 0 {
		t.Error("OnReady subscription should be cancelled")
	}
	p.MarkReady()
	if ready {
		t.Error("OnReady ran after Revert")
	}
	if !s.Reverted() || s.Timelines() != 0 || len(s.Triggers()) != 0 {
		t.Error("reverted scope should own nothing")
	}
}

func TestScopeAfterRevert(t *testing.T) {
	p, el := newScopeFixture()
	s := NewScope(p, "test")
	s.Revert()
	tl := s.Timeline("late")
	if tl.State() != TimelineKilled {
		t.Errorf("State = %v, want killed", tl.State())
	}
	st, err := s.Trigger(TriggerConfig{Trigger: el})
	if err != nil {
		t.Fatal(err)
	}
	if !st.Killed() || p.Viewport().ObserverCount() != 0 {
		t.Error("trigger created after Revert should be killed")
	}
	s.Observe(func(ViewportEvent) {})
	s.OnReady(func() {})
	if p.Viewport().ObserverCount() != 0 || p.ReadyLatch().Pending() != 0 {
		t.Error("reverted scope should not register anything")
	}
}

func TestScopeUpdatePrunesFinished(t *testing.T) {
	p, _ := newScopeFixture()
	s := NewScope(p, "test")
	tl := s.Timeline("short")
	tl.Add(Animate(&Counter{}, PropValue, 0, 1, 0.5, Linear), Sequential())
	tl.Play()
	idle := s.Timeline("idle")
	idle.Add(Animate(&Counter{}, PropValue, 0, 1, 0.5, Linear), Sequential())

	s.Update(1)
	if tl.State() != TimelineCompleted {
		t.Fatalf("State = %v, want completed", tl.State())
	}
	if s.Timelines() != 1 {
		t.Errorf("Timelines = %d, want 1 (the idle one)", s.Timelines())
	}
}

func TestScopeKeepsTimelinesAddedDuringUpdate(t *testing.T) {
	p, _ := newScopeFixture()
	s := NewScope(p, "test")
	var late *Timeline
	tl := s.Timeline("first")
	tl.Call(func() {
		late = s.Timeline("late")
		late.Add(Animate(&Counter{}, PropValue, 0, 1, 1, Linear), Sequential())
		late.Play()
	}, At(0))
	tl.Play()
	s.Update(0.1)
	if late == nil || s.Timelines() != 1 {
		t.Fatalf("Timelines = %d, want the late timeline only", s.Timelines())
	}
	s.Update(1)
	if late.State() != TimelineCompleted {
		t.Errorf("late State = %v, want completed", late.State())
	}
}

func TestScopeEmitsLifecycleEvents(t *testing.T) {
	p, el := newScopeFixture()
	log := &eventLog{}
	p.SetEventSink(log)
	s := NewScope(p, "about")
	s.Reveal("label", el, "top 80%", Stagger([]Target{&Counter{}}, 0, 0.5, Linear, FromTo(PropValue, 0, 1)))
	p.Viewport().SetScroll(500)
	s.Update(1)

	if log.count(EventTriggerFired, "label") != 1 {
		t.Error("want one trigger-fired event for label")
	}
	if log.count(EventTimelineStarted, "label") != 1 {
		t.Error("unnamed stagger should be named after its trigger")
	}
	if log.count(EventTimelineCompleted, "label") != 1 {
		t.Error("want one timeline-completed event")
	}
	for _, ev := range log.events {
		if ev.Scope != "about" {
			t.Errorf("Scope = %q, want about", ev.Scope)
		}
	}

	tl := s.Timeline("spin")
	tl.Play()
	s.Revert()
	if log.count(EventTimelineKilled, "spin") != 1 {
		t.Error("want one timeline-killed event on Revert")
	}
}

func TestScopeRevealFallsBackToPlay(t *testing.T) {
	p, el := newScopeFixture()
	s := NewScope(p, "test")
	tl := NewTimeline("fallback")
	tl.Add(Animate(&Counter{}, PropValue, 0, 1, 1, Linear), Sequential())
	if st := s.Reveal("bad", el, "not a boundary", tl); st != nil {
		t.Error("Reveal with a bad boundary should return nil")
	}
	if tl.State() != TimelineRunning {
		t.Errorf("State = %v, want running", tl.State())
	}
	if s.Timelines() != 1 {
		t.Errorf("Timelines = %d, want 1", s.Timelines())
	}
	if st := s.Scrub("bad", el, "top", "bottom top", 0, tl); st != nil {
		t.Error("Scrub with a bad boundary should return nil")
	}
}

func TestScopeOnReadyAlreadyReady(t *testing.T) {
	p, _ := newScopeFixture()
	p.MarkReady()
	s := NewScope(p, "test")
	ran := false
	s.OnReady(func() { ran = true })
	if !ran {
		t.Error("OnReady should run immediately on a ready page")
	}
}

func TestScopeRevealMissingTriggerShowsContent(t *testing.T) {
	p, _ := newScopeFixture()
	s := NewScope(p, "test")
	target := NewElement("content", "")
	fade := FromTo(PropOpacity, 0, 1)
	target.SetFrom(fade)

	var missing *Element
	if st := s.RevealFromTo("missing", missing, "top 80%", target, 0.5, Power3Out, fade); st != nil {
		t.Error("Reveal on a missing element should return nil")
	}
	gone := NewElement("gone", "")
	gone.Dispose()
	other := NewElement("other", "")
	other.SetFrom(fade)
	s.RevealFromTo("gone", gone, "top 80%", other, 0.5, Power3Out, fade)

	if n := p.Viewport().ObserverCount(); n != 0 {
		t.Errorf("ObserverCount = %d, want 0", n)
	}
	if len(s.Triggers()) != 0 {
		t.Errorf("Triggers = %d, want 0", len(s.Triggers()))
	}
	for range 60 {
		s.Update(1.0 / 60)
	}
	assertNear(t, "missing trigger opacity", target.Property(PropOpacity), 1)
	assertNear(t, "disposed trigger opacity", other.Property(PropOpacity), 1)
}
