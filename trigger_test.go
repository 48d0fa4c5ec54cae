package marquee

import (
	"errors"
	"testing"
)

// newTriggerFixture returns a viewport 800 tall over a 5000 px document and
// an element at y 1000..1400.
func newTriggerFixture() (*Viewport, *Element) {
	vp := NewViewport(1280, 800)
	vp.DocumentHeight = 5000
	el := NewElement("section", "")
	el.Bounds = Rect{Y: 1000, Width: 1280, Height: 400}
	return vp, el
}

func TestParseBoundary(t *testing.T) {
	tests := []struct {
		in   string
		want Boundary
	}{
		{"top 80%", Boundary{TriggerFrac: 0, ViewportFrac: 0.8}},
		{"center center", Boundary{TriggerFrac: 0.5, ViewportFrac: 0.5}},
		{"20% top", Boundary{TriggerFrac: 0.2}},
		{"bottom 100px", Boundary{TriggerFrac: 1, ViewportPx: 100}},
		{"-50 bottom", Boundary{TriggerPx: -50, ViewportFrac: 1}},
	}
	for _, tt := range tests {
		got, err := ParseBoundary(tt.in)
		if err != nil {
			t.Errorf("ParseBoundary(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBoundary(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseBoundaryErrors(t *testing.T) {
	for _, in := range []string{"", "top", "top 80% extra", "middle top", "top x%"} {
		if _, err := ParseBoundary(in); !errors.Is(err, ErrInvalidBoundary) {
			t.Errorf("ParseBoundary(%q) err = %v, want ErrInvalidBoundary", in, err)
		}
	}
}

func TestBoundaryOffset(t *testing.T) {
	r := Rect{Y: 1000, Height: 400}
	assertNear(t, "top 80%", MustBoundary("top 80%").Offset(r, 800), 360)
	assertNear(t, "center center", MustBoundary("center center").Offset(r, 800), 800)
	assertNear(t, "bottom top", MustBoundary("bottom top").Offset(r, 800), 1400)
}

func TestScrubProgress(t *testing.T) {
	vp, el := newTriggerFixture()
	c := &Counter{}
	st, err := NewScrollTrigger(vp, TriggerConfig{
		Name:      "scrub",
		Trigger:   el,
		Start:     "top top",
		End:       "bottom top",
		Animation: Animate(c, PropValue, 0, 100, 1, Linear),
	})
	if err != nil {
		t.Fatal(err)
	}
	start, end := st.Range()
	assertNear(t, "start", start, 1000)
	assertNear(t, "end", end, 1400)

	vp.SetScroll(1200)
	assertNear(t, "Progress", st.Progress(), 0.5)
	assertClose(t, "Value", c.Value, 50)

	vp.SetScroll(1100)
	assertClose(t, "Value after scrolling back", c.Value, 25)

	vp.SetScroll(4000)
	if st.Progress() != 1 || c.Value != 100 {
		t.Errorf("past end: progress %v value %v, want 1, 100", st.Progress(), c.Value)
	}
	vp.SetScroll(0)
	if st.Progress() != 0 || c.Value != 0 {
		t.Errorf("before start: progress %v value %v, want 0, 0", st.Progress(), c.Value)
	}
}

func TestScrubProgressMonotonic(t *testing.T) {
	vp, el := newTriggerFixture()
	st, _ := NewScrollTrigger(vp, TriggerConfig{Trigger: el, Start: "top 80%", End: "bottom 20%"})
	prev := -1.0
	for y := 0.0; y <= 2000; y += 7 {
		vp.SetScroll(y)
		p := st.Progress()
		if p < prev || p < 0 || p > 1 {
			t.Fatalf("progress %v at y=%v after %v", p, y, prev)
		}
		prev = p
	}
}

func TestTriggerDefaultBoundaries(t *testing.T) {
	vp, el := newTriggerFixture()
	st, err := NewScrollTrigger(vp, TriggerConfig{Trigger: el})
	if err != nil {
		t.Fatal(err)
	}
	start, end := st.Range()
	assertNear(t, "start", start, 200)
	assertNear(t, "end", end, 1400)
}

func TestTriggerBadBoundary(t *testing.T) {
	vp, el := newTriggerFixture()
	_, err := NewScrollTrigger(vp, TriggerConfig{Trigger: el, Start: "nowhere"})
	if !errors.Is(err, ErrInvalidBoundary) {
		t.Errorf("err = %v, want ErrInvalidBoundary", err)
	}
	if vp.ObserverCount() != 0 {
		t.Error("failed trigger should not observe")
	}
}

func TestTriggerDegenerateRangeSteps(t *testing.T) {
	vp, el := newTriggerFixture()
	st, _ := NewScrollTrigger(vp, TriggerConfig{Trigger: el, Start: "top top", End: "top top"})
	if st.ProgressAt(999) != 0 || st.ProgressAt(1000) != 1 {
		t.Errorf("step = (%v, %v), want (0, 1)", st.ProgressAt(999), st.ProgressAt(1000))
	}
}

func TestTriggerInert(t *testing.T) {
	vp, el := newTriggerFixture()
	vp.SetScroll(3000)
	st, _ := NewScrollTrigger(vp, TriggerConfig{Name: "none"})
	if !st.Inert() || st.Progress() != 0 {
		t.Error("trigger without a source should be inert at progress 0")
	}

	fired := false
	gone, _ := NewScrollTrigger(vp, TriggerConfig{Trigger: el, Mode: ModeFireOnce, OnFire: func() { fired = true }})
	if !fired {
		t.Fatal("trigger past its start should fire at creation")
	}
	el.Dispose()
	vp.Refresh()
	if !gone.Inert() || gone.Progress() != 0 {
		t.Error("trigger on a disposed element should go inert")
	}
}

func TestFireOnceNeverRefires(t *testing.T) {
	vp, el := newTriggerFixture()
	c := &Counter{}
	tl := NewTimeline("reveal")
	tl.Add(Animate(c, PropValue, 0, 1, 1, Linear), Sequential())
	fires := 0
	st, _ := NewScrollTrigger(vp, TriggerConfig{
		Trigger:  el,
		Start:    "top 80%",
		Mode:     ModeFireOnce,
		Timeline: tl,
		OnFire:   func() { fires++ },
	})
	if st.Fired() || tl.State() != TimelineIdle {
		t.Fatal("should not fire before its start")
	}
	vp.SetScroll(360)
	if st.Fired() {
		t.Error("progress 0 at the start line should not fire")
	}
	vp.SetScroll(361)
	vp.SetScroll(0)
	vp.SetScroll(800)
	if fires != 1 || !st.Fired() {
		t.Errorf("fires = %d, want 1", fires)
	}
	if tl.State() != TimelineRunning {
		t.Errorf("State = %v, want running", tl.State())
	}
}

func TestFireOnceUsesAnimationTimeline(t *testing.T) {
	vp, el := newTriggerFixture()
	tl := NewTimeline("reveal")
	tl.Add(Animate(&Counter{}, PropValue, 0, 1, 1, Linear), Sequential())
	vp.SetScroll(1000)
	NewScrollTrigger(vp, TriggerConfig{Trigger: el, Mode: ModeFireOnce, Animation: tl})
	if tl.State() != TimelineRunning {
		t.Errorf("State = %v, want running", tl.State())
	}
}

func TestTriggerKill(t *testing.T) {
	vp, el := newTriggerFixture()
	c := &Counter{}
	st, _ := NewScrollTrigger(vp, TriggerConfig{
		Trigger:   el,
		Start:     "top top",
		End:       "bottom top",
		Animation: Animate(c, PropValue, 0, 100, 1, Linear),
	})
	if vp.ObserverCount() != 1 {
		t.Fatalf("ObserverCount = %d, want 1", vp.ObserverCount())
	}
	st.Kill()
	st.Kill()
	if vp.ObserverCount() != 0 {
		t.Errorf("ObserverCount = %d after Kill, want 0", vp.ObserverCount())
	}
	vp.SetScroll(1200)
	if c.Value != 0 || st.Progress() != 0 {
		t.Error("killed trigger should not react to scrolling")
	}
	st.Refresh()
	if !st.Killed() {
		t.Error("Killed should be true")
	}
}

func TestTriggerMeasuresOnlyOnLayoutChange(t *testing.T) {
	vp, el := newTriggerFixture()
	st, _ := NewScrollTrigger(vp, TriggerConfig{Trigger: el})
	for y := 0.0; y < 1000; y += 50 {
		vp.SetScroll(y)
	}
	if st.measures != 1 {
		t.Errorf("measures = %d after scrolling, want 1", st.measures)
	}

	el.Bounds.Y = 2000
	vp.Refresh()
	if st.measures != 2 {
		t.Errorf("measures = %d after refresh, want 2", st.measures)
	}
	start, _ := st.Range()
	assertNear(t, "start after refresh", start, 1200)

	vp.Resize(1280, 1000)
	start, _ = st.Range()
	assertNear(t, "start after resize", start, 1000)
}

func TestScrubLag(t *testing.T) {
	vp, el := newTriggerFixture()
	c := &Counter{}
	st, _ := NewScrollTrigger(vp, TriggerConfig{
		Trigger:   el,
		Start:     "top top",
		End:       "bottom top",
		Lag:       1,
		Animation: Animate(c, PropValue, 0, 100, 1, Linear),
	})
	vp.SetScroll(1200)
	if st.Applied() != 0 {
		t.Errorf("Applied = %v before any update, want 0", st.Applied())
	}
	st.Update(0.5)
	if a := st.Applied(); a <= 0 || a >= 0.5 {
		t.Errorf("Applied = %v halfway through the lag, want in (0, 0.5)", a)
	}
	st.Update(0.6)
	assertNear(t, "Applied", st.Applied(), 0.5)
	assertClose(t, "Value", c.Value, 50)
}

func TestModeString(t *testing.T) {
	if ModeFireOnce.String() != "fire-once" || ModeScrub.String() != "scrub" {
		t.Error("unexpected mode names")
	}
}
