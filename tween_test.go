package marquee

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// assertClose is assertNear with a tolerance for float32 easing math.
func assertClose(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-5 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- Tween ---

func TestTweenWritesExactEndValue(t *testing.T) {
	c := &Counter{}
	completed := 0
	tw := Animate(c, PropValue, 0, 10, 1, Power3Out).OnComplete(func() { completed++ })
	for range 4 {
		tw.Update(0.3)
	}
	if c.Value != 10 {
		t.Errorf("Value = %v, want exactly 10", c.Value)
	}
	if !tw.Done {
		t.Error("tween should be done")
	}
	if completed != 1 {
		t.Errorf("completed = %d, want 1", completed)
	}
	tw.Update(1)
	if completed != 1 {
		t.Errorf("completed after extra update = %d, want 1", completed)
	}
}

func TestTweenMidpoint(t *testing.T) {
	c := &Counter{}
	tw := Animate(c, PropValue, 0, 100, 2, Linear)
	tw.Update(0.5)
	assertClose(t, "Value", c.Value, 25)
	assertNear(t, "Progress", tw.Progress(), 0.25)
}

func TestTweenZeroDurationSnaps(t *testing.T) {
	c := &Counter{}
	completed := 0
	tw := Animate(c, PropValue, 0, 5, 0, nil).OnComplete(func() { completed++ })
	tw.Update(0)
	if c.Value != 5 {
		t.Errorf("Value = %v, want 5", c.Value)
	}
	if !tw.Done || completed != 1 {
		t.Errorf("Done = %v, completed = %d, want true, 1", tw.Done, completed)
	}
	if tw.Progress() != 1 {
		t.Errorf("Progress = %v, want 1", tw.Progress())
	}
}

func TestTweenNegativeDurationIsZero(t *testing.T) {
	tw := Animate(&Counter{}, PropValue, 0, 1, -3, nil)
	if tw.Duration() != 0 {
		t.Errorf("Duration = %v, want 0", tw.Duration())
	}
}

func TestTweenCancelSuppressesCompletion(t *testing.T) {
	c := &Counter{}
	completed := false
	tw := Animate(c, PropValue, 0, 10, 1, Linear).OnComplete(func() { completed = true })
	tw.Update(0.5)
	tw.Cancel()
	tw.Cancel()
	tw.Update(1)
	if completed {
		t.Error("OnComplete fired after Cancel")
	}
	if !tw.Cancelled() {
		t.Error("Cancelled should be true")
	}
	assertClose(t, "Value", c.Value, 5)
}

func TestToResolvesStartOnFirstWrite(t *testing.T) {
	e := NewElement("e", "")
	e.SetProperty(PropOpacity, 0.5)
	tw := To(e, PropOpacity, 1, 1, Linear)
	e.SetProperty(PropOpacity, 0.2)
	tw.Update(0.5)
	assertClose(t, "opacity", e.Property(PropOpacity), 0.6)
}

func TestTweenDisposedTargetStops(t *testing.T) {
	e := NewElement("e", "")
	writes := 0
	tw := Animate(e, PropY, 0, 10, 1, Linear).OnUpdate(func(float64) { writes++ })
	e.Dispose()
	tw.Update(0.5)
	if !tw.Done {
		t.Error("tween on a disposed element should finish")
	}
	if writes != 0 {
		t.Errorf("writes = %d, want 0", writes)
	}
}

func TestTweenNilTargets(t *testing.T) {
	var el *Element
	for _, target := range []Target{nil, el, (*Counter)(nil), (*Odometer)(nil)} {
		tw := Animate(target, PropValue, 0, 1, 1, Linear)
		tw.Update(0.5)
		if !tw.Done {
			t.Errorf("tween on %T nil target should finish", target)
		}
	}
}

func TestTweenOnUpdateReceivesValue(t *testing.T) {
	var got []float64
	tw := Animate(&Counter{}, PropValue, 0, 4, 1, Linear).OnUpdate(func(v float64) { got = append(got, v) })
	tw.Update(0.5)
	tw.Update(0.5)
	if len(got) != 2 || got[1] != 4 {
		t.Errorf("updates = %v, want two ending at 4", got)
	}
	if tw.Value() != 4 {
		t.Errorf("Value = %v, want 4", tw.Value())
	}
}

// --- TweenGroup ---

func TestTweenGroupLockstep(t *testing.T) {
	e := NewElement("e", "")
	completed := 0
	g := NewTweenGroup(e, 1, Linear, FromTo(PropY, 20, 0), FromTo(PropOpacity, 0, 1)).
		OnComplete(func() { completed++ })
	g.Update(0.5)
	assertClose(t, "y", e.Property(PropY), 10)
	assertClose(t, "opacity", e.Property(PropOpacity), 0.5)
	g.Update(0.5)
	if e.Property(PropY) != 0 || e.Property(PropOpacity) != 1 {
		t.Errorf("end = (%v, %v), want (0, 1)", e.Property(PropY), e.Property(PropOpacity))
	}
	if !g.Done || completed != 1 {
		t.Errorf("Done = %v, completed = %d", g.Done, completed)
	}
	if len(g.Tweens()) != 2 {
		t.Errorf("Tweens = %d, want 2", len(g.Tweens()))
	}
}

func TestTweenGroupCancel(t *testing.T) {
	e := NewElement("e", "")
	g := NewTweenGroup(e, 1, Linear, FromTo(PropY, 0, 10))
	g.Update(0.2)
	g.Cancel()
	g.Update(1)
	assertClose(t, "y", e.Property(PropY), 2)
	for _, tw := range g.Tweens() {
		if !tw.Cancelled() {
			t.Error("every tween should be cancelled")
		}
	}
}

func TestTweenGroupDisposedTarget(t *testing.T) {
	e := NewElement("e", "")
	g := NewTweenGroup(e, 1, Linear, FromTo(PropY, 0, 10))
	e.Dispose()
	g.Update(0.5)
	if !g.Done {
		t.Error("group on a disposed element should finish")
	}
}

// --- Curve ---

func TestCurve(t *testing.T) {
	assertNear(t, "Linear(0.5)", Curve(Linear, 0.5), 0.5)
	assertNear(t, "nil(0.25)", Curve(nil, 0.25), 0.25)
	assertNear(t, "clamp low", Curve(Power3Out, -1), 0)
	assertNear(t, "clamp high", Curve(Power3Out, 2), 1)
	assertClose(t, "Power3Out(0.5)", Curve(Power3Out, 0.5), 0.875)
	assertClose(t, "Power2In(0.5)", Curve(Power2In, 0.5), 0.25)
	assertClose(t, "Power1Out(0.5)", Curve(Power1Out, 0.5), 0.75)
	assertClose(t, "Power4InOut(0.5)", Curve(Power4InOut, 0.5), 0.5)
}

func TestCurvesEndpoints(t *testing.T) {
	for _, fn := range []struct {
		name string
		f    func(float64) float64
	}{
		{"Power1Out", func(x float64) float64 { return Curve(Power1Out, x) }},
		{"Power2In", func(x float64) float64 { return Curve(Power2In, x) }},
		{"Power2InOut", func(x float64) float64 { return Curve(Power2InOut, x) }},
		{"Power3Out", func(x float64) float64 { return Curve(Power3Out, x) }},
		{"Power3InOut", func(x float64) float64 { return Curve(Power3InOut, x) }},
		{"Power4InOut", func(x float64) float64 { return Curve(Power4InOut, x) }},
	} {
		if fn.f(0) != 0 || fn.f(1) != 1 {
			t.Errorf("%s endpoints = (%v, %v), want (0, 1)", fn.name, fn.f(0), fn.f(1))
		}
		prev := 0.0
		for i := 1; i <= 20; i++ {
			v := fn.f(float64(i) / 20)
			if v < prev-1e-6 {
				t.Errorf("%s not monotonic at %d/20", fn.name, i)
			}
			prev = v
		}
	}
}
