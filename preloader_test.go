package marquee

import (
	"math"
	"testing"
)

const frame = 1.0 / 60

func newPreloaderFixture(onComplete func(p *Page)) (*Page, *Preloader) {
	p := NewPage(1280, 720)
	cfg := DefaultPreloaderConfig()
	view := NewPreloaderView(cfg)
	p.Root().AddChild(view.Overlay)
	p.SetLayout(func(root *Element, w, h float64) float64 {
		view.Layout(w, h)
		return 4 * h
	})
	pl := NewPreloader(view, cfg, func() { onComplete(p) })
	return p, pl
}

func advance(p *Page, seconds float64) {
	for n := int(math.Round(seconds / frame)); n > 0; n-- {
		p.Update(frame)
	}
}

func TestPreloaderTimings(t *testing.T) {
	p, pl := newPreloaderFixture(func(*Page) {})
	p.Mount(pl)
	tl := pl.Timeline()
	assertClose(t, "Duration", tl.Duration(), 3.88)
	assertClose(t, "counter phase", pl.PhaseStart(PhaseCounter), 0.85)
	assertClose(t, "hold phase", pl.PhaseStart(PhaseHold), 2.65)
	assertClose(t, "exit phase", pl.PhaseStart(PhaseExit), 2.88)
	if pl.PhaseStart(numPhases) != 0 {
		t.Error("unknown phase should start at 0")
	}
	if PhaseExit.String() != "exit" {
		t.Errorf("String = %q", PhaseExit.String())
	}
}

func TestPreloaderCompletesOnce(t *testing.T) {
	completed := 0
	p, pl := newPreloaderFixture(func(p *Page) {
		completed++
		p.MarkReady()
	})
	p.Mount(pl)
	if !p.Viewport().Locked() {
		t.Fatal("preloader should lock scrolling")
	}
	p.InjectWheel(200)

	advance(p, 3.8)
	if completed != 0 || pl.Done() {
		t.Fatal("preloader finished early")
	}
	if p.Viewport().ScrollY() != 0 {
		t.Error("wheel input should be ignored during the preloader")
	}

	advance(p, 0.2)
	if completed != 1 || !pl.Done() {
		t.Fatalf("completed = %d, want 1", completed)
	}
	if !p.Ready() {
		t.Error("page should be ready")
	}
	if p.Viewport().Locked() {
		t.Error("scroll lock should be released")
	}
	v := pl.View()
	if v.Overlay.PointerEvents {
		t.Error("overlay should stop taking pointer input")
	}
	if v.CurtainLeft.Property(PropXPercent) != -100 || v.CurtainRight.Property(PropXPercent) != 100 {
		t.Error("curtains should be fully split")
	}
	if v.Content.Property(PropOpacity) != 0 {
		t.Error("content should be faded out")
	}

	advance(p, 2)
	if completed != 1 {
		t.Errorf("completed = %d after extra frames, want 1", completed)
	}
}

func TestPreloaderCounter(t *testing.T) {
	p, pl := newPreloaderFixture(func(*Page) {})
	var ones []int
	pl.OnDigit = func(col, digit int) {
		if col == ColumnOnes {
			ones = append(ones, digit)
		}
	}
	p.Mount(pl)
	prev := 0.0
	for range 240 {
		p.Update(frame)
		v := pl.Odometer().Value()
		if v < prev {
			t.Fatalf("counter went backwards: %v < %v", v, prev)
		}
		prev = v
	}
	if pl.Odometer().Digits() != (Digits{1, 0, 0}) {
		t.Errorf("Digits = %+v, want 100", pl.Odometer().Digits())
	}
	strips := pl.View().Strips
	assertNear(t, "hundreds strip", strips[ColumnHundreds].Property(PropYPercent), -10)
	assertNear(t, "tens strip", strips[ColumnTens].Property(PropYPercent), 0)
	assertNear(t, "ones strip", strips[ColumnOnes].Property(PropYPercent), 0)
	if len(ones) == 0 || ones[len(ones)-1] != 0 {
		t.Errorf("ones digits = %v, want ending at 0", ones)
	}
	if pl.View().Progress.Property(PropScaleX) != 1 {
		t.Error("progress bar should be full")
	}
}

func TestPreloaderFlashIsFaint(t *testing.T) {
	p, pl := newPreloaderFixture(func(*Page) {})
	p.Mount(pl)
	peak := 0.0
	for range 240 {
		p.Update(frame)
		peak = max(peak, pl.View().Flash.Property(PropOpacity))
	}
	if peak <= 0 || peak > DefaultPreloaderConfig().FlashOpacity+1e-9 {
		t.Errorf("flash peak = %v, want in (0, %v]", peak, DefaultPreloaderConfig().FlashOpacity)
	}
	if pl.View().Flash.Property(PropOpacity) != 0 {
		t.Error("flash should end transparent")
	}
}

func TestPreloaderUnmountEarly(t *testing.T) {
	completed := 0
	p, pl := newPreloaderFixture(func(*Page) { completed++ })
	p.Mount(pl)
	advance(p, 1)
	p.Unmount(pl)
	if p.Viewport().Locked() {
		t.Error("Unmount should release the scroll lock")
	}
	if pl.Timeline().State() != TimelineKilled {
		t.Errorf("State = %v, want killed", pl.Timeline().State())
	}
	value := pl.Odometer().Value()
	advance(p, 4)
	if completed != 0 {
		t.Error("onComplete ran after Unmount")
	}
	if pl.Odometer().Value() != value {
		t.Error("counter moved after Unmount")
	}
}

func TestPreloaderRemount(t *testing.T) {
	completed := 0
	p, pl := newPreloaderFixture(func(*Page) { completed++ })
	p.Mount(pl)
	advance(p, 1)
	p.Unmount(pl)
	p.Mount(pl)
	if pl.Odometer().Value() != 0 || pl.View().CurtainLeft.Property(PropXPercent) != 0 {
		t.Error("remount should reset the view")
	}
	advance(p, 4)
	if completed != 1 {
		t.Errorf("completed = %d, want 1", completed)
	}
}

func TestPreloaderViewOneCharPerLetter(t *testing.T) {
	cfg := DefaultPreloaderConfig()
	cfg.Brand = "AB"
	view := NewPreloaderView(cfg)
	if len(view.Chars) != 2 || view.Chars[1].Text != "B" {
		t.Errorf("Chars = %d, want one per brand letter", len(view.Chars))
	}
}
