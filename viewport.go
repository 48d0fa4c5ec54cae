package marquee

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ViewportEvent identifies why viewport observers are being notified.
type ViewportEvent uint8

const (
	ViewportScroll  ViewportEvent = iota // scroll offset changed
	ViewportResize                       // viewport size or page layout changed
	ViewportRefresh                      // explicit request to re-measure layout
)

// smoothSettle is the distance (px) and velocity under which smooth
// scrolling snaps to its target.
const smoothSettle = 0.5

type observer struct {
	fn func(ViewportEvent)
}

// Viewport is the visible window onto the page: its size, the scroll
// offset, the scroll lock, and the observers that react to changes.
// Observers are notified synchronously; handlers must be cheap and safe to
// call at scroll frequency.
type Viewport struct {
	width, height float64
	scrollY       float64

	// DocumentHeight bounds scrolling to [0, DocumentHeight-height] when > 0.
	DocumentHeight float64

	observers []*observer

	scrollTween *gween.Tween

	smooth   bool
	spring   harmonica.Spring
	target   float64
	velocity float64

	locks int
}

// NewViewport creates a viewport of the given size scrolled to the top.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{width: width, height: height}
}

// Width returns the viewport width in px.
func (v *Viewport) Width() float64 { return v.width }

// Height returns the viewport height in px.
func (v *Viewport) Height() float64 { return v.height }

// ScrollY returns the current scroll offset in px.
func (v *Viewport) ScrollY() float64 { return v.scrollY }

// MaxScroll returns the largest reachable scroll offset, or +Inf when the
// document height is unknown.
func (v *Viewport) MaxScroll() float64 {
	if v.DocumentHeight <= 0 {
		return math.Inf(1)
	}
	return math.Max(0, v.DocumentHeight-v.height)
}

// SetScroll moves the scroll offset to y (clamped) immediately, cancelling
// any ScrollTo animation and smooth-scroll momentum. Observers are notified
// if the offset changed. Programmatic scrolling ignores the scroll lock.
func (v *Viewport) SetScroll(y float64) {
	v.scrollTween = nil
	v.velocity = 0
	v.target = v.clampScroll(y)
	v.setScroll(v.target)
}

func (v *Viewport) setScroll(y float64) {
	y = v.clampScroll(y)
	if y == v.scrollY {
		return
	}
	v.scrollY = y
	v.notify(ViewportScroll)
}

// Wheel applies user scroll input of dy px. Ignored while the viewport is
// locked. With smooth scrolling enabled the input moves the spring target
// instead of the offset.
func (v *Viewport) Wheel(dy float64) {
	if v.locks > 0 || dy == 0 {
		return
	}
	v.scrollTween = nil
	if v.smooth {
		v.target = v.clampScroll(v.target + dy)
		return
	}
	v.SetScroll(v.scrollY + dy)
}

// ScrollTo animates the scroll offset to y over duration seconds.
// A non-positive duration jumps immediately.
func (v *Viewport) ScrollTo(y, duration float64, fn ease.TweenFunc) {
	y = v.clampScroll(y)
	if duration <= 0 {
		v.SetScroll(y)
		return
	}
	if fn == nil {
		fn = ease.Linear
	}
	v.scrollTween = gween.New(float32(v.scrollY), float32(y), float32(duration), fn)
	v.target = y
	v.velocity = 0
}

// Scrolling reports whether a ScrollTo animation or smooth scroll is in flight.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil || (v.smooth && v.target != v.scrollY)
}

// EnableSmoothScroll makes Wheel input glide to its target on a damped
// spring stepped once per Update. fps should match the host tick rate.
func (v *Viewport) EnableSmoothScroll(fps int, frequency, damping float64) {
	v.smooth = true
	v.spring = harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)
	v.target = v.scrollY
	v.velocity = 0
}

// DisableSmoothScroll returns to direct Wheel scrolling.
func (v *Viewport) DisableSmoothScroll() {
	v.smooth = false
	v.velocity = 0
	v.target = v.scrollY
}

// Lock blocks user scrolling (Wheel) until the returned release function
// is called. Locks nest; release is idempotent.
func (v *Viewport) Lock() (release func()) {
	v.locks++
	released := false
	return func() {
		if released {
			return
		}
		released = true
		v.locks--
	}
}

// Locked reports whether any scroll lock is held.
func (v *Viewport) Locked() bool {
	return v.locks > 0
}

// Observe registers fn for scroll, resize and refresh notifications and
// returns a function that removes it. The returned function is idempotent.
func (v *Viewport) Observe(fn func(ViewportEvent)) (unobserve func()) {
	o := &observer{fn: fn}
	v.observers = append(v.observers, o)
	return func() {
		if o.fn == nil {
			return
		}
		o.fn = nil
		// rebuild so an in-flight notify keeps iterating its own snapshot
		kept := make([]*observer, 0, len(v.observers))
		for _, other := range v.observers {
			if other != o {
				kept = append(kept, other)
			}
		}
		v.observers = kept
	}
}

// ObserverCount returns the number of registered observers.
func (v *Viewport) ObserverCount() int {
	return len(v.observers)
}

// Refresh asks every observer to re-measure layout.
func (v *Viewport) Refresh() {
	v.notify(ViewportRefresh)
}

// Resize changes the viewport size, re-clamps the scroll offset and
// notifies observers.
func (v *Viewport) Resize(width, height float64) {
	v.setSize(width, height)
	v.notify(ViewportResize)
}

func (v *Viewport) setSize(width, height float64) {
	v.width = width
	v.height = height
	v.scrollY = v.clampScroll(v.scrollY)
	v.target = v.clampScroll(v.target)
}

// update advances ScrollTo animations and smooth scrolling. Called from Page.Update.
func (v *Viewport) update(dt float64) {
	if v.scrollTween != nil {
		val, done := v.scrollTween.Update(float32(dt))
		if done {
			v.scrollTween = nil
			v.setScroll(v.target)
		} else {
			v.setScroll(float64(val))
		}
		return
	}
	if !v.smooth || v.target == v.scrollY {
		return
	}
	pos, vel := v.spring.Update(v.scrollY, v.velocity, v.target)
	if math.Abs(pos-v.target) < smoothSettle && math.Abs(vel) < smoothSettle {
		pos, vel = v.target, 0
	}
	v.velocity = vel
	v.setScroll(pos)
}

func (v *Viewport) clampScroll(y float64) float64 {
	if y < 0 || math.IsNaN(y) {
		return 0
	}
	if m := v.MaxScroll(); y > m {
		return m
	}
	return y
}

func (v *Viewport) notify(ev ViewportEvent) {
	for _, o := range v.observers {
		if fn := o.fn; fn != nil {
			fn(ev)
		}
	}
}
