package marquee

import "github.com/tanema/gween/ease"

// Named curves matching the motion vocabulary of the site. Each is a gween
// easing function; Curve evaluates one as a plain [0,1] -> [0,1] mapping.
var (
	Linear      ease.TweenFunc = ease.Linear
	Power1Out   ease.TweenFunc = ease.OutQuad    // default for untuned reveals
	Power2In    ease.TweenFunc = ease.InQuad     // content fade before exit
	Power2InOut ease.TweenFunc = ease.InOutQuad  // counter roll-up and progress bar
	Power3Out   ease.TweenFunc = ease.OutCubic   // fast start, slow settle
	Power3InOut ease.TweenFunc = ease.InOutCubic // underline scale-in
	Power4InOut ease.TweenFunc = ease.InOutQuart // slow-fast-slow, curtains and menu
)

// Curve evaluates fn at t in [0, 1] and returns the eased fraction. t is
// clamped first; a nil fn is treated as Linear.
func Curve(fn ease.TweenFunc, t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	if fn == nil {
		return t
	}
	return float64(fn(float32(t), 0, 1, 1))
}
