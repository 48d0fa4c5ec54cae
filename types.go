package marquee

import "fmt"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// The core never reads it; hosts use it when drawing elements.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// Rect is an axis-aligned rectangle in document space. The origin is the
// top-left of the page, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Bottom returns the Y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Property identifies one animatable channel of a Target.
type Property uint8

const (
	PropOpacity     Property = iota // 0 (transparent) to 1 (opaque)
	PropX                           // horizontal offset in px
	PropY                           // vertical offset in px
	PropXPercent                    // horizontal offset as percent of own width
	PropYPercent                    // vertical offset as percent of own height
	PropScale                       // uniform scale
	PropScaleX                      // horizontal scale, multiplied with PropScale
	PropScaleY                      // vertical scale, multiplied with PropScale
	PropInsetX                      // clip inset from left and right, percent of width
	PropInsetY                      // clip inset from top and bottom, percent of height
	PropInsetBottom                 // clip inset from the bottom only, percent of height
	PropRadius                      // clip corner radius in px
	PropValue                       // synthetic scalar for counters and other non-visual state
	numProperties
)

var propertyNames = [numProperties]string{
	"opacity", "x", "y", "xPercent", "yPercent", "scale", "scaleX", "scaleY",
	"insetX", "insetY", "insetBottom", "radius", "value",
}

// String returns the property's name.
func (p Property) String() string {
	if p < numProperties {
		return propertyNames[p]
	}
	return fmt.Sprintf("Property(%d)", uint8(p))
}

// Default returns the value a property has before anything writes it.
func (p Property) Default() float64 {
	switch p {
	case PropOpacity, PropScale, PropScaleX, PropScaleY:
		return 1
	}
	return 0
}

// Target is anything an animation can write to. Elements, the odometer and
// plain counters implement it, which keeps the core independent of any
// particular renderer.
type Target interface {
	SetProperty(p Property, v float64)
}

// PropertyReader is implemented by targets whose current values can be read
// back. Tweens created with To use it to resolve their start value.
type PropertyReader interface {
	Property(p Property) float64
}

// Disposable is implemented by targets that can go away while an animation
// still references them. Animations stop writing once IsDisposed is true.
type Disposable interface {
	IsDisposed() bool
}

// Counter is a synthetic target holding a single value, the equivalent of
// animating a plain object.
type Counter struct {
	Value float64
}

// SetProperty stores v when p is PropValue.
func (c *Counter) SetProperty(p Property, v float64) {
	if p == PropValue {
		c.Value = v
	}
}

// Property returns the counter value for PropValue.
func (c *Counter) Property(p Property) float64 {
	if p == PropValue {
		return c.Value
	}
	return p.Default()
}

// isAbsent reports whether t is missing: a nil interface, a typed nil
// pointer to one of the package's targets, or a disposed target.
func isAbsent(t Target) bool {
	switch v := t.(type) {
	case nil:
		return true
	case *Element:
		return v == nil || v.disposed
	case *Odometer:
		return v == nil
	case *Counter:
		return v == nil
	}
	if d, ok := t.(Disposable); ok {
		return d.IsDisposed()
	}
	return false
}
