package marquee

import (
	"fmt"
	"time"
)

// Component is a page section with a mount lifetime. Mount binds its
// animations (usually through a Scope); Unmount tears every one of them
// down. Update is called once per frame while mounted.
type Component interface {
	Mount(p *Page)
	Update(dt float64)
	Unmount()
}

// Named is implemented by components that report a name for lifecycle
// events and debug output.
type Named interface {
	Name() string
}

// LayoutFunc positions the element tree for a viewport of the given size
// (setting Bounds in document space) and returns the document height.
type LayoutFunc func(root *Element, width, height float64) (documentHeight float64)

// Page is the top-level object that owns the element tree, the viewport,
// the ready latch and the mounted components. It is single-threaded: the
// host calls Update once per tick with the frame's time step.
type Page struct {
	root     *Element
	viewport *Viewport
	ready    Latch
	clock    float64

	components []Component
	updating   []Component // per-frame snapshot of components
	layout     LayoutFunc

	sink  EventSink
	debug bool

	// Scripted input
	injectQueue []syntheticEvent
	script      *ScriptRunner
}

// NewPage creates a page with an empty root element and a viewport of the
// given size.
func NewPage(width, height float64) *Page {
	root := NewElement("root", "")
	root.Bounds = Rect{Width: width, Height: height}
	return &Page{
		root:     root,
		viewport: NewViewport(width, height),
	}
}

// Root returns the page's root element.
func (p *Page) Root() *Element {
	return p.root
}

// Viewport returns the page's viewport.
func (p *Page) Viewport() *Viewport {
	return p.viewport
}

// Find returns the first element named name, or nil.
func (p *Page) Find(name string) *Element {
	return p.root.Find(name)
}

// Query returns every element whose class is class, in document order.
func (p *Page) Query(class string) []*Element {
	return p.root.Query(class)
}

// Clock returns the seconds of page time advanced by Update.
func (p *Page) Clock() float64 {
	return p.clock
}

// Ready reports whether the preloader has finished.
func (p *Page) Ready() bool {
	return p.ready.IsSet()
}

// ReadyLatch returns the page's ready signal for subscription.
func (p *Page) ReadyLatch() *Latch {
	return &p.ready
}

// MarkReady flips the ready latch. Only the first call has any effect.
func (p *Page) MarkReady() {
	if p.ready.Set() {
		p.debugLog("ready")
		p.emit(EventReady, "page", "ready")
	}
}

// SetEventSink sets the optional lifecycle event sink.
func (p *Page) SetEventSink(sink EventSink) {
	p.sink = sink
}

// Mount mounts c and adds it to the per-frame update list. Mounting a
// component twice is a no-op.
func (p *Page) Mount(c Component) {
	for _, m := range p.components {
		if m == c {
			return
		}
	}
	p.components = append(p.components, c)
	c.Mount(p)
	name := componentName(c)
	p.debugLog("mounted %s (observers: %d)", name, p.viewport.ObserverCount())
	p.emit(EventMounted, name, name)
	if p.debug {
		p.debugCheckObservers()
	}
}

// Unmount unmounts c and removes it from the update list. No-op if c is
// not mounted.
func (p *Page) Unmount(c Component) {
	for i, m := range p.components {
		if m != c {
			continue
		}
		copy(p.components[i:], p.components[i+1:])
		p.components[len(p.components)-1] = nil
		p.components = p.components[:len(p.components)-1]
		c.Unmount()
		name := componentName(c)
		p.debugLog("unmounted %s (observers: %d)", name, p.viewport.ObserverCount())
		p.emit(EventUnmounted, name, name)
		return
	}
}

func (p *Page) isMounted(c Component) bool {
	for _, m := range p.components {
		if m == c {
			return true
		}
	}
	return false
}

// UnmountAll unmounts every component in reverse mount order.
func (p *Page) UnmountAll() {
	for len(p.components) > 0 {
		p.Unmount(p.components[len(p.components)-1])
	}
}

// Components returns the mounted components. The returned slice MUST NOT
// be mutated.
func (p *Page) Components() []Component {
	return p.components
}

// Update advances the page by dt seconds: scripted input, then viewport
// scrolling, then every mounted component in mount order.
func (p *Page) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	var t0 time.Time
	if p.debug {
		t0 = time.Now()
	}

	p.clock += dt
	if p.script != nil {
		p.script.step(p)
	}
	p.processInjectedInput()
	p.viewport.update(dt)
	// a component may unmount itself or another one from its Update
	p.updating = append(p.updating[:0], p.components...)
	for i, c := range p.updating {
		p.updating[i] = nil
		if p.isMounted(c) {
			c.Update(dt)
		}
	}

	if p.debug {
		if d := time.Since(t0); d > slowFrame {
			p.debugLog("slow update: %v", d)
		}
	}
}

// slowFrame is the update time above which debug mode logs a warning.
const slowFrame = 4 * time.Millisecond

// SetLayout installs the layout function, runs it and asks every trigger
// to re-measure.
func (p *Page) SetLayout(fn LayoutFunc) {
	p.layout = fn
	p.relayout()
	p.viewport.Refresh()
}

// Resize changes the viewport size, re-runs layout and notifies observers.
func (p *Page) Resize(width, height float64) {
	if width == p.viewport.Width() && height == p.viewport.Height() {
		return
	}
	p.viewport.setSize(width, height)
	p.relayout()
	p.viewport.notify(ViewportResize)
}

// Refresh re-runs layout and asks every trigger to re-measure, for content
// that changed size without a viewport resize.
func (p *Page) Refresh() {
	p.relayout()
	p.viewport.Refresh()
}

func (p *Page) relayout() {
	w, h := p.viewport.Width(), p.viewport.Height()
	p.root.Bounds = Rect{Width: w, Height: h}
	if p.layout == nil {
		return
	}
	doc := p.layout(p.root, w, h)
	p.root.Bounds.Height = doc
	p.viewport.DocumentHeight = doc
	p.viewport.setScroll(p.viewport.ScrollY())
}

func (p *Page) emit(kind LifecycleKind, scope, name string) {
	if p.sink == nil {
		return
	}
	p.sink.EmitEvent(LifecycleEvent{Kind: kind, Scope: scope, Name: name, Time: p.clock})
}

func componentName(c Component) string {
	if n, ok := c.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", c)
}
