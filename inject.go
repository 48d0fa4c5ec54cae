package marquee

// syntheticEventKind identifies a kind of injected input.
type syntheticEventKind uint8

const (
	injectScroll syntheticEventKind = iota
	injectWheel
	injectResize
	injectRefresh
)

// syntheticEvent represents a single injected input event. Injected scroll
// goes through the same viewport paths as real input: wheel input respects
// the scroll lock, programmatic scrolling does not.
type syntheticEvent struct {
	kind          syntheticEventKind
	y             float64
	width, height float64
}

// InjectScroll queues a programmatic scroll to offset y. The event is
// consumed on the next frame's Update.
func (p *Page) InjectScroll(y float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectScroll, y: y})
}

// InjectWheel queues dy px of user wheel input. Ignored while the viewport
// is locked, exactly like real wheel input.
func (p *Page) InjectWheel(dy float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectWheel, y: dy})
}

// InjectResize queues a viewport resize.
func (p *Page) InjectResize(width, height float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectResize, width: width, height: height})
}

// InjectRefresh queues a layout refresh.
func (p *Page) InjectRefresh() {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectRefresh})
}

// InjectScrollSweep queues a sweep from offset from to offset to, linearly
// interpolated over frames frames (the first at from, the last at to).
// Minimum frames is 2.
func (p *Page) InjectScrollSweep(from, to float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		p.InjectScroll(from + (to-from)*t)
	}
}

// Pending returns the number of queued injected events.
func (p *Page) Pending() int {
	return len(p.injectQueue)
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed.
func (p *Page) processInjectedInput() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	switch evt.kind {
	case injectScroll:
		p.viewport.SetScroll(evt.y)
	case injectWheel:
		p.viewport.Wheel(evt.y)
	case injectResize:
		p.Resize(evt.width, evt.height)
	case injectRefresh:
		p.Refresh()
	}
	return true
}
