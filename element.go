package marquee

// elementIDCounter is a plain counter (no atomic, the page is single-threaded).
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is the renderer-agnostic animation target that makes up a page.
// A single flat struct is used for every kind of element; hosts decide how
// to draw one from its Bounds, Color, Text and animated properties.
type Element struct {
	// Identity
	ID    uint32
	Name  string
	Class string

	// Hierarchy
	Parent   *Element
	children []*Element

	// Layout box in document space. Scroll triggers read it, hosts draw it.
	Bounds Rect

	// Presentation hints for hosts. An element with Text is drawn as text
	// in Color; otherwise a non-transparent Color fills its box.
	Color Color
	Text  string

	// PointerEvents reports whether the element accepts pointer input.
	PointerEvents bool

	// Fixed elements are positioned relative to the viewport, not the
	// document, and do not move with the scroll offset.
	Fixed bool

	// Clip hides descendants outside this element's box.
	Clip bool

	// OnChange, when set, is called after every property write.
	OnChange func(p Property, v float64)

	props    [numProperties]float64
	disposed bool
}

// NewElement creates an element with every property at its default value.
func NewElement(name, class string) *Element {
	e := &Element{
		ID:            nextElementID(),
		Name:          name,
		Class:         class,
		PointerEvents: true,
	}
	for p := Property(0); p < numProperties; p++ {
		e.props[p] = p.Default()
	}
	return e
}

// SetProperty writes v to p. Writes to a disposed element are dropped.
func (e *Element) SetProperty(p Property, v float64) {
	if e.disposed || p >= numProperties {
		return
	}
	e.props[p] = v
	if e.OnChange != nil {
		e.OnChange(p, v)
	}
}

// Property returns the current value of p.
func (e *Element) Property(p Property) float64 {
	if p >= numProperties {
		return 0
	}
	return e.props[p]
}

// Set writes each change's To value immediately, the equivalent of an
// instant style assignment before any animation runs.
func (e *Element) Set(changes ...Change) {
	for _, c := range changes {
		e.SetProperty(c.Prop, c.To)
	}
}

// SetFrom writes each change's From value immediately, putting the element
// in the state a FromTo animation starts from. Changes built with ToValue
// have no start value and are skipped.
func (e *Element) SetFrom(changes ...Change) {
	for _, c := range changes {
		if !c.fromCurrent {
			e.SetProperty(c.Prop, c.From)
		}
	}
}

// WorldOpacity returns the element's opacity multiplied by all ancestors'.
func (e *Element) WorldOpacity() float64 {
	a := 1.0
	for n := e; n != nil; n = n.Parent {
		a *= n.props[PropOpacity]
	}
	return a
}

// Layout returns the element's layout box and whether it is still mounted.
func (e *Element) Layout() (Rect, bool) {
	if e == nil || e.disposed {
		return Rect{}, false
	}
	return e.Bounds, true
}

// --- Tree manipulation ---

// AddChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this element (cycle).
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("marquee: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(e, "AddChild")
		debugCheckDisposed(child, "AddChild")
	}
	if isAncestor(child, e) {
		panic("marquee: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("marquee: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this element from its parent.
// No-op if this element has no parent.
func (e *Element) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// Find returns the first element named name in this subtree (depth-first,
// including e itself), or nil.
func (e *Element) Find(name string) *Element {
	if e == nil {
		return nil
	}
	if e.Name == name {
		return e
	}
	for _, c := range e.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Query returns every element in this subtree whose Class is class, in
// document (depth-first) order. An empty result is not an error.
func (e *Element) Query(class string) []*Element {
	var out []*Element
	e.query(class, &out)
	return out
}

func (e *Element) query(class string, out *[]*Element) {
	if e == nil {
		return
	}
	if e.Class == class {
		*out = append(*out, e)
	}
	for _, c := range e.children {
		c.query(class, out)
	}
}

// --- Disposal ---

// Dispose removes this element from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	e.ID = 0
	for _, child := range e.children {
		child.Parent = nil
		child.dispose()
	}
	e.children = nil
	e.Parent = nil
	e.OnChange = nil
}

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Element) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}

// setFrom calls SetFrom on every non-nil element.
func setFrom(els []*Element, changes ...Change) {
	for _, el := range els {
		if el != nil {
			el.SetFrom(changes...)
		}
	}
}

// targets converts elements to the Target interface, keeping nil entries nil.
func targets(els []*Element) []Target {
	out := make([]Target, len(els))
	for i, el := range els {
		if el != nil {
			out[i] = el
		}
	}
	return out
}
