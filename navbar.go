package marquee

// NavbarView is the navbar's element subtree: the fixed bar and the
// full-screen mobile menu with its links.
type NavbarView struct {
	Nav   *Element
	Logo  *Element
	Menu  *Element
	Links []*Element
}

// NewNavbarView builds the navbar subtree with one menu link per label.
func NewNavbarView(links ...string) *NavbarView {
	v := &NavbarView{
		Nav:  NewElement("navbar", "navbar"),
		Logo: NewElement("logo", ""),
		Menu: NewElement("menu", "menu"),
	}
	v.Nav.Fixed = true
	v.Menu.Fixed = true
	v.Menu.Clip = true
	v.Logo.Text = "LEAGUE 1V1"
	v.Logo.Color = ColorWhite
	v.Menu.Color = Color{0.96, 0.96, 0.94, 1}
	v.Nav.AddChild(v.Logo)
	for _, l := range links {
		link := NewElement("menu-link-"+l, "menu-link")
		link.Text = l
		link.Color = Color{0.07, 0.07, 0.07, 1}
		v.Links = append(v.Links, link)
		v.Menu.AddChild(link)
	}
	return v
}

// Layout sizes the bar and menu to the viewport.
func (v *NavbarView) Layout(width, height float64) {
	v.Nav.Bounds = Rect{Width: width, Height: 72}
	v.Logo.Bounds = Rect{X: 24, Y: 20, Width: 160, Height: 32}
	v.Menu.Bounds = Rect{Width: width, Height: height}
	const linkH, gap = 56.0, 32.0
	total := float64(len(v.Links))*linkH + float64(max(len(v.Links)-1, 0))*gap
	y := (height - total) / 2
	for _, l := range v.Links {
		l.Bounds = Rect{X: width/2 - 120, Y: y, Width: 240, Height: linkH}
		y += linkH + gap
	}
}

// Navbar stays hidden until the page is ready, then slides in. It tracks a
// scrolled state (scroll offset past a threshold) and animates the mobile
// menu open and closed.
type Navbar struct {
	view      *NavbarView
	threshold float64

	page     *Page
	scope    *Scope
	entrance *Timeline
	menuTL   *Timeline
	scrolled bool
	menuOpen bool

	// OnScrolledChange, when set, is called when the scrolled state flips.
	OnScrolledChange func(scrolled bool)
}

// NewNavbar creates a navbar over view. threshold is the scroll offset in px
// past which Scrolled reports true.
func NewNavbar(view *NavbarView, threshold float64) *Navbar {
	return &Navbar{view: view, threshold: threshold}
}

// Name implements Named.
func (n *Navbar) Name() string { return "navbar" }

// Mount hides the bar, observes scrolling and waits for the ready signal.
func (n *Navbar) Mount(p *Page) {
	n.page = p
	n.scope = NewScope(p, "navbar")
	n.menuOpen = false
	n.entrance = nil
	n.menuTL = nil

	n.view.Nav.Set(ToValue(PropY, -40), ToValue(PropOpacity, 0))
	n.view.Menu.Set(ToValue(PropInsetBottom, 100))

	n.setScrolled(p.Viewport().ScrollY() > n.threshold)
	n.scope.Observe(func(ev ViewportEvent) {
		n.setScrolled(p.Viewport().ScrollY() > n.threshold)
	})

	n.scope.OnReady(n.enter)
}

func (n *Navbar) enter() {
	n.entrance = n.scope.Timeline("navbar-entrance").Delay(0.2)
	n.entrance.FromTo(n.view.Nav, 0.8, Power3Out, At(0),
		FromTo(PropY, -40, 0), FromTo(PropOpacity, 0, 1))
	n.entrance.Play()
}

func (n *Navbar) setScrolled(s bool) {
	if s == n.scrolled {
		return
	}
	n.scrolled = s
	if n.OnScrolledChange != nil {
		n.OnScrolledChange(s)
	}
}

// Scrolled reports whether the page is scrolled past the threshold.
func (n *Navbar) Scrolled() bool { return n.scrolled }

// MenuOpen reports whether the menu is open or opening.
func (n *Navbar) MenuOpen() bool { return n.menuOpen }

// Entrance returns the entrance timeline, or nil before the page is ready.
func (n *Navbar) Entrance() *Timeline { return n.entrance }

// MenuTimeline returns the timeline of the last menu toggle, or nil.
func (n *Navbar) MenuTimeline() *Timeline { return n.menuTL }

// ToggleMenu opens a closed menu or closes an open one. A toggle kills any
// menu animation still in flight.
func (n *Navbar) ToggleMenu() {
	n.SetMenuOpen(!n.menuOpen)
}

// SetMenuOpen animates the menu to the given state. No-op when unmounted.
func (n *Navbar) SetMenuOpen(open bool) {
	if n.scope == nil || n.scope.Reverted() {
		return
	}
	if n.menuTL != nil {
		n.menuTL.Kill()
	}
	n.menuOpen = open
	v := n.view
	if open {
		tl := n.scope.Timeline("menu-open")
		tl.FromTo(v.Menu, 0.6, Power4InOut, At(0), ToValue(PropInsetBottom, 0))
		links := Stagger(targets(v.Links), 0.06, 0.5, Power3Out,
			FromTo(PropY, 60, 0), FromTo(PropOpacity, 0, 1))
		tl.Add(links, At(0.3))
		n.menuTL = tl
	} else {
		tl := n.scope.Timeline("menu-close")
		tl.FromTo(v.Menu, 0.5, Power4InOut, At(0), ToValue(PropInsetBottom, 100))
		n.menuTL = tl
	}
	n.menuTL.Play()
}

// Update advances the entrance and menu timelines.
func (n *Navbar) Update(dt float64) {
	if n.scope != nil {
		n.scope.Update(dt)
	}
}

// Unmount kills every navbar animation and stops observing the viewport.
func (n *Navbar) Unmount() {
	if n.scope != nil {
		n.scope.Revert()
	}
}
