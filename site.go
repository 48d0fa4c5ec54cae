package marquee

// ContactView is the static contact section. It has no animation.
type ContactView struct {
	Section *Element
	Heading *Element
	Form    *Element
}

// NewContactView builds the contact subtree.
func NewContactView() *ContactView {
	v := &ContactView{
		Section: NewElement("contact", "section"),
		Heading: NewElement("contact-heading", ""),
		Form:    NewElement("contact-form", ""),
	}
	v.Section.Color = Color{0.96, 0.96, 0.94, 1}
	v.Heading.Text = "GET IN THE BRACKET"
	v.Heading.Color = Color{0.07, 0.07, 0.07, 1}
	v.Form.Color = Color{0.07, 0.07, 0.07, 0.08}
	v.Section.AddChild(v.Heading)
	v.Section.AddChild(v.Form)
	return v
}

// Layout places the section at y and returns its height.
func (v *ContactView) Layout(y, width, height float64) float64 {
	const pad = 40.0
	h := max(height*0.8, 480)
	v.Section.Bounds = Rect{Y: y, Width: width, Height: h}
	v.Heading.Bounds = Rect{X: pad, Y: y + 120, Width: width - 2*pad, Height: 64}
	v.Form.Bounds = Rect{X: pad, Y: y + 220, Width: min(width-2*pad, 560), Height: h - 300}
	return h
}

// Site is the assembled marketing page: the views of every section and the
// components animating them, all mounted on one Page.
type Site struct {
	Page   *Page
	Config SiteConfig

	PreloaderView *PreloaderView
	NavbarView    *NavbarView
	HeroView      *HeroView
	AboutView     *AboutView
	ContactView   *ContactView
	FooterView    *FooterView

	Preloader *Preloader
	Navbar    *Navbar
	Hero      *Hero
	About     *About
	Footer    *Footer
}

// BuildSite creates the element tree on p, installs the layout and mounts
// every section. The preloader's completion flips the page's ready latch,
// which starts the navbar and hero entrances.
func BuildSite(p *Page, cfg SiteConfig) *Site {
	s := &Site{
		Page:          p,
		Config:        cfg,
		PreloaderView: NewPreloaderView(cfg.Preloader),
		NavbarView:    NewNavbarView("ABOUT", "CONTACT"),
		HeroView:      NewHeroView(),
		AboutView:     NewAboutView(DefaultPillars),
		ContactView:   NewContactView(),
		FooterView:    NewFooterView("Instagram", "YouTube", "TikTok", "X"),
	}

	root := p.Root()
	root.AddChild(s.HeroView.Section)
	root.AddChild(s.AboutView.Section)
	root.AddChild(s.ContactView.Section)
	root.AddChild(s.FooterView.Footer)
	// fixed layers last so hosts draw them on top
	root.AddChild(s.NavbarView.Menu)
	root.AddChild(s.NavbarView.Nav)
	root.AddChild(s.PreloaderView.Overlay)

	p.SetLayout(s.layout)

	if cfg.SmoothScroll {
		p.Viewport().EnableSmoothScroll(cfg.TPS, cfg.SpringFreq, cfg.SpringDamp)
	}

	s.Preloader = NewPreloader(s.PreloaderView, cfg.Preloader, p.MarkReady)
	s.Navbar = NewNavbar(s.NavbarView, cfg.NavScrollThreshold)
	s.Hero = NewHero(s.HeroView)
	s.About = NewAbout(s.AboutView)
	s.Footer = NewFooter(s.FooterView)

	if cfg.SkipPreloader {
		s.PreloaderView.Overlay.SetProperty(PropOpacity, 0)
		s.PreloaderView.Overlay.PointerEvents = false
	} else {
		p.Mount(s.Preloader)
	}
	p.Mount(s.Navbar)
	p.Mount(s.Hero)
	p.Mount(s.About)
	p.Mount(s.Footer)
	if cfg.SkipPreloader {
		p.MarkReady()
	}
	return s
}

// layout stacks the sections top to bottom and sizes the fixed layers.
func (s *Site) layout(root *Element, width, height float64) float64 {
	s.PreloaderView.Layout(width, height)
	s.NavbarView.Layout(width, height)
	y := 0.0
	y += s.HeroView.Layout(y, width, height)
	y += s.AboutView.Layout(y, width, height)
	y += s.ContactView.Layout(y, width, height)
	y += s.FooterView.Layout(y, width, height)
	return y
}
