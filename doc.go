// Package marquee is a scroll-driven animation engine for single-page
// marketing sites, with the League 1V1 landing page built on top of it.
//
// Marquee provides tweens and timelines, scroll triggers bound to a virtual
// viewport, a component lifecycle with scoped cleanup, a one-shot readiness
// latch and an odometer counter. It does not draw anything itself: every
// animated value lands on an [Element], and a host (see the preview package
// for an [Ebitengine] window, or examples/terminal for a tcell screen) reads
// the element tree each frame.
//
// # Quick start
//
//	page := marquee.NewPage(1280, 720)
//	site := marquee.BuildSite(page, marquee.DefaultSiteConfig())
//	_ = site
//
//	// once per frame
//	page.Update(1.0 / 60)
//
// # Timelines
//
// A [Timeline] sequences tweens on a time axis. Entries are placed with a
// [Position]: the end of the timeline by default, "-=0.3" to overlap the
// previous entry, or an absolute offset.
//
//	tl := marquee.NewTimeline("reveal")
//	tl.FromTo(title, 0.8, ease.OutCubic, marquee.Sequential(),
//		marquee.ToValue(marquee.PropYPercent, 0))
//	tl.Play()
//
// Timelines advance only from [Page.Update], so the same frames always
// produce the same property values.
//
// # Scroll triggers
//
// A [ScrollTrigger] maps the viewport's scroll offset onto a trigger
// element's layout box. In fire-once mode it plays an animation the first
// time the start boundary is crossed; in scrub mode it seeks the animation
// to the scroll progress, optionally smoothed by a lag.
//
// # Components
//
// Sections implement [Component] and are mounted on a [Page]. Everything a
// component creates through its [Scope] is killed and unbound when the
// scope is reverted, so unmounting leaves nothing running.
//
// # Testing
//
// [Page.InjectScroll], [Page.InjectWheel] and [Page.InjectResize] queue
// synthetic input consumed one event per frame. [LoadScript] reads a JSON
// script of such events for scripted runs.
//
// [Ebitengine]: https://ebitengine.org
package marquee
