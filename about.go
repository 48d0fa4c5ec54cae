package marquee

import (
	"fmt"
	"strings"
)

// Manifesto copy, one line per entry.
var manifestoLines = []string{
	"WE DIDN'T BUILD THIS FOR TEAMS.",
	"WE BUILT IT FOR THE ONES WHO",
	"SAY 'RUN IT BACK' AND MEAN IT.",
}

// Pillar is one of the About section's three columns.
type Pillar struct {
	Number, Title, Description string
}

// DefaultPillars is the stock About copy.
var DefaultPillars = []Pillar{
	{"01", "WEIGHT CLASSES", "Fair fights only. You compete against players your size, your build, your speed."},
	{"02", "PURE SKILL", "No screens. No plays. No teammates to bail you out. Just handles, footwork, and heart."},
	{"03", "ONE WINNER", "Every matchup ends with someone walking off the court crowned."},
}

// AboutView is the About section's element subtree: a video diptych with
// overlay labels, a word-by-word manifesto, a description and the pillars.
type AboutView struct {
	Section      *Element
	VideoSection *Element
	Label        *Element
	Videos       [2]*Element
	VideoLabels  []*Element
	Accent       *Element

	Manifesto   *Element
	Words       []*Element
	Description *Element

	Pillars        *Element
	PillarLines    []*Element
	PillarContents []*Element
}

// NewAboutView builds the About subtree for the given pillars.
func NewAboutView(pillars []Pillar) *AboutView {
	v := &AboutView{
		Section:      NewElement("about", "section"),
		VideoSection: NewElement("about-videos", ""),
		Label:        NewElement("about-label", "about-label"),
		Accent:       NewElement("about-accent", ""),
		Manifesto:    NewElement("manifesto", ""),
		Description:  NewElement("about-description", ""),
		Pillars:      NewElement("pillars", ""),
	}
	v.Label.Text = "THE LEAGUE"
	v.Label.Color = colorAccent
	v.Section.Color = Color{0.96, 0.96, 0.94, 1}
	v.Accent.Color = colorAccent
	v.Description.Text = "League 1V1 is basketball stripped to its purest form."
	v.Description.Color = Color{0.1, 0.1, 0.1, 0.6}

	v.Section.AddChild(v.VideoSection)
	v.VideoSection.AddChild(v.Label)
	captions := [2][2]string{{"ALL", "SKILL"}, {"NO", "MERCY"}}
	for i := range v.Videos {
		vid := NewElement(fmt.Sprintf("about-video-%d", i+1), "video")
		vid.Clip = true
		vid.Color = Color{0.15, 0.15, 0.17, 1}
		for _, c := range captions[i] {
			l := NewElement("video-label-"+strings.ToLower(c), "video-label")
			l.Text = c
			l.Color = ColorWhite
			vid.AddChild(l)
			v.VideoLabels = append(v.VideoLabels, l)
		}
		v.VideoSection.AddChild(vid)
		v.Videos[i] = vid
	}
	v.VideoSection.AddChild(v.Accent)

	v.Section.AddChild(v.Manifesto)
	n := 0
	for _, line := range manifestoLines {
		for _, w := range strings.Fields(line) {
			word := NewElement(fmt.Sprintf("reveal-word-%d", n), "reveal-word")
			word.Text = w
			word.Color = Color{0.07, 0.07, 0.07, 1}
			v.Manifesto.AddChild(word)
			v.Words = append(v.Words, word)
			n++
		}
	}
	v.Section.AddChild(v.Description)

	v.Section.AddChild(v.Pillars)
	for i, p := range pillars {
		line := NewElement(fmt.Sprintf("pillar-line-%d", i), "pillar-line")
		line.Color = Color{0.07, 0.07, 0.07, 0.15}
		content := NewElement(fmt.Sprintf("pillar-content-%d", i), "pillar-content")
		content.Text = p.Number + "  " + p.Title + "\n" + p.Description
		content.Color = Color{0.07, 0.07, 0.07, 1}
		v.Pillars.AddChild(line)
		v.Pillars.AddChild(content)
		v.PillarLines = append(v.PillarLines, line)
		v.PillarContents = append(v.PillarContents, content)
	}
	return v
}

// Layout places the section at y and returns its height.
func (v *AboutView) Layout(y, width, height float64) float64 {
	const pad = 40.0
	top := y
	inner := width - 2*pad

	// Act 1: video diptych
	v.Label.Bounds = Rect{X: pad, Y: y + 80, Width: 200, Height: 20}
	vy := y + 120
	vh := clampRange(height*0.7, 320, 720)
	vw := (inner - pad) / 2
	for i, vid := range v.Videos {
		vid.Bounds = Rect{X: pad + float64(i)*(vw+pad), Y: vy, Width: vw, Height: vh}
	}
	for i, l := range v.VideoLabels {
		vid := v.Videos[i/2].Bounds
		l.Bounds = Rect{X: vid.X + 32, Y: vid.Bottom() - 120 + float64(i%2)*56, Width: vw - 64, Height: 48}
	}
	v.Accent.Bounds = Rect{X: pad, Y: vy + vh + 40, Width: inner, Height: 2}
	v.VideoSection.Bounds = Rect{X: 0, Y: y, Width: width, Height: vh + 200}
	y += vh + 200

	// Act 2: manifesto, description, pillars
	y += 120
	wordH := clampRange(width*0.055, 32, 80) * 1.1
	perLine := max(int(inner/(wordH*3)), 1)
	for i, w := range v.Words {
		w.Bounds = Rect{
			X:      pad + float64(i%perLine)*wordH*3,
			Y:      y + float64(i/perLine)*wordH,
			Width:  wordH * 3,
			Height: wordH,
		}
	}
	rows := (len(v.Words) + perLine - 1) / perLine
	v.Manifesto.Bounds = Rect{X: pad, Y: y, Width: inner, Height: float64(rows) * wordH}
	y += v.Manifesto.Bounds.Height + 48
	v.Description.Bounds = Rect{X: pad, Y: y, Width: min(inner, 640), Height: 96}
	y += 96 + 120

	colW := inner / float64(max(len(v.PillarLines), 1))
	for i := range v.PillarLines {
		x := pad + float64(i)*colW
		v.PillarLines[i].Bounds = Rect{X: x, Y: y, Width: colW - 24, Height: 1}
		v.PillarContents[i].Bounds = Rect{X: x, Y: y + 32, Width: colW - 24, Height: 200}
	}
	v.Pillars.Bounds = Rect{X: pad, Y: y, Width: inner, Height: 232}
	y += 232 + 120

	v.Section.Bounds = Rect{Y: top, Width: width, Height: y - top}
	return y - top
}

// videoExpand is the diptych's scrubbed expansion: from an inset, rounded,
// slightly shrunk card to full bleed.
var videoExpand = []Change{
	FromTo(PropInsetY, 12, 0),
	FromTo(PropInsetX, 8, 0),
	FromTo(PropRadius, 12, 0),
	FromTo(PropScale, 0.92, 1),
}

// About binds the section's scroll-driven choreography: fire-once reveals
// for the label, video captions, description and pillars, lagged scrubs for
// the two videos and a scrubbed word-by-word manifesto.
type About struct {
	view *AboutView

	scope *Scope
}

// NewAbout creates an About section over view.
func NewAbout(view *AboutView) *About {
	return &About{view: view}
}

// Name implements Named.
func (a *About) Name() string { return "about" }

// Mount binds every trigger.
func (a *About) Mount(p *Page) {
	v := a.view
	a.scope = NewScope(p, "about")
	s := a.scope

	fadeUp := func(dy float64) []Change {
		return []Change{FromTo(PropY, dy, 0), FromTo(PropOpacity, 0, 1)}
	}

	v.Label.SetFrom(fadeUp(30)...)
	s.RevealFromTo("about-label", v.VideoSection, "top 80%", v.Label, 0.8, Power3Out, fadeUp(30)...)

	s.Scrub("video-1", v.VideoSection, "top 55%", "center center", 1,
		NewTweenGroup(v.Videos[0], scrubDuration, Power1Out, videoExpand...))
	s.Scrub("video-2", v.VideoSection, "top 48%", "center 38%", 1,
		NewTweenGroup(v.Videos[1], scrubDuration, Power1Out, videoExpand...))

	setFrom(v.VideoLabels, fadeUp(40)...)
	s.Reveal("video-labels", v.VideoSection, "25% center",
		Stagger(targets(v.VideoLabels), 0.2, 0.8, Power3Out, fadeUp(40)...))

	setFrom(v.Words, FromTo(PropOpacity, 0.08, 1))
	s.Scrub("manifesto", v.Manifesto, "top 65%", "bottom 45%", 0,
		Stagger(targets(v.Words), 0.04, scrubDuration, Power1Out, FromTo(PropOpacity, 0.08, 1)))

	v.Description.SetFrom(fadeUp(30)...)
	s.RevealFromTo("description", v.Description, "top 85%", v.Description, 0.8, Power3Out, fadeUp(30)...)

	setFrom(v.PillarLines, FromTo(PropScaleX, 0, 1))
	s.Reveal("pillar-lines", v.Pillars, "top 80%",
		Stagger(targets(v.PillarLines), 0.15, 1, Power3Out, FromTo(PropScaleX, 0, 1)))

	setFrom(v.PillarContents, fadeUp(50)...)
	s.Reveal("pillar-content", v.Pillars, "top 75%",
		Stagger(targets(v.PillarContents), 0.15, 0.8, Power3Out, fadeUp(50)...))
}

// Scope returns the current mount's scope, or nil before Mount.
func (a *About) Scope() *Scope { return a.scope }

// Update advances reveals and lagged scrubs.
func (a *About) Update(dt float64) {
	if a.scope != nil {
		a.scope.Update(dt)
	}
}

// Unmount kills every reveal and unbinds every trigger.
func (a *About) Unmount() {
	if a.scope != nil {
		a.scope.Revert()
	}
}
