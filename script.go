package marquee

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a page script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	From   float64 `json:"from,omitempty"`
	To     float64 `json:"to,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// pageScript is the top-level JSON structure for a page script.
type pageScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptMark records the page state when a "mark" step ran.
type ScriptMark struct {
	Label   string
	Time    float64
	ScrollY float64
	Ready   bool
}

// ScriptRunner sequences injected scroll, wheel and resize events across
// frames for automated runs. Attach to a Page via SetScript.
//
// Supported actions: scroll {y}, wheel {dy}, sweep {from, to, frames},
// resize {width, height}, refresh, wait {frames}, waitReady, mark {label}.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	waitReady bool
	done      bool
	marks     []ScriptMark
}

// LoadScript parses a JSON page script and returns a ScriptRunner ready to
// be attached to a Page via SetScript.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script pageScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse page script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse page script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "scroll", "wheel", "sweep", "refresh", "wait", "waitReady", "mark":
		case "resize":
			if st.Width <= 0 || st.Height <= 0 {
				return nil, fmt.Errorf("parse page script: step %d: resize needs a positive width and height", i)
			}
		default:
			return nil, fmt.Errorf("parse page script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScript attaches a ScriptRunner to the page. The runner's step method
// is called from Page.Update before injected input is processed.
func (p *Page) SetScript(runner *ScriptRunner) {
	p.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Marks returns the marks recorded so far.
func (r *ScriptRunner) Marks() []ScriptMark {
	return r.marks
}

// step advances the runner by one frame. Called from Page.Update.
func (r *ScriptRunner) step(p *Page) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(p.injectQueue) > 0 {
		return
	}
	if r.waitReady {
		if !p.Ready() {
			return
		}
		r.waitReady = false
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "scroll":
		p.InjectScroll(st.Y)
	case "wheel":
		p.InjectWheel(st.DY)
	case "sweep":
		p.InjectScrollSweep(st.From, st.To, st.Frames)
	case "resize":
		p.InjectResize(st.Width, st.Height)
	case "refresh":
		p.InjectRefresh()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "waitReady":
		r.waitReady = !p.Ready()
	case "mark":
		r.marks = append(r.marks, ScriptMark{
			Label:   st.Label,
			Time:    p.clock,
			ScrollY: p.viewport.ScrollY(),
			Ready:   p.Ready(),
		})
		p.debugLog("mark %q scrollY=%.1f", st.Label, p.viewport.ScrollY())
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && !r.waitReady && len(p.injectQueue) == 0 {
		r.done = true
	}
}
