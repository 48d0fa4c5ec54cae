package marquee

import (
	"fmt"
	"os"
)

// globalDebug mirrors the most recently set Page debug flag so that element
// operations (which lack a Page pointer) can check it cheaply. Only valid
// with a single Page; multiple Pages with differing debug modes will reflect
// whichever called SetDebugMode last.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, timeline state
// changes, trigger fires and the ready flip are logged to stderr, tree
// operations on disposed elements panic, and a timeline completing twice
// panics.
func (p *Page) SetDebugMode(enabled bool) {
	p.debug = enabled
	globalDebug = enabled
}

// DebugMode reports whether debug mode is on.
func (p *Page) DebugMode() bool {
	return p.debug
}

// debugLog prints one line to stderr when debug mode is on.
func (p *Page) debugLog(format string, args ...any) {
	if !p.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[marquee] %7.3fs "+format+"\n", append([]any{p.clock}, args...)...)
}

// debugCheckDisposed panics with a descriptive message when a disposed
// element is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(e *Element, op string) {
	if e.disposed {
		panic(fmt.Sprintf("marquee debug: %s on disposed element %q", op, e.Name))
	}
}

// debugCheckObservers warns on stderr if the viewport has more observers
// than the mounted scopes account for, the usual sign of a leaked trigger.
const debugMaxObservers = 256

func (p *Page) debugCheckObservers() {
	if n := p.viewport.ObserverCount(); n > debugMaxObservers {
		_, _ = fmt.Fprintf(os.Stderr, "[marquee] warning: viewport has %d observers (threshold %d)\n",
			n, debugMaxObservers)
	}
}
