package marquee

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type positionKind uint8

const (
	posEnd       positionKind = iota // end of the timeline
	posAbsolute                      // seconds from timeline start
	posPrevEnd                       // relative to the previous entry's end
	posPrevStart                     // relative to the previous entry's start
)

// Position says where a Timeline entry starts. The zero value appends the
// entry at the current end of the timeline.
type Position struct {
	kind   positionKind
	offset float64
}

// Sequential starts the entry at the current end of the timeline.
func Sequential() Position { return Position{} }

// At starts the entry t seconds after the timeline starts.
func At(t float64) Position { return Position{kind: posAbsolute, offset: t} }

// Overlap starts the entry n seconds before the previous entry ends ("-=n").
func Overlap(n float64) Position { return Position{kind: posPrevEnd, offset: -n} }

// Gap starts the entry n seconds after the previous entry ends ("+=n").
func Gap(n float64) Position { return Position{kind: posPrevEnd, offset: n} }

// WithPrevious starts the entry together with the previous entry ("<").
func WithPrevious() Position { return Position{kind: posPrevStart} }

// ParsePosition parses the string form of a position:
//
//	""       end of the timeline
//	"1.5"    absolute seconds
//	"-=0.2"  0.2s before the previous entry ends
//	"+=0.2"  0.2s after the previous entry ends
//	"<"      with the previous entry's start
//	"<0.1"   0.1s after the previous entry's start
//
// Numbers may carry an "s" suffix.
func ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Sequential(), nil
	case s == "<":
		return WithPrevious(), nil
	case strings.HasPrefix(s, "<"):
		n, err := parseSeconds(s[1:])
		if err != nil {
			return Position{}, fmt.Errorf("parse position %q: %w", s, err)
		}
		return Position{kind: posPrevStart, offset: n}, nil
	case strings.HasPrefix(s, "-="):
		n, err := parseSeconds(s[2:])
		if err != nil || n < 0 {
			return Position{}, fmt.Errorf("parse position %q: %w", s, ErrInvalidPosition)
		}
		return Overlap(n), nil
	case strings.HasPrefix(s, "+="):
		n, err := parseSeconds(s[2:])
		if err != nil || n < 0 {
			return Position{}, fmt.Errorf("parse position %q: %w", s, ErrInvalidPosition)
		}
		return Gap(n), nil
	}
	n, err := parseSeconds(s)
	if err != nil || n < 0 {
		return Position{}, fmt.Errorf("parse position %q: %w", s, ErrInvalidPosition)
	}
	return At(n), nil
}

// MustPosition is like ParsePosition but panics on error. Intended for
// literals in code.
func MustPosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic("marquee: " + err.Error())
	}
	return p
}

// String returns the position in ParsePosition's syntax.
func (p Position) String() string {
	switch p.kind {
	case posAbsolute:
		return strconv.FormatFloat(p.offset, 'f', -1, 64)
	case posPrevEnd:
		if p.offset < 0 {
			return "-=" + strconv.FormatFloat(-p.offset, 'f', -1, 64)
		}
		return "+=" + strconv.FormatFloat(p.offset, 'f', -1, 64)
	case posPrevStart:
		if p.offset == 0 {
			return "<"
		}
		return "<" + strconv.FormatFloat(p.offset, 'f', -1, 64)
	}
	return ""
}

func parseSeconds(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "s")
	if s == "" {
		return 0, ErrInvalidPosition
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, ErrInvalidPosition
	}
	return n, nil
}
