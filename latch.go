package marquee

// Latch is a write-once boolean: it goes from false to true exactly once
// and never back. The page's "preloader finished" signal is a Latch.
type Latch struct {
	set  bool
	subs []*latchSub
}

type latchSub struct {
	fn func()
}

// Set flips the latch and runs subscribers in subscription order. Reports
// whether this call did the flip; later calls are no-ops returning false.
func (l *Latch) Set() bool {
	if l.set {
		return false
	}
	l.set = true
	subs := l.subs
	l.subs = nil
	for _, s := range subs {
		if fn := s.fn; fn != nil {
			s.fn = nil
			fn()
		}
	}
	return true
}

// IsSet reports whether the latch has flipped.
func (l *Latch) IsSet() bool {
	return l.set
}

// Subscribe registers fn to run once when the latch flips. If it already
// has, fn runs immediately. The returned function cancels a pending
// subscription and is safe to call at any time.
func (l *Latch) Subscribe(fn func()) (cancel func()) {
	if l.set {
		fn()
		return func() {}
	}
	s := &latchSub{fn: fn}
	l.subs = append(l.subs, s)
	return func() {
		if s.fn == nil {
			return
		}
		s.fn = nil
		for i, other := range l.subs {
			if other == s {
				l.subs = append(l.subs[:i], l.subs[i+1:]...)
				return
			}
		}
	}
}

// Pending returns the number of subscribers waiting for the flip.
func (l *Latch) Pending() int {
	return len(l.subs)
}
