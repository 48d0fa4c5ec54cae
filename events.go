package marquee

import "fmt"

// LifecycleKind identifies a kind of lifecycle event.
type LifecycleKind uint8

const (
	EventTimelineStarted   LifecycleKind = iota // a timeline began playing
	EventTimelineCompleted                      // a timeline reached its end
	EventTimelineKilled                         // a timeline was killed before its end
	EventTriggerFired                           // a fire-once scroll trigger played its timeline
	EventReady                                  // the preloader-finished latch flipped
	EventMounted                                // a component was mounted on the page
	EventUnmounted                              // a component was unmounted
)

var lifecycleKindNames = [...]string{
	"timeline-started", "timeline-completed", "timeline-killed",
	"trigger-fired", "ready", "mounted", "unmounted",
}

func (k LifecycleKind) String() string {
	if int(k) < len(lifecycleKindNames) {
		return lifecycleKindNames[k]
	}
	return fmt.Sprintf("LifecycleKind(%d)", uint8(k))
}

// LifecycleEvent describes something that happened to a timeline, trigger
// or component. Time is the page clock in seconds.
type LifecycleEvent struct {
	Kind  LifecycleKind
	Scope string
	Name  string
	Time  float64
}

// EventSink receives lifecycle events. When set on a Page, every event is
// forwarded to it (see the ecs package for a Donburi-backed sink).
type EventSink interface {
	EmitEvent(event LifecycleEvent)
}
