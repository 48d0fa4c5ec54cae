// Package ecs provides ECS adapters for marquee lifecycle events.
package ecs

import (
	"github.com/phanxgames/marquee"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LifecycleEventType is the Donburi event type for marquee lifecycle events.
// Subscribe to this in your ECS systems to receive timeline, trigger and
// ready events.
var LifecycleEventType = events.NewEventType[marquee.LifecycleEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Lifecycle events are published to LifecycleEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) marquee.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event marquee.LifecycleEvent) {
	LifecycleEventType.Publish(s.world, event)
}

// StatsData tallies processed lifecycle events by kind.
type StatsData struct {
	Counts   map[marquee.LifecycleKind]int
	Last     marquee.LifecycleEvent
	ReadyAt  float64
	Observed int
}

// Stats is the component holding a StatsData.
var Stats = donburi.NewComponentType[StatsData]()

// TrackStats creates an entity carrying a Stats component and subscribes it
// to LifecycleEventType. The tally advances each time the world's events are
// processed. Returns the entity.
func TrackStats(world donburi.World) donburi.Entity {
	entity := world.Create(Stats)
	Stats.SetValue(world.Entry(entity), StatsData{Counts: make(map[marquee.LifecycleKind]int)})
	LifecycleEventType.Subscribe(world, func(w donburi.World, e marquee.LifecycleEvent) {
		if !w.Valid(entity) {
			return
		}
		st := Stats.Get(w.Entry(entity))
		st.Counts[e.Kind]++
		st.Last = e
		st.Observed++
		if e.Kind == marquee.EventReady {
			st.ReadyAt = e.Time
		}
	})
	return entity
}
