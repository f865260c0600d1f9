package system

import (
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
)

// DamageObserver is told about every damage event that reached a health
// record.
type DamageObserver func(w *ecs.World, d component.Damage)

// DamageSystem drains damage events in the order they were emitted and
// subtracts them from the receiver's health. Events for receivers without
// health are dropped.
type DamageSystem struct {
	observers []DamageObserver
}

func NewDamageSystem(observers ...DamageObserver) *DamageSystem {
	return &DamageSystem{observers: observers}
}

func (s *DamageSystem) Observe(o DamageObserver) {
	if o != nil {
		s.observers = append(s.observers, o)
	}
}

func (s *DamageSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, evt := range w.Events().Drain(ecs.EventDamage) {
		d, ok := evt.Data.(component.Damage)
		if !ok {
			continue
		}
		health, ok := ecs.Get(w, ecs.Entity(d.Receiver), component.HealthComponent.Kind())
		if !ok {
			continue
		}
		health.Current -= d.Strength
		for _, o := range s.observers {
			o(w, d)
		}
	}
}
