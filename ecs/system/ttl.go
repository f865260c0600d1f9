package system

import (
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
)

// TTLSystem counts lifetimes down, drives effects that follow their lifetime
// and queues expired entities for removal.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		ttl.Remaining -= dt

		if smack, ok := ecs.Get(w, e, component.HammerSmackComponent.Kind()); ok {
			smack.Percent = ttl.Progress()
		}

		if ttl.Remaining <= timerEpsilon {
			ttl.Remaining = 0
			ecs.QueueRemoval(w, e)
		}
	})
}
