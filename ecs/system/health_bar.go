package system

import (
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
)

// HealthBarSystem copies owner health into bars. A bar goes away with its
// owner, in the same end-of-frame flush.
type HealthBarSystem struct{}

func NewHealthBarSystem() *HealthBarSystem {
	return &HealthBarSystem{}
}

func (s *HealthBarSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.HealthBarComponent.Kind(), func(e ecs.Entity, bar *component.HealthBar) {
		owner := ecs.Entity(bar.Owner)
		if !ecs.IsAlive(w, owner) || ecs.RemovalQueued(w, owner) {
			ecs.QueueRemoval(w, e)
			return
		}
		h, ok := ecs.Get(w, owner, component.HealthComponent.Kind())
		if !ok {
			ecs.QueueRemoval(w, e)
			return
		}
		bar.Total = h.Total
		bar.Current = h.Current
		bar.Last = h.Last
	})
}
