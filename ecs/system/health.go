package system

import (
	"github.com/milk9111/hammerjam/common"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
)

// HealthLerpRate is the decay rate of the trailing health value.
const HealthLerpRate = 1

// HealthSystem eases Last toward Current on every health record.
type HealthSystem struct{}

func NewHealthSystem() *HealthSystem {
	return &HealthSystem{}
}

func (s *HealthSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach(w, component.HealthComponent.Kind(), func(e ecs.Entity, h *component.Health) {
		h.Last = common.SmoothNudge(h.Last, h.Current, HealthLerpRate, dt)
	})
}
