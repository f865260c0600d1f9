package system

import (
	"github.com/milk9111/hammerjam/common"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
)

// EmergeSystem plays spawn-ins and removes the Emerge component when both the
// scale and rise tracks are done.
type EmergeSystem struct{}

func NewEmergeSystem() *EmergeSystem {
	return &EmergeSystem{}
}

func (s *EmergeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach2(w, component.EmergeComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, em *component.Emerge, t *component.Transform) {
		em.Elapsed += dt

		t.Scale = 1
		if em.ScaleDuration > 0 {
			t.Scale = common.Lerp(em.FromScale, 1, common.Clamp01(em.Elapsed/em.ScaleDuration))
		}

		t.Position.Y = em.BaseY
		if em.RiseDuration > 0 {
			rise := common.ElasticOut(em.Elapsed / em.RiseDuration)
			t.Position.Y = em.BaseY - em.Drop*(1-rise)
		}

		if em.Done() {
			ecs.Remove(w, e, component.EmergeComponent.Kind())
		}
	})
}
