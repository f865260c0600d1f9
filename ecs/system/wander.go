package system

import (
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
	"github.com/milk9111/hammerjam/nav"
)

// WanderSystem gives idle enemies a destination on the navmesh. A sample that
// falls off the walkable surface is dropped and the enemy stays idle until the
// next tick.
type WanderSystem struct {
	rng *rand.Rand
}

func NewWanderSystem(rng *rand.Rand) *WanderSystem {
	return &WanderSystem{rng: rng}
}

func (s *WanderSystem) Update(w *ecs.World) {
	if w == nil || s.rng == nil {
		return
	}
	mesh := navMesh(w)
	if mesh == nil {
		return
	}

	ecs.ForEach2(w, component.BehaviorComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.Behavior, t *component.Transform) {
		if b.Mode != component.BehaviorIdle {
			return
		}
		if ecs.Has(w, e, component.EmergeComponent.Kind()) || ecs.RemovalQueued(w, e) {
			return
		}
		if to, ok := pickDestination(mesh, s.rng); ok {
			b.SetWandering(t.Position.XZ(), to)
		}
	})
}

func pickDestination(mesh *nav.Mesh, rng *rand.Rand) (cp.Vector, bool) {
	p := mesh.SamplePoint(rng)
	if !mesh.Contains(p) {
		return cp.Vector{}, false
	}
	return p, true
}
