package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
)

// EnemySpawner creates an enemy of a kind at a floor point.
type EnemySpawner interface {
	SpawnEnemy(w *ecs.World, kind component.EnemyKind, at cp.Vector) (ecs.Entity, error)
}

// SpawnCircleSystem replaces expired spawn circles with their enemy. It runs
// after TTLSystem, which has already queued the circle for removal.
type SpawnCircleSystem struct {
	spawner EnemySpawner
}

func NewSpawnCircleSystem(spawner EnemySpawner) *SpawnCircleSystem {
	return &SpawnCircleSystem{spawner: spawner}
}

func (s *SpawnCircleSystem) Update(w *ecs.World) {
	if w == nil || s.spawner == nil {
		return
	}

	ecs.ForEach3(w, component.SpawnCircleComponent.Kind(), component.TTLComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, sc *component.SpawnCircle, ttl *component.TTL, t *component.Transform) {
		if ttl.Remaining > timerEpsilon {
			return
		}
		// the circle may linger for the rest of the frame; spawn once
		if !ecs.Remove(w, e, component.SpawnCircleComponent.Kind()) {
			return
		}
		if _, err := s.spawner.SpawnEnemy(w, sc.Kind, t.Position.XZ()); err != nil {
			log.Printf("spawn: kind=%s at=%v: %v", sc.Kind, t.Position.XZ(), err)
		}
		ecs.QueueRemoval(w, e)
	})
}
