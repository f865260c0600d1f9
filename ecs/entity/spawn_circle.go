package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hammerjam/common"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
)

// NewSpawnCircle telegraphs an enemy of kind at a floor point. The enemy
// appears after delay seconds.
func NewSpawnCircle(w *ecs.World, kind component.EnemyKind, at cp.Vector, delay, radius float64) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.SpawnCircleComponent.Kind(), &component.SpawnCircle{Kind: kind, Radius: radius}); err != nil {
		return 0, fmt.Errorf("spawn circle: add circle: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		Position: common.FromXZ(at, 0),
		Scale:    1,
	}); err != nil {
		return 0, fmt.Errorf("spawn circle: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.TTLComponent.Kind(), &component.TTL{Remaining: delay, Total: delay}); err != nil {
		return 0, fmt.Errorf("spawn circle: add ttl: %w", err)
	}
	return entity, nil
}
