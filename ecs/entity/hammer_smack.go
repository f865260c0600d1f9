package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hammerjam/common"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
	"github.com/milk9111/hammerjam/prefabs"
)

// NewHammerSmack places the landing effect. It removes itself when its TTL
// runs out.
func NewHammerSmack(w *ecs.World, spec *prefabs.HammerSmackSpec, at cp.Vector) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("hammer smack: nil spec")
	}
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.HammerSmackComponent.Kind(), &component.HammerSmack{Radius: spec.Radius}); err != nil {
		return 0, fmt.Errorf("hammer smack: add smack: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		Position: common.FromXZ(at, 0),
		Scale:    1,
	}); err != nil {
		return 0, fmt.Errorf("hammer smack: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.TTLComponent.Kind(), &component.TTL{
		Remaining: spec.Lifetime,
		Total:     spec.Lifetime,
	}); err != nil {
		return 0, fmt.Errorf("hammer smack: add ttl: %w", err)
	}
	return entity, nil
}
