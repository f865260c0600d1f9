package entity

import (
	"fmt"

	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
)

// NewHealthBar creates a display entity that follows owner's health.
func NewHealthBar(w *ecs.World, owner ecs.Entity, offsetY float64) (ecs.Entity, error) {
	health, ok := ecs.Get(w, owner, component.HealthComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("health bar: owner %v has no health", owner)
	}

	bar := ecs.CreateEntity(w)
	if err := ecs.Add(w, bar, component.HealthBarComponent.Kind(), &component.HealthBar{
		Owner:   uint64(owner),
		Total:   health.Total,
		Current: health.Current,
		Last:    health.Last,
		OffsetY: offsetY,
	}); err != nil {
		return 0, fmt.Errorf("health bar: add bar: %w", err)
	}
	return bar, nil
}
