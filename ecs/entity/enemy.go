package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hammerjam/common"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
	"github.com/milk9111/hammerjam/prefabs"
)

// EnemyParams converts a prefab into the values stored on a spawned enemy.
func EnemyParams(spec *prefabs.EnemySpec) component.EnemyParams {
	return component.EnemyParams{
		MoveSpeed:      spec.MoveSpeed,
		FacingRate:     spec.FacingRate,
		AttackRange:    spec.AttackRange,
		AttackDuration: spec.AttackDuration,
		FaceTarget:     spec.FaceTarget,
		SpinRate:       spec.SpinRate,
		BeamLength:     spec.Beam.Length,
		BeamStrength:   spec.Beam.Strength,
		BeamCooldown:   spec.Beam.Cooldown,
	}
}

// NewEnemy spawns an idle enemy at a floor point. Every component is installed
// before it returns.
func NewEnemy(w *ecs.World, spec *prefabs.EnemySpec, at cp.Vector) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("enemy: nil spec")
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.EnemyComponent.Kind(), &component.Enemy{
		Kind:   component.EnemyKind(spec.Kind),
		Params: EnemyParams(spec),
	}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy: %w", err)
	}

	scale := 1.0
	if spec.Emerge.ScaleDuration > 0 {
		scale = spec.Emerge.FromScale
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		Position: common.FromXZ(at, spec.SpawnHeight),
		Scale:    scale,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.BehaviorComponent.Kind(), &component.Behavior{}); err != nil {
		return 0, fmt.Errorf("enemy: add behavior: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), component.NewHealth(spec.Health)); err != nil {
		return 0, fmt.Errorf("enemy: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.HurtCircleComponent.Kind(), &component.HurtCircle{Radius: spec.HurtRadius}); err != nil {
		return 0, fmt.Errorf("enemy: add hurt circle: %w", err)
	}

	if err := addEmerge(w, entity, spec.Emerge, spec.SpawnHeight); err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}

	if _, err := NewHealthBar(w, entity, spec.HealthBarOffset); err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}

	return entity, nil
}

func addEmerge(w *ecs.World, e ecs.Entity, spec prefabs.EmergeSpec, baseY float64) error {
	if spec.ScaleDuration <= 0 && spec.RiseDuration <= 0 {
		return nil
	}
	if err := ecs.Add(w, e, component.EmergeComponent.Kind(), &component.Emerge{
		ScaleDuration: spec.ScaleDuration,
		RiseDuration:  spec.RiseDuration,
		FromScale:     spec.FromScale,
		BaseY:         baseY,
		Drop:          spec.Drop,
	}); err != nil {
		return fmt.Errorf("add emerge: %w", err)
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok && spec.RiseDuration > 0 {
		t.Position.Y = baseY - spec.Drop
	}
	return nil
}
