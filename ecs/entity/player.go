package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hammerjam/common"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
	"github.com/milk9111/hammerjam/prefabs"
)

// NewPlayer spawns the player. A positive health overrides the prefab's value
// so a run can start with carried-over health.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, at cp.Vector, health float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed: spec.MoveSpeed,
		CameraYaw: spec.CameraYaw,
		Reach:     spec.Reach,
	}); err != nil {
		return 0, fmt.Errorf("player: add player component: %w", err)
	}

	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	scale := 1.0
	if spec.Emerge.ScaleDuration > 0 {
		scale = spec.Emerge.FromScale
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		Position: common.FromXZ(at, 0),
		Scale:    scale,
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	hp := component.NewHealth(spec.Health)
	if health > 0 {
		hp.Current = health
		hp.Last = health
	}
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), hp); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.HurtCircleComponent.Kind(), &component.HurtCircle{Radius: spec.HurtRadius}); err != nil {
		return 0, fmt.Errorf("player: add hurt circle: %w", err)
	}

	if err := ecs.Add(w, entity, component.AttackClipComponent.Kind(), &component.AttackClip{
		Duration: spec.AttackClip.Duration,
		ImpactAt: spec.AttackClip.ImpactAt,
	}); err != nil {
		return 0, fmt.Errorf("player: add attack clip: %w", err)
	}

	if err := addEmerge(w, entity, spec.Emerge, 0); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	if _, err := NewHealthBar(w, entity, spec.HealthBarOffset); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	return entity, nil
}
