package system

import (
	"math/rand"

	"github.com/milk9111/hammerjam/common"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
)

// ArrivalDistance is how close a wandering enemy must get to its destination.
const ArrivalDistance = 0.1

// MovementSystem is the only system that moves enemies. It walks wandering
// enemies toward their destination and decides what happens on arrival.
type MovementSystem struct {
	rng *rand.Rand
}

func NewMovementSystem(rng *rand.Rand) *MovementSystem {
	return &MovementSystem{rng: rng}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.BehaviorComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, b *component.Behavior, t *component.Transform) {
		if b.Mode != component.BehaviorWandering {
			return
		}

		pos := t.Position.XZ()
		delta := b.Wander.To.Sub(pos)
		dist := delta.Length()
		if dist < ArrivalDistance {
			s.arrive(w, enemy, b, t)
			return
		}

		dir := delta.Mult(1 / dist)
		step := enemy.Params.MoveSpeed * dt
		if step > dist {
			step = dist
		}
		t.Position = t.Position.WithXZ(pos.Add(dir.Mult(step)))
		t.Yaw = common.SmoothNudgeAngle(t.Yaw, common.Heading(dir), enemy.Params.FacingRate, dt)
	})
}

func (s *MovementSystem) arrive(w *ecs.World, enemy *component.Enemy, b *component.Behavior, t *component.Transform) {
	pos := t.Position.XZ()
	_, target, hasPlayer := player(w)

	attack := enemy.Params.AttackRange <= 0
	if !attack && hasPlayer {
		attack = pos.Distance(target) < enemy.Params.AttackRange
	}

	if attack {
		b.SetAttacking(enemy.Params.AttackDuration)
		if enemy.Params.FaceTarget && hasPlayer {
			if to := target.Sub(pos); to.LengthSq() > 0 {
				t.Yaw = common.Heading(to)
			}
		}
		return
	}

	mesh := navMesh(w)
	if mesh == nil || s.rng == nil {
		b.SetIdle()
		return
	}
	if to, ok := pickDestination(mesh, s.rng); ok {
		b.SetWandering(pos, to)
		return
	}
	b.SetIdle()
}
