package system

import (
	"github.com/milk9111/hammerjam/common"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
)

// SpinAttackSystem sweeps the beam of attacking enemies and damages the first
// player it crosses, at most once per cooldown.
type SpinAttackSystem struct{}

func NewSpinAttackSystem() *SpinAttackSystem {
	return &SpinAttackSystem{}
}

func (s *SpinAttackSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.BehaviorComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, b *component.Behavior, t *component.Transform) {
		if b.Mode != component.BehaviorAttacking {
			return
		}

		b.Attack.Remaining -= dt
		if b.Attack.Remaining <= timerEpsilon {
			b.SetIdle()
			return
		}

		t.Yaw += enemy.Params.SpinRate * dt

		if b.Attack.Cooldown > 0 {
			b.Attack.Cooldown -= dt
			if b.Attack.Cooldown > timerEpsilon {
				return
			}
			b.Attack.Cooldown = 0
		}

		ray := common.NewRay(t.Position.XZ(), common.Forward(t.Yaw), enemy.Params.BeamLength)
		if target, ok := firstPlayerHit(w, ray); ok {
			ecs.Emit(w, ecs.Event{Type: ecs.EventDamage, Data: component.Damage{
				Attacker: uint64(e),
				Receiver: uint64(target),
				Strength: enemy.Params.BeamStrength,
			}})
			b.Attack.Cooldown = enemy.Params.BeamCooldown
		}
	})
}

func firstPlayerHit(w *ecs.World, ray common.Ray) (ecs.Entity, bool) {
	var (
		hit  ecs.Entity
		best float64
		ok   bool
	)
	ecs.ForEach3(w, component.PlayerTagComponent.Kind(), component.HurtCircleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, hc *component.HurtCircle, t *component.Transform) {
		toi, found := ray.CircleHit(t.Position.XZ(), hc.Radius)
		if !found {
			return
		}
		if !ok || toi < best {
			hit, best, ok = e, toi, true
		}
	})
	return hit, ok
}
