package system

import (
	"log"

	"github.com/milk9111/hammerjam/common"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
	"github.com/milk9111/hammerjam/ecs/entity"
	"github.com/milk9111/hammerjam/prefabs"
)

// SmackSystem lands the hammer on impact markers: it places the smack effect
// in front of the swinging player and damages every non-player hurt circle
// the smack overlaps, once per impact.
type SmackSystem struct {
	spec *prefabs.HammerSmackSpec
}

func NewSmackSystem(spec *prefabs.HammerSmackSpec) *SmackSystem {
	return &SmackSystem{spec: spec}
}

// SetSpec swaps the smack prefab, for hot reload.
func (s *SmackSystem) SetSpec(spec *prefabs.HammerSmackSpec) {
	if spec != nil {
		s.spec = spec
	}
}

func (s *SmackSystem) Update(w *ecs.World) {
	if w == nil || s.spec == nil {
		return
	}

	for _, evt := range w.Events().Drain(ecs.EventAnimation) {
		marker, ok := evt.Data.(component.AnimationMarker)
		if !ok || marker.Name != component.MarkerImpact {
			continue
		}
		s.land(w, ecs.Entity(marker.Owner))
	}
}

func (s *SmackSystem) land(w *ecs.World, attacker ecs.Entity) {
	t, ok := ecs.Get(w, attacker, component.TransformComponent.Kind())
	if !ok {
		return
	}
	reach := 0.0
	if p, ok := ecs.Get(w, attacker, component.PlayerComponent.Kind()); ok {
		reach = p.Reach
	}
	center := t.Position.XZ().Add(common.Forward(t.Yaw).Mult(reach))

	if _, err := entity.NewHammerSmack(w, s.spec, center); err != nil {
		log.Printf("smack: entity=%v spawn effect: %v", attacker, err)
	}

	hit := false
	ecs.ForEach3(w, component.HealthComponent.Kind(), component.HurtCircleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Health, hc *component.HurtCircle, ht *component.Transform) {
		if e == attacker || isPlayer(w, e) {
			return
		}
		if !common.CirclesOverlap(center, s.spec.Radius, ht.Position.XZ(), hc.Radius) {
			return
		}
		ecs.Emit(w, ecs.Event{Type: ecs.EventDamage, Data: component.Damage{
			Attacker: uint64(attacker),
			Receiver: uint64(e),
			Strength: s.spec.Strength,
		}})
		if s.spec.FlashFrames > 0 {
			_ = ecs.Add(w, e, component.WhiteFlashComponent.Kind(), &component.WhiteFlash{Frames: s.spec.FlashFrames, Interval: 3, On: true})
		}
		hit = true
	})

	if hit && s.spec.FreezeFrames > 0 {
		_ = ecs.Add(w, attacker, component.HitFreezeRequestComponent.Kind(), &component.HitFreezeRequest{Frames: s.spec.FreezeFrames})
	}
}
