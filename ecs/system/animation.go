package system

import (
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
)

// AnimationSystem plays attack clips and emits their impact and finished
// markers as animation events.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach(w, component.AttackClipComponent.Kind(), func(e ecs.Entity, clip *component.AttackClip) {
		if !clip.Playing {
			return
		}
		clip.Elapsed += dt

		if !clip.Impacted && clip.Elapsed >= clip.ImpactAt*clip.Duration {
			clip.Impacted = true
			ecs.Emit(w, ecs.Event{Type: ecs.EventAnimation, Data: component.AnimationMarker{Owner: uint64(e), Name: component.MarkerImpact}})
		}

		if clip.Elapsed >= clip.Duration {
			clip.Playing = false
			ecs.Emit(w, ecs.Event{Type: ecs.EventAnimation, Data: component.AnimationMarker{Owner: uint64(e), Name: component.MarkerFinished}})
		}
	})
}
