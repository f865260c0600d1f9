package system

import (
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
)

// ScoreboardSystem accumulates survival time and ends the run when the
// player's health is gone.
type ScoreboardSystem struct{}

func NewScoreboardSystem() *ScoreboardSystem {
	return &ScoreboardSystem{}
}

func (s *ScoreboardSystem) Update(w *ecs.World) {
	sb := scoreboard(w)
	if sb == nil || sb.Over {
		return
	}
	sb.Survived += w.Delta()

	e, _, ok := player(w)
	if !ok {
		return
	}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && h.Current <= 0 {
		sb.Over = true
	}
}
