package system

import (
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
)

// DeathThreshold is the health at or below which non-players are removed.
const DeathThreshold = 0.1

// ReaperSystem queues dead non-player entities for removal and counts enemy
// kills on the scoreboard. Players are never removed.
type ReaperSystem struct{}

func NewReaperSystem() *ReaperSystem {
	return &ReaperSystem{}
}

func (s *ReaperSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	sb := scoreboard(w)

	ecs.ForEach(w, component.HealthComponent.Kind(), func(e ecs.Entity, h *component.Health) {
		if h.Current > DeathThreshold || isPlayer(w, e) || ecs.RemovalQueued(w, e) {
			return
		}
		ecs.QueueRemoval(w, e)
		if sb != nil && ecs.Has(w, e, component.EnemyComponent.Kind()) {
			sb.Kills++
		}
	})
}
