package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
	"github.com/milk9111/hammerjam/nav"
)

// Timers within this much of zero count as expired, so float drift does not
// cost a whole extra tick.
const timerEpsilon = 1e-9

func navMesh(w *ecs.World) *nav.Mesh {
	var mesh *nav.Mesh
	ecs.ForEach(w, component.NavMeshComponent.Kind(), func(_ ecs.Entity, nm *component.NavMesh) {
		if mesh == nil && nm.Mesh != nil {
			mesh = nm.Mesh
		}
	})
	return mesh
}

func scoreboard(w *ecs.World) *component.Scoreboard {
	e, ok := ecs.First(w, component.ScoreboardComponent.Kind())
	if !ok {
		return nil
	}
	sb, _ := ecs.Get(w, e, component.ScoreboardComponent.Kind())
	return sb
}

// player returns the first live player and its floor position.
func player(w *ecs.World) (ecs.Entity, cp.Vector, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, cp.Vector{}, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, cp.Vector{}, false
	}
	return e, t.Position.XZ(), true
}

func isPlayer(w *ecs.World, e ecs.Entity) bool {
	return ecs.Has(w, e, component.PlayerTagComponent.Kind())
}
