package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hammerjam/common"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
	"github.com/milk9111/hammerjam/nav"
)

const playerTurnRate = 10

// PlayerControllerSystem turns input into movement on the floor and starts
// the hammer swing.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	mesh := navMesh(w)

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Player, in *component.Input, t *component.Transform) {
		if sb := scoreboard(w); sb != nil && sb.Over {
			return
		}

		if in.Slam {
			if clip, ok := ecs.Get(w, e, component.AttackClipComponent.Kind()); ok {
				clip.Start()
			}
		}

		dir := cp.Vector{X: in.MoveX, Y: in.MoveY}
		if dir.LengthSq() == 0 {
			return
		}
		if dir.LengthSq() > 1 {
			dir = dir.Normalize()
		}
		dir = dir.Rotate(common.Forward(p.CameraYaw))

		from := t.Position.XZ()
		step := dir.Mult(p.MoveSpeed * dt)
		to, moved := slide(mesh, from, step)
		if moved {
			t.Position = t.Position.WithXZ(to)
		}
		t.Yaw = common.SmoothNudgeAngle(t.Yaw, common.Heading(dir), playerTurnRate, dt)
	})
}

// slide moves along step, falling back to one axis at a time when the full
// step would leave the walkable floor.
func slide(mesh *nav.Mesh, from, step cp.Vector) (cp.Vector, bool) {
	candidates := []cp.Vector{
		from.Add(step),
		from.Add(cp.Vector{X: step.X}),
		from.Add(cp.Vector{Y: step.Y}),
	}
	for _, c := range candidates {
		if mesh == nil || mesh.Contains(c) {
			return c, true
		}
	}
	return from, false
}
