package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hammerjam/common"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
	"github.com/milk9111/hammerjam/ecs/entity"
	"github.com/milk9111/hammerjam/nav"
	"github.com/milk9111/hammerjam/prefabs"
)

const tick = 1.0 / 60

func eyeballSpec() *prefabs.EnemySpec {
	return &prefabs.EnemySpec{
		Name:           "eyeball",
		Kind:           string(component.KindEyeball),
		Health:         50,
		HurtRadius:     0.5,
		MoveSpeed:      1,
		FacingRate:     5,
		AttackRange:    3,
		AttackDuration: 2,
		FaceTarget:     true,
		SpinRate:       common.Tau,
		Beam:           prefabs.BeamSpec{Length: 2, Strength: 5, Cooldown: 0.2},
	}
}

func flockSphereSpec() *prefabs.EnemySpec {
	spec := eyeballSpec()
	spec.Name = "flock sphere"
	spec.Kind = string(component.KindFlockSphere)
	spec.AttackRange = 0
	spec.AttackDuration = 5
	spec.FaceTarget = false
	return spec
}

func playerSpec() *prefabs.PlayerSpec {
	return &prefabs.PlayerSpec{
		Name:       "player",
		Health:     50,
		MoveSpeed:  1.8,
		Reach:      2,
		HurtRadius: 0.5,
		AttackClip: prefabs.AttackClipSpec{Duration: 0.8, ImpactAt: 0.45},
	}
}

func smackSpec() *prefabs.HammerSmackSpec {
	return &prefabs.HammerSmackSpec{Radius: 1.5, Lifetime: 0.1, Strength: 20}
}

func spawnEnemy(t *testing.T, w *ecs.World, spec *prefabs.EnemySpec, at cp.Vector) ecs.Entity {
	t.Helper()
	e, err := entity.NewEnemy(w, spec, at)
	if err != nil {
		t.Fatalf("NewEnemy: %v", err)
	}
	return e
}

func spawnPlayer(t *testing.T, w *ecs.World, at cp.Vector) ecs.Entity {
	t.Helper()
	e, err := entity.NewPlayer(w, playerSpec(), at, 0)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return e
}

func addMesh(t *testing.T, w *ecs.World, mesh *nav.Mesh) {
	t.Helper()
	arena := ecs.CreateEntity(w)
	if err := ecs.Add(w, arena, component.NavMeshComponent.Kind(), &component.NavMesh{Mesh: mesh}); err != nil {
		t.Fatalf("add navmesh: %v", err)
	}
	if err := ecs.Add(w, arena, component.ScoreboardComponent.Kind(), &component.Scoreboard{}); err != nil {
		t.Fatalf("add scoreboard: %v", err)
	}
}

func squareMesh(t *testing.T, size float64) *nav.Mesh {
	t.Helper()
	m, err := nav.NewMesh(nav.Rect(cp.Vector{}, size, size))
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	return m
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, h component.ComponentHandle[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, h.Kind())
	if !ok {
		t.Fatalf("entity %v missing component", e)
	}
	return v
}

func emitDamage(w *ecs.World, attacker, receiver ecs.Entity, strength float64) {
	ecs.Emit(w, ecs.Event{Type: ecs.EventDamage, Data: component.Damage{
		Attacker: uint64(attacker),
		Receiver: uint64(receiver),
		Strength: strength,
	}})
}

func drainDamage(w *ecs.World) []component.Damage {
	var out []component.Damage
	for _, evt := range w.Events().Drain(ecs.EventDamage) {
		out = append(out, evt.Data.(component.Damage))
	}
	return out
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
