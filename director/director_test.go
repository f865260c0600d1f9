package director

import (
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
	"github.com/milk9111/hammerjam/nav"
)

type kindSet map[component.EnemyKind]bool

func (k kindSet) Knows(kind component.EnemyKind) bool { return k[kind] }

func newWorld(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	mesh, err := nav.NewMesh(nav.Rect(cp.Vector{}, 20, 20))
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	arena := ecs.CreateEntity(w)
	if err := ecs.Add(w, arena, component.NavMeshComponent.Kind(), &component.NavMesh{Mesh: mesh}); err != nil {
		t.Fatalf("add navmesh: %v", err)
	}
	return w
}

var kinds = kindSet{component.KindEyeball: true, component.KindFlockSphere: true}

func TestRunQueuesSpawnCircles(t *testing.T) {
	cases := []struct {
		name   string
		script string
		want   int
	}{
		{"single", `p := rand_point(); spawn("eyeball", p[0], p[1])`, 1},
		{"capped_by_max_alive", `for i := 0; i < 10; i++ { if alive("") < max_alive { spawn("flock_sphere", 0.0, 0.0) } }`, 3},
		{"none", `x := 1`, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newWorld(t)
			d, err := New([]byte(c.script), Config{Interval: 5, SpawnDelay: 1.5, SpawnRadius: 0.75, MaxAlive: 3}, rand.New(rand.NewSource(1)), kinds)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			n, err := d.Run(w)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if n != c.want || ecs.Count(w, component.SpawnCircleComponent.Kind()) != c.want {
				t.Fatalf("expected %d spawn circles, got n=%d count=%d", c.want, n, ecs.Count(w, component.SpawnCircleComponent.Kind()))
			}
		})
	}
}

func TestRandPointLandsOnMesh(t *testing.T) {
	w := newWorld(t)
	d, err := New([]byte(`p := rand_point(); spawn("eyeball", p[0], p[1])`), Config{Interval: 1, SpawnDelay: 1}, rand.New(rand.NewSource(3)), kinds)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := d.Run(w); err != nil {
		t.Fatalf("Run: %v", err)
	}
	ecs.ForEach2(w, component.SpawnCircleComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.SpawnCircle, tr *component.Transform) {
		p := tr.Position.XZ()
		if p.X < -10 || p.X > 10 || p.Y < -10 || p.Y > 10 {
			t.Fatalf("spawn outside arena: %v", p)
		}
	})
}

func TestRandPointUndefinedOffMesh(t *testing.T) {
	far, err := nav.NewMeshWithSampling(nav.Rect(cp.Vector{}, 2, 2), nav.Rect(cp.Vector{X: 100, Y: 100}, 2, 2))
	if err != nil {
		t.Fatalf("NewMeshWithSampling: %v", err)
	}
	cases := []struct {
		name string
		mesh *nav.Mesh
	}{
		{"no_mesh", nil},
		{"sampling_never_walkable", far},
	}
	const script = `p := rand_point(); if !is_undefined(p) { spawn("eyeball", p[0], p[1]) }`
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			if c.mesh != nil {
				arena := ecs.CreateEntity(w)
				if err := ecs.Add(w, arena, component.NavMeshComponent.Kind(), &component.NavMesh{Mesh: c.mesh}); err != nil {
					t.Fatalf("add navmesh: %v", err)
				}
			}
			d, err := New([]byte(script), Config{Interval: 1, SpawnDelay: 1}, rand.New(rand.NewSource(5)), kinds)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			n, err := d.Run(w)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if n != 0 || ecs.Count(w, component.SpawnCircleComponent.Kind()) != 0 {
				t.Fatalf("expected no spawns, got %d", n)
			}
		})
	}
}

func TestUnknownKindFailsRun(t *testing.T) {
	w := newWorld(t)
	d, err := New([]byte(`spawn("dragon", 0.0, 0.0)`), Config{Interval: 1}, rand.New(rand.NewSource(1)), kinds)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := d.Run(w); err == nil {
		t.Fatalf("expected an error for an unknown kind")
	}
	if ecs.Count(w, component.SpawnCircleComponent.Kind()) != 0 {
		t.Fatalf("unknown kind must not spawn")
	}
}

func TestUpdateRunsOncePerInterval(t *testing.T) {
	w := newWorld(t)
	d, err := New([]byte(`spawn("eyeball", 1.0, 1.0)`), Config{Interval: 5, SpawnDelay: 1.5}, rand.New(rand.NewSource(1)), kinds)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 11; i++ {
		w.Advance(1)
		d.Update(w)
	}
	if d.Wave() != 2 {
		t.Fatalf("expected 2 waves after 11s, got %d", d.Wave())
	}
}

func TestReloadKeepsOldScriptOnError(t *testing.T) {
	d, err := New([]byte(`x := 1`), Config{Interval: 1}, rand.New(rand.NewSource(1)), kinds)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := d.Reload([]byte(`this is not tengo`)); err == nil {
		t.Fatalf("expected compile error")
	}
	if _, err := d.Run(newWorld(t)); err != nil {
		t.Fatalf("old script should still run: %v", err)
	}
}

func TestNewRequiresRNG(t *testing.T) {
	if _, err := New([]byte(`x := 1`), Config{}, nil, kinds); err == nil {
		t.Fatalf("expected error without rng")
	}
}
