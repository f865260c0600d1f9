package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
	"github.com/milk9111/hammerjam/nav"
	"github.com/milk9111/hammerjam/prefabs"
)

// NewArena creates the singleton that owns the navmesh and the run record.
func NewArena(w *ecs.World, spec *prefabs.ArenaSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("arena: nil spec")
	}

	mesh, err := BuildMesh(spec)
	if err != nil {
		return 0, fmt.Errorf("arena: %w", err)
	}

	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.ArenaTagComponent.Kind(), &component.ArenaTag{}); err != nil {
		return 0, fmt.Errorf("arena: add tag: %w", err)
	}
	if err := ecs.Add(w, entity, component.NavMeshComponent.Kind(), &component.NavMesh{Mesh: mesh}); err != nil {
		return 0, fmt.Errorf("arena: add navmesh: %w", err)
	}
	if err := ecs.Add(w, entity, component.ScoreboardComponent.Kind(), &component.Scoreboard{}); err != nil {
		return 0, fmt.Errorf("arena: add scoreboard: %w", err)
	}
	return entity, nil
}

// BuildMesh turns the arena outlines into a navmesh.
func BuildMesh(spec *prefabs.ArenaSpec) (*nav.Mesh, error) {
	walkable := nav.Fan(outline(spec.Walkable))
	var sampling []nav.Triangle
	if len(spec.Sampling) > 0 {
		sampling = nav.Fan(outline(spec.Sampling))
	}
	return nav.NewMeshWithSampling(walkable, sampling)
}

func outline(points []prefabs.PointSpec) []cp.Vector {
	out := make([]cp.Vector, 0, len(points))
	for _, p := range points {
		out = append(out, cp.Vector{X: p.X, Y: p.Z})
	}
	return out
}
