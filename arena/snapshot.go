package arena

import (
	"sort"

	"github.com/milk9111/hammerjam/common"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
)

// Actor is a drawable body: the player or an enemy.
type Actor struct {
	ID     uint64  `json:"id"`
	Kind   string  `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Yaw    float64 `json:"yaw"`
	Scale  float64 `json:"scale"`
	Radius float64 `json:"radius"`
	Mode   string  `json:"mode,omitempty"`
	// Beam is the beam length while attacking, zero otherwise.
	Beam    float64 `json:"beam,omitempty"`
	Total   float64 `json:"total"`
	Current float64 `json:"current"`
	Last    float64 `json:"last"`
	Swing   float64 `json:"swing,omitempty"`
	Flash   bool    `json:"flash,omitempty"`
}

// Circle is a floor marker: a hammer smack or a spawn circle.
type Circle struct {
	Kind     string  `json:"kind"`
	X        float64 `json:"x"`
	Z        float64 `json:"z"`
	Radius   float64 `json:"radius"`
	Progress float64 `json:"progress"`
}

type Snapshot struct {
	Tick     uint64   `json:"tick"`
	Survived float64  `json:"survived"`
	Kills    int      `json:"kills"`
	Over     bool     `json:"over"`
	Player   *Actor   `json:"player,omitempty"`
	Enemies  []Actor  `json:"enemies"`
	Markers  []Circle `json:"markers"`
}

// Snapshot captures the state front ends draw. Enemies are ordered by entity
// slot, so an enemy in a reused slot keeps its place among fresh ones.
func (s *Sim) Snapshot() Snapshot {
	w := s.World
	sb := s.Score()
	snap := Snapshot{
		Tick:     w.Tick(),
		Survived: sb.Survived,
		Kills:    sb.Kills,
		Over:     sb.Over,
	}

	bars := make(map[uint64]component.HealthBar)
	ecs.ForEach(w, component.HealthBarComponent.Kind(), func(_ ecs.Entity, bar *component.HealthBar) {
		bars[bar.Owner] = *bar
	})

	if t, ok := ecs.Get(w, s.player, component.TransformComponent.Kind()); ok {
		a := actor(w, s.player, t, bars)
		a.Kind = "player"
		if clip, ok := ecs.Get(w, s.player, component.AttackClipComponent.Kind()); ok && clip.Playing && clip.Duration > 0 {
			a.Swing = common.Clamp01(clip.Elapsed / clip.Duration)
		}
		snap.Player = &a
	}

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, en *component.Enemy, t *component.Transform) {
		a := actor(w, e, t, bars)
		a.Kind = string(en.Kind)
		if b, ok := ecs.Get(w, e, component.BehaviorComponent.Kind()); ok {
			a.Mode = b.Mode.String()
			if b.Mode == component.BehaviorAttacking {
				a.Beam = en.Params.BeamLength
			}
		}
		snap.Enemies = append(snap.Enemies, a)
	})
	sort.Slice(snap.Enemies, func(i, j int) bool { return slot(snap.Enemies[i]) < slot(snap.Enemies[j]) })

	ecs.ForEach3(w, component.HammerSmackComponent.Kind(), component.TransformComponent.Kind(), component.TTLComponent.Kind(), func(_ ecs.Entity, sm *component.HammerSmack, t *component.Transform, _ *component.TTL) {
		snap.Markers = append(snap.Markers, Circle{Kind: "smack", X: t.Position.X, Z: t.Position.Z, Radius: sm.Radius, Progress: sm.Percent})
	})
	ecs.ForEach3(w, component.SpawnCircleComponent.Kind(), component.TransformComponent.Kind(), component.TTLComponent.Kind(), func(_ ecs.Entity, sc *component.SpawnCircle, t *component.Transform, ttl *component.TTL) {
		snap.Markers = append(snap.Markers, Circle{Kind: "spawn:" + string(sc.Kind), X: t.Position.X, Z: t.Position.Z, Radius: sc.Radius, Progress: ttl.Progress()})
	})
	return snap
}

func actor(w *ecs.World, e ecs.Entity, t *component.Transform, bars map[uint64]component.HealthBar) Actor {
	a := Actor{
		ID:    uint64(e),
		X:     t.Position.X,
		Y:     t.Position.Y,
		Z:     t.Position.Z,
		Yaw:   t.Yaw,
		Scale: t.Scale,
	}
	if hc, ok := ecs.Get(w, e, component.HurtCircleComponent.Kind()); ok {
		a.Radius = hc.Radius
	}
	if wf, ok := ecs.Get(w, e, component.WhiteFlashComponent.Kind()); ok {
		a.Flash = wf.On
	}
	if bar, ok := bars[uint64(e)]; ok {
		a.Total, a.Current, a.Last = bar.Total, bar.Current, bar.Last
	}
	return a
}

func slot(a Actor) uint32 {
	return ecs.Entity(a.ID).Slot()
}
