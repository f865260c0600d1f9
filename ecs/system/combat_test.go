package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
)

func TestDamageAccumulatesWithoutClamping(t *testing.T) {
	cases := []struct {
		name      string
		strengths []float64
		want      float64
	}{
		{"single", []float64{20}, 30},
		{"several_same_tick", []float64{5, 5, 5}, 35},
		{"over_subtracts", []float64{20, 20, 20}, -10},
		{"negative_heals_past_total", []float64{-10}, 60},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := spawnEnemy(t, w, eyeballSpec(), cp.Vector{})
			for _, s := range c.strengths {
				emitDamage(w, 0, e, s)
			}
			NewDamageSystem().Update(w)
			if h := mustGet(t, w, e, component.HealthComponent); !near(h.Current, c.want) {
				t.Fatalf("current = %v, want %v", h.Current, c.want)
			}
			if w.Events().Len() != 0 {
				t.Fatalf("damage events should be fully drained")
			}
		})
	}
}

func TestDamageDropsReceiverWithoutHealth(t *testing.T) {
	w := ecs.NewWorld()
	bare := ecs.CreateEntity(w)
	var observed int
	s := NewDamageSystem(func(*ecs.World, component.Damage) { observed++ })

	emitDamage(w, 0, bare, 5)
	emitDamage(w, 0, ecs.Entity(0), 5)
	s.Update(w)

	if observed != 0 {
		t.Fatalf("dropped events must not reach observers, got %d", observed)
	}
}

func TestDamageObserversSeeFIFOOrder(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnEnemy(t, w, eyeballSpec(), cp.Vector{})
	var seen []float64
	s := NewDamageSystem()
	s.Observe(func(_ *ecs.World, d component.Damage) { seen = append(seen, d.Strength) })

	for _, v := range []float64{1, 2, 3} {
		emitDamage(w, 0, e, v)
	}
	s.Update(w)
	if len(seen) != 3 || seen[0] != 1 || seen[1] != 2 || seen[2] != 3 {
		t.Fatalf("unexpected order %v", seen)
	}
}

func TestHealthLastConverges(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnEnemy(t, w, eyeballSpec(), cp.Vector{})
	h := mustGet(t, w, e, component.HealthComponent)
	if h.Last != h.Total || h.Current != h.Total {
		t.Fatalf("new record should start full: %+v", h)
	}
	h.Current = 10

	s := NewHealthSystem()
	prev := h.Last
	for i := 0; i < 600; i++ {
		w.Advance(tick)
		s.Update(w)
		if h.Last > prev {
			t.Fatalf("last moved away from current at step %d", i)
		}
		if h.Last < h.Current {
			t.Fatalf("last overshot to %v at step %d", h.Last, i)
		}
		prev = h.Last
	}
	if h.Last-h.Current > 0.01*40 {
		t.Fatalf("last did not converge, still %v", h.Last)
	}

	h.Last = h.Current
	w.Advance(tick)
	s.Update(w)
	if h.Last != h.Current {
		t.Fatalf("settled value moved to %v", h.Last)
	}
}

func TestReaperRemovesDeadNonPlayers(t *testing.T) {
	cases := []struct {
		name        string
		current     float64
		player      bool
		wantRemoved bool
	}{
		{"enemy_alive", 0.2, false, false},
		{"enemy_at_threshold", 0.1, false, true},
		{"enemy_negative", -10, false, true},
		{"player_exempt", -10, true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			addMesh(t, w, squareMesh(t, 20))
			var e ecs.Entity
			if c.player {
				e = spawnPlayer(t, w, cp.Vector{})
			} else {
				e = spawnEnemy(t, w, eyeballSpec(), cp.Vector{})
			}
			mustGet(t, w, e, component.HealthComponent).Current = c.current

			sched := ecs.NewScheduler(NewReaperSystem(), NewHealthBarSystem())
			w.Advance(tick)
			sched.Update(w)

			if removed := !ecs.IsAlive(w, e); removed != c.wantRemoved {
				t.Fatalf("removed = %v, want %v", removed, c.wantRemoved)
			}
			bars := ecs.Count(w, component.HealthBarComponent.Kind())
			if c.wantRemoved && bars != 0 {
				t.Fatalf("health bar should leave with its owner, %d left", bars)
			}
			if !c.wantRemoved && bars != 1 {
				t.Fatalf("expected the bar to stay, got %d", bars)
			}
			kills := scoreboard(w).Kills
			if c.wantRemoved && kills != 1 || !c.wantRemoved && kills != 0 {
				t.Fatalf("unexpected kill count %d", kills)
			}
		})
	}
}

func TestReaperQueuesWithinTickRemovesAtEndOfFrame(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnEnemy(t, w, eyeballSpec(), cp.Vector{})
	mustGet(t, w, e, component.HealthComponent).Current = 0

	NewReaperSystem().Update(w)
	if !ecs.RemovalQueued(w, e) || !ecs.IsAlive(w, e) {
		t.Fatalf("expected queued but still alive before the frame ends")
	}
	w.EndFrame()
	if ecs.IsAlive(w, e) {
		t.Fatalf("expected removal at end of frame")
	}
}

func TestEnemyDiesAfterThreeHeavyHits(t *testing.T) {
	w := ecs.NewWorld()
	addMesh(t, w, squareMesh(t, 20))
	e := spawnEnemy(t, w, eyeballSpec(), cp.Vector{})
	sched := ecs.NewScheduler(NewDamageSystem(), NewHealthSystem(), NewReaperSystem(), NewHealthBarSystem())

	emitDamage(w, 0, e, 20)
	w.Advance(tick)
	sched.Update(w)
	if h := mustGet(t, w, e, component.HealthComponent); !near(h.Current, 30) {
		t.Fatalf("after one hit current = %v, want 30", h.Current)
	}

	emitDamage(w, 0, e, 20)
	emitDamage(w, 0, e, 20)
	w.Advance(tick)
	sched.Update(w)

	if ecs.IsAlive(w, e) {
		t.Fatalf("enemy at -10 should be removed by end of frame")
	}
}

func TestHealthBarMirrorsOwner(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnEnemy(t, w, eyeballSpec(), cp.Vector{})
	h := mustGet(t, w, e, component.HealthComponent)
	h.Current, h.Last = 20, 35

	NewHealthBarSystem().Update(w)

	var bar *component.HealthBar
	ecs.ForEach(w, component.HealthBarComponent.Kind(), func(_ ecs.Entity, b *component.HealthBar) { bar = b })
	if bar == nil || ecs.Entity(bar.Owner) != e {
		t.Fatalf("expected a bar owned by %v", e)
	}
	if bar.Total != 50 || bar.Current != 20 || bar.Last != 35 {
		t.Fatalf("bar not synced: %+v", bar)
	}
	cur, last := bar.Fraction()
	if !near(cur, 0.4) || !near(last, 0.7) {
		t.Fatalf("fractions %v %v", cur, last)
	}
}

func TestScoreboardEndsRunWhenPlayerFalls(t *testing.T) {
	w := ecs.NewWorld()
	addMesh(t, w, squareMesh(t, 20))
	p := spawnPlayer(t, w, cp.Vector{})
	s := NewScoreboardSystem()

	w.Advance(0.5)
	s.Update(w)
	if sb := scoreboard(w); sb.Over || !near(sb.Survived, 0.5) {
		t.Fatalf("unexpected scoreboard %+v", sb)
	}

	mustGet(t, w, p, component.HealthComponent).Current = 0
	w.Advance(0.5)
	s.Update(w)
	w.Advance(0.5)
	s.Update(w)
	if sb := scoreboard(w); !sb.Over || !near(sb.Survived, 1) {
		t.Fatalf("run should end and stop the clock: %+v", sb)
	}
	if !ecs.IsAlive(w, p) {
		t.Fatalf("player must never be removed")
	}
}
