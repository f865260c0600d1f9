package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
)

func TestSmackRequestsFreezeAndFlash(t *testing.T) {
	cases := []struct {
		name       string
		enemyAt    cp.Vector
		wantFreeze int
		wantFlash  bool
	}{
		{"hit", cp.Vector{X: 2}, 3, true},
		{"miss", cp.Vector{X: -5}, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			p := spawnPlayer(t, w, cp.Vector{})
			e := spawnEnemy(t, w, eyeballSpec(), c.enemyAt)
			swing(t, w, p)

			spec := smackSpec()
			spec.FreezeFrames = 3
			spec.FlashFrames = 6

			anim := NewAnimationSystem()
			smack := NewSmackSystem(spec)
			freeze := NewHitFreezeSystem()
			flashed := false
			for i := 0; i < 40; i++ {
				w.Advance(tick)
				anim.Update(w)
				smack.Update(w)
				freeze.Update(w)
				if ecs.Has(w, e, component.WhiteFlashComponent.Kind()) {
					flashed = true
				}
				w.EndFrame()
			}

			froze := 0
			for freeze.Hold() {
				froze++
			}
			if froze != c.wantFreeze {
				t.Fatalf("expected freeze %d, got %d", c.wantFreeze, froze)
			}
			if flashed != c.wantFlash {
				t.Fatalf("expected flash=%v", c.wantFlash)
			}
			if ecs.Has(w, p, component.HitFreezeRequestComponent.Kind()) {
				t.Fatalf("freeze request should be consumed")
			}
		})
	}
}

func TestHitFreezeTakesLongestRequest(t *testing.T) {
	w := ecs.NewWorld()
	for _, frames := range []int{2, 7, 4} {
		_ = ecs.Add(w, ecs.CreateEntity(w), component.HitFreezeRequestComponent.Kind(), &component.HitFreezeRequest{Frames: frames})
	}
	s := NewHitFreezeSystem()
	s.Update(w)
	s.Update(w)

	held := 0
	for s.Hold() {
		held++
	}
	if held != 7 {
		t.Fatalf("expected a freeze of 7 ticks, got %d", held)
	}
}

func TestHitFreezeShorterRequestDoesNotCut(t *testing.T) {
	w := ecs.NewWorld()
	s := NewHitFreezeSystem()
	_ = ecs.Add(w, ecs.CreateEntity(w), component.HitFreezeRequestComponent.Kind(), &component.HitFreezeRequest{Frames: 5})
	s.Update(w)
	s.Hold()
	_ = ecs.Add(w, ecs.CreateEntity(w), component.HitFreezeRequestComponent.Kind(), &component.HitFreezeRequest{Frames: 2})
	s.Update(w)

	held := 0
	for s.Hold() {
		held++
	}
	if held != 4 {
		t.Fatalf("expected 4 remaining ticks, got %d", held)
	}
}

func TestWhiteFlashBlinksThenClears(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.WhiteFlashComponent.Kind(), &component.WhiteFlash{Frames: 6, Interval: 2, On: true})

	s := NewWhiteFlashSystem()
	var states []bool
	for ecs.Has(w, e, component.WhiteFlashComponent.Kind()) {
		s.Update(w)
		if wf, ok := ecs.Get(w, e, component.WhiteFlashComponent.Kind()); ok {
			states = append(states, wf.On)
		}
		if len(states) > 10 {
			t.Fatalf("flash never cleared")
		}
	}
	want := []bool{true, false, false, true, true}
	if len(states) != len(want) {
		t.Fatalf("expected %v, got %v", want, states)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, states)
		}
	}
}
