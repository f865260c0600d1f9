package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyInput(t *testing.T) {
	cases := []struct {
		name     string
		ev       *tcell.EventKey
		handled  bool
		wantX    float64
		wantY    float64
		wantSlam bool
	}{
		{"left_arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), true, -1, 0, false},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), true, 0, 1, false},
		{"vi_down", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), true, 0, -1, false},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), true, 0, 0, true},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), false, 0, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			k := &keyInput{}
			if got := k.press(c.ev); got != c.handled {
				t.Fatalf("press handled=%v, want %v", got, c.handled)
			}
			in := k.Poll()
			if in.MoveX != c.wantX || in.MoveY != c.wantY || in.Slam != c.wantSlam {
				t.Fatalf("unexpected input %+v", in)
			}
		})
	}
}

func TestKeyInputReleasesAfterHold(t *testing.T) {
	k := &keyInput{}
	k.press(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	for i := 0; i < holdTicks; i++ {
		if in := k.Poll(); in.MoveX != 1 {
			t.Fatalf("tick %d: expected held move, got %+v", i, in)
		}
	}
	if in := k.Poll(); in.MoveX != 0 {
		t.Fatalf("expected release after %d ticks, got %+v", holdTicks, in)
	}
}

func TestSlamIsOneShot(t *testing.T) {
	k := &keyInput{}
	k.press(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if !k.Poll().Slam {
		t.Fatalf("expected slam on first poll")
	}
	if k.Poll().Slam {
		t.Fatalf("slam should not repeat")
	}
}
