// Package audio synthesizes the arena's sound cues.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
)

const sampleRate = beep.SampleRate(48000)

// Cue names a sound.
type Cue int

const (
	CueSmack Cue = iota
	CueHurt
	CueKill
)

// Cues mixes short synthesized tones. Before Init succeeds every Play is a
// no-op, so a machine without an audio device still runs.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

func NewCues(volume float64) *Cues {
	return &Cues{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the speaker. Errors are returned for logging; the cues stay
// silent afterwards.
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// Play queues a cue on the mixer.
func (c *Cues) Play(cue Cue) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	s := Streamer(cue, c.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Streamer builds the tone for a cue at the given linear volume.
func Streamer(cue Cue, volume float64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case CueSmack:
		s = beep.Seq(
			NewTone(sampleRate, 110, -50, WaveSquare, 60*time.Millisecond),
			NewTone(sampleRate, 70, -30, WaveSine, 120*time.Millisecond),
		)
	case CueHurt:
		s = NewTone(sampleRate, 320, -180, WaveSaw, 140*time.Millisecond)
	case CueKill:
		s = NewTone(sampleRate, 440, 440, WaveSine, 180*time.Millisecond)
	default:
		return nil
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   volumeExp(volume),
		Silent:   volume <= 0,
	}
}

// volumeExp converts a linear gain to beep's base-2 exponent.
func volumeExp(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Log2(v)
}

// OnDamage plays the hurt cue when the player takes a hit and the smack cue
// otherwise. It matches system.DamageObserver.
func (c *Cues) OnDamage(w *ecs.World, d component.Damage) {
	if ecs.Has(w, ecs.Entity(d.Receiver), component.PlayerTagComponent.Kind()) {
		c.Play(CueHurt)
		return
	}
	c.Play(CueSmack)
}

// Watch plays a kill cue whenever the kill count rises.
type Watch struct {
	cues  *Cues
	kills int
}

func NewWatch(c *Cues) *Watch {
	return &Watch{cues: c}
}

func (w *Watch) Score(sb component.Scoreboard) {
	if sb.Kills > w.kills {
		w.cues.Play(CueKill)
	}
	w.kills = sb.Kills
}
