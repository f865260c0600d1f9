package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// tone is a fixed-length oscillator with a linear attack and release.
type tone struct {
	rate    beep.SampleRate
	freq    float64
	sweep   float64
	wave    Wave
	phase   float64
	pos     int
	total   int
	attack  int
	release int
}

// NewTone returns a streamer that plays freq for d and ends. Sweep shifts the
// pitch linearly by that many hertz over the tone.
func NewTone(rate beep.SampleRate, freq, sweep float64, wave Wave, d time.Duration) beep.Streamer {
	total := rate.N(d)
	return &tone{
		rate:    rate,
		freq:    freq,
		sweep:   sweep,
		wave:    wave,
		total:   total,
		attack:  min(rate.N(5*time.Millisecond), total/2),
		release: min(rate.N(40*time.Millisecond), total/2),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSquare:
			val = 1
			if t.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (t.phase - 0.5)
		default:
			val = math.Sin(2 * math.Pi * t.phase)
		}
		val *= t.envelope()

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(t.pos) / float64(t.total)
		t.phase += (t.freq + t.sweep*progress) / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) envelope() float64 {
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	if left := t.total - t.pos; t.release > 0 && left < t.release {
		return float64(left) / float64(t.release)
	}
	return 1
}

func (t *tone) Err() error { return nil }
