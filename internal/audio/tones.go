package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects the oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a periodic waveform that ends after a fixed number of samples.
type tone struct {
	freq     float64
	wave     WaveType
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
	rng      *rand.Rand
}

// NewTone returns a streamer producing duration worth of the given wave.
func NewTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:  freq,
		wave:  wave,
		rate:  rate,
		total: rate.N(duration),
		rng:   rand.New(rand.NewSource(int64(freq*1000) + 1)), //#nosec G404 -- noise colour, not crypto
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.position >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.position >= t.total {
			return i, true
		}
		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (t.phase - 0.5)
		case WaveNoise:
			val = t.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// decay fades a stream linearly to silence over its length.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

// NewDecay shapes s so that its volume falls from 1 to 0 across duration.
func NewDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, total: rate.N(duration)}
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 0.0
		if d.total > 0 && d.position < d.total {
			vol = float64(d.total-d.position) / float64(d.total)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// withVolume scales s by a linear factor; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one shaped tone of a sound effect.
type note struct {
	freq float64
	dur  time.Duration
	wave WaveType
}

func (n note) streamer(rate beep.SampleRate) beep.Streamer {
	return NewDecay(NewTone(n.freq, n.dur, n.wave, rate), n.dur, rate)
}

// sequence plays notes back to back at the given volume.
func sequence(rate beep.SampleRate, vol float64, notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, n.streamer(rate))
	}
	return withVolume(beep.Seq(parts...), vol)
}
