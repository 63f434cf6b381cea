package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveSaw
)

// toneStreamer generates one enveloped tone and then drains.
type toneStreamer struct {
	wave    waveform
	freq    float64
	gain    float64
	total   int
	attack  int
	release int
	pos     int
	phase   float64
}

// tone builds a fixed-length tone with a short attack/release envelope
// to avoid clicks at the edges.
func tone(wave waveform, freq float64, d time.Duration, gain float64) beep.Streamer {
	total := sampleRate.N(d)
	edge := sampleRate.N(5 * time.Millisecond)
	if 2*edge > total {
		edge = total / 2
	}
	return &toneStreamer{
		wave:    wave,
		freq:    freq,
		gain:    gain,
		total:   total,
		attack:  edge,
		release: edge,
	}
}

func (t *toneStreamer) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}

	n := 0
	phaseInc := t.freq / float64(sampleRate)
	for i := range samples {
		if t.pos >= t.total {
			break
		}

		var v float64
		switch t.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			if t.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case waveSaw:
			v = 2 * (t.phase - 0.5)
		}

		env := 1.0
		if t.pos < t.attack && t.attack > 0 {
			env = float64(t.pos) / float64(t.attack)
		} else if left := t.total - t.pos; left < t.release && t.release > 0 {
			env = float64(left) / float64(t.release)
		}

		v *= t.gain * env
		samples[i][0] = v
		samples[i][1] = v

		t.phase += phaseInc
		if t.phase >= 1 {
			t.phase -= 1
		}
		t.pos++
		n++
	}
	return n, true
}

func (t *toneStreamer) Err() error {
	return nil
}
