// Package audio turns round feedback cues into short generated tones.
// Everything degrades to silence when no audio backend is available, so
// the arcade runs fine on headless boxes and over SSH.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/litla-gamaleigan/arcade/internal/sim"
)

const sampleRate = beep.SampleRate(48000)

// Notifier plays feedback tones through the system speaker. The zero
// value is unusable; construct with NewNotifier and call Init.
type Notifier struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	disabled    bool
}

// NewNotifier creates a notifier. Nothing plays until Init succeeds.
func NewNotifier() *Notifier {
	return &Notifier{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Failure flips the notifier into silent mode
// rather than erroring; the caller may log the returned error.
func (n *Notifier) Init() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.initialized || n.disabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		n.disabled = true
		return err
	}
	speaker.Play(n.mixer)
	n.initialized = true
	return nil
}

// Close silences the notifier. The speaker itself stays open; beep has
// no teardown, clearing the mixer is enough.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.initialized {
		return
	}
	speaker.Lock()
	n.mixer.Clear()
	speaker.Unlock()
	n.initialized = false
}

// Notify implements sim.Notifier.
func (n *Notifier) Notify(e sim.SoundEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.initialized {
		return
	}

	var s beep.Streamer
	switch e {
	case sim.SoundClick:
		s = tone(waveSquare, 440, 30*time.Millisecond, 0.15)
	case sim.SoundSuccess:
		s = beep.Seq(
			tone(waveSine, 880, 70*time.Millisecond, 0.3),
			tone(waveSine, 1760, 90*time.Millisecond, 0.3),
		)
	case sim.SoundError:
		s = beep.Seq(
			tone(waveSaw, 150, 80*time.Millisecond, 0.3),
			tone(waveSaw, 100, 120*time.Millisecond, 0.3),
		)
	case sim.SoundWin:
		s = beep.Seq(
			tone(waveSine, 523, 100*time.Millisecond, 0.3),
			tone(waveSine, 659, 100*time.Millisecond, 0.3),
			tone(waveSine, 784, 180*time.Millisecond, 0.3),
		)
	default:
		return
	}

	speaker.Lock()
	n.mixer.Add(s)
	speaker.Unlock()
}
