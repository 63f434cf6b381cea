package audio

import (
	"testing"
	"time"

	"github.com/litla-gamaleigan/arcade/internal/sim"
)

func drain(t *testing.T, s *toneStreamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
}

func TestToneLength(t *testing.T) {
	s := tone(waveSine, 440, 100*time.Millisecond, 0.3).(*toneStreamer)
	got := drain(t, s)
	want := sampleRate.N(100 * time.Millisecond)
	if len(got) != want {
		t.Errorf("samples: got %d, want %d", len(got), want)
	}
}

func TestToneStaysWithinGain(t *testing.T) {
	s := tone(waveSquare, 440, 50*time.Millisecond, 0.2).(*toneStreamer)
	for _, v := range drain(t, s) {
		if v > 0.2 || v < -0.2 {
			t.Fatalf("sample %f exceeds gain", v)
		}
	}
}

func TestToneEnvelopeStartsAndEndsQuiet(t *testing.T) {
	s := tone(waveSaw, 150, 80*time.Millisecond, 0.3).(*toneStreamer)
	out := drain(t, s)
	if out[0] != 0 {
		t.Errorf("first sample should be silent, got %f", out[0])
	}
	last := out[len(out)-1]
	if last > 0.01 || last < -0.01 {
		t.Errorf("last sample should be near silent, got %f", last)
	}
}

func TestExhaustedToneStops(t *testing.T) {
	s := tone(waveSine, 440, 10*time.Millisecond, 0.3).(*toneStreamer)
	drain(t, s)
	n, ok := s.Stream(make([][2]float64, 16))
	if n != 0 || ok {
		t.Errorf("drained tone should stop, got n=%d ok=%v", n, ok)
	}
}

func TestUninitializedNotifierIsSilent(t *testing.T) {
	n := NewNotifier()
	// Must not panic before Init.
	n.Notify(sim.SoundClick)
	n.Close()
}
