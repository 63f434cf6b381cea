package sim

// SoundEvent identifies a feedback cue a game wants played.
// The simulation only knows this narrow interface; the actual tone
// synthesis lives in the audio package and is injected by the platform.
type SoundEvent int

const (
	SoundClick SoundEvent = iota
	SoundSuccess
	SoundError
	SoundWin
)

// Notifier receives feedback cues from the simulation.
// Implementations must be non-blocking; a tick must never wait on audio.
type Notifier interface {
	Notify(e SoundEvent)
}

// NopNotifier discards all cues. Used as the default and in tests.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(SoundEvent) {}
