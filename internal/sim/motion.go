package sim

// Oscillator bounces a scalar between two bounds, reversing direction
// exactly at the bounds (reflection, not wraparound). Used for moving
// containers in the hook and sand games.
type Oscillator struct {
	Pos   float64
	Speed float64
	Min   float64
	Max   float64
	dir   float64
}

// NewOscillator creates an oscillator starting at pos, moving towards Max.
func NewOscillator(pos, speed, min, max float64) *Oscillator {
	return &Oscillator{Pos: pos, Speed: speed, Min: min, Max: max, dir: 1}
}

// Advance moves the oscillator one tick and returns the new position.
func (o *Oscillator) Advance() float64 {
	if o.Speed == 0 {
		return o.Pos
	}
	next := o.Pos + o.Speed*o.dir
	if next > o.Max || next < o.Min {
		o.dir = -o.dir
		return o.Pos
	}
	o.Pos = next
	return o.Pos
}

// Drift accumulates an offset while an actuator is active (extending) and
// decays it multiplicatively once the actuator retracts. Models wind on
// the hook arm.
type Drift struct {
	Value float64
	Gain  float64 // Fraction of the force accumulated per active tick
	Decay float64 // Multiplier applied per inactive tick
}

// NewDrift creates a drift accumulator with the given gain and decay.
func NewDrift(gain, decay float64) *Drift {
	return &Drift{Gain: gain, Decay: decay}
}

// Advance updates the drift for one tick. force is the current wind
// scalar; it only matters while active.
func (d *Drift) Advance(active bool, force float64) float64 {
	if active {
		d.Value += force * d.Gain
	} else {
		d.Value *= d.Decay
	}
	return d.Value
}

// Reset zeroes the accumulated drift.
func (d *Drift) Reset() {
	d.Value = 0
}

// Slide tracks forced-continuation movement on low-friction ground.
// Entering an icy cell queues one forced move in the same direction;
// landing on ice again re-queues, so slides chain across cells.
type Slide struct {
	remaining int
	dx, dy    int
}

// Begin queues forced moves in the given direction. Re-entrant: calling
// Begin while already sliding restarts the count in the new direction.
func (s *Slide) Begin(dx, dy, moves int) {
	s.dx, s.dy = dx, dy
	s.remaining = moves
}

// Active reports whether a forced move is pending. While active, player
// input must be ignored.
func (s *Slide) Active() bool {
	return s.remaining > 0
}

// Take consumes one forced move and returns its direction.
// Returns zeros when no move is pending.
func (s *Slide) Take() (dx, dy int) {
	if s.remaining == 0 {
		return 0, 0
	}
	s.remaining--
	return s.dx, s.dy
}

// Stop cancels any pending forced moves (hit a wall or obstacle).
func (s *Slide) Stop() {
	s.remaining = 0
}
