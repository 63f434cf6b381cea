package sim

import (
	"github.com/litla-gamaleigan/arcade/internal/core"
)

// Phase is the lifecycle state of a round.
type Phase int

const (
	PhaseIdle      Phase = iota
	PhasePlaying         // Normal simulation
	PhaseLevelUp         // Short announcement freeze; countdown keeps running
	PhaseReporting       // End-of-shift report shown, waiting for confirm
	PhaseEnded           // Final; OnGameOver has fired
)

// LevelConfig describes one level/shift row of a game's progression table.
// A round past the last row repeats its parameters (implicit endless
// continuation); the level index itself keeps incrementing.
type LevelConfig struct {
	Name          string
	Quota         int     // Successes needed to advance
	SpeedMult     float64 // Motion-rate multiplier for this level
	SpawnInterval int     // Ticks between spawns; 0 for games that spawn on their own terms
	BonusTime     int     // Seconds added to the countdown on entering this level
	TimeLimit     int     // If >0, countdown is reset to this many seconds on entering
}

// Mistake is one record of a wrong resolution, append-only within a round.
type Mistake struct {
	Item    string // Entity label
	Chosen  string // Category the player had selected
	Correct string // Category the entity belonged in
}

// Options configures a round. Zero-value callbacks and notifier are safe.
type Options struct {
	Levels          []LevelConfig
	RoundTime       int // Seconds on the clock at round start
	ComboStep       int // Extra points per combo unit on success
	ComboCap        int // Max combo counter value; 0 disables the bonus cap logic
	LevelUpFreeze   int // Ticks of level-up announcement freeze
	ReportOnTimeout bool

	Notifier   Notifier
	OnScore    func(total int)
	OnGameOver func()
}

// Round is the single authoritative state of one playthrough. All mutation
// happens from the owning game's Step call on the simulation tick; nothing
// else may touch it, so no locking is needed.
type Round struct {
	cfg  core.RuntimeConfig
	opts Options

	phase         Phase
	score         int
	combo         int
	level         int
	quotaOverride int // >0 replaces the table quota (dynamic quotas)
	quotaProgress int
	mistakes      []Mistake

	ticksLeft   int
	freezeTicks int
	tick        uint64

	entities []*Entity
	nextID   uint64

	gameOverFired bool
}

// NewRound creates a round in PhaseIdle.
func NewRound(cfg core.RuntimeConfig, opts Options) *Round {
	if opts.Notifier == nil {
		opts.Notifier = NopNotifier{}
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	return &Round{cfg: cfg, opts: opts}
}

// Start resets all round state and enters PhasePlaying.
func (r *Round) Start() {
	r.phase = PhasePlaying
	r.score = 0
	r.combo = 0
	r.level = 0
	r.quotaOverride = 0
	r.quotaProgress = 0
	r.mistakes = nil
	r.ticksLeft = r.opts.RoundTime * r.cfg.TickRate
	if first := r.levelCfg(0); first.TimeLimit > 0 {
		r.ticksLeft = first.TimeLimit * r.cfg.TickRate
	}
	r.freezeTicks = 0
	r.tick = 0
	r.entities = r.entities[:0]
	r.nextID = 0
	r.gameOverFired = false
}

// Step advances the round clock by one tick and returns true if the game
// should run its simulation phases (spawn, motion, resolution) this tick.
// Returns false during the level-up freeze, the report screen, and after
// the round has ended. The countdown keeps running through the level-up
// announcement but not through the report.
func (r *Round) Step() bool {
	if r.phase != PhasePlaying && r.phase != PhaseLevelUp {
		return false
	}

	r.tick++
	r.ticksLeft--
	if r.ticksLeft <= 0 {
		r.ticksLeft = 0
		r.timeout()
		return false
	}

	if r.freezeTicks > 0 {
		r.freezeTicks--
		if r.freezeTicks == 0 {
			r.phase = PhasePlaying
		}
		return false
	}

	return true
}

// Phase returns the current lifecycle phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Tick returns the number of ticks stepped since Start.
func (r *Round) Tick() uint64 {
	return r.tick
}

// Score returns the current score (always >= 0).
func (r *Round) Score() int {
	return r.score
}

// Combo returns the consecutive-success counter.
func (r *Round) Combo() int {
	return r.combo
}

// Level returns the current level/shift index. Monotonic within a round.
func (r *Round) Level() int {
	return r.level
}

// LevelCfg returns the parameters for the current level, repeating the
// final table row once the index runs past it.
func (r *Round) LevelCfg() LevelConfig {
	return r.levelCfg(r.level)
}

func (r *Round) levelCfg(idx int) LevelConfig {
	if len(r.opts.Levels) == 0 {
		return LevelConfig{SpeedMult: 1}
	}
	if idx >= len(r.opts.Levels) {
		idx = len(r.opts.Levels) - 1
	}
	return r.opts.Levels[idx]
}

// Quota returns the success count required to finish the current level.
func (r *Round) Quota() int {
	if r.quotaOverride > 0 {
		return r.quotaOverride
	}
	return r.LevelCfg().Quota
}

// SetQuota overrides the current level's quota. Used by games whose quota
// is computed at level start (e.g. snow cells on a generated map).
func (r *Round) SetQuota(q int) {
	r.quotaOverride = q
}

// QuotaProgress returns successes counted toward the current quota.
func (r *Round) QuotaProgress() int {
	return r.quotaProgress
}

// Mistakes returns the append-only mistake log.
func (r *Round) Mistakes() []Mistake {
	return r.mistakes
}

// TimeLeft returns whole seconds remaining, rounded up.
func (r *Round) TimeLeft() int {
	return (r.ticksLeft + r.cfg.TickRate - 1) / r.cfg.TickRate
}

// AddTime adds bonus seconds to the countdown.
func (r *Round) AddTime(seconds int) {
	r.ticksLeft += seconds * r.cfg.TickRate
}

// Notify forwards a feedback cue to the injected notifier.
func (r *Round) Notify(e SoundEvent) {
	r.opts.Notifier.Notify(e)
}

// Add registers a new entity with the round, assigning its ID.
func (r *Round) Add(e Entity) *Entity {
	r.nextID++
	e.ID = r.nextID
	stored := e
	r.entities = append(r.entities, &stored)
	return &stored
}

// Entities returns the live entity set. Callers must not remove entries
// directly; resolution goes through Resolve.
func (r *Round) Entities() []*Entity {
	return r.entities
}

// Resolve removes the entity with the given ID from the live set.
// Returns true exactly once per entity: a second call for the same ID
// returns false, so no entity can score twice.
func (r *Round) Resolve(id uint64) bool {
	for i, e := range r.entities {
		if e.ID == id {
			r.entities = append(r.entities[:i], r.entities[i+1:]...)
			return true
		}
	}
	return false
}

// ClearEntities removes all live entities without resolving them.
// Used on level transitions (hard reset, not a graceful drain).
func (r *Round) ClearEntities() {
	r.entities = r.entities[:0]
}

// Success records a correct resolution: adds base plus the combo bonus,
// bumps the combo (capped) and the quota progress, and triggers a level
// transition when the quota is reached. Returns the points awarded.
func (r *Round) Success(base int) int {
	points := base + r.opts.ComboStep*r.combo
	r.addScore(points)
	if r.combo < r.opts.ComboCap || r.opts.ComboCap == 0 {
		r.combo++
	}
	r.quotaProgress++
	r.Notify(SoundSuccess)
	if r.quotaProgress >= r.Quota() && r.Quota() > 0 {
		r.advanceLevel()
	}
	return points
}

// Failure records a wrong resolution: subtracts the penalty (score never
// drops below zero), resets the combo, and appends the mistake if given.
func (r *Round) Failure(penalty int, m *Mistake) {
	r.addScore(-penalty)
	r.combo = 0
	if m != nil {
		r.mistakes = append(r.mistakes, *m)
	}
	r.Notify(SoundError)
}

// Award adds points outside the success/combo/quota path, e.g. hidden
// item finds. The non-negativity clamp still applies.
func (r *Round) Award(points int) {
	r.addScore(points)
}

// AdvanceLevel forces a level transition regardless of quota. Used by
// games whose progression is score-driven rather than count-driven.
func (r *Round) AdvanceLevel() {
	r.advanceLevel()
}

func (r *Round) advanceLevel() {
	r.level++
	r.quotaProgress = 0
	r.quotaOverride = 0
	r.ClearEntities()
	r.freezeTicks = r.opts.LevelUpFreeze
	if r.freezeTicks > 0 {
		r.phase = PhaseLevelUp
	}

	next := r.LevelCfg()
	if next.TimeLimit > 0 {
		r.ticksLeft = next.TimeLimit * r.cfg.TickRate
	} else if next.BonusTime > 0 {
		r.AddTime(next.BonusTime)
	}
	r.Notify(SoundWin)
}

// FinishReport leaves the report screen and ends the round.
// No-op unless the round is in PhaseReporting.
func (r *Round) FinishReport() {
	if r.phase == PhaseReporting {
		r.end()
	}
}

// End terminates the round immediately (player quit mid-round).
func (r *Round) End() {
	if r.phase != PhaseEnded {
		r.end()
	}
}

func (r *Round) timeout() {
	if r.opts.ReportOnTimeout {
		r.phase = PhaseReporting
		r.Notify(SoundWin)
		return
	}
	r.end()
}

func (r *Round) end() {
	r.phase = PhaseEnded
	if !r.gameOverFired {
		r.gameOverFired = true
		if r.opts.OnGameOver != nil {
			r.opts.OnGameOver()
		}
	}
}

func (r *Round) addScore(delta int) {
	next := r.score + delta
	if next < 0 {
		next = 0
	}
	if next == r.score {
		return
	}
	r.score = next
	if r.opts.OnScore != nil {
		r.opts.OnScore(r.score)
	}
}

// BaseState assembles the common GameState fields from round state.
func (r *Round) BaseState(paused bool) core.GameState {
	return core.GameState{
		Score:     r.score,
		Combo:     r.combo,
		Level:     r.level,
		TimeLeft:  r.TimeLeft(),
		Mistakes:  len(r.mistakes),
		GameOver:  r.phase == PhaseEnded,
		Reporting: r.phase == PhaseReporting,
		Paused:    paused,
	}
}
