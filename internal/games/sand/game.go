// Package sand implements the excavator game: swing the arm between the
// sand pit and the container, dig on one side and drop the load on the
// other. Higher grades add wind and a moving container.
package sand

import (
	"math/rand"

	"github.com/litla-gamaleigan/arcade/internal/config"
	"github.com/litla-gamaleigan/arcade/internal/core"
	"github.com/litla-gamaleigan/arcade/internal/registry"
	"github.com/litla-gamaleigan/arcade/internal/sim"
)

const levelUpFreezeSecs = 2

// Container travel and hit window, in arm-rotation degrees.
const (
	containerMin       = 155.0
	containerMax       = 175.0
	containerTolerance = 8.0
)

// windJitterScale converts the configured wind grade into degrees of
// rotation noise per tick while carrying.
const windJitterScale = 0.2

var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path for the next game.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next game.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game implements the excavator sand game logic.
type Game struct {
	cfg      core.RuntimeConfig
	gameCfg  config.SandConfig
	rng      *rand.Rand
	round    *sim.Round
	notifier sim.Notifier

	rotation   float64 // 0 = over the pit, 180 = full swing
	height     float64 // 0 = raised, 100 = buried
	carrying   bool
	container  *sim.Oscillator
	levelScore int
	lastLevel  int
	paused     bool
}

// New creates a new sand game instance.
func New() *Game {
	return &Game{notifier: sim.NopNotifier{}}
}

func init() {
	registry.Register("sand", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "sand"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Gröfuleikur"
}

// SetNotifier injects the sound collaborator.
func (g *Game) SetNotifier(n sim.Notifier) {
	if n != nil {
		g.notifier = n
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	if g.cfg.TickRate <= 0 {
		g.cfg.TickRate = 60
	}

	gameCfg, err := config.LoadSand(configPath)
	if err != nil {
		gameCfg = config.DefaultSandConfig()
	}
	config.ApplySandPreset(&gameCfg, config.DifficultyPreset(difficultyPreset))
	g.gameCfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.rotation = 90
	g.height = 50
	g.carrying = false
	g.levelScore = 0
	g.lastLevel = 0
	g.paused = false

	levels := make([]sim.LevelConfig, len(gameCfg.Levels))
	for i, lvl := range gameCfg.Levels {
		levels[i] = sim.LevelConfig{
			Name:      lvl.Name,
			SpeedMult: 1,
			BonusTime: gameCfg.BonusTime,
		}
	}

	g.round = sim.NewRound(g.cfg, sim.Options{
		Levels:        levels,
		RoundTime:     gameCfg.RoundTime,
		LevelUpFreeze: levelUpFreezeSecs * g.cfg.TickRate,
		Notifier:      g.notifier,
	})
	g.round.Start()
	g.placeContainer()
}

// levelRow returns the sand tuning row for the current level, repeating
// the last row on endless continuation.
func (g *Game) levelRow() config.SandLevel {
	idx := g.round.Level()
	if idx >= len(g.gameCfg.Levels) {
		idx = len(g.gameCfg.Levels) - 1
	}
	return g.gameCfg.Levels[idx]
}

// placeContainer positions the container for the current level.
func (g *Game) placeContainer() {
	row := g.levelRow()
	speed := 0.0
	if row.Moving {
		speed = row.Speed
	}
	mid := (containerMin + containerMax) / 2
	g.container = sim.NewOscillator(mid, speed, containerMin, containerMax)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.round.Phase() == sim.PhaseEnded {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if !g.round.Step() {
		return core.StepResult{State: g.State()}
	}

	if g.round.Level() != g.lastLevel {
		g.lastLevel = g.round.Level()
		g.levelScore = 0
		g.carrying = false
		g.placeContainer()
	}

	g.container.Advance()

	cfg := g.gameCfg
	if in.Has(core.ActionLeft) {
		g.rotation = core.ClampF(g.rotation-cfg.RotateStep, 0, 180)
	}
	if in.Has(core.ActionRight) {
		g.rotation = core.ClampF(g.rotation+cfg.RotateStep, 0, 180)
	}
	if in.Has(core.ActionUp) {
		g.height = core.ClampF(g.height-cfg.ArmStep, 0, 100)
	}
	if in.Has(core.ActionDown) {
		g.height = core.ClampF(g.height+cfg.ArmStep, 0, 100)
	}

	// Wind shakes a loaded bucket.
	if wind := g.levelRow().Wind; g.carrying && wind > 0 {
		jitter := (g.rng.Float64()*2 - 1) * wind * windJitterScale
		g.rotation = core.ClampF(g.rotation+jitter, 0, 180)
	}

	if in.Has(core.ActionAct) {
		g.act()
	}

	return core.StepResult{State: g.State()}
}

// act digs when the bucket is empty, drops when loaded.
func (g *Game) act() {
	cfg := g.gameCfg
	if !g.carrying {
		if g.rotation < cfg.DigRotationMax && g.height > cfg.DigHeightMin {
			g.carrying = true
			g.notifier.Notify(sim.SoundClick)
		} else {
			g.notifier.Notify(sim.SoundError)
		}
		return
	}

	g.carrying = false
	inDumpZone := g.rotation > cfg.DumpRotationMin && g.height > cfg.DumpHeightMin
	if inDumpZone && core.AbsF(g.rotation-g.container.Pos) < containerTolerance {
		points := cfg.BasePoints + cfg.LevelBonus*g.round.Level()
		g.round.Success(points)
		g.levelScore += points
		if g.levelScore >= g.levelRow().Quota {
			g.round.AdvanceLevel()
		}
		return
	}

	// Load dumped on the ground is just gone.
	g.notifier.Notify(sim.SoundError)
}

// LevelScore returns points earned toward the current grade's quota.
func (g *Game) LevelScore() int {
	return g.levelScore
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.round.BaseState(g.paused)
}
