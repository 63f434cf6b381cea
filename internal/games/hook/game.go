// Package hook implements the hook-lift crane game: the player lines the
// truck up under a container and drops the hook. Wind pushes the hook off
// target on later levels, and containers start moving.
package hook

import (
	"fmt"
	"math/rand"

	"github.com/litla-gamaleigan/arcade/internal/config"
	"github.com/litla-gamaleigan/arcade/internal/core"
	"github.com/litla-gamaleigan/arcade/internal/registry"
	"github.com/litla-gamaleigan/arcade/internal/sim"
)

const levelUpFreezeSecs = 2

// levelRows is how many explicit rows the progression table carries; the
// round repeats the last row past that.
const levelRows = 10

type armState int

const (
	armIdle armState = iota
	armExtending
	armRetracting
)

// containerClass describes one container kind with its draw weight.
type containerClass struct {
	Name   string
	Label  string
	Weight int
}

var classes = []containerClass{
	{Name: "normal", Label: "Gámur", Weight: 60},
	{Name: "heavy", Label: "Þungagámur", Weight: 20},
	{Name: "priority", Label: "Forgangsgámur", Weight: 15},
	{Name: "bonus", Label: "Bónusgámur", Weight: 5},
}

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

// Game implements the hook crane game logic.
type Game struct {
	cfg      core.RuntimeConfig
	gameCfg  config.HookConfig
	rng      *rand.Rand
	round    *sim.Round
	notifier sim.Notifier

	truckX    float64
	reach     float64
	state     armState
	carrying  bool
	wind      float64
	drift     *sim.Drift
	osc       *sim.Oscillator
	container *sim.Entity
	resetLeft int
	lastLevel int
	paused    bool
}

// New creates a new hook crane game instance.
func New() *Game {
	return &Game{notifier: sim.NopNotifier{}}
}

func init() {
	registry.Register("hook", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "hook"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Krókbíllinn"
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

	gameCfg, err := config.LoadHook(configPath)
	if err != nil {
		gameCfg = config.DefaultHookConfig()
	}
	config.ApplyHookPreset(&gameCfg, config.DifficultyPreset(difficultyPreset))
	g.gameCfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.truckX = 0
	g.reach = 0
	g.state = armIdle
	g.carrying = false
	g.wind = 0
	g.drift = sim.NewDrift(gameCfg.Arm.DriftGain, gameCfg.Arm.DriftDecay)
	g.osc = nil
	g.container = nil
	g.resetLeft = 0
	g.lastLevel = 0
	g.paused = false

	levels := make([]sim.LevelConfig, levelRows)
	for i := range levels {
		levels[i] = sim.LevelConfig{
			Name:      fmt.Sprintf("Útkall %d", i+1),
			Quota:     gameCfg.QuotaPer * (i + 1),
			SpeedMult: 1,
			TimeLimit: gameCfg.RoundTime + gameCfg.TimePerLevel*i,
		}
	}

	g.round = sim.NewRound(g.cfg, sim.Options{
		Levels:        levels,
		RoundTime:     gameCfg.RoundTime,
		LevelUpFreeze: levelUpFreezeSecs * g.cfg.TickRate,
		Notifier:      g.notifier,
	})
	g.round.Start()
	g.spawnContainer()
}

// displayLevel is the 1-based level number used by the wind and movement
// thresholds in the config.
func (g *Game) displayLevel() int {
	return g.round.Level() + 1
}

// spawnContainer places a fresh container in the drop zone.
func (g *Game) spawnContainer() {
	cc := g.drawClass()
	zone := g.gameCfg.Container
	x := zone.ZoneMin + g.rng.Float64()*(zone.ZoneMax-zone.ZoneMin)

	g.container = g.round.Add(sim.Entity{
		Kind:     "container",
		Label:    cc.Label,
		Category: cc.Name,
		X:        x,
		Points:   g.gameCfg.Points[cc.Name],
	})

	g.osc = nil
	if lvl := g.displayLevel(); lvl >= zone.MoveLevel {
		speed := zone.MoveSpeed * float64(lvl-zone.MoveLevel+1)
		g.osc = sim.NewOscillator(x, speed, zone.ZoneMin, zone.ZoneMax)
	}
}

// drawClass picks a container class by weight.
func (g *Game) drawClass() containerClass {
	total := 0
	for _, c := range classes {
		total += c.Weight
	}
	roll := g.rng.Intn(total)
	for _, c := range classes {
		roll -= c.Weight
		if roll < 0 {
			return c
		}
	}
	return classes[0]
}

// hookX is the horizontal position of the hook tip.
func (g *Game) hookX() float64 {
	return g.truckX + g.gameCfg.Arm.ArmOffset + g.drift.Value
}

// windy reports whether wind applies on the current level.
func (g *Game) windy() bool {
	return g.displayLevel() >= g.gameCfg.Container.WindLevel
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

	// New level: fresh container, arm snapped home.
	if g.round.Level() != g.lastLevel {
		g.lastLevel = g.round.Level()
		g.reach = 0
		g.state = armIdle
		g.carrying = false
		g.drift.Reset()
		g.resetLeft = 0
		g.spawnContainer()
	}

	if g.resetLeft > 0 {
		g.resetLeft--
		if g.resetLeft == 0 {
			g.spawnContainer()
		}
		return core.StepResult{State: g.State()}
	}

	if g.container != nil && g.osc != nil {
		g.container.X = g.osc.Advance()
	}

	switch g.state {
	case armIdle:
		g.stepIdle(in)
	case armExtending:
		g.stepExtending(in)
	case armRetracting:
		g.stepRetracting()
	}

	return core.StepResult{State: g.State()}
}

// stepIdle handles truck movement and the extend trigger.
func (g *Game) stepIdle(in core.InputFrame) {
	arm := g.gameCfg.Arm
	if in.Has(core.ActionLeft) {
		g.truckX = core.ClampF(g.truckX-arm.TruckStep, 0, arm.TruckMax)
	}
	if in.Has(core.ActionRight) {
		g.truckX = core.ClampF(g.truckX+arm.TruckStep, 0, arm.TruckMax)
	}
	if in.Has(core.ActionAct) && g.container != nil {
		g.state = armExtending
		g.wind = 0
		if g.windy() {
			g.wind = (g.rng.Float64()*2 - 1) * float64(g.displayLevel())
		}
		g.notifier.Notify(sim.SoundClick)
	}
}

// stepExtending lowers the hook and tests the grab at full reach.
func (g *Game) stepExtending(in core.InputFrame) {
	if in.Has(core.ActionRelease) {
		g.state = armRetracting
		g.notifier.Notify(sim.SoundClick)
		return
	}

	arm := g.gameCfg.Arm
	g.drift.Advance(true, g.wind)
	g.reach += arm.ExtendSpeed
	if g.reach < arm.MaxReach {
		return
	}
	g.reach = arm.MaxReach
	g.state = armRetracting

	c := g.container
	if c != nil && core.AbsF(g.hookX()-c.X) < arm.Tolerance {
		if g.round.Resolve(c.ID) {
			g.carrying = true
			g.container = nil
			g.osc = nil
			g.round.Success(c.Points)
		}
	} else {
		g.notifier.Notify(sim.SoundError)
	}
}

// stepRetracting pulls the arm home and schedules the next container
// after a delivery.
func (g *Game) stepRetracting() {
	g.drift.Advance(false, 0)
	g.reach -= g.gameCfg.Arm.RetractSpeed
	if g.reach > 0 {
		return
	}
	g.reach = 0
	g.state = armIdle
	if g.carrying {
		g.carrying = false
		g.resetLeft = g.gameCfg.Container.ResetMs * g.cfg.TickRate / 1000
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.round.BaseState(g.paused)
}
