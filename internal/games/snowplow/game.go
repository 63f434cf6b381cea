// Package snowplow implements the snow plowing game: clear every snowy
// cell of a street grid before the clock runs out, around parked cars and
// across icy patches that keep the plow moving.
package snowplow

import (
	"fmt"
	"math/rand"

	"github.com/litla-gamaleigan/arcade/internal/config"
	"github.com/litla-gamaleigan/arcade/internal/core"
	"github.com/litla-gamaleigan/arcade/internal/registry"
	"github.com/litla-gamaleigan/arcade/internal/sim"
)

const levelUpFreezeSecs = 2

const levelRows = 10

// minLevelTime is the floor for the shrinking per-level clock.
const minLevelTime = 20

// findFlashTicks is how long a revealed item stays on the HUD.
const findFlashTicks = 120

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

// Game implements the snow plow game logic.
type Game struct {
	cfg      core.RuntimeConfig
	gameCfg  config.SnowConfig
	rng      *rand.Rand
	round    *sim.Round
	notifier sim.Notifier

	grid  *Grid
	plowX int
	plowY int
	slide sim.Slide

	lastDX, lastDY int
	findLabel      string
	findLeft       int
	lastLevel      int
	paused         bool
}

// New creates a new snow plow game instance.
func New() *Game {
	return &Game{notifier: sim.NopNotifier{}}
}

func init() {
	registry.Register("snowplow", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "snowplow"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Snjóruðningur"
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

	gameCfg, err := config.LoadSnow(configPath)
	if err != nil {
		gameCfg = config.DefaultSnowConfig()
	}
	config.ApplySnowPreset(&gameCfg, config.DifficultyPreset(difficultyPreset))
	g.gameCfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.lastLevel = 0
	g.paused = false
	g.findLabel = ""
	g.findLeft = 0

	levels := make([]sim.LevelConfig, levelRows)
	for i := range levels {
		limit := gameCfg.TimeBase - gameCfg.TimeStep*i
		if limit < minLevelTime {
			limit = minLevelTime
		}
		levels[i] = sim.LevelConfig{
			Name:      fmt.Sprintf("Gata %d", i+1),
			SpeedMult: 1,
			TimeLimit: limit,
		}
	}

	g.round = sim.NewRound(g.cfg, sim.Options{
		Levels:        levels,
		RoundTime:     gameCfg.TimeBase,
		LevelUpFreeze: levelUpFreezeSecs * g.cfg.TickRate,
		Notifier:      g.notifier,
	})
	g.round.Start()
	g.newStreet()
}

// newStreet generates a fresh grid for the current level and registers
// every snowy cell with the round so each can score exactly once.
func (g *Game) newStreet() {
	g.grid = NewGrid(g.rng, g.gameCfg, g.round.Level())
	g.plowX, g.plowY = 0, 0
	g.slide.Stop()
	g.lastDX, g.lastDY = 0, 0

	for y := 0; y < g.grid.H; y++ {
		for x := 0; x < g.grid.W; x++ {
			c := g.grid.At(x, y)
			if c.Kind == CellSnow || c.Kind == CellDeep {
				e := g.round.Add(sim.Entity{
					Kind: "snow",
					X:    float64(x),
					Y:    float64(y),
				})
				c.EntityID = e.ID
			}
		}
	}
	g.round.SetQuota(g.grid.SnowCount())
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
		g.newStreet()
	}

	if g.findLeft > 0 {
		g.findLeft--
	}

	// Ice overrides the wheel: one forced move per tick until the slide
	// runs out or something stops it.
	if g.slide.Active() {
		dx, dy := g.slide.Take()
		g.move(dx, dy)
		return core.StepResult{State: g.State()}
	}

	dx, dy := 0, 0
	switch {
	case in.Has(core.ActionUp):
		dy = -1
	case in.Has(core.ActionDown):
		dy = 1
	case in.Has(core.ActionLeft):
		dx = -1
	case in.Has(core.ActionRight):
		dx = 1
	}
	if dx != 0 || dy != 0 {
		g.move(dx, dy)
	}

	return core.StepResult{State: g.State()}
}

// move attempts to shift the plow one cell, applying plowing, finds and
// ice on the destination.
func (g *Game) move(dx, dy int) {
	nx, ny := g.plowX+dx, g.plowY+dy
	dest := g.grid.At(nx, ny)
	if dest == nil || dest.Kind == CellObstacle {
		g.slide.Stop()
		g.round.Award(-g.gameCfg.ObstaclePenalty)
		g.notifier.Notify(sim.SoundError)
		return
	}

	g.plowX, g.plowY = nx, ny
	g.lastDX, g.lastDY = dx, dy
	g.plow(dest)

	if dest.Ice {
		g.slide.Begin(dx, dy, 1)
	}
}

// plow clears the destination cell. Deep snow downgrades to normal snow
// on the first pass; the entity resolves on the pass that clears it.
func (g *Game) plow(c *Cell) {
	switch c.Kind {
	case CellDeep:
		c.Kind = CellSnow
	case CellSnow:
		c.Kind = CellClear
		if c.EntityID != 0 && g.round.Resolve(c.EntityID) {
			g.round.Success(g.gameCfg.ClearPoints)
		}
		if c.Item != nil {
			g.round.Award(c.Item.Points)
			g.findLabel = fmt.Sprintf("%s fannst! +%d", c.Item.Name, c.Item.Points)
			g.findLeft = findFlashTicks
			c.Item = nil
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.round.BaseState(g.paused)
}
