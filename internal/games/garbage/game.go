// Package garbage implements the garbage sorting game: trash items come
// down the conveyor and the player keeps the matching bin selected before
// each item reaches the bin line.
package garbage

import (
	"math/rand"

	"github.com/litla-gamaleigan/arcade/internal/config"
	"github.com/litla-gamaleigan/arcade/internal/core"
	"github.com/litla-gamaleigan/arcade/internal/registry"
	"github.com/litla-gamaleigan/arcade/internal/sim"
)

// Level-up announcement duration in seconds.
const levelUpFreezeSecs = 2

// Visual characters for rendering.
const (
	BeltChar = '┆'
	LineChar = '─'
	ItemChar = '▣'
)

// Package-level variables set by the CLI before game creation.
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

// Game implements the garbage sorting game logic.
type Game struct {
	cfg      core.RuntimeConfig
	gameCfg  config.GarbageConfig
	rng      *rand.Rand
	round    *sim.Round
	spawner  *sim.Spawner
	notifier sim.Notifier

	activeBin Bin
	lastLevel int
	paused    bool
}

// New creates a new garbage game instance.
func New() *Game {
	return &Game{notifier: sim.NopNotifier{}}
}

func init() {
	registry.Register("garbage", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "garbage"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flokkunarstöðin"
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

	gameCfg, err := config.LoadGarbage(configPath)
	if err != nil {
		gameCfg = config.DefaultGarbageConfig()
	}
	config.ApplyGarbagePreset(&gameCfg, config.DifficultyPreset(difficultyPreset))
	g.gameCfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.activeBin = BinAlmennt
	g.lastLevel = 0
	g.paused = false

	levels := make([]sim.LevelConfig, len(gameCfg.Shifts))
	for i, shift := range gameCfg.Shifts {
		levels[i] = sim.LevelConfig{
			Name:          shift.Name,
			Quota:         shift.Quota,
			SpeedMult:     shift.SpeedMod,
			SpawnInterval: g.spawnTicks(i),
		}
	}

	g.round = sim.NewRound(g.cfg, sim.Options{
		Levels:          levels,
		RoundTime:       gameCfg.RoundTime,
		ComboStep:       gameCfg.Scoring.ComboStep,
		ComboCap:        gameCfg.Scoring.ComboCap,
		LevelUpFreeze:   levelUpFreezeSecs * g.cfg.TickRate,
		ReportOnTimeout: true,
		Notifier:        g.notifier,
	})

	g.spawner = sim.NewSpawner(g.rng, g.catalog(), g.spawnTicks(0))
	g.round.Start()
}

// spawnTicks converts the configured spawn interval for a shift into ticks,
// applying the per-shift reduction. The spawner floor still applies on top.
func (g *Game) spawnTicks(level int) int {
	ms := g.gameCfg.Belt.SpawnBaseMs - level*g.gameCfg.Belt.SpawnStepMs
	if ms < g.gameCfg.Belt.SpawnFloorMs {
		ms = g.gameCfg.Belt.SpawnFloorMs
	}
	return ms * g.cfg.TickRate / 1000
}

// catalog builds one weighted spawn spec per trash item.
func (g *Game) catalog() []sim.SpawnSpec {
	specs := make([]sim.SpawnSpec, 0, len(TrashItems))
	for _, item := range TrashItems {
		item := item
		specs = append(specs, sim.SpawnSpec{
			Weight: 1,
			Make: func(rng *rand.Rand) sim.Entity {
				belt := g.gameCfg.Belt
				return sim.Entity{
					Kind:     "trash",
					Label:    item.Name,
					Category: item.Bin.String(),
					X:        50,
					Y:        0,
					Rate:     (belt.FallSpeedMin + rng.Float64()*belt.FallSpeedJitter) * g.speedMult(),
				}
			},
		})
	}
	return specs
}

// speedMult is the current fall-speed multiplier: the shift's modifier
// plus slow growth over elapsed round time (one extra unit per minute).
func (g *Game) speedMult() float64 {
	elapsed := float64(g.round.Tick()) / float64(60*g.cfg.TickRate)
	return g.round.LevelCfg().SpeedMult + elapsed
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.round.Phase() == sim.PhaseEnded {
		return core.StepResult{State: g.State()}
	}

	if g.round.Phase() == sim.PhaseReporting {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionAct) {
			g.round.FinishReport()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.handleBinSelect(in)

	if !g.round.Step() {
		return core.StepResult{State: g.State()}
	}

	// New shift: harder spawn interval, fresh belt.
	if g.round.Level() != g.lastLevel {
		g.lastLevel = g.round.Level()
		g.spawner.SetInterval(g.spawnTicks(g.lastLevel))
		g.spawner.Reset()
	}

	if e := g.spawner.Advance(); e != nil {
		g.round.Add(*e)
	}

	g.advanceItems()

	return core.StepResult{State: g.State()}
}

// handleBinSelect switches the active bin from input.
func (g *Game) handleBinSelect(in core.InputFrame) {
	var selected *Bin
	switch {
	case in.Has(core.ActionBin1):
		b := BinPlast
		selected = &b
	case in.Has(core.ActionBin2):
		b := BinPappi
		selected = &b
	case in.Has(core.ActionBin3):
		b := BinMatur
		selected = &b
	case in.Has(core.ActionBin4):
		b := BinAlmennt
		selected = &b
	}
	if selected != nil && *selected != g.activeBin {
		g.activeBin = *selected
		g.notifier.Notify(sim.SoundClick)
	}
}

// advanceItems moves every live item and resolves the ones that crossed
// the bin line against the active bin.
func (g *Game) advanceItems() {
	live := g.round.Entities()
	resolved := make([]*sim.Entity, 0, 2)
	for _, e := range live {
		e.Y += e.Rate
		if e.Y > g.gameCfg.Belt.ResolveLine {
			resolved = append(resolved, e)
		}
	}

	for _, e := range resolved {
		if !g.round.Resolve(e.ID) {
			continue
		}
		if e.Category == g.activeBin.String() {
			g.round.Success(g.gameCfg.Scoring.BasePoints)
		} else {
			g.round.Failure(g.gameCfg.Scoring.Penalty, &sim.Mistake{
				Item:    e.Label,
				Chosen:  g.activeBin.String(),
				Correct: e.Category,
			})
		}
	}
}

// ActiveBin returns the currently selected bin.
func (g *Game) ActiveBin() Bin {
	return g.activeBin
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.round.BaseState(g.paused)
}
