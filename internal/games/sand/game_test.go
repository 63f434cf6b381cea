package sand

import (
	"testing"

	"github.com/litla-gamaleigan/arcade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig())
	return g
}

func stepWith(g *Game, a core.Action) {
	in := core.NewInputFrame()
	in.Set(a)
	g.Step(in)
}

// overPit positions the arm in the dig zone.
func overPit(g *Game) {
	g.rotation = g.gameCfg.DigRotationMax - 5
	g.height = g.gameCfg.DigHeightMin + 10
}

// overContainer positions the arm right above the container in the dump
// zone.
func overContainer(g *Game) {
	g.rotation = g.container.Pos
	g.height = g.gameCfg.DumpHeightMin + 10
}

func TestDigOnlyInPit(t *testing.T) {
	g := newTestGame(t)

	g.rotation = 90
	g.height = 50
	stepWith(g, core.ActionAct)
	if g.carrying {
		t.Fatal("dig should fail away from the pit")
	}

	overPit(g)
	stepWith(g, core.ActionAct)
	if !g.carrying {
		t.Fatal("dig should succeed in the pit")
	}

	// A second act over the pit while loaded drops the sand back.
	stepWith(g, core.ActionAct)
	if g.carrying {
		t.Error("acting again should release the load")
	}
	if g.round.Score() != 0 {
		t.Errorf("dumping in the pit should not score, got %d", g.round.Score())
	}
}

func TestDumpOverContainerScores(t *testing.T) {
	g := newTestGame(t)

	overPit(g)
	stepWith(g, core.ActionAct)
	overContainer(g)
	stepWith(g, core.ActionAct)

	if g.carrying {
		t.Fatal("dump should empty the bucket")
	}
	if g.round.Score() != g.gameCfg.BasePoints {
		t.Errorf("score: got %d, want %d", g.round.Score(), g.gameCfg.BasePoints)
	}
	if g.levelScore != g.gameCfg.BasePoints {
		t.Errorf("level score: got %d, want %d", g.levelScore, g.gameCfg.BasePoints)
	}
}

func TestDumpBesideContainerWastesLoad(t *testing.T) {
	g := newTestGame(t)

	overPit(g)
	stepWith(g, core.ActionAct)

	g.rotation = g.gameCfg.DumpRotationMin + 1 // In the zone, off the container
	if g.rotation > g.container.Pos-containerTolerance {
		g.rotation = g.container.Pos - containerTolerance - 1
	}
	g.height = g.gameCfg.DumpHeightMin + 10
	stepWith(g, core.ActionAct)

	if g.carrying {
		t.Error("wasted load should still empty the bucket")
	}
	if g.round.Score() != 0 {
		t.Errorf("wasted load should not score, got %d", g.round.Score())
	}
}

func TestRotationAndHeightClamp(t *testing.T) {
	g := newTestGame(t)

	for i := 0; i < 200; i++ {
		stepWith(g, core.ActionLeft)
	}
	if g.rotation != 0 {
		t.Errorf("rotation should clamp at 0, got %f", g.rotation)
	}
	for i := 0; i < 200; i++ {
		stepWith(g, core.ActionRight)
	}
	if g.rotation != 180 {
		t.Errorf("rotation should clamp at 180, got %f", g.rotation)
	}
	for i := 0; i < 200; i++ {
		stepWith(g, core.ActionDown)
	}
	if g.height != 100 {
		t.Errorf("height should clamp at 100, got %f", g.height)
	}
}

func TestNoWindJitterOnFirstGrade(t *testing.T) {
	g := newTestGame(t)
	if g.levelRow().Wind != 0 {
		t.Skip("config gives the first grade wind")
	}

	overPit(g)
	stepWith(g, core.ActionAct)
	g.rotation = 90

	empty := core.NewInputFrame()
	for i := 0; i < 60; i++ {
		g.Step(empty)
	}
	if g.rotation != 90 {
		t.Errorf("rotation drifted without wind: %f", g.rotation)
	}
}

func TestQuotaAdvancesGradeAndGrantsTime(t *testing.T) {
	g := newTestGame(t)
	quota := g.levelRow().Quota
	before := g.round.TimeLeft()

	loads := quota/g.gameCfg.BasePoints + 1
	for i := 0; i < loads; i++ {
		overPit(g)
		stepWith(g, core.ActionAct)
		overContainer(g)
		stepWith(g, core.ActionAct)
		if g.round.Level() > 0 {
			break
		}
	}

	if g.round.Level() != 1 {
		t.Fatalf("level: got %d, want 1", g.round.Level())
	}
	if g.round.TimeLeft() <= before {
		t.Errorf("bonus time missing: %ds left, started with %ds", g.round.TimeLeft(), before)
	}
}

func TestContainerStaticOnFirstGrade(t *testing.T) {
	g := newTestGame(t)
	if g.levelRow().Moving {
		t.Skip("config moves the first grade's container")
	}

	pos := g.container.Pos
	empty := core.NewInputFrame()
	for i := 0; i < 120; i++ {
		g.Step(empty)
	}
	if g.container.Pos != pos {
		t.Errorf("container moved on a static grade: %f -> %f", pos, g.container.Pos)
	}
}
