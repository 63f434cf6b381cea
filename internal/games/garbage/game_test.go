package garbage

import (
	"strings"
	"testing"

	"github.com/litla-gamaleigan/arcade/internal/core"
	"github.com/litla-gamaleigan/arcade/internal/sim"
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

func dropItem(g *Game, category string) {
	g.round.Add(sim.Entity{
		Kind:     "trash",
		Label:    "prufuhlutur",
		Category: category,
		Y:        g.gameCfg.Belt.ResolveLine + 1,
	})
}

func TestCorrectSortScoresAndBuildsCombo(t *testing.T) {
	g := newTestGame(t)
	g.activeBin = BinPappi

	dropItem(g, "pappi")
	g.advanceItems()

	if got := g.round.Score(); got != g.gameCfg.Scoring.BasePoints {
		t.Errorf("score: got %d, want %d", got, g.gameCfg.Scoring.BasePoints)
	}
	if g.round.Combo() != 1 {
		t.Errorf("combo: got %d, want 1", g.round.Combo())
	}
	if len(g.round.Mistakes()) != 0 {
		t.Errorf("mistakes: got %d, want 0", len(g.round.Mistakes()))
	}

	// Second correct item earns the combo bonus on top of base points.
	dropItem(g, "pappi")
	g.advanceItems()
	want := 2*g.gameCfg.Scoring.BasePoints + g.gameCfg.Scoring.ComboStep
	if got := g.round.Score(); got != want {
		t.Errorf("score after combo: got %d, want %d", got, want)
	}
}

func TestWrongSortPenalizesAndLogsMistake(t *testing.T) {
	g := newTestGame(t)
	g.activeBin = BinPappi

	dropItem(g, "plast")
	g.advanceItems()

	if g.round.Score() != 0 {
		t.Errorf("score should stay clamped at zero, got %d", g.round.Score())
	}
	if g.round.Combo() != 0 {
		t.Errorf("combo should reset, got %d", g.round.Combo())
	}
	mistakes := g.round.Mistakes()
	if len(mistakes) != 1 {
		t.Fatalf("mistakes: got %d, want 1", len(mistakes))
	}
	m := mistakes[0]
	if m.Chosen != "pappi" || m.Correct != "plast" {
		t.Errorf("mistake record wrong: chosen %q correct %q", m.Chosen, m.Correct)
	}
}

func TestBinSelection(t *testing.T) {
	g := newTestGame(t)
	if g.ActiveBin() != BinAlmennt {
		t.Fatalf("default bin should be almennt, got %v", g.ActiveBin())
	}

	in := core.NewInputFrame()
	in.Set(core.ActionBin2)
	g.Step(in)
	if g.ActiveBin() != BinPappi {
		t.Errorf("bin after key 2: got %v, want pappi", g.ActiveBin())
	}

	in.Clear()
	in.Set(core.ActionBin3)
	g.Step(in)
	if g.ActiveBin() != BinMatur {
		t.Errorf("bin after key 3: got %v, want matur", g.ActiveBin())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)

	tick := g.round.Tick()
	empty := core.NewInputFrame()
	for i := 0; i < 30; i++ {
		g.Step(empty)
	}
	if g.round.Tick() != tick {
		t.Error("round should not advance while paused")
	}
	if !g.State().Paused {
		t.Error("state should report paused")
	}

	in.Clear()
	in.Set(core.ActionPause)
	g.Step(in)
	g.Step(empty)
	if g.round.Tick() == tick {
		t.Error("round should advance after unpause")
	}
}

func TestDeterministicSpawns(t *testing.T) {
	a := newTestGame(t)
	b := newTestGame(t)

	empty := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		a.Step(empty)
		b.Step(empty)
	}

	ea, eb := a.round.Entities(), b.round.Entities()
	if len(ea) == 0 {
		t.Fatal("expected spawned items after 300 ticks")
	}
	if len(ea) != len(eb) {
		t.Fatalf("entity counts diverge: %d vs %d", len(ea), len(eb))
	}
	for i := range ea {
		if ea[i].Label != eb[i].Label {
			t.Errorf("item %d diverges: %q vs %q", i, ea[i].Label, eb[i].Label)
		}
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	g := newTestGame(t)
	g.activeBin = BinPappi
	dropItem(g, "pappi")
	g.advanceItems()
	if g.round.Score() == 0 {
		t.Fatal("setup: expected score")
	}

	g.Reset(testConfig())
	if g.round.Score() != 0 {
		t.Errorf("score after reset: got %d, want 0", g.round.Score())
	}
	if g.ActiveBin() != BinAlmennt {
		t.Errorf("bin after reset: got %v, want almennt", g.ActiveBin())
	}
	if len(g.round.Entities()) != 0 {
		t.Error("belt should be empty after reset")
	}
}

func TestRenderShowsBinsAndHUD(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"plast", "pappi", "matur", "almennt", "Stig"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q", want)
		}
	}
}
