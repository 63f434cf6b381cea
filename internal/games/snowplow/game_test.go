package snowplow

import (
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

func stepWith(g *Game, a core.Action) {
	in := core.NewInputFrame()
	in.Set(a)
	g.Step(in)
}

func stepN(g *Game, n int) {
	empty := core.NewInputFrame()
	for i := 0; i < n; i++ {
		g.Step(empty)
	}
}

// plainCell rewrites a cell to the given kind with no ice or item,
// backing fresh snow with a round entity so it can score.
func plainCell(g *Game, x, y int, kind CellKind) {
	c := g.grid.At(x, y)
	c.Kind = kind
	c.Ice = false
	c.Item = nil
	if (kind == CellSnow || kind == CellDeep) && c.EntityID == 0 {
		e := g.round.Add(sim.Entity{Kind: "snow", X: float64(x), Y: float64(y)})
		c.EntityID = e.ID
	}
}

func TestStartCellIsClear(t *testing.T) {
	g := newTestGame(t)
	if g.grid.At(0, 0).Kind != CellClear {
		t.Error("the plow's start cell must be clear")
	}
	if g.plowX != 0 || g.plowY != 0 {
		t.Errorf("plow should start at 0,0, got %d,%d", g.plowX, g.plowY)
	}
}

func TestQuotaMatchesSnowCount(t *testing.T) {
	g := newTestGame(t)
	if got, want := g.round.Quota(), g.grid.SnowCount(); got != want {
		t.Errorf("quota: got %d, want %d snow cells", got, want)
	}
}

func TestPlowingScoresOncePerCell(t *testing.T) {
	g := newTestGame(t)
	plainCell(g, 1, 0, CellSnow)

	stepWith(g, core.ActionRight)
	if g.round.Score() != g.gameCfg.ClearPoints {
		t.Fatalf("score: got %d, want %d", g.round.Score(), g.gameCfg.ClearPoints)
	}

	// Drive back and forth over the same cell.
	plainCell(g, 2, 0, CellClear)
	stepWith(g, core.ActionRight)
	stepWith(g, core.ActionLeft)
	stepWith(g, core.ActionLeft)
	stepWith(g, core.ActionRight)
	if g.round.Score() != g.gameCfg.ClearPoints {
		t.Errorf("re-plowing scored again: got %d", g.round.Score())
	}
}

func TestDeepSnowNeedsTwoPasses(t *testing.T) {
	g := newTestGame(t)
	plainCell(g, 1, 0, CellDeep)
	plainCell(g, 2, 0, CellClear)

	stepWith(g, core.ActionRight)
	if g.round.Score() != 0 {
		t.Fatalf("first pass on deep snow should not score, got %d", g.round.Score())
	}
	if g.grid.At(1, 0).Kind != CellSnow {
		t.Fatal("first pass should downgrade deep snow")
	}

	stepWith(g, core.ActionRight)
	stepWith(g, core.ActionLeft)
	if g.round.Score() != g.gameCfg.ClearPoints {
		t.Errorf("second pass should score: got %d", g.round.Score())
	}
}

func TestObstacleBlocksMovement(t *testing.T) {
	g := newTestGame(t)
	plainCell(g, 1, 0, CellObstacle)

	stepWith(g, core.ActionRight)
	if g.plowX != 0 || g.plowY != 0 {
		t.Errorf("plow should be rejected, got %d,%d", g.plowX, g.plowY)
	}
	if g.round.Score() != 0 {
		t.Errorf("bumping an obstacle should not change the score, got %d", g.round.Score())
	}
}

func TestGridEdgeBlocksMovement(t *testing.T) {
	g := newTestGame(t)
	stepWith(g, core.ActionUp)
	stepWith(g, core.ActionLeft)
	if g.plowX != 0 || g.plowY != 0 {
		t.Errorf("plow left the grid: %d,%d", g.plowX, g.plowY)
	}
}

func TestIceSlidesAndChains(t *testing.T) {
	g := newTestGame(t)
	plainCell(g, 1, 0, CellClear)
	plainCell(g, 2, 0, CellClear)
	plainCell(g, 3, 0, CellClear)
	g.grid.At(1, 0).Ice = true
	g.grid.At(2, 0).Ice = true

	stepWith(g, core.ActionRight)
	if g.plowX != 1 {
		t.Fatalf("plow at %d, want 1", g.plowX)
	}
	if !g.slide.Active() {
		t.Fatal("entering ice should queue a slide")
	}

	// Down input is ignored while sliding; the chain carries the plow
	// across both icy cells.
	stepWith(g, core.ActionDown)
	if g.plowX != 2 || g.plowY != 0 {
		t.Fatalf("slide should force right, got %d,%d", g.plowX, g.plowY)
	}
	stepWith(g, core.ActionDown)
	if g.plowX != 3 || g.plowY != 0 {
		t.Fatalf("chained slide should continue, got %d,%d", g.plowX, g.plowY)
	}
	if g.slide.Active() {
		t.Error("slide should end on dry ground")
	}
}

func TestSlideStopsAtObstacle(t *testing.T) {
	g := newTestGame(t)
	plainCell(g, 1, 0, CellClear)
	g.grid.At(1, 0).Ice = true
	plainCell(g, 2, 0, CellObstacle)

	stepWith(g, core.ActionRight)
	stepN(g, 3)
	if g.plowX != 1 {
		t.Errorf("plow should stop at the obstacle, got x=%d", g.plowX)
	}
	if g.slide.Active() {
		t.Error("slide should cancel on impact")
	}
}

func TestHiddenItemAwardsOnce(t *testing.T) {
	g := newTestGame(t)
	plainCell(g, 1, 0, CellSnow)
	item := hiddenItems[3] // Lyklar, 200
	g.grid.At(1, 0).Item = &item

	stepWith(g, core.ActionRight)
	want := g.gameCfg.ClearPoints + item.Points
	if g.round.Score() != want {
		t.Errorf("score with find: got %d, want %d", g.round.Score(), want)
	}
	if g.grid.At(1, 0).Item != nil {
		t.Error("item should be consumed on reveal")
	}
	if g.findLeft == 0 {
		t.Error("find message should be flashing")
	}
}

func TestClearingStreetAdvancesLevel(t *testing.T) {
	g := newTestGame(t)

	// Shrink the job to a single snowy cell.
	for y := 0; y < g.grid.H; y++ {
		for x := 0; x < g.grid.W; x++ {
			if x == 1 && y == 0 {
				continue
			}
			if c := g.grid.At(x, y); c.Kind != CellClear {
				if c.EntityID != 0 {
					g.round.Resolve(c.EntityID)
				}
				plainCell(g, x, y, CellClear)
			}
		}
	}
	plainCell(g, 1, 0, CellSnow)
	g.round.SetQuota(1)

	stepWith(g, core.ActionRight)
	if g.round.Level() != 1 {
		t.Fatalf("level: got %d, want 1", g.round.Level())
	}

	// After the announcement a fresh street appears.
	stepN(g, levelUpFreezeSecs*testConfig().TickRate+2)
	if g.grid.SnowCount() == 0 {
		t.Error("new street should have snow")
	}
	if g.plowX != 0 || g.plowY != 0 {
		t.Error("plow should restart at the corner")
	}
}
