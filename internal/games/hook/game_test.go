package hook

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

// stepN runs n empty ticks.
func stepN(g *Game, n int) {
	empty := core.NewInputFrame()
	for i := 0; i < n; i++ {
		g.Step(empty)
	}
}

// extendTicks is enough ticks for a full extend plus retract cycle.
func extendTicks(g *Game) int {
	arm := g.gameCfg.Arm
	return int(arm.MaxReach/arm.ExtendSpeed+arm.MaxReach/arm.RetractSpeed) + 4
}

func TestTruckMovesAndClamps(t *testing.T) {
	g := newTestGame(t)

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for i := 0; i < 100; i++ {
		g.Step(right)
	}
	if g.truckX != g.gameCfg.Arm.TruckMax {
		t.Errorf("truck should clamp at %f, got %f", g.gameCfg.Arm.TruckMax, g.truckX)
	}

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for i := 0; i < 100; i++ {
		g.Step(left)
	}
	if g.truckX != 0 {
		t.Errorf("truck should clamp at 0, got %f", g.truckX)
	}
}

func TestAlignedGrabScoresClassPoints(t *testing.T) {
	g := newTestGame(t)

	// Park the hook dead over the container.
	g.container.X = 60
	g.truckX = 60 - g.gameCfg.Arm.ArmOffset
	want := g.container.Points

	act := core.NewInputFrame()
	act.Set(core.ActionAct)
	g.Step(act)
	if g.state != armExtending {
		t.Fatal("act should start extending")
	}
	stepN(g, extendTicks(g))

	if g.round.Score() != want {
		t.Errorf("score: got %d, want %d", g.round.Score(), want)
	}
	if g.round.QuotaProgress() != 1 {
		t.Errorf("quota progress: got %d, want 1", g.round.QuotaProgress())
	}
	if g.container != nil {
		t.Error("container should be gone until the reset delay passes")
	}

	// Respawn after the reset delay.
	stepN(g, g.gameCfg.Container.ResetMs*testConfig().TickRate/1000+2)
	if g.container == nil {
		t.Error("a new container should have spawned")
	}
}

func TestMissedGrabRetractsWithoutPenalty(t *testing.T) {
	g := newTestGame(t)

	g.container.X = 80
	g.truckX = 0 // hook at 15, far off target

	act := core.NewInputFrame()
	act.Set(core.ActionAct)
	g.Step(act)
	stepN(g, extendTicks(g))

	if g.round.Score() != 0 {
		t.Errorf("miss should not score, got %d", g.round.Score())
	}
	if g.container == nil {
		t.Error("missed container should remain")
	}
	if g.state != armIdle {
		t.Errorf("arm should be home, state %d", g.state)
	}
}

func TestReleaseCancelsExtension(t *testing.T) {
	g := newTestGame(t)

	act := core.NewInputFrame()
	act.Set(core.ActionAct)
	g.Step(act)
	stepN(g, 3)

	rel := core.NewInputFrame()
	rel.Set(core.ActionRelease)
	g.Step(rel)
	if g.state != armRetracting {
		t.Fatalf("release should retract, state %d", g.state)
	}
	stepN(g, extendTicks(g))
	if g.round.Score() != 0 {
		t.Errorf("cancel should not score, got %d", g.round.Score())
	}
	if g.state != armIdle {
		t.Errorf("arm should be home, state %d", g.state)
	}
}

func TestNoWindOnFirstLevel(t *testing.T) {
	g := newTestGame(t)
	if g.windy() {
		t.Fatalf("level 1 should be calm, wind threshold %d", g.gameCfg.Container.WindLevel)
	}

	act := core.NewInputFrame()
	act.Set(core.ActionAct)
	g.Step(act)
	stepN(g, 10)
	if g.drift.Value != 0 {
		t.Errorf("drift on calm level: got %f, want 0", g.drift.Value)
	}
}

// deliver grabs the current container with perfect alignment and waits out
// the respawn delay.
func deliver(t *testing.T, g *Game) {
	t.Helper()
	if g.container == nil {
		t.Fatal("no container to deliver")
	}
	g.osc = nil // pin it for the test
	g.truckX = core.ClampF(g.container.X-g.gameCfg.Arm.ArmOffset, 0, g.gameCfg.Arm.TruckMax)

	act := core.NewInputFrame()
	act.Set(core.ActionAct)
	g.Step(act)
	stepN(g, extendTicks(g))
	stepN(g, g.gameCfg.Container.ResetMs*testConfig().TickRate/1000+2)
}

func TestQuotaAdvancesLevelAndResetsClock(t *testing.T) {
	g := newTestGame(t)
	quota := g.round.Quota()

	for i := 0; i < quota; i++ {
		// Level-up freeze runs after the final delivery.
		stepN(g, levelUpFreezeSecs*testConfig().TickRate+2)
		deliver(t, g)
	}

	if g.round.Level() != 1 {
		t.Fatalf("level: got %d, want 1", g.round.Level())
	}
	wantTime := g.gameCfg.RoundTime + g.gameCfg.TimePerLevel
	if got := g.round.TimeLeft(); got > wantTime || got < wantTime-5 {
		t.Errorf("time after level up: got %ds, want about %ds", got, wantTime)
	}
}
