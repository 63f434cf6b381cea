package sim

import (
	"testing"

	"github.com/litla-gamaleigan/arcade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func testLevels() []LevelConfig {
	return []LevelConfig{
		{Name: "First", Quota: 3, SpeedMult: 1.0, SpawnInterval: 90},
		{Name: "Second", Quota: 5, SpeedMult: 1.3, SpawnInterval: 72},
	}
}

func TestScoreNeverNegative(t *testing.T) {
	r := NewRound(testConfig(), Options{Levels: testLevels(), RoundTime: 60})
	r.Start()

	r.Failure(5, nil)
	r.Failure(5, nil)
	if r.Score() != 0 {
		t.Errorf("Score should clamp at 0, got %d", r.Score())
	}

	r.Success(10)
	r.Failure(25, nil)
	if r.Score() != 0 {
		t.Errorf("Penalty larger than score should clamp at 0, got %d", r.Score())
	}
}

func TestComboStepAndCap(t *testing.T) {
	r := NewRound(testConfig(), Options{
		Levels:    []LevelConfig{{Quota: 100, SpeedMult: 1}},
		RoundTime: 60,
		ComboStep: 2,
		ComboCap:  10,
	})
	r.Start()

	// Each success adds base + 2*combo and bumps combo by exactly one.
	for i := 0; i < 15; i++ {
		expected := 10 + 2*r.Combo()
		got := r.Success(10)
		if got != expected {
			t.Fatalf("success %d: awarded %d points, want %d", i, got, expected)
		}
	}
	if r.Combo() != 10 {
		t.Errorf("Combo should cap at 10, got %d", r.Combo())
	}

	r.Failure(5, nil)
	if r.Combo() != 0 {
		t.Errorf("Failure should reset combo to 0, got %d", r.Combo())
	}
}

func TestExactlyOnceResolution(t *testing.T) {
	r := NewRound(testConfig(), Options{Levels: testLevels(), RoundTime: 60})
	r.Start()

	e := r.Add(Entity{Kind: "test", Label: "thing"})
	if len(r.Entities()) != 1 {
		t.Fatalf("expected 1 live entity, got %d", len(r.Entities()))
	}

	if !r.Resolve(e.ID) {
		t.Fatal("first Resolve should succeed")
	}
	if r.Resolve(e.ID) {
		t.Error("second Resolve of the same entity must fail")
	}
	if len(r.Entities()) != 0 {
		t.Errorf("resolved entity still in live set")
	}
}

func TestEntityIDsNeverReused(t *testing.T) {
	r := NewRound(testConfig(), Options{Levels: testLevels(), RoundTime: 60})
	r.Start()

	seen := make(map[uint64]bool)
	for i := 0; i < 50; i++ {
		e := r.Add(Entity{Kind: "test"})
		if seen[e.ID] {
			t.Fatalf("entity ID %d reused", e.ID)
		}
		seen[e.ID] = true
		r.Resolve(e.ID)
	}
}

func TestLevelTransition(t *testing.T) {
	r := NewRound(testConfig(), Options{
		Levels:        testLevels(),
		RoundTime:     60,
		LevelUpFreeze: 30,
	})
	r.Start()

	r.Add(Entity{Kind: "leftover"})
	before := r.LevelCfg().SpawnInterval

	for i := 0; i < 3; i++ {
		r.Success(10)
	}

	if r.Level() != 1 {
		t.Fatalf("quota reached: level should be 1, got %d", r.Level())
	}
	if r.QuotaProgress() != 0 {
		t.Errorf("quota progress should reset to 0, got %d", r.QuotaProgress())
	}
	if len(r.Entities()) != 0 {
		t.Errorf("live entities should be cleared on level-up, got %d", len(r.Entities()))
	}
	if r.LevelCfg().SpawnInterval >= before {
		t.Errorf("spawn interval should shrink: %d -> %d", before, r.LevelCfg().SpawnInterval)
	}
	if r.Phase() != PhaseLevelUp {
		t.Errorf("expected announcement freeze phase, got %v", r.Phase())
	}

	// No simulation during the freeze, then play resumes.
	for i := 0; i < 29; i++ {
		if r.Step() {
			t.Fatalf("tick %d: simulation must not run during level-up freeze", i)
		}
	}
	r.Step()
	if !r.Step() {
		t.Error("simulation should resume after the freeze")
	}
}

func TestLevelNeverDecreases(t *testing.T) {
	r := NewRound(testConfig(), Options{Levels: testLevels(), RoundTime: 60})
	r.Start()

	last := r.Level()
	for i := 0; i < 40; i++ {
		r.Success(10)
		if r.Level() < last {
			t.Fatalf("level decreased from %d to %d", last, r.Level())
		}
		last = r.Level()
	}
	// Past the table the final row's parameters repeat.
	if r.LevelCfg().Name != "Second" {
		t.Errorf("expected final level parameters to repeat, got %q", r.LevelCfg().Name)
	}
}

func TestRoundTerminatesAndGameOverFiresOnce(t *testing.T) {
	cfg := testConfig()
	fired := 0
	r := NewRound(cfg, Options{
		Levels:     testLevels(),
		RoundTime:  2,
		OnGameOver: func() { fired++ },
	})
	r.Start()

	ticks := 0
	for r.Phase() != PhaseEnded && ticks < 3*cfg.TickRate {
		r.Step()
		ticks++
	}

	if r.Phase() != PhaseEnded {
		t.Fatal("round did not end after countdown expired")
	}
	if ticks > 2*cfg.TickRate {
		t.Errorf("round ended after %d ticks, want <= %d", ticks, 2*cfg.TickRate)
	}
	if fired != 1 {
		t.Errorf("OnGameOver fired %d times, want exactly 1", fired)
	}

	// Further steps and End calls must not re-fire.
	r.Step()
	r.End()
	if fired != 1 {
		t.Errorf("OnGameOver re-fired, total %d", fired)
	}
}

func TestReportOnTimeout(t *testing.T) {
	cfg := testConfig()
	fired := 0
	r := NewRound(cfg, Options{
		Levels:          testLevels(),
		RoundTime:       1,
		ReportOnTimeout: true,
		OnGameOver:      func() { fired++ },
	})
	r.Start()

	for i := 0; i < cfg.TickRate+1; i++ {
		r.Step()
	}

	if r.Phase() != PhaseReporting {
		t.Fatalf("expected report phase at timeout, got %v", r.Phase())
	}
	if fired != 0 {
		t.Error("OnGameOver must not fire before the report is confirmed")
	}

	r.FinishReport()
	if r.Phase() != PhaseEnded {
		t.Error("FinishReport should end the round")
	}
	if fired != 1 {
		t.Errorf("OnGameOver fired %d times, want 1", fired)
	}
}

func TestOnScoreFiresOnChange(t *testing.T) {
	var totals []int
	r := NewRound(testConfig(), Options{
		Levels:    testLevels(),
		RoundTime: 60,
		OnScore:   func(total int) { totals = append(totals, total) },
	})
	r.Start()

	r.Success(10)
	r.Failure(5, nil)
	r.Failure(5, nil)
	r.Failure(5, nil) // Clamped at zero, no change, no callback

	want := []int{10, 5, 0}
	if len(totals) != len(want) {
		t.Fatalf("OnScore fired %d times, want %d (%v)", len(totals), len(want), totals)
	}
	for i, w := range want {
		if totals[i] != w {
			t.Errorf("OnScore call %d: got %d, want %d", i, totals[i], w)
		}
	}
}

func TestMistakeLogAppendOnly(t *testing.T) {
	r := NewRound(testConfig(), Options{Levels: testLevels(), RoundTime: 60})
	r.Start()

	r.Failure(5, &Mistake{Item: "Skyr dós", Chosen: "pappi", Correct: "plast"})
	r.Success(10)
	r.Failure(5, &Mistake{Item: "Bleyja", Chosen: "matur", Correct: "almennt"})

	m := r.Mistakes()
	if len(m) != 2 {
		t.Fatalf("expected 2 mistakes, got %d", len(m))
	}
	if m[0].Item != "Skyr dós" || m[0].Chosen != "pappi" || m[0].Correct != "plast" {
		t.Errorf("first mistake wrong: %+v", m[0])
	}
}

func TestRestartResetsEverything(t *testing.T) {
	r := NewRound(testConfig(), Options{Levels: testLevels(), RoundTime: 60, ComboStep: 2, ComboCap: 10})
	r.Start()

	r.Add(Entity{Kind: "x"})
	r.Success(10)
	r.Success(10)
	r.Failure(5, &Mistake{Item: "a", Chosen: "b", Correct: "c"})
	r.End()

	r.Start()
	if r.Score() != 0 || r.Combo() != 0 || r.Level() != 0 {
		t.Errorf("Start should reset score/combo/level, got %d/%d/%d", r.Score(), r.Combo(), r.Level())
	}
	if len(r.Entities()) != 0 || len(r.Mistakes()) != 0 {
		t.Error("Start should clear entities and mistakes")
	}
	if r.Phase() != PhasePlaying {
		t.Errorf("Start should enter playing phase, got %v", r.Phase())
	}
}
