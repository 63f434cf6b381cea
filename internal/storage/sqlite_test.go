package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("garbage", score, 2, 3); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("hook", 500, 4, 0); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("garbage", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].Level != 2 || scores[0].Mistakes != 3 {
		t.Errorf("Round metadata lost: level %d mistakes %d", scores[0].Level, scores[0].Mistakes)
	}

	hookScores, err := store.TopScores("hook", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(hookScores) != 1 {
		t.Errorf("Expected 1 hook score, got %d", len(hookScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("snowplow", (i+1)*100, 0, 0)
	}

	scores, err := store.TopScores("snowplow", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("garbage")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("garbage", 100, 0, 0)
	store.SaveScore("garbage", 300, 0, 0)
	store.SaveScore("garbage", 200, 0, 0)

	high, err = store.HighScore("garbage")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("garbage", 100, 0, 0)
	store.SaveScore("garbage", 200, 0, 0)
	store.SaveScore("sand", 300, 0, 0)

	if err := store.ClearScores("garbage"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	garbageScores, _ := store.TopScores("garbage", 10)
	if len(garbageScores) != 0 {
		t.Errorf("Expected 0 garbage scores after clear, got %d", len(garbageScores))
	}

	sandScores, _ := store.TopScores("sand", 10)
	if len(sandScores) != 1 {
		t.Error("Sand scores should not be affected by clearing garbage")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("hook", 100, 1, 0)
	store.SaveScore("hook", 300, 3, 0)

	stats, err := store.GetGameStats("hook")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount: got %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore: got %d, want 300", stats.HighScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore: got %d, want 400", stats.TotalScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if _, ok := all["hook"]; !ok {
		t.Error("hook missing from all-games stats")
	}
}

func TestStoreEditHistory(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveEdit("bættu við snjó", "/tmp/edit1.png"); err != nil {
		t.Fatalf("SaveEdit() failed: %v", err)
	}
	if _, err := store.SaveEdit("fjarlægðu gáminn", "/tmp/edit2.png"); err != nil {
		t.Fatalf("SaveEdit() failed: %v", err)
	}

	edits, err := store.RecentEdits(10)
	if err != nil {
		t.Fatalf("RecentEdits() failed: %v", err)
	}
	if len(edits) != 2 {
		t.Fatalf("Expected 2 edits, got %d", len(edits))
	}
	if edits[0].Prompt == "" || edits[0].ImagePath == "" {
		t.Error("edit fields lost on round trip")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
