package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	// Save some scores
	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("blaster", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different game
	if _, err := store.SaveScore("blaster_endless", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("blaster", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	endlessScores, err := store.TopScores("blaster_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endlessScores) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endlessScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("blaster", (i+1)*100)
	}

	scores, err := store.TopScores("blaster", 3)
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

	// No scores yet
	high, err := store.HighScore("blaster")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("blaster", 100)
	store.SaveScore("blaster", 300)
	store.SaveScore("blaster", 200)

	high, err = store.HighScore("blaster")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("blaster", 100)
	store.SaveScore("blaster", 200)
	store.SaveScore("blaster_endless", 300)

	if err := store.ClearScores("blaster"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("blaster", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	endless, _ := store.TopScores("blaster_endless", 10)
	if len(endless) != 1 {
		t.Error("Clearing one game affected another")
	}
}

func TestStoreSaveAndListRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "blaster", Level: 3, Balls: 5, Destroyed: 42, Score: 640, Outcome: "lost", DurationSecs: 180},
		{GameID: "blaster", Level: 8, Balls: 9, Destroyed: 120, Score: 2100, Outcome: "won", DurationSecs: 600},
		{GameID: "blaster_endless", Level: 14, Balls: 12, Destroyed: 300, Score: 4800, Outcome: "lost", DurationSecs: 900},
	}
	for _, run := range runs {
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns("blaster", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(got))
	}
	for _, r := range got {
		if r.GameID != "blaster" {
			t.Errorf("Run for wrong game: %s", r.GameID)
		}
		if r.Outcome != "won" && r.Outcome != "lost" {
			t.Errorf("Unexpected outcome: %s", r.Outcome)
		}
	}
}

func TestStoreBestLevel(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestLevel("blaster")
	if err != nil {
		t.Fatalf("BestLevel() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 best level with no runs, got %d", best)
	}

	store.SaveRun(RunRecord{GameID: "blaster", Level: 3, Outcome: "lost"})
	store.SaveRun(RunRecord{GameID: "blaster", Level: 7, Outcome: "lost"})
	store.SaveRun(RunRecord{GameID: "blaster", Level: 5, Outcome: "won"})

	best, err = store.BestLevel("blaster")
	if err != nil {
		t.Fatalf("BestLevel() failed: %v", err)
	}
	if best != 7 {
		t.Errorf("Expected best level 7, got %d", best)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("blaster", 100)
	store.SaveScore("blaster", 300)

	stats, err := store.GetGameStats("blaster")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, want 400", stats.TotalScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if _, ok := all["blaster"]; !ok {
		t.Error("Aggregated stats missing the game")
	}
}

func TestStoreNestedPath(t *testing.T) {
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
