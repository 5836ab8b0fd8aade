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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("invaders", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different variant
	if _, err := store.SaveScore("invaders_compact", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("invaders", 10)
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
	for _, s := range scores {
		if s.Variant != "invaders" {
			t.Errorf("Expected variant invaders, got %q", s.Variant)
		}
	}

	compactScores, err := store.TopScores("invaders_compact", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(compactScores) != 1 {
		t.Errorf("Expected 1 compact score, got %d", len(compactScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("invaders", (i+1)*100)
	}

	scores, err := store.TopScores("invaders", 3)
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
	high, err := store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty variant, got %d", high)
	}

	store.SaveScore("invaders", 120)
	store.SaveScore("invaders", 340)
	store.SaveScore("invaders", 230)

	high, err = store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 340 {
		t.Errorf("Expected high score 340, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("invaders", 100)
	store.SaveScore("invaders_compact", 200)

	if err := store.ClearScores("invaders"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.AllScores("invaders")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	// The other variant is untouched
	compactScores, err := store.AllScores("invaders_compact")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(compactScores) != 1 {
		t.Errorf("Expected 1 score, got %d", len(compactScores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("invaders", 100)
	store.SaveScore("invaders", 300)

	stats, err := store.Stats("invaders")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %v", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("Expected total 400, got %d", stats.TotalScore)
	}
}

func TestStoreAllStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("invaders", 100)
	store.SaveScore("invaders_compact", 50)

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 variants, got %d", len(all))
	}
	if all["invaders"].HighScore != 100 {
		t.Errorf("Expected invaders high 100, got %d", all["invaders"].HighScore)
	}
	if all["invaders_compact"].GamesCount != 1 {
		t.Errorf("Expected 1 compact game, got %d", all["invaders_compact"].GamesCount)
	}
}
