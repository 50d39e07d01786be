package storage

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.SaveScore("tetris", 100, 1); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := b.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("a new session should start empty, got %d scores", len(scores))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	fixed := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("tetris", s, 2); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("snake", 500, 4); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].Level != 2 {
		t.Errorf("Expected level 2, got %d", scores[0].Level)
	}
	if !scores[0].CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, want %v", scores[0].CreatedAt, fixed)
	}

	snakeScores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(snakeScores) != 1 {
		t.Errorf("Expected 1 snake score, got %d", len(snakeScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("test", (i+1)*100, 1)
	}

	scores, err := store.TopScores("test", 3)
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

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveScore("test", 100, 1)
	second, _ := store.SaveScore("test", 100, 2)

	scores, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].ID != first || scores[1].ID != second {
		t.Errorf("ties out of order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("tetris", 100, 1)
	store.SaveScore("tetris", 300, 1)
	store.SaveScore("tetris", 200, 1)

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreGamesPlayed(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", 1, 1)
	store.SaveScore("tetris", 2, 1)
	store.SaveScore("snake", 3, 1)

	counts, err := store.GamesPlayed()
	if err != nil {
		t.Fatalf("GamesPlayed() failed: %v", err)
	}
	if counts["tetris"] != 2 || counts["snake"] != 1 || len(counts) != 2 {
		t.Errorf("GamesPlayed() = %v", counts)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", 100, 1)
	store.SaveScore("tetris", 200, 1)
	store.SaveScore("snake", 300, 1)

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	tetrisScores, _ := store.TopScores("tetris", 10)
	if len(tetrisScores) != 0 {
		t.Errorf("Expected 0 tetris scores after clear, got %d", len(tetrisScores))
	}

	snakeScores, _ := store.TopScores("snake", 10)
	if len(snakeScores) != 1 {
		t.Errorf("Snake scores should not be affected by clearing tetris")
	}
}
