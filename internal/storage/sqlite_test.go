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

func save(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveScore(ScoreEntry{GameID: gameID, Score: score, MaxTile: 64, BoardSize: 4}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
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

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	save(t, store, "2048", 1200)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 1200 {
		t.Errorf("HighScore() = %d after reopen, want 1200", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore(ScoreEntry{GameID: "2048_hard", Score: 2400, MaxTile: 256, BoardSize: 5, Won: false})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	_, err = store.SaveScore(ScoreEntry{GameID: "2048_hard", Score: 20000, MaxTile: 2048, BoardSize: 4, Won: true})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	save(t, store, "2048_hard", 900)
	save(t, store, "2048_easy", 500)

	scores, err := store.TopScores("2048_hard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 20000 || scores[1].Score != 2400 || scores[2].Score != 900 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	top := scores[0]
	if !top.Won || top.MaxTile != 2048 || top.BoardSize != 4 || top.GameID != "2048_hard" {
		t.Errorf("top entry fields not round-tripped: %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be filled by the database")
	}
	if scores[1].Won || scores[1].BoardSize != 5 {
		t.Errorf("second entry fields not round-tripped: %+v", scores[1])
	}

	easy, err := store.TopScores("2048_easy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(easy) != 1 {
		t.Errorf("Expected 1 easy score, got %d", len(easy))
	}
}

func TestStoreSaveRejectsEmptyGameID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(ScoreEntry{Score: 10}); err == nil {
		t.Error("SaveScore() without a game id should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		save(t, store, "2048", (i+1)*100)
	}

	tests := []struct {
		limit int
		want  int
		first int
	}{
		{3, 3, 1500},
		{0, DefaultLimit, 1500},
		{-1, DefaultLimit, 1500},
		{100, 15, 1500},
	}

	for _, tt := range tests {
		scores, err := store.TopScores("2048", tt.limit)
		if err != nil {
			t.Fatalf("TopScores(%d) failed: %v", tt.limit, err)
		}
		if len(scores) != tt.want {
			t.Errorf("TopScores(%d) returned %d rows, want %d", tt.limit, len(scores), tt.want)
		}
		if len(scores) > 0 && scores[0].Score != tt.first {
			t.Errorf("TopScores(%d) first = %d, want %d", tt.limit, scores[0].Score, tt.first)
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "2048", 100)
	save(t, store, "2048", 300)
	save(t, store, "2048", 200)

	high, err = store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "2048", 100)
	save(t, store, "2048", 200)
	save(t, store, "2048_easy", 300)

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	normal, _ := store.TopScores("2048", 10)
	if len(normal) != 0 {
		t.Errorf("Expected 0 normal scores after clear, got %d", len(normal))
	}

	easy, _ := store.TopScores("2048_easy", 10)
	if len(easy) != 1 {
		t.Errorf("Easy scores should not be affected by clearing normal")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore(ScoreEntry{GameID: "2048", Score: 1000, MaxTile: 128, BoardSize: 4})
	store.SaveScore(ScoreEntry{GameID: "2048", Score: 3000, MaxTile: 2048, BoardSize: 4, Won: true})
	store.SaveScore(ScoreEntry{GameID: "2048_hard", Score: 50, MaxTile: 16, BoardSize: 3})

	stats, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.Wins != 1 || stats.HighScore != 3000 || stats.BestTile != 2048 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 2000 || stats.TotalScore != 4000 {
		t.Errorf("avg = %v total = %d, want 2000 and 4000", stats.AvgScore, stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("GetAllGamesStats() returned %d games, want 2", len(all))
	}
	if all["2048_hard"].GamesCount != 1 || all["2048_hard"].Wins != 0 {
		t.Errorf("hard stats = %+v", all["2048_hard"])
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
