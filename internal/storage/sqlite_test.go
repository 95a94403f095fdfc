package storage

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/floodit/internal/games/floodit/flood"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveResult(Result{Preset: "easy", Size: 10, Colors: 5, Steps: 17}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestSteps(10, 5)
	if err != nil {
		t.Fatalf("BestSteps() failed: %v", err)
	}
	if best != 17 {
		t.Errorf("BestSteps() = %d, expected 17", best)
	}
}

func TestStoreBestResults(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{Preset: "normal", Size: 14, Colors: 6, Steps: 30},
		{Preset: "easy", Size: 10, Colors: 5, Steps: 18},
		{Preset: "torus", Size: 14, Colors: 6, Topology: flood.TopologyTorus, Steps: 22},
		{Preset: "diagonal", Size: 18, Colors: 6, Topology: flood.TopologyTorus, Adjacency: flood.AdjacencyDiagonal, Steps: 12},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult(%s) failed: %v", r.Preset, err)
		}
	}

	best, err := store.BestResults(3)
	if err != nil {
		t.Fatalf("BestResults() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(best))
	}

	wantSteps := []int{12, 18, 22}
	for i, r := range best {
		if r.Steps != wantSteps[i] {
			t.Errorf("best[%d].Steps = %d, expected %d", i, r.Steps, wantSteps[i])
		}
	}

	first := best[0]
	if first.Preset != "diagonal" || first.Size != 18 || first.Colors != 6 {
		t.Errorf("best[0] = %+v, expected the diagonal result", first)
	}
	if first.Topology != flood.TopologyTorus || first.Adjacency != flood.AdjacencyDiagonal {
		t.Errorf("best[0] topology = %s/%s, expected torus/diagonal", first.Topology, first.Adjacency)
	}
	if first.FinishedAt.IsZero() {
		t.Error("FinishedAt should be set by the database")
	}
}

func TestStoreBestSteps(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestSteps(14, 6)
	if err != nil {
		t.Fatalf("BestSteps() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestSteps() on empty table = %d, expected 0", best)
	}

	for _, r := range []Result{
		{Preset: "normal", Size: 14, Colors: 6, Steps: 25},
		{Preset: "normal", Size: 14, Colors: 6, Steps: 21},
		{Preset: "easy", Size: 10, Colors: 5, Steps: 9},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	best, err = store.BestSteps(14, 6)
	if err != nil {
		t.Fatalf("BestSteps() failed: %v", err)
	}
	if best != 21 {
		t.Errorf("BestSteps(14, 6) = %d, expected 21", best)
	}
}

func newSavedState(t *testing.T) flood.State {
	t.Helper()
	g, err := flood.NewGame(10, flood.TopologyTorus, flood.AdjacencyOrthogonal, 5, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	if err := g.StartCapture(4, 4); err != nil {
		t.Fatalf("StartCapture() failed: %v", err)
	}
	for c := 0; c < 3; c++ {
		if _, err := g.SelectColor(flood.Color(c)); err != nil {
			t.Fatalf("SelectColor(%d) failed: %v", c, err)
		}
	}
	return g.State()
}

func TestStoreSaveLoadGame(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.LoadGame(); !errors.Is(err, ErrNoSavedGame) {
		t.Fatalf("LoadGame() on empty slot = %v, expected ErrNoSavedGame", err)
	}

	state := newSavedState(t)
	if err := store.SaveGame("torus", state); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	saved, err := store.LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if saved.Preset != "torus" {
		t.Errorf("Preset = %q, expected torus", saved.Preset)
	}
	if !saved.State.Equal(state) {
		t.Errorf("loaded state differs from saved state:\n%s\nvs\n%s", saved.State.Board, state.Board)
	}
	if saved.SavedAt.IsZero() {
		t.Error("SavedAt should be set by the database")
	}

	if _, err := flood.RestoreGame(saved.State, nil); err != nil {
		t.Errorf("RestoreGame() on loaded state failed: %v", err)
	}
}

func TestStoreSaveGameReplacesSlot(t *testing.T) {
	store := openTestStore(t)

	first := newSavedState(t)
	if err := store.SaveGame("easy", first); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	second := first.Clone()
	second.StepCount = 0
	second.Board = flood.NewRandomBoard(10, 5, rand.New(rand.NewSource(99)))
	second.HasInitialCapture = false
	second.CapturedCount = 0
	if err := store.SaveGame("hard", second); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	var count int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM saved_game").Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("saved_game rows = %d, expected 1", count)
	}

	saved, err := store.LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if saved.Preset != "hard" || !saved.State.Equal(second) {
		t.Error("LoadGame() should return the latest save")
	}
}

func TestStoreDeleteSavedGame(t *testing.T) {
	store := openTestStore(t)

	if err := store.DeleteSavedGame(); err != nil {
		t.Fatalf("DeleteSavedGame() on empty slot failed: %v", err)
	}

	if err := store.SaveGame("normal", newSavedState(t)); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	if err := store.DeleteSavedGame(); err != nil {
		t.Fatalf("DeleteSavedGame() failed: %v", err)
	}
	if _, err := store.LoadGame(); !errors.Is(err, ErrNoSavedGame) {
		t.Errorf("LoadGame() after delete = %v, expected ErrNoSavedGame", err)
	}
}

func TestStoreLoadCorruptGame(t *testing.T) {
	tests := []struct {
		name  string
		state string
	}{
		{"not yaml", "board: [unclosed"},
		{"unknown topology", "board: {size: 1, cells: [{row: 0, col: 0, color: 0}]}\ncolor_count: 1\ntopology: sphere\n"},
		{"missing cells", "board: {size: 2, cells: [{row: 0, col: 0, color: 0}]}\ncolor_count: 1\n"},
		{"no board", "color_count: 3\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := openTestStore(t)
			if _, err := store.db.Exec(
				"INSERT INTO saved_game (id, preset, state) VALUES (1, 'custom', ?)", tc.state,
			); err != nil {
				t.Fatalf("insert failed: %v", err)
			}

			_, err := store.LoadGame()
			if !errors.Is(err, flood.ErrCorruptState) {
				t.Errorf("LoadGame() = %v, expected ErrCorruptState", err)
			}
		})
	}
}
