package flood

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestGame(t *testing.T, seed int64, topo Topology, adj Adjacency) *Game {
	t.Helper()
	g, err := NewGame(10, topo, adj, 6, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	return g
}

func TestNewGameRejectsBadArguments(t *testing.T) {
	src := rand.New(rand.NewSource(1))

	if _, err := NewGame(0, TopologyPlane, AdjacencyOrthogonal, 6, src); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("size 0: expected ErrOutOfBounds, got %v", err)
	}
	if _, err := NewGame(10, TopologyPlane, AdjacencyOrthogonal, 0, src); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("0 colors: expected ErrInvalidColor, got %v", err)
	}
	if _, err := NewGame(10, Topology(9), AdjacencyOrthogonal, 6, src); !errors.Is(err, ErrInvalidTopology) {
		t.Errorf("bad topology: expected ErrInvalidTopology, got %v", err)
	}
}

func TestGameFreshHistoryIsEmpty(t *testing.T) {
	g := newTestGame(t, 1, TopologyPlane, AdjacencyOrthogonal)

	if g.CanUndo() || g.CanRedo() {
		t.Error("fresh game should have nothing to undo or redo")
	}
	if err := g.Undo(); !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("Undo on fresh game: expected ErrEmptyHistory, got %v", err)
	}
	if err := g.Redo(); !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("Redo on fresh game: expected ErrEmptyHistory, got %v", err)
	}
	if g.StepCount() != 0 || g.CapturedCount() != 0 || g.HasInitialCapture() {
		t.Error("fresh game should have no steps and no captures")
	}
}

func TestGameUndoRedoInverse(t *testing.T) {
	g := newTestGame(t, 2, TopologyTorus, AdjacencyDiagonal)
	_ = g.StartCapture(4, 4)

	for i := 0; i < 6; i++ {
		_, _ = g.SelectColor(Color(i))

		after := g.State()
		if err := g.Undo(); err != nil {
			t.Fatalf("Undo() failed: %v", err)
		}
		if err := g.Redo(); err != nil {
			t.Fatalf("Redo() failed: %v", err)
		}
		if !after.Equal(g.State()) {
			t.Fatalf("undo then redo after color %d did not restore the state", i)
		}
	}
}

func TestGameUndoRestoresPreviousState(t *testing.T) {
	g := newTestGame(t, 3, TopologyPlane, AdjacencyOrthogonal)
	beforeCapture := g.State()

	_ = g.StartCapture(0, 0)
	afterCapture := g.State()

	next := (g.SelectedColor() + 1) % 6
	_, _ = g.SelectColor(next)

	if err := g.Undo(); err != nil {
		t.Fatalf("Undo() failed: %v", err)
	}
	if !afterCapture.Equal(g.State()) {
		t.Error("undo should return to the state after the initial capture")
	}

	if err := g.Undo(); err != nil {
		t.Fatalf("second Undo() failed: %v", err)
	}
	if !beforeCapture.Equal(g.State()) {
		t.Error("undo should return to the state before the initial capture")
	}
	if g.HasInitialCapture() {
		t.Error("initial capture should be undone")
	}

	// A new capture after undo discards redo history.
	if err := g.StartCapture(9, 9); err != nil {
		t.Fatalf("StartCapture() after undo failed: %v", err)
	}
	if g.CanRedo() {
		t.Error("a new move should clear redo history")
	}
}

func TestGameReselectIsRecorded(t *testing.T) {
	g := newTestGame(t, 4, TopologyPlane, AdjacencyOrthogonal)
	_ = g.StartCapture(0, 0)
	state := g.State()

	changed, err := g.SelectColor(g.SelectedColor())
	if err != nil || changed {
		t.Fatalf("reselect: changed=%v err=%v", changed, err)
	}
	if !g.CanUndo() {
		t.Fatal("reselect should leave a snapshot to undo")
	}
	_ = g.Undo()
	if !state.Equal(g.State()) {
		t.Error("undoing a reselect should yield an identical state")
	}
}

func TestGameFailedCallsAreNotRecorded(t *testing.T) {
	g := newTestGame(t, 5, TopologyPlane, AdjacencyOrthogonal)

	if _, err := g.SelectColor(1); !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
	if err := g.StartCapture(10, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if err := g.SetTopology(TopologyTorus, Adjacency(4)); !errors.Is(err, ErrInvalidTopology) {
		t.Errorf("expected ErrInvalidTopology, got %v", err)
	}
	if g.CanUndo() {
		t.Error("failed calls should not push snapshots")
	}
}

func TestGameSetTopologyIsUndoable(t *testing.T) {
	g := newTestGame(t, 6, TopologyPlane, AdjacencyOrthogonal)
	_ = g.StartCapture(0, 0)

	if err := g.SetTopology(TopologyTorus, AdjacencyDiagonal); err != nil {
		t.Fatalf("SetTopology() failed: %v", err)
	}
	if g.Topology() != TopologyTorus || g.Adjacency() != AdjacencyDiagonal {
		t.Fatal("topology not applied")
	}

	_ = g.Undo()
	if g.Topology() != TopologyPlane || g.Adjacency() != AdjacencyOrthogonal {
		t.Error("undo should restore the previous topology")
	}
	_ = g.Redo()
	if g.Topology() != TopologyTorus {
		t.Error("redo should reapply the topology change")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, 7, TopologyTorus, AdjacencyOrthogonal)
	_ = g.StartCapture(0, 0)
	_, _ = g.SelectColor((g.SelectedColor() + 1) % 6)

	if err := g.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	if g.StepCount() != 0 || g.CapturedCount() != 0 || g.HasInitialCapture() {
		t.Error("reset should clear counters and capture")
	}
	if g.CanUndo() || g.CanRedo() {
		t.Error("reset should start a new history")
	}
	if g.Topology() != TopologyTorus || g.Size() != 10 || g.ColorCount() != 6 {
		t.Error("reset should keep size, palette and topology")
	}
}

func TestGameResetWithoutSource(t *testing.T) {
	b, _ := NewBoardFromColors([][]Color{{0, 1}, {1, 0}})
	g, err := NewGameWithBoard(b, 2, TopologyPlane, AdjacencyOrthogonal, nil)
	if err != nil {
		t.Fatalf("NewGameWithBoard() failed: %v", err)
	}

	before := g.State()
	if err := g.Reset(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
	if !before.Equal(g.State()) {
		t.Error("failed reset modified the state")
	}
}

func TestRestoreGame(t *testing.T) {
	g := newTestGame(t, 8, TopologyPlane, AdjacencyDiagonal)
	_ = g.StartCapture(5, 5)
	_, _ = g.SelectColor((g.SelectedColor() + 2) % 6)
	saved := g.State()

	restored, err := RestoreGame(saved, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("RestoreGame() failed: %v", err)
	}
	if !saved.Equal(restored.State()) {
		t.Error("restored game differs from saved state")
	}
	if restored.CanUndo() {
		t.Error("restored game should start with a single snapshot")
	}

	saved.CapturedCount++
	if _, err := RestoreGame(saved, nil); !errors.Is(err, ErrCorruptState) {
		t.Errorf("expected ErrCorruptState, got %v", err)
	}
}

func TestGameStateIsACopy(t *testing.T) {
	g := newTestGame(t, 9, TopologyPlane, AdjacencyOrthogonal)
	s := g.State()
	_ = s.Board.SetCaptured(0, 0, true)

	if captured, _ := g.IsCaptured(0, 0); captured {
		t.Error("State() should return a deep copy")
	}
}
