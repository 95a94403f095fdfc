package flood

import (
	"errors"
	"testing"
)

func stateWithSteps(steps int) State {
	b, _ := NewBoardFromColors([][]Color{{0, 1}, {1, 0}})
	return State{Board: b, ColorCount: 2, StepCount: steps}
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory()

	if _, err := h.Undo(); !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("Undo on empty history: expected ErrEmptyHistory, got %v", err)
	}
	if _, err := h.Redo(); !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("Redo on empty history: expected ErrEmptyHistory, got %v", err)
	}

	h.Record(stateWithSteps(0))
	if h.CanUndo() {
		t.Error("a single snapshot is the live state and cannot be undone")
	}
	if _, err := h.Undo(); !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("Undo with one snapshot: expected ErrEmptyHistory, got %v", err)
	}
	if undo, redo := h.Len(); undo != 1 || redo != 0 {
		t.Errorf("failed undo changed stacks: undo=%d redo=%d", undo, redo)
	}
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory()
	h.Record(stateWithSteps(0))
	h.Record(stateWithSteps(1))
	h.Record(stateWithSteps(2))

	snap, err := h.Undo()
	if err != nil {
		t.Fatalf("Undo() failed: %v", err)
	}
	if snap.StepCount() != 1 {
		t.Errorf("Undo should return step 1, got %d", snap.StepCount())
	}
	if !h.CanRedo() {
		t.Error("CanRedo should be true after undo")
	}

	snap, _ = h.Undo()
	if snap.StepCount() != 0 {
		t.Errorf("second Undo should return step 0, got %d", snap.StepCount())
	}
	if h.CanUndo() {
		t.Error("bottom snapshot must not be undone")
	}

	snap, err = h.Redo()
	if err != nil {
		t.Fatalf("Redo() failed: %v", err)
	}
	if snap.StepCount() != 1 {
		t.Errorf("Redo should return step 1, got %d", snap.StepCount())
	}

	snap, _ = h.Redo()
	if snap.StepCount() != 2 {
		t.Errorf("second Redo should return step 2, got %d", snap.StepCount())
	}
	if _, err := h.Redo(); !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("Redo past the end: expected ErrEmptyHistory, got %v", err)
	}
}

func TestHistoryRecordClearsRedo(t *testing.T) {
	h := NewHistory()
	h.Record(stateWithSteps(0))
	h.Record(stateWithSteps(1))
	_, _ = h.Undo()

	h.Record(stateWithSteps(5))

	if h.CanRedo() {
		t.Error("recording a new state should clear redo")
	}
	if undo, _ := h.Len(); undo != 2 {
		t.Errorf("expected 2 undo entries, got %d", undo)
	}
}

func TestSnapshotIsImmutable(t *testing.T) {
	s := stateWithSteps(0)
	h := NewHistory()
	h.Record(s)
	h.Record(stateWithSteps(1))

	// Mutating the recorded source must not leak into the snapshot.
	_ = s.Board.SetCaptured(0, 0, true)

	snap, _ := h.Undo()
	got := snap.State()
	if captured, _ := got.Board.IsCaptured(0, 0); captured {
		t.Error("snapshot shares board with the recorded state")
	}

	// Nor must mutating a returned copy.
	_ = got.Board.SetCaptured(1, 1, true)
	if captured, _ := snap.State().Board.IsCaptured(1, 1); captured {
		t.Error("snapshot shares board with its returned copy")
	}
}
