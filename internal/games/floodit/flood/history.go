package flood

import "fmt"

// History keeps full-state snapshots for undo and redo.
//
// The top of the undo stack always mirrors the live state, so undo needs at
// least two entries: the one being left and the one being returned to.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Record pushes a copy of s and drops any redo entries.
func (h *History) Record(s State) {
	h.undoStack = append(h.undoStack, NewSnapshot(s))
	h.redoStack = h.redoStack[:0]
}

// Undo moves the current snapshot to the redo stack and returns the one
// below it, which stays on the undo stack as the new live state.
func (h *History) Undo() (Snapshot, error) {
	if len(h.undoStack) < 2 {
		return Snapshot{}, fmt.Errorf("flood: nothing to undo: %w", ErrEmptyHistory)
	}
	top := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, top)
	return h.undoStack[len(h.undoStack)-1], nil
}

// Redo moves the most recently undone snapshot back onto the undo stack
// and returns it.
func (h *History) Redo() (Snapshot, error) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, fmt.Errorf("flood: nothing to redo: %w", ErrEmptyHistory)
	}
	top := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, top)
	return top, nil
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool {
	return len(h.undoStack) >= 2
}

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Len returns the sizes of the undo and redo stacks.
func (h *History) Len() (undo, redo int) {
	return len(h.undoStack), len(h.redoStack)
}

// Clear drops every snapshot.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}
