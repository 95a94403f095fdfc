package flood

import "fmt"

// Game ties an Engine to its History. Every successful mutating call leaves
// a snapshot of the resulting state on top of the undo stack.
type Game struct {
	engine  *Engine
	history *History
	src     ColorSource
}

// NewGame deals a random size x size board with colorCount colors drawn
// from src and records it as the first snapshot.
func NewGame(size int, t Topology, a Adjacency, colorCount int, src ColorSource) (*Game, error) {
	if size < 1 {
		return nil, fmt.Errorf("flood: board size %d: %w", size, ErrOutOfBounds)
	}
	if colorCount < 1 {
		return nil, fmt.Errorf("flood: color count %d: %w", colorCount, ErrInvalidColor)
	}
	if err := validateTopology(t, a); err != nil {
		return nil, err
	}
	engine, err := NewEngine(NewRandomBoard(size, colorCount, src), colorCount, t, a)
	if err != nil {
		return nil, err
	}
	return newGame(engine, src), nil
}

// NewGameWithBoard starts a game on a prepared board. src is only used by
// Reset and may be nil when Reset is never called.
func NewGameWithBoard(board *Board, colorCount int, t Topology, a Adjacency, src ColorSource) (*Game, error) {
	engine, err := NewEngine(board, colorCount, t, a)
	if err != nil {
		return nil, err
	}
	return newGame(engine, src), nil
}

// RestoreGame resumes a persisted state. The history starts over with the
// restored state as its only snapshot.
func RestoreGame(s State, src ColorSource) (*Game, error) {
	engine, err := RestoreEngine(s)
	if err != nil {
		return nil, err
	}
	return newGame(engine, src), nil
}

func newGame(engine *Engine, src ColorSource) *Game {
	g := &Game{
		engine:  engine,
		history: NewHistory(),
		src:     src,
	}
	g.record()
	return g
}

func (g *Game) record() {
	g.history.Record(g.engine.state)
}

// StartCapture makes the initial capture at (row, col).
func (g *Game) StartCapture(row, col int) error {
	if err := g.engine.StartCapture(row, col); err != nil {
		return err
	}
	g.record()
	return nil
}

// SelectColor floods with color. A reselection of the current color is
// still recorded, matching how every settings change is recorded.
func (g *Game) SelectColor(color Color) (bool, error) {
	changed, err := g.engine.SelectColor(color)
	if err != nil {
		return false, err
	}
	g.record()
	return changed, nil
}

// SetTopology changes the neighbor rule and records the change.
func (g *Game) SetTopology(t Topology, a Adjacency) error {
	if err := g.engine.SetTopology(t, a); err != nil {
		return err
	}
	g.record()
	return nil
}

// Undo returns to the previous snapshot.
func (g *Game) Undo() error {
	snap, err := g.history.Undo()
	if err != nil {
		return err
	}
	g.engine.Restore(snap.state)
	return nil
}

// Redo reapplies the most recently undone snapshot.
func (g *Game) Redo() error {
	snap, err := g.history.Redo()
	if err != nil {
		return err
	}
	g.engine.Restore(snap.state)
	return nil
}

// Reset deals a new board of the same size and palette, keeping the
// topology, and starts a new history.
func (g *Game) Reset() error {
	if g.src == nil {
		return fmt.Errorf("flood: reset without a color source: %w", ErrInvalidState)
	}
	s := g.engine.state
	engine, err := NewEngine(NewRandomBoard(s.Board.Size, s.ColorCount, g.src), s.ColorCount, s.Topology, s.Adjacency)
	if err != nil {
		return err
	}
	g.engine = engine
	g.history.Clear()
	g.record()
	return nil
}

// State returns a deep copy of the live state.
func (g *Game) State() State {
	return g.engine.State()
}

// ColorAt returns the displayed color at (row, col).
func (g *Game) ColorAt(row, col int) (Color, error) {
	return g.engine.ColorAt(row, col)
}

// IsCaptured reports whether (row, col) is captured.
func (g *Game) IsCaptured(row, col int) (bool, error) {
	return g.engine.IsCaptured(row, col)
}

// StepCount returns the number of color-changing selections.
func (g *Game) StepCount() int {
	return g.engine.StepCount()
}

// CapturedCount returns the number of captured cells.
func (g *Game) CapturedCount() int {
	return g.engine.CapturedCount()
}

// IsFinished reports whether the whole board is captured.
func (g *Game) IsFinished() bool {
	return g.engine.IsFinished()
}

// CanUndo reports whether Undo would succeed.
func (g *Game) CanUndo() bool {
	return g.history.CanUndo()
}

// CanRedo reports whether Redo would succeed.
func (g *Game) CanRedo() bool {
	return g.history.CanRedo()
}

// Size returns the board dimension.
func (g *Game) Size() int {
	return g.engine.Size()
}

// ColorCount returns the palette size.
func (g *Game) ColorCount() int {
	return g.engine.ColorCount()
}

// SelectedColor returns the active color.
func (g *Game) SelectedColor() Color {
	return g.engine.SelectedColor()
}

// HasInitialCapture reports whether the initial capture was made.
func (g *Game) HasInitialCapture() bool {
	return g.engine.HasInitialCapture()
}

// Topology returns the edge rule.
func (g *Game) Topology() Topology {
	return g.engine.Topology()
}

// Adjacency returns the neighbor shape.
func (g *Game) Adjacency() Adjacency {
	return g.engine.Adjacency()
}
