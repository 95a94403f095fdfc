package flood

import "fmt"

// Engine owns one board and the counters of a game in progress.
// It is not safe for concurrent use; callers serialize every mutating call.
type Engine struct {
	state State
}

// NewEngine wraps board in a fresh engine. The board must not carry captured
// cells: a game in progress is rebuilt with RestoreEngine, which also knows
// the selected color.
func NewEngine(board *Board, colorCount int, t Topology, a Adjacency) (*Engine, error) {
	if board == nil || board.Size < 1 {
		return nil, fmt.Errorf("flood: empty board: %w", ErrInvalidState)
	}
	if colorCount < 1 {
		return nil, fmt.Errorf("flood: color count %d: %w", colorCount, ErrInvalidColor)
	}
	if err := validateTopology(t, a); err != nil {
		return nil, err
	}
	if n := board.CountCaptured(); n > 0 {
		return nil, fmt.Errorf("flood: new board has %d captured cells: %w", n, ErrInvalidState)
	}
	return &Engine{state: State{
		Board:      board,
		ColorCount: colorCount,
		Topology:   t,
		Adjacency:  a,
	}}, nil
}

// RestoreEngine builds an engine from a validated copy of s.
func RestoreEngine(s State) (*Engine, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Engine{state: s.Clone()}, nil
}

// StartCapture captures the first cell of the game and adopts its color.
func (e *Engine) StartCapture(row, col int) error {
	if e.state.HasInitialCapture {
		return fmt.Errorf("flood: initial capture already made: %w", ErrInvalidState)
	}
	cell, err := e.state.Board.Get(row, col)
	if err != nil {
		return err
	}
	e.state.Board.cell(At(row, col)).Captured = true
	e.state.SelectedColor = cell.Color
	e.state.HasInitialCapture = true
	e.state.CapturedCount++
	return nil
}

// SelectColor switches the captured region to color and floods outward.
// Reselecting the current color changes nothing and reports false.
func (e *Engine) SelectColor(color Color) (bool, error) {
	if !e.state.HasInitialCapture {
		return false, fmt.Errorf("flood: color selected before initial capture: %w", ErrInvalidState)
	}
	if color < 0 || int(color) >= e.state.ColorCount {
		return false, fmt.Errorf("flood: color %d of %d: %w", color, e.state.ColorCount, ErrInvalidColor)
	}
	if color == e.state.SelectedColor {
		return false, nil
	}
	e.state.SelectedColor = color
	e.expand()
	e.state.StepCount++
	return true, nil
}

// expand grows the captured region to every cell reachable through
// neighbors of the selected color. Any worklist order reaches the same set.
func (e *Engine) expand() {
	b := e.state.Board
	work := b.CapturedCoords()
	for len(work) > 0 {
		c := work[len(work)-1]
		work = work[:len(work)-1]

		Neighbors(c, b.Size, e.state.Topology, e.state.Adjacency).Each(func(n Coord) {
			cell := b.cell(n)
			if cell.Captured || cell.Color != e.state.SelectedColor {
				return
			}
			cell.Captured = true
			e.state.CapturedCount++
			work = append(work, n)
		})
	}
}

// SetTopology changes the neighbor rule. It takes effect on the next flood.
func (e *Engine) SetTopology(t Topology, a Adjacency) error {
	if err := validateTopology(t, a); err != nil {
		return err
	}
	e.state.Topology = t
	e.state.Adjacency = a
	return nil
}

// Restore replaces the engine state with a copy of s.
func (e *Engine) Restore(s State) {
	e.state = s.Clone()
}

// State returns a deep copy of the current state.
func (e *Engine) State() State {
	return e.state.Clone()
}

// IsFinished reports whether every cell is captured.
func (e *Engine) IsFinished() bool {
	return e.state.CapturedCount == e.state.Board.Size*e.state.Board.Size
}

// ColorAt returns the color a player sees at (row, col): the selected color
// for captured cells, the stored color otherwise.
func (e *Engine) ColorAt(row, col int) (Color, error) {
	cell, err := e.state.Board.Get(row, col)
	if err != nil {
		return 0, err
	}
	if cell.Captured {
		return e.state.SelectedColor, nil
	}
	return cell.Color, nil
}

// IsCaptured reports whether (row, col) belongs to the captured region.
func (e *Engine) IsCaptured(row, col int) (bool, error) {
	return e.state.Board.IsCaptured(row, col)
}

// StepCount returns the number of color-changing selections so far.
func (e *Engine) StepCount() int {
	return e.state.StepCount
}

// CapturedCount returns the number of captured cells.
func (e *Engine) CapturedCount() int {
	return e.state.CapturedCount
}

// SelectedColor returns the active color. Meaningful only after the
// initial capture.
func (e *Engine) SelectedColor() Color {
	return e.state.SelectedColor
}

// HasInitialCapture reports whether StartCapture has run.
func (e *Engine) HasInitialCapture() bool {
	return e.state.HasInitialCapture
}

// Size returns the board dimension.
func (e *Engine) Size() int {
	return e.state.Board.Size
}

// ColorCount returns the palette size.
func (e *Engine) ColorCount() int {
	return e.state.ColorCount
}

// Topology returns the edge rule.
func (e *Engine) Topology() Topology {
	return e.state.Topology
}

// Adjacency returns the neighbor shape.
func (e *Engine) Adjacency() Adjacency {
	return e.state.Adjacency
}
