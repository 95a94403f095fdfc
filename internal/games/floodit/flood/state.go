package flood

import "fmt"

// State is the complete, serializable state of one game. Field tags define
// the persisted layout; the storage layer picks the encoding.
type State struct {
	Board             *Board    `yaml:"board"`
	ColorCount        int       `yaml:"color_count"`
	SelectedColor     Color     `yaml:"selected_color"`
	HasInitialCapture bool      `yaml:"has_initial_capture"`
	StepCount         int       `yaml:"step_count"`
	CapturedCount     int       `yaml:"captured_count"`
	Topology          Topology  `yaml:"topology"`
	Adjacency         Adjacency `yaml:"adjacency"`
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	c := s
	if s.Board != nil {
		c.Board = s.Board.Clone()
	}
	return c
}

// Equal reports whether two states are observably identical.
func (s State) Equal(other State) bool {
	if s.Board == nil || other.Board == nil {
		if s.Board != other.Board {
			return false
		}
	} else if !s.Board.Equal(other.Board) {
		return false
	}
	return s.ColorCount == other.ColorCount &&
		s.SelectedColor == other.SelectedColor &&
		s.HasInitialCapture == other.HasInitialCapture &&
		s.StepCount == other.StepCount &&
		s.CapturedCount == other.CapturedCount &&
		s.Topology == other.Topology &&
		s.Adjacency == other.Adjacency
}

// Validate checks the structural invariants of a state coming from outside
// the engine, typically a saved game.
func (s State) Validate() error {
	if s.Board == nil || s.Board.Size < 1 {
		return fmt.Errorf("flood: missing board: %w", ErrCorruptState)
	}
	size := s.Board.Size
	if len(s.Board.Cells) != size*size {
		return fmt.Errorf("flood: %d cells for size %d: %w", len(s.Board.Cells), size, ErrCorruptState)
	}
	if s.ColorCount < 1 {
		return fmt.Errorf("flood: color count %d: %w", s.ColorCount, ErrCorruptState)
	}
	if err := validateTopology(s.Topology, s.Adjacency); err != nil {
		return err
	}
	for i, cell := range s.Board.Cells {
		if cell.Row != i/size || cell.Col != i%size {
			return fmt.Errorf("flood: cell %d claims position (%d,%d): %w", i, cell.Row, cell.Col, ErrCorruptState)
		}
		if cell.Color < 0 || int(cell.Color) >= s.ColorCount {
			return fmt.Errorf("flood: cell (%d,%d) color %d: %w", cell.Row, cell.Col, cell.Color, ErrCorruptState)
		}
	}
	captured := s.Board.CountCaptured()
	if captured != s.CapturedCount {
		return fmt.Errorf("flood: captured count %d, board has %d: %w", s.CapturedCount, captured, ErrCorruptState)
	}
	if s.HasInitialCapture != (captured > 0) {
		return fmt.Errorf("flood: initial capture flag disagrees with board: %w", ErrCorruptState)
	}
	if s.StepCount < 0 {
		return fmt.Errorf("flood: step count %d: %w", s.StepCount, ErrCorruptState)
	}
	if s.HasInitialCapture && (s.SelectedColor < 0 || int(s.SelectedColor) >= s.ColorCount) {
		return fmt.Errorf("flood: selected color %d: %w", s.SelectedColor, ErrCorruptState)
	}
	return nil
}

// Snapshot is an immutable copy of a State taken by the history.
type Snapshot struct {
	state State
}

// NewSnapshot deep-copies s.
func NewSnapshot(s State) Snapshot {
	return Snapshot{state: s.Clone()}
}

// State returns a fresh deep copy of the captured state.
func (s Snapshot) State() State {
	return s.state.Clone()
}

// StepCount returns the step counter at snapshot time.
func (s Snapshot) StepCount() int {
	return s.state.StepCount
}

// CapturedCount returns the captured counter at snapshot time.
func (s Snapshot) CapturedCount() int {
	return s.state.CapturedCount
}
