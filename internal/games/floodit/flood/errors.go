package flood

import "errors"

var (
	// ErrOutOfBounds is returned for coordinates outside the board.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrInvalidState is returned when an operation is not allowed in the
	// current phase of the game (second initial capture, color before capture).
	ErrInvalidState = errors.New("invalid state")

	// ErrEmptyHistory is returned by undo/redo when there is nothing to move.
	ErrEmptyHistory = errors.New("empty history")

	// ErrInvalidTopology is returned for unknown topology/adjacency values
	// and for flag pairs with both or neither member set.
	ErrInvalidTopology = errors.New("invalid topology")

	// ErrInvalidColor is returned for a color index outside the palette.
	ErrInvalidColor = errors.New("invalid color")

	// ErrCorruptState is returned when a persisted state fails validation.
	ErrCorruptState = errors.New("corrupt state")
)
