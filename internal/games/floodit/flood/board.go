// Package flood implements the capture engine of the FloodIt puzzle: the
// board, the neighbor rules, flood expansion, and snapshot based undo/redo.
// The package is UI-agnostic and deterministic for a given color source.
package flood

import (
	"fmt"
	"strings"
)

// Color is an index into the game palette, in [0, colorCount).
type Color int

// Coord is a board position. Row grows downward, Col to the right.
type Coord struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Cell is a single board square. Cells are value records; two cells at the
// same position are the same cell.
type Cell struct {
	Row      int   `yaml:"row"`
	Col      int   `yaml:"col"`
	Color    Color `yaml:"color"`
	Captured bool  `yaml:"captured"`
}

// ColorSource yields uniform values in [0, n). *rand.Rand satisfies it.
type ColorSource interface {
	Intn(n int) int
}

// Board is a square grid stored in row-major order: index = row*Size + col.
type Board struct {
	Size  int    `yaml:"size"`
	Cells []Cell `yaml:"cells"`
}

// NewRandomBoard allocates a size x size board with every cell colored by
// src and nothing captured.
func NewRandomBoard(size, colorCount int, src ColorSource) *Board {
	b := &Board{
		Size:  size,
		Cells: make([]Cell, size*size),
	}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			b.Cells[row*size+col] = Cell{
				Row:   row,
				Col:   col,
				Color: Color(src.Intn(colorCount)),
			}
		}
	}
	return b
}

// NewBoardFromColors builds a board from explicit rows of colors.
// Rows must form a square.
func NewBoardFromColors(rows [][]Color) (*Board, error) {
	size := len(rows)
	b := &Board{
		Size:  size,
		Cells: make([]Cell, size*size),
	}
	for row, line := range rows {
		if len(line) != size {
			return nil, fmt.Errorf("flood: row %d has %d cells, want %d", row, len(line), size)
		}
		for col, color := range line {
			b.Cells[row*size+col] = Cell{Row: row, Col: col, Color: color}
		}
	}
	return b, nil
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Size && col >= 0 && col < b.Size
}

func (b *Board) index(row, col int) (int, error) {
	if !b.InBounds(row, col) {
		return 0, fmt.Errorf("flood: cell (%d,%d) on %dx%d board: %w", row, col, b.Size, b.Size, ErrOutOfBounds)
	}
	return row*b.Size + col, nil
}

// Get returns the cell at (row, col).
func (b *Board) Get(row, col int) (Cell, error) {
	i, err := b.index(row, col)
	if err != nil {
		return Cell{}, err
	}
	return b.Cells[i], nil
}

// ColorAt returns the stored color of (row, col), ignoring capture.
func (b *Board) ColorAt(row, col int) (Color, error) {
	cell, err := b.Get(row, col)
	return cell.Color, err
}

// IsCaptured reports whether (row, col) is captured.
func (b *Board) IsCaptured(row, col int) (bool, error) {
	cell, err := b.Get(row, col)
	return cell.Captured, err
}

// SetCaptured updates the captured flag of (row, col).
func (b *Board) SetCaptured(row, col int, captured bool) error {
	i, err := b.index(row, col)
	if err != nil {
		return err
	}
	b.Cells[i].Captured = captured
	return nil
}

// cell is the unchecked accessor used by the engine for coordinates produced
// by Neighbors, which are always in range.
func (b *Board) cell(c Coord) *Cell {
	return &b.Cells[c.Row*b.Size+c.Col]
}

// CapturedCoords returns the captured positions in row-major order.
func (b *Board) CapturedCoords() []Coord {
	coords := make([]Coord, 0)
	for _, cell := range b.Cells {
		if cell.Captured {
			coords = append(coords, At(cell.Row, cell.Col))
		}
	}
	return coords
}

// CountCaptured counts captured cells by scanning the grid.
func (b *Board) CountCaptured() int {
	n := 0
	for _, cell := range b.Cells {
		if cell.Captured {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{Size: b.Size, Cells: cells}
}

// Equal returns true if both boards have the same size and cells.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.Size != other.Size || len(b.Cells) != len(other.Cells) {
		return false
	}
	for i, cell := range b.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}

// String renders stored colors, one row per line; captured cells get a '*'.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			cell := b.Cells[row*b.Size+col]
			if col > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", cell.Color)
			if cell.Captured {
				sb.WriteByte('*')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
