package flood

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewRandomBoard(t *testing.T) {
	b := NewRandomBoard(10, 6, rand.New(rand.NewSource(7)))

	if b.Size != 10 || len(b.Cells) != 100 {
		t.Fatalf("expected 10x10 board with 100 cells, got size %d with %d cells", b.Size, len(b.Cells))
	}

	for i, cell := range b.Cells {
		if cell.Row != i/10 || cell.Col != i%10 {
			t.Errorf("cell %d has position (%d,%d)", i, cell.Row, cell.Col)
		}
		if cell.Color < 0 || cell.Color >= 6 {
			t.Errorf("cell %d has color %d outside palette", i, cell.Color)
		}
		if cell.Captured {
			t.Errorf("cell %d should start uncaptured", i)
		}
	}
}

func TestNewRandomBoardDeterministic(t *testing.T) {
	a := NewRandomBoard(12, 6, rand.New(rand.NewSource(99)))
	b := NewRandomBoard(12, 6, rand.New(rand.NewSource(99)))

	if !a.Equal(b) {
		t.Error("boards from the same seed should be equal")
	}
}

func TestNewBoardFromColorsRejectsRagged(t *testing.T) {
	_, err := NewBoardFromColors([][]Color{{0, 1}, {0}})
	if err == nil {
		t.Error("expected error for non-square rows")
	}
}

func TestBoardBounds(t *testing.T) {
	b, err := NewBoardFromColors([][]Color{{0, 1}, {2, 3}})
	if err != nil {
		t.Fatalf("NewBoardFromColors() failed: %v", err)
	}

	tests := []struct {
		name     string
		row, col int
		ok       bool
	}{
		{"top-left", 0, 0, true},
		{"bottom-right", 1, 1, true},
		{"negative row", -1, 0, false},
		{"negative col", 0, -1, false},
		{"row past edge", 2, 0, false},
		{"col past edge", 0, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, getErr := b.Get(tc.row, tc.col)
			_, colorErr := b.ColorAt(tc.row, tc.col)
			setErr := b.SetCaptured(tc.row, tc.col, false)

			for _, err := range []error{getErr, colorErr, setErr} {
				if tc.ok && err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				if !tc.ok && !errors.Is(err, ErrOutOfBounds) {
					t.Errorf("expected ErrOutOfBounds, got %v", err)
				}
			}
		})
	}
}

func TestBoardSetCaptured(t *testing.T) {
	b, _ := NewBoardFromColors([][]Color{{0, 1}, {2, 3}})

	if err := b.SetCaptured(1, 0, true); err != nil {
		t.Fatalf("SetCaptured() failed: %v", err)
	}

	captured, _ := b.IsCaptured(1, 0)
	if !captured {
		t.Error("(1,0) should be captured")
	}
	if b.CountCaptured() != 1 {
		t.Errorf("expected 1 captured cell, got %d", b.CountCaptured())
	}

	color, _ := b.ColorAt(1, 0)
	if color != 2 {
		t.Errorf("capturing should keep stored color 2, got %d", color)
	}
}

func TestBoardClone(t *testing.T) {
	b, _ := NewBoardFromColors([][]Color{{0, 1}, {2, 3}})
	clone := b.Clone()

	if !b.Equal(clone) {
		t.Fatal("clone should equal original")
	}

	_ = clone.SetCaptured(0, 0, true)

	if captured, _ := b.IsCaptured(0, 0); captured {
		t.Error("modifying clone should not affect original")
	}
	if b.Equal(clone) {
		t.Error("boards should differ after modifying clone")
	}
}

func TestBoardString(t *testing.T) {
	b, _ := NewBoardFromColors([][]Color{{0, 1}, {2, 3}})
	_ = b.SetCaptured(0, 1, true)

	want := "0 1*\n2 3\n"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
