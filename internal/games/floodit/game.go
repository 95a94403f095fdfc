// Package floodit is the playable Flood It game: a cursor over the board,
// color picks and history controls on top of the flood engine. It consumes
// core input frames and draws on a core screen; it knows nothing about the
// terminal.
package floodit

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/floodit/internal/config"
	"github.com/vovakirdan/floodit/internal/core"
	"github.com/vovakirdan/floodit/internal/games/floodit/flood"
)

// ID is the identifier used for saved games and log fields.
const ID = "floodit"

// Game implements the Flood It puzzle.
type Game struct {
	board  config.BoardConfig
	preset string

	rng   *rand.Rand
	flood *flood.Game

	cursor   flood.Coord
	best     int
	status   string
	recorded bool // A win on the current board has been stored

	screenW  int
	screenH  int
	tooSmall bool
	quit     bool
}

// New creates a game that deals boards described by board.
// preset names the difficulty the board came from and is kept for results.
func New(board config.BoardConfig, preset string) *Game {
	return &Game{
		board:  board.Normalize(),
		preset: preset,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Flood It"
}

// Preset returns the difficulty preset name.
func (g *Game) Preset() string {
	return g.preset
}

// Board returns the board settings currently in play.
func (g *Game) Board() config.BoardConfig {
	b := g.board
	if g.flood != nil {
		b.Topology = g.flood.Topology()
		b.Adjacency = g.flood.Adjacency()
	}
	return b
}

// Reset deals a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	fg, err := flood.NewGame(g.board.Size, g.board.Topology, g.board.Adjacency, g.board.Colors, g.rng)
	if err != nil {
		return fmt.Errorf("floodit: deal: %w", err)
	}
	g.flood = fg
	g.start(cfg)
	return nil
}

// Resume continues a saved game. The board settings follow the saved state.
func (g *Game) Resume(state flood.State, cfg core.RuntimeConfig) error {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	fg, err := flood.RestoreGame(state, g.rng)
	if err != nil {
		return fmt.Errorf("floodit: resume: %w", err)
	}
	g.flood = fg
	g.board = config.BoardConfig{
		Size:      fg.Size(),
		Colors:    fg.ColorCount(),
		Topology:  fg.Topology(),
		Adjacency: fg.Adjacency(),
	}
	g.start(cfg)
	return nil
}

func (g *Game) start(cfg core.RuntimeConfig) {
	mid := g.flood.Size() / 2
	g.cursor = flood.At(mid, mid)
	g.status = ""
	g.recorded = g.flood.IsFinished()
	g.quit = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to a new screen size.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// SetBest sets the best known step count for this board, 0 when unknown.
func (g *Game) SetBest(steps int) {
	g.best = steps
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		g.quit = true
		return core.StepResult{State: g.State()}
	}
	if g.tooSmall || in.Empty() {
		return core.StepResult{State: g.State()}
	}

	before := g.flood.State()
	cursor := g.cursor
	g.status = ""

	g.moveCursor(in)

	switch {
	case in.Has(core.ActionUndo):
		g.report(g.flood.Undo())
	case in.Has(core.ActionRedo):
		g.report(g.flood.Redo())
	case in.Has(core.ActionReset):
		g.dealNext()
	case in.Has(core.ActionToggleTopology):
		g.report(g.flood.SetTopology(toggleTopology(g.flood.Topology()), g.flood.Adjacency()))
	case in.Has(core.ActionToggleAdjacency):
		g.report(g.flood.SetTopology(g.flood.Topology(), toggleAdjacency(g.flood.Adjacency())))
	case in.Has(core.ActionConfirm):
		g.confirm()
	case in.HasColor():
		g.selectColor(flood.Color(in.Color))
	}

	changed := cursor != g.cursor || !before.Equal(g.flood.State())
	return core.StepResult{State: g.State(), Changed: changed}
}

// dealNext replaces the board with a fresh deal from the same source.
func (g *Game) dealNext() {
	err := g.flood.Reset()
	if err == nil {
		g.recorded = false
	}
	g.report(err)
}

// Recorded reports whether a win on the current board has been stored.
// Undo and redo keep the mark; only a new deal clears it.
func (g *Game) Recorded() bool {
	return g.recorded
}

// MarkRecorded notes that the win on the current board has been stored.
func (g *Game) MarkRecorded() {
	g.recorded = true
}

// moveCursor moves the cursor, wrapping around edges on a torus.
func (g *Game) moveCursor(in core.InputFrame) {
	row, col := g.cursor.Row, g.cursor.Col
	switch {
	case in.Has(core.ActionUp):
		row--
	case in.Has(core.ActionDown):
		row++
	case in.Has(core.ActionLeft):
		col--
	case in.Has(core.ActionRight):
		col++
	default:
		return
	}

	size := g.flood.Size()
	if g.flood.Topology() == flood.TopologyTorus {
		g.cursor = flood.At(core.Wrap(row, size), core.Wrap(col, size))
		return
	}
	g.cursor = flood.At(core.Clamp(row, 0, size-1), core.Clamp(col, 0, size-1))
}

// confirm captures the cell under the cursor, or floods with its color once
// the initial cell is taken.
func (g *Game) confirm() {
	if !g.flood.HasInitialCapture() {
		g.report(g.flood.StartCapture(g.cursor.Row, g.cursor.Col))
		return
	}
	color, err := g.flood.ColorAt(g.cursor.Row, g.cursor.Col)
	if err != nil {
		g.report(err)
		return
	}
	g.selectColor(color)
}

func (g *Game) selectColor(color flood.Color) {
	if g.flood.IsFinished() {
		return
	}
	_, err := g.flood.SelectColor(color)
	g.report(err)
}

// report turns engine errors into a status line for the player.
func (g *Game) report(err error) {
	switch {
	case err == nil:
		g.status = ""
	case errors.Is(err, flood.ErrEmptyHistory):
		g.status = "Nothing to undo or redo"
	case errors.Is(err, flood.ErrInvalidState) && !g.flood.HasInitialCapture():
		g.status = "Select initial dot first"
	case errors.Is(err, flood.ErrInvalidColor):
		g.status = fmt.Sprintf("Only colors 1-%d are in play", g.flood.ColorCount())
	default:
		g.status = err.Error()
	}
}

func toggleTopology(t flood.Topology) flood.Topology {
	if t == flood.TopologyTorus {
		return flood.TopologyPlane
	}
	return flood.TopologyTorus
}

func toggleAdjacency(a flood.Adjacency) flood.Adjacency {
	if a == flood.AdjacencyDiagonal {
		return flood.AdjacencyOrthogonal
	}
	return flood.AdjacencyDiagonal
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	if g.flood == nil {
		return
	}
	w, h := layoutSize(g.flood.Size(), g.flood.ColorCount())
	g.tooSmall = g.screenW < w || g.screenH < h
}

// FloodState returns a deep copy of the engine state, for saving.
func (g *Game) FloodState() flood.State {
	return g.flood.State()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	size := g.flood.Size()
	return core.GameState{
		Steps:    g.flood.StepCount(),
		Captured: g.flood.CapturedCount(),
		Total:    size * size,
		Started:  g.flood.HasInitialCapture(),
		Won:      g.flood.IsFinished(),
		Quit:     g.quit,
	}
}
