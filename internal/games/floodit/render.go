package floodit

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/floodit/internal/core"
	"github.com/vovakirdan/floodit/internal/games/floodit/flood"
)

const (
	cellWidth  = 2 // Characters per board cell
	hudHeight  = 3 // Title, counters, topology
	footHeight = 2 // Palette legend and status line
	minWidth   = 36
	legendCell = 4 // "1██ "
)

// layoutSize returns the screen size needed for a board.
func layoutSize(size, colors int) (w, h int) {
	w = core.Max(size*cellWidth+2, colors*legendCell)
	w = core.Max(w, minWidth)
	h = hudHeight + size + 2 + footHeight
	return w, h
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	size := g.flood.Size()
	boardW := size*cellWidth + 2
	boardH := size + 2
	w, _ := layoutSize(size, g.flood.ColorCount())
	left := (g.screenW - w) / 2
	boardX := left + (w-boardW)/2
	boardY := hudHeight

	g.renderHUD(dst, left, w)
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH), core.ColorGray)
	g.renderBoard(dst, boardX+1, boardY+1)
	g.renderLegend(dst, left, boardY+boardH)
	g.renderStatus(dst, left, boardY+boardH+1)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := layoutSize(g.flood.Size(), g.flood.ColorCount())
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, g.screenW, g.screenH))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, counters and neighbor rule.
func (g *Game) renderHUD(dst *core.Screen, x, w int) {
	title := "FLOOD IT"
	if g.preset != "" {
		title += " · " + g.preset
	}
	dst.DrawTextWithColor(x+(w-len([]rune(title)))/2, 0, title, core.ColorBrightWhite)

	st := g.State()
	counters := fmt.Sprintf("Steps: %d  Captured: %d/%d", st.Steps, st.Captured, st.Total)
	if g.best > 0 {
		counters += fmt.Sprintf("  Best: %d", g.best)
	}
	dst.DrawText(x, 1, counters)

	rule := fmt.Sprintf("%s / %s", g.flood.Topology(), g.flood.Adjacency())
	dst.DrawTextWithColor(x, 2, rule, core.ColorGray)
}

// renderBoard draws every cell in its displayed color and marks the cursor.
func (g *Game) renderBoard(dst *core.Screen, x0, y0 int) {
	size := g.flood.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			color, err := g.flood.ColorAt(row, col)
			if err != nil {
				continue
			}
			fg := core.PaletteColor(int(color))
			x := x0 + col*cellWidth
			y := y0 + row

			if flood.At(row, col) == g.cursor {
				dst.SetWithColor(x, y, '[', fg)
				dst.SetWithColor(x+1, y, ']', fg)
				continue
			}
			dst.DrawRect(core.NewRect(x, y, cellWidth, 1), '█', fg)
		}
	}
}

// renderLegend draws the number key for every color in play, highlighting
// the selected one.
func (g *Game) renderLegend(dst *core.Screen, x, y int) {
	for i := 0; i < g.flood.ColorCount(); i++ {
		cx := x + i*legendCell
		label := core.ColorGray
		if g.flood.HasInitialCapture() && flood.Color(i) == g.flood.SelectedColor() {
			label = core.ColorBrightWhite
		}
		dst.DrawTextWithColor(cx, y, fmt.Sprintf("%d", i+1), label)
		dst.DrawTextWithColor(cx+1, y, strings.Repeat("█", cellWidth), core.PaletteColor(i))
	}
}

// renderStatus draws the prompt, the last error or the win message.
func (g *Game) renderStatus(dst *core.Screen, x, y int) {
	dst.DrawTextWithColor(x, y, g.statusLine(), core.ColorYellow)
}

func (g *Game) statusLine() string {
	switch {
	case g.status != "":
		return g.status
	case !g.flood.HasInitialCapture():
		return "Select initial dot"
	case g.flood.IsFinished():
		return fmt.Sprintf("Flooded in %d steps! N: new board", g.flood.StepCount())
	}
	return ""
}
