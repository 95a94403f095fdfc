package floodit

import "github.com/vovakirdan/floodit/internal/games/floodit/flood"

// Phase describes where the player is in a game.
type Phase string

const (
	PhasePicking     Phase = "picking" // No initial capture yet
	PhasePlaying     Phase = "playing"
	PhaseWon         Phase = "won"
	PhasePausedSmall Phase = "paused_small_window"
)

// Snapshot is a read-only summary of the game for tests and logging.
type Snapshot struct {
	Preset    string
	Phase     Phase
	Steps     int
	Captured  int
	Total     int
	Cursor    flood.Coord
	Topology  flood.Topology
	Adjacency flood.Adjacency
	Status    string
}

// Snapshot returns the current game summary.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.tooSmall:
		phase = PhasePausedSmall
	case !g.flood.HasInitialCapture():
		phase = PhasePicking
	case g.flood.IsFinished():
		phase = PhaseWon
	}

	st := g.State()
	return Snapshot{
		Preset:    g.preset,
		Phase:     phase,
		Steps:     st.Steps,
		Captured:  st.Captured,
		Total:     st.Total,
		Cursor:    g.cursor,
		Topology:  g.flood.Topology(),
		Adjacency: g.flood.Adjacency(),
		Status:    g.statusLine(),
	}
}
