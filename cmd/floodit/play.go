package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/floodit/internal/config"
	"github.com/vovakirdan/floodit/internal/core"
	"github.com/vovakirdan/floodit/internal/games/floodit"
	"github.com/vovakirdan/floodit/internal/games/floodit/flood"
	"github.com/vovakirdan/floodit/internal/platform/tui"
	"github.com/vovakirdan/floodit/internal/storage"
)

var (
	flagSize       int
	flagColors     int
	flagPlane      bool
	flagTorus      bool
	flagOrthogonal bool
	flagDiagonal   bool
	flagDifficulty string
	flagNew        bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flood It",
	Long: `Start a game of Flood It.

An unfinished game is saved when you quit and resumed on the next start.
Use --new, --difficulty or any board flag to deal a fresh board instead.
Without a difficulty or board flags a preset menu is shown.

Controls:
  Arrows/HJKL  - Move cursor
  Enter/Space  - Pick the initial dot, then flood with the color under the cursor
  1-8          - Flood with a color
  U / R        - Undo / redo
  N            - New board
  T            - Toggle plane/torus
  D            - Toggle orthogonal/diagonal neighbors
  Q/Ctrl+C     - Save and quit

Examples:
  floodit play
  floodit play --new
  floodit play --difficulty easy
  floodit play --size 20 --colors 7 --torus
  floodit play --plane --diagonal`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size (10-40)")
	playCmd.Flags().IntVar(&flagColors, "colors", 0, "Number of colors (3-8)")
	playCmd.Flags().BoolVar(&flagPlane, "plane", false, "Stop neighbors at the board edges")
	playCmd.Flags().BoolVar(&flagTorus, "torus", false, "Wrap neighbors around the board edges")
	playCmd.Flags().BoolVar(&flagOrthogonal, "orthogonal", false, "Count only edge-sharing dots as neighbors")
	playCmd.Flags().BoolVar(&flagDiagonal, "diagonal", false, "Count diagonal dots as neighbors")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset (see 'floodit presets')")
	playCmd.Flags().BoolVar(&flagNew, "new", false, "Ignore the saved game and deal a new board")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	boardFlags := boardFlagsChanged(cmd)
	var game *floodit.Game

	if !flagNew && !boardFlags && flagDifficulty == "" {
		game = resumeSaved(store, cfg, rc)
	}

	if game == nil {
		preset := flagDifficulty
		if preset == "" && !boardFlags {
			chosen, selErr := tui.RunPresetSelector(cfg, rc)
			if selErr != nil {
				return selErr
			}
			if chosen == nil {
				return nil
			}
			preset = chosen.Name
			if preset == config.PresetCustom {
				cfg.Board = chosen.Board().Normalize()
			}
		}
		if err := config.ApplyPreset(&cfg, preset); err != nil {
			return err
		}
		if err := applyBoardFlags(cmd, &cfg.Board); err != nil {
			return err
		}
		if preset == "" {
			preset = config.PresetCustom
		}

		game = floodit.New(cfg.Board, preset)
		if err := game.Reset(rc); err != nil {
			return err
		}
	}

	restore := logToFile()
	defer restore()

	board := game.Board()
	logger.Info("starting game",
		"preset", game.Preset(),
		"size", board.Size,
		"colors", board.Colors,
		"rule", fmt.Sprintf("%s/%s", board.Topology, board.Adjacency),
		"seed", rc.Seed,
	)

	if err := tui.Run(game, store, logger, rc); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// resumeSaved returns the saved game, or nil when there is none to resume.
func resumeSaved(store *storage.Store, cfg config.FloodConfig, rc core.RuntimeConfig) *floodit.Game {
	if store == nil {
		return nil
	}

	saved, err := store.LoadGame()
	if errors.Is(err, storage.ErrNoSavedGame) {
		return nil
	}
	if err != nil {
		logger.Warn("could not load saved game", "error", err)
		return nil
	}

	game := floodit.New(cfg.Board, saved.Preset)
	if err := game.Resume(saved.State, rc); err != nil {
		logger.Warn("could not resume saved game", "error", err)
		return nil
	}
	logger.Info("resuming saved game", "preset", saved.Preset, "saved_at", saved.SavedAt)
	return game
}

// boardFlagsChanged reports whether any board flag was set on the command line.
func boardFlagsChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"size", "colors", "plane", "torus", "orthogonal", "diagonal"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// applyBoardFlags overrides board settings with explicitly set flags.
func applyBoardFlags(cmd *cobra.Command, b *config.BoardConfig) error {
	flags := cmd.Flags()
	if flags.Changed("size") {
		b.Size = flagSize
	}
	if flags.Changed("colors") {
		b.Colors = flagColors
	}

	plane, torus := flagPair(flags.Changed, "plane", "torus", flagPlane, flagTorus, b.Topology == flood.TopologyTorus)
	orthogonal, diagonal := flagPair(flags.Changed, "orthogonal", "diagonal", flagOrthogonal, flagDiagonal, b.Adjacency == flood.AdjacencyDiagonal)
	t, a, err := flood.TopologyFromFlags(plane, torus, orthogonal, diagonal)
	if err != nil {
		return err
	}
	b.Topology = t
	b.Adjacency = a

	*b = b.Normalize()
	return nil
}

// flagPair resolves two mutually exclusive flags. An unset pair keeps the
// configured choice and a single flag implies the opposite of its partner.
// When both are given they are passed through as-is, so "--plane --torus"
// is rejected by TopologyFromFlags.
func flagPair(changed func(string) bool, first, second string, firstVal, secondVal, configuredSecond bool) (bool, bool) {
	switch {
	case changed(first) && changed(second):
		return firstVal, secondVal
	case changed(first):
		return firstVal, !firstVal
	case changed(second):
		return !secondVal, secondVal
	}
	return !configuredSecond, configuredSecond
}

// logToFile sends log output to ~/.floodit/floodit.log while the alternate
// screen is active. The returned func restores stderr.
func logToFile() func() {
	home, err := os.UserHomeDir()
	if err != nil {
		return func() {}
	}
	dir := filepath.Join(home, ".floodit")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "floodit.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		logger.Warn("could not open log file", "error", err)
		return func() {}
	}

	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}
}
