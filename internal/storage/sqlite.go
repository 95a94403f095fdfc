// Package storage provides SQLite-based persistence for finished games and
// the saved in-progress game.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/floodit/internal/games/floodit/flood"
)

// ErrNoSavedGame is returned by LoadGame when the save slot is empty.
var ErrNoSavedGame = errors.New("storage: no saved game")

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID         int64
	Preset     string
	Size       int
	Colors     int
	Topology   flood.Topology
	Adjacency  flood.Adjacency
	Steps      int
	FinishedAt time.Time
}

// SavedGame is the content of the single save slot.
type SavedGame struct {
	Preset  string
	State   flood.State
	SavedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			preset TEXT NOT NULL,
			size INTEGER NOT NULL,
			colors INTEGER NOT NULL,
			topology TEXT NOT NULL,
			adjacency TEXT NOT NULL,
			steps INTEGER NOT NULL,
			finished_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_steps ON results(steps ASC);
		CREATE INDEX IF NOT EXISTS idx_results_board ON results(size, colors, steps);

		CREATE TABLE IF NOT EXISTS saved_game (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			preset TEXT NOT NULL,
			state TEXT NOT NULL,
			saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (preset, size, colors, topology, adjacency, steps)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Preset, r.Size, r.Colors, r.Topology.String(), r.Adjacency.String(), r.Steps,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestResults retrieves the N results with the fewest steps.
// Ties keep insertion order.
func (s *Store) BestResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, preset, size, colors, topology, adjacency, steps, finished_at
		 FROM results
		 ORDER BY steps ASC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var (
			r          Result
			topology   string
			adjacency  string
			finishedAt any
		)
		if err := rows.Scan(&r.ID, &r.Preset, &r.Size, &r.Colors, &topology, &adjacency, &r.Steps, &finishedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if err := r.Topology.UnmarshalText([]byte(topology)); err != nil {
			return nil, fmt.Errorf("storage: result %d: %w", r.ID, err)
		}
		if err := r.Adjacency.UnmarshalText([]byte(adjacency)); err != nil {
			return nil, fmt.Errorf("storage: result %d: %w", r.ID, err)
		}
		r.FinishedAt = parseTime(finishedAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// BestSteps returns the lowest step count recorded for boards of the given
// size and palette. Returns 0 if no results exist.
func (s *Store) BestSteps(size, colors int) (int, error) {
	var steps sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(steps) FROM results WHERE size = ? AND colors = ?",
		size, colors,
	).Scan(&steps)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best steps: %w", err)
	}

	if !steps.Valid {
		return 0, nil
	}

	return int(steps.Int64), nil
}

// SaveGame stores state in the save slot, replacing any previous save.
func (s *Store) SaveGame(preset string, state flood.State) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("storage: cannot encode game: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO saved_game (id, preset, state, saved_at)
		 VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
		   preset = excluded.preset,
		   state = excluded.state,
		   saved_at = excluded.saved_at`,
		preset, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// LoadGame returns the saved game. The decoded state is validated; a
// damaged save yields an error wrapping flood.ErrCorruptState.
func (s *Store) LoadGame() (*SavedGame, error) {
	var (
		saved   SavedGame
		data    string
		savedAt any
	)
	err := s.db.QueryRow(
		"SELECT preset, state, saved_at FROM saved_game WHERE id = 1",
	).Scan(&saved.Preset, &data, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSavedGame
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load game: %w", err)
	}

	if err := yaml.Unmarshal([]byte(data), &saved.State); err != nil {
		return nil, fmt.Errorf("storage: cannot decode game: %v: %w", err, flood.ErrCorruptState)
	}
	if err := saved.State.Validate(); err != nil {
		return nil, fmt.Errorf("storage: saved game: %w", err)
	}
	saved.SavedAt = parseTime(savedAt)

	return &saved, nil
}

// DeleteSavedGame empties the save slot. Deleting an empty slot is not an error.
func (s *Store) DeleteSavedGame() error {
	if _, err := s.db.Exec("DELETE FROM saved_game WHERE id = 1"); err != nil {
		return fmt.Errorf("storage: cannot delete saved game: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
