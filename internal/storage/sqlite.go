// Package storage provides SQLite-based history of finished colony sessions.
// Only aggregate counters are recorded; building layouts are never stored.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// SessionSummary is the record of one finished session.
type SessionSummary struct {
	ID          int64
	Preset      string
	Seed        int64
	Placed      int
	Rejected    int
	OutOfBounds int
	Duration    time.Duration
	CreatedAt   time.Time
}

// PresetStats contains aggregated statistics for a map preset.
type PresetStats struct {
	Preset      string
	Sessions    int
	Placed      int
	Rejected    int
	OutOfBounds int
	MostPlaced  int
	TotalTime   time.Duration
	LastPlayed  time.Time
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			preset TEXT NOT NULL,
			seed INTEGER NOT NULL,
			placed INTEGER NOT NULL DEFAULT 0,
			rejected INTEGER NOT NULL DEFAULT 0,
			out_of_bounds INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_preset ON sessions(preset);
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

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sum SessionSummary) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (preset, seed, placed, rejected, out_of_bounds, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sum.Preset, sum.Seed, sum.Placed, sum.Rejected, sum.OutOfBounds, sum.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
// An empty preset matches every preset.
func (s *Store) RecentSessions(preset string, limit int) ([]SessionSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, preset, seed, placed, rejected, out_of_bounds, duration_ms, created_at
		 FROM sessions
		 WHERE ? = '' OR preset = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		preset, preset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionSummary
	for rows.Next() {
		var e SessionSummary
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Preset, &e.Seed, &e.Placed, &e.Rejected,
			&e.OutOfBounds, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats retrieves aggregated statistics for one preset.
func (s *Store) Stats(preset string) (*PresetStats, error) {
	stats := &PresetStats{Preset: preset}
	var totalMS int64
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(placed), 0), COALESCE(SUM(rejected), 0),
		        COALESCE(SUM(out_of_bounds), 0), COALESCE(MAX(placed), 0),
		        COALESCE(SUM(duration_ms), 0), MAX(created_at)
		 FROM sessions WHERE preset = ?`,
		preset,
	).Scan(&stats.Sessions, &stats.Placed, &stats.Rejected, &stats.OutOfBounds,
		&stats.MostPlaced, &totalMS, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get preset stats: %w", err)
	}

	stats.TotalTime = time.Duration(totalMS) * time.Millisecond
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// AllStats retrieves statistics for every preset that has been played.
func (s *Store) AllStats() (map[string]*PresetStats, error) {
	rows, err := s.db.Query(
		`SELECT preset, COUNT(*), SUM(placed), SUM(rejected), SUM(out_of_bounds),
		        MAX(placed), SUM(duration_ms), MAX(created_at)
		 FROM sessions
		 GROUP BY preset`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all preset stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PresetStats)
	for rows.Next() {
		var ps PresetStats
		var totalMS int64
		var lastPlayed any
		if err := rows.Scan(&ps.Preset, &ps.Sessions, &ps.Placed, &ps.Rejected,
			&ps.OutOfBounds, &ps.MostPlaced, &totalMS, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.TotalTime = time.Duration(totalMS) * time.Millisecond
		ps.LastPlayed = parseTime(lastPlayed)
		stats[ps.Preset] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// SessionByID retrieves one session. Returns nil if it does not exist.
func (s *Store) SessionByID(id int64) (*SessionSummary, error) {
	var e SessionSummary
	var durationMS int64
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, preset, seed, placed, rejected, out_of_bounds, duration_ms, created_at
		 FROM sessions WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.Preset, &e.Seed, &e.Placed, &e.Rejected, &e.OutOfBounds, &durationMS, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}

	e.Duration = time.Duration(durationMS) * time.Millisecond
	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// ClearSessions deletes the history of one preset, or all history when
// preset is empty.
func (s *Store) ClearSessions(preset string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE ? = '' OR preset = ?", preset, preset)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
