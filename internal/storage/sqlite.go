// Package storage keeps a SQLite log of finished 2048 sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The log records outcomes only. Nothing here is ever turned back into a
// playable board.
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

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// SessionRecord is one finished session.
type SessionRecord struct {
	ID        int64
	SessionID string // UUID assigned by the session
	Outcome   string // "won", "lost" or "quit"
	WinValue  int
	Moves     int
	MaxTile   int
	Board     string // Final board in board.Board.String form
	Duration  int    // Duration in seconds
	CreatedAt time.Time
}

// Stats aggregates the whole history.
type Stats struct {
	Sessions   int
	Won        int
	Lost       int
	Quit       int
	BestTile   int
	TotalMoves int64
	LastPlayed time.Time
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
			session_id TEXT NOT NULL UNIQUE,
			outcome TEXT NOT NULL,
			win_value INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			max_tile INTEGER NOT NULL DEFAULT 0,
			board TEXT NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_outcome ON sessions(outcome);
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
func (s *Store) SaveSession(rec SessionRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO sessions
		 (session_id, outcome, win_value, moves, max_tile, board, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID,
		rec.Outcome,
		rec.WinValue,
		rec.Moves,
		rec.MaxTile,
		rec.Board,
		rec.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SessionByID retrieves a session by its UUID. Returns nil if not found.
func (s *Store) SessionByID(sessionID string) (*SessionRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, session_id, outcome, win_value, moves, max_tile, board, duration_secs, created_at
		 FROM sessions
		 WHERE session_id = ?`,
		sessionID,
	)

	rec, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	return rec, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, outcome, win_value, moves, max_tile, board, duration_secs, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats retrieves aggregated statistics over every recorded session.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'won'), 0),
		        COALESCE(SUM(outcome = 'lost'), 0),
		        COALESCE(SUM(outcome = 'quit'), 0),
		        COALESCE(MAX(max_tile), 0),
		        COALESCE(SUM(moves), 0),
		        MAX(created_at)
		 FROM sessions`,
	).Scan(&stats.Sessions, &stats.Won, &stats.Lost, &stats.Quit, &stats.BestTile, &stats.TotalMoves, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearHistory deletes every recorded session.
func (s *Store) ClearHistory() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*SessionRecord, error) {
	var rec SessionRecord
	var createdAt any
	if err := row.Scan(
		&rec.ID,
		&rec.SessionID,
		&rec.Outcome,
		&rec.WinValue,
		&rec.Moves,
		&rec.MaxTile,
		&rec.Board,
		&rec.Duration,
		&createdAt,
	); err != nil {
		return nil, err
	}
	rec.CreatedAt = parseTime(createdAt)
	return &rec, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
