// Package storage provides SQLite-based persistence for play session history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
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

// Session is one finished play of a level.
type Session struct {
	ID          int64
	LevelID     string
	User        string
	Moves       int
	Pushes      int
	LocksOpened int
	Ticks       uint64
	CreatedAt   time.Time
}

// LevelTotals aggregates all sessions recorded for a level.
type LevelTotals struct {
	LevelID     string
	Sessions    int
	Moves       int
	Pushes      int
	LocksOpened int
	Ticks       uint64
	FewestMoves int
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

	// Create parent directories
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
			level_id TEXT NOT NULL,
			user TEXT NOT NULL DEFAULT '',
			moves INTEGER NOT NULL DEFAULT 0,
			pushes INTEGER NOT NULL DEFAULT 0,
			locks_opened INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_level_id ON sessions(level_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_recent ON sessions(created_at DESC);
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
func (s *Store) SaveSession(sess Session) (int64, error) {
	if sess.LevelID == "" {
		return 0, fmt.Errorf("storage: session has no level id")
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions (level_id, user, moves, pushes, locks_opened, ticks)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sess.LevelID, sess.User, sess.Moves, sess.Pushes, sess.LocksOpened, int64(sess.Ticks),
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

// RecentSessions retrieves the newest sessions, optionally restricted to one level.
// An empty levelID returns sessions for every level.
func (s *Store) RecentSessions(levelID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, level_id, user, moves, pushes, locks_opened, ticks, created_at
		 FROM sessions`
	args := []any{}
	if levelID != "" {
		query += " WHERE level_id = ?"
		args = append(args, levelID)
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var e Session
		var ticks int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.LevelID, &e.User, &e.Moves, &e.Pushes, &e.LocksOpened, &ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Ticks = uint64(ticks)
		e.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// Totals aggregates sessions per level, ordered by level ID.
func (s *Store) Totals() ([]LevelTotals, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), SUM(moves), SUM(pushes), SUM(locks_opened), SUM(ticks), MIN(moves)
		 FROM sessions
		 GROUP BY level_id
		 ORDER BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query totals: %w", err)
	}
	defer rows.Close()

	var totals []LevelTotals
	for rows.Next() {
		var t LevelTotals
		var ticks int64
		if err := rows.Scan(&t.LevelID, &t.Sessions, &t.Moves, &t.Pushes, &t.LocksOpened, &ticks, &t.FewestMoves); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		t.Ticks = uint64(ticks)
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return totals, nil
}

// LevelsPlayed returns the distinct level IDs that have recorded sessions.
func (s *Store) LevelsPlayed() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT level_id FROM sessions ORDER BY level_id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ClearSessions deletes all sessions for the given level.
// Returns the number of sessions removed.
func (s *Store) ClearSessions(levelID string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM sessions WHERE level_id = ?", levelID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared sessions: %w", err)
	}
	return n, nil
}

// parseTime handles both time.Time and string datetime values from the driver.
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
