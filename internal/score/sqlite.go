// internal/score/sqlite.go
//
// Durable best-score store on SQLite.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - A single kv table holding the best score under a namespaced key.
//   - Tolerating a missing or corrupt value by degrading to "no score".
//
// Writes are best effort: a persistence failure is logged and the
// in-memory best is kept, so a flaky disk never rolls back gameplay
// state.

package score

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const bestScoreKey = "hilo.best_score"

// SQLite is a durable Store backed by a single-file database.
type SQLite struct {
	db *sql.DB

	mu   sync.Mutex
	best int
	set  bool
}

// OpenSQLite opens (and creates if missing) the score database.
func OpenSQLite(path string) (*SQLite, error) {
	// Ensure directory exists for ./data/scores.db, etc.
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap kv table: %w", err)
	}

	s := &SQLite{db: db}
	s.loadInitial()
	return s, nil
}

// loadInitial reads the persisted best score into memory.
// A missing row or an unparseable value both mean "no score".
func (s *SQLite) loadInitial() {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key=?`, bestScoreKey).Scan(&raw)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Warn().Err(err).Msg("read best score")
		}
		return
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		log.Warn().Str("value", raw).Msg("stored best score corrupt, ignoring")
		return
	}
	s.best, s.set = n, true
}

func (s *SQLite) Best() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best, s.set
}

func (s *SQLite) RecordIfBetter(attempts int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.set && attempts >= s.best {
		return false
	}
	s.best, s.set = attempts, true

	if _, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		bestScoreKey, strconv.Itoa(attempts),
	); err != nil {
		log.Warn().Err(err).Int("attempts", attempts).Msg("persist best score")
	}
	return true
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error { return s.db.Close() }
