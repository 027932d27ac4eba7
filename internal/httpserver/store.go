// internal/httpserver/store.go
//
// Results database for the service.
// Responsibilities:
//   - Opening SQLite with safe defaults (WAL, busy timeout).
//   - Bootstrapping the results schema.
//   - Inserting finished-game rows and computing aggregate stats.

package httpserver

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const gameName = "hilo"

// Store wraps the results database.
type Store struct {
	db *sql.DB
}

// Stats is the aggregate view over won games. Avg and Best are nil when
// no won games exist yet.
type Stats struct {
	TotalGames  int      `json:"total_games"`
	AvgAttempts *float64 `json:"avg_attempts"`
	BestScore   *int     `json:"best_score"`
}

// OpenStore opens (and creates if missing) the results database.
func OpenStore(dsn string) (*Store, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS results (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		game      TEXT NOT NULL,
		device_id TEXT,
		attempts  INTEGER NOT NULL,
		won       INTEGER NOT NULL,
		played_at TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap results table: %w", err)
	}
	return &Store{db: db}, nil
}

// InsertResult records one finished game. deviceID may be empty.
func (s *Store) InsertResult(ctx context.Context, deviceID string, attempts int, won bool, playedAt time.Time) error {
	var dev any
	if deviceID != "" {
		dev = deviceID
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results (game, device_id, attempts, won, played_at)
		VALUES (?, ?, ?, ?, ?)`,
		gameName, dev, attempts, boolToInt(won), playedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Stats aggregates won games: total count, average attempts, best
// (minimum) attempts. An empty table yields zero total and nil values.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), AVG(attempts), MIN(attempts)
		FROM results
		WHERE game=? AND won=1`, gameName)

	var st Stats
	var avg sql.NullFloat64
	var best sql.NullInt64
	if err := row.Scan(&st.TotalGames, &avg, &best); err != nil {
		return Stats{}, err
	}
	if avg.Valid {
		st.AvgAttempts = &avg.Float64
	}
	if best.Valid {
		b := int(best.Int64)
		st.BestScore = &b
	}
	return st, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
