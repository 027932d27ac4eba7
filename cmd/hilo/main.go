package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hilo/internal/score"
)

func main() {
	_ = godotenv.Load()
	setupLogging()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	st := openScoreStore()
	var rep *score.Reporter
	if base := os.Getenv("HILO_SERVER_URL"); base != "" {
		rep = score.NewReporter(base, nil)
		go rep.RegisterDevice()
	}

	p := tea.NewProgram(newModel(rng, st, rep), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "hilo: cannot start the game UI:", err)
		os.Exit(1)
	}
}

// setupLogging points zerolog at a file under the user config dir.
// The TUI owns the terminal, so stderr is not an option.
func setupLogging() {
	var out io.Writer = io.Discard
	if dir, err := configDir(); err == nil {
		if f, err := os.OpenFile(filepath.Join(dir, "hilo.log"),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			out = f
		}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}

// openScoreStore opens the durable store, degrading to the in-memory
// one when storage is unavailable (read-only disk, sandbox, etc).
func openScoreStore() score.Store {
	dir, err := configDir()
	if err == nil {
		var s *score.SQLite
		if s, err = score.OpenSQLite(filepath.Join(dir, "scores.db")); err == nil {
			return s
		}
	}
	log.Warn().Err(err).Msg("durable score store unavailable, best score will not persist")
	return score.NewMemory()
}

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "hilo")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
