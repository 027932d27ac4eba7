// internal/httpserver/server.go
//
// HTTP wiring for the hilo results service.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - POST /api/game/result: store one finished game (optional device token).
//   - GET /api/game/stats: aggregate stats over won games.
//   - POST /api/device/register: issue an anonymous device token.
//
// Responses follow the {"success": bool, ...} shape the game client
// expects; failures carry a generic message while the detail goes to
// the log.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// Attempts accepted by the result endpoint. Guesses beyond this are a
// client bug, not a game.
const (
	minAttempts = 1
	maxAttempts = 1000
)

// Server bundles router, results store, and the device-token secret.
type Server struct {
	r      *chi.Mux
	store  *Store
	secret []byte
}

// New constructs a Server, installs middleware, and registers routes.
func New(st *Store, secret string) *Server {
	s := &Server{r: chi.NewRouter(), store: st, secret: []byte(secret)}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"hilo-results","endpoints":["/health","POST /api/game/result","GET /api/game/stats","POST /api/device/register"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.With(s.withOptionalDevice()).Post("/api/game/result", s.handleResult)
	s.r.Get("/api/game/stats", s.handleStats)
	s.r.Post("/api/device/register", s.handleRegister)

	// JSON 404/405 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Resource not found")
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ handlers -----------------------------------

// resultReq is the payload for POST /api/game/result. Pointer fields
// distinguish absent from zero-valued.
type resultReq struct {
	Attempts  *int   `json:"attempts"`
	Won       *bool  `json:"won"`
	Timestamp string `json:"timestamp"`
}

// handleResult validates and stores one finished game.
func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		writeError(w, http.StatusBadRequest, "Content-Type must be application/json")
		return
	}
	var req resultReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Attempts == nil {
		writeError(w, http.StatusBadRequest, "Invalid attempts value")
		return
	}
	if *req.Attempts < minAttempts || *req.Attempts > maxAttempts {
		writeError(w, http.StatusBadRequest, "Attempts out of valid range")
		return
	}
	if req.Won == nil {
		writeError(w, http.StatusBadRequest, "Invalid won value")
		return
	}

	playedAt := time.Now().UTC()
	if req.Timestamp != "" {
		t, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid timestamp value")
			return
		}
		playedAt = t
	}

	deviceID, _ := r.Context().Value(ctxDeviceKey{}).(string)
	if err := s.store.InsertResult(r.Context(), deviceID, *req.Attempts, *req.Won, playedAt); err != nil {
		log.Error().Err(err).Msg("insert game result")
		writeError(w, http.StatusInternalServerError, "Failed to save result")
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"message": "Game result saved",
	})
}

// handleStats serves the aggregate stats.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.store.Stats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("query game stats")
		// Degrade to an empty stats block rather than failing the read.
		st = Stats{}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"stats":   st,
	})
}

// writeError emits the standard JSON error envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   msg,
	})
}
