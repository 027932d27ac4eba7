// internal/httpserver/device.go
//
// Anonymous device identity. There are no accounts: a client may ask
// for a signed device token once and attach it to result reports so
// stats can be sliced per device. The middleware is strictly optional;
// a missing or invalid token never rejects a request.

package httpserver

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

// ctxDeviceKey is the context key type for the device id.
type ctxDeviceKey struct{}

// handleRegister issues an HS256 token carrying a fresh device id.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	id := genID()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"device": id,
		"iat":    time.Now().Unix(),
	})
	ss, err := t.SignedString(s.secret)
	if err != nil {
		log.Error().Err(err).Msg("sign device token")
		writeError(w, http.StatusInternalServerError, "Failed to register device")
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success":  true,
		"deviceId": id,
		"token":    ss,
	})
}

// withOptionalDevice decorates requests with the device id when a valid
// bearer token is present. It never 401s.
func (s *Server) withOptionalDevice() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tok := bearerToken(r); tok != "" {
				claims := jwt.MapClaims{}
				if t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
					return s.secret, nil
				}); err == nil && t.Valid {
					if id, _ := claims["device"].(string); id != "" {
						r = r.WithContext(context.WithValue(r.Context(), ctxDeviceKey{}, id))
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the token from an Authorization header.
func bearerToken(r *http.Request) string {
	a := r.Header.Get("Authorization")
	if strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}
