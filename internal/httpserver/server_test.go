package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	st, err := OpenStore(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return New(st, "test_secret")
}

func do(s *Server, method, path, body string, hdr map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestPostResultAndStats(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodPost, "/api/game/result",
		`{"attempts":3,"won":true,"timestamp":"2025-06-01T12:30:00Z"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = do(s, http.MethodGet, "/api/game/stats", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats status = %d", rec.Code)
	}
	var resp struct {
		Success bool  `json:"success"`
		Stats   Stats `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Stats.TotalGames != 1 {
		t.Fatalf("stats = %+v", resp)
	}
	if resp.Stats.BestScore == nil || *resp.Stats.BestScore != 3 {
		t.Fatalf("best = %v, want 3", resp.Stats.BestScore)
	}
	if resp.Stats.AvgAttempts == nil || *resp.Stats.AvgAttempts != 3 {
		t.Fatalf("avg = %v, want 3", resp.Stats.AvgAttempts)
	}
}

func TestStatsCountOnlyWonGames(t *testing.T) {
	s := newTestServer(t)
	do(s, http.MethodPost, "/api/game/result", `{"attempts":4,"won":true}`, nil)
	do(s, http.MethodPost, "/api/game/result", `{"attempts":9,"won":false}`, nil)

	rec := do(s, http.MethodGet, "/api/game/stats", "", nil)
	var resp struct {
		Stats Stats `json:"stats"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Stats.TotalGames != 1 {
		t.Fatalf("total = %d, want 1 (losses excluded)", resp.Stats.TotalGames)
	}
}

func TestStatsEmptyDatabase(t *testing.T) {
	s := newTestServer(t)
	rec := do(s, http.MethodGet, "/api/game/stats", "", nil)
	var resp struct {
		Success bool  `json:"success"`
		Stats   Stats `json:"stats"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if !resp.Success {
		t.Fatal("empty stats should still succeed")
	}
	if resp.Stats.TotalGames != 0 || resp.Stats.AvgAttempts != nil || resp.Stats.BestScore != nil {
		t.Fatalf("stats = %+v, want zero/nil", resp.Stats)
	}
}

func TestPostResultValidation(t *testing.T) {
	s := newTestServer(t)
	cases := []struct {
		name string
		body string
	}{
		{"missing attempts", `{"won":true}`},
		{"attempts below range", `{"attempts":0,"won":true}`},
		{"attempts above range", `{"attempts":2000,"won":true}`},
		{"missing won", `{"attempts":3}`},
		{"bad json", `{attempts}`},
		{"bad timestamp", `{"attempts":3,"won":true,"timestamp":"yesterday"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(s, http.MethodPost, "/api/game/result", tc.body, nil)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var resp struct {
				Success bool `json:"success"`
			}
			_ = json.Unmarshal(rec.Body.Bytes(), &resp)
			if resp.Success {
				t.Fatal("error response claims success")
			}
		})
	}
}

func TestPostResultRequiresJSONContentType(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/game/result",
		strings.NewReader(`{"attempts":3,"won":true}`))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDeviceRegisterAndAttribution(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodPost, "/api/device/register", "", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d", rec.Code)
	}
	var reg struct {
		Token    string `json:"token"`
		DeviceID string `json:"deviceId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &reg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if reg.Token == "" || reg.DeviceID == "" {
		t.Fatalf("register body = %s", rec.Body.String())
	}

	rec = do(s, http.MethodPost, "/api/game/result", `{"attempts":2,"won":true}`,
		map[string]string{"Authorization": "Bearer " + reg.Token})
	if rec.Code != http.StatusCreated {
		t.Fatalf("attributed result status = %d", rec.Code)
	}

	var dev string
	if err := s.store.db.QueryRow(`SELECT device_id FROM results`).Scan(&dev); err != nil {
		t.Fatalf("query device_id: %v", err)
	}
	if dev != reg.DeviceID {
		t.Fatalf("device_id = %q, want %q", dev, reg.DeviceID)
	}
}

func TestInvalidTokenIsIgnoredNotRejected(t *testing.T) {
	s := newTestServer(t)
	rec := do(s, http.MethodPost, "/api/game/result", `{"attempts":2,"won":true}`,
		map[string]string{"Authorization": "Bearer garbage"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (token is optional)", rec.Code)
	}
}

func TestNotFoundIsJSON(t *testing.T) {
	s := newTestServer(t)
	rec := do(s, http.MethodGet, "/nope", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("404 body not JSON: %s", rec.Body.String())
	}
	if resp.Success || resp.Error == "" {
		t.Fatalf("404 body = %+v", resp)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := do(s, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
