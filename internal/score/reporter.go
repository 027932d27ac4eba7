// internal/score/reporter.go
//
// Best-effort result reporting to the remote sink. One POST per
// finished game, fire-and-forget: dispatch returns immediately, and a
// network error or non-2xx status is logged and never retried. The
// sink's response body is ignored.

package score

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Reporter posts finished-game results to the results service.
// A nil Reporter is valid and reports nothing.
type Reporter struct {
	base   string
	client *http.Client

	mu    sync.Mutex
	token string
}

type resultPayload struct {
	Attempts  int    `json:"attempts"`
	Won       bool   `json:"won"`
	Timestamp string `json:"timestamp"`
}

// NewReporter targets the service at base (e.g. "http://localhost:8080").
// A nil client gets a default with a short timeout.
func NewReporter(base string, client *http.Client) *Reporter {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &Reporter{base: base, client: client}
}

// SetToken attaches a device token to subsequent reports.
func (r *Reporter) SetToken(token string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.token = token
	r.mu.Unlock()
}

// RegisterDevice asks the sink for an anonymous device token and
// attaches it to future reports. Best effort: failure is logged and
// reports simply stay unattributed.
func (r *Reporter) RegisterDevice() {
	if r == nil || r.base == "" {
		return
	}
	resp, err := r.client.Post(r.base+"/api/device/register", "application/json", nil)
	if err != nil {
		log.Warn().Err(err).Msg("register device")
		return
	}
	defer resp.Body.Close()
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Token == "" {
		log.Warn().Err(err).Msg("decode device token")
		return
	}
	r.SetToken(body.Token)
}

// Report dispatches the POST on its own goroutine and returns
// immediately. Nothing downstream waits on it.
func (r *Reporter) Report(attempts int, won bool, at time.Time) {
	if r == nil || r.base == "" {
		return
	}
	p := resultPayload{
		Attempts:  attempts,
		Won:       won,
		Timestamp: at.UTC().Format(time.RFC3339),
	}
	go r.send(p)
}

func (r *Reporter) send(p resultPayload) {
	body, err := json.Marshal(p)
	if err != nil {
		log.Warn().Err(err).Msg("encode result report")
		return
	}
	req, err := http.NewRequest(http.MethodPost, r.base+"/api/game/result", bytes.NewReader(body))
	if err != nil {
		log.Warn().Err(err).Msg("build result report")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	r.mu.Lock()
	token := r.token
	r.mu.Unlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("report result")
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn().Int("status", resp.StatusCode).Msg("result report rejected")
	}
}
