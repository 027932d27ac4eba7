// internal/feedback/synth/player.go
//
// Audio output. The device context is initialized lazily on the first
// Play call — which only ever happens after a player action, satisfying
// the platform's gesture requirement — and reused afterwards. If the
// device cannot be opened, audio is disabled for the rest of the
// process: tones become silent no-ops and gameplay is never blocked.

package synth

import (
	"bytes"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/rs/zerolog/log"
)

// Player owns the audio device.
type Player struct {
	mu       sync.Mutex
	ctx      *oto.Context
	ready    chan struct{}
	disabled bool
}

// NewPlayer returns a Player with no device open yet.
func NewPlayer() *Player { return &Player{} }

// Play renders t and plays it on its own goroutine.
// Returns immediately; errors never reach the caller.
func (p *Player) Play(t Tone) {
	p.mu.Lock()
	if p.disabled {
		p.mu.Unlock()
		return
	}
	if p.ctx == nil {
		ctx, ready, err := oto.NewContext(SampleRate, 1, 2)
		if err != nil {
			p.disabled = true
			p.mu.Unlock()
			log.Warn().Err(err).Msg("audio device unavailable, tones disabled")
			return
		}
		p.ctx, p.ready = ctx, ready
	}
	ctx, ready := p.ctx, p.ready
	p.mu.Unlock()

	pcm := Render(t)
	go func() {
		<-ready
		pl := ctx.NewPlayer(bytes.NewReader(pcm))
		pl.Play()
		for pl.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		_ = pl.Close()
	}()
}
