// internal/feedback/synth/tone.go
//
// Tone synthesis: renders a frequency/waveform/duration/volume request
// into 16-bit little-endian mono PCM. Every tone gets a ~10ms linear
// fade-in and a linear fade-out across its duration so playback is
// click-free.

package synth

import (
	"encoding/binary"
	"math"
	"time"
)

// SampleRate for all rendered tones, Hz.
const SampleRate = 44100

// Waveform selects the oscillator shape.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
)

// Tone is a single synthesized note request.
type Tone struct {
	Freq     float64 // Hz
	Wave     Waveform
	Duration time.Duration
	Volume   float64 // 0..1
}

// Render produces the PCM bytes for t.
func Render(t Tone) []byte {
	n := int(float64(SampleRate) * t.Duration.Seconds())
	if n <= 0 {
		return nil
	}
	out := make([]byte, 2*n)
	fadeIn := SampleRate / 100 // ~10ms
	if fadeIn > n {
		fadeIn = n
	}
	for i := 0; i < n; i++ {
		phase := 2 * math.Pi * t.Freq * float64(i) / SampleRate
		var s float64
		switch t.Wave {
		case WaveSquare:
			if math.Sin(phase) >= 0 {
				s = 1
			} else {
				s = -1
			}
		default:
			s = math.Sin(phase)
		}

		env := 1.0
		if i < fadeIn {
			env = float64(i) / float64(fadeIn)
		}
		env *= 1 - float64(i)/float64(n) // fade out over the whole tone

		v := s * env * t.Volume
		binary.LittleEndian.PutUint16(out[2*i:], uint16(int16(v*32767)))
	}
	return out
}
