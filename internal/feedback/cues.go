// internal/feedback/cues.go
//
// Audio cues as data. A cue sequence is a list of delayed tone
// requests fed to the scheduler; nothing here touches the device.

package feedback

import (
	"time"

	"hilo/internal/feedback/synth"
)

// Cue is one tone within a sequence, offset from the sequence start.
type Cue struct {
	Delay time.Duration
	Tone  synth.Tone
}

// WrongGuessCue is the too-low/too-high signal: a two-tone descending
// square-wave buzz, 200Hz then 150Hz, 100ms apart, short and quiet.
func WrongGuessCue() []Cue {
	return []Cue{
		{Delay: 0, Tone: synth.Tone{Freq: 200, Wave: synth.WaveSquare, Duration: 120 * time.Millisecond, Volume: 0.12}},
		{Delay: 100 * time.Millisecond, Tone: synth.Tone{Freq: 150, Wave: synth.WaveSquare, Duration: 120 * time.Millisecond, Volume: 0.12}},
	}
}

// WinCue is the victory signal: a four-note rising sine arpeggio
// spanning ~450ms (C5 E5 G5 C6), then a sustained C-major chord.
func WinCue() []Cue {
	const vol = 0.2
	arp := []float64{523.25, 659.25, 783.99, 1046.50}
	cues := make([]Cue, 0, len(arp)+3)
	offsets := []time.Duration{0, 110 * time.Millisecond, 225 * time.Millisecond, 340 * time.Millisecond}
	for i, f := range arp {
		cues = append(cues, Cue{
			Delay: offsets[i],
			Tone:  synth.Tone{Freq: f, Wave: synth.WaveSine, Duration: 140 * time.Millisecond, Volume: vol},
		})
	}
	for _, f := range []float64{523.25, 659.25, 783.99} {
		cues = append(cues, Cue{
			Delay: 500 * time.Millisecond,
			Tone:  synth.Tone{Freq: f, Wave: synth.WaveSine, Duration: 900 * time.Millisecond, Volume: vol * 0.8},
		})
	}
	return cues
}
