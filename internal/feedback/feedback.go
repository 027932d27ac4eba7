// internal/feedback/feedback.go
//
// FeedbackChannel: maps engine outcomes to the line shown to the player
// and to synthesized audio cues. Text and audio are independent; audio
// availability never affects the message.

package feedback

import (
	"fmt"

	"hilo/internal/feedback/synth"
	"hilo/internal/game"
	"hilo/internal/sched"
)

// Channel reacts to guess results. The play function is an indirection
// over the synth player so tests can capture scheduled tones.
type Channel struct {
	clock sched.Clock
	play  func(synth.Tone)
}

// New wires a Channel to a clock and an audio player.
func New(clock sched.Clock, p *synth.Player) *Channel {
	return &Channel{clock: clock, play: p.Play}
}

// React emits the audio cue for res, if any. Invalid input is silent.
func (c *Channel) React(res game.Result) {
	switch res.Outcome {
	case game.OutcomeTooLow, game.OutcomeTooHigh:
		c.emit(WrongGuessCue())
	case game.OutcomeCorrect:
		c.emit(WinCue())
	}
}

func (c *Channel) emit(cues []Cue) {
	entries := make([]sched.Entry, 0, len(cues))
	for _, cue := range cues {
		cue := cue
		entries = append(entries, sched.Entry{
			Delay:  cue.Delay,
			Action: func() { c.play(cue.Tone) },
		})
	}
	sched.Run(c.clock, entries)
}

// Message returns the user-facing line for res.
// attempts is the session's counted attempts (used by the win message),
// b the session bounds (echoed in the out-of-range message).
func Message(res game.Result, attempts int, b game.Bounds) string {
	switch res.Outcome {
	case game.OutcomeInvalid:
		switch res.Reason {
		case game.ReasonEmpty:
			return "Enter a number to make a guess."
		case game.ReasonOutOfRange:
			return fmt.Sprintf("Out of range: guess between %d and %d.", b.Min, b.Max)
		default:
			return "That is not a whole number. Digits only."
		}
	case game.OutcomeTooLow:
		return "Too low. Go higher!"
	case game.OutcomeTooHigh:
		return "Too high. Go lower!"
	case game.OutcomeCorrect:
		if attempts == 1 {
			return "Correct! You got it in 1 attempt."
		}
		return fmt.Sprintf("Correct! You got it in %d attempts.", attempts)
	case game.OutcomeEnded:
		return ""
	}
	return ""
}
