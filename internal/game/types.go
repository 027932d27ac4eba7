// internal/game/types.go
//
// Core type definitions for the hilo game engine.
// Defines:
//   - Outcome: classification of a single guess relative to the target.
//   - InvalidReason: why an input was rejected before reaching the target.
//   - Bounds: the inclusive guessing range.
//   - Session: state for a single in-progress or finished round.

package game

// Outcome represents the evaluation result for a single submitted guess.
// Possible values:
//   - "too_low":  the guess is below the target.
//   - "too_high": the guess is above the target.
//   - "correct":  the guess equals the target; the round is over.
//   - "invalid":  the input never reached classification (see InvalidReason).
//   - "ended":    the round was already over; nothing was mutated.
type Outcome string

const (
	OutcomeTooLow  Outcome = "too_low"
	OutcomeTooHigh Outcome = "too_high"
	OutcomeCorrect Outcome = "correct"
	OutcomeInvalid Outcome = "invalid"
	OutcomeEnded   Outcome = "ended"
)

// InvalidReason narrows an "invalid" outcome.
type InvalidReason string

const (
	ReasonNone       InvalidReason = ""
	ReasonEmpty      InvalidReason = "empty"
	ReasonNotANumber InvalidReason = "not_a_number"
	ReasonOutOfRange InvalidReason = "out_of_range"
)

// Bounds is the inclusive range the target is drawn from and guesses are
// checked against.
type Bounds struct {
	Min int
	Max int
}

// DefaultBounds is the standard 1..100 game.
var DefaultBounds = Bounds{Min: 1, Max: 100}

// Normalize returns b with Min and Max swapped if they arrive reversed.
func (b Bounds) Normalize() Bounds {
	if b.Min > b.Max {
		b.Min, b.Max = b.Max, b.Min
	}
	return b
}

// Session holds the state of a single round.
type Session struct {
	Target   int    // The number to find (fixed for the session lifetime).
	Attempts int    // Counted guesses; only valid guesses increment it.
	Over     bool   // Latched true when the target is guessed.
	Bounds   Bounds // Inclusive guessing range for this session.
}

// Result is the per-submission outcome consumed by the feedback layer.
// It is never stored.
type Result struct {
	Outcome Outcome
	Guess   int           // The parsed guess; zero when Outcome is invalid/ended.
	Reason  InvalidReason // Set only when Outcome is invalid.
}
