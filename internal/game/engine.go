// internal/game/engine.go
//
// Core game engine for a single hilo session.
// Responsibilities:
//   - Create new sessions with a uniform target draw from the bounds.
//   - Validate and classify guesses (too low / too high / correct).
//   - Track state transitions: playing → won.
//
// Notes:
//   - Randomness is injected as a *rand.Rand so tests stay deterministic.
//   - Input validation lives in validator.go; the engine never counts an
//     attempt for input that failed validation.
//   - A submission after the round ended is reported as "ended" and is a
//     pure no-op on session state.
package game

import "math/rand"

// NewSession draws a target uniformly from b and starts a fresh round.
// Reversed bounds are normalized before the draw.
func NewSession(b Bounds, r *rand.Rand) *Session {
	b = b.Normalize()
	return &Session{
		Target: randomInRange(r, b.Min, b.Max),
		Bounds: b,
	}
}

// Submit validates and classifies a raw guess, mutating the session.
//
// Rules:
//   - Finished round → "ended", nothing changes.
//   - Empty, non-numeric, or out-of-range input → "invalid" with a
//     reason; attempts are not counted.
//   - Otherwise the attempt is counted and the guess is classified
//     against the target. A correct guess latches Over.
func (s *Session) Submit(raw string) Result {
	if s.Over {
		return Result{Outcome: OutcomeEnded}
	}

	g, reason := Parse(raw)
	if reason == ReasonNone && !InRange(g, s.Bounds) {
		reason = ReasonOutOfRange
	}
	if reason != ReasonNone {
		return Result{Outcome: OutcomeInvalid, Reason: reason}
	}

	s.Attempts++
	switch {
	case g < s.Target:
		return Result{Outcome: OutcomeTooLow, Guess: g}
	case g > s.Target:
		return Result{Outcome: OutcomeTooHigh, Guess: g}
	}
	s.Over = true
	return Result{Outcome: OutcomeCorrect, Guess: g}
}

// randomInRange draws uniformly from [min,max] inclusive.
// Reversed bounds are swapped before the draw.
func randomInRange(r *rand.Rand, min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + r.Intn(max-min+1)
}
