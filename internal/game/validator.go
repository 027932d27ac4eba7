// internal/game/validator.go
//
// Input validation for raw guess text.
//
// Parse is strict: after trimming, the input must be digits only.
// Decimals ("3.7"), signs ("+3", "-2"), and anything with letters are
// rejected as not_a_number. Leading zeros are fine ("007" parses as 7).
// This matches what the live sanitizer lets through, so the two layers
// agree on the accepted language.

package game

import (
	"strconv"
	"strings"
)

// Parse converts raw guess text into an integer.
// It never panics; failures come back as an InvalidReason.
func Parse(raw string) (int, InvalidReason) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ReasonEmpty
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ReasonNotANumber
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Digits only but too large for int.
		return 0, ReasonNotANumber
	}
	return n, ReasonNone
}

// InRange reports whether v falls inside b, inclusive on both ends.
func InRange(v int, b Bounds) bool {
	return v >= b.Min && v <= b.Max
}

// Sanitize strips every non-digit rune from an input buffer.
// The client runs it on each keystroke, so Parse only ever sees digit
// strings or the empty string.
func Sanitize(buf string) string {
	var sb strings.Builder
	for _, r := range buf {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
