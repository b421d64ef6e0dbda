// Package duration parses the short moderation duration grammar shared by
// timeouts, temporary channels and temporary bans: an integer magnitude with
// an optional single unit suffix (s, m, h, d, w). A missing suffix means
// minutes.
package duration

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalid    = errors.New("invalid duration")
	ErrOutOfRange = errors.New("duration out of range")
)

var units = map[byte]time.Duration{
	's': time.Second,
	'm': time.Minute,
	'h': time.Hour,
	'd': 24 * time.Hour,
	'w': 7 * 24 * time.Hour,
}

// Parse converts inputs like "30m", "2h", "1d", "1w" or "45" (minutes) into a
// duration. Empty strings, non-numeric magnitudes and zero or negative values
// are rejected.
func Parse(input string) (time.Duration, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return 0, ErrInvalid
	}

	unit := time.Minute
	last := s[len(s)-1]
	if u, ok := units[last]; ok {
		unit = u
		s = s[:len(s)-1]
	}
	if s == "" {
		return 0, ErrInvalid
	}

	value, err := strconv.Atoi(s)
	if err != nil || value <= 0 {
		return 0, ErrInvalid
	}
	return time.Duration(value) * unit, nil
}

// ParseWithin parses and then enforces an inclusive [min, max] bound. A zero
// max disables the upper bound.
func ParseWithin(input string, min, max time.Duration) (time.Duration, error) {
	d, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if d < min {
		return 0, ErrOutOfRange
	}
	if max > 0 && d > max {
		return 0, ErrOutOfRange
	}
	return d, nil
}
