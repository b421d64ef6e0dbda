package duration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  time.Duration
	}{
		{"30s", 30 * time.Second},
		{"30m", 30 * time.Minute},
		{"2h", 2 * time.Hour},
		{"2d", 48 * time.Hour},
		{"1w", 7 * 24 * time.Hour},
		{"45", 45 * time.Minute},
		{" 10M ", 10 * time.Minute},
	}
	for _, tc := range cases {
		got, err := Parse(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestParseTwoDaysInSeconds(t *testing.T) {
	got, err := Parse("2d")
	require.NoError(t, err)
	assert.Equal(t, 172800, int(got.Seconds()))
}

func TestParseRejects(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "m", "0m", "-5h", "1.5h", "10x5m"} {
		_, err := Parse(input)
		assert.ErrorIs(t, err, ErrInvalid, "input %q", input)
	}
}

func TestParseWithin(t *testing.T) {
	_, err := ParseWithin("30s", time.Minute, 7*24*time.Hour)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = ParseWithin("2w", time.Minute, 7*24*time.Hour)
	assert.ErrorIs(t, err, ErrOutOfRange)

	got, err := ParseWithin("1w", time.Minute, 7*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, got)

	// No upper bound when max is zero.
	got, err = ParseWithin("52w", time.Minute, 0)
	require.NoError(t, err)
	assert.Equal(t, 52*7*24*time.Hour, got)
}
