package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRPSOutcome(t *testing.T) {
	assert.Equal(t, "draw", rpsOutcome("rock", "rock"))
	assert.Equal(t, "win", rpsOutcome("rock", "scissors"))
	assert.Equal(t, "win", rpsOutcome("paper", "rock"))
	assert.Equal(t, "win", rpsOutcome("scissors", "paper"))
	assert.Equal(t, "loss", rpsOutcome("rock", "paper"))
	assert.Equal(t, "loss", rpsOutcome("scissors", "rock"))
}

func TestGuessOutcome(t *testing.T) {
	outcome, points := guessOutcome(7, 7)
	assert.Equal(t, "win", outcome)
	assert.Equal(t, 5, points)

	outcome, points = guessOutcome(3, 7)
	assert.Equal(t, "loss", outcome)
	assert.Equal(t, 0, points)
}

func TestIsSnowflake(t *testing.T) {
	assert.True(t, isSnowflake("123456789012345678"))
	assert.False(t, isSnowflake(""))
	assert.False(t, isSnowflake("12345"))
	assert.False(t, isSnowflake("12345678901234567a"))
	assert.False(t, isSnowflake("1234567890123456789012"))
}

func TestLocalesFallback(t *testing.T) {
	b := &Bot{}
	assert.Equal(t, locales["fr"]["ban_title"], b.t("fr", "ban_title"))
	assert.Equal(t, locales["en"]["ban_title"], b.t("en", "ban_title"))
	// Unknown language falls back to French, unknown key to itself.
	assert.Equal(t, locales["fr"]["ban_title"], b.t("de", "ban_title"))
	assert.Equal(t, "no_such_key", b.t("fr", "no_such_key"))
}

func TestLocalesCoverage(t *testing.T) {
	for key := range locales["fr"] {
		_, ok := locales["en"][key]
		assert.True(t, ok, "missing english translation for %s", key)
	}
	for key := range locales["en"] {
		_, ok := locales["fr"][key]
		assert.True(t, ok, "missing french translation for %s", key)
	}
}
