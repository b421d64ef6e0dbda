package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseControl(t *testing.T) {
	c, arg, ok := ParseControl("banlist:next")
	assert.True(t, ok)
	assert.Equal(t, ControlNext, c)
	assert.Empty(t, arg)

	c, arg, ok = ParseControl("banlist:modal:12345")
	assert.True(t, ok)
	assert.Equal(t, ControlModal, c)
	assert.Equal(t, "12345", arg)

	_, _, ok = ParseControl("banlist:unknown")
	assert.False(t, ok)

	_, _, ok = ParseControl("other:next")
	assert.False(t, ok)

	assert.Equal(t, "banlist:close", ControlClose.customID())
}
