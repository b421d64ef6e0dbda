package banlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributeBot(t *testing.T) {
	cases := []struct {
		reason string
		want   string
	}{
		{"", ""},
		{"   ", ""},
		{"spamming invites", ""},
		{"Dyno automatic ban", "Dyno"},
		{"banned by MEE6 for spam", "MEE6"},
		{"carl bot moderation", "Carl-bot"},
		{"anti-raid protection triggered", "Anti-Raid Bot"},
		{"removed by some bot", "Un bot"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, AttributeBot(tc.reason), "reason %q", tc.reason)
	}
}
