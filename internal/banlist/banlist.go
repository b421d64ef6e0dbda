// Package banlist implements the paginated ban-list browser: fetching bans
// and their audit-log attribution, search filtering, page arithmetic and
// embed rendering. Everything except the fetch layer is pure so the browse
// flow can be tested without a gateway connection.
package banlist

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Entry is one guild ban as returned by the moderation API.
type Entry struct {
	User   *discordgo.User
	Reason string
}

// Attribution is the audit-log record of who performed a ban.
type Attribution struct {
	Moderator *discordgo.User
	Timestamp time.Time
	Reason    string
}

// DisplayName prefers the user's global display name over the account name.
func DisplayName(u *discordgo.User) string {
	if u == nil {
		return ""
	}
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}
