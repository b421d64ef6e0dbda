package banlist

import (
	"errors"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	bansPerRequest  = 1000
	auditPerRequest = 100
	// The audit scan is bounded: entries older than the newest 500 ban
	// actions never contribute attribution.
	auditScanCap = 500
)

// Session is the slice of the Discord REST client the fetcher needs.
type Session interface {
	GuildBans(guildID string, limit int, beforeID, afterID string, options ...discordgo.RequestOption) ([]*discordgo.GuildBan, error)
	GuildAuditLog(guildID, userID, beforeID string, actionType, limit int, options ...discordgo.RequestOption) (*discordgo.GuildAuditLog, error)
}

// FetchBans walks the ban-listing endpoint until exhaustion and returns every
// current ban. Permission and transport errors propagate to the caller.
func FetchBans(s Session, guildID string) ([]Entry, error) {
	var entries []Entry
	after := ""
	for {
		batch, err := s.GuildBans(guildID, bansPerRequest, "", after)
		if err != nil {
			return nil, err
		}
		for _, ban := range batch {
			entries = append(entries, Entry{User: ban.User, Reason: ban.Reason})
		}
		if len(batch) < bansPerRequest {
			return entries, nil
		}
		after = batch[len(batch)-1].User.ID
	}
}

// FetchAttributions scans the newest ban-type audit entries and maps each
// target user id to its most recent ban action. A forbidden audit log is not
// an error: the list renders without attribution instead.
func FetchAttributions(s Session, guildID string) (map[string]Attribution, error) {
	attributions := make(map[string]Attribution)
	users := make(map[string]*discordgo.User)

	before := ""
	for scanned := 0; scanned < auditScanCap; {
		limit := auditPerRequest
		if remaining := auditScanCap - scanned; remaining < limit {
			limit = remaining
		}
		log, err := s.GuildAuditLog(guildID, "", before, int(discordgo.AuditLogActionMemberBanAdd), limit)
		if err != nil {
			if isForbidden(err) {
				return map[string]Attribution{}, nil
			}
			return nil, err
		}
		for _, u := range log.Users {
			users[u.ID] = u
		}
		for _, entry := range log.AuditLogEntries {
			scanned++
			before = entry.ID
			if entry.TargetID == "" {
				continue
			}
			// Entries arrive newest first: keep the first one per target.
			if _, seen := attributions[entry.TargetID]; seen {
				continue
			}
			moderator := users[entry.UserID]
			if moderator == nil {
				moderator = &discordgo.User{ID: entry.UserID}
			}
			ts, err := discordgo.SnowflakeTimestamp(entry.ID)
			if err != nil {
				ts = time.Time{}
			}
			attributions[entry.TargetID] = Attribution{
				Moderator: moderator,
				Timestamp: ts,
				Reason:    entry.Reason,
			}
		}
		if len(log.AuditLogEntries) < limit {
			break
		}
	}
	return attributions, nil
}

func isForbidden(err error) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		return restErr.Response.StatusCode == http.StatusForbidden
	}
	return false
}
