package banlist

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	banPages  [][]*discordgo.GuildBan
	banCalls  int
	banErr    error
	auditLog  *discordgo.GuildAuditLog
	auditErr  error
	auditArgs []string
}

func (f *fakeSession) GuildBans(guildID string, limit int, beforeID, afterID string, options ...discordgo.RequestOption) ([]*discordgo.GuildBan, error) {
	if f.banErr != nil {
		return nil, f.banErr
	}
	if f.banCalls >= len(f.banPages) {
		return nil, nil
	}
	page := f.banPages[f.banCalls]
	f.banCalls++
	return page, nil
}

func (f *fakeSession) GuildAuditLog(guildID, userID, beforeID string, actionType, limit int, options ...discordgo.RequestOption) (*discordgo.GuildAuditLog, error) {
	f.auditArgs = append(f.auditArgs, beforeID)
	if f.auditErr != nil {
		return nil, f.auditErr
	}
	if f.auditLog != nil {
		log := f.auditLog
		f.auditLog = nil
		return log, nil
	}
	return &discordgo.GuildAuditLog{}, nil
}

func banPage(start, count int) []*discordgo.GuildBan {
	page := make([]*discordgo.GuildBan, count)
	for i := range page {
		page[i] = &discordgo.GuildBan{
			User:   &discordgo.User{ID: fmt.Sprintf("%d", start+i)},
			Reason: "spam",
		}
	}
	return page
}

func TestFetchBansWalksAllPages(t *testing.T) {
	s := &fakeSession{banPages: [][]*discordgo.GuildBan{
		banPage(0, 1000),
		banPage(1000, 3),
	}}
	entries, err := FetchBans(s, "g1")
	require.NoError(t, err)
	assert.Len(t, entries, 1003)
	assert.Equal(t, 2, s.banCalls)
	assert.Equal(t, "1002", entries[len(entries)-1].User.ID)
}

func TestFetchBansPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	s := &fakeSession{banErr: boom}
	_, err := FetchBans(s, "g1")
	assert.ErrorIs(t, err, boom)
}

func TestFetchAttributionsMapsNewestEntryPerTarget(t *testing.T) {
	s := &fakeSession{auditLog: &discordgo.GuildAuditLog{
		Users: []*discordgo.User{
			{ID: "mod1", Username: "mod one"},
		},
		AuditLogEntries: []*discordgo.AuditLogEntry{
			{ID: "300", TargetID: "u1", UserID: "mod1", Reason: "newest"},
			{ID: "200", TargetID: "u1", UserID: "mod1", Reason: "older"},
			{ID: "100", TargetID: "u2", UserID: "ghost", Reason: "spam"},
		},
	}}
	attrs, err := FetchAttributions(s, "g1")
	require.NoError(t, err)
	require.Len(t, attrs, 2)

	assert.Equal(t, "newest", attrs["u1"].Reason)
	assert.Equal(t, "mod one", attrs["u1"].Moderator.Username)
	// Moderators missing from the user list still attribute by id.
	assert.Equal(t, "ghost", attrs["u2"].Moderator.ID)
}

func TestFetchAttributionsForbiddenIsNotFatal(t *testing.T) {
	s := &fakeSession{auditErr: &discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusForbidden},
	}}
	attrs, err := FetchAttributions(s, "g1")
	require.NoError(t, err)
	assert.Empty(t, attrs)
}

func TestFetchAttributionsOtherErrorsPropagate(t *testing.T) {
	s := &fakeSession{auditErr: &discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusInternalServerError},
	}}
	_, err := FetchAttributions(s, "g1")
	assert.Error(t, err)
}
