package banlist

import (
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEntries(n int) []Entry {
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = Entry{
			User: &discordgo.User{
				ID:       fmt.Sprintf("%d", 100+i),
				Username: fmt.Sprintf("user%d", i+1),
			},
			Reason: fmt.Sprintf("reason %d", i+1),
		}
	}
	return entries
}

func TestFilterMatchesNameUsernameAndID(t *testing.T) {
	entries := []Entry{
		{User: &discordgo.User{ID: "111", Username: "johndoe", GlobalName: "John Doe"}},
		{User: &discordgo.User{ID: "222", Username: "alice", GlobalName: "Alice"}},
	}

	matched := Filter(entries, "john")
	require.Len(t, matched, 1)
	assert.Equal(t, "111", matched[0].User.ID)

	assert.Len(t, Filter(entries, "ALICE"), 1)
	assert.Len(t, Filter(entries, "222"), 1)
	assert.Len(t, Filter(entries, "nobody"), 0)
	assert.Len(t, Filter(entries, "  "), 2)
}

func TestRenderPageSlices(t *testing.T) {
	entries := makeEntries(12)
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	embed := Render(entries, NewPager(12, 5, 1), "Guild", nil, "", 0xE74C3C, createdAt)
	require.Len(t, embed.Fields, 5)
	assert.Equal(t, "1. user1", embed.Fields[0].Name)
	assert.Contains(t, embed.Footer.Text, "Page 1/3")
	assert.Contains(t, embed.Footer.Text, "Total: 12 bannis")
	assert.Contains(t, embed.Footer.Text, "Affichage: 5 bannis")

	embed = Render(entries, NewPager(12, 5, 3), "Guild", nil, "", 0xE74C3C, createdAt)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "11. user11", embed.Fields[0].Name)
	assert.Equal(t, "12. user12", embed.Fields[1].Name)
	assert.Contains(t, embed.Footer.Text, "Page 3/3")
	assert.Contains(t, embed.Footer.Text, "Affichage: 2 bannis")
}

func TestRenderIsDeterministic(t *testing.T) {
	entries := makeEntries(7)
	audit := map[string]Attribution{
		"100": {
			Moderator: &discordgo.User{ID: "9", Username: "mod"},
			Timestamp: time.Date(2025, 5, 20, 8, 30, 0, 0, time.UTC),
			Reason:    "audit reason",
		},
	}
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	first := Render(entries, NewPager(7, 5, 2), "Guild", audit, "", 0xE74C3C, createdAt)
	second := Render(entries, NewPager(7, 5, 2), "Guild", audit, "", 0xE74C3C, createdAt)
	assert.Equal(t, first, second)
}

func TestRenderSearchTitle(t *testing.T) {
	entries := []Entry{
		{User: &discordgo.User{ID: "111", Username: "johndoe", GlobalName: "John Doe"}},
	}
	embed := Render(entries, NewPager(1, 5, 1), "Guild", nil, "john", 0xE74C3C, time.Now())
	assert.Contains(t, embed.Title, "Recherche: john")
	assert.Contains(t, embed.Description, "**john**")
	assert.Contains(t, embed.Footer.Text, "Total: 1 bannis")
}

func TestRenderAttributionSources(t *testing.T) {
	entries := []Entry{
		{User: &discordgo.User{ID: "1", Username: "audited"}, Reason: "stored reason"},
		{User: &discordgo.User{ID: "2", Username: "bothit"}, Reason: "Dyno automatic ban"},
		{User: &discordgo.User{ID: "3", Username: "bare"}},
	}
	audit := map[string]Attribution{
		"1": {
			Moderator: &discordgo.User{ID: "9", Username: "mod"},
			Timestamp: time.Date(2025, 5, 20, 8, 30, 0, 0, time.UTC),
			Reason:    "audit reason",
		},
	}
	embed := Render(entries, NewPager(3, 5, 1), "Guild", audit, "", 0xE74C3C, time.Now())
	require.Len(t, embed.Fields, 3)

	assert.Contains(t, embed.Fields[0].Value, "Banni par le modérateur:** mod")
	assert.Contains(t, embed.Fields[0].Value, "20/05/2025 08:30")
	assert.Contains(t, embed.Fields[0].Value, "**Raison:** audit reason")

	assert.Contains(t, embed.Fields[1].Value, "**Raison:** Dyno automatic ban")
	assert.Contains(t, embed.Fields[1].Value, "Probablement banni par:** Dyno")

	assert.Contains(t, embed.Fields[2].Value, "Aucune raison fournie")
	assert.Contains(t, embed.Fields[2].Value, "Inconnu")
}

func TestRenderBotModerator(t *testing.T) {
	entries := []Entry{{User: &discordgo.User{ID: "1", Username: "target"}}}
	audit := map[string]Attribution{
		"1": {
			Moderator: &discordgo.User{ID: "9", Username: "dyno", Bot: true},
			Timestamp: time.Date(2025, 5, 20, 8, 30, 0, 0, time.UTC),
		},
	}
	embed := Render(entries, NewPager(1, 5, 1), "Guild", audit, "", 0xE74C3C, time.Now())
	assert.Contains(t, embed.Fields[0].Value, "Banni par le bot:** dyno")
}
