package banlist

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

const footerSignature = "Créé par @Ninja Iyed"

// Render builds the ban-list embed for the pager's current page. Output is a
// pure function of its inputs: rendering the same page twice yields the same
// embed. The caller clamps the page before calling.
func Render(entries []Entry, pg Pager, guildName string, audit map[string]Attribution, searchTerm string, color int, createdAt time.Time) *discordgo.MessageEmbed {
	title := "📋 Liste des Bannis du Serveur"
	var description string
	if term := strings.TrimSpace(searchTerm); term != "" {
		title += " - Recherche: " + term
		description = fmt.Sprintf("Résultats de recherche pour **%s** dans **%s**", term, guildName)
	} else {
		description = fmt.Sprintf("Affichage des utilisateurs bannis de **%s**", guildName)
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Timestamp:   createdAt.UTC().Format(time.RFC3339),
	}

	start, end := pg.Bounds()
	for i, entry := range entries[start:end] {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%d. %s", start+i+1, DisplayName(entry.User)),
			Value:  renderEntry(entry, audit),
			Inline: false,
		})
	}

	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Page %d/%d • Total: %d bannis • Affichage: %d bannis • %s",
			pg.Page, pg.TotalPages(), pg.EntryCount, end-start, footerSignature),
	}
	return embed
}

func renderEntry(entry Entry, audit map[string]Attribution) string {
	user := entry.User
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** [🖼️](%s)\n", DisplayName(user), user.AvatarURL(""))
	fmt.Fprintf(&b, "ID: `%s`\n", user.ID)

	if attr, ok := audit[user.ID]; ok {
		if attr.Moderator.Bot {
			fmt.Fprintf(&b, "🤖 **Banni par le bot:** %s\n", DisplayName(attr.Moderator))
		} else {
			fmt.Fprintf(&b, "👮 **Banni par le modérateur:** %s\n", DisplayName(attr.Moderator))
		}
		fmt.Fprintf(&b, "**Date du ban:** %s\n", attr.Timestamp.Format("02/01/2006 15:04"))
		// The audit-log reason wins over the one stored on the ban entry.
		reason := attr.Reason
		if strings.TrimSpace(reason) == "" {
			reason = entry.Reason
		}
		if strings.TrimSpace(reason) != "" {
			fmt.Fprintf(&b, "**Raison:** %s\n", reason)
		} else {
			b.WriteString("**Raison:** Aucune raison fournie\n")
		}
		return b.String()
	}

	if strings.TrimSpace(entry.Reason) != "" {
		fmt.Fprintf(&b, "**Raison:** %s\n", entry.Reason)
		if name := AttributeBot(entry.Reason); name != "" {
			fmt.Fprintf(&b, "🤖 **Probablement banni par:** %s\n", name)
		}
	} else {
		b.WriteString("**Raison:** Aucune raison fournie\n")
		b.WriteString("⚠️ **Banni par:** Inconnu (pas d'accès aux logs d'audit)\n")
	}
	return b.String()
}
