package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/TifouDragon/Slimboy-Bot/internal/updates"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// startUpdateNotifier polls GitHub for new releases and announces them in the
// configured channel. Disabled unless both the feature flag and a channel are
// set.
func (b *Bot) startUpdateNotifier() {
	if !b.cfg.Updates.Enabled || b.cfg.Updates.ChannelID == "" {
		return
	}
	interval := time.Duration(b.cfg.Updates.IntervalHours) * time.Hour
	if interval <= 0 {
		interval = 6 * time.Hour
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-b.stop:
				return
			case <-ticker.C:
				b.checkForUpdates()
			}
		}
	}()
}

func (b *Bot) checkForUpdates() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	release, err := b.checker.Latest(ctx)
	if err != nil {
		b.logger.Warn("update check failed", zap.Error(err))
		return
	}
	if release == nil || !updates.IsNewer(release.Version(), updates.CurrentVersion) {
		return
	}

	b.notifiedMu.Lock()
	already := b.lastNotified == release.TagName
	if !already {
		b.lastNotified = release.TagName
	}
	b.notifiedMu.Unlock()
	if already {
		return
	}

	embed := b.releaseEmbed(release)
	if _, err := b.session.ChannelMessageSendEmbed(b.cfg.Updates.ChannelID, embed); err != nil {
		b.logger.Warn("update notification failed", zap.Error(err))
	}
}

func (b *Bot) releaseEmbed(release *updates.Release) *discordgo.MessageEmbed {
	lang := b.cfg.DefaultLanguage
	version := "`" + release.Version() + "`"
	if release.Prerelease {
		version += " (" + b.t(lang, "value_prerelease") + ")"
	}
	embed := b.commandEmbed(
		b.t(lang, "updates_title"),
		b.t(lang, "updates_available"),
		b.cfg.EmbedColors.Success,
		[]*discordgo.MessageEmbedField{
			{Name: b.t(lang, "field_current"), Value: "`" + updates.CurrentVersion + "`", Inline: true},
			{Name: b.t(lang, "field_latest"), Value: version, Inline: true},
		},
	)
	if release.HTMLURL != "" {
		embed.URL = release.HTMLURL
	}
	if release.Body != "" {
		body := release.Body
		if len(body) > 500 {
			body = body[:500] + "..."
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: b.t(lang, "field_changes"), Value: body, Inline: false,
		})
	}
	return embed
}

func (b *Bot) handleUpdates(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	lang := b.cfg.DefaultLanguage
	if !hasPermission(interaction, discordgo.PermissionAdministrator) && !b.isGuildOwner(interaction.GuildID, invokerID(interaction)) {
		b.respond(session, interaction, b.t(lang, "error_permission_user"), true)
		return
	}

	if err := session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	}); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	release, err := b.checker.Latest(ctx)
	if err != nil {
		b.logger.Warn("update check failed", zap.Error(err))
		b.followupEphemeral(session, interaction, b.t(lang, "updates_failed"))
		return
	}

	if release == nil || !updates.IsNewer(release.Version(), updates.CurrentVersion) {
		_, _ = session.FollowupMessageCreate(interaction.Interaction, true, &discordgo.WebhookParams{
			Content: fmt.Sprintf(b.t(lang, "updates_none"), updates.CurrentVersion),
			Flags:   discordgo.MessageFlagsEphemeral,
		})
		return
	}

	_, _ = session.FollowupMessageCreate(interaction.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{b.releaseEmbed(release)},
		Flags:  discordgo.MessageFlagsEphemeral,
	})
}
