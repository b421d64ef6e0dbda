package bot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/TifouDragon/Slimboy-Bot/internal/updates"

	"github.com/bwmarrin/discordgo"
)

// invitePermissions covers every operation the bot performs: ban management,
// kicks, timeouts, channel management and message cleanup.
const invitePermissions = discordgo.PermissionBanMembers |
	discordgo.PermissionKickMembers |
	discordgo.PermissionModerateMembers |
	discordgo.PermissionManageChannels |
	discordgo.PermissionManageMessages |
	discordgo.PermissionViewAuditLogs |
	discordgo.PermissionSendMessages |
	discordgo.PermissionEmbedLinks

func (b *Bot) handlePing(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	lang := b.cfg.DefaultLanguage
	latency := session.HeartbeatLatency()
	embed := b.commandEmbed(
		b.t(lang, "ping_title"),
		b.t(lang, "ping_desc"),
		b.cfg.EmbedColors.Info,
		[]*discordgo.MessageEmbedField{
			{Name: b.t(lang, "field_latency"), Value: fmt.Sprintf("%d ms", latency.Milliseconds()), Inline: true},
		},
	)
	b.respondEmbed(session, interaction, embed, true)
}

func (b *Bot) handleStatus(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	lang := b.cfg.DefaultLanguage
	uptime := time.Since(b.startedAt).Round(time.Second)
	embed := b.commandEmbed(
		b.t(lang, "status_title"),
		b.t(lang, "status_desc"),
		b.cfg.EmbedColors.Info,
		[]*discordgo.MessageEmbedField{
			{Name: b.t(lang, "field_version"), Value: updates.CurrentVersion, Inline: true},
			{Name: b.t(lang, "field_uptime"), Value: uptime.String(), Inline: true},
			{Name: b.t(lang, "field_guilds"), Value: fmt.Sprintf("%d", len(session.State.Guilds)), Inline: true},
			{Name: b.t(lang, "field_latency"), Value: fmt.Sprintf("%d ms", session.HeartbeatLatency().Milliseconds()), Inline: true},
		},
	)
	b.respondEmbed(session, interaction, embed, true)
}

func (b *Bot) handleDiagnostic(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	lang := b.cfg.DefaultLanguage
	if !hasPermission(interaction, discordgo.PermissionAdministrator) && !b.isGuildOwner(interaction.GuildID, invokerID(interaction)) {
		b.respond(session, interaction, b.t(lang, "error_permission_user"), true)
		return
	}

	gateway := b.t(lang, "value_ok")
	if session.State.User == nil {
		gateway = b.t(lang, "value_fail")
	}

	storageCheck := b.t(lang, "value_ok")
	probe := filepath.Join(b.cfg.DataDir, ".probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		storageCheck = b.t(lang, "value_fail")
	} else {
		_ = os.Remove(probe)
	}

	latency := session.HeartbeatLatency()
	latencyCheck := b.t(lang, "value_ok")
	if latency > 500*time.Millisecond {
		latencyCheck = b.t(lang, "value_fail")
	}

	embed := b.commandEmbed(
		b.t(lang, "diagnostic_title"),
		b.t(lang, "diagnostic_desc"),
		b.cfg.EmbedColors.Info,
		[]*discordgo.MessageEmbedField{
			{Name: b.t(lang, "check_gateway"), Value: gateway, Inline: true},
			{Name: b.t(lang, "check_storage"), Value: storageCheck, Inline: true},
			{Name: b.t(lang, "check_latency"), Value: fmt.Sprintf("%s (%d ms)", latencyCheck, latency.Milliseconds()), Inline: true},
		},
	)
	b.respondEmbed(session, interaction, embed, true)
}

func (b *Bot) handleInvite(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	lang := b.cfg.DefaultLanguage
	if session.State.User == nil {
		b.respond(session, interaction, b.t(lang, "error_failed"), true)
		return
	}
	url := fmt.Sprintf(
		"https://discord.com/api/oauth2/authorize?client_id=%s&permissions=%d&scope=bot%%20applications.commands",
		session.State.User.ID, invitePermissions,
	)
	embed := b.commandEmbed(
		b.t(lang, "invite_title"),
		fmt.Sprintf(b.t(lang, "invite_desc"), url),
		b.cfg.EmbedColors.Info,
		nil,
	)
	b.respondEmbed(session, interaction, embed, true)
}
