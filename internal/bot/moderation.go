package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/TifouDragon/Slimboy-Bot/internal/banlist"
	"github.com/TifouDragon/Slimboy-Bot/internal/duration"
	"github.com/TifouDragon/Slimboy-Bot/internal/guardian"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const maxTimeout = 28 * 24 * time.Hour

func commandOptions(interaction *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	for _, opt := range interaction.ApplicationCommandData().Options {
		opts[opt.Name] = opt
	}
	return opts
}

// moderationGate runs the shared checks of every moderation command: guild
// context, the invoker's permission, and the Guardian policy when a target is
// named. It answers the interaction itself on failure.
func (b *Bot) moderationGate(session *discordgo.Session, interaction *discordgo.InteractionCreate, permission int64, targetID string) (string, bool) {
	lang := b.cfg.DefaultLanguage
	if interaction.GuildID == "" {
		b.respond(session, interaction, b.t(lang, "error_guild_only"), true)
		return lang, false
	}
	actorID := invokerID(interaction)
	if !hasPermission(interaction, permission) && !b.isGuildOwner(interaction.GuildID, actorID) {
		b.respond(session, interaction, b.t(lang, "error_permission_user"), true)
		return lang, false
	}
	if targetID != "" && !b.guardianAllows(interaction, targetID) {
		b.respond(session, interaction, b.t(lang, "guardian_blocked"), true)
		return lang, false
	}
	return lang, true
}

func (b *Bot) guardianAllows(interaction *discordgo.InteractionCreate, targetID string) bool {
	state := b.stores.Guardian.Guild(interaction.GuildID)
	protection, protected := state.ProtectedUsers[targetID]
	if !protected {
		return true
	}
	actorID := invokerID(interaction)

	var actorRoles []string
	if interaction.Member != nil {
		actorRoles = interaction.Member.Roles
	}
	req := guardian.Request{
		TargetProtected:  true,
		ProtectorID:      protection.SetBy,
		ActorID:          actorID,
		ActorIsOwner:     b.isGuildOwner(interaction.GuildID, actorID),
		ActorRoles:       actorRoles,
		ExceptionRoles:   state.ExceptionRoles,
		ActorTopRole:     b.topRolePosition(interaction.GuildID, interaction.Member),
		ProtectorTopRole: b.topRolePosition(interaction.GuildID, b.member(interaction.GuildID, protection.SetBy)),
	}
	return guardian.Evaluate(req).Allowed()
}

func (b *Bot) member(guildID, userID string) *discordgo.Member {
	if userID == "" {
		return nil
	}
	member, err := b.session.State.Member(guildID, userID)
	if err == nil && member != nil {
		return member
	}
	member, _ = b.session.GuildMember(guildID, userID)
	return member
}

func (b *Bot) topRolePosition(guildID string, member *discordgo.Member) int {
	if member == nil {
		return -1
	}
	guild, err := b.session.State.Guild(guildID)
	if err != nil || guild == nil {
		guild, _ = b.session.Guild(guildID)
	}
	if guild == nil {
		return -1
	}
	positions := make(map[string]int, len(guild.Roles))
	for _, role := range guild.Roles {
		positions[role.ID] = role.Position
	}
	top := -1
	for _, roleID := range member.Roles {
		if pos, ok := positions[roleID]; ok && pos > top {
			top = pos
		}
	}
	return top
}

// selfOrBotTarget rejects moderation aimed at the invoker or the bot itself.
func (b *Bot) selfOrBotTarget(session *discordgo.Session, interaction *discordgo.InteractionCreate, lang, targetID string) bool {
	if targetID == invokerID(interaction) {
		b.respond(session, interaction, b.t(lang, "error_self_target"), true)
		return true
	}
	if session.State.User != nil && targetID == session.State.User.ID {
		b.respond(session, interaction, b.t(lang, "error_bot_target"), true)
		return true
	}
	return false
}

func (b *Bot) reasonOrDefault(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) string {
	if opt, ok := opts["reason"]; ok {
		if reason := strings.TrimSpace(opt.StringValue()); reason != "" {
			return reason
		}
	}
	return "Aucune raison fournie"
}

func (b *Bot) reportModerationError(session *discordgo.Session, interaction *discordgo.InteractionCreate, lang, action string, err error) {
	msg := b.t(lang, "error_failed")
	switch {
	case isForbidden(err):
		msg = b.t(lang, "error_permission_bot")
	case isNotFound(err):
		msg = b.t(lang, "error_not_found")
	}
	b.logger.Warn("moderation call failed", zap.String("action", action), zap.Error(err))
	b.respond(session, interaction, msg, true)
}

func (b *Bot) handleBan(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	opts := commandOptions(interaction)
	user := opts["user"].UserValue(session)
	lang, ok := b.moderationGate(session, interaction, discordgo.PermissionBanMembers, user.ID)
	if !ok {
		return
	}
	if b.selfOrBotTarget(session, interaction, lang, user.ID) {
		return
	}

	days := 0
	if opt, ok := opts["delete_messages"]; ok {
		days = int(opt.IntValue())
	}
	if days < 0 || days > 7 {
		b.respond(session, interaction, b.t(lang, "error_delete_days"), true)
		return
	}

	reason := b.reasonOrDefault(opts)
	if err := session.GuildBanCreateWithReason(interaction.GuildID, user.ID, reason, days); err != nil {
		b.reportModerationError(session, interaction, lang, "ban", err)
		return
	}

	embed := b.commandEmbed(
		b.t(lang, "ban_title"),
		fmt.Sprintf(b.t(lang, "ban_done"), banlist.DisplayName(user)),
		b.cfg.EmbedColors.Error,
		[]*discordgo.MessageEmbedField{
			{Name: b.t(lang, "field_user"), Value: fmt.Sprintf("%s (`%s`)", user.Username, user.ID), Inline: true},
			{Name: b.t(lang, "field_moderator"), Value: "<@" + invokerID(interaction) + ">", Inline: true},
			{Name: b.t(lang, "field_reason"), Value: reason, Inline: false},
		},
	)
	embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: user.AvatarURL("")}
	b.respondEmbed(session, interaction, embed, false)
}

func (b *Bot) handleKick(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	opts := commandOptions(interaction)
	user := opts["user"].UserValue(session)
	lang, ok := b.moderationGate(session, interaction, discordgo.PermissionKickMembers, user.ID)
	if !ok {
		return
	}
	if b.selfOrBotTarget(session, interaction, lang, user.ID) {
		return
	}

	reason := b.reasonOrDefault(opts)
	if err := session.GuildMemberDeleteWithReason(interaction.GuildID, user.ID, reason); err != nil {
		b.reportModerationError(session, interaction, lang, "kick", err)
		return
	}

	embed := b.commandEmbed(
		b.t(lang, "kick_title"),
		fmt.Sprintf(b.t(lang, "kick_done"), banlist.DisplayName(user)),
		b.cfg.EmbedColors.Warning,
		[]*discordgo.MessageEmbedField{
			{Name: b.t(lang, "field_user"), Value: fmt.Sprintf("%s (`%s`)", user.Username, user.ID), Inline: true},
			{Name: b.t(lang, "field_moderator"), Value: "<@" + invokerID(interaction) + ">", Inline: true},
			{Name: b.t(lang, "field_reason"), Value: reason, Inline: false},
		},
	)
	b.respondEmbed(session, interaction, embed, false)
}

func (b *Bot) handleTimeout(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	opts := commandOptions(interaction)
	user := opts["user"].UserValue(session)
	lang, ok := b.moderationGate(session, interaction, discordgo.PermissionModerateMembers, user.ID)
	if !ok {
		return
	}
	if b.selfOrBotTarget(session, interaction, lang, user.ID) {
		return
	}

	parsed, err := duration.ParseWithin(opts["duration"].StringValue(), time.Second, maxTimeout)
	if err != nil {
		b.respond(session, interaction, b.t(lang, "error_invalid_duration"), true)
		return
	}
	until := time.Now().Add(parsed)
	reason := b.reasonOrDefault(opts)

	if err := session.GuildMemberTimeout(interaction.GuildID, user.ID, &until, discordgo.WithAuditLogReason(reason)); err != nil {
		b.reportModerationError(session, interaction, lang, "timeout", err)
		return
	}

	embed := b.commandEmbed(
		b.t(lang, "timeout_title"),
		fmt.Sprintf(b.t(lang, "timeout_done"), banlist.DisplayName(user)),
		b.cfg.EmbedColors.Warning,
		[]*discordgo.MessageEmbedField{
			{Name: b.t(lang, "field_duration"), Value: strings.ToLower(strings.TrimSpace(opts["duration"].StringValue())), Inline: true},
			{Name: b.t(lang, "field_expires"), Value: fmt.Sprintf("<t:%d:F>", until.Unix()), Inline: true},
			{Name: b.t(lang, "field_moderator"), Value: "<@" + invokerID(interaction) + ">", Inline: true},
			{Name: b.t(lang, "field_reason"), Value: reason, Inline: false},
		},
	)
	b.respondEmbed(session, interaction, embed, false)
}

func (b *Bot) handleUntimeout(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	opts := commandOptions(interaction)
	user := opts["user"].UserValue(session)
	lang, ok := b.moderationGate(session, interaction, discordgo.PermissionModerateMembers, "")
	if !ok {
		return
	}

	if err := session.GuildMemberTimeout(interaction.GuildID, user.ID, nil); err != nil {
		b.reportModerationError(session, interaction, lang, "untimeout", err)
		return
	}

	embed := b.commandEmbed(
		b.t(lang, "untimeout_title"),
		fmt.Sprintf(b.t(lang, "untimeout_done"), banlist.DisplayName(user)),
		b.cfg.EmbedColors.Success,
		[]*discordgo.MessageEmbedField{
			{Name: b.t(lang, "field_moderator"), Value: "<@" + invokerID(interaction) + ">", Inline: true},
			{Name: b.t(lang, "field_reason"), Value: b.reasonOrDefault(opts), Inline: false},
		},
	)
	b.respondEmbed(session, interaction, embed, false)
}

func (b *Bot) handleUnbanCommand(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	opts := commandOptions(interaction)
	userID := strings.TrimSpace(opts["user_id"].StringValue())
	lang, ok := b.moderationGate(session, interaction, discordgo.PermissionBanMembers, "")
	if !ok {
		return
	}
	if !isSnowflake(userID) {
		b.respond(session, interaction, b.t(lang, "error_invalid_user_id"), true)
		return
	}

	reason := b.reasonOrDefault(opts)
	if err := session.GuildBanDelete(interaction.GuildID, userID, discordgo.WithAuditLogReason(reason)); err != nil {
		if isNotFound(err) {
			b.respond(session, interaction, b.t(lang, "error_not_banned"), true)
			return
		}
		b.reportModerationError(session, interaction, lang, "unban", err)
		return
	}

	embed := b.commandEmbed(
		b.t(lang, "unban_title"),
		fmt.Sprintf(b.t(lang, "unban_done"), userID),
		b.cfg.EmbedColors.Success,
		[]*discordgo.MessageEmbedField{
			{Name: b.t(lang, "field_user"), Value: "`" + userID + "`", Inline: true},
			{Name: b.t(lang, "field_moderator"), Value: "<@" + invokerID(interaction) + ">", Inline: true},
			{Name: b.t(lang, "field_reason"), Value: reason, Inline: false},
		},
	)
	b.respondEmbed(session, interaction, embed, false)
}

func (b *Bot) handleWarn(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	opts := commandOptions(interaction)
	user := opts["user"].UserValue(session)
	lang, ok := b.moderationGate(session, interaction, discordgo.PermissionModerateMembers, user.ID)
	if !ok {
		return
	}
	if b.selfOrBotTarget(session, interaction, lang, user.ID) {
		return
	}

	reason := b.reasonOrDefault(opts)
	embed := b.commandEmbed(
		b.t(lang, "warn_title"),
		fmt.Sprintf(b.t(lang, "warn_done"), banlist.DisplayName(user)),
		b.cfg.EmbedColors.Warning,
		[]*discordgo.MessageEmbedField{
			{Name: b.t(lang, "field_user"), Value: fmt.Sprintf("%s (`%s`)", user.Username, user.ID), Inline: true},
			{Name: b.t(lang, "field_moderator"), Value: "<@" + invokerID(interaction) + ">", Inline: true},
			{Name: b.t(lang, "field_reason"), Value: reason, Inline: false},
		},
	)
	embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: user.AvatarURL("")}
	b.respondEmbed(session, interaction, embed, false)

	b.dmUser(user.ID, b.commandEmbed(
		b.t(lang, "warn_dm_title"),
		fmt.Sprintf(b.t(lang, "warn_dm_desc"), b.guildName(interaction.GuildID)),
		b.cfg.EmbedColors.Warning,
		[]*discordgo.MessageEmbedField{
			{Name: b.t(lang, "field_reason"), Value: reason, Inline: false},
		},
	))
}

func (b *Bot) handleUnwarn(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	opts := commandOptions(interaction)
	user := opts["user"].UserValue(session)
	lang, ok := b.moderationGate(session, interaction, discordgo.PermissionModerateMembers, "")
	if !ok {
		return
	}
	if b.selfOrBotTarget(session, interaction, lang, user.ID) {
		return
	}

	reason := b.reasonOrDefault(opts)
	embed := b.commandEmbed(
		b.t(lang, "unwarn_title"),
		fmt.Sprintf(b.t(lang, "unwarn_done"), banlist.DisplayName(user)),
		b.cfg.EmbedColors.Success,
		[]*discordgo.MessageEmbedField{
			{Name: b.t(lang, "field_user"), Value: fmt.Sprintf("%s (`%s`)", user.Username, user.ID), Inline: true},
			{Name: b.t(lang, "field_moderator"), Value: "<@" + invokerID(interaction) + ">", Inline: true},
			{Name: b.t(lang, "field_reason"), Value: reason, Inline: false},
		},
	)
	b.respondEmbed(session, interaction, embed, false)

	b.dmUser(user.ID, b.commandEmbed(
		b.t(lang, "unwarn_dm_title"),
		fmt.Sprintf(b.t(lang, "unwarn_dm_desc"), b.guildName(interaction.GuildID)),
		b.cfg.EmbedColors.Success,
		[]*discordgo.MessageEmbedField{
			{Name: b.t(lang, "field_reason"), Value: reason, Inline: false},
		},
	))
}

func (b *Bot) handleClear(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	opts := commandOptions(interaction)
	lang, ok := b.moderationGate(session, interaction, discordgo.PermissionManageMessages, "")
	if !ok {
		return
	}

	amount := int(opts["amount"].IntValue())
	if amount < 1 || amount > 100 {
		b.respond(session, interaction, b.t(lang, "error_clear_amount"), true)
		return
	}

	filterID := ""
	if opt, ok := opts["user"]; ok {
		filterID = opt.UserValue(session).ID
	}

	messages, err := session.ChannelMessages(interaction.ChannelID, 100, "", "", "")
	if err != nil {
		b.reportModerationError(session, interaction, lang, "clear", err)
		return
	}

	var ids []string
	cutoff := time.Now().Add(-14 * 24 * time.Hour)
	for _, msg := range messages {
		if len(ids) >= amount {
			break
		}
		if filterID != "" && (msg.Author == nil || msg.Author.ID != filterID) {
			continue
		}
		// Bulk deletion rejects messages older than two weeks.
		if msg.Timestamp.Before(cutoff) {
			continue
		}
		ids = append(ids, msg.ID)
	}

	switch len(ids) {
	case 0:
		b.respond(session, interaction, b.t(lang, "clear_nothing"), true)
		return
	case 1:
		err = session.ChannelMessageDelete(interaction.ChannelID, ids[0])
	default:
		err = session.ChannelMessagesBulkDelete(interaction.ChannelID, ids)
	}
	if err != nil {
		b.reportModerationError(session, interaction, lang, "clear", err)
		return
	}

	embed := b.commandEmbed(
		b.t(lang, "clear_title"),
		fmt.Sprintf(b.t(lang, "clear_done"), len(ids)),
		b.cfg.EmbedColors.Success,
		nil,
	)
	b.respondEmbed(session, interaction, embed, true)
}

func (b *Bot) handleSlowmode(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	opts := commandOptions(interaction)
	lang, ok := b.moderationGate(session, interaction, discordgo.PermissionManageChannels, "")
	if !ok {
		return
	}

	seconds := int(opts["seconds"].IntValue())
	if seconds < 0 || seconds > 21600 {
		b.respond(session, interaction, b.t(lang, "error_slowmode_range"), true)
		return
	}

	channelID := interaction.ChannelID
	if opt, ok := opts["channel"]; ok {
		if channel := opt.ChannelValue(session); channel != nil {
			channelID = channel.ID
		}
	}

	if _, err := session.ChannelEditComplex(channelID, &discordgo.ChannelEdit{RateLimitPerUser: &seconds}); err != nil {
		b.reportModerationError(session, interaction, lang, "slowmode", err)
		return
	}

	desc := fmt.Sprintf(b.t(lang, "slowmode_done"), seconds)
	if seconds == 0 {
		desc = b.t(lang, "slowmode_off")
	}
	embed := b.commandEmbed(
		b.t(lang, "slowmode_title"),
		desc,
		b.cfg.EmbedColors.Info,
		[]*discordgo.MessageEmbedField{
			{Name: b.t(lang, "field_channel"), Value: "<#" + channelID + ">", Inline: true},
		},
	)
	b.respondEmbed(session, interaction, embed, false)
}

func (b *Bot) handleUserInfo(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	lang := b.cfg.DefaultLanguage
	if interaction.GuildID == "" {
		b.respond(session, interaction, b.t(lang, "error_guild_only"), true)
		return
	}

	opts := commandOptions(interaction)
	var user *discordgo.User
	if opt, ok := opts["user"]; ok {
		user = opt.UserValue(session)
	} else if interaction.Member != nil {
		user = interaction.Member.User
	}
	if user == nil {
		b.respond(session, interaction, b.t(lang, "error_not_found"), true)
		return
	}

	created, _ := discordgo.SnowflakeTimestamp(user.ID)
	fields := []*discordgo.MessageEmbedField{
		{Name: b.t(lang, "field_id"), Value: "`" + user.ID + "`", Inline: true},
		{Name: b.t(lang, "field_created"), Value: fmt.Sprintf("<t:%d:D>", created.Unix()), Inline: true},
	}
	if member := b.member(interaction.GuildID, user.ID); member != nil {
		if !member.JoinedAt.IsZero() {
			fields = append(fields, &discordgo.MessageEmbedField{
				Name: b.t(lang, "field_joined"), Value: fmt.Sprintf("<t:%d:D>", member.JoinedAt.Unix()), Inline: true,
			})
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: b.t(lang, "field_roles"), Value: fmt.Sprintf("%d", len(member.Roles)), Inline: true,
		})
	}
	if b.stores.Guardian.IsProtected(interaction.GuildID, user.ID) {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: b.t(lang, "guardian_title"), Value: b.t(lang, "guardian_protected_badge"), Inline: true,
		})
	}

	embed := b.commandEmbed(
		b.t(lang, "userinfo_title"),
		fmt.Sprintf("**%s**", banlist.DisplayName(user)),
		b.cfg.EmbedColors.Info,
		fields,
	)
	embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: user.AvatarURL("")}
	b.respondEmbed(session, interaction, embed, false)
}

func (b *Bot) handleSay(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	opts := commandOptions(interaction)
	lang, ok := b.moderationGate(session, interaction, discordgo.PermissionManageMessages, "")
	if !ok {
		return
	}

	content := strings.TrimSpace(opts["message"].StringValue())
	if content == "" || len(content) > 2000 {
		b.respond(session, interaction, b.t(lang, "error_say_message"), true)
		return
	}

	if _, err := session.ChannelMessageSend(interaction.ChannelID, content); err != nil {
		b.reportModerationError(session, interaction, lang, "say", err)
		return
	}
	b.respond(session, interaction, b.t(lang, "say_done"), true)
}

func (b *Bot) dmUser(userID string, embed *discordgo.MessageEmbed) {
	channel, err := b.session.UserChannelCreate(userID)
	if err != nil {
		return
	}
	_, _ = b.session.ChannelMessageSendEmbed(channel.ID, embed)
}

func isSnowflake(s string) bool {
	if len(s) < 15 || len(s) > 21 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
