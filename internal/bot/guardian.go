package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/TifouDragon/Slimboy-Bot/internal/banlist"
	"github.com/TifouDragon/Slimboy-Bot/internal/storage"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

func (b *Bot) handleGuardian(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	lang := b.cfg.DefaultLanguage
	if interaction.GuildID == "" {
		b.respond(session, interaction, b.t(lang, "error_guild_only"), true)
		return
	}
	actorID := invokerID(interaction)
	if !hasPermission(interaction, discordgo.PermissionAdministrator) && !b.isGuildOwner(interaction.GuildID, actorID) {
		b.respond(session, interaction, b.t(lang, "error_permission_user"), true)
		return
	}

	data := interaction.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}
	sub := data.Options[0]
	subOpts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	for _, opt := range sub.Options {
		subOpts[opt.Name] = opt
	}

	switch sub.Name {
	case "protect":
		user := subOpts["user"].UserValue(session)
		reason := ""
		if opt, ok := subOpts["reason"]; ok {
			reason = strings.TrimSpace(opt.StringValue())
		}
		err := b.stores.Guardian.Protect(interaction.GuildID, user.ID, storage.Protection{
			SetBy:  actorID,
			Reason: reason,
			SetAt:  time.Now().UTC(),
		})
		if err != nil {
			b.logger.Warn("guardian protect failed", zap.Error(err))
			b.respond(session, interaction, b.t(lang, "error_failed"), true)
			return
		}
		fields := []*discordgo.MessageEmbedField{
			{Name: b.t(lang, "field_user"), Value: "<@" + user.ID + ">", Inline: true},
			{Name: b.t(lang, "field_protected_by"), Value: "<@" + actorID + ">", Inline: true},
		}
		if reason != "" {
			fields = append(fields, &discordgo.MessageEmbedField{Name: b.t(lang, "field_reason"), Value: reason, Inline: false})
		}
		embed := b.commandEmbed(
			b.t(lang, "guardian_title"),
			fmt.Sprintf(b.t(lang, "guardian_protected"), banlist.DisplayName(user)),
			b.cfg.EmbedColors.Success,
			fields,
		)
		b.respondEmbed(session, interaction, embed, false)

	case "unprotect":
		user := subOpts["user"].UserValue(session)
		removed, err := b.stores.Guardian.Unprotect(interaction.GuildID, user.ID)
		if err != nil {
			b.logger.Warn("guardian unprotect failed", zap.Error(err))
			b.respond(session, interaction, b.t(lang, "error_failed"), true)
			return
		}
		if !removed {
			b.respond(session, interaction, b.t(lang, "guardian_not_protected"), true)
			return
		}
		embed := b.commandEmbed(
			b.t(lang, "guardian_title"),
			fmt.Sprintf(b.t(lang, "guardian_unprotected"), banlist.DisplayName(user)),
			b.cfg.EmbedColors.Info,
			nil,
		)
		b.respondEmbed(session, interaction, embed, false)

	case "list":
		state := b.stores.Guardian.Guild(interaction.GuildID)
		users := b.t(lang, "value_none")
		if len(state.ProtectedUsers) > 0 {
			var lines []string
			for userID, p := range state.ProtectedUsers {
				line := fmt.Sprintf("<@%s> — <@%s>", userID, p.SetBy)
				if p.Reason != "" {
					line += " (" + p.Reason + ")"
				}
				lines = append(lines, line)
			}
			users = strings.Join(lines, "\n")
		}
		roles := b.t(lang, "value_none")
		if len(state.ExceptionRoles) > 0 {
			var lines []string
			for _, roleID := range state.ExceptionRoles {
				lines = append(lines, "<@&"+roleID+">")
			}
			roles = strings.Join(lines, "\n")
		}
		embed := b.commandEmbed(
			b.t(lang, "guardian_list_title"),
			b.t(lang, "guardian_list_desc"),
			b.cfg.EmbedColors.Info,
			[]*discordgo.MessageEmbedField{
				{Name: b.t(lang, "field_protected_users"), Value: users, Inline: false},
				{Name: b.t(lang, "field_exception_roles"), Value: roles, Inline: false},
			},
		)
		b.respondEmbed(session, interaction, embed, true)

	case "exception_add":
		role := subOpts["role"].RoleValue(session, interaction.GuildID)
		added, err := b.stores.Guardian.AddExceptionRole(interaction.GuildID, role.ID)
		if err != nil {
			b.logger.Warn("guardian exception add failed", zap.Error(err))
			b.respond(session, interaction, b.t(lang, "error_failed"), true)
			return
		}
		if !added {
			b.respond(session, interaction, b.t(lang, "guardian_exception_exists"), true)
			return
		}
		embed := b.commandEmbed(
			b.t(lang, "guardian_title"),
			fmt.Sprintf(b.t(lang, "guardian_exception_added"), role.Name),
			b.cfg.EmbedColors.Success,
			nil,
		)
		b.respondEmbed(session, interaction, embed, false)

	case "exception_remove":
		role := subOpts["role"].RoleValue(session, interaction.GuildID)
		removed, err := b.stores.Guardian.RemoveExceptionRole(interaction.GuildID, role.ID)
		if err != nil {
			b.logger.Warn("guardian exception remove failed", zap.Error(err))
			b.respond(session, interaction, b.t(lang, "error_failed"), true)
			return
		}
		if !removed {
			b.respond(session, interaction, b.t(lang, "guardian_exception_missing"), true)
			return
		}
		embed := b.commandEmbed(
			b.t(lang, "guardian_title"),
			fmt.Sprintf(b.t(lang, "guardian_exception_removed"), role.Name),
			b.cfg.EmbedColors.Info,
			nil,
		)
		b.respondEmbed(session, interaction, embed, false)
	}
}
