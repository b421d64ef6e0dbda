package bot

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/TifouDragon/Slimboy-Bot/internal/duration"
	"github.com/TifouDragon/Slimboy-Bot/internal/storage"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

func (b *Bot) tempChannelBounds() (min, max time.Duration) {
	return time.Duration(b.cfg.TempChannels.MinDurationMinutes) * time.Minute,
		time.Duration(b.cfg.TempChannels.MaxDurationMinutes) * time.Minute
}

func (b *Bot) handleTempChannel(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	lang, ok := b.moderationGate(session, interaction, discordgo.PermissionManageChannels, "")
	if !ok {
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
	case "create":
		b.createTempChannel(session, interaction, lang, subOpts)
	case "list":
		b.listTempChannels(session, interaction, lang)
	case "extend":
		b.extendTempChannel(session, interaction, lang, subOpts)
	case "delete":
		b.deleteTempChannel(session, interaction, lang, subOpts)
	}
}

func (b *Bot) createTempChannel(session *discordgo.Session, interaction *discordgo.InteractionCreate, lang string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	name := strings.TrimSpace(opts["name"].StringValue())
	if name == "" || len(name) > 100 {
		b.respond(session, interaction, b.t(lang, "error_channel_name"), true)
		return
	}

	min, max := b.tempChannelBounds()
	lifetime, err := duration.ParseWithin(opts["duration"].StringValue(), min, max)
	if err != nil {
		b.respond(session, interaction, b.t(lang, "error_duration_bounds"), true)
		return
	}

	kind := "text"
	if opt, ok := opts["kind"]; ok {
		kind = opt.StringValue()
	}
	channelType := discordgo.ChannelTypeGuildText
	if kind == "voice" {
		channelType = discordgo.ChannelTypeGuildVoice
	}

	channel, err := session.GuildChannelCreate(interaction.GuildID, name, channelType)
	if err != nil {
		b.reportModerationError(session, interaction, lang, "tempchannel", err)
		return
	}

	now := time.Now().UTC()
	expiresAt := now.Add(lifetime)
	err = b.stores.TempChannels.Upsert(channel.ID, storage.TempChannel{
		GuildID:   interaction.GuildID,
		Name:      name,
		Kind:      kind,
		CreatedBy: invokerID(interaction),
		CreatedAt: now,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		b.logger.Warn("temp channel persist failed", zap.String("channel", channel.ID), zap.Error(err))
	}

	embed := b.commandEmbed(
		b.t(lang, "tempchannel_title"),
		fmt.Sprintf(b.t(lang, "tempchannel_created"), name),
		b.cfg.EmbedColors.Success,
		[]*discordgo.MessageEmbedField{
			{Name: b.t(lang, "field_channel"), Value: "<#" + channel.ID + ">", Inline: true},
			{Name: b.t(lang, "field_kind"), Value: kind, Inline: true},
			{Name: b.t(lang, "field_expires"), Value: fmt.Sprintf("<t:%d:F>", expiresAt.Unix()), Inline: true},
		},
	)
	b.respondEmbed(session, interaction, embed, false)
}

func (b *Bot) listTempChannels(session *discordgo.Session, interaction *discordgo.InteractionCreate, lang string) {
	tracked := b.stores.TempChannels.ForGuild(interaction.GuildID)
	if len(tracked) == 0 {
		b.respond(session, interaction, b.t(lang, "tempchannel_list_empty"), true)
		return
	}

	ids := make([]string, 0, len(tracked))
	for id := range tracked {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return tracked[ids[i]].ExpiresAt.Before(tracked[ids[j]].ExpiresAt)
	})

	var lines []string
	for _, id := range ids {
		tc := tracked[id]
		lines = append(lines, fmt.Sprintf("<#%s> (%s) <t:%d:R>", id, tc.Kind, tc.ExpiresAt.Unix()))
	}
	embed := b.commandEmbed(
		b.t(lang, "tempchannel_list_title"),
		strings.Join(lines, "\n"),
		b.cfg.EmbedColors.Info,
		nil,
	)
	b.respondEmbed(session, interaction, embed, true)
}

func (b *Bot) extendTempChannel(session *discordgo.Session, interaction *discordgo.InteractionCreate, lang string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	channel := opts["channel"].ChannelValue(session)
	if channel == nil {
		b.respond(session, interaction, b.t(lang, "error_not_found"), true)
		return
	}
	tc, tracked := b.stores.TempChannels.Get(channel.ID)
	if !tracked || tc.GuildID != interaction.GuildID {
		b.respond(session, interaction, b.t(lang, "tempchannel_not_tracked"), true)
		return
	}

	min, max := b.tempChannelBounds()
	extra, err := duration.ParseWithin(opts["duration"].StringValue(), min, max)
	if err != nil {
		b.respond(session, interaction, b.t(lang, "error_duration_bounds"), true)
		return
	}

	tc.ExpiresAt = tc.ExpiresAt.Add(extra)
	if err := b.stores.TempChannels.Upsert(channel.ID, tc); err != nil {
		b.logger.Warn("temp channel persist failed", zap.String("channel", channel.ID), zap.Error(err))
		b.respond(session, interaction, b.t(lang, "error_failed"), true)
		return
	}

	embed := b.commandEmbed(
		b.t(lang, "tempchannel_title"),
		fmt.Sprintf(b.t(lang, "tempchannel_extended"), tc.Name),
		b.cfg.EmbedColors.Success,
		[]*discordgo.MessageEmbedField{
			{Name: b.t(lang, "field_channel"), Value: "<#" + channel.ID + ">", Inline: true},
			{Name: b.t(lang, "field_expires"), Value: fmt.Sprintf("<t:%d:F>", tc.ExpiresAt.Unix()), Inline: true},
		},
	)
	b.respondEmbed(session, interaction, embed, false)
}

func (b *Bot) deleteTempChannel(session *discordgo.Session, interaction *discordgo.InteractionCreate, lang string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	channel := opts["channel"].ChannelValue(session)
	if channel == nil {
		b.respond(session, interaction, b.t(lang, "error_not_found"), true)
		return
	}
	tc, tracked := b.stores.TempChannels.Get(channel.ID)
	if !tracked || tc.GuildID != interaction.GuildID {
		b.respond(session, interaction, b.t(lang, "tempchannel_not_tracked"), true)
		return
	}

	if _, err := session.ChannelDelete(channel.ID); err != nil && !isNotFound(err) {
		b.reportModerationError(session, interaction, lang, "tempchannel delete", err)
		return
	}
	if err := b.stores.TempChannels.Remove(channel.ID); err != nil {
		b.logger.Warn("temp channel untrack failed", zap.String("channel", channel.ID), zap.Error(err))
	}

	embed := b.commandEmbed(
		b.t(lang, "tempchannel_title"),
		fmt.Sprintf(b.t(lang, "tempchannel_deleted"), tc.Name),
		b.cfg.EmbedColors.Info,
		nil,
	)
	b.respondEmbed(session, interaction, embed, false)
}

// startTempChannelCleanup deletes expired channels on a fixed interval. The
// loop stops when the bot shuts down.
func (b *Bot) startTempChannelCleanup() {
	interval := time.Duration(b.cfg.TempChannels.CleanupIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-b.stop:
				return
			case <-ticker.C:
				b.cleanupTempChannels()
			}
		}
	}()
}

func (b *Bot) cleanupTempChannels() {
	for _, channelID := range b.stores.TempChannels.Expired(time.Now()) {
		_, err := b.session.ChannelDelete(channelID)
		if err != nil && !isNotFound(err) {
			b.logger.Warn("temp channel delete failed", zap.String("channel", channelID), zap.Error(err))
			continue
		}
		// Already-deleted channels are dropped from the store as well.
		if err := b.stores.TempChannels.Remove(channelID); err != nil {
			b.logger.Warn("temp channel untrack failed", zap.String("channel", channelID), zap.Error(err))
		}
	}
}
