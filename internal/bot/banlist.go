package bot

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/TifouDragon/Slimboy-Bot/internal/banlist"
	"github.com/TifouDragon/Slimboy-Bot/internal/duration"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// banView is the per-message state of one browse session. The entry list and
// audit map are fetched once and never refreshed; navigation only moves the
// pager over the cached data. Component handlers run on separate goroutines,
// so pager and selected are only touched through the mu-guarded accessors.
type banView struct {
	guildID    string
	channelID  string
	messageID  string
	invokerID  string
	guildName  string
	entries    []banlist.Entry
	audit      map[string]banlist.Attribution
	searchTerm string
	createdAt  time.Time

	mu       sync.Mutex
	pager    banlist.Pager
	selected *banlist.Entry

	timer  *time.Timer
	closed bool
}

func (v *banView) currentPager() banlist.Pager {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pager
}

func (v *banView) stepPrev() banlist.Pager {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pager = v.pager.Prev()
	return v.pager
}

func (v *banView) stepNext() banlist.Pager {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pager = v.pager.Next()
	return v.pager
}

func (v *banView) selectEntry(entry *banlist.Entry) {
	v.mu.Lock()
	v.selected = entry
	v.mu.Unlock()
}

func (v *banView) selection() *banlist.Entry {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selected
}

// gateView decides whether an actor may drive a view: the view must still be
// live and the actor must be the original invoker. It returns the message key
// of the refusal and performs no state change itself.
func gateView(view *banView, actorID string) (string, bool) {
	if view == nil {
		return "view_expired", false
	}
	if actorID != view.invokerID {
		return "denial_not_invoker", false
	}
	return "", true
}

func (b *Bot) handleBanList(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	lang := b.cfg.DefaultLanguage
	if interaction.GuildID == "" {
		b.respond(session, interaction, b.t(lang, "error_guild_only"), true)
		return
	}

	userID := invokerID(interaction)
	if !hasPermission(interaction, discordgo.PermissionBanMembers) && !b.isGuildOwner(interaction.GuildID, userID) {
		b.respond(session, interaction, b.t(lang, "error_permission_user"), true)
		return
	}

	page := 1
	search := ""
	for _, opt := range interaction.ApplicationCommandData().Options {
		switch opt.Name {
		case "page":
			page = int(opt.IntValue())
		case "search":
			search = opt.StringValue()
		}
	}

	// Fetching every ban plus the audit scan can take a while on large
	// guilds, so acknowledge first.
	if err := session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		b.logger.Warn("banlist defer failed", zap.Error(err))
		return
	}

	entries, err := banlist.FetchBans(session, interaction.GuildID)
	if err != nil {
		b.logger.Warn("ban fetch failed", zap.String("guild", interaction.GuildID), zap.Error(err))
		msg := b.t(lang, "error_failed")
		if isForbidden(err) {
			msg = b.t(lang, "error_permission_bot")
		}
		_, _ = session.FollowupMessageCreate(interaction.Interaction, true, &discordgo.WebhookParams{
			Content: msg,
			Flags:   discordgo.MessageFlagsEphemeral,
		})
		return
	}

	audit, err := banlist.FetchAttributions(session, interaction.GuildID)
	if err != nil {
		b.logger.Warn("audit fetch failed", zap.String("guild", interaction.GuildID), zap.Error(err))
		audit = map[string]banlist.Attribution{}
	}

	filtered := banlist.Filter(entries, search)
	if len(filtered) == 0 {
		msg := b.t(lang, "banlist_empty")
		if strings.TrimSpace(search) != "" {
			msg = fmt.Sprintf(b.t(lang, "banlist_no_results"), strings.TrimSpace(search))
		}
		_, _ = session.FollowupMessageCreate(interaction.Interaction, true, &discordgo.WebhookParams{
			Content: msg,
			Flags:   discordgo.MessageFlagsEphemeral,
		})
		return
	}

	view := &banView{
		guildID:    interaction.GuildID,
		channelID:  interaction.ChannelID,
		invokerID:  userID,
		guildName:  b.guildName(interaction.GuildID),
		entries:    filtered,
		audit:      audit,
		pager:      banlist.NewPager(len(filtered), b.cfg.Pagination.BansPerPage, page),
		searchTerm: strings.TrimSpace(search),
		createdAt:  time.Now(),
	}

	embed := banlist.Render(view.entries, view.pager, view.guildName, view.audit, view.searchTerm, b.cfg.EmbedColors.Error, view.createdAt)
	msg, err := session.FollowupMessageCreate(interaction.Interaction, true, &discordgo.WebhookParams{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: b.navComponents(view.pager),
	})
	if err != nil || msg == nil {
		b.logger.Warn("banlist followup failed", zap.Error(err))
		return
	}

	view.messageID = msg.ID
	b.viewsMu.Lock()
	b.views[msg.ID] = view
	b.viewsMu.Unlock()
	b.armViewTimer(view)
}

// navComponents builds the navigation row. The page indicator is always
// disabled; prev/next reflect the bounds and a single page disables both.
func (b *Bot) navComponents(pg banlist.Pager) []discordgo.MessageComponent {
	pageLabel := fmt.Sprintf("Page %d/%d", pg.Page, pg.TotalPages())
	if pg.SinglePage() {
		pageLabel = "Page Unique"
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "◀️ Précédent",
				Style:    discordgo.SecondaryButton,
				CustomID: ControlPrev.customID(),
				Disabled: !pg.HasPrev(),
			},
			discordgo.Button{
				Label:    pageLabel,
				Style:    discordgo.PrimaryButton,
				CustomID: ControlPage.customID(),
				Disabled: true,
			},
			discordgo.Button{
				Label:    "Suivant ▶️",
				Style:    discordgo.SecondaryButton,
				CustomID: ControlNext.customID(),
				Disabled: !pg.HasNext(),
			},
			discordgo.Button{
				Label:    "⚙️ Gérer",
				Style:    discordgo.SuccessButton,
				CustomID: ControlManage.customID(),
			},
			discordgo.Button{
				Label:    "🗑️ Fermer",
				Style:    discordgo.DangerButton,
				CustomID: ControlClose.customID(),
			},
		}},
	}
}

// armViewTimer (re)starts the inactivity countdown. When it fires the message
// is deleted outright; a vanished message is not an error.
func (b *Bot) armViewTimer(view *banView) {
	timeout := time.Duration(b.cfg.Pagination.ViewTimeoutSeconds) * time.Second

	b.viewsMu.Lock()
	defer b.viewsMu.Unlock()
	if view.closed {
		return
	}
	if view.timer != nil {
		view.timer.Stop()
	}
	view.timer = time.AfterFunc(timeout, func() {
		b.expireView(view.messageID)
	})
}

func (b *Bot) expireView(messageID string) {
	b.viewsMu.Lock()
	view, ok := b.views[messageID]
	if ok {
		view.closed = true
		delete(b.views, messageID)
	}
	b.viewsMu.Unlock()
	if !ok {
		return
	}
	if err := b.session.ChannelMessageDelete(view.channelID, view.messageID); err != nil {
		b.logger.Debug("banlist expiry delete failed", zap.Error(err))
	}
}

// dropView unregisters a view without deleting its message.
func (b *Bot) dropView(messageID string) {
	b.viewsMu.Lock()
	defer b.viewsMu.Unlock()
	if view, ok := b.views[messageID]; ok {
		view.closed = true
		if view.timer != nil {
			view.timer.Stop()
		}
		delete(b.views, messageID)
	}
}

// scheduleViewDeletion removes the view and deletes its message after the
// configured delay, swallowing "already gone" failures.
func (b *Bot) scheduleViewDeletion(view *banView) {
	b.dropView(view.messageID)
	delay := time.Duration(b.cfg.Pagination.DeleteDelaySeconds) * time.Second
	time.AfterFunc(delay, func() {
		if err := b.session.ChannelMessageDelete(view.channelID, view.messageID); err != nil {
			b.logger.Debug("banlist delayed delete failed", zap.Error(err))
		}
	})
}

func (b *Bot) lookupView(messageID string) *banView {
	b.viewsMu.Lock()
	defer b.viewsMu.Unlock()
	view := b.views[messageID]
	if view == nil || view.closed {
		return nil
	}
	return view
}

func (b *Bot) handleBanListComponent(session *discordgo.Session, interaction *discordgo.InteractionCreate, control Control) {
	lang := b.cfg.DefaultLanguage
	if interaction.Message == nil {
		return
	}
	view := b.lookupView(interaction.Message.ID)
	if key, ok := gateView(view, invokerID(interaction)); !ok {
		b.respond(session, interaction, b.t(lang, key), true)
		return
	}

	switch control {
	case ControlPrev:
		b.redrawList(session, interaction, view, view.stepPrev())
	case ControlNext:
		b.redrawList(session, interaction, view, view.stepNext())
	case ControlPage:
		// Disabled indicator; nothing to do.
	case ControlManage:
		b.openManagement(session, interaction, view)
	case ControlClose:
		b.closeView(session, interaction, view)
	case ControlSelect:
		b.handleUserSelection(session, interaction, view)
	case ControlUnban:
		b.handleUnban(session, interaction, view)
	case ControlTempBan:
		b.openTempBanModal(session, interaction, view)
	case ControlPermBan:
		b.handleConfirmPermanent(session, interaction, view)
	case ControlCancel:
		b.handleCancel(session, interaction, view)
	}
}

func (b *Bot) redrawList(session *discordgo.Session, interaction *discordgo.InteractionCreate, view *banView, pg banlist.Pager) {
	embed := banlist.Render(view.entries, pg, view.guildName, view.audit, view.searchTerm, b.cfg.EmbedColors.Error, view.createdAt)
	b.updateMessage(session, interaction, embed, b.navComponents(pg))
	b.armViewTimer(view)
}

func (b *Bot) openManagement(session *discordgo.Session, interaction *discordgo.InteractionCreate, view *banView) {
	lang := b.cfg.DefaultLanguage
	// The ban permission is checked again on entry: it may have been
	// revoked since the list was opened.
	if !hasPermission(interaction, discordgo.PermissionBanMembers) && !b.isGuildOwner(view.guildID, view.invokerID) {
		b.respond(session, interaction, b.t(lang, "error_permission_user"), true)
		return
	}

	start, end := view.currentPager().Bounds()
	candidates := view.entries[start:end]
	if len(candidates) == 0 {
		b.respond(session, interaction, b.t(lang, "manage_empty_page"), true)
		return
	}

	// Selection menus cap at 25 options.
	if len(candidates) > 25 {
		candidates = candidates[:25]
	}
	options := make([]discordgo.SelectMenuOption, 0, len(candidates))
	for _, entry := range candidates {
		options = append(options, discordgo.SelectMenuOption{
			Label:       banlist.DisplayName(entry.User),
			Value:       entry.User.ID,
			Description: "ID: " + entry.User.ID,
		})
	}

	embed := b.commandEmbed(
		"⚙️ Gestion des Bannis",
		"Sélectionnez un utilisateur pour le débannir, appliquer un ban temporaire ou confirmer le ban définitif.",
		b.cfg.EmbedColors.Info,
		[]*discordgo.MessageEmbedField{{
			Name:   "Utilisateurs sur cette page",
			Value:  fmt.Sprintf("%d utilisateur(s) disponible(s)", len(candidates)),
			Inline: false,
		}},
	)
	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    ControlSelect.customID(),
				Placeholder: "Sélectionnez un utilisateur banni...",
				Options:     options,
			},
		}},
	}
	b.updateMessage(session, interaction, embed, components)
	b.armViewTimer(view)
}

func (b *Bot) handleUserSelection(session *discordgo.Session, interaction *discordgo.InteractionCreate, view *banView) {
	values := interaction.MessageComponentData().Values
	if len(values) == 0 {
		return
	}
	var selected *banlist.Entry
	for i := range view.entries {
		if view.entries[i].User.ID == values[0] {
			selected = &view.entries[i]
			break
		}
	}
	if selected == nil {
		b.respond(session, interaction, b.t(b.cfg.DefaultLanguage, "error_not_found"), true)
		return
	}
	view.selectEntry(selected)

	reason := selected.Reason
	if strings.TrimSpace(reason) == "" {
		reason = "Aucune raison"
	}
	embed := b.commandEmbed(
		"⚙️ Gestion du Bannissement",
		fmt.Sprintf("Que souhaitez-vous faire avec **%s** ?", banlist.DisplayName(selected.User)),
		b.cfg.EmbedColors.Info,
		[]*discordgo.MessageEmbedField{
			{Name: "ID", Value: "`" + selected.User.ID + "`", Inline: true},
			{Name: "Raison actuelle", Value: reason, Inline: false},
		},
	)
	embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: selected.User.AvatarURL("")}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "🔓 Débannir", Style: discordgo.SuccessButton, CustomID: ControlUnban.customID()},
			discordgo.Button{Label: "⏰ Ban Temporaire", Style: discordgo.SecondaryButton, CustomID: ControlTempBan.customID()},
			discordgo.Button{Label: "🔒 Ban Définitif", Style: discordgo.DangerButton, CustomID: ControlPermBan.customID()},
			discordgo.Button{Label: "❌ Annuler", Style: discordgo.SecondaryButton, CustomID: ControlCancel.customID()},
		}},
	}
	b.updateMessage(session, interaction, embed, components)
	b.armViewTimer(view)
}

func (b *Bot) handleUnban(session *discordgo.Session, interaction *discordgo.InteractionCreate, view *banView) {
	lang := b.cfg.DefaultLanguage
	target := view.selection()
	if target == nil {
		b.respond(session, interaction, b.t(lang, "error_not_found"), true)
		return
	}

	if err := session.GuildBanDelete(view.guildID, target.User.ID); err != nil {
		msg := b.t(lang, "error_failed")
		switch {
		case isNotFound(err):
			msg = b.t(lang, "error_not_banned")
		case isForbidden(err):
			msg = b.t(lang, "error_permission_bot")
		}
		b.logger.Warn("unban failed", zap.String("user", target.User.ID), zap.Error(err))
		b.respond(session, interaction, msg, true)
		return
	}

	embed := b.commandEmbed(
		"✅ Utilisateur Débanni",
		fmt.Sprintf("**%s** a été débanni avec succès.", banlist.DisplayName(target.User)),
		b.cfg.EmbedColors.Success,
		[]*discordgo.MessageEmbedField{
			{Name: "Modérateur", Value: "<@" + view.invokerID + ">", Inline: true},
			{Name: "Date", Value: fmt.Sprintf("<t:%d:F>", time.Now().Unix()), Inline: true},
		},
	)
	b.updateMessage(session, interaction, embed, []discordgo.MessageComponent{})
	b.dropView(view.messageID)
}

func (b *Bot) openTempBanModal(session *discordgo.Session, interaction *discordgo.InteractionCreate, view *banView) {
	if view.selection() == nil {
		b.respond(session, interaction, b.t(b.cfg.DefaultLanguage, "error_not_found"), true)
		return
	}
	_ = session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: ControlModal.customID() + ":" + view.messageID,
			Title:    "⏰ Définir la Durée du Ban Temporaire",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "duration",
						Label:       "Durée du ban",
						Style:       discordgo.TextInputShort,
						Placeholder: "Exemples: 1h, 2d, 1w, 30m (m=minutes, h=heures, d=jours, w=semaines)",
						Required:    true,
						MaxLength:   10,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "reason",
						Label:       "Raison (optionnel)",
						Style:       discordgo.TextInputParagraph,
						Placeholder: "Raison du ban temporaire...",
						Required:    false,
						MaxLength:   200,
					},
				}},
			},
		},
	})
	b.armViewTimer(view)
}

func (b *Bot) handleTempBanModal(session *discordgo.Session, interaction *discordgo.InteractionCreate, messageID string) {
	lang := b.cfg.DefaultLanguage
	view := b.lookupView(messageID)
	if key, ok := gateView(view, invokerID(interaction)); !ok {
		b.respond(session, interaction, b.t(lang, key), true)
		return
	}
	target := view.selection()
	if target == nil {
		b.respond(session, interaction, b.t(lang, "error_not_found"), true)
		return
	}

	data := interaction.ModalSubmitData()
	durationInput, reasonInput := modalValues(data)

	// Reject bad input before touching the ban: no state changes on a
	// validation failure.
	parsed, err := duration.Parse(durationInput)
	if err != nil {
		b.respond(session, interaction, b.t(lang, "error_invalid_duration"), true)
		return
	}
	expiry := time.Now().Add(parsed)

	if err := session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}); err != nil {
		b.logger.Warn("tempban defer failed", zap.Error(err))
		return
	}

	// Unban-then-reban, two sequential calls. If the reban fails the user
	// ends up actually unbanned; that exposure is accepted rather than
	// compensated.
	if err := session.GuildBanDelete(view.guildID, target.User.ID, discordgo.WithAuditLogReason("Conversion en ban temporaire")); err != nil {
		b.logger.Warn("tempban unban step failed", zap.String("user", target.User.ID), zap.Error(err))
		b.followupEphemeral(session, interaction, b.t(lang, "error_failed"))
		return
	}

	reasonText := strings.TrimSpace(reasonInput)
	if reasonText == "" {
		reasonText = "Ban temporaire"
	}
	tempReason := fmt.Sprintf("%s (Expire le %s)", reasonText, expiry.Format("02/01/2006 15:04"))
	if err := session.GuildBanCreateWithReason(view.guildID, target.User.ID, tempReason, 0); err != nil {
		b.logger.Error("tempban reban step failed, user left unbanned",
			zap.String("user", target.User.ID), zap.Error(err))
		b.followupEphemeral(session, interaction, b.t(lang, "error_reban_failed"))
		return
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Durée", Value: strings.ToLower(strings.TrimSpace(durationInput)), Inline: true},
		{Name: "Expire le", Value: fmt.Sprintf("<t:%d:F>", expiry.Unix()), Inline: true},
		{Name: "Modérateur", Value: "<@" + view.invokerID + ">", Inline: true},
	}
	if strings.TrimSpace(reasonInput) != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Raison", Value: reasonInput, Inline: false})
	}
	embed := b.commandEmbed(
		"⏰ Ban Temporaire Appliqué",
		fmt.Sprintf("**%s** a été converti en ban temporaire.", banlist.DisplayName(target.User)),
		b.cfg.EmbedColors.Warning,
		fields,
	)
	embed.Footer = &discordgo.MessageEmbedFooter{Text: footerBrand + " • Note: Le déban automatique n'est pas inclus"}

	empty := []discordgo.MessageComponent{}
	_, err = session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    view.channelID,
		ID:         view.messageID,
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &empty,
	})
	if err != nil {
		b.logger.Warn("tempban confirmation edit failed", zap.Error(err))
	}
	b.dropView(view.messageID)
}

func (b *Bot) handleConfirmPermanent(session *discordgo.Session, interaction *discordgo.InteractionCreate, view *banView) {
	target := view.selection()
	if target == nil {
		b.respond(session, interaction, b.t(b.cfg.DefaultLanguage, "error_not_found"), true)
		return
	}
	embed := b.commandEmbed(
		"🔒 Ban Définitif Confirmé",
		fmt.Sprintf("**%s** reste banni définitivement.", banlist.DisplayName(target.User)),
		b.cfg.EmbedColors.Error,
		nil,
	)
	b.updateMessage(session, interaction, embed, []discordgo.MessageComponent{})
	b.dropView(view.messageID)
}

func (b *Bot) handleCancel(session *discordgo.Session, interaction *discordgo.InteractionCreate, view *banView) {
	embed := b.commandEmbed(
		"❌ Action Annulée",
		"Aucune modification n'a été apportée au bannissement.\n\n⏰ Ce message sera supprimé dans **1 minute**.",
		b.cfg.EmbedColors.Info,
		nil,
	)
	b.updateMessage(session, interaction, embed, []discordgo.MessageComponent{})
	b.scheduleViewDeletion(view)
}

func (b *Bot) closeView(session *discordgo.Session, interaction *discordgo.InteractionCreate, view *banView) {
	embed := b.commandEmbed(
		"📋 Liste des Bannis",
		"Liste fermée.\n\n⏰ Ce message sera supprimé dans **1 minute**.",
		b.cfg.EmbedColors.Info,
		nil,
	)
	embed.Footer = &discordgo.MessageEmbedFooter{Text: footerBrand + " • Suppression automatique dans 1 minute"}
	b.updateMessage(session, interaction, embed, []discordgo.MessageComponent{})
	b.scheduleViewDeletion(view)
}

func (b *Bot) followupEphemeral(session *discordgo.Session, interaction *discordgo.InteractionCreate, content string) {
	_, _ = session.FollowupMessageCreate(interaction.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

func modalValues(data discordgo.ModalSubmitInteractionData) (durationInput, reasonInput string) {
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, component := range actionsRow.Components {
			input, ok := component.(*discordgo.TextInput)
			if !ok {
				continue
			}
			switch input.CustomID {
			case "duration":
				durationInput = input.Value
			case "reason":
				reasonInput = input.Value
			}
		}
	}
	return durationInput, reasonInput
}
