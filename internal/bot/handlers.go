package bot

import (
	"github.com/bwmarrin/discordgo"
)

func (b *Bot) onInteractionCreate(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	switch interaction.Type {
	case discordgo.InteractionApplicationCommand:
		b.dispatchCommand(session, interaction)
	case discordgo.InteractionMessageComponent:
		control, _, ok := ParseControl(interaction.MessageComponentData().CustomID)
		if !ok {
			return
		}
		b.handleBanListComponent(session, interaction, control)
	case discordgo.InteractionModalSubmit:
		control, arg, ok := ParseControl(interaction.ModalSubmitData().CustomID)
		if !ok || control != ControlModal {
			return
		}
		b.handleTempBanModal(session, interaction, arg)
	}
}

func (b *Bot) dispatchCommand(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	switch interaction.ApplicationCommandData().Name {
	case "banlist":
		b.handleBanList(session, interaction)
	case "ban":
		b.handleBan(session, interaction)
	case "kick":
		b.handleKick(session, interaction)
	case "timeout":
		b.handleTimeout(session, interaction)
	case "untimeout":
		b.handleUntimeout(session, interaction)
	case "unban":
		b.handleUnbanCommand(session, interaction)
	case "warn":
		b.handleWarn(session, interaction)
	case "unwarn":
		b.handleUnwarn(session, interaction)
	case "clear":
		b.handleClear(session, interaction)
	case "slowmode":
		b.handleSlowmode(session, interaction)
	case "userinfo":
		b.handleUserInfo(session, interaction)
	case "guardian":
		b.handleGuardian(session, interaction)
	case "tempchannel":
		b.handleTempChannel(session, interaction)
	case "rps":
		b.handleRPS(session, interaction)
	case "guess":
		b.handleGuess(session, interaction)
	case "say":
		b.handleSay(session, interaction)
	case "score":
		b.handleScore(session, interaction)
	case "leaderboard":
		b.handleLeaderboard(session, interaction)
	case "ping":
		b.handlePing(session, interaction)
	case "status":
		b.handleStatus(session, interaction)
	case "diagnostic":
		b.handleDiagnostic(session, interaction)
	case "invite":
		b.handleInvite(session, interaction)
	case "updates":
		b.handleUpdates(session, interaction)
	}
}
