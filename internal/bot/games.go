package bot

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/TifouDragon/Slimboy-Bot/internal/banlist"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

var rpsChoices = []string{"rock", "paper", "scissors"}

// rpsBeats maps each choice to the one it defeats.
var rpsBeats = map[string]string{
	"rock":     "scissors",
	"paper":    "rock",
	"scissors": "paper",
}

var rpsEmoji = map[string]string{
	"rock":     "🪨",
	"paper":    "📄",
	"scissors": "✂️",
}

func rpsOutcome(player, bot string) string {
	switch {
	case player == bot:
		return "draw"
	case rpsBeats[player] == bot:
		return "win"
	default:
		return "loss"
	}
}

func (b *Bot) handleRPS(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	lang := b.cfg.DefaultLanguage
	if interaction.GuildID == "" {
		b.respond(session, interaction, b.t(lang, "error_guild_only"), true)
		return
	}

	player := commandOptions(interaction)["choice"].StringValue()
	botChoice := rpsChoices[rand.Intn(len(rpsChoices))]
	outcome := rpsOutcome(player, botChoice)

	points := 0
	resultKey := "rps_result_draw"
	color := b.cfg.EmbedColors.Info
	switch outcome {
	case "win":
		points = 3
		resultKey = "rps_result_win"
		color = b.cfg.EmbedColors.Success
	case "loss":
		resultKey = "rps_result_loss"
		color = b.cfg.EmbedColors.Error
	case "draw":
		points = 1
	}

	score, err := b.stores.Scores.Record(interaction.GuildID, invokerID(interaction), outcome, points)
	if err != nil {
		b.logger.Warn("score persist failed", zap.Error(err))
	}

	embed := b.commandEmbed(
		b.t(lang, "rps_title"),
		b.t(lang, resultKey),
		color,
		[]*discordgo.MessageEmbedField{
			{Name: b.t(lang, "field_your_choice"), Value: rpsEmoji[player] + " " + player, Inline: true},
			{Name: b.t(lang, "field_bot_choice"), Value: rpsEmoji[botChoice] + " " + botChoice, Inline: true},
			{Name: b.t(lang, "field_points"), Value: fmt.Sprintf("%d", score.Points), Inline: true},
		},
	)
	b.respondEmbed(session, interaction, embed, false)
}

// guessOutcome scores one guess-the-number round: an exact hit earns more
// than an RPS win, anything else is a plain loss.
func guessOutcome(guess, drawn int) (string, int) {
	if guess == drawn {
		return "win", 5
	}
	return "loss", 0
}

func (b *Bot) handleGuess(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	lang := b.cfg.DefaultLanguage
	if interaction.GuildID == "" {
		b.respond(session, interaction, b.t(lang, "error_guild_only"), true)
		return
	}

	guess := int(commandOptions(interaction)["number"].IntValue())
	if guess < 1 || guess > 10 {
		b.respond(session, interaction, b.t(lang, "error_guess_range"), true)
		return
	}

	drawn := rand.Intn(10) + 1
	outcome, points := guessOutcome(guess, drawn)
	resultKey := "guess_loss"
	color := b.cfg.EmbedColors.Error
	if outcome == "win" {
		resultKey = "guess_win"
		color = b.cfg.EmbedColors.Success
	}

	score, err := b.stores.Scores.Record(interaction.GuildID, invokerID(interaction), outcome, points)
	if err != nil {
		b.logger.Warn("score persist failed", zap.Error(err))
	}

	embed := b.commandEmbed(
		b.t(lang, "guess_title"),
		fmt.Sprintf(b.t(lang, resultKey), drawn),
		color,
		[]*discordgo.MessageEmbedField{
			{Name: b.t(lang, "field_your_choice"), Value: fmt.Sprintf("%d", guess), Inline: true},
			{Name: b.t(lang, "field_points"), Value: fmt.Sprintf("%d", score.Points), Inline: true},
		},
	)
	b.respondEmbed(session, interaction, embed, false)
}

func (b *Bot) handleScore(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	lang := b.cfg.DefaultLanguage
	if interaction.GuildID == "" {
		b.respond(session, interaction, b.t(lang, "error_guild_only"), true)
		return
	}

	var user *discordgo.User
	if opt, ok := commandOptions(interaction)["user"]; ok {
		user = opt.UserValue(session)
	} else if interaction.Member != nil {
		user = interaction.Member.User
	}
	if user == nil {
		b.respond(session, interaction, b.t(lang, "error_not_found"), true)
		return
	}

	score := b.stores.Scores.Score(interaction.GuildID, user.ID)
	embed := b.commandEmbed(
		b.t(lang, "score_title"),
		fmt.Sprintf(b.t(lang, "score_desc"), banlist.DisplayName(user)),
		b.cfg.EmbedColors.Info,
		[]*discordgo.MessageEmbedField{
			{Name: b.t(lang, "field_points"), Value: fmt.Sprintf("%d", score.Points), Inline: true},
			{Name: b.t(lang, "field_wins"), Value: fmt.Sprintf("%d", score.Wins), Inline: true},
			{Name: b.t(lang, "field_losses"), Value: fmt.Sprintf("%d", score.Losses), Inline: true},
			{Name: b.t(lang, "field_draws"), Value: fmt.Sprintf("%d", score.Draws), Inline: true},
		},
	)
	b.respondEmbed(session, interaction, embed, false)
}

func (b *Bot) handleLeaderboard(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	lang := b.cfg.DefaultLanguage
	if interaction.GuildID == "" {
		b.respond(session, interaction, b.t(lang, "error_guild_only"), true)
		return
	}

	entries := b.stores.Scores.Leaderboard(interaction.GuildID, 10)
	if len(entries) == 0 {
		b.respond(session, interaction, b.t(lang, "leaderboard_empty"), true)
		return
	}

	medals := []string{"🥇", "🥈", "🥉"}
	var lines []string
	for i, entry := range entries {
		rank := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			rank = medals[i]
		}
		lines = append(lines, fmt.Sprintf("%s <@%s> — %d pts (%dW/%dL/%dD)",
			rank, entry.UserID, entry.Score.Points, entry.Score.Wins, entry.Score.Losses, entry.Score.Draws))
	}

	embed := b.commandEmbed(
		b.t(lang, "leaderboard_title"),
		strings.Join(lines, "\n"),
		b.cfg.EmbedColors.Info,
		nil,
	)
	b.respondEmbed(session, interaction, embed, false)
}
