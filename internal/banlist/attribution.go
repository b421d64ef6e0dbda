package banlist

import "strings"

// botIndicators maps lowercase reason substrings to the moderation bot that
// most likely wrote them. Order matters: the first match wins.
var botIndicators = []struct {
	indicator string
	name      string
}{
	{"dyno", "Dyno"},
	{"carl-bot", "Carl-bot"},
	{"carl bot", "Carl-bot"},
	{"mee6", "MEE6"},
	{"ticket tool", "Ticket Tool"},
	{"modmail", "ModMail"},
	{"automod", "AutoMod"},
	{"auto-mod", "AutoMod"},
	{"security", "Security Bot"},
	{"raid", "Anti-Raid Bot"},
	{"anti-raid", "Anti-Raid Bot"},
	{"pancake", "Pancake"},
	{"groovy", "Groovy"},
	{"rythm", "Rythm"},
	{"fredboat", "FredBoat"},
	{"pokecord", "Pokecord"},
	{"mudae", "Mudae"},
	{"dank memer", "Dank Memer"},
	{"tatsu", "Tatsu"},
	{"arcane", "Arcane"},
	{"epic rpg", "Epic RPG"},
	{"idle miner", "Idle Miner"},
	{"reaction", "Reaction Role Bot"},
}

// AttributeBot guesses which automated system wrote a ban reason. It is a
// fallback for entries with no audit-log attribution: a known bot name in the
// reason wins, a bare "bot" mention yields a generic label, anything else
// returns the empty string.
func AttributeBot(reason string) string {
	if strings.TrimSpace(reason) == "" {
		return ""
	}
	lower := strings.ToLower(reason)
	for _, bi := range botIndicators {
		if strings.Contains(lower, bi.indicator) {
			return bi.name
		}
	}
	if strings.Contains(lower, "bot") {
		return "Un bot"
	}
	return ""
}
