package bot

import "github.com/bwmarrin/discordgo"

func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "banlist",
			Description: "Show the paginated ban list",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Affiche la liste paginée des membres bannis du serveur",
			},
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "page",
					Description: "Page to open first",
					DescriptionLocalizations: map[discordgo.Locale]string{
						discordgo.French: "Page à ouvrir en premier",
					},
					Required: false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "search",
					Description: "Filter by name or id",
					DescriptionLocalizations: map[discordgo.Locale]string{
						discordgo.French: "Filtrer par nom ou identifiant",
					},
					Required: false,
				},
			},
		},
		{
			Name:        "ban",
			Description: "Ban a member",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Bannir un membre",
			},
			Options: []*discordgo.ApplicationCommandOption{
				userOption("Member to ban", "Membre à bannir", true),
				reasonOption(),
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "delete_messages",
					Description: "Days of messages to delete (0-7)",
					DescriptionLocalizations: map[discordgo.Locale]string{
						discordgo.French: "Jours de messages à supprimer (0-7)",
					},
					Required: false,
				},
			},
		},
		{
			Name:        "kick",
			Description: "Kick a member",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Expulser un membre",
			},
			Options: []*discordgo.ApplicationCommandOption{
				userOption("Member to kick", "Membre à expulser", true),
				reasonOption(),
			},
		},
		{
			Name:        "timeout",
			Description: "Timeout a member",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Exclure temporairement un membre",
			},
			Options: []*discordgo.ApplicationCommandOption{
				userOption("Member to timeout", "Membre à exclure", true),
				durationOption("Duration (30m, 2h, 1d...)", "Durée (30m, 2h, 1d...)"),
				reasonOption(),
			},
		},
		{
			Name:        "untimeout",
			Description: "Remove a member's timeout",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Retirer l'exclusion d'un membre",
			},
			Options: []*discordgo.ApplicationCommandOption{
				userOption("Member to restore", "Membre à rétablir", true),
				reasonOption(),
			},
		},
		{
			Name:        "unban",
			Description: "Unban a user by id",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Débannir un utilisateur par identifiant",
			},
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "user_id",
					Description: "User id to unban",
					DescriptionLocalizations: map[discordgo.Locale]string{
						discordgo.French: "Identifiant de l'utilisateur à débannir",
					},
					Required: true,
				},
				reasonOption(),
			},
		},
		{
			Name:        "warn",
			Description: "Warn a member",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Avertir un membre",
			},
			Options: []*discordgo.ApplicationCommandOption{
				userOption("Member to warn", "Membre à avertir", true),
				reasonOption(),
			},
		},
		{
			Name:        "unwarn",
			Description: "Lift a member's warning",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Lever l'avertissement d'un membre",
			},
			Options: []*discordgo.ApplicationCommandOption{
				userOption("Member to clear", "Membre à blanchir", true),
				reasonOption(),
			},
		},
		{
			Name:        "clear",
			Description: "Bulk delete messages",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Supprimer des messages en masse",
			},
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Number of messages (1-100)",
					DescriptionLocalizations: map[discordgo.Locale]string{
						discordgo.French: "Nombre de messages (1-100)",
					},
					Required: true,
				},
				userOption("Only this user's messages", "Seulement les messages de cet utilisateur", false),
			},
		},
		{
			Name:        "slowmode",
			Description: "Set channel slowmode",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Définir le mode lent du salon",
			},
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "seconds",
					Description: "Delay in seconds (0 disables)",
					DescriptionLocalizations: map[discordgo.Locale]string{
						discordgo.French: "Délai en secondes (0 pour désactiver)",
					},
					Required: true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "Target channel",
					DescriptionLocalizations: map[discordgo.Locale]string{
						discordgo.French: "Salon cible",
					},
					Required: false,
				},
			},
		},
		{
			Name:        "userinfo",
			Description: "Show user details",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Afficher les détails d'un utilisateur",
			},
			Options: []*discordgo.ApplicationCommandOption{
				userOption("User to inspect", "Utilisateur à inspecter", false),
			},
		},
		{
			Name:        "guardian",
			Description: "Manage protected users",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Gérer les utilisateurs protégés",
			},
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "protect",
					Description: "Protect a user from moderation",
					DescriptionLocalizations: map[discordgo.Locale]string{
						discordgo.French: "Protéger un utilisateur de la modération",
					},
					Options: []*discordgo.ApplicationCommandOption{
						userOption("User to protect", "Utilisateur à protéger", true),
						reasonOption(),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "unprotect",
					Description: "Remove a user's protection",
					DescriptionLocalizations: map[discordgo.Locale]string{
						discordgo.French: "Retirer la protection d'un utilisateur",
					},
					Options: []*discordgo.ApplicationCommandOption{
						userOption("User to release", "Utilisateur à libérer", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List protected users and exception roles",
					DescriptionLocalizations: map[discordgo.Locale]string{
						discordgo.French: "Lister les utilisateurs protégés et les rôles d'exception",
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "exception_add",
					Description: "Allow a role to bypass protections",
					DescriptionLocalizations: map[discordgo.Locale]string{
						discordgo.French: "Autoriser un rôle à contourner les protections",
					},
					Options: []*discordgo.ApplicationCommandOption{
						roleOption("Role to allow", "Rôle à autoriser"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "exception_remove",
					Description: "Revoke a role's bypass",
					DescriptionLocalizations: map[discordgo.Locale]string{
						discordgo.French: "Révoquer le contournement d'un rôle",
					},
					Options: []*discordgo.ApplicationCommandOption{
						roleOption("Role to revoke", "Rôle à révoquer"),
					},
				},
			},
		},
		{
			Name:        "tempchannel",
			Description: "Manage self-deleting channels",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Gérer les salons à durée limitée",
			},
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Create a self-deleting channel",
					DescriptionLocalizations: map[discordgo.Locale]string{
						discordgo.French: "Créer un salon à durée limitée",
					},
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Channel name",
							DescriptionLocalizations: map[discordgo.Locale]string{
								discordgo.French: "Nom du salon",
							},
							Required: true,
						},
						durationOption("Lifetime (1m to 1w)", "Durée de vie (1m à 1w)"),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "kind",
							Description: "text or voice",
							DescriptionLocalizations: map[discordgo.Locale]string{
								discordgo.French: "text ou voice",
							},
							Required: false,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "text", Value: "text"},
								{Name: "voice", Value: "voice"},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List tracked temporary channels",
					DescriptionLocalizations: map[discordgo.Locale]string{
						discordgo.French: "Lister les salons temporaires suivis",
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "extend",
					Description: "Push back a channel's expiry",
					DescriptionLocalizations: map[discordgo.Locale]string{
						discordgo.French: "Repousser l'expiration d'un salon",
					},
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionChannel,
							Name:        "channel",
							Description: "Tracked channel",
							DescriptionLocalizations: map[discordgo.Locale]string{
								discordgo.French: "Salon suivi",
							},
							Required: true,
						},
						durationOption("Extra lifetime (1m to 1w)", "Durée supplémentaire (1m à 1w)"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "delete",
					Description: "Delete a tracked channel now",
					DescriptionLocalizations: map[discordgo.Locale]string{
						discordgo.French: "Supprimer un salon suivi immédiatement",
					},
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionChannel,
							Name:        "channel",
							Description: "Tracked channel",
							DescriptionLocalizations: map[discordgo.Locale]string{
								discordgo.French: "Salon suivi",
							},
							Required: true,
						},
					},
				},
			},
		},
		{
			Name:        "rps",
			Description: "Play rock-paper-scissors",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Jouer à pierre-feuille-ciseaux",
			},
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "choice",
					Description: "rock, paper or scissors",
					DescriptionLocalizations: map[discordgo.Locale]string{
						discordgo.French: "pierre, feuille ou ciseaux",
					},
					Required: true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "rock", Value: "rock"},
						{Name: "paper", Value: "paper"},
						{Name: "scissors", Value: "scissors"},
					},
				},
			},
		},
		{
			Name:        "guess",
			Description: "Guess a number from 1 to 10",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Deviner un nombre entre 1 et 10",
			},
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "number",
					Description: "Your guess (1-10)",
					DescriptionLocalizations: map[discordgo.Locale]string{
						discordgo.French: "Votre nombre (1-10)",
					},
					Required: true,
				},
			},
		},
		{
			Name:        "say",
			Description: "Make the bot send a message",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Faire envoyer un message par le bot",
			},
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "message",
					Description: "Message to send",
					DescriptionLocalizations: map[discordgo.Locale]string{
						discordgo.French: "Message à envoyer",
					},
					Required: true,
				},
			},
		},
		{
			Name:        "score",
			Description: "Show a player's game score",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Afficher le score de jeu d'un joueur",
			},
			Options: []*discordgo.ApplicationCommandOption{
				userOption("Player", "Joueur", false),
			},
		},
		{
			Name:        "leaderboard",
			Description: "Show the game leaderboard",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Afficher le classement des jeux",
			},
		},
		{
			Name:        "ping",
			Description: "Check bot latency",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Vérifier la latence du bot",
			},
		},
		{
			Name:        "status",
			Description: "Show bot status",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Afficher l'état du bot",
			},
		},
		{
			Name:        "diagnostic",
			Description: "Run health checks",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Lancer les vérifications de santé",
			},
		},
		{
			Name:        "invite",
			Description: "Get the bot invite link",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Obtenir le lien d'invitation du bot",
			},
		},
		{
			Name:        "updates",
			Description: "Check for a newer release",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.French: "Vérifier si une nouvelle version existe",
			},
		},
	}

	appID := b.session.State.User.ID
	existing, err := b.session.ApplicationCommands(appID, "")
	if err != nil {
		for _, cmd := range commands {
			if _, err := b.session.ApplicationCommandCreate(appID, "", cmd); err != nil {
				return err
			}
		}
		return nil
	}

	existingByName := make(map[string]*discordgo.ApplicationCommand)
	for _, cmd := range existing {
		existingByName[cmd.Name] = cmd
	}

	desired := make(map[string]struct{})
	for _, cmd := range commands {
		desired[cmd.Name] = struct{}{}
		if current, ok := existingByName[cmd.Name]; ok {
			if _, err := b.session.ApplicationCommandEdit(appID, "", current.ID, cmd); err != nil {
				return err
			}
			continue
		}
		if _, err := b.session.ApplicationCommandCreate(appID, "", cmd); err != nil {
			return err
		}
	}

	for _, cmd := range existing {
		if _, ok := desired[cmd.Name]; ok {
			continue
		}
		_ = b.session.ApplicationCommandDelete(appID, "", cmd.ID)
	}

	return nil
}

func userOption(description, descriptionFR string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "user",
		Description: description,
		DescriptionLocalizations: map[discordgo.Locale]string{
			discordgo.French: descriptionFR,
		},
		Required: required,
	}
}

func reasonOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "reason",
		Description: "Reason",
		DescriptionLocalizations: map[discordgo.Locale]string{
			discordgo.French: "Raison",
		},
		Required: false,
	}
}

func durationOption(description, descriptionFR string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "duration",
		Description: description,
		DescriptionLocalizations: map[discordgo.Locale]string{
			discordgo.French: descriptionFR,
		},
		Required: true,
	}
}

func roleOption(description, descriptionFR string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionRole,
		Name:        "role",
		Description: description,
		DescriptionLocalizations: map[discordgo.Locale]string{
			discordgo.French: descriptionFR,
		},
		Required: true,
	}
}
