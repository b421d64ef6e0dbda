package bot

// locales holds every user-facing string, keyed by language then message key.
// French is the primary locale; English is the fallback.
var locales = map[string]map[string]string{
	"fr": {
		"error_guild_only":       "❌ Cette commande ne fonctionne que sur un serveur.",
		"error_permission_user":  "❌ Vous n'avez pas les permissions de modération nécessaires.",
		"error_permission_bot":   "❌ Il me manque les permissions nécessaires pour effectuer cette action.",
		"error_failed":           "❌ Une erreur s'est produite. Veuillez réessayer plus tard.",
		"error_not_found":        "❌ Utilisateur introuvable.",
		"error_not_banned":       "ℹ️ Cet utilisateur n'est pas banni.",
		"error_invalid_duration": "❌ Format de durée invalide. Utilisez: 30m, 2h, 1d, 1w",
		"error_duration_bounds":  "❌ La durée doit être comprise entre 1 minute et 1 semaine.",
		"error_self_target":      "❌ Vous ne pouvez pas effectuer cette action sur vous-même.",
		"error_bot_target":       "❌ Je ne peux pas effectuer cette action sur moi-même.",
		"error_delete_days":      "❌ Le nombre de jours de messages à supprimer doit être entre 0 et 7.",
		"error_clear_amount":     "❌ Le nombre de messages doit être entre 1 et 100.",
		"error_slowmode_range":   "❌ Le délai doit être entre 0 et 21600 secondes.",
		"error_invalid_user_id":  "❌ Identifiant d'utilisateur invalide.",
		"error_channel_name":     "❌ Nom de salon invalide.",
		"error_reban_failed":     "⚠️ Le déban a réussi mais le nouveau ban a échoué: l'utilisateur est actuellement débanni.",

		"guardian_blocked":           "🛡️ Cet utilisateur est protégé par le Guardian.",
		"guardian_title":             "🛡️ Guardian",
		"guardian_protected":         "**%s** est maintenant protégé.",
		"guardian_unprotected":       "**%s** n'est plus protégé.",
		"guardian_not_protected":     "ℹ️ Cet utilisateur n'est pas protégé.",
		"guardian_protected_badge":   "Protégé",
		"guardian_list_title":        "🛡️ Protections Guardian",
		"guardian_list_desc":         "Utilisateurs protégés et rôles d'exception de ce serveur.",
		"guardian_exception_added":   "Le rôle **%s** peut désormais contourner les protections.",
		"guardian_exception_removed": "Le rôle **%s** ne contourne plus les protections.",
		"guardian_exception_exists":  "ℹ️ Ce rôle est déjà une exception.",
		"guardian_exception_missing": "ℹ️ Ce rôle n'est pas une exception.",
		"field_protected_users":      "Utilisateurs protégés",
		"field_exception_roles":      "Rôles d'exception",
		"field_protected_by":         "Protégé par",

		"banlist_empty":      "ℹ️ Aucun utilisateur banni sur ce serveur.",
		"banlist_no_results": "ℹ️ Aucun résultat pour la recherche **%s**.",
		"denial_not_invoker": "❌ Seul l'auteur de la commande peut utiliser ces contrôles.",
		"view_expired":       "ℹ️ Cette vue a expiré. Relancez la commande.",
		"manage_empty_page":  "❌ Aucun utilisateur à gérer sur cette page.",

		"ban_title":       "🔨 Utilisateur Banni",
		"ban_done":        "**%s** a été banni du serveur.",
		"kick_title":      "👢 Utilisateur Expulsé",
		"kick_done":       "**%s** a été expulsé du serveur.",
		"timeout_title":   "⏰ Exclusion Temporaire",
		"timeout_done":    "**%s** a été exclu temporairement.",
		"untimeout_title": "✅ Exclusion Levée",
		"untimeout_done":  "L'exclusion de **%s** a été levée.",
		"unban_title":     "✅ Utilisateur Débanni",
		"unban_done":      "L'utilisateur `%s` a été débanni.",
		"warn_title":      "⚠️ Avertissement Donné",
		"warn_done":       "**%s** a reçu un avertissement.",
		"warn_dm_title":   "⚠️ Vous avez reçu un avertissement",
		"warn_dm_desc":    "Vous avez reçu un avertissement sur **%s**.",
		"unwarn_title":    "✅ Avertissement Retiré",
		"unwarn_done":     "Un avertissement a été retiré à **%s**.",
		"unwarn_dm_title": "✅ Avertissement retiré",
		"unwarn_dm_desc":  "Un de vos avertissements a été retiré sur **%s**.",
		"clear_title":     "🧹 Messages Supprimés",
		"clear_done":      "%d message(s) supprimé(s).",
		"clear_nothing":   "ℹ️ Aucun message à supprimer.",
		"slowmode_title":  "🐌 Mode Lent",
		"slowmode_done":   "Mode lent défini à %d seconde(s).",
		"slowmode_off":    "Mode lent désactivé.",
		"userinfo_title":  "👤 Informations Utilisateur",

		"tempchannel_title":       "⏳ Salon Temporaire",
		"tempchannel_created":     "Le salon **%s** a été créé.",
		"tempchannel_extended":    "L'expiration du salon **%s** a été repoussée.",
		"tempchannel_deleted":     "Le salon **%s** a été supprimé.",
		"tempchannel_not_tracked": "ℹ️ Ce salon n'est pas un salon temporaire suivi.",
		"tempchannel_list_title":  "⏳ Salons Temporaires",
		"tempchannel_list_empty":  "ℹ️ Aucun salon temporaire actif.",

		"rps_title":         "🎮 Pierre-Feuille-Ciseaux",
		"rps_result_win":    "🎉 Vous avez gagné !",
		"rps_result_loss":   "😔 Vous avez perdu.",
		"rps_result_draw":   "🤝 Égalité !",
		"guess_title":       "🔢 Devine le Nombre",
		"guess_win":         "🎉 Exact ! C'était bien **%d**.",
		"guess_loss":        "😔 Raté ! C'était **%d**.",
		"error_guess_range": "❌ Le nombre doit être entre 1 et 10.",
		"say_done":          "✅ Message envoyé.",
		"error_say_message": "❌ Message invalide (1 à 2000 caractères).",
		"score_title":       "🏅 Score",
		"score_desc":        "Statistiques de jeu de **%s**.",
		"leaderboard_title": "🏆 Classement",
		"leaderboard_empty": "ℹ️ Aucun score enregistré pour le moment.",

		"ping_title":       "🏓 Pong !",
		"ping_desc":        "Latence de la passerelle Discord.",
		"status_title":     "📊 État du Bot",
		"status_desc":      "État de fonctionnement actuel.",
		"diagnostic_title": "🩺 Diagnostic",
		"diagnostic_desc":  "Résultats des vérifications de santé.",
		"invite_title":     "📨 Invitation",
		"invite_desc":      "[Cliquez ici pour m'ajouter à votre serveur](%s)",

		"updates_title":     "🚀 Nouvelle Version Disponible",
		"updates_available": "Une nouvelle version du bot est disponible.",
		"updates_none":      "✅ Le bot est à jour (version %s).",
		"updates_failed":    "❌ Impossible de vérifier les mises à jour.",
		"value_prerelease":  "Pré-release",

		"field_user":        "Utilisateur",
		"field_moderator":   "Modérateur",
		"field_reason":      "Raison",
		"field_duration":    "Durée",
		"field_expires":     "Expire le",
		"field_channel":     "Salon",
		"field_kind":        "Type",
		"field_id":          "Identifiant",
		"field_created":     "Compte créé le",
		"field_joined":      "A rejoint le",
		"field_roles":       "Rôles",
		"field_points":      "Points",
		"field_wins":        "Victoires",
		"field_losses":      "Défaites",
		"field_draws":       "Égalités",
		"field_your_choice": "Votre choix",
		"field_bot_choice":  "Mon choix",
		"field_latency":     "Latence",
		"field_uptime":      "Temps de fonctionnement",
		"field_guilds":      "Serveurs",
		"field_version":     "Version",
		"field_current":     "Version actuelle",
		"field_latest":      "Dernière version",
		"field_changes":     "Nouveautés",
		"check_gateway":     "Passerelle",
		"check_storage":     "Stockage",
		"check_latency":     "Latence",
		"value_ok":          "✅ OK",
		"value_fail":        "❌ Échec",
		"value_none":        "Aucun",
	},
	"en": {
		"error_guild_only":       "❌ This command only works in a server.",
		"error_permission_user":  "❌ You do not have the required moderation permissions.",
		"error_permission_bot":   "❌ I am missing the permissions needed for this action.",
		"error_failed":           "❌ Something went wrong. Please try again later.",
		"error_not_found":        "❌ User not found.",
		"error_not_banned":       "ℹ️ This user is not banned.",
		"error_invalid_duration": "❌ Invalid duration format. Use: 30m, 2h, 1d, 1w",
		"error_duration_bounds":  "❌ Duration must be between 1 minute and 1 week.",
		"error_self_target":      "❌ You cannot do that to yourself.",
		"error_bot_target":       "❌ I cannot do that to myself.",
		"error_delete_days":      "❌ Days of messages to delete must be between 0 and 7.",
		"error_clear_amount":     "❌ Message count must be between 1 and 100.",
		"error_slowmode_range":   "❌ Delay must be between 0 and 21600 seconds.",
		"error_invalid_user_id":  "❌ Invalid user id.",
		"error_channel_name":     "❌ Invalid channel name.",
		"error_reban_failed":     "⚠️ The unban succeeded but the new ban failed: the user is currently unbanned.",

		"guardian_blocked":           "🛡️ This user is protected by the Guardian.",
		"guardian_title":             "🛡️ Guardian",
		"guardian_protected":         "**%s** is now protected.",
		"guardian_unprotected":       "**%s** is no longer protected.",
		"guardian_not_protected":     "ℹ️ This user is not protected.",
		"guardian_protected_badge":   "Protected",
		"guardian_list_title":        "🛡️ Guardian Protections",
		"guardian_list_desc":         "Protected users and exception roles of this server.",
		"guardian_exception_added":   "Role **%s** can now bypass protections.",
		"guardian_exception_removed": "Role **%s** no longer bypasses protections.",
		"guardian_exception_exists":  "ℹ️ This role is already an exception.",
		"guardian_exception_missing": "ℹ️ This role is not an exception.",
		"field_protected_users":      "Protected users",
		"field_exception_roles":      "Exception roles",
		"field_protected_by":         "Protected by",

		"banlist_empty":      "ℹ️ No banned users on this server.",
		"banlist_no_results": "ℹ️ No results for search **%s**.",
		"denial_not_invoker": "❌ Only the command author can use these controls.",
		"view_expired":       "ℹ️ This view has expired. Run the command again.",
		"manage_empty_page":  "❌ No users to manage on this page.",

		"ban_title":       "🔨 User Banned",
		"ban_done":        "**%s** has been banned from the server.",
		"kick_title":      "👢 User Kicked",
		"kick_done":       "**%s** has been kicked from the server.",
		"timeout_title":   "⏰ Timeout Applied",
		"timeout_done":    "**%s** has been timed out.",
		"untimeout_title": "✅ Timeout Lifted",
		"untimeout_done":  "**%s**'s timeout has been lifted.",
		"unban_title":     "✅ User Unbanned",
		"unban_done":      "User `%s` has been unbanned.",
		"warn_title":      "⚠️ Warning Issued",
		"warn_done":       "**%s** has received a warning.",
		"warn_dm_title":   "⚠️ You received a warning",
		"warn_dm_desc":    "You received a warning on **%s**.",
		"unwarn_title":    "✅ Warning Removed",
		"unwarn_done":     "A warning has been removed from **%s**.",
		"unwarn_dm_title": "✅ Warning removed",
		"unwarn_dm_desc":  "One of your warnings was removed on **%s**.",
		"clear_title":     "🧹 Messages Deleted",
		"clear_done":      "%d message(s) deleted.",
		"clear_nothing":   "ℹ️ Nothing to delete.",
		"slowmode_title":  "🐌 Slowmode",
		"slowmode_done":   "Slowmode set to %d second(s).",
		"slowmode_off":    "Slowmode disabled.",
		"userinfo_title":  "👤 User Information",

		"tempchannel_title":       "⏳ Temporary Channel",
		"tempchannel_created":     "Channel **%s** has been created.",
		"tempchannel_extended":    "Channel **%s**'s expiry has been pushed back.",
		"tempchannel_deleted":     "Channel **%s** has been deleted.",
		"tempchannel_not_tracked": "ℹ️ This channel is not a tracked temporary channel.",
		"tempchannel_list_title":  "⏳ Temporary Channels",
		"tempchannel_list_empty":  "ℹ️ No active temporary channels.",

		"rps_title":         "🎮 Rock-Paper-Scissors",
		"rps_result_win":    "🎉 You win!",
		"rps_result_loss":   "😔 You lose.",
		"rps_result_draw":   "🤝 It's a draw!",
		"guess_title":       "🔢 Guess the Number",
		"guess_win":         "🎉 Spot on! It was **%d**.",
		"guess_loss":        "😔 Missed! It was **%d**.",
		"error_guess_range": "❌ The number must be between 1 and 10.",
		"say_done":          "✅ Message sent.",
		"error_say_message": "❌ Invalid message (1 to 2000 characters).",
		"score_title":       "🏅 Score",
		"score_desc":        "Game statistics for **%s**.",
		"leaderboard_title": "🏆 Leaderboard",
		"leaderboard_empty": "ℹ️ No scores recorded yet.",

		"ping_title":       "🏓 Pong!",
		"ping_desc":        "Discord gateway latency.",
		"status_title":     "📊 Bot Status",
		"status_desc":      "Current runtime state.",
		"diagnostic_title": "🩺 Diagnostic",
		"diagnostic_desc":  "Health check results.",
		"invite_title":     "📨 Invite",
		"invite_desc":      "[Click here to add me to your server](%s)",

		"updates_title":     "🚀 New Release Available",
		"updates_available": "A newer version of the bot is available.",
		"updates_none":      "✅ The bot is up to date (version %s).",
		"updates_failed":    "❌ Could not check for updates.",
		"value_prerelease":  "Prerelease",

		"field_user":        "User",
		"field_moderator":   "Moderator",
		"field_reason":      "Reason",
		"field_duration":    "Duration",
		"field_expires":     "Expires",
		"field_channel":     "Channel",
		"field_kind":        "Kind",
		"field_id":          "ID",
		"field_created":     "Account created",
		"field_joined":      "Joined",
		"field_roles":       "Roles",
		"field_points":      "Points",
		"field_wins":        "Wins",
		"field_losses":      "Losses",
		"field_draws":       "Draws",
		"field_your_choice": "Your choice",
		"field_bot_choice":  "My choice",
		"field_latency":     "Latency",
		"field_uptime":      "Uptime",
		"field_guilds":      "Servers",
		"field_version":     "Version",
		"field_current":     "Current version",
		"field_latest":      "Latest version",
		"field_changes":     "Changes",
		"check_gateway":     "Gateway",
		"check_storage":     "Storage",
		"check_latency":     "Latency",
		"value_ok":          "✅ OK",
		"value_fail":        "❌ Fail",
		"value_none":        "None",
	},
}

// t resolves a message key for a language, falling back to French and then to
// the key itself so a missing entry stays visible instead of blank.
func (b *Bot) t(lang, key string) string {
	if messages, ok := locales[lang]; ok {
		if msg, ok := messages[key]; ok {
			return msg
		}
	}
	if msg, ok := locales["fr"][key]; ok {
		return msg
	}
	return key
}
