package bot

import (
	"context"
	"sync"
	"time"

	"github.com/TifouDragon/Slimboy-Bot/internal/config"
	"github.com/TifouDragon/Slimboy-Bot/internal/storage"
	"github.com/TifouDragon/Slimboy-Bot/internal/updates"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

type Bot struct {
	cfg     config.Config
	logger  *zap.Logger
	stores  *storage.Stores
	session *discordgo.Session
	checker *updates.Checker

	viewsMu sync.Mutex
	views   map[string]*banView

	notifiedMu sync.Mutex
	// lastNotified is the newest release tag already announced, so the
	// check loop does not repeat itself within one process lifetime.
	lastNotified string

	startedAt time.Time
	stop      chan struct{}
	stopOnce  sync.Once
}

func New(cfg config.Config, logger *zap.Logger, stores *storage.Stores) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, err
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildBans

	b := &Bot{
		cfg:       cfg,
		logger:    logger,
		stores:    stores,
		session:   session,
		checker:   updates.NewChecker(cfg.Updates.Repository),
		views:     make(map[string]*banView),
		startedAt: time.Now(),
		stop:      make(chan struct{}),
	}
	return b, nil
}

func (b *Bot) Start() error {
	b.session.AddHandler(b.onReady)
	b.session.AddHandler(b.onInteractionCreate)

	if err := b.session.Open(); err != nil {
		return err
	}

	if err := b.registerCommands(); err != nil {
		return err
	}

	b.startTempChannelCleanup()
	b.startUpdateNotifier()

	return nil
}

func (b *Bot) Close(ctx context.Context) {
	_ = ctx
	b.stopOnce.Do(func() { close(b.stop) })
	if b.session != nil {
		_ = b.session.Close()
	}
}

func (b *Bot) onReady(session *discordgo.Session, event *discordgo.Ready) {
	b.logger.Info("discord ready",
		zap.String("user", session.State.User.Username),
		zap.Int("guilds", len(event.Guilds)),
		zap.String("version", updates.CurrentVersion))
}
