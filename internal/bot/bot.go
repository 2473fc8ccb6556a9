// Package bot provides the Telegram bot initialization and handler registration.
package bot

import (
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"

	"shadowroll-bot/internal/config"
	"shadowroll-bot/internal/handler"
	"shadowroll-bot/internal/roller"
	"shadowroll-bot/internal/session"
)

// Bot wraps the telebot instance with application dependencies.
type Bot struct {
	bot *tele.Bot
	cfg *config.Config

	rollHandler    *handler.RollHandler
	editionHandler *handler.EditionHandler
	helpHandler    *handler.HelpHandler
}

// Dependencies holds all the dependencies needed by the bot handlers.
type Dependencies struct {
	Config   *config.Config
	Roller   *roller.Roller
	Editions *session.Store
}

// New creates a new Bot instance with the given dependencies.
func New(deps *Dependencies) (*Bot, error) {
	if deps.Config.Bot.Token == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	pref := tele.Settings{
		Token:  deps.Config.Bot.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	teleBot, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	b := &Bot{
		bot: teleBot,
		cfg: deps.Config,
	}

	// Initialize handlers
	b.rollHandler = handler.NewRollHandler(deps.Roller, deps.Editions)
	b.editionHandler = handler.NewEditionHandler(deps.Config, deps.Editions)
	b.helpHandler = handler.NewHelpHandler(deps.Editions)

	// Register middleware
	b.registerMiddleware()

	// Register handlers
	b.registerHandlers()

	return b, nil
}

// registerMiddleware registers all middleware.
func (b *Bot) registerMiddleware() {
	b.bot.Use(RecoveryMiddleware())

	// Whitelist middleware - check if chat is allowed
	b.bot.Use(WhitelistMiddleware(b.cfg))

	// Logging middleware
	b.bot.Use(LoggingMiddleware())

	// Forward handler errors to the configured report chat
	b.bot.Use(ErrorReportMiddleware(b.bot, b.cfg.Report.ChatID))
}

// registerHandlers registers all command handlers.
func (b *Bot) registerHandlers() {
	b.bot.Handle("/start", b.helpHandler.HandleStart)
	b.bot.Handle("/help", b.helpHandler.HandleHelp)
	b.bot.Handle("/r", b.rollHandler.HandleRoll)
	b.bot.Handle("/ed", b.editionHandler.HandleEdition)
}

// Start begins polling for updates. Blocks until Stop is called.
func (b *Bot) Start() {
	b.bot.Start()
}

// Stop gracefully stops the bot.
func (b *Bot) Stop() {
	b.bot.Stop()
}
