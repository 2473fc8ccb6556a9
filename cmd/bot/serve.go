package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"shadowroll-bot/internal/bot"
	"shadowroll-bot/internal/config"
	"shadowroll-bot/internal/roller"
	"shadowroll-bot/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if level, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	} else {
		log.Warn().Str("level", cfg.Log.Level).Msg("Unknown log level, keeping default")
	}

	log.Info().
		Stringer("default_edition", cfg.DefaultEdition()).
		Msg("Configuration loaded successfully")

	dicePool := roller.New(&roller.Config{MaxTotalDice: cfg.Roll.MaxTotalDice})
	editions := session.NewStore(cfg.DefaultEdition())

	telegramBot, err := bot.New(&bot.Dependencies{
		Config:   cfg,
		Roller:   dicePool,
		Editions: editions,
	})
	if err != nil {
		return err
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Msg("Bot is starting...")
		telegramBot.Start()
	}()

	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

	telegramBot.Stop()
	log.Info().Msg("Bot stopped gracefully")
	return nil
}
