// Package config provides configuration management using viper.
// It supports loading from YAML files and environment variable overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"shadowroll-bot/internal/roller"
)

// Config holds all application configuration.
type Config struct {
	Bot       BotConfig       `mapstructure:"bot"`
	Log       LogConfig       `mapstructure:"log"`
	Admin     AdminConfig     `mapstructure:"admin"`
	Whitelist WhitelistConfig `mapstructure:"whitelist"`
	Roll      RollConfig      `mapstructure:"roll"`
	Report    ReportConfig    `mapstructure:"report"`
}

// BotConfig holds Telegram bot configuration.
type BotConfig struct {
	Token string `mapstructure:"token"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// AdminConfig holds admin user configuration. Admins may change a group
// chat's edition.
type AdminConfig struct {
	IDs []int64 `mapstructure:"ids"`
}

// WhitelistConfig holds chat whitelist configuration.
type WhitelistConfig struct {
	Chats []int64 `mapstructure:"chats"`
}

// RollConfig holds dice roller configuration.
type RollConfig struct {
	DefaultEdition string `mapstructure:"default_edition"`
	MaxTotalDice   int    `mapstructure:"max_total_dice"`
}

// ReportConfig holds error reporting configuration. ChatID is the Telegram
// chat that receives handler error reports; zero disables forwarding.
type ReportConfig struct {
	ChatID int64 `mapstructure:"chat_id"`
}

// Load reads configuration from file and environment variables.
// It looks for config.yaml in the config directory.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variables use underscore separator and uppercase,
	// e.g. BOT_TOKEN, ROLL_DEFAULT_EDITION.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file not found is OK, env vars can provide all config.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if _, ok := roller.ParseEdition(cfg.Roll.DefaultEdition); !ok {
		return nil, fmt.Errorf("unknown default edition %q", cfg.Roll.DefaultEdition)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("roll.default_edition", "SR5")
	v.SetDefault("roll.max_total_dice", roller.DefaultMaxTotalDice)
}

// DefaultEdition returns the configured fallback edition.
func (c *Config) DefaultEdition() roller.Edition {
	ed, ok := roller.ParseEdition(c.Roll.DefaultEdition)
	if !ok {
		return roller.SR5
	}
	return ed
}

// IsAdmin checks if a user ID is in the admin list.
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.Admin.IDs {
		if id == userID {
			return true
		}
	}
	return false
}

// IsChatAllowed checks if a chat ID is in the whitelist.
func (c *Config) IsChatAllowed(chatID int64) bool {
	// Empty whitelist means all chats are allowed
	if len(c.Whitelist.Chats) == 0 {
		return true
	}
	for _, id := range c.Whitelist.Chats {
		if id == chatID {
			return true
		}
	}
	return false
}
