package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shadowroll-bot/internal/roller"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, roller.SR5, cfg.DefaultEdition())
	assert.Equal(t, roller.DefaultMaxTotalDice, cfg.Roll.MaxTotalDice)
	assert.Empty(t, cfg.Bot.Token)
	assert.Zero(t, cfg.Report.ChatID)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
bot:
  token: test-token
log:
  level: debug
admin:
  ids: [42]
whitelist:
  chats: [-100200300]
roll:
  default_edition: SR4
  max_total_dice: 500
report:
  chat_id: -100999
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.Bot.Token)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []int64{42}, cfg.Admin.IDs)
	assert.Equal(t, roller.SR4, cfg.DefaultEdition())
	assert.Equal(t, 500, cfg.Roll.MaxTotalDice)
	assert.Equal(t, int64(-100999), cfg.Report.ChatID)
}

func TestLoadRejectsUnknownEdition(t *testing.T) {
	dir := t.TempDir()
	yaml := "roll:\n  default_edition: SR9\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestIsAdmin(t *testing.T) {
	cfg := &Config{Admin: AdminConfig{IDs: []int64{1, 2}}}

	assert.True(t, cfg.IsAdmin(1))
	assert.True(t, cfg.IsAdmin(2))
	assert.False(t, cfg.IsAdmin(3))
	assert.False(t, (&Config{}).IsAdmin(1))
}

func TestIsChatAllowed(t *testing.T) {
	cfg := &Config{Whitelist: WhitelistConfig{Chats: []int64{-10, -20}}}

	assert.True(t, cfg.IsChatAllowed(-10))
	assert.False(t, cfg.IsChatAllowed(-30))
	// Empty whitelist allows everything.
	assert.True(t, (&Config{}).IsChatAllowed(-30))
}
