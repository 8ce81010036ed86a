package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	viper.Reset()
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("WEBHOOK_URL", "https://bot.example.com")
	t.Setenv("DELAY_SERVICE_URLS", "http://delay.example/1h, http://delay.example/2h,http://delay.example/3h")
	t.Setenv("PORT", "8080")
	t.Setenv("HANDLER_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "test-token", cfg.BotToken)
	assert.Equal(t, "https://bot.example.com", cfg.WebhookURL)
	assert.Equal(t, []string{
		"http://delay.example/1h",
		"http://delay.example/2h",
		"http://delay.example/3h",
	}, cfg.DelayEndpoints)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.HandlerTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("BOT_TOKEN", "test-token")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.HandlerTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.WebhookURL)
	assert.Empty(t, cfg.DelayEndpoints)
}

func TestLoadMissingToken(t *testing.T) {
	viper.Reset()

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoadInvalidTimeout(t *testing.T) {
	viper.Reset()
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("HANDLER_TIMEOUT", "soon")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HANDLER_TIMEOUT")
}
