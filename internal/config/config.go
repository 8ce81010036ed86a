package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the process-wide configuration, loaded once at startup and
// passed to components read-only.
type Config struct {
	BotToken       string
	WebhookURL     string
	DelayEndpoints []string
	Port           int
	HandlerTimeout time.Duration
	LogLevel       string
}

const (
	defaultPort           = 5000
	defaultHandlerTimeout = "10s"
	defaultLogLevel       = "info"
)

// Load reads configuration from the environment. BOT_TOKEN is required;
// DELAY_SERVICE_URLS is an ordered comma-separated list, one endpoint per
// duration bucket; WEBHOOK_URL is optional and only controls webhook
// self-registration.
func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("port", defaultPort)
	viper.SetDefault("handler_timeout", defaultHandlerTimeout)
	viper.SetDefault("log_level", defaultLogLevel)

	token := viper.GetString("bot_token")
	if token == "" {
		return nil, errors.New("BOT_TOKEN is required")
	}

	timeout, err := time.ParseDuration(viper.GetString("handler_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid HANDLER_TIMEOUT: %w", err)
	}

	var endpoints []string
	for _, endpoint := range strings.Split(viper.GetString("delay_service_urls"), ",") {
		if trimmed := strings.TrimSpace(endpoint); trimmed != "" {
			endpoints = append(endpoints, trimmed)
		}
	}

	return &Config{
		BotToken:       token,
		WebhookURL:     viper.GetString("webhook_url"),
		DelayEndpoints: endpoints,
		Port:           viper.GetInt("port"),
		HandlerTimeout: timeout,
		LogLevel:       viper.GetString("log_level"),
	}, nil
}
