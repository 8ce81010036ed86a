package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"schedbot/internal/adapters/delegator"
	"schedbot/internal/adapters/handler"
	"schedbot/internal/adapters/sender"
	"schedbot/internal/config"
	"schedbot/internal/core/service"

	"github.com/go-telegram/bot"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

func main() {
	log.Info().Msg("starting schedbot...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	var logLevel zerolog.Level

	switch cfg.LogLevel {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	b, err := bot.New(cfg.BotToken, bot.WithSkipGetMe())
	if err != nil {
		log.Fatal().Err(err).Msg("failed initializing telegram bot")
	}

	s := sender.NewTelegramSender(b)

	if cfg.WebhookURL != "" {
		if err := s.RegisterWebhook(ctx, cfg.WebhookURL); err != nil {
			log.Error().Err(err).Msg("webhook registration failed, continuing without it")
		}
	} else {
		log.Info().Msg("no webhook URL provided, skipping webhook registration")
	}

	d := delegator.NewHTTPDelegator(cfg.HandlerTimeout)
	dispatcher := service.NewScheduleDispatcher(s, d, cfg.DelayEndpoints)
	relay := service.NewCallbackRelay(s)

	webhook := handler.NewWebhook(s, dispatcher, relay, cfg.HandlerTimeout)

	mux := http.NewServeMux()
	webhook.Register(mux)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: cfg.HandlerTimeout,
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Int("port", cfg.Port).Int("endpoints", len(cfg.DelayEndpoints)).Msg("bot listening")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped unexpectedly")
	}
}
