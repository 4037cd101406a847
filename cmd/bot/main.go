package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"apod_bot/internal/bot"
	"apod_bot/internal/config"
	"apod_bot/internal/metrics"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		errLog := zerolog.New(os.Stderr)
		errLog.Error().Err(err).Msg("load config")
		os.Exit(1)
	}

	log := newLogger(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.MetricsAddr != "" {
		metrics.MustRegister(prometheus.DefaultRegisterer)
		metrics.StartServer(ctx, log, cfg.MetricsAddr)
	}

	b, err := bot.New(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("create bot")
		os.Exit(1)
	}

	log.Info().Msg("starting bot")

	b.Run(ctx)

	log.Info().Msg("bot stopped")
}

func newLogger(level string) zerolog.Logger {
	var lvl zerolog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = zerolog.DebugLevel
	case "warn":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	default:
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(os.Stdout).With().Timestamp().Logger().Level(lvl)
}
