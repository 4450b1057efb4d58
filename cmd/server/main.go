// @title           THRIVE Wellness API
// @version         1.0
// @description     Screens and mock data for the THRIVE mental-wellness app.
// @BasePath        /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the session token.
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/thrive/wellness-api/internal/app"
	"github.com/thrive/wellness-api/internal/pkg/config"
	"github.com/thrive/wellness-api/pkg/logger"
)

func main() {
	envErr := godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{Level: "error"})
		l.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "thrive-wellness-api",
	})
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		log.Warn().Err(envErr).Msg("could not read .env file")
	}

	log.Info().
		Str("env", cfg.Env).
		Str("session_backend", cfg.Session.Backend).
		Float64("latency_scale", cfg.Mock.LatencyScale).
		Msg("starting thrive wellness api")

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize app")
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		log.Error().Err(err).Msg("app stopped with error")
		os.Exit(1)
	}

	log.Info().Msg("app stopped gracefully")
}
