package main

import (
	"context"

	"github.com/auto-notify/docker-discord-notify/internal/app"
	"github.com/auto-notify/docker-discord-notify/internal/config"
	"github.com/rs/zerolog"
)

type application interface {
	Run(ctx context.Context) error
	Close() error
}

func newApplication(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (application, error) {
	return app.New(ctx, cfg, logger)
}
