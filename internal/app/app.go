package app

import (
	"context"
	"fmt"
	"time"

	"github.com/auto-notify/docker-discord-notify/internal/config"
	"github.com/auto-notify/docker-discord-notify/internal/core"
	"github.com/auto-notify/docker-discord-notify/internal/discord"
	"github.com/auto-notify/docker-discord-notify/internal/event"
	"github.com/auto-notify/docker-discord-notify/internal/metrics"
	"github.com/auto-notify/docker-discord-notify/internal/notify"
	"github.com/auto-notify/docker-discord-notify/internal/server"
	"github.com/auto-notify/docker-discord-notify/internal/status"
	dockerCli "github.com/docker/docker/client"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

type App struct {
	dockerClient *dockerCli.Client
	engine       *core.NotifyEngine
	server       *server.Server
	logger       zerolog.Logger
}

// New creates a new App by wiring up all dependencies. It pings the Docker
// daemon as a startup liveness check; a failed ping aborts startup.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	dockerClient, err := dockerCli.NewClientWithOpts(dockerCli.FromEnv, dockerCli.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("creating docker client: %w", err)
	}
	if _, err := dockerClient.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to Docker: %w", err)
	}

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}

	gen := event.NewDockerGenerator(dockerClient, logger)
	enricher := status.NewEnricher(dockerClient, logger)
	filter := notify.NewFilter(&cfg.App)
	formatter := notify.NewFormatter()
	webhook := discord.NewClient(&cfg.Discord, logger)
	engine := core.NewNotifyEngine(logger, &cfg.App, gen, filter, enricher, formatter, webhook)

	var srv *server.Server
	if cfg.Server.Enabled {
		srv = server.New(&cfg.Server, dockerClient, logger)
	}

	return &App{
		dockerClient: dockerClient,
		engine:       engine,
		server:       srv,
		logger:       logger,
	}, nil
}

// Run starts the ops server (if enabled) and the notify engine, and blocks
// until the engine returns.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("Application starting")
	if a.server != nil {
		a.server.Start()
	}

	err := a.engine.Run(ctx)

	if a.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if serr := a.server.Shutdown(shutdownCtx); serr != nil {
			a.logger.Error().Err(serr).Msg("Error shutting down ops server")
		}
	}
	return err
}

func (a *App) Close() error {
	if a.dockerClient != nil {
		if err := a.dockerClient.Close(); err != nil {
			return fmt.Errorf("close docker client: %w", err)
		}
	}
	return nil
}
