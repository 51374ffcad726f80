package core

import (
	"context"
	"fmt"

	"github.com/auto-notify/docker-discord-notify/internal/config"
	"github.com/auto-notify/docker-discord-notify/internal/domain"
	"github.com/auto-notify/docker-discord-notify/internal/metrics"
	"github.com/rs/zerolog"
)

// NotifyEngine coordinates event ingestion, filtering, enrichment, and
// webhook delivery. Events are processed strictly sequentially: a slow or
// retrying delivery delays consumption of subsequent events, which
// backpressures the pipeline instead of buffering without bound.
type NotifyEngine struct {
	logger    zerolog.Logger
	cfg       *config.AppConfig
	generator generator
	filter    eventFilter
	enricher  enricher
	formatter formatter
	deliverer deliverer
}

func NewNotifyEngine(logger zerolog.Logger, cfg *config.AppConfig, gen generator, filter eventFilter, enricher enricher, formatter formatter, deliverer deliverer) *NotifyEngine {
	return &NotifyEngine{
		logger:    logger,
		cfg:       cfg,
		generator: gen,
		filter:    filter,
		enricher:  enricher,
		formatter: formatter,
		deliverer: deliverer,
	}
}

// Run consumes the event stream until the context is cancelled (graceful,
// returns nil) or the stream faults (fatal, returns the error). The engine
// never reconnects; a stream fault is expected to terminate the process.
func (ne *NotifyEngine) Run(ctx context.Context) error {
	ne.logger.Info().
		Str("containers", ne.cfg.Containers).
		Str("actions", ne.cfg.Actions).
		Int("health_check_interval", ne.cfg.HealthCheckInterval).
		Msg("Starting Docker event monitor")

	eventCh, errCh := ne.generator.Subscribe(ctx)

	for {
		select {
		case <-ctx.Done():
			ne.logger.Info().Msg("Gracefully shutting down Docker event monitor")
			return nil
		case err := <-errCh:
			ne.logger.Error().Err(err).Msg("Fatal error in event monitoring")
			return fmt.Errorf("event stream: %w", err)
		case evt, ok := <-eventCh:
			if !ok {
				if ctx.Err() != nil {
					ne.logger.Info().Msg("Gracefully shutting down Docker event monitor")
					return nil
				}
				return fmt.Errorf("event stream: channel closed")
			}
			ne.handleEvent(ctx, evt)
		}
	}
}

func (ne *NotifyEngine) handleEvent(ctx context.Context, evt domain.ContainerEvent) {
	metrics.IncEventReceived()

	if !ne.filter.ShouldNotify(evt) {
		return
	}
	metrics.IncEventAccepted()

	status := ne.enricher.Lookup(ctx, evt.ID)

	embed, ok := ne.formatter.Format(evt, status)
	if !ok {
		ne.logger.Debug().
			Str("container", evt.Name).
			Str("action", string(evt.Action)).
			Msg("No template for action, skipping")
		return
	}

	if !ne.deliverer.Deliver(embed) {
		metrics.IncNotificationFailed(string(evt.Action))
		ne.logger.Error().
			Str("container", evt.Name).
			Str("action", string(evt.Action)).
			Msg("Failed to send notification")
		return
	}
	metrics.IncNotificationSent(string(evt.Action))
	ne.logger.Info().
		Str("container", evt.Name).
		Str("action", string(evt.Action)).
		Msg("Notification sent")
}
