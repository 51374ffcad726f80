package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/auto-notify/docker-discord-notify/internal/domain"
	"github.com/docker/docker/api/types/events"
	"github.com/docker/docker/api/types/filters"
	"github.com/rs/zerolog"
)

// DockerGenerator turns the Docker daemon's event stream into a channel of
// domain ContainerEvents. The stream is lazy, infinite, and not restartable:
// a stream-level error is forwarded on the error channel and ends the
// generator.
type DockerGenerator struct {
	logger zerolog.Logger
	cli    dockerClient
}

func NewDockerGenerator(cli dockerClient, logger zerolog.Logger) *DockerGenerator {
	return &DockerGenerator{
		logger: logger,
		cli:    cli,
	}
}

// Subscribe starts consuming daemon events and returns a read-only event
// channel plus an error channel. The event channel is closed when the
// generator stops; at most one error is ever sent on the error channel.
func (dg *DockerGenerator) Subscribe(ctx context.Context) (<-chan domain.ContainerEvent, <-chan error) {
	const bufferSize = 100
	out := make(chan domain.ContainerEvent, bufferSize)
	errs := make(chan error, 1)

	go func() {
		defer close(out)

		filterArgs := filters.NewArgs()
		filterArgs.Add("type", "container")

		options := events.ListOptions{Filters: filterArgs}
		eventCh, errCh := dg.cli.Events(ctx, options)

		for {
			select {
			case <-ctx.Done():
				dg.logger.Info().Msg("Docker event generator cancelled by context")
				return
			case err, ok := <-errCh:
				if !ok {
					errs <- errors.New("docker events error channel closed")
					return
				}
				// The SDK surfaces context cancellation through the error
				// channel as well; that is a graceful stop, not a stream fault.
				if errors.Is(err, context.Canceled) {
					dg.logger.Info().Msg("Docker event stream cancelled")
					return
				}
				errs <- fmt.Errorf("docker events stream: %w", err)
				return
			case msg, ok := <-eventCh:
				if !ok {
					errs <- errors.New("docker events channel closed")
					return
				}

				evt := fromEventsMessage(msg)
				dg.logger.Debug().
					Str("container", evt.Name).
					Str("action", string(evt.Action)).
					Msg("Received Docker event")
				select {
				case out <- evt:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, errs
}
