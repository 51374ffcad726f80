package status

import (
	"context"
	"strings"

	"github.com/auto-notify/docker-discord-notify/internal/domain"
	"github.com/docker/docker/errdefs"
	"github.com/rs/zerolog"
)

const notAvailable = "N/A"

// Enricher looks up the current state of a container to augment an event
// before it is formatted. Lookups never fail the pipeline: a missing
// container degrades to the "unknown" sentinel status and any other lookup
// failure degrades to the "error" sentinel status.
type Enricher struct {
	logger zerolog.Logger
	cli    dockerClient
}

func NewEnricher(cli dockerClient, logger zerolog.Logger) *Enricher {
	return &Enricher{
		logger: logger,
		cli:    cli,
	}
}

// Lookup returns the current status of the given container.
func (e *Enricher) Lookup(ctx context.Context, containerID string) domain.ContainerStatus {
	ctr, err := e.cli.ContainerInspect(ctx, containerID)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return domain.UnknownStatus()
		}
		e.logger.Error().Err(err).Str("container_id", containerID).Msg("Error getting container status")
		return domain.ErrorStatus()
	}

	img, err := e.cli.ImageInspect(ctx, ctr.Image)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return domain.UnknownStatus()
		}
		e.logger.Error().Err(err).Str("container_id", containerID).Msg("Error getting container image")
		return domain.ErrorStatus()
	}

	imageRef := "untagged"
	if len(img.RepoTags) > 0 {
		imageRef = img.RepoTags[0]
	}

	state := domain.StatusUnknown
	health := notAvailable
	if ctr.State != nil {
		state = ctr.State.Status
		if ctr.State.Health != nil {
			health = ctr.State.Health.Status
		}
	}

	platform := ctr.Platform
	if platform == "" {
		platform = notAvailable
	}

	return domain.ContainerStatus{
		Image:    imageRef,
		Status:   state,
		Health:   health,
		Created:  formatCreated(ctr.Created),
		Platform: platform,
	}
}

// formatCreated truncates an RFC 3339 timestamp to second precision and
// normalizes the date/time separator to a space.
func formatCreated(created string) string {
	if len(created) > 19 {
		created = created[:19]
	}
	return strings.Replace(created, "T", " ", 1)
}
