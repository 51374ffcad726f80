package core

import (
	"context"

	"github.com/auto-notify/docker-discord-notify/internal/discord"
	"github.com/auto-notify/docker-discord-notify/internal/domain"
)

type generator interface {
	Subscribe(ctx context.Context) (<-chan domain.ContainerEvent, <-chan error)
}

type eventFilter interface {
	ShouldNotify(evt domain.ContainerEvent) bool
}

type enricher interface {
	Lookup(ctx context.Context, containerID string) domain.ContainerStatus
}

type formatter interface {
	Format(evt domain.ContainerEvent, st domain.ContainerStatus) (discord.Embed, bool)
}

type deliverer interface {
	Deliver(embed discord.Embed) bool
}
