package event

import (
	"strings"
	"time"

	"github.com/auto-notify/docker-discord-notify/internal/domain"
	"github.com/docker/docker/api/types/events"
)

// fromEventsMessage converts a raw daemon event into a domain ContainerEvent.
// Health events arrive on the wire as "health_status: healthy"; the health
// value is moved into the attributes so the action keyword stays uniform.
func fromEventsMessage(msg events.Message) domain.ContainerEvent {
	action := string(msg.Action)

	attrs := make(map[string]string, len(msg.Actor.Attributes)+1)
	for k, v := range msg.Actor.Attributes {
		attrs[k] = v
	}

	if rest, ok := strings.CutPrefix(action, string(domain.ActionHealthStatus)); ok {
		action = string(domain.ActionHealthStatus)
		if health := strings.TrimSpace(strings.TrimPrefix(rest, ":")); health != "" {
			attrs[domain.AttrHealthStatus] = health
		}
	}

	return domain.ContainerEvent{
		Type:       string(msg.Type),
		ID:         msg.Actor.ID,
		Name:       attrs["name"],
		Action:     domain.Action(action),
		Attributes: attrs,
		Time:       time.Unix(0, msg.TimeNano),
	}
}
