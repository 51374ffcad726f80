package notify

import "github.com/auto-notify/docker-discord-notify/internal/domain"

// EventTemplate carries the static presentation of one recognized action.
// Title and Description are fmt patterns parameterized by container name.
type EventTemplate struct {
	Title       string
	Description string
	Color       int
}

// eventTemplates is the closed set of actions that produce notifications.
// An action without a template is silently dropped by the formatter.
var eventTemplates = map[domain.Action]EventTemplate{
	domain.ActionStart: {
		Title:       "🟢 Container Started: %s",
		Description: "Container %s has started successfully.",
		Color:       0x00FF00,
	},
	domain.ActionDie: {
		Title:       "🔴 Container Stopped: %s",
		Description: "Container %s has stopped.",
		Color:       0xFF0000,
	},
	domain.ActionPause: {
		Title:       "⏸️ Container Paused: %s",
		Description: "Container %s has been paused.",
		Color:       0xFFA500,
	},
	domain.ActionUnpause: {
		Title:       "▶️ Container Unpaused: %s",
		Description: "Container %s has been unpaused.",
		Color:       0x00FF00,
	},
	domain.ActionHealthStatus: {
		Title:       "🏥 Health Status: %s",
		Description: "Health status changed for container %s.",
		Color:       0x0000FF,
	},
}

func templateFor(action domain.Action) (EventTemplate, bool) {
	tmpl, ok := eventTemplates[action]
	return tmpl, ok
}
