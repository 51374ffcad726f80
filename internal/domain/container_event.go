package domain

import "time"

// Action is a container lifecycle action as reported by the Docker event stream.
type Action string

const (
	ActionStart        Action = "start"
	ActionDie          Action = "die"
	ActionPause        Action = "pause"
	ActionUnpause      Action = "unpause"
	ActionHealthStatus Action = "health_status"
)

func (a Action) IsValid() bool {
	switch a {
	case ActionStart,
		ActionDie,
		ActionPause,
		ActionUnpause,
		ActionHealthStatus:
		return true
	}
	return false
}

// EventTypeContainer is the only event category this application acts on.
const EventTypeContainer = "container"

// AttrExitCode and AttrHealthStatus are the actor attribute keys carrying
// action-specific values on die and health_status events.
const (
	AttrExitCode     = "exitCode"
	AttrHealthStatus = "health_status"
)

// ContainerEvent represents a simplified Docker container lifecycle event.
type ContainerEvent struct {
	Type       string // event category, e.g. "container", "network", "image"
	ID         string
	Name       string
	Action     Action
	Attributes map[string]string
	Time       time.Time // when the daemon emitted the event
}
