package notify

import (
	"strings"

	"github.com/auto-notify/docker-discord-notify/internal/config"
	"github.com/auto-notify/docker-discord-notify/internal/domain"
)

// Filter decides which events produce notifications based on the operator's
// container and action allow-lists. Both lists are parsed once at startup
// and are immutable afterwards.
type Filter struct {
	containers map[string]struct{} // nil means wildcard
	actions    map[string]struct{} // nil means wildcard
}

func NewFilter(cfg *config.AppConfig) *Filter {
	return &Filter{
		containers: parseAllowList(cfg.Containers),
		actions:    parseAllowList(cfg.Actions),
	}
}

// ShouldNotify reports whether the event passes the subscription filters.
// It is a pure decision function with no side effects.
func (f *Filter) ShouldNotify(evt domain.ContainerEvent) bool {
	if evt.Type != domain.EventTypeContainer {
		return false
	}
	if f.containers != nil {
		if _, ok := f.containers[evt.Name]; !ok {
			return false
		}
	}
	if f.actions != nil {
		if _, ok := f.actions[string(evt.Action)]; !ok {
			return false
		}
	}
	return true
}

// parseAllowList turns a comma-separated allow-list into a membership set.
// "*", "all", and the empty string disable filtering entirely.
func parseAllowList(raw string) map[string]struct{} {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "*" || strings.EqualFold(trimmed, "all") {
		return nil
	}
	set := make(map[string]struct{})
	for _, entry := range strings.Split(trimmed, ",") {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			set[entry] = struct{}{}
		}
	}
	return set
}
