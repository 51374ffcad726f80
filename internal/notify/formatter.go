package notify

import (
	"fmt"
	"time"

	"github.com/auto-notify/docker-discord-notify/internal/discord"
	"github.com/auto-notify/docker-discord-notify/internal/domain"
)

// Formatter maps an (event, status) pair to a Discord embed using the fixed
// per-action template table.
type Formatter struct {
	now func() time.Time
}

func NewFormatter() *Formatter {
	return &Formatter{now: time.Now}
}

// Format builds the notification embed for the event. The boolean is false
// when the action has no template, which means: do not notify.
func (f *Formatter) Format(evt domain.ContainerEvent, st domain.ContainerStatus) (discord.Embed, bool) {
	tmpl, ok := templateFor(evt.Action)
	if !ok {
		return discord.Embed{}, false
	}

	now := f.now().UTC()

	fields := []discord.Field{
		{Name: "Event", Value: string(evt.Action), Inline: true},
		{Name: "Image", Value: st.Image, Inline: true},
		{Name: "Status", Value: st.Status, Inline: true},
		{Name: "Health", Value: st.Health, Inline: true},
		{Name: "Platform", Value: st.Platform, Inline: true},
		// Discord renders <t:unix:F> as a full localized timestamp.
		{Name: "Timestamp", Value: fmt.Sprintf("<t:%d:F>", now.Unix()), Inline: false},
	}

	if evt.Action == domain.ActionDie {
		exitCode := evt.Attributes[domain.AttrExitCode]
		if exitCode == "" {
			exitCode = "Unknown"
		}
		fields = append(fields, discord.Field{Name: "Exit Code", Value: exitCode, Inline: false})
	}

	return discord.Embed{
		Title:       fmt.Sprintf(tmpl.Title, evt.Name),
		Description: fmt.Sprintf(tmpl.Description, evt.Name),
		Color:       tmpl.Color,
		Fields:      fields,
		Timestamp:   now.Format("2006-01-02T15:04:05Z"),
	}, true
}
