package discord

// Embed is a single Discord webhook embed.
type Embed struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Color       int     `json:"color"`
	Fields      []Field `json:"fields"`
	Timestamp   string  `json:"timestamp"`
}

// Field is one name/value entry in an embed. Inline fields render side by
// side; full-width fields get their own row.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type webhookPayload struct {
	Embeds []Embed `json:"embeds"`
}
