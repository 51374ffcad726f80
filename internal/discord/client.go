package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/auto-notify/docker-discord-notify/internal/config"
	"github.com/auto-notify/docker-discord-notify/internal/metrics"
	"github.com/rs/zerolog"
)

// Per-attempt request timeout, independent of the retry configuration.
const requestTimeout = 10 * time.Second

// Client delivers embeds to a Discord webhook with a bounded retry budget
// and a fixed, non-exponential backoff. Delivery failure is reported through
// the boolean result only; the client never returns an error to the caller.
type Client struct {
	logger     zerolog.Logger
	httpClient *http.Client
	url        string
	maxRetries int
	retryDelay time.Duration
	sleep      func(time.Duration)
}

func NewClient(cfg *config.DiscordConfig, logger zerolog.Logger) *Client {
	return &Client{
		logger:     logger,
		httpClient: &http.Client{Timeout: requestTimeout},
		url:        cfg.WebhookURL,
		maxRetries: cfg.MaxRetries,
		retryDelay: time.Duration(cfg.RetryDelay) * time.Second,
		sleep:      time.Sleep,
	}
}

// Deliver posts the embed to the webhook. It returns true as soon as one
// attempt is acknowledged with 204, false once the attempt budget is
// exhausted. Between failed attempts, but not after the final one, it sleeps
// for the configured retry delay.
func (c *Client) Deliver(embed Embed) bool {
	body, err := json.Marshal(webhookPayload{Embeds: []Embed{embed}})
	if err != nil {
		c.logger.Error().Err(err).Msg("Marshaling webhook payload")
		return false
	}

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if c.post(body, attempt) {
			return true
		}
		if attempt < c.maxRetries {
			c.sleep(c.retryDelay)
		}
	}
	return false
}

func (c *Client) post(body []byte, attempt int) bool {
	metrics.IncDeliveryAttempt()

	req, err := http.NewRequest(http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error().Err(err).Msg("Building webhook request")
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).
			Int("attempt", attempt).
			Int("max_retries", c.maxRetries).
			Msg("Webhook request failed")
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusNoContent {
		return true
	}
	c.logger.Warn().
		Int("status_code", resp.StatusCode).
		Int("attempt", attempt).
		Msg("Discord API returned non-success status code")
	return false
}
