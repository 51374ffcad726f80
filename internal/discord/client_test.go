package discord

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/auto-notify/docker-discord-notify/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string, maxRetries int) (*Client, *int) {
	c := NewClient(&config.DiscordConfig{
		WebhookURL: url,
		MaxRetries: maxRetries,
		RetryDelay: 5,
	}, zerolog.Nop())

	sleeps := 0
	c.sleep = func(time.Duration) { sleeps++ }
	return c, &sleeps
}

func testEmbed() Embed {
	return Embed{
		Title:       "🟢 Container Started: web",
		Description: "Container web has started successfully.",
		Color:       0x00FF00,
		Fields:      []Field{{Name: "Event", Value: "start", Inline: true}},
		Timestamp:   "2024-06-01T10:30:00Z",
	}
}

func TestDeliverSuccessOnFirstAttempt(t *testing.T) {
	var requests int
	var gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, sleeps := newTestClient(srv.URL, 3)
	ok := c.Deliver(testEmbed())

	assert.True(t, ok)
	assert.Equal(t, 1, requests)
	assert.Equal(t, 0, *sleeps)
	assert.Equal(t, "application/json", gotContentType)

	var payload struct {
		Embeds []Embed `json:"embeds"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	require.Len(t, payload.Embeds, 1)
	assert.Equal(t, "🟢 Container Started: web", payload.Embeds[0].Title)
}

func TestDeliverRetriesUntilSuccess(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, sleeps := newTestClient(srv.URL, 3)
	ok := c.Deliver(testEmbed())

	assert.True(t, ok)
	assert.Equal(t, 3, requests)
	assert.Equal(t, 2, *sleeps)
}

func TestDeliverExhaustsBudget(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, sleeps := newTestClient(srv.URL, 3)
	ok := c.Deliver(testEmbed())

	assert.False(t, ok)
	assert.Equal(t, 3, requests)
	// No sleep after the final attempt.
	assert.Equal(t, 2, *sleeps)
}

func TestDeliverNon204IsNotSuccess(t *testing.T) {
	// Discord acknowledges with 204; even 200 counts as a failed attempt.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, _ := newTestClient(srv.URL, 1)
	assert.False(t, c.Deliver(testEmbed()))
}

func TestDeliverTransportErrorConsumesAttempts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c, sleeps := newTestClient(srv.URL, 2)
	ok := c.Deliver(testEmbed())

	assert.False(t, ok)
	assert.Equal(t, 1, *sleeps)
}
