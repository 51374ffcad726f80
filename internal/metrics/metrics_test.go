package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Register touches package-level state, so one test exercises the whole
// lifecycle: registration, idempotency, and the recording helpers.
func TestRegisterAndRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, Register(reg))
	// Second call is a no-op.
	require.NoError(t, Register(reg))

	IncEventReceived()
	IncEventAccepted()
	IncDeliveryAttempt()
	IncNotificationSent("start")
	IncNotificationFailed("die")

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["docker_notify_events_received_total"])
	assert.True(t, names["docker_notify_events_accepted_total"])
	assert.True(t, names["docker_notify_notifications_sent_total"])
	assert.True(t, names["docker_notify_notifications_failed_total"])
	assert.True(t, names["docker_notify_delivery_attempts_total"])
}
