package metrics

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Package-level Prometheus collectors. They are registered via Register.
var (
	regOK atomic.Bool

	eventsReceived = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "docker_notify",
			Subsystem: "events",
			Name:      "received_total",
			Help:      "Number of container events received from the Docker event stream.",
		},
	)
	eventsAccepted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "docker_notify",
			Subsystem: "events",
			Name:      "accepted_total",
			Help:      "Number of events that passed the subscription filters.",
		},
	)
	notificationsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docker_notify",
			Subsystem: "notifications",
			Name:      "sent_total",
			Help:      "Number of notifications acknowledged by the webhook.",
		}, []string{"action"},
	)
	notificationsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docker_notify",
			Subsystem: "notifications",
			Name:      "failed_total",
			Help:      "Number of notifications dropped after exhausting all delivery attempts.",
		}, []string{"action"},
	)
	deliveryAttempts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "docker_notify",
			Subsystem: "delivery",
			Name:      "attempts_total",
			Help:      "Number of webhook delivery attempts, including retries.",
		},
	)
)

// Register registers all metrics with the provided registerer.
// It is safe to call multiple times; subsequent calls after success are no-ops.
func Register(r prometheus.Registerer) error {
	if regOK.Load() {
		return nil
	}
	cs := []prometheus.Collector{eventsReceived, eventsAccepted, notificationsSent, notificationsFailed, deliveryAttempts}
	for _, c := range cs {
		if err := r.Register(c); err != nil {
			// If already registered, ignore (allows double Register with default registry)
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	regOK.Store(true)
	return nil
}

// Handler returns an http.Handler that serves Prometheus metrics for the DefaultGatherer.
func Handler() http.Handler { return promhttp.Handler() }

// Below are lightweight helpers used by internal packages to record metrics.
// They no-op if Register hasn't been called.

func IncEventReceived() {
	if regOK.Load() {
		eventsReceived.Inc()
	}
}

func IncEventAccepted() {
	if regOK.Load() {
		eventsAccepted.Inc()
	}
}

func IncNotificationSent(action string) {
	if regOK.Load() {
		notificationsSent.WithLabelValues(action).Inc()
	}
}

func IncNotificationFailed(action string) {
	if regOK.Load() {
		notificationsFailed.WithLabelValues(action).Inc()
	}
}

func IncDeliveryAttempt() {
	if regOK.Load() {
		deliveryAttempts.Inc()
	}
}
