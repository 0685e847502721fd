package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

// Webhook outcomes. "absorbed" covers redelivered and out-of-order events
// that were recognized as already handled.
const (
	OutcomeApplied   = "applied"
	OutcomeAbsorbed  = "absorbed"
	OutcomeRejected  = "rejected"
	OutcomeUnmatched = "unmatched"
	OutcomeIgnored   = "ignored"
	OutcomeMalformed = "malformed"
)

var (
	WebhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ohiplay",
		Subsystem: "webhook",
		Name:      "events_total",
		Help:      "Webhook events received from the payment gateway, by type and outcome.",
	}, []string{"type", "outcome"})

	Transitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ohiplay",
		Subsystem: "booking",
		Name:      "transitions_total",
		Help:      "Booking lifecycle transitions, by event and outcome.",
	}, []string{"event", "outcome"})
)

func Handler() ginext.HandlerFunc {
	h := promhttp.Handler()
	return func(c *ginext.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
