package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess  = "success"
	OutcomeHTTP     = "http_error"
	OutcomeRejected = "rejected"
	OutcomeTimeout  = "timeout"
	OutcomeNetwork  = "network_error"
	OutcomeBadBody  = "bad_body"
)

// WebhookMetrics counts and times calls to the workflow webhooks.
type WebhookMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewWebhookMetrics registers the webhook collectors. A nil registerer uses
// the prometheus default registry.
func NewWebhookMetrics(registerer prometheus.Registerer) *WebhookMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &WebhookMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "webhook_requests_total",
			Help: "Workflow webhook calls by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "webhook_request_duration_seconds",
			Help:    "Workflow webhook round-trip latency.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		}, []string{"endpoint"}),
	}
	registerer.MustRegister(m.requests, m.duration)
	return m
}

func (m *WebhookMetrics) Observe(endpoint, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(endpoint, outcome).Inc()
	m.duration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}
