package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/powergrid/intelligence-api/internal/compliance/domain"
)

// Metrics tracks answers served and calls made to the model provider.
// A nil *Metrics records nothing.
type Metrics struct {
	answers          *prometheus.CounterVec
	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "intelligence_api",
			Name:      "answers_total",
			Help:      "Answers returned, by the path that produced them.",
		}, []string{"mode"}),
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "intelligence_api",
			Name:      "upstream_requests_total",
			Help:      "Calls to the language model API, by provider and outcome.",
		}, []string{"provider", "outcome"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "intelligence_api",
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of calls to the language model API.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}, []string{"provider"}),
	}
	reg.MustRegister(m.answers, m.upstreamRequests, m.upstreamDuration)
	return m
}

func (m *Metrics) recordAnswer(mode domain.Mode) {
	if m == nil {
		return
	}
	m.answers.WithLabelValues(string(mode)).Inc()
}

// recordUpstreamCall records one provider call; the outcome label is "ok" or the failure kind
func (m *Metrics) recordUpstreamCall(provider string, duration time.Duration, err *domain.UpstreamError) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = string(err.Kind)
	}
	m.upstreamRequests.WithLabelValues(provider, outcome).Inc()
	m.upstreamDuration.WithLabelValues(provider).Observe(duration.Seconds())
}
