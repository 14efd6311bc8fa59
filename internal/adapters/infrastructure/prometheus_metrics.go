package infrastructure

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetricsAdapter implements the AccessMetrics port
type PrometheusMetricsAdapter struct {
	submissions   *prometheus.CounterVec
	emails        *prometheus.CounterVec
	emailDuration prometheus.Histogram
}

// NewPrometheusMetricsAdapter registers the access request collectors on reg
func NewPrometheusMetricsAdapter(reg prometheus.Registerer) (*PrometheusMetricsAdapter, error) {
	m := &PrometheusMetricsAdapter{
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toolkit_access_requests_total",
				Help: "Access request submissions by outcome",
			},
			[]string{"outcome"},
		),
		emails: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toolkit_access_notifications_total",
				Help: "Notification emails by result",
			},
			[]string{"result"},
		),
		emailDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "toolkit_access_notification_duration_seconds",
				Help:    "Time spent calling the email sender",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
		),
	}

	for _, c := range []prometheus.Collector{m.submissions, m.emails, m.emailDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// RecordSubmission counts one submission outcome
func (m *PrometheusMetricsAdapter) RecordSubmission(outcome string) {
	m.submissions.WithLabelValues(outcome).Inc()
}

// RecordEmail counts one email attempt and observes its duration
func (m *PrometheusMetricsAdapter) RecordEmail(sent bool, duration time.Duration) {
	result := "failed"
	if sent {
		result = "sent"
	}
	m.emails.WithLabelValues(result).Inc()
	m.emailDuration.Observe(duration.Seconds())
}
