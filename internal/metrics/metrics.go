package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the service. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec

	VerificationsRecorded prometheus.Counter
	VerificationsRemoved  prometheus.Counter
	DirectVerifications   prometheus.Counter

	// Flips of PersonSkill.IsVerified by new state ("true"/"false").
	VerifiedFlagChanges *prometheus.CounterVec

	CacheLookups *prometheus.CounterVec
}

// New registers every collector with reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "skillmatrix_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),

		HTTPLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "skillmatrix_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),

		VerificationsRecorded: f.NewCounter(prometheus.CounterOpts{
			Name: "skillmatrix_verifications_recorded_total",
			Help: "Total skill verifications recorded",
		}),

		VerificationsRemoved: f.NewCounter(prometheus.CounterOpts{
			Name: "skillmatrix_verifications_removed_total",
			Help: "Total skill verifications removed",
		}),

		DirectVerifications: f.NewCounter(prometheus.CounterOpts{
			Name: "skillmatrix_direct_verifications_total",
			Help: "Total administrative verify calls that bypass verification records",
		}),

		VerifiedFlagChanges: f.NewCounterVec(prometheus.CounterOpts{
			Name: "skillmatrix_verified_flag_changes_total",
			Help: "Total changes of the person skill verified flag by new state",
		}, []string{"state"}),

		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "skillmatrix_cache_lookups_total",
			Help: "Read model cache lookups by result",
		}, []string{"result"}), // result: "hit", "miss", "error"
	}
}

func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, statusClass(status)).Inc()
	m.HTTPLatency.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) IncVerificationRecorded() {
	if m != nil {
		m.VerificationsRecorded.Inc()
	}
}

func (m *Metrics) IncVerificationRemoved() {
	if m != nil {
		m.VerificationsRemoved.Inc()
	}
}

func (m *Metrics) IncDirectVerification() {
	if m != nil {
		m.DirectVerifications.Inc()
	}
}

func (m *Metrics) IncVerifiedFlagChange(verified bool) {
	if m == nil {
		return
	}
	state := "false"
	if verified {
		state = "true"
	}
	m.VerifiedFlagChanges.WithLabelValues(state).Inc()
}

func (m *Metrics) IncCacheLookup(result string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(result).Inc()
	}
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
