package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncVerificationRecorded()
	m.IncVerificationRecorded()
	m.IncVerificationRemoved()
	m.IncDirectVerification()
	m.IncVerifiedFlagChange(true)
	m.IncVerifiedFlagChange(false)
	m.IncVerifiedFlagChange(false)
	m.IncCacheLookup("hit")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.VerificationsRecorded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.VerificationsRemoved))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DirectVerifications))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.VerifiedFlagChanges.WithLabelValues("true")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.VerifiedFlagChanges.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")))
}

func TestMetrics_ObserveHTTPGroupsStatus(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveHTTP("GET", "/api/people", 200, time.Millisecond)
	m.ObserveHTTP("GET", "/api/people", 201, time.Millisecond)
	m.ObserveHTTP("GET", "/api/people", 404, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/people", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/people", "4xx")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/", 200, 0)
		m.IncVerificationRecorded()
		m.IncVerificationRemoved()
		m.IncDirectVerification()
		m.IncVerifiedFlagChange(true)
		m.IncCacheLookup("miss")
	})
}
