package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "turf-test")

	m.RecordTransition("date", "slot")
	m.RecordTransition("date", "slot")
	m.RecordPaymentOutcome("verified")
	m.RecordUpstreamCall("available_slots", "200", 20*time.Millisecond)
	m.RecordHTTPRequest("GET", "/api/v1/sessions/{sessionId}", "200", time.Millisecond)
	m.SetActiveSessions(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.WizardTransitions.WithLabelValues("date", "slot")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PaymentOutcomes.WithLabelValues("verified")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamCallsTotal.WithLabelValues("available_slots", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/sessions/{sessionId}", "200")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ActiveSessions))
}
