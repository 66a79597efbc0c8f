package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"helpdesk/internal/application/ticket/usecases"
)

var _ usecases.TicketMetrics = (*Metrics)(nil)

func TestMetrics_BusinessCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordCacheLookup(true)
	m.RecordCacheLookup(false)
	m.RecordCacheLookup(false)
	m.RecordTransition("OPEN", "ANSWERED", true)
	m.RecordTransition("CLOSED", "OPEN", false)
	m.RecordTransition("OPEN", "REOPENED", false)
	m.RecordCommentCreated()
	m.RecordRateLimited()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("OPEN", "ANSWERED", "allowed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("CLOSED", "OPEN", "denied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("OPEN", "unknown", "denied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.commentsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rateLimited))
}

func TestMetrics_HTTPRequests(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveHTTPRequest(http.MethodGet, "/api/tickets/:id", http.StatusOK, 5*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/tickets/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.httpDuration))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordCacheLookup(true)
		m.RecordTransition("OPEN", "CLOSED", true)
		m.RecordCommentCreated()
		m.RecordRateLimited()
		m.ObserveHTTPRequest("GET", "/", 200, time.Second)
	})
}
