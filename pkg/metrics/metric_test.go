package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetric(reg)

	m.ObserveSearch("today", "A*", true, 6, 3*time.Microsecond)
	m.ObserveSearch("today", "A*", true, 13, 5*time.Microsecond)
	m.ObserveSearch("future", "DFS", false, 2, time.Microsecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.searches.WithLabelValues("today", "A*", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("future", "DFS", "false")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.nodesExpanded))
}

func TestObserveCacheAndHTTP(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetric(reg)

	m.ObserveCacheLookup(true)
	m.ObserveCacheLookup(false)
	m.ObserveCacheLookup(false)
	m.ObserveHTTPRequest("GET", "/api/computeRoutes", 200, time.Millisecond)
	m.IncRateLimited()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/computeRoutes", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rateLimitedTotal))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
