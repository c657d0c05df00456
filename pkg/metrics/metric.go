package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "metroplanner"

// Metric groups the Prometheus collectors of the search service and its HTTP API.
type Metric struct {
	searches         *prometheus.CounterVec
	nodesExpanded    *prometheus.HistogramVec
	searchDuration   *prometheus.HistogramVec
	cacheLookups     *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	rateLimitedTotal prometheus.Counter
}

// NewMetric creates the collectors and registers them on reg.
func NewMetric(reg prometheus.Registerer) *Metric {
	m := &Metric{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Number of route searches by topology, algorithm and outcome.",
		}, []string{"topology", "algorithm", "found"}),
		nodesExpanded: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_nodes_expanded",
			Help:      "Frontier removals per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
		}, []string{"algorithm"}),
		searchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of a single search.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"algorithm"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_cache_lookups_total",
			Help:      "Search result cache lookups by result.",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "path", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		rateLimitedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
	}

	reg.MustRegister(m.searches, m.nodesExpanded, m.searchDuration, m.cacheLookups,
		m.httpRequests, m.httpDuration, m.rateLimitedTotal)
	return m
}

func (m *Metric) ObserveSearch(topology, algorithm string, found bool, nodesExpanded int, elapsed time.Duration) {
	m.searches.WithLabelValues(topology, algorithm, strconv.FormatBool(found)).Inc()
	m.nodesExpanded.WithLabelValues(algorithm).Observe(float64(nodesExpanded))
	m.searchDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

func (m *Metric) ObserveCacheLookup(hit bool) {
	if hit {
		m.cacheLookups.WithLabelValues("hit").Inc()
		return
	}
	m.cacheLookups.WithLabelValues("miss").Inc()
}

func (m *Metric) ObserveHTTPRequest(method, path string, code int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func (m *Metric) IncRateLimited() {
	m.rateLimitedTotal.Inc()
}
