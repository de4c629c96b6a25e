// Package metrics provides the Prometheus instrumentation for caches,
// upstream requests and HTTP routes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/cache"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/upstream"
)

// Default histogram buckets for upstream and population latency (in seconds).
var defaultBuckets = []float64{
	.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 20,
}

// Metrics holds every collector the service registers.
type Metrics struct {
	cacheEvents      *prometheus.CounterVec
	populateDuration *prometheus.HistogramVec
	upstreamDuration *prometheus.HistogramVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		cacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cfbhq_cache_events_total",
			Help: "Cache events by cache name (hit, miss, stale)",
		}, []string{"cache", "event"}),

		populateDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cfbhq_cache_populate_duration_seconds",
			Help:    "Cache population latency in seconds",
			Buckets: defaultBuckets,
		}, []string{"cache", "outcome"}),

		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cfbhq_upstream_request_duration_seconds",
			Help:    "Upstream request latency in seconds, retries included",
			Buckets: defaultBuckets,
		}, []string{"source", "outcome"}),

		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cfbhq_http_requests_total",
			Help: "HTTP requests by route pattern and status code",
		}, []string{"route", "method", "status"}),

		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cfbhq_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}

	reg.MustRegister(
		m.cacheEvents,
		m.populateDuration,
		m.upstreamDuration,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Cache returns a cache.Observer backed by these metrics.
func (m *Metrics) Cache() cache.Observer {
	return cacheObserver{m: m}
}

// Upstream returns an upstream.Observer backed by these metrics.
func (m *Metrics) Upstream() upstream.Observer {
	return upstreamObserver{m: m}
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(route, method, status string, took time.Duration) {
	m.httpRequests.WithLabelValues(route, method, status).Inc()
	m.httpDuration.WithLabelValues(route).Observe(took.Seconds())
}

type cacheObserver struct {
	m *Metrics
}

func (o cacheObserver) Hit(name string) {
	o.m.cacheEvents.WithLabelValues(name, "hit").Inc()
}

func (o cacheObserver) Miss(name string) {
	o.m.cacheEvents.WithLabelValues(name, "miss").Inc()
}

func (o cacheObserver) Populated(name string, took time.Duration, err error) {
	o.m.populateDuration.WithLabelValues(name, outcome(err)).Observe(took.Seconds())
}

func (o cacheObserver) ServedStale(name string) {
	o.m.cacheEvents.WithLabelValues(name, "stale").Inc()
}

type upstreamObserver struct {
	m *Metrics
}

func (o upstreamObserver) ObserveUpstream(source string, took time.Duration, err error) {
	o.m.upstreamDuration.WithLabelValues(source, outcome(err)).Observe(took.Seconds())
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

var (
	_ cache.Observer    = cacheObserver{}
	_ upstream.Observer = upstreamObserver{}
)
