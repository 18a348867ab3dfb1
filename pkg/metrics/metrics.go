// Package metrics exposes Prometheus collectors for the search service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "talent"

// Metrics owns a private registry and every collector registered on it
type Metrics struct {
	registry *prometheus.Registry

	searches        *prometheus.CounterVec
	searchErrors    *prometheus.CounterVec
	scored          prometheus.Counter
	dropped         *prometheus.CounterVec
	returned        prometheus.Histogram
	poolSize        prometheus.Histogram
	pipelineSeconds prometheus.Histogram
	exports         *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpSeconds  *prometheus.HistogramVec
}

// New builds the collectors on a fresh registry with Go runtime and process collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "requests_total",
			Help:      "Completed talent searches by target position.",
		}, []string{"position"}),
		searchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "errors_total",
			Help:      "Failed talent searches by stage.",
		}, []string{"stage"}),
		scored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "candidates_scored_total",
			Help:      "Candidates scored across all searches.",
		}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "soft_filter_dropped_total",
			Help:      "Candidates removed after scoring, by filter.",
		}, []string{"filter"}),
		returned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "matched_candidates",
			Help:      "Candidates left after soft filtering.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		poolSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "pool_size",
			Help:      "Candidates returned by the hard-filtered fetch.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		pipelineSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "pipeline_duration_seconds",
			Help:      "Time spent scoring, filtering, sorting and aggregating.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "export",
			Name:      "requests_total",
			Help:      "Talent exports by file format.",
		}, []string{"format"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.searches, m.searchErrors, m.scored, m.dropped, m.returned,
		m.poolSize, m.pipelineSeconds, m.exports,
		m.httpRequests, m.httpSeconds,
	)
	return m
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordSearch records one completed search
func (m *Metrics) RecordSearch(position string, poolSize, matched int, dropped map[string]int, elapsed time.Duration) {
	if position == "" {
		position = "none"
	}
	m.searches.WithLabelValues(position).Inc()
	m.scored.Add(float64(poolSize))
	m.poolSize.Observe(float64(poolSize))
	m.returned.Observe(float64(matched))
	m.pipelineSeconds.Observe(elapsed.Seconds())
	for filter, n := range dropped {
		m.dropped.WithLabelValues(filter).Add(float64(n))
	}
}

// RecordSearchError records a failed search at the given stage
func (m *Metrics) RecordSearchError(stage string) {
	m.searchErrors.WithLabelValues(stage).Inc()
}

// RecordExport records one rendered export
func (m *Metrics) RecordExport(format string) {
	m.exports.WithLabelValues(format).Inc()
}

// GinMiddleware records request counts and latency per matched route
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpSeconds.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
