package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects the service counters. A nil *Metrics is valid and
// records nothing, which tests rely on.
type Metrics struct {
	fetchesTotal       *prometheus.CounterVec
	fetchDuration      prometheus.Histogram
	cacheHits          prometheus.Counter
	cacheMisses        prometheus.Counter
	recordsSkipped     prometheus.Counter
	timestampFallbacks prometheus.Counter
	unknownShapes      prometheus.Counter
	liveEvents         prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		fetchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ethograph_pipeline_fetches_total",
			Help: "Total upstream pipeline fetches by outcome.",
		}, []string{"outcome"}),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ethograph_pipeline_fetch_duration_seconds",
			Help:    "Histogram of upstream pipeline fetch durations.",
			Buckets: prometheus.DefBuckets,
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ethograph_cache_hits_total",
			Help: "Total dashboard window cache hits.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ethograph_cache_misses_total",
			Help: "Total dashboard window cache misses.",
		}),
		recordsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ethograph_records_skipped_total",
			Help: "Total malformed upstream records skipped during normalization.",
		}),
		timestampFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ethograph_timestamp_fallbacks_total",
			Help: "Total timestamps substituted with the current instant.",
		}),
		unknownShapes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ethograph_payload_shape_unknown_total",
			Help: "Total upstream payloads with an unrecognized shape.",
		}),
		liveEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ethograph_live_events_total",
			Help: "Total events received over the live stream.",
		}),
	}

	prometheus.MustRegister(
		m.fetchesTotal,
		m.fetchDuration,
		m.cacheHits,
		m.cacheMisses,
		m.recordsSkipped,
		m.timestampFallbacks,
		m.unknownShapes,
		m.liveEvents,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}

func (m *Metrics) FetchObserved(duration time.Duration, success bool) {
	if m == nil {
		return
	}
	m.fetchDuration.Observe(duration.Seconds())
	outcome := "ok"
	if !success {
		outcome = "error"
	}
	m.fetchesTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.cacheMisses.Inc()
}

// NormalizationOutcome records the diagnostics of one normalization run.
func (m *Metrics) NormalizationOutcome(skipped, fallbacks int) {
	if m == nil {
		return
	}
	if skipped > 0 {
		m.recordsSkipped.Add(float64(skipped))
	}
	if fallbacks > 0 {
		m.timestampFallbacks.Add(float64(fallbacks))
	}
}

func (m *Metrics) UnknownShape() {
	if m == nil {
		return
	}
	m.unknownShapes.Inc()
}

func (m *Metrics) LiveEvents(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.liveEvents.Add(float64(n))
}
