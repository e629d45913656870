package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Core lookup/hit/miss counters, labeled by cache namespace
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_lookups_total",
			Help: "Total number of read-through cache lookups",
		},
		[]string{"namespace"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of lookups served from a fresh cache entry",
		},
		[]string{"namespace"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of lookups that went to the upstream API",
		},
		[]string{"namespace"},
	)

	CacheFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_stale_fallbacks_total",
			Help: "Total number of lookups served stale data after an upstream failure",
		},
		[]string{"namespace"},
	)

	RemoteErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "remote_fetch_errors_total",
			Help: "Total number of failed upstream fetches",
		},
		[]string{"namespace"},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_store_errors_total",
			Help: "Total number of key-value store failures by operation",
		},
		[]string{"namespace", "operation"},
	)

	// Lookup latency, end to end (cache check plus any upstream call)
	LookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cache_lookup_duration_seconds",
			Help:    "Duration of read-through lookups",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"namespace"},
	)
)

// RecordLookup records a read-through lookup
func RecordLookup(namespace string) {
	CacheLookups.WithLabelValues(namespace).Inc()
}

// RecordHit records a lookup served from a fresh entry
func RecordHit(namespace string) {
	CacheHits.WithLabelValues(namespace).Inc()
}

// RecordMiss records a lookup that had to call upstream
func RecordMiss(namespace string) {
	CacheMisses.WithLabelValues(namespace).Inc()
}

// RecordFallback records a lookup served stale data after an upstream failure
func RecordFallback(namespace string) {
	CacheFallbacks.WithLabelValues(namespace).Inc()
}

// RecordRemoteError records a failed upstream fetch
func RecordRemoteError(namespace string) {
	RemoteErrors.WithLabelValues(namespace).Inc()
}

// RecordStoreError records a key-value store failure
func RecordStoreError(namespace, operation string) {
	StoreErrors.WithLabelValues(namespace, operation).Inc()
}

// TimeLookup returns a timer function for measuring lookup duration
func TimeLookup(namespace string) func() {
	timer := prometheus.NewTimer(LookupDuration.WithLabelValues(namespace))
	return func() {
		timer.ObserveDuration()
	}
}
