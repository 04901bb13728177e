package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// cacheHits tracks cache hits by endpoint discriminator.
	cacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flightproxy_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"endpoint"}, // "autosuggest", "geo", "flights"
	)

	// cacheMisses tracks cache misses, including lazy expiries.
	cacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flightproxy_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"endpoint"},
	)

	// cacheEvictions tracks LRU evictions caused by the capacity bound.
	cacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "flightproxy_cache_evictions_total",
			Help: "Total number of entries evicted by the capacity bound",
		},
	)

	// cacheEntries tracks the current number of entries held.
	cacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "flightproxy_cache_entries",
			Help: "Current number of cache entries",
		},
	)
)
