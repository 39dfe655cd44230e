package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sipadvisor_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency per route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sipadvisor_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// FundAPIRequests counts fund-data API fetches by outcome.
	FundAPIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sipadvisor_fund_api_requests_total",
			Help: "Fund data API fetches by outcome",
		},
		[]string{"status"},
	)

	// FundAPIDuration observes fund-data API fetch latency.
	FundAPIDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sipadvisor_fund_api_duration_seconds",
			Help:    "Fund data API fetch duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// CacheHits counts fund-data cache hits.
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sipadvisor_fund_cache_hits_total",
			Help: "Fund data cache hits",
		},
	)

	// CacheMisses counts fund-data cache misses.
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sipadvisor_fund_cache_misses_total",
			Help: "Fund data cache misses",
		},
	)

	// StaticFallbacks counts recommendation runs served from static data.
	StaticFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sipadvisor_static_fallbacks_total",
			Help: "Recommendation runs that fell back to static fund data",
		},
	)

	// RecommendationRuns counts recommendation runs by risk profile.
	RecommendationRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sipadvisor_recommendation_runs_total",
			Help: "Recommendation runs by risk profile",
		},
		[]string{"risk_profile"},
	)
)
