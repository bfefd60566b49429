package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wavectf_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wavectf_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wavectf_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wavectf_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// FlagSubmissions counts flag submissions by outcome
	FlagSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wavectf_flag_submissions_total",
			Help: "Total number of flag submissions by result",
		},
		[]string{"result"}, // "accepted", "incorrect", "already_solved", "cooldown", "error"
	)

	// SolvesTotal counts accepted solves
	SolvesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wavectf_solves_total",
			Help: "Total number of accepted solves",
		},
	)

	// WebsocketClients tracks connected solve feed clients
	WebsocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wavectf_websocket_clients",
			Help: "Number of connected solve feed websocket clients",
		},
	)

	// CacheHits counts the number of cache hits
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wavectf_cache_hits_total",
			Help: "Total number of cache hits",
		},
	)

	// CacheMisses counts the number of cache misses
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wavectf_cache_misses_total",
			Help: "Total number of cache misses",
		},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wavectf_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wavectf_goroutine_count",
			Help: "Number of goroutines",
		},
	)
)
