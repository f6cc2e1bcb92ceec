package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	AuthRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_rejections_total",
			Help: "Total number of rejected requests by reason",
		},
		[]string{"reason"},
	)
	CacheRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "creator_cache_requests_total",
			Help: "Creator cache lookups by result (hit, miss)",
		},
		[]string{"result"},
	)
	CacheEvictions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "creator_cache_evictions_total",
			Help: "Creator cache removals by reason (capacity, expired, invalidated)",
		},
		[]string{"reason"},
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "creator_cache_entries",
			Help: "Current number of creator cache entries",
		},
	)
	ChallengeTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "challenge_transitions_total",
			Help: "Challenge lifecycle transitions by resulting status",
		},
		[]string{"status"},
	)
	VisitsCounted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "profile_visits_counted_total",
			Help: "Unique profile visits that incremented a counter",
		},
	)
)

var once sync.Once

// InitPrometheus registers the collectors with the default registry. Safe to call more than once.
func InitPrometheus() {
	once.Do(func() {
		prometheus.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDuration,
			AuthRejections,
			CacheRequests,
			CacheEvictions,
			CacheSize,
			ChallengeTransitions,
			VisitsCounted,
		)
	})
}
