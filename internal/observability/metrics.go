// Package observability provides prometheus metrics for the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RegistrationsTotal counts successful account registrations.
	RegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devconnect_registrations_total",
		Help: "Total number of successful account registrations",
	})

	// LoginsTotal counts login attempts by outcome.
	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnect_logins_total",
		Help: "Total number of login attempts by outcome",
	}, []string{"outcome"})

	// AuthRejectionsTotal counts requests rejected by the auth guard.
	AuthRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnect_auth_rejections_total",
		Help: "Total number of requests rejected by the auth middleware",
	}, []string{"reason"})

	// LikesTotal counts like/unlike operations by action.
	LikesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnect_likes_total",
		Help: "Total number of like and unlike operations",
	}, []string{"action"})

	// DatabaseQueryLatency records database query latency.
	DatabaseQueryLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "devconnect_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	})
)

// ObserveQuery records the latency of a database query.
func ObserveQuery(elapsed time.Duration) {
	DatabaseQueryLatency.Observe(elapsed.Seconds())
}

// RecordLogin increments the login counter for the given outcome.
func RecordLogin(success bool) {
	if success {
		LoginsTotal.WithLabelValues("success").Inc()
	} else {
		LoginsTotal.WithLabelValues("failure").Inc()
	}
}
