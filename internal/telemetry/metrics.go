package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysesTotal counts analysis computations by kind
	// (day, trend, balance, depth_ai, depth_dsa, weekly).
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "study_analyses_total",
		Help: "Total analysis computations by kind",
	}, []string{"kind"})

	// VerdictsTotal counts stored weekly verdicts.
	VerdictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "study_verdicts_total",
		Help: "Total weekly verdicts stored",
	})

	// NotificationsTotal counts outbound messages by status (sent, failed, skipped).
	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "study_notifications_total",
		Help: "Total outbound notifications by status",
	}, []string{"status"})

	// HTTPRequestsTotal counts API requests by method, chi route pattern and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "study_http_requests_total",
		Help: "Total HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "study_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Notification statuses.
const (
	NotificationSent    = "sent"
	NotificationFailed  = "failed"
	NotificationSkipped = "skipped"
)
