package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/ticket-order-service/internal/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	claimsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "claims_processed_total",
			Help:      "Total number of successfully processed scanner claims",
		},
	)

	claimsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "claims_failed_total",
			Help:      "Total number of failed scanner claim messages",
		},
	)

	claimsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "claims_dlq_total",
			Help:      "Total number of claim messages written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	claimProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "claim_processing_duration_seconds",
			Help:      "Histogram of claim message processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	claimsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "claims_in_progress",
			Help:      "Number of claim messages currently being processed",
		},
	)
)

var (
	orderRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "http",
			Name:      "order_requests_total",
			Help:      "Total number of order API requests by operation and status",
		},
		[]string{"operation", "status"},
	)

	orderRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "order_service",
			Subsystem: "http",
			Name:      "order_request_duration_seconds",
			Help:      "Histogram of order API request durations",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	orderRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "order_service",
			Subsystem: "http",
			Name:      "order_requests_in_progress",
			Help:      "Number of in-progress order API requests",
		},
	)
)

var (
	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of created orders",
		},
	)

	itemsClaimed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "orders",
			Name:      "items_claimed_total",
			Help:      "Total quantity of claimed items by channel",
		},
		[]string{"channel"},
	)

	claimRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "orders",
			Name:      "claim_rejections_total",
			Help:      "Total number of rejected claims by reason",
		},
		[]string{"reason"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		claimsProcessed,
		claimsFailed,
		claimsDLQ,
		commitErrors,
		claimProcessingDuration,
		claimsInProgress,

		orderRequestTotal,
		orderRequestDuration,
		orderRequestsInProgress,

		ordersCreated,
		itemsClaimed,
		claimRejections,
	)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument считает запросы и их длительность для одной операции API.
func instrument(operation string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		middleware.SetOperation(r.Context(), operation)
		orderRequestsInProgress.Inc()
		defer orderRequestsInProgress.Dec()

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)

		orderRequestTotal.WithLabelValues(operation, strconv.Itoa(rec.status)).Inc()
		orderRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
