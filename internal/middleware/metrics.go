package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Запросы вне API заказов (/metrics, /swagger, 404) попадают в одну метку.
const unnamedOperation = "other"

const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

var (
	httpInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "order_service",
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "Current number of in-flight HTTP requests.",
	})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by order operation, outcome and status code.",
	}, []string{"operation", "outcome", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "order_service",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP latency by order operation. Create includes catalog round trips.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation", "outcome"})
)

type operationKey struct{}

// operation заполняется обработчиком маршрута и читается middleware после ответа.
type operation struct {
	name string
}

// SetOperation помечает запрос именем операции (create_order, claim, ...).
// Без Metrics или Logger выше по цепочке вызов ничего не делает.
func SetOperation(ctx context.Context, name string) {
	if op, ok := ctx.Value(operationKey{}).(*operation); ok {
		op.name = name
	}
}

// withOperation переиспользует слот, если его уже положил внешний middleware.
func withOperation(r *http.Request) (*http.Request, *operation) {
	if op, ok := r.Context().Value(operationKey{}).(*operation); ok {
		return r, op
	}
	op := &operation{name: unnamedOperation}
	return r.WithContext(context.WithValue(r.Context(), operationKey{}, op)), op
}

func outcomeFor(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return outcomeFailed
	case status >= http.StatusBadRequest:
		return outcomeRejected
	default:
		return outcomeOK
	}
}

// Metrics считает запросы по операции заказа, а не по пути: у путей с order_id
// неограниченная кардинальность.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		start := time.Now()
		rw := wrapResponseWriter(w)
		r, op := withOperation(r)

		next.ServeHTTP(rw, r)

		outcome := outcomeFor(rw.status)
		httpRequestsTotal.WithLabelValues(op.name, outcome, strconv.Itoa(rw.status)).Inc()
		httpRequestDuration.WithLabelValues(op.name, outcome).Observe(time.Since(start).Seconds())
	})
}
