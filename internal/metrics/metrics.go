package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teamvest_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ResponseTimeHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "teamvest_http_response_time_seconds",
			Help:    "Histogram of response times",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	AccrualRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teamvest_accrual_runs_total",
			Help: "Daily accrual runs by trigger",
		},
		[]string{"trigger"},
	)

	AccrualItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teamvest_accrual_items_total",
			Help: "Investments handled by the accrual engine by outcome",
		},
		[]string{"outcome"},
	)

	AccrualAmount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teamvest_accrual_amount_total",
			Help: "Credited amounts by kind (roi, base, booster, commission)",
		},
		[]string{"kind"},
	)

	AccrualDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "teamvest_accrual_duration_seconds",
			Help:    "Wall time of one accrual run",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		},
	)

	TreeRebuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "teamvest_tree_rebuild_duration_seconds",
			Help:    "Wall time of a full referral tree rebuild",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		},
	)

	PayoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teamvest_payouts_total",
			Help: "Withdrawals settled through the transfer service by outcome",
		},
		[]string{"outcome"},
	)
)

// Middleware records request counts and latencies keyed by the chi route
// pattern, so path parameters do not explode the label set.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()
		ResponseTimeHistogram.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}
