package middleware

import (
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	ports "blog-post-service/internal/domain/ports/output"
)

// Metrics records request count and latency per route pattern. Handlers
// between it and the ServeMux must pass the request on unchanged so that
// r.Pattern is set once the mux has routed. A request whose handler panics is
// recorded with status 500 before the panic continues.
func Metrics(metrics ports.MetricsProvider) func(http.Handler) http.Handler {
	var inFlight atomic.Int64

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			metrics.SetActiveConnections(int(inFlight.Add(1)))

			rec := &statusRecorder{ResponseWriter: w}
			completed := false
			defer func() {
				metrics.SetActiveConnections(int(inFlight.Add(-1)))

				route := r.Pattern
				if route == "" {
					route = "unmatched"
				}
				code := rec.statusCode()
				if !completed {
					code = http.StatusInternalServerError
				}
				status := strconv.Itoa(code)
				metrics.IncrementHTTPRequests(r.Method, route, status)
				metrics.RecordHTTPRequestDuration(r.Method, route, status, time.Since(start))
			}()

			next.ServeHTTP(rec, r)
			completed = true
		})
	}
}
