package handler

import (
	"net/http"
	"strconv"
	"time"

	"go-user-api/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware records request counts and latency per method, route
// pattern and status code.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		// The mux only sets the matched pattern on its own copy of the
		// request, so the raw path is used as the label here.
		path := r.URL.Path
		if path == "" {
			path = "unknown"
		}
		status := strconv.Itoa(rec.status)
		duration := time.Since(start).Seconds()

		metrics.HTTPRequestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
	})
}
