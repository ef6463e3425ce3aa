package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Auth attempt outcomes.
const (
	AuthSuccess = "success"
	AuthFailure = "failure"
)

// Collector owns its registry so several instances can coexist in tests.
type Collector struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	authAttempts    *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hms_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hms_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		authAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hms_auth_attempts_total",
				Help: "Total number of login attempts",
			},
			[]string{"outcome"},
		),
	}

	c.registry.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		c.authAttempts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordAuthAttempt(outcome string) {
	c.authAttempts.WithLabelValues(outcome).Inc()
}

// Handler serves the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// HTTPMiddleware records request count and latency labelled by route template.
func (c *Collector) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := NewStatusRecorder(w)

		next.ServeHTTP(wrapper, r)

		c.RecordHTTPRequest(r.Method, RouteTemplate(r), wrapper.Status(), time.Since(start))
	})
}

// RouteTemplate returns the matched mux path template, or "unmatched".
func RouteTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

// StatusRecorder captures the status code written by a handler.
type StatusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func NewStatusRecorder(w http.ResponseWriter) *StatusRecorder {
	return &StatusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *StatusRecorder) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *StatusRecorder) Status() int {
	return rw.statusCode
}
