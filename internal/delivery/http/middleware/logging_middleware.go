package middleware

import (
	"net/http"
	"time"

	"hms-backend/pkg/metrics"

	"github.com/sirupsen/logrus"
)

type LoggingMiddleware struct {
	log *logrus.Logger
}

func NewLoggingMiddleware(log *logrus.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{log: log}
}

// Handle writes one access log entry per request.
func (m *LoggingMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := metrics.NewStatusRecorder(w)

		next.ServeHTTP(rec, r)

		entry := m.log.WithFields(logrus.Fields{
			"method":      r.Method,
			"route":       metrics.RouteTemplate(r),
			"status":      rec.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		if rec.Status() >= http.StatusInternalServerError {
			entry.Warn("request failed")
			return
		}
		entry.Info("request handled")
	})
}
