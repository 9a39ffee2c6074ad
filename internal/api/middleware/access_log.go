package middleware

import (
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// AccessLog пишет строку access-лога с идентификатором запроса.
// Должен стоять в цепочке после RequestID
func AccessLog(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(recorder, r)

			log.Info("type: access, request_id: %s, method: %s, url: %s, status: %d, latency: %s",
				RequestIDFromContext(r.Context()),
				r.Method,
				r.URL.Path,
				recorder.status,
				time.Since(start),
			)
		})
	}
}
