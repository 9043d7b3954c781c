package middleware

import (
	"net/http"
	"time"
)

// Logging пишет в лог метод, путь, код ответа и длительность каждого запроса
func Logging(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			switch {
			case rec.status >= http.StatusInternalServerError:
				log.Error("%s %s - status=%d duration=%s", r.Method, r.URL.Path, rec.status, duration)
			case rec.status >= http.StatusBadRequest:
				log.Warn("%s %s - status=%d duration=%s", r.Method, r.URL.Path, rec.status, duration)
			default:
				log.Info("%s %s - status=%d duration=%s", r.Method, r.URL.Path, rec.status, duration)
			}
		})
	}
}
