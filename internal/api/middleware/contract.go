package middleware

import "time"

// HTTPMetrics метрики HTTP запросов (pkg/metrics)
type HTTPMetrics interface {
	IncInFlight()
	DecInFlight()
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
