package turfapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для учета вызовов внешнего API (может быть nil)
type Metrics interface {
	RecordUpstreamCall(operation string, status string, duration time.Duration)
}
