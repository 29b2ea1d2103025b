package sessions

import (
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/usecase/booking_wizard"
)

// Metrics интерфейс метрик визардов и числа активных сессий
type Metrics interface {
	booking_wizard.Metrics
	SetActiveSessions(n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
