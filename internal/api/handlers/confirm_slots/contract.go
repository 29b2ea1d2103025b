package confirm_slots

import (
	"github.com/m04kA/SMC-TurfBooking/internal/usecase/booking_wizard"
)

// SessionService интерфейс хранилища сессий визарда
type SessionService interface {
	Get(id string) (*booking_wizard.Wizard, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
