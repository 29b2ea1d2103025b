package admin_logout

import (
	"github.com/m04kA/SMC-TurfBooking/internal/service/admin"
)

// AdminService интерфейс сервиса панели администратора
type AdminService interface {
	Logout(session *admin.Session)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
