package admin_login

import (
	"context"

	"github.com/m04kA/SMC-TurfBooking/internal/service/admin"
)

// AdminService интерфейс сервиса панели администратора
type AdminService interface {
	Login(ctx context.Context, username, password string) (*admin.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
