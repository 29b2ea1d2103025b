package get_pricing

import (
	"context"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	"github.com/m04kA/SMC-TurfBooking/internal/service/admin"
)

// AdminService интерфейс сервиса панели администратора
type AdminService interface {
	GetPricing(ctx context.Context, session *admin.Session) ([]domain.GroundPrice, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
