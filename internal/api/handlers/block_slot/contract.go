package block_slot

import (
	"context"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	"github.com/m04kA/SMC-TurfBooking/internal/service/admin"
)

// AdminService интерфейс сервиса панели администратора
type AdminService interface {
	BlockSlot(ctx context.Context, session *admin.Session, date string, hour int, reason *string) (*domain.BlockedSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
