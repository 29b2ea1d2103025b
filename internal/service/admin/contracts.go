package admin

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// AdminAPI интерфейс админских методов API бронирования
type AdminAPI interface {
	AdminLogin(ctx context.Context, username, password string) (string, time.Duration, error)
	GetPricing(ctx context.Context, token string) ([]domain.GroundPrice, error)
	UpdateGroundPrice(ctx context.Context, token, groundID string, pricePerHour float64) error
	CreateOfflineBooking(ctx context.Context, token string, b *domain.OfflineBooking) (*domain.Booking, error)
	ListBlockedSlots(ctx context.Context, token, date string) ([]domain.BlockedSlot, error)
	BlockSlot(ctx context.Context, token, date string, hour int, reason *string) (*domain.BlockedSlot, error)
	UnblockSlot(ctx context.Context, token, blockID string) error
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

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
