package booking_wizard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	"github.com/m04kA/SMC-TurfBooking/internal/integrations/turfapi"
)

// BookingAPI интерфейс клиента API бронирования площадок
type BookingAPI interface {
	GetAvailableDates(ctx context.Context) (domain.DateCalendar, error)
	GetAvailableSlots(ctx context.Context, date string) ([]domain.HourSlot, error)
	GetAvailableGrounds(ctx context.Context, date string, hours []int) ([]domain.Ground, error)
	CreatePaymentOrder(ctx context.Context, req *turfapi.CreateOrderRequest) (*domain.PaymentOrder, *domain.Booking, error)
	VerifyPayment(ctx context.Context, bookingID string, payment domain.SignedPayment) (*domain.Booking, error)
	HandlePaymentFailure(ctx context.Context, bookingID string, reason string) error
	CancelBooking(ctx context.Context, bookingID string) error
}

// Metrics интерфейс для учета переходов и исходов оплаты
type Metrics interface {
	RecordTransition(from, to string)
	RecordPaymentOutcome(outcome string)
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type noopMetrics struct{}

func (noopMetrics) RecordTransition(string, string) {}
func (noopMetrics) RecordPaymentOutcome(string)     {}
