package admin

import (
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// Session сессия администратора. Создается только через Login и явно передается в каждый вызов.
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

// IsExpired возвращает true, если срок действия токена истек
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// OfflineBookingInput данные офлайн-бронирования от администратора
type OfflineBookingInput struct {
	GroundID string
	Date     string
	Hours    []int
	Customer domain.CustomerDetails
	Amount   *float64
}
