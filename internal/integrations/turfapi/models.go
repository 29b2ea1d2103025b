package turfapi

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// DateDTO элемент календаря доступных дат
type DateDTO struct {
	Date    string `json:"date"`
	Enabled bool   `json:"enabled"`
}

// SlotDTO элемент списка слотов; индекс в массиве совпадает с часом
type SlotDTO struct {
	Slot    string `json:"slot"`
	Enabled bool   `json:"enabled"`
}

// GroundDTO площадка, доступная на выбранные часы
type GroundDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Available    bool     `json:"available"`
	Price        float64  `json:"price"`
	PricePerHour *float64 `json:"pricePerHour,omitempty"`
	Description  *string  `json:"description,omitempty"`
}

// BookingDTO запись бронирования
type BookingDTO struct {
	ID          string  `json:"id"`
	GroundID    string  `json:"groundId,omitempty"`
	GroundName  string  `json:"groundName"`
	Date        string  `json:"date,omitempty"`
	StartHour   int     `json:"startHour"`
	StartHours  []int   `json:"startHours,omitempty"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status,omitempty"`
	Source      string  `json:"source,omitempty"`
	Name        string  `json:"name,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	Email       string  `json:"email,omitempty"`
	PaymentID   *string `json:"paymentId,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
}

// OrderDTO заказ платежного виджета
type OrderDTO struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreateOrderRequest тело запроса createPaymentOrder
type CreateOrderRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	GroundID   string `json:"groundId"`
	Date       string `json:"date"`
	StartHour  int    `json:"startHour"`
	StartHours []int  `json:"startHours"`
}

// CreateOrderResponse ответ createPaymentOrder
type CreateOrderResponse struct {
	Success       bool        `json:"success"`
	Message       string      `json:"message,omitempty"`
	Order         *OrderDTO   `json:"order"`
	Booking       *BookingDTO `json:"booking"`
	RazorpayKeyID string      `json:"razorpayKeyId"`
}

// VerifyPaymentRequest тело запроса verifyPayment
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	BookingID         string `json:"bookingId"`
}

// BookingResponse ответ с одним бронированием
type BookingResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Booking *BookingDTO `json:"booking"`
}

// PaymentFailureRequest тело запроса handlePaymentFailure
type PaymentFailureRequest struct {
	BookingID string `json:"bookingId"`
	Error     string `json:"error"`
}

// AckResponse подтверждение без данных
type AckResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse модель ошибки от API
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Модели админки

// LoginRequest тело запроса входа администратора
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse ответ со свежим токеном
type LoginResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn,omitempty"` // секунды
}

// GroundPriceDTO тариф площадки
type GroundPriceDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PricePerHour float64 `json:"pricePerHour"`
}

// PricingResponse список тарифов
type PricingResponse struct {
	Grounds []GroundPriceDTO `json:"grounds"`
}

// UpdatePriceRequest тело запроса изменения тарифа
type UpdatePriceRequest struct {
	PricePerHour float64 `json:"pricePerHour"`
}

// OfflineBookingRequest тело запроса офлайн-бронирования
type OfflineBookingRequest struct {
	GroundID   string   `json:"groundId"`
	Date       string   `json:"date"`
	StartHour  int      `json:"startHour"`
	StartHours []int    `json:"startHours"`
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email,omitempty"`
	Amount     *float64 `json:"amount,omitempty"`
}

// BlockedSlotDTO заблокированный час
type BlockedSlotDTO struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Hour   int     `json:"hour"`
	Reason *string `json:"reason,omitempty"`
}

// BlockedSlotsResponse список заблокированных часов
type BlockedSlotsResponse struct {
	BlockedSlots []BlockedSlotDTO `json:"blockedSlots"`
}

// BlockSlotRequest тело запроса блокировки часа
type BlockSlotRequest struct {
	Date   string  `json:"date"`
	Hour   int     `json:"hour"`
	Reason *string `json:"reason,omitempty"`
}

// BlockSlotResponse ответ с созданной блокировкой
type BlockSlotResponse struct {
	Success     bool            `json:"success"`
	Message     string          `json:"message,omitempty"`
	BlockedSlot *BlockedSlotDTO `json:"blockedSlot"`
}

// Конвертеры в доменные модели

func toDomainCalendar(dto map[string][]DateDTO) domain.DateCalendar {
	calendar := make(domain.DateCalendar, len(dto))
	for month, dates := range dto {
		list := make([]domain.AvailableDate, len(dates))
		for i, d := range dates {
			list[i] = domain.AvailableDate{Date: d.Date, Enabled: d.Enabled}
		}
		calendar[month] = list
	}
	return calendar
}

func toDomainSlots(dto []SlotDTO) []domain.HourSlot {
	slots := make([]domain.HourSlot, len(dto))
	for i, s := range dto {
		slots[i] = domain.HourSlot{HourIndex: i, Label: s.Slot, Enabled: s.Enabled}
	}
	return slots
}

func toDomainGrounds(dto []GroundDTO) []domain.Ground {
	grounds := make([]domain.Ground, len(dto))
	for i, g := range dto {
		grounds[i] = domain.Ground{
			ID:           g.ID,
			Name:         g.Name,
			Location:     g.Location,
			Available:    g.Available,
			Price:        g.Price,
			PricePerHour: g.PricePerHour,
			Description:  g.Description,
		}
	}
	return grounds
}

func toDomainBooking(dto *BookingDTO) *domain.Booking {
	booking := &domain.Booking{
		ID:            dto.ID,
		GroundID:      dto.GroundID,
		GroundName:    dto.GroundName,
		Date:          dto.Date,
		StartHour:     dto.StartHour,
		Hours:         dto.StartHours,
		TotalAmount:   dto.TotalAmount,
		Status:        domain.BookingStatus(dto.Status),
		Source:        domain.BookingSource(dto.Source),
		CustomerName:  dto.Name,
		CustomerPhone: dto.Phone,
		CustomerEmail: dto.Email,
		PaymentID:     dto.PaymentID,
	}
	if booking.Status == "" {
		booking.Status = domain.StatusPending
	}
	if booking.Source == "" {
		booking.Source = domain.SourceOnline
	}
	if t, err := time.Parse(time.RFC3339, dto.CreatedAt); err == nil {
		booking.CreatedAt = t
	}
	return booking
}

func toDomainBlockedSlot(dto BlockedSlotDTO) domain.BlockedSlot {
	return domain.BlockedSlot{ID: dto.ID, Date: dto.Date, Hour: dto.Hour, Reason: dto.Reason}
}

// joinHours сериализует часы для query-параметра: "12,13,14"
func joinHours(hours []int) string {
	parts := make([]string, len(hours))
	for i, h := range hours {
		parts[i] = strconv.Itoa(h)
	}
	return strings.Join(parts, ",")
}
