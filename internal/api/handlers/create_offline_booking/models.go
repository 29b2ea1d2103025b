package create_offline_booking

import (
	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	"github.com/m04kA/SMC-TurfBooking/internal/service/admin"
)

// OfflineBookingRequest HTTP request model
type OfflineBookingRequest struct {
	GroundID string   `json:"groundId"`
	Date     string   `json:"date"`
	Hours    []int    `json:"hours"`
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email,omitempty"`
	Amount   *float64 `json:"amount,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *OfflineBookingRequest) ToServiceRequest() *admin.OfflineBookingInput {
	return &admin.OfflineBookingInput{
		GroundID: r.GroundID,
		Date:     r.Date,
		Hours:    r.Hours,
		Customer: domain.CustomerDetails{
			Name:  r.Name,
			Phone: r.Phone,
			Email: r.Email,
		},
		Amount: r.Amount,
	}
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          string  `json:"id"`
	GroundID    string  `json:"groundId"`
	GroundName  string  `json:"groundName,omitempty"`
	Date        string  `json:"date"`
	StartHour   int     `json:"startHour"`
	Hours       []int   `json:"hours"`
	Display     string  `json:"display"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status"`
	Source      string  `json:"source"`
}

// FromDomain конвертирует бронирование в HTTP response
func FromDomain(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		GroundID:    b.GroundID,
		GroundName:  b.GroundName,
		Date:        b.Date,
		StartHour:   b.StartHour,
		Hours:       b.Hours,
		Display:     b.Slot().DisplayRange(),
		TotalAmount: b.TotalAmount,
		Status:      string(b.Status),
		Source:      string(b.Source),
	}
}
