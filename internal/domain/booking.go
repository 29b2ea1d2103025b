package domain

import "time"

// BookingStatus represents the status of a booking as reported by the turf API
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusFailed    BookingStatus = "failed"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingSource tells whether a booking was made online or entered by an admin
type BookingSource string

const (
	SourceOnline  BookingSource = "online"
	SourceOffline BookingSource = "offline"
)

// Booking represents a booking record issued by the turf API
type Booking struct {
	ID          string
	GroundID    string
	GroundName  string
	Date        string // YYYY-MM-DD
	StartHour   int
	Hours       []int
	TotalAmount float64
	Status      BookingStatus
	Source      BookingSource

	// Customer data denormalized by the API
	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	PaymentID *string
	CreatedAt time.Time
}

// IsConfirmed returns true if the payment for the booking has been verified
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsPending returns true if the booking still waits for a payment
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// CanBeCancelled returns true if the booking can still be released
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusFailed
}

// Slot returns the booked hours as a finalized slot
func (b *Booking) Slot() FinalizedSlot {
	hours := b.Hours
	if len(hours) == 0 {
		hours = []int{b.StartHour}
	}
	return FinalizedSlot{StartHour: b.StartHour, Hours: hours}
}
