package domain

import "time"

// Slot grid
const (
	HoursPerDay = 24
	MinHour     = 0
	MaxHour     = HoursPerDay - 1
)

// Customer form validation constants
const (
	MinNameLength = 2
	PhoneDigits   = 10
)

// Payment widget constants
const (
	// PaymentTimeout is the overall lifetime of a checkout; the widget closes itself after it
	PaymentTimeout = 600 * time.Second
	Currency       = "INR"
)

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // ключ календаря доступных дат
	HourFormat  = "3:04 PM"
)

// Admin input limits
const (
	MaxBlockReasonLength = 200
	MaxPricePerHour      = 100000
)
