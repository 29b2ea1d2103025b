package domain

// GroundPrice is the admin view of a ground's tariff
type GroundPrice struct {
	GroundID     string
	GroundName   string
	PricePerHour float64
}

// BlockedSlot is an hour taken out of sale by an admin
type BlockedSlot struct {
	ID     string
	Date   string
	Hour   int
	Reason *string
}

// OfflineBooking is a booking entered by an admin for a walk-in customer
type OfflineBooking struct {
	GroundID string
	Date     string
	Slot     FinalizedSlot
	Customer CustomerDetails
	Amount   *float64 // nil = tariff price
}
