package list_blocked_slots

import (
	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// BlockedSlotResponse заблокированный час
type BlockedSlotResponse struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Hour   int     `json:"hour"`
	Label  string  `json:"label"`
	Reason *string `json:"reason,omitempty"`
}

func fromDomain(b domain.BlockedSlot) BlockedSlotResponse {
	return BlockedSlotResponse{
		ID:     b.ID,
		Date:   b.Date,
		Hour:   b.Hour,
		Label:  domain.HourLabel(b.Hour),
		Reason: b.Reason,
	}
}

// BlockedSlotsResponse HTTP response model
type BlockedSlotsResponse struct {
	Date  string                `json:"date"`
	Slots []BlockedSlotResponse `json:"slots"`
}
