package get_pricing

import (
	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// GroundPriceResponse тариф площадки
type GroundPriceResponse struct {
	GroundID     string  `json:"groundId"`
	GroundName   string  `json:"groundName"`
	PricePerHour float64 `json:"pricePerHour"`
}

// PricingResponse HTTP response model
type PricingResponse struct {
	Grounds []GroundPriceResponse `json:"grounds"`
}

// FromDomain конвертирует тарифы в HTTP response
func FromDomain(prices []domain.GroundPrice) *PricingResponse {
	resp := &PricingResponse{Grounds: make([]GroundPriceResponse, len(prices))}
	for i, p := range prices {
		resp.Grounds[i] = GroundPriceResponse{
			GroundID:     p.GroundID,
			GroundName:   p.GroundName,
			PricePerHour: p.PricePerHour,
		}
	}
	return resp
}
