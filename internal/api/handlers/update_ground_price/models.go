package update_ground_price

// UpdatePriceRequest HTTP request model
type UpdatePriceRequest struct {
	PricePerHour float64 `json:"pricePerHour"`
}
