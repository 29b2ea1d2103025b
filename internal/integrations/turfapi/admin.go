package turfapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// AdminLogin обменивает логин и пароль на токен администратора
func (c *Client) AdminLogin(ctx context.Context, username, password string) (string, time.Duration, error) {
	req := &LoginRequest{Username: username, Password: password}

	var resp LoginResponse
	if err := c.do(ctx, "admin_login", http.MethodPost, "/api/admin/login", "", req, &resp); err != nil {
		return "", 0, err
	}

	if !resp.Success || resp.Token == "" {
		return "", 0, fmt.Errorf("%w: %s", ErrUnauthorized, resp.Message)
	}

	return resp.Token, time.Duration(resp.ExpiresIn) * time.Second, nil
}

// GetPricing получает тарифы всех площадок
func (c *Client) GetPricing(ctx context.Context, token string) ([]domain.GroundPrice, error) {
	var resp PricingResponse
	if err := c.do(ctx, "admin_pricing", http.MethodGet, "/api/admin/pricing", token, nil, &resp); err != nil {
		return nil, err
	}

	prices := make([]domain.GroundPrice, len(resp.Grounds))
	for i, g := range resp.Grounds {
		prices[i] = domain.GroundPrice{GroundID: g.ID, GroundName: g.Name, PricePerHour: g.PricePerHour}
	}
	return prices, nil
}

// UpdateGroundPrice меняет почасовой тариф площадки
func (c *Client) UpdateGroundPrice(ctx context.Context, token, groundID string, pricePerHour float64) error {
	path := fmt.Sprintf("/api/admin/grounds/%s/price", url.PathEscape(groundID))

	return c.ack(ctx, "admin_update_price", http.MethodPut, path, token, &UpdatePriceRequest{PricePerHour: pricePerHour})
}

// CreateOfflineBooking вносит бронирование, оплаченное на месте
func (c *Client) CreateOfflineBooking(ctx context.Context, token string, b *domain.OfflineBooking) (*domain.Booking, error) {
	req := &OfflineBookingRequest{
		GroundID:   b.GroundID,
		Date:       b.Date,
		StartHour:  b.Slot.StartHour,
		StartHours: b.Slot.Hours,
		Name:       b.Customer.Name,
		Phone:      b.Customer.Phone,
		Email:      b.Customer.Email,
		Amount:     b.Amount,
	}

	var resp BookingResponse
	if err := c.do(ctx, "admin_offline_booking", http.MethodPost, "/api/admin/offline-bookings", token, req, &resp); err != nil {
		return nil, err
	}

	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", ErrRejected, resp.Message)
	}
	if resp.Booking == nil {
		return nil, fmt.Errorf("%w: booking is missing", ErrInvalidResponse)
	}

	booking := toDomainBooking(resp.Booking)
	booking.Source = domain.SourceOffline
	return booking, nil
}

// ListBlockedSlots получает заблокированные часы; пустая дата означает все даты
func (c *Client) ListBlockedSlots(ctx context.Context, token, date string) ([]domain.BlockedSlot, error) {
	path := "/api/admin/blocked-slots"
	if date != "" {
		path += "?" + url.Values{"date": {date}}.Encode()
	}

	var resp BlockedSlotsResponse
	if err := c.do(ctx, "admin_blocked_slots", http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}

	slots := make([]domain.BlockedSlot, len(resp.BlockedSlots))
	for i, s := range resp.BlockedSlots {
		slots[i] = toDomainBlockedSlot(s)
	}
	return slots, nil
}

// BlockSlot снимает час с продажи
func (c *Client) BlockSlot(ctx context.Context, token, date string, hour int, reason *string) (*domain.BlockedSlot, error) {
	req := &BlockSlotRequest{Date: date, Hour: hour, Reason: reason}

	var resp BlockSlotResponse
	if err := c.do(ctx, "admin_block_slot", http.MethodPost, "/api/admin/blocked-slots", token, req, &resp); err != nil {
		return nil, err
	}

	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", ErrRejected, resp.Message)
	}
	if resp.BlockedSlot == nil {
		return nil, fmt.Errorf("%w: blocked slot is missing", ErrInvalidResponse)
	}

	slot := toDomainBlockedSlot(*resp.BlockedSlot)
	return &slot, nil
}

// UnblockSlot возвращает час в продажу
func (c *Client) UnblockSlot(ctx context.Context, token, blockID string) error {
	path := fmt.Sprintf("/api/admin/blocked-slots/%s", url.PathEscape(blockID))

	return c.ack(ctx, "admin_unblock_slot", http.MethodDelete, path, token, nil)
}
