package turfapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// Client клиент для работы с API бронирования площадок
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    Metrics
	log        Logger
}

// Option настраивает клиента
type Option func(*Client)

// WithRateLimit ограничивает частоту исходящих запросов
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		}
	}
}

// WithMetrics включает учет вызовов в метриках
func WithMetrics(m Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithHTTPClient подменяет http.Client (используется в тестах)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient создает новый экземпляр клиента API
func NewClient(baseURL string, timeout time.Duration, log Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Inf, 0),
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetAvailableDates получает календарь доступных дат, сгруппированный по месяцам
func (c *Client) GetAvailableDates(ctx context.Context) (domain.DateCalendar, error) {
	var resp map[string][]DateDTO
	if err := c.do(ctx, "available_dates", http.MethodGet, "/api/bookings/available-dates", "", nil, &resp); err != nil {
		return nil, err
	}
	return toDomainCalendar(resp), nil
}

// GetAvailableSlots получает 24 часовых слота на дату
func (c *Client) GetAvailableSlots(ctx context.Context, date string) ([]domain.HourSlot, error) {
	query := url.Values{"date": {date}}

	var resp []SlotDTO
	if err := c.do(ctx, "available_slots", http.MethodGet, "/api/bookings/available-slots?"+query.Encode(), "", nil, &resp); err != nil {
		return nil, err
	}

	if len(resp) > domain.HoursPerDay {
		return nil, fmt.Errorf("%w: expected at most %d slots, got %d", ErrInvalidResponse, domain.HoursPerDay, len(resp))
	}

	return toDomainSlots(resp), nil
}

// GetAvailableGrounds получает площадки на дату и набор часов
func (c *Client) GetAvailableGrounds(ctx context.Context, date string, hours []int) ([]domain.Ground, error) {
	if len(hours) == 0 {
		return nil, fmt.Errorf("%w: hours are required", ErrBadRequest)
	}

	query := url.Values{
		"date":       {date},
		"startHour":  {strconv.Itoa(hours[0])},
		"startHours": {joinHours(hours)},
	}

	var resp []GroundDTO
	if err := c.do(ctx, "available_grounds", http.MethodGet, "/api/bookings/available-grounds?"+query.Encode(), "", nil, &resp); err != nil {
		return nil, err
	}
	return toDomainGrounds(resp), nil
}

// CreatePaymentOrder создает бронирование в статусе pending и заказ для платежного виджета
func (c *Client) CreatePaymentOrder(ctx context.Context, req *CreateOrderRequest) (*domain.PaymentOrder, *domain.Booking, error) {
	var resp CreateOrderResponse
	if err := c.do(ctx, "create_order", http.MethodPost, "/api/payments/create-order", "", req, &resp); err != nil {
		return nil, nil, err
	}

	if !resp.Success {
		return nil, nil, fmt.Errorf("%w: %s", ErrRejected, resp.Message)
	}
	if resp.Order == nil || resp.Booking == nil {
		return nil, nil, fmt.Errorf("%w: order or booking is missing", ErrInvalidResponse)
	}

	order := &domain.PaymentOrder{
		OrderID:   resp.Order.ID,
		Amount:    resp.Order.Amount,
		Currency:  resp.Order.Currency,
		KeyID:     resp.RazorpayKeyID,
		BookingID: resp.Booking.ID,
	}
	if order.Currency == "" {
		order.Currency = domain.Currency
	}

	return order, toDomainBooking(resp.Booking), nil
}

// VerifyPayment передает подписанный ответ виджета на проверку подписи
func (c *Client) VerifyPayment(ctx context.Context, bookingID string, payment domain.SignedPayment) (*domain.Booking, error) {
	req := &VerifyPaymentRequest{
		RazorpayOrderID:   payment.OrderID,
		RazorpayPaymentID: payment.PaymentID,
		RazorpaySignature: payment.Signature,
		BookingID:         bookingID,
	}

	var resp BookingResponse
	if err := c.do(ctx, "verify_payment", http.MethodPost, "/api/payments/verify", "", req, &resp); err != nil {
		return nil, err
	}

	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", ErrRejected, resp.Message)
	}
	if resp.Booking == nil {
		return nil, fmt.Errorf("%w: booking is missing", ErrInvalidResponse)
	}

	booking := toDomainBooking(resp.Booking)
	if resp.Booking.Status == "" {
		booking.Status = domain.StatusConfirmed
	}
	return booking, nil
}

// HandlePaymentFailure сообщает API о неуспешной оплате
func (c *Client) HandlePaymentFailure(ctx context.Context, bookingID string, reason string) error {
	req := &PaymentFailureRequest{BookingID: bookingID, Error: reason}

	return c.ack(ctx, "payment_failure", http.MethodPost, "/api/payments/failure", "", req)
}

// CancelBooking освобождает слот неоплаченного бронирования
func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	path := fmt.Sprintf("/api/bookings/%s/cancel", url.PathEscape(bookingID))
	return c.ack(ctx, "cancel_booking", http.MethodPut, path, "", nil)
}

// ack выполняет запрос без данных в ответе.
// Пустой ответ считается подтверждением, success=false в теле - отказом.
func (c *Client) ack(ctx context.Context, operation, method, path, token string, body interface{}) error {
	resp := AckResponse{Success: true}
	if err := c.do(ctx, operation, method, path, token, body, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("%w: %s", ErrRejected, resp.Message)
	}
	return nil
}

// do выполняет запрос и декодирует JSON ответ в out
func (c *Client) do(ctx context.Context, operation, method, path, token string, body, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %v", ErrInternal, err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(operation, "error", started)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	c.record(operation, strconv.Itoa(resp.StatusCode), started)

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusNoContent:
		return nil
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, readMessage(resp.Body))
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, readMessage(resp.Body))
	default:
		body, _ := io.ReadAll(resp.Body)
		c.log.Warn("turfapi %s: unexpected status code %d", operation, resp.StatusCode)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

func (c *Client) record(operation, status string, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordUpstreamCall(operation, status, time.Since(started))
}

// readMessage достает message из тела ошибки, если оно в формате ErrorResponse
func readMessage(body io.Reader) string {
	raw, err := io.ReadAll(body)
	if err != nil {
		return ""
	}
	var e ErrorResponse
	if json.Unmarshal(raw, &e) == nil && e.Message != "" {
		return e.Message
	}
	return string(raw)
}
