package admin

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	"github.com/m04kA/SMC-TurfBooking/internal/integrations/turfapi"
	"github.com/m04kA/SMC-TurfBooking/internal/validation"
)

// Service сервис панели администратора
type Service struct {
	mu       sync.RWMutex
	sessions map[string]Session

	api          AdminAPI
	defaultTTL   time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса администратора.
// defaultTTL используется, если API не сообщил срок действия токена.
func NewService(api AdminAPI, defaultTTL time.Duration, logger Logger) *Service {
	return &Service{
		sessions:     make(map[string]Session),
		api:          api,
		defaultTTL:   defaultTTL,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// SetTimeProvider подменяет источник времени (для тестирования)
func (s *Service) SetTimeProvider(tp TimeProvider) {
	s.timeProvider = tp
}

// Login обменивает логин и пароль на сессию администратора
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	if errs := validation.Struct(loginForm{Username: username, Password: password}); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, errs)
	}

	token, ttl, err := s.api.AdminLogin(ctx, username, password)
	if err != nil {
		if errors.Is(err, turfapi.ErrUnauthorized) || errors.Is(err, turfapi.ErrBadRequest) {
			s.logger.Warn("Login: rejected credentials for user=%s", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: API error for user=%s: %v", username, err)
		return nil, fmt.Errorf("%w: Login - API error: %v", ErrInternal, err)
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	session := Session{
		Token:     token,
		Username:  username,
		ExpiresAt: s.timeProvider.Now().Add(ttl),
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	s.logger.Info("Login: user=%s logged in, expires at %s", username, session.ExpiresAt.Format(time.RFC3339))
	return &session, nil
}

// Authenticate находит действующую сессию по токену
func (s *Service) Authenticate(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrUnauthorized
	}
	if session.IsExpired(s.timeProvider.Now()) {
		s.forget(token)
		s.logger.Warn("Authenticate: session of user=%s expired", session.Username)
		return nil, ErrUnauthorized
	}
	return &session, nil
}

// Logout завершает сессию. Повторный выход не считается ошибкой.
func (s *Service) Logout(session *Session) {
	s.forget(session.Token)
	s.logger.Info("Logout: user=%s logged out", session.Username)
}

// GetPricing получает тарифы площадок
func (s *Service) GetPricing(ctx context.Context, session *Session) ([]domain.GroundPrice, error) {
	if err := s.check(session); err != nil {
		return nil, err
	}

	prices, err := s.api.GetPricing(ctx, session.Token)
	if err != nil {
		return nil, s.mapError("GetPricing", session, err)
	}
	return prices, nil
}

// UpdateGroundPrice меняет почасовой тариф площадки
func (s *Service) UpdateGroundPrice(ctx context.Context, session *Session, groundID string, pricePerHour float64) error {
	if err := s.check(session); err != nil {
		return err
	}
	if errs := validation.Struct(priceForm{GroundID: groundID, PricePerHour: pricePerHour}); len(errs) > 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, errs)
	}

	if err := s.api.UpdateGroundPrice(ctx, session.Token, groundID, pricePerHour); err != nil {
		return s.mapError("UpdateGroundPrice", session, err)
	}

	s.logger.Info("UpdateGroundPrice: user=%s set ground=%s price=%.2f", session.Username, groundID, pricePerHour)
	return nil
}

// CreateOfflineBooking вносит бронирование клиента, оплатившего на месте.
// Часы проверяются по тому же правилу непрерывности, что и в визарде.
func (s *Service) CreateOfflineBooking(ctx context.Context, session *Session, in *OfflineBookingInput) (*domain.Booking, error) {
	if err := s.check(session); err != nil {
		return nil, err
	}

	// 1. Валидация
	booking, errs := validateOfflineBooking(in)
	if len(errs) > 0 {
		s.logger.Warn("CreateOfflineBooking: user=%s: %v", session.Username, errs)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, errs)
	}

	// 2. Создание бронирования
	created, err := s.api.CreateOfflineBooking(ctx, session.Token, booking)
	if err != nil {
		return nil, s.mapError("CreateOfflineBooking", session, err)
	}

	s.logger.Info("CreateOfflineBooking: user=%s created booking %s for ground=%s date=%s hours=%v",
		session.Username, created.ID, booking.GroundID, booking.Date, booking.Slot.Hours)
	return created, nil
}

// ListBlockedSlots получает заблокированные часы на дату
func (s *Service) ListBlockedSlots(ctx context.Context, session *Session, date string) ([]domain.BlockedSlot, error) {
	if err := s.check(session); err != nil {
		return nil, err
	}
	if !validation.IsDate(date) {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	slots, err := s.api.ListBlockedSlots(ctx, session.Token, date)
	if err != nil {
		return nil, s.mapError("ListBlockedSlots", session, err)
	}
	return slots, nil
}

// BlockSlot снимает час с продажи
func (s *Service) BlockSlot(ctx context.Context, session *Session, date string, hour int, reason *string) (*domain.BlockedSlot, error) {
	if err := s.check(session); err != nil {
		return nil, err
	}
	if errs := validation.Struct(blockForm{Date: date, Hour: hour, Reason: reason}); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, errs)
	}

	blocked, err := s.api.BlockSlot(ctx, session.Token, date, hour, reason)
	if err != nil {
		return nil, s.mapError("BlockSlot", session, err)
	}

	s.logger.Info("BlockSlot: user=%s blocked %s hour=%d", session.Username, date, hour)
	return blocked, nil
}

// UnblockSlot возвращает час в продажу
func (s *Service) UnblockSlot(ctx context.Context, session *Session, blockID string) error {
	if err := s.check(session); err != nil {
		return err
	}
	if blockID == "" {
		return fmt.Errorf("%w: block id is required", ErrInvalidInput)
	}

	if err := s.api.UnblockSlot(ctx, session.Token, blockID); err != nil {
		return s.mapError("UnblockSlot", session, err)
	}

	s.logger.Info("UnblockSlot: user=%s removed block %s", session.Username, blockID)
	return nil
}

// check проверяет, что сессия выдана этим сервисом и не истекла
func (s *Service) check(session *Session) error {
	if session == nil {
		return ErrUnauthorized
	}
	_, err := s.Authenticate(session.Token)
	return err
}

func (s *Service) forget(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// mapError переводит ошибки API в ошибки сервиса.
// Отказ API в доступе отзывает сессию.
func (s *Service) mapError(operation string, session *Session, err error) error {
	switch {
	case errors.Is(err, turfapi.ErrUnauthorized):
		s.forget(session.Token)
		s.logger.Warn("%s: token of user=%s rejected by API", operation, session.Username)
		return ErrUnauthorized
	case errors.Is(err, turfapi.ErrNotFound):
		s.logger.Warn("%s: not found: %v", operation, err)
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, turfapi.ErrConflict):
		s.logger.Warn("%s: conflict: %v", operation, err)
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, turfapi.ErrBadRequest), errors.Is(err, turfapi.ErrRejected):
		s.logger.Warn("%s: rejected by API: %v", operation, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		s.logger.Error("%s: API error: %v", operation, err)
		return fmt.Errorf("%w: %s - API error: %v", ErrInternal, operation, err)
	}
}
