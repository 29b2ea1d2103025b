package sessions

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfBooking/internal/usecase/booking_wizard"
)

// entry сессия визарда и время последнего обращения
type entry struct {
	wizard   *booking_wizard.Wizard
	lastSeen time.Time
}

// Service хранилище визардов бронирования в памяти процесса
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*entry

	api          booking_wizard.BookingAPI
	metrics      Metrics
	ttl          time.Duration
	maxSessions  int
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр хранилища сессий.
// maxSessions <= 0 снимает ограничение на число сессий.
func NewService(
	api booking_wizard.BookingAPI,
	metrics Metrics,
	ttl time.Duration,
	maxSessions int,
	logger Logger,
) *Service {
	return &Service{
		sessions:     make(map[string]*entry),
		api:          api,
		metrics:      metrics,
		ttl:          ttl,
		maxSessions:  maxSessions,
		timeProvider: &booking_wizard.RealTimeProvider{},
		logger:       logger,
	}
}

// SetTimeProvider подменяет источник времени (для тестирования)
func (s *Service) SetTimeProvider(tp TimeProvider) {
	s.timeProvider = tp
}

// Create создает визард, регистрирует его и загружает календарь дат.
// Ошибка загрузки не мешает созданию: она видна в View визарда и повторяется через Retry.
func (s *Service) Create(ctx context.Context) (*booking_wizard.Wizard, error) {
	id := uuid.New().String()
	w := booking_wizard.New(id, s.api, s.metrics, s.logger)

	s.mu.Lock()
	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		s.mu.Unlock()
		s.logger.Warn("Create: session limit %d reached", s.maxSessions)
		return nil, ErrTooManySessions
	}
	s.sessions[id] = &entry{wizard: w, lastSeen: s.timeProvider.Now()}
	active := len(s.sessions)
	s.mu.Unlock()

	s.metrics.SetActiveSessions(active)
	s.logger.Info("Create: session %s created, active=%d", id, active)

	if err := w.Start(ctx); err != nil {
		s.logger.Warn("Create: session %s: initial load failed: %v", id, err)
	}
	return w, nil
}

// Get возвращает визард сессии и продлевает ее жизнь
func (s *Service) Get(id string) (*booking_wizard.Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	e.lastSeen = s.timeProvider.Now()
	return e.wizard, nil
}

// Delete удаляет сессию
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	if _, ok := s.sessions[id]; !ok {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	active := len(s.sessions)
	s.mu.Unlock()

	s.metrics.SetActiveSessions(active)
	s.logger.Info("Delete: session %s removed, active=%d", id, active)
	return nil
}

// Len число активных сессий
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep закрывает истекшие окна оплаты и удаляет сессии, простаивающие дольше ttl.
// Сессия с открытым окном оплаты не удаляется. Возвращает число удаленных сессий.
func (s *Service) Sweep(ctx context.Context) int {
	now := s.timeProvider.Now()

	// 1. Снимок сессий, чтобы не держать блокировку во время запросов к API
	s.mu.RLock()
	snapshot := make(map[string]*entry, len(s.sessions))
	for id, e := range s.sessions {
		snapshot[id] = e
	}
	s.mu.RUnlock()

	// 2. Истекшие окна оплаты
	var idle []string
	for id, e := range snapshot {
		err := e.wizard.ExpirePendingPayment(ctx)
		if err != nil && !errors.Is(err, booking_wizard.ErrPaymentExpired) {
			s.logger.Error("Sweep: session %s: %v", id, err)
		}
		if e.wizard.HasPendingPayment() {
			continue
		}
		s.mu.RLock()
		expired := now.Sub(e.lastSeen) > s.ttl
		s.mu.RUnlock()
		if expired {
			idle = append(idle, id)
		}
	}

	if len(idle) == 0 {
		return 0
	}

	// 3. Удаление простаивающих
	s.mu.Lock()
	removed := 0
	for _, id := range idle {
		e, ok := s.sessions[id]
		if !ok || now.Sub(e.lastSeen) <= s.ttl {
			continue
		}
		delete(s.sessions, id)
		removed++
	}
	active := len(s.sessions)
	s.mu.Unlock()

	s.metrics.SetActiveSessions(active)
	s.logger.Info("Sweep: removed %d idle sessions, active=%d", removed, active)
	return removed
}

// Run периодически вызывает Sweep до отмены контекста
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Sweeper: shutdown signal received")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}
