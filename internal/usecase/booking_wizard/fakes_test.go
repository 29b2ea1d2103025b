package booking_wizard

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	"github.com/m04kA/SMC-TurfBooking/internal/integrations/turfapi"
	"github.com/m04kA/SMC-TurfBooking/pkg/logger"
)

const testDate = "2026-02-10"

// fakeAPI подменяет API бронирования; пустые функции возвращают данные по умолчанию
type fakeAPI struct {
	mu sync.Mutex

	dates   func(ctx context.Context) (domain.DateCalendar, error)
	slots   func(ctx context.Context, date string) ([]domain.HourSlot, error)
	grounds func(ctx context.Context, date string, hours []int) ([]domain.Ground, error)
	order   func(ctx context.Context, req *turfapi.CreateOrderRequest) (*domain.PaymentOrder, *domain.Booking, error)
	verify  func(ctx context.Context, bookingID string, p domain.SignedPayment) (*domain.Booking, error)

	orderRequests  []*turfapi.CreateOrderRequest
	groundRequests [][]int
	failures       []string
	cancelled      []string
	verified       []string
}

func (f *fakeAPI) GetAvailableDates(ctx context.Context) (domain.DateCalendar, error) {
	if f.dates != nil {
		return f.dates(ctx)
	}
	return domain.DateCalendar{
		"2026-02": {
			{Date: testDate, Enabled: true},
			{Date: "2026-02-11", Enabled: false},
		},
	}, nil
}

func (f *fakeAPI) GetAvailableSlots(ctx context.Context, date string) ([]domain.HourSlot, error) {
	if f.slots != nil {
		return f.slots(ctx, date)
	}
	return daySlots(map[int]bool{3: false}), nil
}

func (f *fakeAPI) GetAvailableGrounds(ctx context.Context, date string, hours []int) ([]domain.Ground, error) {
	f.mu.Lock()
	f.groundRequests = append(f.groundRequests, append([]int(nil), hours...))
	f.mu.Unlock()

	if f.grounds != nil {
		return f.grounds(ctx, date, hours)
	}
	return []domain.Ground{
		{ID: "g1", Name: "Main Turf", Available: true, Price: 2000},
		{ID: "g2", Name: "Side Turf", Available: false, Price: 1500},
	}, nil
}

func (f *fakeAPI) CreatePaymentOrder(ctx context.Context, req *turfapi.CreateOrderRequest) (*domain.PaymentOrder, *domain.Booking, error) {
	f.mu.Lock()
	f.orderRequests = append(f.orderRequests, req)
	f.mu.Unlock()

	if f.order != nil {
		return f.order(ctx, req)
	}
	return &domain.PaymentOrder{
			OrderID:   "order_1",
			Amount:    200000,
			Currency:  domain.Currency,
			KeyID:     "rzp_test",
			BookingID: "b1",
		}, &domain.Booking{
			ID:        "b1",
			Status:    domain.StatusPending,
			StartHour: req.StartHour,
			Hours:     req.StartHours,
		}, nil
}

func (f *fakeAPI) VerifyPayment(ctx context.Context, bookingID string, p domain.SignedPayment) (*domain.Booking, error) {
	f.mu.Lock()
	f.verified = append(f.verified, bookingID)
	f.mu.Unlock()

	if f.verify != nil {
		return f.verify(ctx, bookingID, p)
	}
	return &domain.Booking{
		ID:          bookingID,
		GroundName:  "Main Turf",
		TotalAmount: 2000,
		Date:        testDate,
		StartHour:   14,
		Hours:       []int{14, 15},
		Status:      domain.StatusConfirmed,
	}, nil
}

func (f *fakeAPI) HandlePaymentFailure(_ context.Context, bookingID string, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, bookingID)
	return nil
}

func (f *fakeAPI) CancelBooking(_ context.Context, bookingID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, bookingID)
	return nil
}

type fakeMetrics struct {
	mu          sync.Mutex
	transitions []string
	outcomes    []string
}

func (m *fakeMetrics) RecordTransition(from, to string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitions = append(m.transitions, from+"->"+to)
}

func (m *fakeMetrics) RecordPaymentOutcome(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

type fakeTime struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeTime) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeTime) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// daySlots строит 24 часа, все доступны кроме указанных
func daySlots(overrides map[int]bool) []domain.HourSlot {
	slots := make([]domain.HourSlot, domain.HoursPerDay)
	for h := range slots {
		enabled := true
		if v, ok := overrides[h]; ok {
			enabled = v
		}
		slots[h] = domain.HourSlot{HourIndex: h, Label: domain.HourLabel(h), Enabled: enabled}
	}
	return slots
}

func newTestWizard(api *fakeAPI) (*Wizard, *fakeMetrics, *fakeTime) {
	m := &fakeMetrics{}
	tp := &fakeTime{now: time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC)}
	w := New("s1", api, m, logger.NewNop())
	w.SetTimeProvider(tp)
	return w, m, tp
}

var validDetails = domain.CustomerDetails{
	Name:  "Asha",
	Phone: "9876543210",
	Email: "asha@example.com",
}
