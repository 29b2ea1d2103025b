package admin

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	"github.com/m04kA/SMC-TurfBooking/internal/integrations/turfapi"
	"github.com/m04kA/SMC-TurfBooking/pkg/logger"
)

type fakeAdminAPI struct {
	ttl       time.Duration
	loginErr  error
	callErr   error
	tokens    []string
	prices    map[string]float64
	offline   *domain.OfflineBooking
	blocked   []domain.BlockedSlot
	unblocked []string
}

func (f *fakeAdminAPI) AdminLogin(_ context.Context, username, password string) (string, time.Duration, error) {
	if f.loginErr != nil {
		return "", 0, f.loginErr
	}
	return "tok-" + username, f.ttl, nil
}

func (f *fakeAdminAPI) GetPricing(_ context.Context, token string) ([]domain.GroundPrice, error) {
	f.tokens = append(f.tokens, token)
	if f.callErr != nil {
		return nil, f.callErr
	}
	return []domain.GroundPrice{{GroundID: "g1", GroundName: "Main Turf", PricePerHour: 1200}}, nil
}

func (f *fakeAdminAPI) UpdateGroundPrice(_ context.Context, token, groundID string, price float64) error {
	f.tokens = append(f.tokens, token)
	if f.callErr != nil {
		return f.callErr
	}
	if f.prices == nil {
		f.prices = make(map[string]float64)
	}
	f.prices[groundID] = price
	return nil
}

func (f *fakeAdminAPI) CreateOfflineBooking(_ context.Context, token string, b *domain.OfflineBooking) (*domain.Booking, error) {
	f.tokens = append(f.tokens, token)
	if f.callErr != nil {
		return nil, f.callErr
	}
	f.offline = b
	return &domain.Booking{
		ID:        "off1",
		GroundID:  b.GroundID,
		Date:      b.Date,
		StartHour: b.Slot.StartHour,
		Hours:     b.Slot.Hours,
		Status:    domain.StatusConfirmed,
		Source:    domain.SourceOffline,
	}, nil
}

func (f *fakeAdminAPI) ListBlockedSlots(_ context.Context, token, date string) ([]domain.BlockedSlot, error) {
	f.tokens = append(f.tokens, token)
	return f.blocked, f.callErr
}

func (f *fakeAdminAPI) BlockSlot(_ context.Context, token, date string, hour int, reason *string) (*domain.BlockedSlot, error) {
	f.tokens = append(f.tokens, token)
	if f.callErr != nil {
		return nil, f.callErr
	}
	b := domain.BlockedSlot{ID: fmt.Sprintf("blk-%d", hour), Date: date, Hour: hour, Reason: reason}
	f.blocked = append(f.blocked, b)
	return &b, nil
}

func (f *fakeAdminAPI) UnblockSlot(_ context.Context, token, blockID string) error {
	f.tokens = append(f.tokens, token)
	if f.callErr != nil {
		return f.callErr
	}
	f.unblocked = append(f.unblocked, blockID)
	return nil
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newTestService(t *testing.T, api *fakeAdminAPI) (*Service, *clock, *Session) {
	t.Helper()
	c := &clock{now: time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC)}
	s := NewService(api, time.Hour, logger.NewNop())
	s.SetTimeProvider(c)

	session, err := s.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	return s, c, session
}

func ptr[T any](v T) *T {
	return &v
}

func TestLogin(t *testing.T) {
	s, c, session := newTestService(t, &fakeAdminAPI{})

	assert.Equal(t, "tok-admin", session.Token)
	assert.Equal(t, "admin", session.Username)
	assert.Equal(t, c.now.Add(time.Hour), session.ExpiresAt)

	got, err := s.Authenticate("tok-admin")
	require.NoError(t, err)
	assert.Equal(t, *session, *got)
}

func TestLogin_UsesTTLFromAPI(t *testing.T) {
	_, c, session := newTestService(t, &fakeAdminAPI{ttl: 15 * time.Minute})

	assert.Equal(t, c.now.Add(15*time.Minute), session.ExpiresAt)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		apiErr   error
		wantErr  error
	}{
		{name: "empty password", username: "admin", wantErr: ErrInvalidInput},
		{name: "rejected", username: "admin", password: "bad", apiErr: turfapi.ErrUnauthorized, wantErr: ErrInvalidCredentials},
		{name: "api down", username: "admin", password: "secret", apiErr: turfapi.ErrInvalidResponse, wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(&fakeAdminAPI{loginErr: tt.apiErr}, time.Hour, logger.NewNop())

			_, err := s.Login(context.Background(), tt.username, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLogout(t *testing.T) {
	api := &fakeAdminAPI{}
	s, _, session := newTestService(t, api)

	s.Logout(session)

	_, err := s.Authenticate(session.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = s.GetPricing(context.Background(), session)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, api.tokens)
}

func TestSessionExpiry(t *testing.T) {
	api := &fakeAdminAPI{}
	s, c, session := newTestService(t, api)

	c.now = session.ExpiresAt

	_, err := s.GetPricing(context.Background(), session)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, api.tokens)
}

func TestUnauthorizedFromAPI_RevokesSession(t *testing.T) {
	api := &fakeAdminAPI{callErr: fmt.Errorf("%w: token revoked", turfapi.ErrUnauthorized)}
	s, _, session := newTestService(t, api)

	_, err := s.GetPricing(context.Background(), session)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = s.Authenticate(session.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetPricing(t *testing.T) {
	api := &fakeAdminAPI{}
	s, _, session := newTestService(t, api)

	prices, err := s.GetPricing(context.Background(), session)
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.Equal(t, 1200.0, prices[0].PricePerHour)
	assert.Equal(t, []string{"tok-admin"}, api.tokens)
}

func TestUpdateGroundPrice(t *testing.T) {
	tests := []struct {
		name    string
		ground  string
		price   float64
		wantErr error
	}{
		{name: "valid", ground: "g1", price: 1500},
		{name: "zero", ground: "g1", price: 0, wantErr: ErrInvalidInput},
		{name: "negative", ground: "g1", price: -10, wantErr: ErrInvalidInput},
		{name: "too high", ground: "g1", price: domain.MaxPricePerHour + 1, wantErr: ErrInvalidInput},
		{name: "no ground", price: 1500, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAdminAPI{}
			s, _, session := newTestService(t, api)

			err := s.UpdateGroundPrice(context.Background(), session, tt.ground, tt.price)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, api.prices)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.price, api.prices[tt.ground])
		})
	}
}

func TestCreateOfflineBooking(t *testing.T) {
	api := &fakeAdminAPI{}
	s, _, session := newTestService(t, api)

	booking, err := s.CreateOfflineBooking(context.Background(), session, &OfflineBookingInput{
		GroundID: "g1",
		Date:     "2026-02-10",
		Hours:    []int{19, 18, 18},
		Customer: domain.CustomerDetails{Name: "  Kiran ", Phone: "9876543210"},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SourceOffline, booking.Source)
	require.NotNil(t, api.offline)
	assert.Equal(t, 18, api.offline.Slot.StartHour)
	assert.Equal(t, []int{18, 19}, api.offline.Slot.Hours)
	assert.Equal(t, "Kiran", api.offline.Customer.Name)
}

func TestCreateOfflineBooking_Invalid(t *testing.T) {
	valid := OfflineBookingInput{
		GroundID: "g1",
		Date:     "2026-02-10",
		Hours:    []int{18},
		Customer: domain.CustomerDetails{Name: "Kiran", Phone: "9876543210"},
	}

	tests := []struct {
		name   string
		mutate func(in *OfflineBookingInput)
		field  string
	}{
		{name: "gap in hours", mutate: func(in *OfflineBookingInput) { in.Hours = []int{9, 11} }, field: "hours"},
		{name: "no hours", mutate: func(in *OfflineBookingInput) { in.Hours = nil }, field: "hours"},
		{name: "hour out of range", mutate: func(in *OfflineBookingInput) { in.Hours = []int{23, 24} }, field: "hours"},
		{name: "bad date", mutate: func(in *OfflineBookingInput) { in.Date = "10/02/2026" }, field: "date"},
		{name: "no ground", mutate: func(in *OfflineBookingInput) { in.GroundID = "" }, field: "groundId"},
		{name: "short name", mutate: func(in *OfflineBookingInput) { in.Customer.Name = "K" }, field: domain.FieldName},
		{name: "bad phone", mutate: func(in *OfflineBookingInput) { in.Customer.Phone = "98765" }, field: domain.FieldPhone},
		{name: "bad email", mutate: func(in *OfflineBookingInput) { in.Customer.Email = "kiran@" }, field: domain.FieldEmail},
		{name: "zero amount", mutate: func(in *OfflineBookingInput) { in.Amount = ptr(0.0) }, field: "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAdminAPI{}
			s, _, session := newTestService(t, api)

			in := valid
			tt.mutate(&in)

			_, err := s.CreateOfflineBooking(context.Background(), session, &in)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorContains(t, err, tt.field)
			assert.Nil(t, api.offline)
		})
	}
}

func TestCreateOfflineBooking_Conflict(t *testing.T) {
	api := &fakeAdminAPI{callErr: fmt.Errorf("%w: slot taken", turfapi.ErrConflict)}
	s, _, session := newTestService(t, api)

	_, err := s.CreateOfflineBooking(context.Background(), session, &OfflineBookingInput{
		GroundID: "g1",
		Date:     "2026-02-10",
		Hours:    []int{18},
		Customer: domain.CustomerDetails{Name: "Kiran", Phone: "9876543210"},
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestBlockedSlots(t *testing.T) {
	api := &fakeAdminAPI{}
	s, _, session := newTestService(t, api)
	ctx := context.Background()

	blocked, err := s.BlockSlot(ctx, session, "2026-02-10", 7, ptr("maintenance"))
	require.NoError(t, err)
	assert.Equal(t, 7, blocked.Hour)

	list, err := s.ListBlockedSlots(ctx, session, "2026-02-10")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.UnblockSlot(ctx, session, blocked.ID))
	assert.Equal(t, []string{"blk-7"}, api.unblocked)
}

func TestBlockSlot_Invalid(t *testing.T) {
	api := &fakeAdminAPI{}
	s, _, session := newTestService(t, api)
	ctx := context.Background()

	long := make([]byte, domain.MaxBlockReasonLength+1)
	for i := range long {
		long[i] = 'x'
	}

	_, err := s.BlockSlot(ctx, session, "2026-02-10", 24, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.BlockSlot(ctx, session, "tomorrow", 7, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.BlockSlot(ctx, session, "2026-02-10", 7, ptr(string(long)))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.ListBlockedSlots(ctx, session, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.ErrorIs(t, s.UnblockSlot(ctx, session, ""), ErrInvalidInput)
	assert.Empty(t, api.tokens)
}

func TestUnblockSlot_NotFound(t *testing.T) {
	api := &fakeAdminAPI{callErr: fmt.Errorf("%w: no such block", turfapi.ErrNotFound)}
	s, _, session := newTestService(t, api)

	err := s.UnblockSlot(context.Background(), session, "blk-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
