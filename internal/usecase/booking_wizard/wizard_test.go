package booking_wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// toSlotStep проводит визард до шага выбора часов
func toSlotStep(t *testing.T, w *Wizard) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, w.Start(ctx))
	require.NoError(t, w.ChooseDate(ctx, testDate))
}

// toGroundStep проводит визард до шага выбора площадки с часами 14-15
func toGroundStep(t *testing.T, w *Wizard) {
	t.Helper()
	toSlotStep(t, w)
	require.NoError(t, w.ToggleSlot(14))
	require.NoError(t, w.ToggleSlot(15))
	require.NoError(t, w.ConfirmSlots(context.Background()))
}

// toDetailsStep проводит визард до шага контактов
func toDetailsStep(t *testing.T, w *Wizard) {
	t.Helper()
	toGroundStep(t, w)
	require.NoError(t, w.ChooseGround("g1"))
}

func TestWizard_Start_LoadsCalendar(t *testing.T) {
	w, _, _ := newTestWizard(&fakeAPI{})

	require.NoError(t, w.Start(context.Background()))

	view := w.View()
	assert.Equal(t, domain.StepDate, view.Step)
	assert.False(t, view.CanGoBack)
	assert.False(t, view.Loading)
	assert.Equal(t, 1, view.Calendar.EnabledCount())
}

func TestWizard_ChooseDate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		wantErr  error
		wantStep domain.Step
	}{
		{name: "enabled date", date: testDate, wantStep: domain.StepSlot},
		{name: "disabled date", date: "2026-02-11", wantErr: ErrDateNotAvailable, wantStep: domain.StepDate},
		{name: "unknown date", date: "2026-03-01", wantErr: ErrDateNotAvailable, wantStep: domain.StepDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, _ := newTestWizard(&fakeAPI{})
			require.NoError(t, w.Start(context.Background()))

			err := w.ChooseDate(context.Background(), tt.date)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, msgDateNotAvailable, w.View().Message)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantStep, w.Step())
		})
	}
}

func TestWizard_SlotStep_RendersSelection(t *testing.T) {
	w, _, _ := newTestWizard(&fakeAPI{})
	toSlotStep(t, w)

	require.NoError(t, w.ToggleSlot(16))
	require.NoError(t, w.ToggleSlot(14))

	view := w.View()
	assert.Equal(t, testDate, view.Date)
	assert.True(t, view.CanGoBack)
	require.Len(t, view.Slots, domain.HoursPerDay)
	assert.False(t, view.Slots[3].Enabled)
	assert.True(t, view.Slots[14].Chosen)
	assert.False(t, view.Slots[15].Chosen)
	assert.Equal(t, []int{14, 16}, view.ChosenHours)
	assert.False(t, view.SelectionContiguous)
}

func TestWizard_ToggleDisabledSlot_IsNoop(t *testing.T) {
	w, _, _ := newTestWizard(&fakeAPI{})
	toSlotStep(t, w)

	require.NoError(t, w.ToggleSlot(3))
	require.NoError(t, w.ToggleSlot(42))

	assert.Empty(t, w.View().ChosenHours)
}

func TestWizard_ToggleSlot_WrongStep(t *testing.T) {
	w, _, _ := newTestWizard(&fakeAPI{})
	require.NoError(t, w.Start(context.Background()))

	assert.ErrorIs(t, w.ToggleSlot(10), ErrWrongStep)
}

func TestWizard_ConfirmSlots_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		hours   []int
		wantErr error
		wantMsg string
	}{
		{name: "nothing chosen", wantErr: ErrNoSlotsChosen, wantMsg: msgNoSlotsChosen},
		{name: "gap", hours: []int{4, 6}, wantErr: ErrNonConsecutive, wantMsg: msgNonConsecutive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			w, _, _ := newTestWizard(api)
			toSlotStep(t, w)
			for _, h := range tt.hours {
				require.NoError(t, w.ToggleSlot(h))
			}

			err := w.ConfirmSlots(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)

			view := w.View()
			assert.Equal(t, domain.StepSlot, view.Step)
			assert.Equal(t, tt.wantMsg, view.Message)
			assert.Nil(t, view.FinalizedSlot)
			assert.Equal(t, len(tt.hours), len(view.ChosenHours))
			assert.Empty(t, api.groundRequests)
		})
	}
}

func TestWizard_ConfirmSlots_FetchesGroundsForChosenHours(t *testing.T) {
	api := &fakeAPI{}
	w, _, _ := newTestWizard(api)
	toSlotStep(t, w)
	require.NoError(t, w.ToggleSlot(15))
	require.NoError(t, w.ToggleSlot(14))

	require.NoError(t, w.ConfirmSlots(context.Background()))

	view := w.View()
	assert.Equal(t, domain.StepGround, view.Step)
	require.NotNil(t, view.FinalizedSlot)
	assert.Equal(t, 14, view.FinalizedSlot.StartHour)
	assert.Equal(t, []int{14, 15}, view.FinalizedSlot.Hours)
	assert.Len(t, view.Grounds, 2)
	assert.Equal(t, [][]int{{14, 15}}, api.groundRequests)
}

func TestWizard_ChooseGround(t *testing.T) {
	tests := []struct {
		name     string
		groundID string
		wantErr  error
		wantStep domain.Step
	}{
		{name: "available", groundID: "g1", wantStep: domain.StepDetails},
		{name: "not available", groundID: "g2", wantErr: ErrGroundNotAvailable, wantStep: domain.StepGround},
		{name: "unknown", groundID: "g9", wantErr: ErrGroundNotFound, wantStep: domain.StepGround},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, _ := newTestWizard(&fakeAPI{})
			toGroundStep(t, w)

			err := w.ChooseGround(tt.groundID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Main Turf", w.View().Ground.Name)
			}
			assert.Equal(t, tt.wantStep, w.Step())
		})
	}
}

func TestWizard_Back_FromSlot_ClearsDate(t *testing.T) {
	w, _, _ := newTestWizard(&fakeAPI{})
	toSlotStep(t, w)
	require.NoError(t, w.ToggleSlot(10))

	require.NoError(t, w.Back(context.Background()))

	view := w.View()
	assert.Equal(t, domain.StepDate, view.Step)
	assert.Empty(t, view.Date)
	assert.Nil(t, w.st.selection)
	assert.Nil(t, w.st.slots)
	assert.NotNil(t, view.Calendar)
}

func TestWizard_Back_FromGround_ResetsChosenHours(t *testing.T) {
	w, _, _ := newTestWizard(&fakeAPI{})
	toGroundStep(t, w)

	require.NoError(t, w.Back(context.Background()))

	view := w.View()
	assert.Equal(t, domain.StepSlot, view.Step)
	assert.Equal(t, testDate, view.Date)
	assert.Empty(t, view.ChosenHours)
	assert.Nil(t, w.st.finalized)
	assert.Nil(t, w.st.grounds)
	assert.Len(t, view.Slots, domain.HoursPerDay)
}

func TestWizard_Back_FromDetails_DiscardsFormAndOrder(t *testing.T) {
	api := &fakeAPI{}
	w, _, _ := newTestWizard(api)
	toDetailsStep(t, w)
	_, err := w.StartPayment(context.Background(), validDetails)
	require.NoError(t, err)

	require.NoError(t, w.Back(context.Background()))

	view := w.View()
	assert.Equal(t, domain.StepGround, view.Step)
	assert.Nil(t, view.Ground)
	assert.Equal(t, []int{14, 15}, view.FinalizedSlot.Hours)
	assert.Equal(t, domain.CustomerDetails{}, w.st.details)
	assert.Nil(t, w.st.order)
	assert.Equal(t, []string{"b1"}, api.failures)
	assert.Equal(t, []string{"b1"}, api.cancelled)
	assert.Len(t, api.groundRequests, 2)
}

func TestWizard_Back_NotAllowed(t *testing.T) {
	w, _, _ := newTestWizard(&fakeAPI{})
	require.NoError(t, w.Start(context.Background()))

	assert.ErrorIs(t, w.Back(context.Background()), ErrWrongStep)
	assert.Equal(t, domain.StepDate, w.Step())
}

func TestWizard_FetchFailure_Retry(t *testing.T) {
	calls := 0
	api := &fakeAPI{
		slots: func(_ context.Context, _ string) ([]domain.HourSlot, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("connection reset")
			}
			return daySlots(nil), nil
		},
	}
	w, _, _ := newTestWizard(api)
	require.NoError(t, w.Start(context.Background()))

	err := w.ChooseDate(context.Background(), testDate)
	assert.ErrorIs(t, err, ErrFetchFailed)

	view := w.View()
	assert.Equal(t, domain.StepSlot, view.Step)
	assert.Equal(t, msgFetchFailed, view.FetchError)
	assert.Nil(t, view.Slots)
	assert.ErrorIs(t, w.ToggleSlot(10), ErrSlotsNotLoaded)

	require.NoError(t, w.Retry(context.Background()))

	view = w.View()
	assert.Empty(t, view.FetchError)
	assert.Len(t, view.Slots, domain.HoursPerDay)
}

func TestWizard_Retry_KeepsPendingChoice(t *testing.T) {
	api := &fakeAPI{}
	w, _, _ := newTestWizard(api)
	toSlotStep(t, w)
	require.NoError(t, w.ToggleSlot(14))

	api.slots = func(_ context.Context, _ string) ([]domain.HourSlot, error) {
		return daySlots(map[int]bool{14: false}), nil
	}
	require.NoError(t, w.Retry(context.Background()))

	view := w.View()
	assert.Equal(t, []int{14}, view.ChosenHours)
	assert.False(t, view.Slots[14].Enabled)
	assert.True(t, view.Slots[14].Chosen)
}

func TestWizard_Retry_NothingToRetry(t *testing.T) {
	w, _, _ := newTestWizard(&fakeAPI{})
	toDetailsStep(t, w)

	assert.ErrorIs(t, w.Retry(context.Background()), ErrNothingToRetry)
}

func TestWizard_LateResponse_Dropped(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	api := &fakeAPI{
		slots: func(_ context.Context, _ string) ([]domain.HourSlot, error) {
			close(started)
			<-release
			return daySlots(nil), nil
		},
	}
	w, _, _ := newTestWizard(api)
	require.NoError(t, w.Start(context.Background()))

	done := make(chan error, 1)
	go func() {
		done <- w.ChooseDate(context.Background(), testDate)
	}()

	<-started
	require.NoError(t, w.Back(context.Background()))
	close(release)
	require.NoError(t, <-done)

	view := w.View()
	assert.Equal(t, domain.StepDate, view.Step)
	assert.Empty(t, view.Date)
	assert.Nil(t, w.st.slots)
	assert.Nil(t, w.st.selection)
	assert.False(t, view.Loading)
}

func TestWizard_View_IsACopy(t *testing.T) {
	w, _, _ := newTestWizard(&fakeAPI{})
	toGroundStep(t, w)

	view := w.View()
	view.FinalizedSlot.Hours[0] = 99
	view.Grounds[0].Name = "changed"

	again := w.View()
	assert.Equal(t, []int{14, 15}, again.FinalizedSlot.Hours)
	assert.Equal(t, "Main Turf", again.Grounds[0].Name)
}

func TestWizard_RecordsTransitions(t *testing.T) {
	w, m, _ := newTestWizard(&fakeAPI{})
	toDetailsStep(t, w)

	assert.Equal(t, []string{"date->slot", "slot->ground", "ground->details"}, m.transitions)
}

func TestWizard_TwoHoursBeforeDisabledSlot_SingleGround(t *testing.T) {
	api := &fakeAPI{
		slots: func(_ context.Context, _ string) ([]domain.HourSlot, error) {
			return daySlots(map[int]bool{12: true, 13: true, 14: false}), nil
		},
		grounds: func(_ context.Context, _ string, _ []int) ([]domain.Ground, error) {
			return []domain.Ground{{ID: "g1", Name: "Main Turf", Available: true, Price: 2000}}, nil
		},
	}
	w, _, _ := newTestWizard(api)
	toSlotStep(t, w)
	ctx := context.Background()

	require.NoError(t, w.ToggleSlot(12))
	require.NoError(t, w.ToggleSlot(13))
	require.NoError(t, w.ToggleSlot(14))
	assert.Equal(t, []int{12, 13}, w.View().ChosenHours)

	require.NoError(t, w.ConfirmSlots(ctx))

	view := w.View()
	assert.Equal(t, domain.StepGround, view.Step)
	require.NotNil(t, view.FinalizedSlot)
	assert.Equal(t, domain.FinalizedSlot{StartHour: 12, Hours: []int{12, 13}}, *view.FinalizedSlot)
	assert.Equal(t, [][]int{{12, 13}}, api.groundRequests)
	require.Len(t, view.Grounds, 1)
	assert.True(t, view.Grounds[0].Available)

	require.NoError(t, w.ChooseGround("g1"))
	assert.Equal(t, domain.StepDetails, w.View().Step)
}
