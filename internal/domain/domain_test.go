package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFinalizedSlot_DisplayRange(t *testing.T) {
	tests := []struct {
		name  string
		slot  FinalizedSlot
		want  string
		end   int
		hours int
	}{
		{name: "single hour", slot: FinalizedSlot{StartHour: 9, Hours: []int{9}}, want: "9:00 AM to 10:00 AM", end: 10, hours: 1},
		{name: "afternoon run", slot: FinalizedSlot{StartHour: 14, Hours: []int{14, 15}}, want: "2:00 PM to 4:00 PM", end: 16, hours: 2},
		{name: "ends at midnight", slot: FinalizedSlot{StartHour: 23, Hours: []int{23}}, want: "11:00 PM to 12:00 AM", end: 24, hours: 1},
		{name: "noon", slot: FinalizedSlot{StartHour: 11, Hours: []int{11, 12}}, want: "11:00 AM to 1:00 PM", end: 13, hours: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.slot.DisplayRange())
			assert.Equal(t, tt.end, tt.slot.EndHour())
			assert.Equal(t, tt.hours, tt.slot.Duration())
		})
	}
}

func TestDateCalendar(t *testing.T) {
	cal := DateCalendar{
		"2026-02": {{Date: "2026-02-10", Enabled: true}, {Date: "2026-02-11"}},
		"2026-03": {{Date: "2026-03-01", Enabled: true}},
	}

	d, ok := cal.Lookup("2026-02-11")
	assert.True(t, ok)
	assert.False(t, d.Enabled)

	_, ok = cal.Lookup("2026-04-01")
	assert.False(t, ok)

	assert.Equal(t, 2, cal.EnabledCount())
}

func TestPaymentOutcome(t *testing.T) {
	ok := PaymentSucceeded(SignedPayment{OrderID: "o1", PaymentID: "p1", Signature: "s"})
	signed, isSuccess := ok.Success()
	assert.True(t, isSuccess)
	assert.Equal(t, "o1", signed.OrderID)
	_, isFailure := ok.FailureReason()
	assert.False(t, isFailure)
	assert.False(t, ok.IsCancelled())

	failed := PaymentFailed("card declined")
	_, isSuccess = failed.Success()
	assert.False(t, isSuccess)
	reason, isFailure := failed.FailureReason()
	assert.True(t, isFailure)
	assert.Equal(t, "card declined", reason)
	assert.False(t, failed.IsCancelled())

	assert.True(t, PaymentDismissed().IsCancelled())
}

func TestPaymentOrder_IsExpired(t *testing.T) {
	created := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	order := &PaymentOrder{OrderID: "o1", CreatedAt: created}

	assert.Equal(t, created.Add(600*time.Second), order.ExpiresAt())
	assert.False(t, order.IsExpired(created.Add(599*time.Second)))
	assert.True(t, order.IsExpired(created.Add(600*time.Second)))
}

func TestStep(t *testing.T) {
	assert.Equal(t, "details", StepDetails.String())
	assert.Equal(t, "unknown", Step(42).String())

	assert.False(t, StepDate.CanGoBack())
	assert.False(t, StepConfirmed.CanGoBack())
	assert.Equal(t, StepGround, StepDetails.Previous())
	assert.Equal(t, StepConfirmed, StepConfirmed.Previous())
}

func TestBooking_Slot(t *testing.T) {
	b := &Booking{StartHour: 18}
	assert.Equal(t, []int{18}, b.Slot().Hours)

	b.Hours = []int{18, 19}
	assert.Equal(t, "6:00 PM to 8:00 PM", b.Slot().DisplayRange())
}
