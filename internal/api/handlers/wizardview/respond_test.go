package wizardview

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TurfBooking/internal/integrations/turfapi"
	"github.com/m04kA/SMC-TurfBooking/internal/usecase/booking_wizard"
	"github.com/m04kA/SMC-TurfBooking/internal/validation"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "field errors", err: validation.FieldErrors{"phone": "invalid"}, want: http.StatusUnprocessableEntity},
		{name: "no slots", err: booking_wizard.ErrNoSlotsChosen, want: http.StatusUnprocessableEntity},
		{name: "gap in hours", err: booking_wizard.ErrNonConsecutive, want: http.StatusUnprocessableEntity},
		{name: "date closed", err: fmt.Errorf("%w: 2026-02-11", booking_wizard.ErrDateNotAvailable), want: http.StatusUnprocessableEntity},
		{name: "ground busy", err: booking_wizard.ErrGroundNotAvailable, want: http.StatusUnprocessableEntity},
		{name: "wrong step", err: fmt.Errorf("%w: back at step date", booking_wizard.ErrWrongStep), want: http.StatusConflict},
		{name: "payment running", err: booking_wizard.ErrPaymentInProgress, want: http.StatusConflict},
		{name: "slot taken upstream", err: fmt.Errorf("%w: %w", booking_wizard.ErrOrderRejected, turfapi.ErrConflict), want: http.StatusConflict},
		{name: "payment cancelled", err: booking_wizard.ErrPaymentCancelled, want: http.StatusPaymentRequired},
		{name: "payment expired", err: booking_wizard.ErrPaymentExpired, want: http.StatusPaymentRequired},
		{name: "fetch failed", err: booking_wizard.ErrFetchFailed, want: http.StatusBadGateway},
		{name: "order rejected", err: fmt.Errorf("%w: %w", booking_wizard.ErrOrderRejected, turfapi.ErrRejected), want: http.StatusBadGateway},
		{name: "verification failed", err: booking_wizard.ErrVerificationFailed, want: http.StatusBadGateway},
		{name: "unexpected", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}
