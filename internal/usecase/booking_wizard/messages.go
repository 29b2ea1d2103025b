package booking_wizard

import (
	"errors"

	"github.com/m04kA/SMC-TurfBooking/internal/integrations/turfapi"
)

// Короткие сообщения для пользователя, показываются в View.Message
const (
	msgDateNotAvailable    = "This date is not available for booking"
	msgNoSlotsChosen       = "Please select at least one time slot"
	msgNonConsecutive      = "Please select consecutive time slots"
	msgGroundNotFound      = "Please choose a ground from the list"
	msgGroundNotAvailable  = "This ground is not available for the selected time"
	msgFetchFailed         = "Could not load data. Please try again"
	msgFixForm             = "Please correct the highlighted fields"
	msgSlotTaken           = "The selected slot was just booked by someone else. Please choose another slot"
	msgOrderFailed         = "Could not start the payment. Please try again"
	msgPaymentFailed       = "Payment failed. You have not been charged for this booking"
	msgPaymentCancelled    = "Payment was cancelled"
	msgPaymentExpired      = "Payment window expired. Please try again"
	msgVerificationFailed  = "Payment received but could not be verified. Please contact support with booking ID %s"
	msgBookingConfirmed    = "Booking confirmed"
	msgPaymentStillRunning = "Payment is in progress"
)

// selectionMessage сообщение для ошибки подтверждения выбора часов
func selectionMessage(err error) string {
	if errors.Is(err, ErrNoSlotsChosen) {
		return msgNoSlotsChosen
	}
	return msgNonConsecutive
}

// orderMessage сообщение для ошибки создания заказа
func orderMessage(err error) string {
	if errors.Is(err, turfapi.ErrConflict) {
		return msgSlotTaken
	}
	return msgOrderFailed
}
