package domain

import "time"

// PaymentOrder is an order created by the turf API for the payment widget
type PaymentOrder struct {
	OrderID   string
	Amount    int64 // minor units
	Currency  string
	KeyID     string
	BookingID string
	CreatedAt time.Time
}

// ExpiresAt returns the moment the widget closes itself
func (o *PaymentOrder) ExpiresAt() time.Time {
	return o.CreatedAt.Add(PaymentTimeout)
}

// IsExpired returns true if the checkout is over
func (o *PaymentOrder) IsExpired(now time.Time) bool {
	return !now.Before(o.ExpiresAt())
}

// SignedPayment is the success payload returned by the payment widget
type SignedPayment struct {
	OrderID   string
	PaymentID string
	Signature string
}

// PaymentOutcome is what the payment widget reports back: either a signed
// payment or a failure reason. Exactly one of the two cases is set.
type PaymentOutcome struct {
	signed    *SignedPayment
	reason    string
	cancelled bool
}

// PaymentSucceeded builds the success case
func PaymentSucceeded(p SignedPayment) PaymentOutcome {
	return PaymentOutcome{signed: &p}
}

// PaymentFailed builds the failure case
func PaymentFailed(reason string) PaymentOutcome {
	return PaymentOutcome{reason: reason}
}

// PaymentDismissed builds the failure case for a widget closed by the user
func PaymentDismissed() PaymentOutcome {
	return PaymentOutcome{reason: "payment cancelled by user", cancelled: true}
}

// Success returns the signed payload if the payment succeeded
func (o PaymentOutcome) Success() (SignedPayment, bool) {
	if o.signed == nil {
		return SignedPayment{}, false
	}
	return *o.signed, true
}

// FailureReason returns the failure reason if the payment did not succeed
func (o PaymentOutcome) FailureReason() (string, bool) {
	if o.signed != nil {
		return "", false
	}
	return o.reason, true
}

// IsCancelled returns true if the user dismissed the widget
func (o PaymentOutcome) IsCancelled() bool {
	return o.signed == nil && o.cancelled
}
