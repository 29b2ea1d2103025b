package complete_payment

import (
	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	"github.com/m04kA/SMC-TurfBooking/internal/validation"
)

// Исходы платежного виджета
const (
	OutcomeSuccess   = "success"
	OutcomeFailed    = "failed"
	OutcomeDismissed = "dismissed"
)

// PaymentOutcomeRequest HTTP request model, результат платежного виджета
type PaymentOutcomeRequest struct {
	Outcome   string `json:"outcome" validate:"oneof=success failed dismissed"`
	OrderID   string `json:"orderId" validate:"required_if=Outcome success"`
	PaymentID string `json:"paymentId" validate:"required_if=Outcome success"`
	Signature string `json:"signature" validate:"required_if=Outcome success"`
	Reason    string `json:"reason,omitempty" validate:"max=500"`
}

// Validate проверяет, что для успеха переданы все поля подписи
func (r *PaymentOutcomeRequest) Validate() error {
	if errs := validation.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

// ToDomain конвертирует HTTP request в исход оплаты
func (r *PaymentOutcomeRequest) ToDomain() domain.PaymentOutcome {
	switch r.Outcome {
	case OutcomeSuccess:
		return domain.PaymentSucceeded(domain.SignedPayment{
			OrderID:   r.OrderID,
			PaymentID: r.PaymentID,
			Signature: r.Signature,
		})
	case OutcomeDismissed:
		return domain.PaymentDismissed()
	default:
		reason := r.Reason
		if reason == "" {
			reason = "payment failed"
		}
		return domain.PaymentFailed(reason)
	}
}
