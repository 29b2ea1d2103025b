package booking_wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	"github.com/m04kA/SMC-TurfBooking/internal/integrations/turfapi"
	"github.com/m04kA/SMC-TurfBooking/internal/validation"
)

// Исходы оплаты для метрик
const (
	outcomeVerified           = "verified"
	outcomeVerificationFailed = "verification_failed"
	outcomeFailed             = "failed"
	outcomeCancelled          = "cancelled"
	outcomeExpired            = "expired"
)

// StartPayment проверяет форму контактов и создает заказ на оплату.
// Визард остается на шаге контактов до получения исхода оплаты.
func (w *Wizard) StartPayment(ctx context.Context, details domain.CustomerDetails) (*Checkout, error) {
	w.mu.Lock()

	if w.st.step != domain.StepDetails {
		step := w.st.step
		w.mu.Unlock()
		return nil, fmt.Errorf("%w: start payment at step %s", ErrWrongStep, step)
	}
	if w.st.paying {
		w.mu.Unlock()
		return nil, ErrPaymentInProgress
	}

	now := w.timeProvider.Now()

	// 1. Незавершенный заказ: живой блокирует повторную отправку, истекший освобождаем
	var expired *domain.PaymentOrder
	if w.st.order != nil {
		if !w.st.order.IsExpired(now) {
			w.st.message = msgPaymentStillRunning
			w.mu.Unlock()
			return nil, ErrPaymentInProgress
		}
		expired = w.st.order
		w.st.order = nil
		w.st.pending = nil
	}

	// 2. Валидация формы
	w.st.details = details
	if errs := validation.ValidateCustomer(details); len(errs) > 0 {
		w.st.fieldErrors = errs
		w.st.message = msgFixForm
		w.mu.Unlock()
		w.logger.Warn("StartPayment: session %s: %v", w.id, errs)
		return nil, errs
	}
	w.st.fieldErrors = nil

	// 3. Запрос на создание заказа
	req := &turfapi.CreateOrderRequest{
		Name:       details.Name,
		Phone:      details.Phone,
		Email:      details.Email,
		GroundID:   w.st.ground.ID,
		Date:       w.st.date,
		StartHour:  w.st.finalized.StartHour,
		StartHours: append([]int(nil), w.st.finalized.Hours...),
	}
	w.st.paying = true
	w.mu.Unlock()

	if expired != nil {
		w.reportFailure(ctx, expired.BookingID, "payment window expired", true)
		w.metrics.RecordPaymentOutcome(outcomeExpired)
	}

	order, booking, err := w.api.CreatePaymentOrder(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.st.paying = false

	if err != nil {
		w.st.message = orderMessage(err)
		w.logger.Error("StartPayment: session %s: failed to create order for ground=%s date=%s hours=%v: %v",
			w.id, req.GroundID, req.Date, req.StartHours, err)
		return nil, fmt.Errorf("%w: %w", ErrOrderRejected, err)
	}

	order.CreatedAt = w.timeProvider.Now()
	w.st.order = order
	w.st.pending = booking
	w.st.message = ""

	w.logger.Info("StartPayment: session %s: order=%s booking=%s amount=%d",
		w.id, order.OrderID, order.BookingID, order.Amount)
	return buildCheckout(&w.st), nil
}

// CompletePayment применяет исход платежного виджета.
// Успех подтверждается проверкой подписи на стороне API, только после этого визард переходит в Confirmed.
// Неуспех оставляет визард на шаге контактов.
func (w *Wizard) CompletePayment(ctx context.Context, outcome domain.PaymentOutcome) (*domain.Booking, error) {
	w.mu.Lock()

	if w.st.step != domain.StepDetails {
		step := w.st.step
		w.mu.Unlock()
		return nil, fmt.Errorf("%w: complete payment at step %s", ErrWrongStep, step)
	}
	if w.st.paying {
		w.mu.Unlock()
		return nil, ErrPaymentInProgress
	}
	if w.st.order == nil {
		w.mu.Unlock()
		return nil, ErrNoPendingPayment
	}

	order := w.st.order
	expired := order.IsExpired(w.timeProvider.Now())
	w.st.paying = true
	w.mu.Unlock()

	// Исход после закрытия окна оплаты считается неуспехом
	if expired {
		return nil, w.failPayment(ctx, order, "payment window expired", true, outcomeExpired, msgPaymentExpired, ErrPaymentExpired)
	}

	signed, ok := outcome.Success()
	if !ok {
		reason, _ := outcome.FailureReason()
		if outcome.IsCancelled() {
			return nil, w.failPayment(ctx, order, reason, true, outcomeCancelled, msgPaymentCancelled, ErrPaymentCancelled)
		}
		return nil, w.failPayment(ctx, order, reason, false, outcomeFailed, msgPaymentFailed, ErrPaymentFailed)
	}

	if signed.OrderID != order.OrderID {
		err := fmt.Errorf("order mismatch: expected %s, got %s", order.OrderID, signed.OrderID)
		return nil, w.finishVerification(order, nil, err)
	}

	booking, err := w.api.VerifyPayment(ctx, order.BookingID, signed)
	if err := w.finishVerification(order, booking, err); err != nil {
		return nil, err
	}
	return booking, nil
}

// ExpirePendingPayment закрывает заказ, окно оплаты которого истекло.
// Ничего не делает, если активного истекшего заказа нет.
func (w *Wizard) ExpirePendingPayment(ctx context.Context) error {
	w.mu.Lock()

	if w.st.step != domain.StepDetails || w.st.paying || w.st.order == nil ||
		!w.st.order.IsExpired(w.timeProvider.Now()) {
		w.mu.Unlock()
		return nil
	}

	order := w.st.order
	w.st.paying = true
	w.mu.Unlock()

	return w.failPayment(ctx, order, "payment window expired", true, outcomeExpired, msgPaymentExpired, ErrPaymentExpired)
}

// HasPendingPayment сообщает, ждет ли визард исход оплаты
func (w *Wizard) HasPendingPayment() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.st.order != nil
}

func (w *Wizard) finishVerification(order *domain.PaymentOrder, booking *domain.Booking, err error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.st.paying = false
	w.st.order = nil

	if err == nil && (booking == nil || !booking.IsConfirmed()) {
		err = errors.New("booking is not confirmed")
	}

	if err != nil {
		w.st.pending = nil
		w.st.message = fmt.Sprintf(msgVerificationFailed, order.BookingID)
		w.metrics.RecordPaymentOutcome(outcomeVerificationFailed)
		w.logger.Error("CompletePayment: session %s: verification failed for booking %s: %v",
			w.id, order.BookingID, err)
		return fmt.Errorf("%w: booking %s: %v", ErrVerificationFailed, order.BookingID, err)
	}

	w.metrics.RecordPaymentOutcome(outcomeVerified)
	w.transition(domain.StepConfirmed)
	confirmed := *booking
	w.st.confirmation = &confirmed
	w.st.pending = nil
	w.st.fieldErrors = nil
	w.st.message = msgBookingConfirmed

	w.logger.Info("CompletePayment: session %s: booking %s confirmed", w.id, booking.ID)
	return nil
}

func (w *Wizard) failPayment(
	ctx context.Context,
	order *domain.PaymentOrder,
	reason string,
	cancel bool,
	outcome string,
	message string,
	sentinel error,
) error {
	w.reportFailure(ctx, order.BookingID, reason, cancel)

	w.mu.Lock()
	defer w.mu.Unlock()

	w.st.paying = false
	w.st.order = nil
	w.st.pending = nil
	w.st.message = message

	w.metrics.RecordPaymentOutcome(outcome)
	w.logger.Warn("CompletePayment: session %s: booking %s %s: %s", w.id, order.BookingID, outcome, reason)
	return fmt.Errorf("%w: %s", sentinel, reason)
}

// reportFailure сообщает API о неуспешной оплате и при необходимости освобождает слот
func (w *Wizard) reportFailure(ctx context.Context, bookingID, reason string, cancel bool) {
	if err := w.api.HandlePaymentFailure(ctx, bookingID, reason); err != nil {
		w.logger.Error("Payment: session %s: failed to report failure for booking %s: %v", w.id, bookingID, err)
	}

	if !cancel {
		return
	}
	if err := w.api.CancelBooking(ctx, bookingID); err != nil {
		w.logger.Error("Payment: session %s: failed to cancel booking %s: %v", w.id, bookingID, err)
	}
}
