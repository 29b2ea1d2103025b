package booking_wizard

import (
	"errors"

	"github.com/m04kA/SMC-TurfBooking/internal/usecase/slot_selection"
	"github.com/m04kA/SMC-TurfBooking/internal/validation"
)

var (
	// ErrWrongStep возвращается, когда действие недоступно на текущем шаге
	ErrWrongStep = errors.New("booking_wizard: action is not allowed at current step")

	// ErrDateNotAvailable возвращается при выборе даты, отсутствующей или недоступной в календаре
	ErrDateNotAvailable = errors.New("booking_wizard: date is not available")

	// ErrSlotsNotLoaded возвращается, когда список слотов еще не получен
	ErrSlotsNotLoaded = errors.New("booking_wizard: slots are not loaded")

	// ErrGroundNotFound возвращается, когда площадки нет в полученном списке
	ErrGroundNotFound = errors.New("booking_wizard: ground not found")

	// ErrGroundNotAvailable возвращается, когда площадка занята на выбранные часы
	ErrGroundNotAvailable = errors.New("booking_wizard: ground is not available")

	// ErrFetchFailed временная ошибка загрузки данных шага, можно повторить
	ErrFetchFailed = errors.New("booking_wizard: failed to load data")

	// ErrNothingToRetry возвращается, когда на текущем шаге нечего перезагружать
	ErrNothingToRetry = errors.New("booking_wizard: nothing to retry")

	// ErrOrderRejected возвращается, когда API не создал заказ на оплату
	ErrOrderRejected = errors.New("booking_wizard: payment order rejected")

	// ErrPaymentInProgress возвращается, когда оплата уже начата и не завершена
	ErrPaymentInProgress = errors.New("booking_wizard: payment is in progress")

	// ErrNoPendingPayment возвращается при получении исхода оплаты без активного заказа
	ErrNoPendingPayment = errors.New("booking_wizard: no pending payment")

	// ErrPaymentFailed возвращается при неуспешной оплате
	ErrPaymentFailed = errors.New("booking_wizard: payment failed")

	// ErrPaymentCancelled возвращается, когда пользователь закрыл платежный виджет
	ErrPaymentCancelled = errors.New("booking_wizard: payment cancelled")

	// ErrPaymentExpired возвращается, когда окно оплаты истекло
	ErrPaymentExpired = errors.New("booking_wizard: payment window expired")

	// ErrVerificationFailed возвращается, когда оплата прошла, но подпись не подтверждена.
	// Повторять автоматически нельзя.
	ErrVerificationFailed = errors.New("booking_wizard: payment verification failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("booking_wizard: internal error")
)

// Ошибки валидации переиспользуются из движка выбора слотов и форм
var (
	ErrNoSlotsChosen  = slot_selection.ErrNoSlotsChosen
	ErrNonConsecutive = slot_selection.ErrNonConsecutive
	ErrValidation     = validation.ErrValidation
)
