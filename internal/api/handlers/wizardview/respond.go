// Package wizardview отображает состояние визарда бронирования в HTTP ответы
package wizardview

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TurfBooking/internal/integrations/turfapi"
	"github.com/m04kA/SMC-TurfBooking/internal/service/sessions"
	"github.com/m04kA/SMC-TurfBooking/internal/usecase/booking_wizard"
	"github.com/m04kA/SMC-TurfBooking/internal/validation"
)

const (
	msgSessionNotFound = "booking session not found or expired"
	msgActionFailed    = "action is not possible right now"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SessionService интерфейс хранилища сессий визарда
type SessionService interface {
	Get(id string) (*booking_wizard.Wizard, error)
}

// SessionID извлекает идентификатор сессии из пути
func SessionID(r *http.Request) string {
	return mux.Vars(r)["sessionId"]
}

// LoadWizard находит визард сессии из пути запроса.
// При ошибке ответ уже отправлен и возвращается false.
func LoadWizard(w http.ResponseWriter, r *http.Request, svc SessionService, logger Logger, route string) (*booking_wizard.Wizard, bool) {
	id := SessionID(r)

	wizard, err := svc.Get(id)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			logger.Warn("%s - Session not found: session_id=%s", route, id)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return nil, false
		}
		logger.Error("%s - Failed to load session: session_id=%s, error=%v", route, id, err)
		handlers.RespondInternalError(w)
		return nil, false
	}
	return wizard, true
}

// RespondView отправляет текущее состояние визарда
func RespondView(w http.ResponseWriter, status int, wizard *booking_wizard.Wizard) {
	handlers.RespondJSON(w, status, FromView(wizard.ID(), wizard.View()))
}

// RespondWizardError отправляет ошибку действия визарда вместе с его состоянием и логирует ее
func RespondWizardError(w http.ResponseWriter, wizard *booking_wizard.Wizard, err error, logger Logger, route string) {
	status := Status(err)
	view := wizard.View()

	if status >= http.StatusInternalServerError {
		logger.Error("%s - Action failed: session_id=%s, step=%s, error=%v", route, wizard.ID(), view.Step, err)
	} else {
		logger.Warn("%s - Action rejected: session_id=%s, step=%s, error=%v", route, wizard.ID(), view.Step, err)
	}

	message := view.Message
	if message == "" {
		message = msgActionFailed
	}

	var fieldErrs validation.FieldErrors
	errors.As(err, &fieldErrs)

	handlers.RespondJSON(w, status, ErrorWithViewResponse{
		Code:        status,
		Message:     message,
		FieldErrors: fieldErrs,
		View:        FromView(wizard.ID(), view),
	})
}

// Status HTTP статус для ошибки визарда
func Status(err error) int {
	switch {
	case errors.Is(err, booking_wizard.ErrValidation),
		errors.Is(err, booking_wizard.ErrNoSlotsChosen),
		errors.Is(err, booking_wizard.ErrNonConsecutive),
		errors.Is(err, booking_wizard.ErrDateNotAvailable),
		errors.Is(err, booking_wizard.ErrGroundNotFound),
		errors.Is(err, booking_wizard.ErrGroundNotAvailable):
		return http.StatusUnprocessableEntity

	case errors.Is(err, booking_wizard.ErrWrongStep),
		errors.Is(err, booking_wizard.ErrSlotsNotLoaded),
		errors.Is(err, booking_wizard.ErrNothingToRetry),
		errors.Is(err, booking_wizard.ErrPaymentInProgress),
		errors.Is(err, booking_wizard.ErrNoPendingPayment),
		errors.Is(err, turfapi.ErrConflict):
		return http.StatusConflict

	case errors.Is(err, booking_wizard.ErrPaymentFailed),
		errors.Is(err, booking_wizard.ErrPaymentCancelled),
		errors.Is(err, booking_wizard.ErrPaymentExpired):
		return http.StatusPaymentRequired

	case errors.Is(err, booking_wizard.ErrFetchFailed),
		errors.Is(err, booking_wizard.ErrOrderRejected),
		errors.Is(err, booking_wizard.ErrVerificationFailed):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}
