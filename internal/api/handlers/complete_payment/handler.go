package complete_payment

import (
	"net/http"

	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers/wizardview"
)

const (
	route                 = "POST /sessions/{sessionId}/payment/outcome"
	msgInvalidRequestBody = "invalid request body"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/payment/outcome
// Успешная оплата подтверждается на стороне API до перехода к подтверждению
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PaymentOutcomeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	wizard, ok := wizardview.LoadWizard(w, r, h.service, h.logger, route)
	if !ok {
		return
	}

	booking, err := wizard.CompletePayment(r.Context(), req.ToDomain())
	if err != nil {
		wizardview.RespondWizardError(w, wizard, err, h.logger, route)
		return
	}

	h.logger.Info("%s - Booking confirmed: session_id=%s, booking_id=%s", route, wizard.ID(), booking.ID)
	wizardview.RespondView(w, http.StatusOK, wizard)
}
