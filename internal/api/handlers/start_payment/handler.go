package start_payment

import (
	"net/http"

	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers/wizardview"
)

const (
	route                 = "POST /sessions/{sessionId}/payment"
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

// Handle POST /api/v1/sessions/{sessionId}/payment
// Создает заказ и возвращает параметры платежного виджета в поле checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req StartPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	wizard, ok := wizardview.LoadWizard(w, r, h.service, h.logger, route)
	if !ok {
		return
	}

	checkout, err := wizard.StartPayment(r.Context(), req.ToDomain())
	if err != nil {
		wizardview.RespondWizardError(w, wizard, err, h.logger, route)
		return
	}

	h.logger.Info("%s - Payment started: session_id=%s, order_id=%s, booking_id=%s",
		route, wizard.ID(), checkout.OrderID, checkout.BookingID)
	wizardview.RespondView(w, http.StatusOK, wizard)
}
