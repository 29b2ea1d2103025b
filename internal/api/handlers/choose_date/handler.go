package choose_date

import (
	"net/http"

	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers/wizardview"
)

const (
	route                 = "POST /sessions/{sessionId}/date"
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

// Handle POST /api/v1/sessions/{sessionId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChooseDateRequest
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

	if err := wizard.ChooseDate(r.Context(), req.Date); err != nil {
		wizardview.RespondWizardError(w, wizard, err, h.logger, route)
		return
	}

	h.logger.Info("%s - Date chosen: session_id=%s, date=%s", route, wizard.ID(), req.Date)
	wizardview.RespondView(w, http.StatusOK, wizard)
}
