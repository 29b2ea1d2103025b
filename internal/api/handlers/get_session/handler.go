package get_session

import (
	"net/http"

	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers/wizardview"
)

const route = "GET /sessions/{sessionId}"

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

// Handle GET /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	wizard, ok := wizardview.LoadWizard(w, r, h.service, h.logger, route)
	if !ok {
		return
	}

	wizardview.RespondView(w, http.StatusOK, wizard)
}
