package book_another

import (
	"net/http"

	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers/wizardview"
)

const route = "POST /sessions/{sessionId}/restart"

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

// Handle POST /api/v1/sessions/{sessionId}/restart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	wizard, ok := wizardview.LoadWizard(w, r, h.service, h.logger, route)
	if !ok {
		return
	}

	if err := wizard.BookAnother(r.Context()); err != nil {
		wizardview.RespondWizardError(w, wizard, err, h.logger, route)
		return
	}

	h.logger.Info("%s - Wizard restarted: session_id=%s", route, wizard.ID())
	wizardview.RespondView(w, http.StatusOK, wizard)
}
