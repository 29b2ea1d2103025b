package toggle_slot

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers/wizardview"
)

const (
	route          = "POST /sessions/{sessionId}/slots/{hour}/toggle"
	msgInvalidHour = "invalid hour"
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

// Handle POST /api/v1/sessions/{sessionId}/slots/{hour}/toggle
// Недоступный час не меняет выбор и не считается ошибкой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hour, err := strconv.Atoi(mux.Vars(r)["hour"])
	if err != nil {
		h.logger.Warn("%s - Invalid hour: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidHour)
		return
	}

	wizard, ok := wizardview.LoadWizard(w, r, h.service, h.logger, route)
	if !ok {
		return
	}

	if err := wizard.ToggleSlot(hour); err != nil {
		wizardview.RespondWizardError(w, wizard, err, h.logger, route)
		return
	}

	wizardview.RespondView(w, http.StatusOK, wizard)
}
