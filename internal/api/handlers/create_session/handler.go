package create_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers/wizardview"
	"github.com/m04kA/SMC-TurfBooking/internal/service/sessions"
)

const msgTooManySessions = "service is busy, try again later"

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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	wizard, err := h.service.Create(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrTooManySessions):
			h.logger.Warn("POST /sessions - Session limit reached")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgTooManySessions)

		default:
			h.logger.Error("POST /sessions - Failed to create session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session created: session_id=%s", wizard.ID())
	wizardview.RespondView(w, http.StatusCreated, wizard)
}
