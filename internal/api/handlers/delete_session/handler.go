package delete_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers/wizardview"
	"github.com/m04kA/SMC-TurfBooking/internal/service/sessions"
)

const msgNotFound = "booking session not found or expired"

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

// Handle DELETE /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := wizardview.SessionID(r)

	if err := h.service.Delete(id); err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("DELETE /sessions/{sessionId} - Session not found: session_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /sessions/{sessionId} - Failed to delete session: session_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sessions/{sessionId} - Session deleted: session_id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}
