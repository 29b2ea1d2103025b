package unblock_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TurfBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TurfBooking/internal/service/admin"
)

const (
	msgUnauthorized       = "admin session expired, please log in again"
	msgNotFound           = "not found"
	msgConflict           = "the slot is already taken"
	msgInvalidRequestBody = "invalid request body"
)

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/blocked-slots/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.AdminSession(r.Context())
	if !ok {
		h.logger.Error("DELETE /admin/blocked-slots/{blockId} - Admin session missing in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	blockID := mux.Vars(r)["blockId"]

	if err := h.service.UnblockSlot(r.Context(), session, blockID); err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/blocked-slots/{blockId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, admin.ErrUnauthorized):
			h.logger.Warn("DELETE /admin/blocked-slots/{blockId} - Session rejected: user=%s", session.Username)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, admin.ErrNotFound):
			h.logger.Warn("DELETE /admin/blocked-slots/{blockId} - Not found: %v", err)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, admin.ErrConflict):
			h.logger.Warn("DELETE /admin/blocked-slots/{blockId} - Conflict: %v", err)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("DELETE /admin/blocked-slots/{blockId} - Failed: user=%s, error=%v", session.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocked-slots/{blockId} - Slot unblocked: block_id=%s", blockID)
	w.WriteHeader(http.StatusNoContent)
}
