package block_slot

import (
	"errors"
	"net/http"

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

// Handle POST /api/v1/admin/blocked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.AdminSession(r.Context())
	if !ok {
		h.logger.Error("POST /admin/blocked-slots - Admin session missing in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req BlockSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	blocked, err := h.service.BlockSlot(r.Context(), session, req.Date, req.Hour, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocked-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, admin.ErrUnauthorized):
			h.logger.Warn("POST /admin/blocked-slots - Session rejected: user=%s", session.Username)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, admin.ErrNotFound):
			h.logger.Warn("POST /admin/blocked-slots - Not found: %v", err)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, admin.ErrConflict):
			h.logger.Warn("POST /admin/blocked-slots - Conflict: %v", err)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("POST /admin/blocked-slots - Failed: user=%s, error=%v", session.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocked-slots - Slot blocked: block_id=%s, date=%s, hour=%d", blocked.ID, blocked.Date, blocked.Hour)
	handlers.RespondJSON(w, http.StatusCreated, fromDomain(*blocked))
}
