package create_offline_booking

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

// Handle POST /api/v1/admin/offline-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.AdminSession(r.Context())
	if !ok {
		h.logger.Error("POST /admin/offline-bookings - Admin session missing in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req OfflineBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/offline-bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.CreateOfflineBooking(r.Context(), session, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidInput):
			h.logger.Warn("POST /admin/offline-bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, admin.ErrUnauthorized):
			h.logger.Warn("POST /admin/offline-bookings - Session rejected: user=%s", session.Username)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, admin.ErrNotFound):
			h.logger.Warn("POST /admin/offline-bookings - Not found: %v", err)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, admin.ErrConflict):
			h.logger.Warn("POST /admin/offline-bookings - Conflict: %v", err)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("POST /admin/offline-bookings - Failed: user=%s, error=%v", session.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/offline-bookings - Booking created: booking_id=%s, user=%s", booking.ID, session.Username)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(booking))
}
