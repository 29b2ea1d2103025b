package get_pricing

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

// Handle GET /api/v1/admin/pricing
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.AdminSession(r.Context())
	if !ok {
		h.logger.Error("GET /admin/pricing - Admin session missing in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	prices, err := h.service.GetPricing(r.Context(), session)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidInput):
			h.logger.Warn("GET /admin/pricing - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, admin.ErrUnauthorized):
			h.logger.Warn("GET /admin/pricing - Session rejected: user=%s", session.Username)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, admin.ErrNotFound):
			h.logger.Warn("GET /admin/pricing - Not found: %v", err)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, admin.ErrConflict):
			h.logger.Warn("GET /admin/pricing - Conflict: %v", err)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("GET /admin/pricing - Failed: user=%s, error=%v", session.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(prices))
}
