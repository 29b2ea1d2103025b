package admin_logout

import (
	"net/http"

	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TurfBooking/internal/api/middleware"
)

const msgUnauthorized = "admin session expired, please log in again"

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

// Handle POST /api/v1/admin/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.AdminSession(r.Context())
	if !ok {
		h.logger.Error("POST /admin/logout - Admin session missing in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	h.service.Logout(session)

	h.logger.Info("POST /admin/logout - Logged out: user=%s", session.Username)
	w.WriteHeader(http.StatusNoContent)
}
