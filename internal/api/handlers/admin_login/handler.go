package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TurfBooking/internal/service/admin"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingCredentials = "username and password are required"
	msgInvalidCredentials = "invalid username or password"
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

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidInput):
			h.logger.Warn("POST /admin/login - Missing credentials")
			handlers.RespondBadRequest(w, msgMissingCredentials)

		case errors.Is(err, admin.ErrInvalidCredentials):
			h.logger.Warn("POST /admin/login - Invalid credentials: user=%s", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /admin/login - Failed to log in: user=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/login - Logged in: user=%s", session.Username)
	handlers.RespondJSON(w, http.StatusOK, FromSession(session))
}
