package admin_login

import (
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/service/admin"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// FromSession конвертирует сессию администратора в HTTP response
func FromSession(s *admin.Session) *LoginResponse {
	return &LoginResponse{
		Token:     s.Token,
		Username:  s.Username,
		ExpiresAt: s.ExpiresAt,
	}
}
