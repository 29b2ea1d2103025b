package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TurfBooking/internal/service/admin"
)

const (
	msgMissingToken   = "missing or invalid Authorization header"
	msgInvalidSession = "admin session expired, please log in again"
)

type contextKey string

const adminSessionKey contextKey = "admin_session"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuthenticator проверяет токен администратора
type AdminAuthenticator interface {
	Authenticate(token string) (*admin.Session, error)
}

// AdminAuth требует Bearer токен действующей сессии администратора
// и кладет сессию в контекст запроса
func AdminAuth(auth AdminAuthenticator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				logger.Warn("AdminAuth - Missing bearer token: path=%s", r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			session, err := auth.Authenticate(token)
			if err != nil {
				logger.Warn("AdminAuth - Invalid session: path=%s, error=%v", r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidSession)
				return
			}

			ctx := context.WithValue(r.Context(), adminSessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminSession возвращает сессию администратора из контекста
func AdminSession(ctx context.Context) (*admin.Session, bool) {
	session, ok := ctx.Value(adminSessionKey).(*admin.Session)
	return session, ok && session != nil
}

// WithAdminSession кладет сессию в контекст (для тестов обработчиков)
func WithAdminSession(ctx context.Context, session *admin.Session) context.Context {
	return context.WithValue(ctx, adminSessionKey, session)
}
