package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или уже удалена
	ErrSessionNotFound = errors.New("session not found")

	// ErrTooManySessions возвращается при превышении лимита активных сессий
	ErrTooManySessions = errors.New("too many active sessions")
)
