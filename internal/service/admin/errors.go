package admin

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized возвращается, когда сессия администратора отсутствует, истекла или отозвана
	ErrUnauthorized = errors.New("admin session is not valid")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound возвращается, когда площадка или блокировка не найдены
	ErrNotFound = errors.New("not found")

	// ErrConflict возвращается, когда часы уже заняты
	ErrConflict = errors.New("slot is already taken")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("internal error")
)
