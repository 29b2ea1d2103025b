package turfapi

import "errors"

var (
	// ErrNotFound возвращается, когда запрошенный ресурс не найден
	ErrNotFound = errors.New("turfapi client: not found")

	// ErrBadRequest возвращается, когда API отклонил параметры запроса
	ErrBadRequest = errors.New("turfapi client: bad request")

	// ErrUnauthorized возвращается при отсутствии или истечении токена администратора
	ErrUnauthorized = errors.New("turfapi client: unauthorized")

	// ErrConflict возвращается, когда слот уже занят другим бронированием
	ErrConflict = errors.New("turfapi client: slot already taken")

	// ErrRejected возвращается, когда API ответил success=false
	ErrRejected = errors.New("turfapi client: request rejected")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, сборка запроса)
	ErrInternal = errors.New("turfapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("turfapi client: invalid response")
)
