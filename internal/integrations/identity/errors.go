package identity

import "errors"

var (
	// ErrTokenInvalid возвращается, когда токен не прошёл проверку
	ErrTokenInvalid = errors.New("identity client: token is invalid or expired")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("identity client: invalid response")
)
