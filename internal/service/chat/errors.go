package chat

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("chat: appointment not found")

	// ErrAccessDenied возвращается, когда пользователь не участник записи
	ErrAccessDenied = errors.New("chat: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("chat: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("chat: internal error")
)
