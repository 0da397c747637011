package get_available_slots

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден в справочнике
	ErrBarberNotFound = errors.New("get_available_slots: barber not found")

	// ErrServiceNotFound возвращается, когда услуга из запроса отсутствует в каталоге
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidDate возвращается при некорректной дате (в прошлом)
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
