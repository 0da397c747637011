package update_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrAccessDenied возвращается, когда запись пытается изменить не её владелец
	ErrAccessDenied = errors.New("update_appointment: access denied")

	// ErrCannotUpdate возвращается, когда запись в статусе, не допускающем изменений
	ErrCannotUpdate = errors.New("update_appointment: appointment cannot be updated")

	// ErrBarberNotFound возвращается, когда барбер не найден в справочнике
	ErrBarberNotFound = errors.New("update_appointment: barber not found")

	// ErrSiteNotFound возвращается, когда точка не найдена
	ErrSiteNotFound = errors.New("update_appointment: site not found")

	// ErrServiceNotFound возвращается, когда услуга из запроса отсутствует в каталоге
	ErrServiceNotFound = errors.New("update_appointment: service not found")

	// ErrBarberNotAtSite возвращается, когда барбер не работает на указанной точке
	ErrBarberNotAtSite = errors.New("update_appointment: barber does not work at this site")

	// ErrPastOrTooSoon возвращается, когда новое начало записи в прошлом
	// или ближе минимального lead time
	ErrPastOrTooSoon = errors.New("update_appointment: start is in the past or violates lead time")

	// ErrExceedsClosing возвращается, когда запись заканчивается после закрытия
	ErrExceedsClosing = errors.New("update_appointment: appointment would end after closing time")

	// ErrBarberBusy возвращается, когда интервал пересекается с другой записью барбера
	ErrBarberBusy = errors.New("update_appointment: barber is busy at this time")

	// ErrInvalidTimeSlot возвращается, когда время начала вне сетки слотов
	ErrInvalidTimeSlot = errors.New("update_appointment: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)
