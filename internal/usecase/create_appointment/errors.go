package create_appointment

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден в справочнике
	ErrBarberNotFound = errors.New("create_appointment: barber not found")

	// ErrSiteNotFound возвращается, когда точка не найдена
	ErrSiteNotFound = errors.New("create_appointment: site not found")

	// ErrServiceNotFound возвращается, когда услуга из запроса отсутствует в каталоге.
	// Неизвестный id услуги отклоняет всю запись целиком, а не пропускается.
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrBarberNotAtSite возвращается, когда барбер не работает на указанной точке
	ErrBarberNotAtSite = errors.New("create_appointment: barber does not work at this site")

	// ErrPastOrTooSoon возвращается, когда начало записи в прошлом
	// или ближе минимального lead time
	ErrPastOrTooSoon = errors.New("create_appointment: start is in the past or violates lead time")

	// ErrExceedsClosing возвращается, когда запись заканчивается после закрытия
	ErrExceedsClosing = errors.New("create_appointment: appointment would end after closing time")

	// ErrBarberBusy возвращается, когда интервал пересекается с другой записью барбера
	ErrBarberBusy = errors.New("create_appointment: barber is busy at this time")

	// ErrInvalidTimeSlot возвращается, когда время начала вне сетки слотов
	// (не начало часа или вне рабочих часов)
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
