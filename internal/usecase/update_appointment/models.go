package update_appointment

import (
	"time"

	"github.com/akimv/BarberHub-BookingService/pkg/types"
)

// Request модель запроса на изменение записи.
// Запрос несёт полное новое состояние редактируемых полей:
// частичные обновления не поддерживаются (единый wire-формат).
type Request struct {
	AppointmentID string           // UUID изменяемой записи
	ClientID      string           // Идентификатор клиента (инициатор, должен быть владельцем)
	BarberID      int64            // Новый ID барбера
	SiteID        int64            // Новый ID точки
	ServiceIDs    []int64          // Новый список услуг (не пустой)
	Date          time.Time        // Новая дата записи
	StartTime     types.TimeString // Новое время начала, строго начало часа
	Notes         *string          // Заметки (опционально)
}

// Response модель ответа с изменённой записью
type Response struct {
	ID              string
	ClientID        string
	BarberID        int64
	SiteID          int64
	ServiceIDs      []int64
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	TotalPrice      float64
	Status          string

	ServiceNames []string
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
