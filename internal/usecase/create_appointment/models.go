package create_appointment

import (
	"time"

	"github.com/akimv/BarberHub-BookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID   string           // Идентификатор клиента из identity-провайдера
	BarberID   int64            // ID барбера
	SiteID     int64            // ID точки
	ServiceIDs []int64          // Упорядоченный список услуг (не пустой)
	Date       time.Time        // Дата записи (без времени)
	StartTime  types.TimeString // Время начала, строго начало часа ("14:00")
	Notes      *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              string           // UUID созданной записи
	ClientID        string           // Идентификатор клиента
	BarberID        int64            // ID барбера
	SiteID          int64            // ID точки
	ServiceIDs      []int64          // Список услуг
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания (derived)
	DurationMinutes int              // Суммарная длительность услуг
	TotalPrice      float64          // Суммарная стоимость услуг
	Status          string           // Статус записи

	// Денормализованные данные
	ServiceNames []string // Названия услуг
	Notes        *string  // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
