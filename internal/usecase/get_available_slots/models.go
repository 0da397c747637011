package get_available_slots

import (
	"time"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BarberID   int64     // ID барбера
	ServiceIDs []int64   // Список услуг, определяющий длительность слота
	Date       time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов на дату
type Response struct {
	Date            time.Time              // Дата, на которую запрашивались слоты
	BarberID        int64                  // ID барбера
	ServiceIDs      []int64                // Услуги из запроса
	DurationMinutes int                    // Суммарная длительность услуг
	TotalPrice      float64                // Суммарная стоимость услуг
	Slots           []domain.AvailableSlot // Слоты часовой сетки с признаком доступности
}
