package domain

import "github.com/akimv/BarberHub-BookingService/pkg/types"

// Booking policy constants.
// Барбершоп работает по единому расписанию на всех точках,
// поэтому рабочие часы и lead time заданы константами, а не конфигурацией.
const (
	// OpenTime начало рабочего дня (включительно)
	OpenTime = types.TimeString("10:00")

	// CloseTime конец рабочего дня. Запись может заканчиваться ровно в CloseTime,
	// но не позже.
	CloseTime = types.TimeString("22:00")

	// LeadTimeMinutes минимальный интервал между текущим моментом и началом записи
	LeadTimeMinutes = 40

	// SlotStepMinutes шаг сетки слотов: записи начинаются строго в начале часа
	SlotStepMinutes = 60
)

// Business validation constants
const (
	MaxServicesPerAppointment   = 10
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxMessageLength            = 2000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слот.
// Используется при подсчёте пересечений и фильтрации расписания.
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByClient,
	StatusCancelledByBarber,
}

// ActiveStatuses список статусов, видимых в расписании по умолчанию
var ActiveStatuses = []AppointmentStatus{
	StatusActive,
	StatusCompleted,
}
