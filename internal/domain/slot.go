package domain

import "github.com/akimv/BarberHub-BookingService/pkg/types"

// AvailableSlot represents an hourly slot in a barber's day
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int  // длительность выбранного набора услуг
	Available       bool // свободен ли барбер на весь интервал
}
