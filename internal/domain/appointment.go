package domain

import (
	"time"

	"github.com/akimv/BarberHub-BookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusActive            AppointmentStatus = "active"
	StatusCompleted         AppointmentStatus = "completed"
	StatusCancelledByClient AppointmentStatus = "cancelled_by_client"
	StatusCancelledByBarber AppointmentStatus = "cancelled_by_barber"
)

// Appointment represents a client's appointment with a barber
type Appointment struct {
	ID         string // opaque UUID
	ClientID   string // идентификатор клиента из identity-провайдера
	BarberID   int64
	SiteID     int64
	ServiceIDs []int64 // упорядоченный список услуг, не пустой

	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int // derived: сумма длительностей услуг
	TotalPrice      float64
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceNames []string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime returns the derived end of the appointment (start + duration).
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.DurationMinutes)
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status == StatusActive
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusActive
}

// CanBeUpdated returns true if the appointment can be edited by its owner
func (a *Appointment) CanBeUpdated() bool {
	return a.Status == StatusActive
}

// CanBeCompleted returns true if the appointment can be marked completed
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusActive
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelledByClient || a.Status == StatusCancelledByBarber
}

// BarberAppointmentsFilter фильтр для получения расписания барбера
type BarberAppointmentsFilter struct {
	BarberID        int64              // Обязательный параметр
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые записи
}
