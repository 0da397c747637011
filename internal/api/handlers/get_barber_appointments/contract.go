package get_barber_appointments

import (
	"context"

	"github.com/akimv/BarberHub-BookingService/internal/integrations/identity"
	"github.com/akimv/BarberHub-BookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetBarberAppointments(ctx context.Context, req *models.GetBarberAppointmentsRequest, user *identity.User) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
