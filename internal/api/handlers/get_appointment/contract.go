package get_appointment

import (
	"context"

	"github.com/akimv/BarberHub-BookingService/internal/integrations/identity"
	"github.com/akimv/BarberHub-BookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByID(ctx context.Context, id string, user *identity.User) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
