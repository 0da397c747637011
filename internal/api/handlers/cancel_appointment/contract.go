package cancel_appointment

import (
	"context"

	"github.com/akimv/BarberHub-BookingService/internal/integrations/identity"
	"github.com/akimv/BarberHub-BookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	Cancel(ctx context.Context, appointmentID string, req *models.CancelAppointmentRequest, user *identity.User) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
