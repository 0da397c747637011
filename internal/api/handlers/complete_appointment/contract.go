package complete_appointment

import (
	"context"

	"github.com/akimv/BarberHub-BookingService/internal/integrations/identity"
)

type AppointmentService interface {
	Complete(ctx context.Context, appointmentID string, user *identity.User) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
