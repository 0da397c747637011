package get_appointment_messages

import (
	"context"

	"github.com/akimv/BarberHub-BookingService/internal/integrations/identity"
	"github.com/akimv/BarberHub-BookingService/internal/service/chat/models"
)

type ChatService interface {
	GetMessages(ctx context.Context, appointmentID string, user *identity.User) (*models.MessageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
