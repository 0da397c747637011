package send_appointment_message

import (
	"context"

	"github.com/akimv/BarberHub-BookingService/internal/integrations/identity"
	"github.com/akimv/BarberHub-BookingService/internal/service/chat/models"
)

type ChatService interface {
	PostMessage(ctx context.Context, appointmentID string, req *models.SendMessageRequest, user *identity.User) (*models.MessageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
