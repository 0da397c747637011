package chat

import (
	"context"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
	"github.com/akimv/BarberHub-BookingService/internal/integrations/chatservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
}

// ChatServiceClient интерфейс клиента для ChatService
type ChatServiceClient interface {
	ListMessages(ctx context.Context, appointmentID string) ([]*chatservice.Message, error)
	SendMessage(ctx context.Context, appointmentID string, msg chatservice.SendMessageRequest) (*chatservice.Message, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
