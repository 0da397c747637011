package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
	appointmentRepo "github.com/akimv/BarberHub-BookingService/internal/infra/storage/appointment"
	"github.com/akimv/BarberHub-BookingService/internal/integrations/chatservice"
	"github.com/akimv/BarberHub-BookingService/internal/integrations/identity"
	"github.com/akimv/BarberHub-BookingService/internal/service/chat/models"
)

// Service сервис чата записи.
// Хранение сообщений делегировано ChatService, здесь живёт только
// проверка, что пользователь является участником записи.
type Service struct {
	appointmentRepo AppointmentRepository
	chatClient      ChatServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса чата
func NewService(
	appointmentRepo AppointmentRepository,
	chatClient ChatServiceClient,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		chatClient:      chatClient,
		logger:          logger,
	}
}

// GetMessages возвращает сообщения чата записи
// Доступно владельцу записи и назначенному барберу
func (s *Service) GetMessages(ctx context.Context, appointmentID string, user *identity.User) (*models.MessageListResponse, error) {
	s.logger.Info("GetMessages: fetching messages for appointment id=%s by user=%s", appointmentID, user.ID)

	if _, err := s.loadParticipantAppointment(ctx, appointmentID, user); err != nil {
		return nil, err
	}

	messages, err := s.chatClient.ListMessages(ctx, appointmentID)
	if err != nil {
		s.logger.Error("GetMessages: chat service error for appointment id=%s: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: GetMessages - chat service error: %v", ErrInternal, err)
	}

	s.logger.Info("GetMessages: fetched %d messages for appointment id=%s", len(messages), appointmentID)
	return models.FromChatMessageList(messages), nil
}

// PostMessage отправляет сообщение в чат записи
// Доступно владельцу записи и назначенному барберу
func (s *Service) PostMessage(ctx context.Context, appointmentID string, req *models.SendMessageRequest, user *identity.User) (*models.MessageResponse, error) {
	s.logger.Info("PostMessage: posting message to appointment id=%s by user=%s", appointmentID, user.ID)

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if len(text) > domain.MaxMessageLength {
		return nil, fmt.Errorf("%w: text exceeds %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}

	apt, err := s.loadParticipantAppointment(ctx, appointmentID, user)
	if err != nil {
		return nil, err
	}

	senderRole := identity.RoleClient
	if s.isAssignedBarber(apt, user) {
		senderRole = identity.RoleBarber
	}

	message, err := s.chatClient.SendMessage(ctx, appointmentID, chatservice.SendMessageRequest{
		SenderID:   user.ID,
		SenderRole: senderRole,
		Text:       text,
	})
	if err != nil {
		s.logger.Error("PostMessage: chat service error for appointment id=%s: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: PostMessage - chat service error: %v", ErrInternal, err)
	}

	s.logger.Info("PostMessage: posted message id=%s to appointment id=%s", message.ID, appointmentID)
	return models.FromChatMessage(message), nil
}

// loadParticipantAppointment получает запись и проверяет, что пользователь
// является её участником
func (s *Service) loadParticipantAppointment(ctx context.Context, appointmentID string, user *identity.User) (*domain.Appointment, error) {
	apt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("chat: appointment id=%s not found", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("chat: repository error for appointment id=%s: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if apt.ClientID != user.ID && !s.isAssignedBarber(apt, user) {
		s.logger.Warn("chat: access denied for user=%s to appointment id=%s", user.ID, appointmentID)
		return nil, ErrAccessDenied
	}

	return apt, nil
}

// isAssignedBarber проверяет, что пользователь является барбером этой записи
func (s *Service) isAssignedBarber(apt *domain.Appointment, user *identity.User) bool {
	return user.IsBarber() && user.BarberID != nil && *user.BarberID == apt.BarberID
}
