package chat

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
	appointmentRepo "github.com/akimv/BarberHub-BookingService/internal/infra/storage/appointment"
	"github.com/akimv/BarberHub-BookingService/internal/integrations/chatservice"
	"github.com/akimv/BarberHub-BookingService/internal/integrations/identity"
	"github.com/akimv/BarberHub-BookingService/internal/service/chat/models"
	"github.com/akimv/BarberHub-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAppointmentRepo struct {
	byID map[string]*domain.Appointment
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	apt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return apt, nil
}

type fakeChatClient struct {
	messages []*chatservice.Message
	sent     *chatservice.SendMessageRequest
}

func (f *fakeChatClient) ListMessages(_ context.Context, _ string) ([]*chatservice.Message, error) {
	return f.messages, nil
}

func (f *fakeChatClient) SendMessage(_ context.Context, appointmentID string, msg chatservice.SendMessageRequest) (*chatservice.Message, error) {
	f.sent = &msg
	return &chatservice.Message{
		ID:            "msg-1",
		AppointmentID: appointmentID,
		SenderID:      msg.SenderID,
		SenderRole:    msg.SenderRole,
		Text:          msg.Text,
		CreatedAt:     time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC),
	}, nil
}

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:       "apt-1",
		ClientID: "client-1",
		BarberID: 101,
		Status:   domain.StatusActive,
	}
}

func newTestService(chatClient *fakeChatClient) *Service {
	repo := &fakeAppointmentRepo{byID: map[string]*domain.Appointment{"apt-1": testAppointment()}}
	return NewService(repo, chatClient, nopLogger{})
}

func clientUser() *identity.User {
	return &identity.User{ID: "client-1", Role: identity.RoleClient}
}

func barberUser() *identity.User {
	return &identity.User{ID: "barber-user-1", Role: identity.RoleBarber, BarberID: ptr.Ptr(int64(101))}
}

func TestService_GetMessages(t *testing.T) {
	t.Parallel()

	chatClient := &fakeChatClient{
		messages: []*chatservice.Message{
			{ID: "msg-1", AppointmentID: "apt-1", SenderID: "client-1", SenderRole: identity.RoleClient, Text: "Добрый день"},
		},
	}
	svc := newTestService(chatClient)

	t.Run("owner reads messages", func(t *testing.T) {
		resp, err := svc.GetMessages(context.Background(), "apt-1", clientUser())
		require.NoError(t, err)
		require.Len(t, resp.Messages, 1)
		assert.Equal(t, "Добрый день", resp.Messages[0].Text)
	})

	t.Run("assigned barber reads messages", func(t *testing.T) {
		_, err := svc.GetMessages(context.Background(), "apt-1", barberUser())
		assert.NoError(t, err)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		stranger := &identity.User{ID: "client-2", Role: identity.RoleClient}
		_, err := svc.GetMessages(context.Background(), "apt-1", stranger)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		_, err := svc.GetMessages(context.Background(), "missing", clientUser())
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestService_PostMessage(t *testing.T) {
	t.Parallel()

	t.Run("client posts with client role", func(t *testing.T) {
		chatClient := &fakeChatClient{}
		svc := newTestService(chatClient)

		resp, err := svc.PostMessage(context.Background(), "apt-1", &models.SendMessageRequest{Text: "  Подойду к 14:00  "}, clientUser())
		require.NoError(t, err)

		require.NotNil(t, chatClient.sent)
		assert.Equal(t, identity.RoleClient, chatClient.sent.SenderRole)
		// Текст сохраняется без окружающих пробелов
		assert.Equal(t, "Подойду к 14:00", chatClient.sent.Text)
		assert.Equal(t, "msg-1", resp.ID)
	})

	t.Run("assigned barber posts with barber role", func(t *testing.T) {
		chatClient := &fakeChatClient{}
		svc := newTestService(chatClient)

		_, err := svc.PostMessage(context.Background(), "apt-1", &models.SendMessageRequest{Text: "Жду вас"}, barberUser())
		require.NoError(t, err)

		require.NotNil(t, chatClient.sent)
		assert.Equal(t, identity.RoleBarber, chatClient.sent.SenderRole)
	})

	t.Run("blank text rejected", func(t *testing.T) {
		chatClient := &fakeChatClient{}
		svc := newTestService(chatClient)

		_, err := svc.PostMessage(context.Background(), "apt-1", &models.SendMessageRequest{Text: "   "}, clientUser())
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, chatClient.sent)
	})

	t.Run("too long text rejected", func(t *testing.T) {
		chatClient := &fakeChatClient{}
		svc := newTestService(chatClient)

		long := strings.Repeat("a", domain.MaxMessageLength+1)
		_, err := svc.PostMessage(context.Background(), "apt-1", &models.SendMessageRequest{Text: long}, clientUser())
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("stranger cannot post", func(t *testing.T) {
		chatClient := &fakeChatClient{}
		svc := newTestService(chatClient)

		stranger := &identity.User{ID: "client-2", Role: identity.RoleClient}
		_, err := svc.PostMessage(context.Background(), "apt-1", &models.SendMessageRequest{Text: "hi"}, stranger)
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Nil(t, chatClient.sent)
	})
}
