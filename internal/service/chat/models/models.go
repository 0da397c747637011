package models

import (
	"time"

	"github.com/akimv/BarberHub-BookingService/internal/integrations/chatservice"
)

// Request модели

// SendMessageRequest запрос на отправку сообщения в чат записи
type SendMessageRequest struct {
	Text string `json:"text"`
}

// Response модели

// MessageResponse ответ с данными сообщения
type MessageResponse struct {
	ID            string    `json:"id"`
	AppointmentID string    `json:"appointmentId"`
	SenderID      string    `json:"senderId"`
	SenderRole    string    `json:"senderRole"`
	Text          string    `json:"text"`
	CreatedAt     time.Time `json:"createdAt"`
}

// MessageListResponse ответ со списком сообщений
type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// Методы конвертации

// FromChatMessage конвертирует модель ChatService в DTO
func FromChatMessage(m *chatservice.Message) *MessageResponse {
	if m == nil {
		return nil
	}

	return &MessageResponse{
		ID:            m.ID,
		AppointmentID: m.AppointmentID,
		SenderID:      m.SenderID,
		SenderRole:    m.SenderRole,
		Text:          m.Text,
		CreatedAt:     m.CreatedAt,
	}
}

// FromChatMessageList конвертирует список моделей ChatService в DTO
func FromChatMessageList(messages []*chatservice.Message) *MessageListResponse {
	resp := &MessageListResponse{
		Messages: make([]MessageResponse, 0, len(messages)),
	}

	for _, m := range messages {
		if msgResp := FromChatMessage(m); msgResp != nil {
			resp.Messages = append(resp.Messages, *msgResp)
		}
	}

	return resp
}
