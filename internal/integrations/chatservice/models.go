package chatservice

import "time"

// Message сообщение из лога переписки по записи.
// Лог append-only: сообщения не редактируются и не удаляются.
type Message struct {
	ID            string    `json:"id"`
	AppointmentID string    `json:"appointment_id"`
	SenderID      string    `json:"sender_id"`
	SenderRole    string    `json:"sender_role"` // client | barber
	Text          string    `json:"text"`
	CreatedAt     time.Time `json:"created_at"`
}

// SendMessageRequest запрос на добавление сообщения в лог
type SendMessageRequest struct {
	SenderID   string `json:"sender_id"`
	SenderRole string `json:"sender_role"`
	Text       string `json:"text"`
}

// ErrorResponse модель ошибки от чат-бэкенда
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
