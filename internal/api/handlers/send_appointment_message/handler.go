package send_appointment_message

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/akimv/BarberHub-BookingService/internal/api/handlers"
	"github.com/akimv/BarberHub-BookingService/internal/api/middleware"
	"github.com/akimv/BarberHub-BookingService/internal/service/chat"
	"github.com/akimv/BarberHub-BookingService/internal/service/chat/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidMessage      = "некорректное сообщение"
	msgAppointmentNotFound = "запись не найдена"
	msgAccessDenied        = "чат доступен только участникам записи"
)

type Handler struct {
	service ChatService
	logger  Logger
}

func NewHandler(service ChatService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{id}/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /appointments/{id}/messages - No user in context")
		handlers.RespondInternalError(w)
		return
	}

	appointmentID := mux.Vars(r)["id"]

	var req models.SendMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/%s/messages - Invalid request body: %v", appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.PostMessage(r.Context(), appointmentID, &req, user)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrInvalidInput):
			h.logger.Warn("POST /appointments/%s/messages - Invalid message: %v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidMessage)

		case errors.Is(err, chat.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/%s/messages - Appointment not found", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, chat.ErrAccessDenied):
			h.logger.Warn("POST /appointments/%s/messages - Access denied for user=%s", appointmentID, user.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("POST /appointments/%s/messages - Failed to post message: user=%s, error=%v",
				appointmentID, user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/%s/messages - Message id=%s posted by user=%s",
		appointmentID, result.ID, user.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
