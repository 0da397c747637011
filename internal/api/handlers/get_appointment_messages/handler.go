package get_appointment_messages

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/akimv/BarberHub-BookingService/internal/api/handlers"
	"github.com/akimv/BarberHub-BookingService/internal/api/middleware"
	"github.com/akimv/BarberHub-BookingService/internal/service/chat"
)

const (
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

// Handle GET /api/v1/appointments/{id}/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /appointments/{id}/messages - No user in context")
		handlers.RespondInternalError(w)
		return
	}

	appointmentID := mux.Vars(r)["id"]

	result, err := h.service.GetMessages(r.Context(), appointmentID, user)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/%s/messages - Appointment not found", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, chat.ErrAccessDenied):
			h.logger.Warn("GET /appointments/%s/messages - Access denied for user=%s", appointmentID, user.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /appointments/%s/messages - Failed to get messages: user=%s, error=%v",
				appointmentID, user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/%s/messages - Returned %d messages for user=%s",
		appointmentID, len(result.Messages), user.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
