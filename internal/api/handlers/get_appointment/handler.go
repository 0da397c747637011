package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/akimv/BarberHub-BookingService/internal/api/handlers"
	"github.com/akimv/BarberHub-BookingService/internal/api/middleware"
	"github.com/akimv/BarberHub-BookingService/internal/service/appointments"
)

const (
	msgAppointmentNotFound = "запись не найдена"
	msgAccessDenied        = "нет доступа к этой записи"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /appointments/{id} - No user in context")
		handlers.RespondInternalError(w)
		return
	}

	appointmentID := mux.Vars(r)["id"]

	result, err := h.service.GetByID(r.Context(), appointmentID, user)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/%s - Appointment not found", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /appointments/%s - Access denied for user=%s", appointmentID, user.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /appointments/%s - Failed to get appointment: %v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/%s - Appointment fetched by user=%s", appointmentID, user.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
