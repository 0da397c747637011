package complete_appointment

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
	msgAccessDenied        = "завершить запись может только её барбер"
	msgCannotComplete      = "запись нельзя завершить в текущем статусе"
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

// Handle PATCH /api/v1/appointments/{id}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("PATCH /appointments/{id}/complete - No user in context")
		handlers.RespondInternalError(w)
		return
	}

	appointmentID := mux.Vars(r)["id"]

	err := h.service.Complete(r.Context(), appointmentID, user)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/%s/complete - Appointment not found", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/%s/complete - Access denied for user=%s", appointmentID, user.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointments.ErrCannotComplete):
			h.logger.Warn("PATCH /appointments/%s/complete - Cannot complete in current status", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgCannotComplete)

		default:
			h.logger.Error("PATCH /appointments/%s/complete - Failed to complete: user=%s, error=%v",
				appointmentID, user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/%s/complete - Appointment completed by user=%s", appointmentID, user.ID)
	handlers.RespondNoContent(w)
}
