package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/akimv/BarberHub-BookingService/internal/api/handlers"
	"github.com/akimv/BarberHub-BookingService/internal/api/middleware"
	"github.com/akimv/BarberHub-BookingService/internal/service/appointments"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgReasonTooLong       = "слишком длинная причина отмены"
	msgAppointmentNotFound = "запись не найдена"
	msgAccessDenied        = "нет доступа к этой записи"
	msgCannotCancel        = "запись нельзя отменить в текущем статусе"
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

// Handle PATCH /api/v1/appointments/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("PATCH /appointments/{id}/cancel - No user in context")
		handlers.RespondInternalError(w)
		return
	}

	appointmentID := mux.Vars(r)["id"]

	var req CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/%s/cancel - Invalid request body: %v", appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if !req.Validate() {
		h.logger.Warn("PATCH /appointments/%s/cancel - Cancellation reason too long", appointmentID)
		handlers.RespondBadRequest(w, msgReasonTooLong)
		return
	}

	err := h.service.Cancel(r.Context(), appointmentID, req.ToServiceRequest(), user)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/%s/cancel - Appointment not found", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/%s/cancel - Access denied for user=%s", appointmentID, user.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointments.ErrCannotCancel):
			h.logger.Warn("PATCH /appointments/%s/cancel - Cannot cancel in current status", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("PATCH /appointments/%s/cancel - Failed to cancel: user=%s, error=%v",
				appointmentID, user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/%s/cancel - Appointment cancelled by user=%s", appointmentID, user.ID)
	handlers.RespondNoContent(w)
}
