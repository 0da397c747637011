package get_client_appointments

import (
	"errors"
	"net/http"

	"github.com/akimv/BarberHub-BookingService/internal/api/handlers"
	"github.com/akimv/BarberHub-BookingService/internal/api/middleware"
	"github.com/akimv/BarberHub-BookingService/internal/service/appointments"
	"github.com/akimv/BarberHub-BookingService/internal/service/appointments/models"
)

const (
	msgInvalidStatus = "некорректный статус записи"
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

// Handle GET /api/v1/clients/me/appointments?status=active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /clients/me/appointments - No user in context")
		handlers.RespondInternalError(w)
		return
	}

	req := &models.GetClientAppointmentsRequest{
		ClientID: user.ID,
	}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetClientAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /clients/me/appointments - Invalid status for user=%s", user.ID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /clients/me/appointments - Failed to get appointments: user=%s, error=%v",
				user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/me/appointments - Fetched %d appointments for user=%s",
		len(result.Appointments), user.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
