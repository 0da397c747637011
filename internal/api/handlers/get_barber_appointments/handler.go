package get_barber_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/akimv/BarberHub-BookingService/internal/api/handlers"
	"github.com/akimv/BarberHub-BookingService/internal/api/middleware"
	"github.com/akimv/BarberHub-BookingService/internal/service/appointments"
)

const (
	msgInvalidBarberID = "некорректный ID барбера"
	msgInvalidFilter   = "некорректные параметры фильтрации"
	msgAccessDenied    = "расписание доступно только самому барберу"
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

// Handle GET /api/v1/barbers/{id}/appointments?startDate=&endDate=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /barbers/{id}/appointments - No user in context")
		handlers.RespondInternalError(w)
		return
	}

	barberID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || barberID <= 0 {
		h.logger.Warn("GET /barbers/{id}/appointments - Invalid barber id: %s", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	req, err := parseFilter(barberID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /barbers/%d/appointments - Invalid filter: %v", barberID, err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.GetBarberAppointments(r.Context(), req, user)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /barbers/%d/appointments - Access denied for user=%s", barberID, user.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /barbers/%d/appointments - Invalid filter: %v", barberID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /barbers/%d/appointments - Failed to get appointments: user=%s, error=%v",
				barberID, user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/%d/appointments - Fetched %d appointments for user=%s",
		barberID, len(result.Appointments), user.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
