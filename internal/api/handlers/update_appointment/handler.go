package update_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/akimv/BarberHub-BookingService/internal/api/handlers"
	"github.com/akimv/BarberHub-BookingService/internal/api/middleware"
	updateAppointment "github.com/akimv/BarberHub-BookingService/internal/usecase/update_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgAppointmentNotFound = "запись не найдена"
	msgAccessDenied        = "нет доступа к этой записи"
	msgCannotUpdate        = "запись нельзя изменить в текущем статусе"
	msgBarberNotFound      = "барбер не найден"
	msgSiteNotFound        = "точка не найдена"
	msgServiceNotFound     = "услуга не найдена"
	msgBarberNotAtSite     = "барбер не работает на этой точке"
	msgPastOrTooSoon       = "время записи в прошлом или слишком близко"
	msgExceedsClosing      = "запись не успеет закончиться до закрытия"
	msgBarberBusy          = "барбер занят в выбранное время"
	msgInvalidTimeSlot     = "некорректный временной слот"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("PUT /appointments/{id} - No user in context")
		handlers.RespondInternalError(w)
		return
	}

	appointmentID := mux.Vars(r)["id"]

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/%s - Invalid request body: %v", appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID, user.ID)
	if err != nil {
		h.logger.Warn("PUT /appointments/%s - Failed to parse request: %v", appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/%s - Appointment not found", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, updateAppointment.ErrAccessDenied):
			h.logger.Warn("PUT /appointments/%s - Access denied for user=%s", appointmentID, user.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, updateAppointment.ErrCannotUpdate):
			h.logger.Warn("PUT /appointments/%s - Cannot update in current status", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgCannotUpdate)

		case errors.Is(err, updateAppointment.ErrBarberBusy):
			h.logger.Warn("PUT /appointments/%s - Barber busy: barber=%d", appointmentID, req.BarberID)
			handlers.RespondError(w, http.StatusConflict, msgBarberBusy)

		case errors.Is(err, updateAppointment.ErrBarberNotFound):
			h.logger.Warn("PUT /appointments/%s - Barber not found: barber=%d", appointmentID, req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, updateAppointment.ErrSiteNotFound):
			h.logger.Warn("PUT /appointments/%s - Site not found: site=%d", appointmentID, req.SiteID)
			handlers.RespondNotFound(w, msgSiteNotFound)

		case errors.Is(err, updateAppointment.ErrServiceNotFound):
			h.logger.Warn("PUT /appointments/%s - Service not found: services=%v", appointmentID, req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, updateAppointment.ErrBarberNotAtSite):
			h.logger.Warn("PUT /appointments/%s - Barber not at site: barber=%d, site=%d", appointmentID, req.BarberID, req.SiteID)
			handlers.RespondBadRequest(w, msgBarberNotAtSite)

		case errors.Is(err, updateAppointment.ErrPastOrTooSoon):
			h.logger.Warn("PUT /appointments/%s - Past or too soon: date=%s, time=%s", appointmentID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgPastOrTooSoon)

		case errors.Is(err, updateAppointment.ErrExceedsClosing):
			h.logger.Warn("PUT /appointments/%s - Exceeds closing: date=%s, time=%s", appointmentID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgExceedsClosing)

		case errors.Is(err, updateAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("PUT /appointments/%s - Invalid time slot: time=%s", appointmentID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/%s - Invalid input: %v", appointmentID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /appointments/%s - Failed to update appointment: user=%s, error=%v",
				appointmentID, user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /appointments/%s - Appointment updated successfully by user=%s", appointmentID, user.ID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
