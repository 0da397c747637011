package create_appointment

import (
	"errors"
	"net/http"

	"github.com/akimv/BarberHub-BookingService/internal/api/handlers"
	"github.com/akimv/BarberHub-BookingService/internal/api/middleware"
	createAppointment "github.com/akimv/BarberHub-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBarberNotFound     = "барбер не найден"
	msgSiteNotFound       = "точка не найдена"
	msgServiceNotFound    = "услуга не найдена"
	msgBarberNotAtSite    = "барбер не работает на этой точке"
	msgPastOrTooSoon      = "время записи в прошлом или слишком близко"
	msgExceedsClosing     = "запись не успеет закончиться до закрытия"
	msgBarberBusy         = "барбер занят в выбранное время"
	msgInvalidTimeSlot    = "некорректный временной слот"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /appointments - No user in context")
		handlers.RespondInternalError(w)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(user.ID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrBarberBusy):
			h.logger.Warn("POST /appointments - Barber busy: client=%s, barber=%d", user.ID, req.BarberID)
			handlers.RespondError(w, http.StatusConflict, msgBarberBusy)

		case errors.Is(err, createAppointment.ErrBarberNotFound):
			h.logger.Warn("POST /appointments - Barber not found: barber=%d", req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createAppointment.ErrSiteNotFound):
			h.logger.Warn("POST /appointments - Site not found: site=%d", req.SiteID)
			handlers.RespondNotFound(w, msgSiteNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: client=%s, services=%v", user.ID, req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrBarberNotAtSite):
			h.logger.Warn("POST /appointments - Barber not at site: barber=%d, site=%d", req.BarberID, req.SiteID)
			handlers.RespondBadRequest(w, msgBarberNotAtSite)

		case errors.Is(err, createAppointment.ErrPastOrTooSoon):
			h.logger.Warn("POST /appointments - Past or too soon: client=%s, date=%s, time=%s", user.ID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgPastOrTooSoon)

		case errors.Is(err, createAppointment.ErrExceedsClosing):
			h.logger.Warn("POST /appointments - Exceeds closing: client=%s, date=%s, time=%s", user.ID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgExceedsClosing)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: client=%s, time=%s", user.ID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: client=%s, error=%v", user.ID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client=%s, barber=%d, error=%v",
				user.ID, req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: id=%s, client=%s, barber=%d",
		result.ID, user.ID, req.BarberID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
