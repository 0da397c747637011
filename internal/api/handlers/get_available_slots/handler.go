package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/akimv/BarberHub-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/akimv/BarberHub-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidBarberID = "некорректный ID барбера"
	msgInvalidQuery    = "некорректные параметры запроса, ожидаются date=YYYY-MM-DD и serviceIds=1,2"
	msgBarberNotFound  = "барбер не найден"
	msgServiceNotFound = "услуга не найдена"
	msgInvalidDate     = "некорректная дата"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{id}/available-slots?date=2026-09-15&serviceIds=201,203
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || barberID <= 0 {
		h.logger.Warn("GET /barbers/{id}/available-slots - Invalid barber id: %s", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	req, err := parseRequest(barberID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /barbers/%d/available-slots - Invalid query: %v", barberID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrBarberNotFound):
			h.logger.Warn("GET /barbers/%d/available-slots - Barber not found", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /barbers/%d/available-slots - Service not found: services=%v", barberID, req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /barbers/%d/available-slots - Invalid date: %s", barberID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /barbers/%d/available-slots - Invalid input: %v", barberID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /barbers/%d/available-slots - Failed to get slots: %v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/%d/available-slots - Returned %d slots", barberID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
