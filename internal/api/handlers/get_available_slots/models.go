package get_available_slots

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
	getAvailableSlots "github.com/akimv/BarberHub-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime       string `json:"startTime"` // "14:00"
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string         `json:"date"`
	BarberID        int64          `json:"barberId"`
	ServiceIDs      []int64        `json:"serviceIds"`
	DurationMinutes int            `json:"durationMinutes"`
	TotalPrice      float64        `json:"totalPrice"`
	Slots           []SlotResponse `json:"slots"`
}

// parseRequest собирает запрос use case из path и query параметров
func parseRequest(barberID int64, query url.Values) (*getAvailableSlots.Request, error) {
	dateStr := query.Get("date")
	if dateStr == "" {
		return nil, fmt.Errorf("date is required")
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	serviceIDsStr := query.Get("serviceIds")
	if serviceIDsStr == "" {
		return nil, fmt.Errorf("serviceIds is required")
	}

	parts := strings.Split(serviceIDsStr, ",")
	serviceIDs := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		serviceIDs = append(serviceIDs, id)
	}

	return &getAvailableSlots.Request{
		BarberID:   barberID,
		ServiceIDs: serviceIDs,
		Date:       date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Available:       slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		BarberID:        resp.BarberID,
		ServiceIDs:      resp.ServiceIDs,
		DurationMinutes: resp.DurationMinutes,
		TotalPrice:      resp.TotalPrice,
		Slots:           slots,
	}
}
