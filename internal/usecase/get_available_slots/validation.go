package get_available_slots

import (
	"fmt"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one serviceID is required", ErrInvalidInput)
	}

	if len(req.ServiceIDs) > domain.MaxServicesPerAppointment {
		return fmt.Errorf("%w: at most %d services per appointment", ErrInvalidInput, domain.MaxServicesPerAppointment)
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// aggregateServices считает суммарную стоимость и длительность по
// упорядоченному списку услуг; неизвестный id отклоняет весь расчёт
func aggregateServices(serviceIDs []int64, services []*domain.Service) (totalPrice float64, totalDuration int, err error) {
	byID := make(map[int64]*domain.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	for _, id := range serviceIDs {
		svc, ok := byID[id]
		if !ok {
			return 0, 0, fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
		}
		totalPrice += svc.Price
		totalDuration += svc.DurationMinutes
	}

	return totalPrice, totalDuration, nil
}
