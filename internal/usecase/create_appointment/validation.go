package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
	"github.com/akimv/BarberHub-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ClientID) == "" {
		return fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}

	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.SiteID <= 0 {
		return fmt.Errorf("%w: siteID must be positive", ErrInvalidInput)
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

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateSlotGrid проверяет, что начало записи лежит на часовой сетке
// внутри рабочего дня: минуты равны нулю, не раньше открытия и строго
// раньше закрытия
func validateSlotGrid(startTime types.TimeString) error {
	minutes, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if minutes%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: start time must be on the hour", ErrInvalidTimeSlot)
	}

	if startTime.IsBefore(domain.OpenTime) || !startTime.IsBefore(domain.CloseTime) {
		return fmt.Errorf("%w: start time is outside business hours", ErrInvalidTimeSlot)
	}

	return nil
}

// validateLeadTime проверяет политику окна доступности:
// дата не в прошлом, начало не раньше now + lead time
func validateLeadTime(date time.Time, startTime types.TimeString, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrPastOrTooSoon
	}

	// Для будущих дат lead time всегда выдержан
	if !isSameDay(date, now) {
		return nil
	}

	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(domain.LeadTimeMinutes)
	if err != nil {
		// now + 40 минут перевалило за полночь: сегодня уже ничего не забронировать
		return ErrPastOrTooSoon
	}

	if startTime.IsBefore(minAllowedTime) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrPastOrTooSoon, domain.LeadTimeMinutes)
	}

	return nil
}

// validateClosingTime проверяет, что запись заканчивается не позже закрытия.
// Окончание ровно в CloseTime допустимо.
func validateClosingTime(startTime types.TimeString, durationMinutes int) (types.TimeString, error) {
	endTime, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		// Интервал перевалил за полночь - заведомо позже закрытия
		return "", ErrExceedsClosing
	}

	if endTime.IsAfter(domain.CloseTime) {
		return "", ErrExceedsClosing
	}

	return endTime, nil
}

// aggregateServices считает суммарную стоимость и длительность по
// упорядоченному списку услуг. Любой id, отсутствующий в каталоге,
// отклоняет весь расчёт.
func aggregateServices(serviceIDs []int64, services []*domain.Service) (totalPrice float64, totalDuration int, names []string, err error) {
	byID := make(map[int64]*domain.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	names = make([]string, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		svc, ok := byID[id]
		if !ok {
			return 0, 0, nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
		}
		totalPrice += svc.Price
		totalDuration += svc.DurationMinutes
		names = append(names, svc.Name)
	}

	return totalPrice, totalDuration, names, nil
}

// hasOverlappingAppointment проверяет пересечение интервала с активными
// записями барбера. Интервалы полуоткрытые: касание границ пересечением
// не считается. Запись с id == excludeID пропускается (edit-флоу).
func hasOverlappingAppointment(
	startTime types.TimeString,
	durationMinutes int,
	appointments []*domain.Appointment,
	excludeID string,
) (bool, error) {
	endTime, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return false, err
	}

	for _, apt := range appointments {
		if excludeID != "" && apt.ID == excludeID {
			continue
		}

		// Пропускаем отменённые записи
		if !apt.IsActive() {
			continue
		}

		aptStart := apt.StartTime
		aptEnd, err := apt.StartTime.AddMinutes(apt.DurationMinutes)
		if err != nil {
			// Если не можем вычислить конец записи, пропускаем
			continue
		}

		// Пересечение есть, только если начало одной записи СТРОГО раньше
		// конца другой в обе стороны
		if aptStart.IsBefore(endTime) && aptEnd.IsAfter(startTime) {
			return true, nil
		}
	}

	return false, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
