package get_available_slots

import (
	"time"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
	"github.com/akimv/BarberHub-BookingService/pkg/types"
)

// generateTimeSlots генерирует часовую сетку слотов на день.
// Слоты идут с шага SlotStepMinutes от открытия; слот попадает в сетку,
// только если запись длительностью durationMinutes успевает закончиться
// не позже закрытия. Для сегодняшней даты слоты дополнительно фильтруются
// по минимальному времени до начала записи.
func generateTimeSlots(
	durationMinutes int,
	requestDate time.Time,
	now time.Time,
) ([]types.TimeString, error) {
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	allSlots := make([]types.TimeString, 0)
	currentSlot := domain.OpenTime

	for currentSlot.IsBefore(domain.CloseTime) {
		slotEnd, err := currentSlot.AddMinutes(durationMinutes)
		if err != nil {
			break
		}
		if !slotEnd.IsAfter(domain.CloseTime) {
			allSlots = append(allSlots, currentSlot)
		}

		currentSlot, err = currentSlot.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			break
		}
	}

	// На будущие даты окно доступности не режет сетку
	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(domain.LeadTimeMinutes)
	if err != nil {
		// Слишком близко к полуночи, сегодня записаться уже нельзя
		return []types.TimeString{}, nil
	}

	availableSlots := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if !slot.IsBefore(minAllowedTime) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// markAvailability помечает каждый слот сетки признаком доступности
// по пересечению с активными записями барбера
func markAvailability(
	slots []types.TimeString,
	durationMinutes int,
	appointments []*domain.Appointment,
) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, len(slots))

	for i, slotStart := range slots {
		busy := hasOverlappingAppointment(slotStart, durationMinutes, appointments)

		result[i] = domain.AvailableSlot{
			StartTime:       slotStart,
			DurationMinutes: durationMinutes,
			Available:       !busy,
		}
	}

	return result
}

// hasOverlappingAppointment проверяет пересечение слота с активными записями.
// Интервалы полуоткрытые: если запись заканчивается ровно там, где начинается
// слот (или наоборот), пересечения НЕТ.
//
// Примеры:
// - Слот 14:00-14:45, запись 14:30-15:00 → ЕСТЬ пересечение (14:30-14:45)
// - Слот 14:00-14:45, запись 14:45-15:15 → НЕТ пересечения (граничат)
func hasOverlappingAppointment(slotStart types.TimeString, durationMinutes int, appointments []*domain.Appointment) bool {
	slotEnd, err := slotStart.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}

	for _, apt := range appointments {
		if !apt.IsActive() {
			continue
		}

		aptStart := apt.StartTime
		aptEnd, err := apt.StartTime.AddMinutes(apt.DurationMinutes)
		if err != nil {
			continue
		}

		if aptStart.IsBefore(slotEnd) && aptEnd.IsAfter(slotStart) {
			return true
		}
	}

	return false
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
