package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
	catalogRepo "github.com/akimv/BarberHub-BookingService/internal/infra/storage/catalog"
)

// UseCase use case для получения доступных слотов записи к барберу
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: barber=%d, services=%v, date=%s",
		req.BarberID, req.ServiceIDs, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата не должна быть в прошлом
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Проверяем барбера
	if _, err := uc.catalogRepo.GetBarberByID(ctx, req.BarberID); err != nil {
		if errors.Is(err, catalogRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 5. Агрегация по каталогу услуг
	services, err := uc.catalogRepo.GetServicesByIDs(ctx, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	totalPrice, totalDuration, err := aggregateServices(req.ServiceIDs, services)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: service aggregation failed: %v", err)
		return nil, err
	}

	// 6. Генерируем часовую сетку с учетом закрытия и окна доступности
	timeSlots, err := generateTimeSlots(totalDuration, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 7. Получаем активные записи барбера на эту дату
	filter := domain.BarberAppointmentsFilter{
		BarberID:        req.BarberID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	appointments, err := uc.appointmentRepo.GetByBarberWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 8. Помечаем каждый слот признаком доступности
	slots := markAvailability(timeSlots, totalDuration, appointments)

	uc.logger.Info("GetAvailableSlots: generated %d slots for barber=%d, date=%s",
		len(slots), req.BarberID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		BarberID:        req.BarberID,
		ServiceIDs:      req.ServiceIDs,
		DurationMinutes: totalDuration,
		TotalPrice:      totalPrice,
		Slots:           slots,
	}, nil
}
