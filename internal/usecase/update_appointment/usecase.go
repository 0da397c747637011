package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
	appointmentRepo "github.com/akimv/BarberHub-BookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/akimv/BarberHub-BookingService/internal/infra/storage/catalog"
)

// UseCase use case для изменения записи её владельцем
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case изменения записи.
// Изменение ревалидируется как создание новой записи; сама редактируемая
// запись исключается из проверки пересечений, чтобы не конфликтовать
// с собственным интервалом.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%s, client=%s, barber=%d, date=%s, time=%s",
		req.AppointmentID, req.ClientID, req.BarberID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Начало записи должно лежать на часовой сетке рабочего дня
	if err := validateSlotGrid(req.StartTime); err != nil {
		uc.logger.Warn("UpdateAppointment: slot grid validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Проверяем окно доступности
	if err := validateLeadTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("UpdateAppointment: lead time validation failed: %v", err)
		return nil, err
	}

	// 5. Проверяем барбера и точку
	barber, err := uc.catalogRepo.GetBarberByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBarberNotFound) {
			uc.logger.Warn("UpdateAppointment: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("UpdateAppointment: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	if _, err := uc.catalogRepo.GetSiteByID(ctx, req.SiteID); err != nil {
		if errors.Is(err, catalogRepo.ErrSiteNotFound) {
			uc.logger.Warn("UpdateAppointment: site id=%d not found", req.SiteID)
			return nil, ErrSiteNotFound
		}
		uc.logger.Error("UpdateAppointment: failed to get site id=%d: %v", req.SiteID, err)
		return nil, fmt.Errorf("%w: failed to get site: %v", ErrInternal, err)
	}

	if barber.SiteID != req.SiteID {
		uc.logger.Warn("UpdateAppointment: barber id=%d does not work at site id=%d", req.BarberID, req.SiteID)
		return nil, ErrBarberNotAtSite
	}

	var result *domain.Appointment

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем запись и проверяем владельца
		apt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointment: appointment id=%s not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get appointment id=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		if apt.ClientID != req.ClientID {
			uc.logger.Warn("UpdateAppointment: client=%s is not the owner of appointment id=%s",
				req.ClientID, req.AppointmentID)
			return ErrAccessDenied
		}

		if !apt.CanBeUpdated() {
			uc.logger.Warn("UpdateAppointment: appointment id=%s in status=%s cannot be updated",
				req.AppointmentID, apt.Status)
			return ErrCannotUpdate
		}

		// 6.2. Агрегация по каталогу услуг
		services, err := uc.catalogRepo.GetServicesByIDs(txCtx, req.ServiceIDs)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to get services: %v", err)
			return fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
		}

		totalPrice, totalDuration, serviceNames, err := aggregateServices(req.ServiceIDs, services)
		if err != nil {
			uc.logger.Warn("UpdateAppointment: service aggregation failed: %v", err)
			return err
		}

		// 6.3. Запись должна закончиться не позже закрытия
		if _, err := validateClosingTime(req.StartTime, totalDuration); err != nil {
			uc.logger.Warn("UpdateAppointment: closing time validation failed: %v", err)
			return err
		}

		// 6.4. Получаем активные записи барбера на новую дату с блокировкой
		filter := domain.BarberAppointmentsFilter{
			BarberID:        req.BarberID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		existing, err := uc.appointmentRepo.GetByBarberWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to get existing appointments: %v", err)
			return fmt.Errorf("%w: failed to get existing appointments: %v", ErrInternal, err)
		}

		// 6.5. Проверяем пересечения, исключая саму редактируемую запись
		busy, err := hasOverlappingAppointment(req.StartTime, totalDuration, existing, apt.ID)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to check overlaps: %v", err)
			return fmt.Errorf("%w: failed to check overlaps: %v", ErrInternal, err)
		}
		if busy {
			uc.logger.Warn("UpdateAppointment: barber id=%d busy on %s at %s",
				req.BarberID, req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrBarberBusy
		}

		// 6.6. Перезаписываем редактируемые поля
		apt.BarberID = req.BarberID
		apt.SiteID = req.SiteID
		apt.ServiceIDs = req.ServiceIDs
		apt.Date = req.Date
		apt.StartTime = req.StartTime
		apt.DurationMinutes = totalDuration
		apt.TotalPrice = totalPrice
		apt.ServiceNames = serviceNames
		apt.Notes = req.Notes

		updated, err := uc.appointmentRepo.Update(txCtx, apt)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%s", result.ID)

	endTime, _ := result.EndTime()

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		BarberID:        result.BarberID,
		SiteID:          result.SiteID,
		ServiceIDs:      result.ServiceIDs,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         endTime,
		DurationMinutes: result.DurationMinutes,
		TotalPrice:      result.TotalPrice,
		Status:          string(result.Status),
		ServiceNames:    result.ServiceNames,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
