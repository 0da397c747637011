package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
	catalogRepo "github.com/akimv/BarberHub-BookingService/internal/infra/storage/catalog"
)

// UseCase use case для создания записи к барберу
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

// Execute выполняет use case создания записи.
// Проверки и вставка идут в сериализуемой транзакции: конкурентные запросы
// на пересекающиеся интервалы одного барбера не могут пройти проверку оба.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%s, barber=%d, site=%d, services=%v, date=%s, time=%s",
		req.ClientID, req.BarberID, req.SiteID, req.ServiceIDs, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Начало записи должно лежать на часовой сетке рабочего дня
	if err := validateSlotGrid(req.StartTime); err != nil {
		uc.logger.Warn("CreateAppointment: slot grid validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Проверяем окно доступности: не в прошлом, lead time выдержан
	if err := validateLeadTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateAppointment: lead time validation failed: %v", err)
		return nil, err
	}

	// 5. Проверяем барбера и точку
	barber, err := uc.catalogRepo.GetBarberByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateAppointment: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	if _, err := uc.catalogRepo.GetSiteByID(ctx, req.SiteID); err != nil {
		if errors.Is(err, catalogRepo.ErrSiteNotFound) {
			uc.logger.Warn("CreateAppointment: site id=%d not found", req.SiteID)
			return nil, ErrSiteNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get site id=%d: %v", req.SiteID, err)
		return nil, fmt.Errorf("%w: failed to get site: %v", ErrInternal, err)
	}

	if barber.SiteID != req.SiteID {
		uc.logger.Warn("CreateAppointment: barber id=%d does not work at site id=%d", req.BarberID, req.SiteID)
		return nil, ErrBarberNotAtSite
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Агрегация по каталогу услуг: цена, длительность, названия.
		// Неизвестный id услуги отклоняет всю запись.
		services, err := uc.catalogRepo.GetServicesByIDs(txCtx, req.ServiceIDs)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get services: %v", err)
			return fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
		}

		totalPrice, totalDuration, serviceNames, err := aggregateServices(req.ServiceIDs, services)
		if err != nil {
			uc.logger.Warn("CreateAppointment: service aggregation failed: %v", err)
			return err
		}

		// 6.2. Запись должна закончиться не позже закрытия
		if _, err := validateClosingTime(req.StartTime, totalDuration); err != nil {
			uc.logger.Warn("CreateAppointment: closing time validation failed: %v", err)
			return err
		}

		// 6.3. Получаем активные записи барбера на эту дату с блокировкой (FOR UPDATE)
		filter := domain.BarberAppointmentsFilter{
			BarberID:        req.BarberID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		existing, err := uc.appointmentRepo.GetByBarberWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get existing appointments: %v", err)
			return fmt.Errorf("%w: failed to get existing appointments: %v", ErrInternal, err)
		}

		// 6.4. Проверяем пересечения интервалов
		busy, err := hasOverlappingAppointment(req.StartTime, totalDuration, existing, "")
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check overlaps: %v", err)
			return fmt.Errorf("%w: failed to check overlaps: %v", ErrInternal, err)
		}
		if busy {
			uc.logger.Warn("CreateAppointment: barber id=%d busy on %s at %s",
				req.BarberID, req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrBarberBusy
		}

		// 6.5. Создаем запись с денормализацией названий услуг
		apt := &domain.Appointment{
			ID:              uuid.NewString(),
			ClientID:        req.ClientID,
			BarberID:        req.BarberID,
			SiteID:          req.SiteID,
			ServiceIDs:      req.ServiceIDs,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: totalDuration,
			TotalPrice:      totalPrice,
			Status:          domain.StatusActive,
			ServiceNames:    serviceNames,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, apt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	return toResponse(result), nil
}

// toResponse конвертирует domain-модель в response
func toResponse(apt *domain.Appointment) *Response {
	// Длительность уже прошла проверку закрытия, ошибка здесь невозможна
	endTime, _ := apt.EndTime()

	return &Response{
		ID:              apt.ID,
		ClientID:        apt.ClientID,
		BarberID:        apt.BarberID,
		SiteID:          apt.SiteID,
		ServiceIDs:      apt.ServiceIDs,
		Date:            apt.Date,
		StartTime:       apt.StartTime,
		EndTime:         endTime,
		DurationMinutes: apt.DurationMinutes,
		TotalPrice:      apt.TotalPrice,
		Status:          string(apt.Status),
		ServiceNames:    apt.ServiceNames,
		Notes:           apt.Notes,
		CreatedAt:       apt.CreatedAt,
		UpdatedAt:       apt.UpdatedAt,
	}
}
