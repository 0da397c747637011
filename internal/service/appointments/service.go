package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
	appointmentRepo "github.com/akimv/BarberHub-BookingService/internal/infra/storage/appointment"
	"github.com/akimv/BarberHub-BookingService/internal/integrations/identity"
	"github.com/akimv/BarberHub-BookingService/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Запись видят только её владелец и назначенный барбер
func (s *Service) GetByID(ctx context.Context, id string, user *identity.User) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s for user=%s", id, user.ID)

	apt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkViewAccess(apt, user); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to appointment id=%s", user.ID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%s", id)
	return models.FromDomainAppointment(apt), nil
}

// GetClientAppointments получает историю записей клиента
// Опционально фильтрует по статусу
func (s *Service) GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: fetching appointments for client=%s, status=%v", req.ClientID, req.Status)

	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientAppointments: invalid status=%s for client=%s", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.appointmentRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: successfully fetched %d appointments for client=%s", len(appointments), req.ClientID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetBarberAppointments получает расписание барбера с гибкой фильтрацией
// Доступно только самому барберу
//
// Примеры использования:
// - Все активные записи: GetBarberAppointments(ctx, &GetBarberAppointmentsRequest{BarberID: 101}, user)
// - Записи на дату: StartDate и EndDate указывают на одну дату
// - Записи за период: StartDate и EndDate указывают на разные даты
// - Только завершённые: указать Status = "completed"
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetBarberAppointments(ctx context.Context, req *models.GetBarberAppointmentsRequest, user *identity.User) (*models.AppointmentListResponse, error) {
	logMsg := fmt.Sprintf("GetBarberAppointments: fetching appointments for barber=%d, user=%s", req.BarberID, user.ID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	if err := s.checkBarberAccess(req.BarberID, user); err != nil {
		s.logger.Warn("GetBarberAppointments: access denied for user=%s to barber=%d schedule", user.ID, req.BarberID)
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetBarberAppointments: invalid filter for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByBarberWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetBarberAppointments: repository error for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: GetBarberAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBarberAppointments: successfully fetched %d appointments for barber=%d", len(appointments), req.BarberID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись
// Клиент может отменить только свою запись (cancelled_by_client)
// Назначенный барбер может отменить запись со своей стороны (cancelled_by_barber)
func (s *Service) Cancel(ctx context.Context, appointmentID string, req *models.CancelAppointmentRequest, user *identity.User) error {
	s.logger.Info("Cancel: cancelling appointment id=%s by user=%s", appointmentID, user.ID)

	apt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !apt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%s cannot be cancelled, status=%s", appointmentID, apt.Status)
		return ErrCannotCancel
	}

	// Определяем статус отмены в зависимости от инициатора
	var cancelStatus domain.AppointmentStatus

	switch {
	case apt.ClientID == user.ID:
		cancelStatus = domain.StatusCancelledByClient
	case s.isAssignedBarber(apt, user):
		cancelStatus = domain.StatusCancelledByBarber
	default:
		s.logger.Warn("Cancel: access denied for user=%s to cancel appointment id=%s", user.ID, appointmentID)
		return ErrAccessDenied
	}

	if err := s.appointmentRepo.Cancel(ctx, appointmentID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%s with status=%s", appointmentID, cancelStatus)
	return nil
}

// Complete помечает запись завершённой
// Доступно только назначенному барберу
func (s *Service) Complete(ctx context.Context, appointmentID string, user *identity.User) error {
	s.logger.Info("Complete: completing appointment id=%s by user=%s", appointmentID, user.ID)

	apt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Complete: appointment id=%s not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Complete: repository error for appointment id=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	if !s.isAssignedBarber(apt, user) {
		s.logger.Warn("Complete: access denied for user=%s to complete appointment id=%s", user.ID, appointmentID)
		return ErrAccessDenied
	}

	if !apt.CanBeCompleted() {
		s.logger.Warn("Complete: appointment id=%s cannot be completed, status=%s", appointmentID, apt.Status)
		return ErrCannotComplete
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, domain.StatusCompleted); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Complete: appointment id=%s not found during update", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Complete: repository error for appointment id=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: successfully completed appointment id=%s", appointmentID)
	return nil
}

// Вспомогательные методы

// checkViewAccess проверяет, что пользователь имеет доступ к записи
// Запись видят её владелец и назначенный барбер
func (s *Service) checkViewAccess(apt *domain.Appointment, user *identity.User) error {
	if apt.ClientID == user.ID {
		return nil
	}

	if s.isAssignedBarber(apt, user) {
		return nil
	}

	return ErrAccessDenied
}

// checkBarberAccess проверяет, что пользователь является указанным барбером
func (s *Service) checkBarberAccess(barberID int64, user *identity.User) error {
	if user.IsBarber() && user.BarberID != nil && *user.BarberID == barberID {
		return nil
	}
	return ErrAccessDenied
}

// isAssignedBarber проверяет, что пользователь является барбером этой записи
func (s *Service) isAssignedBarber(apt *domain.Appointment, user *identity.User) bool {
	return user.IsBarber() && user.BarberID != nil && *user.BarberID == apt.BarberID
}
