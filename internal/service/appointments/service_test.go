package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
	appointmentRepo "github.com/akimv/BarberHub-BookingService/internal/infra/storage/appointment"
	"github.com/akimv/BarberHub-BookingService/internal/integrations/identity"
	"github.com/akimv/BarberHub-BookingService/internal/service/appointments/models"
	"github.com/akimv/BarberHub-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	byID         map[string]*domain.Appointment
	byClient     []*domain.Appointment
	byBarber     []*domain.Appointment
	statusSet    *domain.AppointmentStatus
	cancelStatus *domain.AppointmentStatus
	cancelReason string
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	apt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return apt, nil
}

func (f *fakeRepo) GetByClientID(_ context.Context, _ string, _ *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	return f.byClient, nil
}

func (f *fakeRepo) GetByBarberWithFilter(_ context.Context, _ domain.BarberAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.byBarber, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, _ string, status domain.AppointmentStatus) error {
	f.statusSet = &status
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, _ string, status domain.AppointmentStatus, reason string) error {
	f.cancelStatus = &status
	f.cancelReason = reason
	return nil
}

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              "apt-1",
		ClientID:        "client-1",
		BarberID:        101,
		SiteID:          1,
		ServiceIDs:      []int64{201},
		Date:            time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		StartTime:       "14:00",
		DurationMinutes: 45,
		Status:          domain.StatusActive,
	}
}

func clientUser() *identity.User {
	return &identity.User{ID: "client-1", Role: identity.RoleClient}
}

func barberUser() *identity.User {
	return &identity.User{ID: "barber-user-1", Role: identity.RoleBarber, BarberID: ptr.Ptr(int64(101))}
}

func strangerUser() *identity.User {
	return &identity.User{ID: "client-2", Role: identity.RoleClient}
}

func TestService_GetByID(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{byID: map[string]*domain.Appointment{"apt-1": testAppointment()}}
	svc := NewService(repo, nopLogger{})

	t.Run("owner sees appointment", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), "apt-1", clientUser())
		require.NoError(t, err)
		assert.Equal(t, "apt-1", resp.ID)
		assert.Equal(t, "14:45", resp.EndTime)
	})

	t.Run("assigned barber sees appointment", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "apt-1", barberUser())
		assert.NoError(t, err)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "apt-1", strangerUser())
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "missing", clientUser())
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Parallel()

	t.Run("owner cancels as client", func(t *testing.T) {
		repo := &fakeRepo{byID: map[string]*domain.Appointment{"apt-1": testAppointment()}}
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), "apt-1", &models.CancelAppointmentRequest{CancellationReason: "no longer needed"}, clientUser())
		require.NoError(t, err)

		require.NotNil(t, repo.cancelStatus)
		assert.Equal(t, domain.StatusCancelledByClient, *repo.cancelStatus)
		assert.Equal(t, "no longer needed", repo.cancelReason)
	})

	t.Run("assigned barber cancels as barber", func(t *testing.T) {
		repo := &fakeRepo{byID: map[string]*domain.Appointment{"apt-1": testAppointment()}}
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), "apt-1", &models.CancelAppointmentRequest{}, barberUser())
		require.NoError(t, err)

		require.NotNil(t, repo.cancelStatus)
		assert.Equal(t, domain.StatusCancelledByBarber, *repo.cancelStatus)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		repo := &fakeRepo{byID: map[string]*domain.Appointment{"apt-1": testAppointment()}}
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), "apt-1", &models.CancelAppointmentRequest{}, strangerUser())
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Nil(t, repo.cancelStatus)
	})

	t.Run("cancelled appointment cannot be cancelled again", func(t *testing.T) {
		apt := testAppointment()
		apt.Status = domain.StatusCancelledByClient
		repo := &fakeRepo{byID: map[string]*domain.Appointment{"apt-1": apt}}
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), "apt-1", &models.CancelAppointmentRequest{}, clientUser())
		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestService_Complete(t *testing.T) {
	t.Parallel()

	t.Run("assigned barber completes", func(t *testing.T) {
		repo := &fakeRepo{byID: map[string]*domain.Appointment{"apt-1": testAppointment()}}
		svc := NewService(repo, nopLogger{})

		err := svc.Complete(context.Background(), "apt-1", barberUser())
		require.NoError(t, err)

		require.NotNil(t, repo.statusSet)
		assert.Equal(t, domain.StatusCompleted, *repo.statusSet)
	})

	t.Run("client cannot complete own appointment", func(t *testing.T) {
		repo := &fakeRepo{byID: map[string]*domain.Appointment{"apt-1": testAppointment()}}
		svc := NewService(repo, nopLogger{})

		err := svc.Complete(context.Background(), "apt-1", clientUser())
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("other barber cannot complete", func(t *testing.T) {
		repo := &fakeRepo{byID: map[string]*domain.Appointment{"apt-1": testAppointment()}}
		svc := NewService(repo, nopLogger{})

		other := &identity.User{ID: "barber-user-2", Role: identity.RoleBarber, BarberID: ptr.Ptr(int64(102))}
		err := svc.Complete(context.Background(), "apt-1", other)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("completed appointment cannot be completed again", func(t *testing.T) {
		apt := testAppointment()
		apt.Status = domain.StatusCompleted
		repo := &fakeRepo{byID: map[string]*domain.Appointment{"apt-1": apt}}
		svc := NewService(repo, nopLogger{})

		err := svc.Complete(context.Background(), "apt-1", barberUser())
		assert.ErrorIs(t, err, ErrCannotComplete)
	})
}

func TestService_GetBarberAppointments(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{byBarber: []*domain.Appointment{testAppointment()}}
	svc := NewService(repo, nopLogger{})

	t.Run("barber reads own schedule", func(t *testing.T) {
		resp, err := svc.GetBarberAppointments(context.Background(), &models.GetBarberAppointmentsRequest{BarberID: 101}, barberUser())
		require.NoError(t, err)
		assert.Len(t, resp.Appointments, 1)
	})

	t.Run("client cannot read barber schedule", func(t *testing.T) {
		_, err := svc.GetBarberAppointments(context.Background(), &models.GetBarberAppointmentsRequest{BarberID: 101}, clientUser())
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		req := &models.GetBarberAppointmentsRequest{BarberID: 101, Status: ptr.Ptr("nonsense")}
		_, err := svc.GetBarberAppointments(context.Background(), req, barberUser())
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetClientAppointments(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{byClient: []*domain.Appointment{testAppointment()}}
	svc := NewService(repo, nopLogger{})

	t.Run("returns client history", func(t *testing.T) {
		resp, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{ClientID: "client-1"})
		require.NoError(t, err)
		assert.Len(t, resp.Appointments, 1)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		req := &models.GetClientAppointmentsRequest{ClientID: "client-1", Status: ptr.Ptr("bogus")}
		_, err := svc.GetClientAppointments(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
