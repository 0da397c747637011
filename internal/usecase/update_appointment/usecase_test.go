package update_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
	appointmentRepo "github.com/akimv/BarberHub-BookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/akimv/BarberHub-BookingService/internal/infra/storage/catalog"
	"github.com/akimv/BarberHub-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeAppointmentRepo struct {
	byID     map[string]*domain.Appointment
	existing []*domain.Appointment
	updated  *domain.Appointment
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	apt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return apt, nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	f.updated = apt
	return apt, nil
}

func (f *fakeAppointmentRepo) GetByBarberWithFilter(_ context.Context, _ domain.BarberAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.existing, nil
}

type fakeCatalogRepo struct {
	services map[int64]*domain.Service
	barbers  map[int64]*domain.Barber
	sites    map[int64]*domain.Site
}

func (f *fakeCatalogRepo) GetServicesByIDs(_ context.Context, ids []int64) ([]*domain.Service, error) {
	result := make([]*domain.Service, 0, len(ids))
	for _, id := range ids {
		if svc, ok := f.services[id]; ok {
			result = append(result, svc)
		}
	}
	return result, nil
}

func (f *fakeCatalogRepo) GetBarberByID(_ context.Context, id int64) (*domain.Barber, error) {
	barber, ok := f.barbers[id]
	if !ok {
		return nil, catalogRepo.ErrBarberNotFound
	}
	return barber, nil
}

func (f *fakeCatalogRepo) GetSiteByID(_ context.Context, id int64) (*domain.Site, error) {
	site, ok := f.sites[id]
	if !ok {
		return nil, catalogRepo.ErrSiteNotFound
	}
	return site, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hour, minute int) time.Time {
	return time.Date(y, m, d, hour, minute, 0, 0, time.UTC)
}

func ownedAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              "apt-1",
		ClientID:        "client-1",
		BarberID:        101,
		SiteID:          1,
		ServiceIDs:      []int64{201},
		Date:            date(2026, 9, 16),
		StartTime:       "14:00",
		DurationMinutes: 45,
		TotalPrice:      25000,
		Status:          domain.StatusActive,
		ServiceNames:    []string{"Haircut"},
	}
}

func newTestCatalog() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		services: map[int64]*domain.Service{
			201: {ID: 201, Name: "Haircut", Price: 25000, DurationMinutes: 45},
			203: {ID: 203, Name: "Head shave", Price: 15000, DurationMinutes: 25},
		},
		barbers: map[int64]*domain.Barber{
			101: {ID: 101, FullName: "Ivan Petrov", SiteID: 1},
		},
		sites: map[int64]*domain.Site{
			1: {ID: 1, Name: "Central"},
		},
	}
}

func newTestUseCase(repo *fakeAppointmentRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, newTestCatalog(), fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		AppointmentID: "apt-1",
		ClientID:      "client-1",
		BarberID:      101,
		SiteID:        1,
		ServiceIDs:    []int64{201, 203},
		Date:          date(2026, 9, 16),
		StartTime:     "16:00",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	t.Parallel()

	repo := &fakeAppointmentRepo{
		byID: map[string]*domain.Appointment{"apt-1": ownedAppointment()},
	}
	uc := newTestUseCase(repo, at(2026, 9, 15, 12, 0))

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "apt-1", resp.ID)
	assert.Equal(t, types.TimeString("16:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("17:10"), resp.EndTime)
	assert.Equal(t, 40000.0, resp.TotalPrice)
	assert.Equal(t, 70, resp.DurationMinutes)
	assert.Equal(t, []string{"Haircut", "Head shave"}, resp.ServiceNames)

	require.NotNil(t, repo.updated)
	assert.Equal(t, []int64{201, 203}, repo.updated.ServiceIDs)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	t.Parallel()

	repo := &fakeAppointmentRepo{byID: map[string]*domain.Appointment{}}
	uc := newTestUseCase(repo, at(2026, 9, 15, 12, 0))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUseCase_Execute_OnlyOwnerCanUpdate(t *testing.T) {
	t.Parallel()

	repo := &fakeAppointmentRepo{
		byID: map[string]*domain.Appointment{"apt-1": ownedAppointment()},
	}
	uc := newTestUseCase(repo, at(2026, 9, 15, 12, 0))

	req := validRequest()
	req.ClientID = "client-2"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.updated)
}

func TestUseCase_Execute_CompletedCannotBeUpdated(t *testing.T) {
	t.Parallel()

	apt := ownedAppointment()
	apt.Status = domain.StatusCompleted
	repo := &fakeAppointmentRepo{
		byID: map[string]*domain.Appointment{"apt-1": apt},
	}
	uc := newTestUseCase(repo, at(2026, 9, 15, 12, 0))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCannotUpdate)
}

func TestUseCase_Execute_OwnIntervalExcludedFromConflictCheck(t *testing.T) {
	t.Parallel()

	// Перенос записи внутри её собственного интервала не конфликтует сам с собой
	own := ownedAppointment()
	repo := &fakeAppointmentRepo{
		byID:     map[string]*domain.Appointment{"apt-1": own},
		existing: []*domain.Appointment{own},
	}
	uc := newTestUseCase(repo, at(2026, 9, 15, 12, 0))

	req := validRequest()
	req.ServiceIDs = []int64{201}
	req.StartTime = "14:00"

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestUseCase_Execute_ConflictWithAnotherAppointment(t *testing.T) {
	t.Parallel()

	own := ownedAppointment()
	other := &domain.Appointment{
		ID:              "apt-2",
		ClientID:        "client-9",
		BarberID:        101,
		StartTime:       "16:30",
		DurationMinutes: 30,
		Status:          domain.StatusActive,
	}
	repo := &fakeAppointmentRepo{
		byID:     map[string]*domain.Appointment{"apt-1": own},
		existing: []*domain.Appointment{own, other},
	}
	uc := newTestUseCase(repo, at(2026, 9, 15, 12, 0))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBarberBusy)
}

func TestUseCase_Execute_NewTimeMustHonorLeadTime(t *testing.T) {
	t.Parallel()

	repo := &fakeAppointmentRepo{
		byID: map[string]*domain.Appointment{"apt-1": ownedAppointment()},
	}
	uc := newTestUseCase(repo, at(2026, 9, 16, 15, 30))

	// Перенос на сегодня 16:00 при текущем времени 15:30
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPastOrTooSoon)
}
