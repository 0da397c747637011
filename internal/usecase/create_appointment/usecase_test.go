package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
	catalogRepo "github.com/akimv/BarberHub-BookingService/internal/infra/storage/catalog"
	"github.com/akimv/BarberHub-BookingService/pkg/types"
)

// Фейки для зависимостей use case

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeAppointmentRepo struct {
	existing []*domain.Appointment
	created  *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	f.created = apt
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

func newTestUseCase(repo *fakeAppointmentRepo, catalog *fakeCatalogRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, catalog, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		ClientID:   "client-1",
		BarberID:   101,
		SiteID:     1,
		ServiceIDs: []int64{201, 203},
		Date:       date(2026, 9, 16),
		StartTime:  "14:00",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	t.Parallel()

	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo, newTestCatalog(), at(2026, 9, 15, 12, 0))

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "client-1", resp.ClientID)
	assert.Equal(t, 40000.0, resp.TotalPrice)
	assert.Equal(t, 70, resp.DurationMinutes)
	assert.Equal(t, types.TimeString("14:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("15:10"), resp.EndTime)
	assert.Equal(t, string(domain.StatusActive), resp.Status)
	assert.Equal(t, []string{"Haircut", "Head shave"}, resp.ServiceNames)

	require.NotNil(t, repo.created)
	assert.Equal(t, resp.ID, repo.created.ID)
}

func TestUseCase_Execute_BarberBusy(t *testing.T) {
	t.Parallel()

	repo := &fakeAppointmentRepo{
		existing: []*domain.Appointment{
			{ID: "apt-1", StartTime: "14:30", DurationMinutes: 45, Status: domain.StatusActive},
		},
	}
	uc := newTestUseCase(repo, newTestCatalog(), at(2026, 9, 15, 12, 0))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBarberBusy)
	assert.Nil(t, repo.created)
}

func TestUseCase_Execute_TouchingIntervalsDoNotConflict(t *testing.T) {
	t.Parallel()

	// Существующая запись 15:10-15:40 граничит с новой 14:00-15:10
	repo := &fakeAppointmentRepo{
		existing: []*domain.Appointment{
			{ID: "apt-1", StartTime: "15:10", DurationMinutes: 30, Status: domain.StatusActive},
		},
	}
	uc := newTestUseCase(repo, newTestCatalog(), at(2026, 9, 15, 12, 0))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestUseCase_Execute_CancelledAppointmentFreesSlot(t *testing.T) {
	t.Parallel()

	repo := &fakeAppointmentRepo{
		existing: []*domain.Appointment{
			{ID: "apt-1", StartTime: "14:00", DurationMinutes: 70, Status: domain.StatusCancelledByClient},
		},
	}
	uc := newTestUseCase(repo, newTestCatalog(), at(2026, 9, 15, 12, 0))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestUseCase_Execute_UnknownServiceRejectsWholeAppointment(t *testing.T) {
	t.Parallel()

	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo, newTestCatalog(), at(2026, 9, 15, 12, 0))

	req := validRequest()
	req.ServiceIDs = []int64{201, 999}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Nil(t, repo.created)
}

func TestUseCase_Execute_BarberNotFound(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeAppointmentRepo{}, newTestCatalog(), at(2026, 9, 15, 12, 0))

	req := validRequest()
	req.BarberID = 555

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestUseCase_Execute_BarberNotAtSite(t *testing.T) {
	t.Parallel()

	catalog := newTestCatalog()
	catalog.sites[2] = &domain.Site{ID: 2, Name: "North"}
	uc := newTestUseCase(&fakeAppointmentRepo{}, catalog, at(2026, 9, 15, 12, 0))

	req := validRequest()
	req.SiteID = 2

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBarberNotAtSite)
}

func TestUseCase_Execute_LeadTimeViolation(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeAppointmentRepo{}, newTestCatalog(), at(2026, 9, 16, 13, 30))

	// Запись на сегодня 14:00 при текущем времени 13:30: до начала 30 минут
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPastOrTooSoon)
}

func TestUseCase_Execute_ExceedsClosing(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeAppointmentRepo{}, newTestCatalog(), at(2026, 9, 15, 12, 0))

	// 21:00 + 70 минут заканчивается в 22:10, позже закрытия
	req := validRequest()
	req.StartTime = "21:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrExceedsClosing)
}

func TestUseCase_Execute_StartTimeOffGrid(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeAppointmentRepo{}, newTestCatalog(), at(2026, 9, 15, 12, 0))

	req := validRequest()
	req.StartTime = "14:30"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}
