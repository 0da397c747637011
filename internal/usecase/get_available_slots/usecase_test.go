package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
	catalogRepo "github.com/akimv/BarberHub-BookingService/internal/infra/storage/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) GetByBarberWithFilter(_ context.Context, _ domain.BarberAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeCatalogRepo struct {
	services map[int64]*domain.Service
	barbers  map[int64]*domain.Barber
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

func newTestUseCase(repo *fakeAppointmentRepo, now time.Time) *UseCase {
	catalog := &fakeCatalogRepo{
		services: map[int64]*domain.Service{
			201: {ID: 201, Name: "Haircut", Price: 25000, DurationMinutes: 45},
			203: {ID: 203, Name: "Head shave", Price: 15000, DurationMinutes: 25},
		},
		barbers: map[int64]*domain.Barber{
			101: {ID: 101, FullName: "Ivan Petrov", SiteID: 1},
		},
	}

	uc := NewUseCase(repo, catalog, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestUseCase_Execute_MarksBusySlots(t *testing.T) {
	t.Parallel()

	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{ID: "apt-1", StartTime: "14:00", DurationMinutes: 45, Status: domain.StatusActive},
		},
	}
	uc := newTestUseCase(repo, at(2026, 9, 15, 12, 0))

	resp, err := uc.Execute(context.Background(), &Request{
		BarberID:   101,
		ServiceIDs: []int64{201, 203},
		Date:       date(2026, 9, 16),
	})
	require.NoError(t, err)

	assert.Equal(t, 70, resp.DurationMinutes)
	assert.Equal(t, 40000.0, resp.TotalPrice)
	require.NotEmpty(t, resp.Slots)

	byStart := make(map[string]bool, len(resp.Slots))
	for _, slot := range resp.Slots {
		byStart[slot.StartTime.String()] = slot.Available
	}

	// 13:00-14:10 и 14:00-15:10 пересекаются с записью 14:00-14:45
	assert.False(t, byStart["13:00"])
	assert.False(t, byStart["14:00"])
	// 15:00-16:10 свободен
	assert.True(t, byStart["15:00"])
	assert.True(t, byStart["10:00"])
}

func TestUseCase_Execute_BarberNotFound(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeAppointmentRepo{}, at(2026, 9, 15, 12, 0))

	_, err := uc.Execute(context.Background(), &Request{
		BarberID:   555,
		ServiceIDs: []int64{201},
		Date:       date(2026, 9, 16),
	})
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestUseCase_Execute_PastDate(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeAppointmentRepo{}, at(2026, 9, 15, 12, 0))

	_, err := uc.Execute(context.Background(), &Request{
		BarberID:   101,
		ServiceIDs: []int64{201},
		Date:       date(2026, 9, 14),
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUseCase_Execute_UnknownService(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeAppointmentRepo{}, at(2026, 9, 15, 12, 0))

	_, err := uc.Execute(context.Background(), &Request{
		BarberID:   101,
		ServiceIDs: []int64{999},
		Date:       date(2026, 9, 16),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
